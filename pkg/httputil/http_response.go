package httputil

import (
	"log/slog"
	"net/http"

	"github.com/bytedance/sonic"
)

// ErrorResponse never carries the underlying error, store failures stay in the logs.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	err := sonic.ConfigFastest.NewEncoder(w).Encode(ErrorResponse{
		Code:    statusCode,
		Message: message,
	})
	if err != nil {
		slog.Error("writing error response failed", slog.String("error", err.Error()))
	}
}

// WriteJSONResponse encodes before writing the header, so a body that can't be encoded
// becomes a 500 instead of an empty 200.
func WriteJSONResponse(w http.ResponseWriter, statusCode int, body any) {
	if body == nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		return
	}
	data, err := sonic.ConfigDefault.Marshal(body)
	if err != nil {
		slog.Error("encoding json response failed", slog.String("error", err.Error()))
		WriteErrorResponse(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if _, err := w.Write(append(data, '\n')); err != nil {
		slog.Error("writing json response failed", slog.String("error", err.Error()))
	}
}
