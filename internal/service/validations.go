package service

import (
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/limbo/fitlog/internal/aggregate"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
)

// Package for custom validations
var (
	validate *validator.Validate
	once     sync.Once
)

func InitValidator() {
	once.Do(func() {
		validate = validator.New()
		validate.RegisterValidation("date_key", func(fl validator.FieldLevel) bool {
			value := fl.Field().String()
			t, err := time.Parse(aggregate.DateKeyLayout, value)
			if err != nil {
				return false
			}
			// Rejects anything time.Parse tolerates but isn't canonical
			return t.Format(aggregate.DateKeyLayout) == value
		})
	})
}

func ValidateDateKey(date string) error {
	InitValidator()
	if err := validate.Var(date, "required,date_key"); err != nil {
		return errorvalues.ErrInvalidDate
	}
	return nil
}

func windowDays(days int) int {
	if days < 1 || days > aggregate.MaxWindowDays {
		return aggregate.DefaultWindowDays
	}
	return days
}
