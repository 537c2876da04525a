package repository

import (
	"context"
	"errors"

	"github.com/limbo/fitlog/pkg/entity"
)

type WeightRepository struct {
	conn PgConnection
}

func NewWeightRepoWithConn(conn PgConnection) *WeightRepository {
	mustPing(conn, "weightRepo")
	return &WeightRepository{
		conn: conn,
	}
}

func (wr *WeightRepository) ListAll(ctx context.Context) ([]entity.WeightRow, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), weight_value FROM weight ORDER BY date ASC;`,
	)
	if err != nil {
		return nil, errors.New("getting weight samples error: " + err.Error())
	}
	defer rows.Close()
	result := make([]entity.WeightRow, 0, 64)
	for rows.Next() {
		var row entity.WeightRow
		if err := rows.Scan(&row.Date, &row.WeightValue); err != nil {
			return nil, errors.New("weight row parsing error: " + err.Error())
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected weight rows error: " + err.Error())
	}
	return result, nil
}
