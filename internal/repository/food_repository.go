package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/pkg/entity"
)

type FoodRepository struct {
	conn PgConnection
}

func NewFoodRepoWithConn(conn PgConnection) *FoodRepository {
	mustPing(conn, "foodRepo")
	return &FoodRepository{
		conn: conn,
	}
}

func (fr *FoodRepository) ListAll(ctx context.Context) ([]entity.FoodRow, error) {
	rows, err := fr.conn.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), calories, protein, carbs, fat, description FROM food ORDER BY date ASC;`,
	)
	if err != nil {
		return nil, errors.New("getting food logs error: " + err.Error())
	}
	return scanFood(rows)
}

// GetByDate works in single-row mode: anything but exactly one row for the date is
// reported as an error.
func (fr *FoodRepository) GetByDate(ctx context.Context, date string) (*entity.FoodRow, error) {
	rows, err := fr.conn.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), calories, protein, carbs, fat, description FROM food WHERE date = $1::text::date LIMIT 2;`,
		date,
	)
	if err != nil {
		return nil, errors.New("getting food log for date error: " + err.Error())
	}
	result, err := scanFood(rows)
	if err != nil {
		return nil, err
	}
	switch len(result) {
	case 0:
		return nil, errorvalues.ErrFoodNotFound
	case 1:
		return &result[0], nil
	default:
		return nil, errorvalues.ErrFoodNotUnique
	}
}

func scanFood(rows pgx.Rows) ([]entity.FoodRow, error) {
	defer rows.Close()
	result := make([]entity.FoodRow, 0, 32)
	for rows.Next() {
		var row entity.FoodRow
		err := rows.Scan(&row.Date, &row.Calories, &row.Protein, &row.Carbs, &row.Fat, &row.Description)
		if err != nil {
			return nil, errors.New("food row parsing error: " + err.Error())
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected food rows error: " + err.Error())
	}
	return result, nil
}
