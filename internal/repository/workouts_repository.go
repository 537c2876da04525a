package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/limbo/fitlog/pkg/entity"
)

type WorkoutsRepository struct {
	conn PgConnection
}

func NewWorkoutsRepoWithConn(conn PgConnection) *WorkoutsRepository {
	mustPing(conn, "workoutsRepo")
	return &WorkoutsRepository{
		conn: conn,
	}
}

func (wr *WorkoutsRepository) ListAll(ctx context.Context) ([]entity.WorkoutRow, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), title, description FROM workouts;`,
	)
	if err != nil {
		return nil, errors.New("getting workouts error: " + err.Error())
	}
	return scanWorkouts(rows)
}

func (wr *WorkoutsRepository) GetByDate(ctx context.Context, date string) ([]entity.WorkoutRow, error) {
	rows, err := wr.conn.Query(
		ctx,
		`SELECT to_char(date, 'YYYY-MM-DD'), title, description FROM workouts WHERE date = $1::text::date;`,
		date,
	)
	if err != nil {
		return nil, errors.New("getting workouts for date error: " + err.Error())
	}
	return scanWorkouts(rows)
}

func scanWorkouts(rows pgx.Rows) ([]entity.WorkoutRow, error) {
	defer rows.Close()
	result := make([]entity.WorkoutRow, 0, 8)
	for rows.Next() {
		var row entity.WorkoutRow
		if err := rows.Scan(&row.Date, &row.Title, &row.Description); err != nil {
			return nil, errors.New("workout row parsing error: " + err.Error())
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.New("unexpected workout rows error: " + err.Error())
	}
	return result, nil
}
