package repository

//go:generate mockgen -source=interfaces.go -destination=mocks/mock_repository.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/limbo/fitlog/pkg/entity"
)

type WeightRepositoryI interface {
	// Lists every weight sample ordered by date ascending
	ListAll(ctx context.Context) ([]entity.WeightRow, error)
}

type WorkoutsRepositoryI interface {
	// Lists every logged workout
	ListAll(ctx context.Context) ([]entity.WorkoutRow, error)
	// Lists workouts logged on the exact date key. Empty slice when there are none
	GetByDate(ctx context.Context, date string) ([]entity.WorkoutRow, error)
}

type FoodRepositoryI interface {
	// Lists every food log ordered by date ascending
	ListAll(ctx context.Context) ([]entity.FoodRow, error)
	// Returns the single food log for the date key. ErrFoodNotFound when there is none,
	// ErrFoodNotUnique when the date has more than one row
	GetByDate(ctx context.Context, date string) (*entity.FoodRow, error)
}

type DBConfig interface {
	ConnString() string
}

type PgConnection interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PGCfg struct {
	Address  string
	Username string
	Password string
	DB       string
	SSLMode  string
}

func (pgcfg *PGCfg) ConnString() string {
	connStr := fmt.Sprintf("postgresql://%s:%s@%s/%s", pgcfg.Username, pgcfg.Password, pgcfg.Address, pgcfg.DB)
	if pgcfg.SSLMode != "" {
		connStr += "?sslmode=" + pgcfg.SSLMode
	}
	return connStr
}
