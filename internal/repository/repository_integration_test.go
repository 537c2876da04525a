package repository_test

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/lib/pq"
	errorvalues "github.com/limbo/fitlog/internal/error_values"
	"github.com/limbo/fitlog/internal/repository"
	"github.com/limbo/fitlog/pkg/entity"
	"github.com/pressly/goose"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const seedSQL = `
INSERT INTO weight (date, weight_value) VALUES
	('2024-01-02', 80.6),
	('2024-01-01', 81.1),
	('2024-01-03', NULL);
INSERT INTO workouts (date, title, description) VALUES
	('2024-02-10', 'Legs', '## squat\n5x5'),
	('2024-02-10', 'Run', NULL),
	('2024-02-12', NULL, NULL);
INSERT INTO food (date, calories, protein, carbs, fat, description) VALUES
	('2024-01-03', 500, 40, 60, 10, 'snack day'),
	('2024-01-01', 0, 50, NULL, NULL, NULL),
	('2024-01-02', 300, NULL, NULL, NULL, 'light'),
	('2024-01-05', 1000, 90, 100, 30, 'dup a'),
	('2024-01-05', 1100, 95, 110, 35, 'dup b');
`

func setupFitnessTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping postgres container test in short mode")
	}
	ctx := context.Background()
	container, err := postgres.Run(ctx, "postgres:17",
		postgres.WithUsername("test_user"),
		postgres.WithDatabase("fitlog"),
		postgres.WithPassword("test_password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		t.Fatal("error running test container: " + err.Error())
	}
	t.Cleanup(func() {
		container.Terminate(context.Background())
	})
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	conn, err := sql.Open("postgres", connStr)
	require.NoError(t, err)
	defer conn.Close()
	require.NoError(t, goose.Up(conn, "../../migrations"))
	_, err = conn.Exec(seedSQL)
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, connStr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestRepositoriesAgainstPostgres(t *testing.T) {
	pool := setupFitnessTestDB(t)
	ctx := context.Background()

	t.Run("weight ordered by date", func(t *testing.T) {
		rows, err := repository.NewWeightRepoWithConn(pool).ListAll(ctx)
		require.NoError(t, err)
		assert.Equal(t, []entity.WeightRow{
			{Date: "2024-01-01", WeightValue: ptr(81.1)},
			{Date: "2024-01-02", WeightValue: ptr(80.6)},
			{Date: "2024-01-03", WeightValue: nil},
		}, rows)
	})

	t.Run("workouts by date", func(t *testing.T) {
		repo := repository.NewWorkoutsRepoWithConn(pool)
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 3)

		onDate, err := repo.GetByDate(ctx, "2024-02-10")
		require.NoError(t, err)
		assert.Len(t, onDate, 2)

		none, err := repo.GetByDate(ctx, "2024-02-11")
		require.NoError(t, err)
		assert.Empty(t, none)
	})

	t.Run("food single row mode", func(t *testing.T) {
		repo := repository.NewFoodRepoWithConn(pool)
		all, err := repo.ListAll(ctx)
		require.NoError(t, err)
		require.Len(t, all, 5)
		assert.Equal(t, "2024-01-01", all[0].Date)
		assert.Nil(t, all[0].Carbs)

		row, err := repo.GetByDate(ctx, "2024-01-03")
		require.NoError(t, err)
		require.NotNil(t, row.Calories)
		assert.Equal(t, 500.0, *row.Calories)

		_, err = repo.GetByDate(ctx, "2024-01-04")
		assert.ErrorIs(t, err, errorvalues.ErrFoodNotFound)

		_, err = repo.GetByDate(ctx, "2024-01-05")
		assert.ErrorIs(t, err, errorvalues.ErrFoodNotUnique)
	})
}
