//go:build integration

package repository

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"film-recommendations/pkg/database"
	"film-recommendations/pkg/utils"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/zap/zaptest"
)

func skipIfNoDocker(t *testing.T) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := exec.CommandContext(ctx, "docker", "info").Run(); err != nil {
		t.Skip("Skipping test: Docker not available")
	}
}

func startPostgres(t *testing.T) database.PgxIface {
	t.Helper()
	skipIfNoDocker(t)

	ctx := context.Background()
	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "films",
				"POSTGRES_PASSWORD": "films",
				"POSTGRES_DB":       "films",
			},
			WaitingFor: wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	if err != nil {
		t.Fatalf("start postgres container: %v", err)
	}
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	if err != nil {
		t.Fatalf("container host: %v", err)
	}
	port, err := container.MappedPort(ctx, "5432/tcp")
	if err != nil {
		t.Fatalf("container port: %v", err)
	}

	db, err := database.InitPostgres(ctx, utils.DatabaseConfig{
		Driver:   "postgres",
		Host:     host,
		Port:     port.Port(),
		Name:     "films",
		User:     "films",
		Password: "films",
		MaxConns: 2,
	})
	if err != nil {
		t.Fatalf("connect postgres: %v", err)
	}
	t.Cleanup(db.Close)

	if err := database.MigratePostgres(ctx, db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	seed := `
		INSERT INTO genres (id, name) VALUES (1, 'Drama'), (2, 'Comedy');
		INSERT INTO films (id, title, release_date, genre_id) VALUES
			(7, 'Source', '2000-06-15', 1),
			(8, 'Lower Bound', '1985-06-15', 1),
			(9, 'Upper Bound', '2015-06-15', 1),
			(10, 'Too Old', '1985-06-14', 1),
			(11, 'Too New', '2015-06-16', 1),
			(12, 'Other Genre', '2000-06-15', 2);
	`
	if _, err := db.Exec(ctx, seed); err != nil {
		t.Fatalf("seed: %v", err)
	}

	return db
}

func TestPostgresCatalog(t *testing.T) {
	db := startPostgres(t)
	repo := NewRepository(db, zaptest.NewLogger(t))
	ctx := context.Background()

	if err := repo.Ping(ctx); err != nil {
		t.Fatalf("Ping: %v", err)
	}

	film, err := repo.Film.FindByID(ctx, 7)
	if err != nil || film == nil {
		t.Fatalf("FindByID(7) = %v, %v", film, err)
	}
	if film.GenreID != 1 || film.ReleaseDate.Year() != 2000 {
		t.Errorf("unexpected film: %+v", film)
	}

	if missing, err := repo.Film.FindByID(ctx, 42); err != nil || missing != nil {
		t.Errorf("FindByID(42) = %v, %v, want nil, nil", missing, err)
	}

	genre, err := repo.Genre.FindByID(ctx, 1)
	if err != nil || genre == nil || genre.Name != "Drama" {
		t.Errorf("Genre.FindByID(1) = %v, %v", genre, err)
	}

	start := film.ReleaseDate.AddDate(-15, 0, 0)
	end := film.ReleaseDate.AddDate(15, 0, 0)
	films, err := repo.Film.FindByGenreAndReleaseRange(ctx, 1, start, end)
	if err != nil {
		t.Fatalf("FindByGenreAndReleaseRange: %v", err)
	}

	want := []int64{7, 8, 9}
	if len(films) != len(want) {
		t.Fatalf("got %d films, want %d", len(films), len(want))
	}
	for i, f := range films {
		if f.ID != want[i] {
			t.Errorf("films[%d].ID = %d, want %d", i, f.ID, want[i])
		}
	}
}
