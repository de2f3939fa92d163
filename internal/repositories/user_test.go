package repositories

import (
	"context"
	"fmt"
	"testing"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/sbilibin2017/saved-locations/internal/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func setupPostgresContainer(t *testing.T) (*sqlx.DB, func()) {
	t.Helper()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:15-alpine",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}

	container, err := testcontainers.GenericContainer(context.Background(), testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	assert.NoError(t, err)

	host, _ := container.Host(context.Background())
	port, _ := container.MappedPort(context.Background(), "5432")

	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	for i := 0; i < 10; i++ {
		db, err = sqlx.Connect("pgx", dsn)
		if err == nil {
			break
		}
		time.Sleep(time.Second)
	}
	assert.NoError(t, err)

	// Schema comes from the same embedded migrations the service runs at start.
	goose.SetBaseFS(migrations.Migrations)
	assert.NoError(t, goose.SetDialect("postgres"))
	assert.NoError(t, goose.UpContext(context.Background(), db.DB, "."))

	teardown := func() {
		db.Close()
		container.Terminate(context.Background())
	}

	return db, teardown
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	repo := NewUserWriteRepository(db)
	ctx := context.Background()

	user, err := repo.Save(ctx, "alice", "hashedpw", "token-alice")
	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, "alice", user.Username)
	assert.Equal(t, "hashedpw", user.PasswordHash)
	assert.Equal(t, "token-alice", user.AccessToken)
	assert.NotZero(t, user.UserID)

	t.Run("DuplicateUsername", func(t *testing.T) {
		dup, err := repo.Save(ctx, "alice", "otherhash", "token-other")
		assert.Error(t, err)
		assert.Nil(t, dup)
	})

	t.Run("DuplicateAccessToken", func(t *testing.T) {
		dup, err := repo.Save(ctx, "bob", "otherhash", "token-alice")
		assert.Error(t, err)
		assert.Nil(t, dup)
	})
}

func TestUserReadRepository(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	writeRepo := NewUserWriteRepository(db)
	readRepo := NewUserReadRepository(db)
	ctx := context.Background()

	created, err := writeRepo.Save(ctx, "charlie", "hash1", "token-charlie")
	assert.NoError(t, err)

	t.Run("ByUsername", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "charlie")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, created.UserID, user.UserID)
	})

	t.Run("ByUsernameNotFound", func(t *testing.T) {
		user, err := readRepo.GetByUsername(ctx, "nonexistent")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})

	t.Run("ByAccessToken", func(t *testing.T) {
		user, err := readRepo.GetByAccessToken(ctx, "token-charlie")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "charlie", user.Username)
	})

	t.Run("ByAccessTokenNotFound", func(t *testing.T) {
		user, err := readRepo.GetByAccessToken(ctx, "unknown-token")
		assert.NoError(t, err)
		assert.Nil(t, user)
	})
}
