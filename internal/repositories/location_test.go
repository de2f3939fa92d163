package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
)

func TestLocationReadRepository_ListByOwner(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewLocationReadRepository(sqlxDB)

	ownerID := uuid.New()
	firstID := uuid.New()
	secondID := uuid.New()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"location_id", "owner_id", "title", "location", "tag", "created_at"}).
		AddRow(secondID, ownerID, "Office", "1 Main St", "work", now).
		AddRow(firstID, ownerID, "Home", "2 Elm St", "personal", now.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta("SELECT location_id, owner_id, title, location, tag, created_at")).
		WithArgs(ownerID).
		WillReturnRows(rows)

	locations, err := repo.ListByOwner(context.Background(), ownerID)
	assert.NoError(t, err)
	assert.Len(t, locations, 2)
	assert.Equal(t, secondID, locations[0].LocationID)
	assert.Equal(t, firstID, locations[1].LocationID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationReadRepository_ListByOwner_Empty(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewLocationReadRepository(sqlxDB)

	ownerID := uuid.New()
	rows := sqlmock.NewRows([]string{"location_id", "owner_id", "title", "location", "tag", "created_at"})

	mock.ExpectQuery(regexp.QuoteMeta("SELECT location_id, owner_id, title, location, tag, created_at")).
		WithArgs(ownerID).
		WillReturnRows(rows)

	locations, err := repo.ListByOwner(context.Background(), ownerID)
	assert.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationReadRepository_ListByOwner_Error(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewLocationReadRepository(sqlxDB)

	ownerID := uuid.New()
	mock.ExpectQuery(regexp.QuoteMeta("SELECT location_id, owner_id, title, location, tag, created_at")).
		WithArgs(ownerID).
		WillReturnError(errors.New("connection refused"))

	locations, err := repo.ListByOwner(context.Background(), ownerID)
	assert.Error(t, err)
	assert.Nil(t, locations)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationReadRepository_ListRecent(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	sqlxDB := sqlx.NewDb(db, "sqlmock")
	repo := NewLocationReadRepository(sqlxDB)

	rows := sqlmock.NewRows([]string{"location_id", "owner_id", "title", "location", "tag", "created_at"}).
		AddRow(uuid.New(), uuid.New(), "Cafe", "3 Oak St", "", time.Now())

	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1")).
		WithArgs(20).
		WillReturnRows(rows)

	locations, err := repo.ListRecent(context.Background(), 20)
	assert.NoError(t, err)
	assert.Len(t, locations, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLocationWriteRepository_OwnerScoping(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	writeRepo := NewLocationWriteRepository(db)
	readRepo := NewLocationReadRepository(db)

	alice, err := users.Save(ctx, "alice", "hash", "token-a")
	assert.NoError(t, err)
	bob, err := users.Save(ctx, "bob", "hash", "token-b")
	assert.NoError(t, err)

	loc, err := writeRepo.Save(ctx, alice.UserID, "Home", "2 Elm St", "personal")
	assert.NoError(t, err)
	assert.NotNil(t, loc)
	assert.Equal(t, alice.UserID, loc.OwnerID)
	assert.False(t, loc.CreatedAt.IsZero())

	t.Run("UpdateByOtherOwner", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, bob.UserID, loc.LocationID, "Hacked", "0 Nowhere", "")
		assert.NoError(t, err)
		assert.Nil(t, updated)

		// Record must be untouched.
		list, err := readRepo.ListByOwner(ctx, alice.UserID)
		assert.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, "Home", list[0].Title)
	})

	t.Run("UpdateByOwner", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, alice.UserID, loc.LocationID, "Home Office", "2 Elm St", "work")
		assert.NoError(t, err)
		assert.NotNil(t, updated)
		assert.Equal(t, "Home Office", updated.Title)
		assert.Equal(t, "work", updated.Tag)
		assert.Equal(t, loc.LocationID, updated.LocationID)
	})

	t.Run("UpdateUnknownID", func(t *testing.T) {
		updated, err := writeRepo.Update(ctx, alice.UserID, uuid.New(), "X", "Y", "")
		assert.NoError(t, err)
		assert.Nil(t, updated)
	})

	t.Run("DeleteByOtherOwner", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, bob.UserID, loc.LocationID)
		assert.NoError(t, err)
		assert.Nil(t, deleted)
	})

	t.Run("DeleteByOwner", func(t *testing.T) {
		deleted, err := writeRepo.Delete(ctx, alice.UserID, loc.LocationID)
		assert.NoError(t, err)
		assert.NotNil(t, deleted)
		assert.Equal(t, "Home Office", deleted.Title)

		list, err := readRepo.ListByOwner(ctx, alice.UserID)
		assert.NoError(t, err)
		assert.Empty(t, list)
	})
}

func TestLocationReadRepository_Ordering(t *testing.T) {
	db, teardown := setupPostgresContainer(t)
	defer teardown()

	ctx := context.Background()
	users := NewUserWriteRepository(db)
	writeRepo := NewLocationWriteRepository(db)
	readRepo := NewLocationReadRepository(db)

	owner, err := users.Save(ctx, "dana", "hash", "token-d")
	assert.NoError(t, err)

	titles := []string{"First", "Second", "Third"}
	for _, title := range titles {
		_, err := writeRepo.Save(ctx, owner.UserID, title, "somewhere", "")
		assert.NoError(t, err)
		time.Sleep(10 * time.Millisecond)
	}

	list, err := readRepo.ListByOwner(ctx, owner.UserID)
	assert.NoError(t, err)
	assert.Len(t, list, 3)
	assert.Equal(t, "Third", list[0].Title)
	assert.Equal(t, "Second", list[1].Title)
	assert.Equal(t, "First", list[2].Title)

	recent, err := readRepo.ListRecent(ctx, 2)
	assert.NoError(t, err)
	assert.Len(t, recent, 2)
	assert.Equal(t, "Third", recent[0].Title)
}
