package repository_test

import (
	"context"
	"testing"
	"time"

	"boardsvc/internal/model"
	"boardsvc/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)

	dialector := postgres.New(postgres.Config{
		DSN:                  "sqlmock_db_0",
		DriverName:           "postgres",
		Conn:                 db,
		PreferSimpleProtocol: true,
	})

	gormDB, err := gorm.Open(dialector, &gorm.Config{})
	assert.NoError(t, err)

	return gormDB, mock
}

func boardRows(board *model.Board) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "name", "owner_id", "type", "created_at", "updated_at"}).
		AddRow(board.ID.String(), board.Name, board.OwnerID.String(), string(board.Type), time.Now(), time.Now())
}

func TestBoardRepository_CreateWithOwner(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	boardID := uuid.New()
	board := &model.Board{
		Name:    "Roadmap",
		OwnerID: uuid.New(),
		Type:    model.BoardTypePersonal,
	}

	// Board and owner membership are written in one transaction
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(boardID.String()))
	mock.ExpectQuery(`INSERT INTO "board_members"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectCommit()

	// Act
	err := boardRepo.CreateWithOwner(context.Background(), board)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_CreateWithOwner_MembershipFailureRollsBack(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	board := &model.Board{
		Name:    "Roadmap",
		OwnerID: uuid.New(),
		Type:    model.BoardTypePersonal,
	}

	// A failed membership write must not leave an ownerless board behind
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "boards"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.New().String()))
	mock.ExpectQuery(`INSERT INTO "board_members"`).
		WillReturnError(assert.AnError)
	mock.ExpectRollback()

	// Act
	err := boardRepo.CreateWithOwner(context.Background(), board)

	// Assert
	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetByID_Found(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	boardID := uuid.New()
	expected := &model.Board{
		ID:      boardID,
		Name:    "Roadmap",
		OwnerID: uuid.New(),
		Type:    model.BoardTypePersonal,
	}

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .* LIMIT .*`).
		WithArgs(boardID).
		WillReturnRows(boardRows(expected))

	// Act
	board, err := boardRepo.GetByID(context.Background(), boardID)

	// Assert
	assert.NoError(t, err)
	assert.NotNil(t, board)
	assert.Equal(t, boardID, board.ID)
	assert.Equal(t, "Roadmap", board.Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetByID_NotFound(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	boardID := uuid.New()

	mock.ExpectQuery(`SELECT .* FROM "boards" WHERE id = .* LIMIT .*`).
		WithArgs(boardID).
		WillReturnError(gorm.ErrRecordNotFound)

	// Act
	board, err := boardRepo.GetByID(context.Background(), boardID)

	// Assert: missing rows come back as nil, nil
	assert.NoError(t, err)
	assert.Nil(t, board)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_GetByIDs_Empty(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	// Act: no ids means no query at all
	boards, err := boardRepo.GetByIDs(context.Background(), nil)

	// Assert
	assert.NoError(t, err)
	assert.Empty(t, boards)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBoardRepository_Delete(t *testing.T) {
	// Arrange
	gormDB, mock := setupMockDB(t)
	boardRepo := repository.NewBoardRepository(gormDB)

	boardID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "boards" WHERE id = .*`).
		WithArgs(boardID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	// Act
	err := boardRepo.Delete(context.Background(), boardID)

	// Assert
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
