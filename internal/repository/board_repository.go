package repository

import (
	"context"
	"errors"

	"boardsvc/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type BoardRepository struct {
	db *gorm.DB
}

type BoardRepositoryInterface interface {
	CreateWithOwner(ctx context.Context, board *model.Board) error
	GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Board, error)
	Update(ctx context.Context, board *model.Board) error
	Delete(ctx context.Context, id uuid.UUID) error
}

var _ BoardRepositoryInterface = (*BoardRepository)(nil)

func NewBoardRepository(db *gorm.DB) *BoardRepository {
	return &BoardRepository{db: db}
}

// CreateWithOwner creates the board and the owner's membership record in a
// single transaction, so a failed membership write never leaves an
// ownerless board behind.
func (r *BoardRepository) CreateWithOwner(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(board).Error; err != nil {
			return err
		}

		member := model.BoardMember{
			BoardID: board.ID,
			UserID:  board.OwnerID,
			Role:    model.RoleOwner,
		}
		return tx.Create(&member).Error
	})
}

func (r *BoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	var board model.Board
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&board).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil // Return nil, nil to indicate that the board was not found
		}
		return nil, err
	}
	return &board, nil
}

func (r *BoardRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Board, error) {
	boards := make([]model.Board, 0, len(ids))
	if len(ids) == 0 {
		return boards, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&boards).Error
	return boards, err
}

func (r *BoardRepository) Update(ctx context.Context, board *model.Board) error {
	return r.db.WithContext(ctx).Save(board).Error
}

func (r *BoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Where("id = ?", id).Delete(&model.Board{}).Error
}
