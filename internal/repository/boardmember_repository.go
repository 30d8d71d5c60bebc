package repository

import (
	"context"
	"errors"

	"boardsvc/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BoardMemberRepository struct {
	db *gorm.DB
}

type BoardMemberRepositoryInterface interface {
	GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error)
	ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.BoardMember, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BoardMember, error)
	Share(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error
	UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error
	Remove(ctx context.Context, boardID, userID uuid.UUID) error
	DeleteByBoard(ctx context.Context, boardID uuid.UUID) error
	CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error)
}

var _ BoardMemberRepositoryInterface = (*BoardMemberRepository)(nil)

func NewBoardMemberRepository(db *gorm.DB) *BoardMemberRepository {
	return &BoardMemberRepository{db: db}
}

func (r *BoardMemberRepository) GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error) {
	var member model.BoardMember
	err := r.db.WithContext(ctx).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		First(&member).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &member, nil
}

func (r *BoardMemberRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.BoardMember, error) {
	var members []model.BoardMember
	err := r.db.WithContext(ctx).Where("board_id = ?", boardID).Find(&members).Error
	return members, err
}

func (r *BoardMemberRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BoardMember, error) {
	var members []model.BoardMember
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).Find(&members).Error
	return members, err
}

// Share upserts the user's membership and flips the board to team type.
// The whole sequence runs in one transaction holding a row lock on the
// board, so concurrent shares and removals on the same board cannot lose
// the type re-evaluation.
func (r *BoardMemberRepository) Share(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board model.Board
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", boardID).
			First(&board).Error; err != nil {
			return err
		}

		var existing model.BoardMember
		err := tx.Where("board_id = ? AND user_id = ?", boardID, userID).First(&existing).Error

		// If the membership already exists, only the role changes.
		if err == nil {
			existing.Role = role
			if err := tx.Save(&existing).Error; err != nil {
				return err
			}
		} else if errors.Is(err, gorm.ErrRecordNotFound) {
			member := model.BoardMember{
				BoardID: boardID,
				UserID:  userID,
				Role:    role,
			}
			if err := tx.Create(&member).Error; err != nil {
				return err
			}
		} else {
			return err
		}

		if board.Type != model.BoardTypeTeam {
			return tx.Model(&model.Board{}).
				Where("id = ?", boardID).
				Update("type", model.BoardTypeTeam).Error
		}
		return nil
	})
}

func (r *BoardMemberRepository) UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error {
	return r.db.WithContext(ctx).
		Model(&model.BoardMember{}).
		Where("board_id = ? AND user_id = ?", boardID, userID).
		Update("role", role).Error
}

// Remove deletes the user's membership and re-evaluates the board type:
// when only the owner remains the board reverts to personal. Runs under
// the same board row lock as Share.
func (r *BoardMemberRepository) Remove(ctx context.Context, boardID, userID uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var board model.Board
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", boardID).
			First(&board).Error; err != nil {
			return err
		}

		if err := tx.Where("board_id = ? AND user_id = ?", boardID, userID).
			Delete(&model.BoardMember{}).Error; err != nil {
			return err
		}

		var count int64
		if err := tx.Model(&model.BoardMember{}).
			Where("board_id = ?", boardID).
			Count(&count).Error; err != nil {
			return err
		}

		if count <= 1 && board.Type != model.BoardTypePersonal {
			return tx.Model(&model.Board{}).
				Where("id = ?", boardID).
				Update("type", model.BoardTypePersonal).Error
		}
		return nil
	})
}

func (r *BoardMemberRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	return r.db.WithContext(ctx).Where("board_id = ?", boardID).Delete(&model.BoardMember{}).Error
}

func (r *BoardMemberRepository) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&model.BoardMember{}).
		Where("board_id = ?", boardID).
		Count(&count).Error
	return count, err
}
