package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardMember links a user to a board with a role. At most one record
// exists per (board, user) pair; the owner's record is created with the
// board and lives until the board is deleted.
type BoardMember struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	BoardID   uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_board_members_board_user"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index;uniqueIndex:idx_board_members_board_user"`
	Role      Role      `gorm:"type:varchar(16);not null;check:role IN ('viewer', 'editor', 'owner')"`
	CreatedAt time.Time `gorm:"autoCreateTime"`

	Board Board `gorm:"foreignKey:BoardID"`
}
