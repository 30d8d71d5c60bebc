package model

import (
	"time"

	"github.com/google/uuid"
)

// BoardType is the visibility type of a board.
type BoardType string

const (
	BoardTypePersonal BoardType = "personal" // owner is the only member
	BoardTypeTeam     BoardType = "team"     // shared with at least one other user
)

type Board struct {
	ID        uuid.UUID `gorm:"type:uuid;default:uuid_generate_v4();primaryKey"`
	Name      string    `gorm:"not null"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Type      BoardType `gorm:"not null;default:'personal';check:type IN ('personal', 'team')"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
