package service

import (
	"context"
	"fmt"

	"boardsvc/internal/model"
	"boardsvc/internal/repository"

	"github.com/google/uuid"
)

// AccessChecker resolves a user's effective role on a board and authorizes
// operations against the allowed role sets in the model package.
type AccessChecker struct {
	memberRepo repository.BoardMemberRepositoryInterface
}

func NewAccessChecker(memberRepo repository.BoardMemberRepositoryInterface) *AccessChecker {
	return &AccessChecker{memberRepo: memberRepo}
}

// GetUserRole returns the user's role on the board, or RoleNone when no
// membership exists. Absence of a membership is an expected state, not an
// error; the internal permission endpoint queries this for arbitrary users.
func (a *AccessChecker) GetUserRole(ctx context.Context, boardID, userID uuid.UUID) (model.Role, error) {
	member, err := a.memberRepo.GetByBoardAndUser(ctx, boardID, userID)
	if err != nil {
		return model.RoleNone, err
	}
	if member == nil {
		return model.RoleNone, nil
	}
	return member.Role, nil
}

// CheckPermission is the authorization choke point for membership-gated
// operations. It fails with ErrPermissionDenied when the user holds no
// membership or the membership's role is not in the allowed set.
func (a *AccessChecker) CheckPermission(ctx context.Context, boardID, userID uuid.UUID, allowed []model.Role) error {
	role, err := a.GetUserRole(ctx, boardID, userID)
	if err != nil {
		return err
	}
	if !role.In(allowed) {
		return ErrPermissionDenied
	}
	return nil
}

// CanWrite reports whether the user may modify board content.
func (a *AccessChecker) CanWrite(ctx context.Context, boardID, userID uuid.UUID) (bool, error) {
	role, err := a.GetUserRole(ctx, boardID, userID)
	if err != nil {
		return false, err
	}
	return role.CanWrite(), nil
}

// requireOwner loads the board and checks owner equality. Ownership is
// authoritative on the board record itself and does not depend on the
// membership table.
func requireOwner(ctx context.Context, boards repository.BoardRepositoryInterface, boardID, userID uuid.UUID) (*model.Board, error) {
	board, err := boards.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("%w: board", ErrNotFound)
	}
	if board.OwnerID != userID {
		return nil, ErrPermissionDenied
	}
	return board, nil
}
