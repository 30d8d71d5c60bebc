package service

import (
	"context"
	"fmt"

	"boardsvc/internal/model"
	"boardsvc/internal/repository"

	"github.com/google/uuid"
)

// MemberService manages board memberships: sharing, role changes and
// removal, including the personal/team type transitions they cause.
type MemberService struct {
	boardRepo  repository.BoardRepositoryInterface
	memberRepo repository.BoardMemberRepositoryInterface
	access     *AccessChecker
}

func NewMemberService(
	boardRepo repository.BoardRepositoryInterface,
	memberRepo repository.BoardMemberRepositoryInterface,
	access *AccessChecker,
) *MemberService {
	return &MemberService{
		boardRepo:  boardRepo,
		memberRepo: memberRepo,
		access:     access,
	}
}

// ShareBoard grants targetUserID access with the given role, overwriting
// the role if a membership already exists. The first successful share
// flips the board from personal to team. Owner only.
func (s *MemberService) ShareBoard(ctx context.Context, boardID, ownerID, targetUserID uuid.UUID, role model.Role) error {
	if _, err := requireOwner(ctx, s.boardRepo, boardID, ownerID); err != nil {
		return err
	}
	if targetUserID == ownerID {
		return fmt.Errorf("%w: cannot share a board with its owner", ErrInvalidArgument)
	}

	return s.memberRepo.Share(ctx, boardID, targetUserID, role)
}

// GetMembers returns all membership records for the board. Any member may
// view the list.
func (s *MemberService) GetMembers(ctx context.Context, boardID, userID uuid.UUID) ([]model.BoardMember, error) {
	if err := s.access.CheckPermission(ctx, boardID, userID, model.MemberRoles); err != nil {
		return nil, err
	}
	return s.memberRepo.ListByBoard(ctx, boardID)
}

// UpdateMemberRole overwrites an existing member's role. Owner only; the
// owner's own record is immutable.
func (s *MemberService) UpdateMemberRole(ctx context.Context, boardID, ownerID, memberUserID uuid.UUID, role model.Role) error {
	if _, err := requireOwner(ctx, s.boardRepo, boardID, ownerID); err != nil {
		return err
	}
	if memberUserID == ownerID {
		return fmt.Errorf("%w: the owner's role cannot be changed", ErrInvalidArgument)
	}

	member, err := s.memberRepo.GetByBoardAndUser(ctx, boardID, memberUserID)
	if err != nil {
		return err
	}
	if member == nil {
		return fmt.Errorf("%w: membership", ErrNotFound)
	}

	return s.memberRepo.UpdateRole(ctx, boardID, memberUserID, role)
}

// RemoveMember deletes a member from the board. When only the owner
// remains afterwards the board reverts to personal. Owner only; the owner
// cannot be removed.
func (s *MemberService) RemoveMember(ctx context.Context, boardID, ownerID, memberUserID uuid.UUID) error {
	if _, err := requireOwner(ctx, s.boardRepo, boardID, ownerID); err != nil {
		return err
	}
	if memberUserID == ownerID {
		return fmt.Errorf("%w: the owner cannot be removed", ErrInvalidArgument)
	}

	return s.memberRepo.Remove(ctx, boardID, memberUserID)
}
