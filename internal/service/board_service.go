package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"boardsvc/internal/model"
	"boardsvc/internal/repository"

	"github.com/google/uuid"
)

// TaskNotifier removes board-scoped records held by the task service.
type TaskNotifier interface {
	DeleteBoardTasks(ctx context.Context, boardID uuid.UUID) error
}

// BoardService manages the board lifecycle: creation, listing, rename and
// deletion with its cascading cleanup.
type BoardService struct {
	boardRepo  repository.BoardRepositoryInterface
	memberRepo repository.BoardMemberRepositoryInterface
	access     *AccessChecker
	tasks      TaskNotifier
}

func NewBoardService(
	boardRepo repository.BoardRepositoryInterface,
	memberRepo repository.BoardMemberRepositoryInterface,
	access *AccessChecker,
	tasks TaskNotifier,
) *BoardService {
	return &BoardService{
		boardRepo:  boardRepo,
		memberRepo: memberRepo,
		access:     access,
		tasks:      tasks,
	}
}

// BoardDetail is a board merged with its full membership list.
type BoardDetail struct {
	Board   model.Board
	Members []model.BoardMember
}

// CreateBoard creates a personal board owned by ownerID together with the
// owner's membership record.
func (s *BoardService) CreateBoard(ctx context.Context, name string, ownerID uuid.UUID) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	board := &model.Board{
		Name:    name,
		OwnerID: ownerID,
		Type:    model.BoardTypePersonal,
	}
	if err := s.boardRepo.CreateWithOwner(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// GetBoards returns every board the user holds a membership on. A user
// with no memberships gets an empty slice, not an error.
func (s *BoardService) GetBoards(ctx context.Context, userID uuid.UUID) ([]model.Board, error) {
	members, err := s.memberRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, len(members))
	for i, m := range members {
		ids[i] = m.BoardID
	}
	return s.boardRepo.GetByIDs(ctx, ids)
}

// GetBoardDetail returns the board with its membership list. Any member
// may view it.
func (s *BoardService) GetBoardDetail(ctx context.Context, boardID, userID uuid.UUID) (*BoardDetail, error) {
	if err := s.access.CheckPermission(ctx, boardID, userID, model.MemberRoles); err != nil {
		return nil, err
	}

	board, err := s.boardRepo.GetByID(ctx, boardID)
	if err != nil {
		return nil, err
	}
	if board == nil {
		return nil, fmt.Errorf("%w: board", ErrNotFound)
	}

	members, err := s.memberRepo.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	return &BoardDetail{Board: *board, Members: members}, nil
}

// UpdateBoard renames the board. Owner only.
func (s *BoardService) UpdateBoard(ctx context.Context, boardID, userID uuid.UUID, name string) (*model.Board, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidArgument)
	}

	board, err := requireOwner(ctx, s.boardRepo, boardID, userID)
	if err != nil {
		return nil, err
	}

	board.Name = name
	if err := s.boardRepo.Update(ctx, board); err != nil {
		return nil, err
	}
	return board, nil
}

// DeleteBoard removes the board and all its memberships, then notifies the
// task service to drop board-scoped records. The notification is
// best-effort: its failure is logged and never rolls back the local
// deletion or fails the call.
func (s *BoardService) DeleteBoard(ctx context.Context, boardID, userID uuid.UUID) error {
	if _, err := requireOwner(ctx, s.boardRepo, boardID, userID); err != nil {
		return err
	}

	if err := s.memberRepo.DeleteByBoard(ctx, boardID); err != nil {
		return err
	}
	if err := s.boardRepo.Delete(ctx, boardID); err != nil {
		return err
	}

	if err := s.tasks.DeleteBoardTasks(ctx, boardID); err != nil {
		log.Printf("⚠️  Task cleanup for board %s failed: %v", boardID, err)
	}
	return nil
}
