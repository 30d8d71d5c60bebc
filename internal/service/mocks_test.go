package service_test

import (
	"context"

	"boardsvc/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

type MockBoardRepository struct {
	mock.Mock
}

func (m *MockBoardRepository) CreateWithOwner(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Board, error) {
	args := m.Called(ctx, id)
	board := args.Get(0)
	if board == nil {
		return nil, args.Error(1)
	}
	return board.(*model.Board), args.Error(1)
}

func (m *MockBoardRepository) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Board, error) {
	args := m.Called(ctx, ids)
	boards := args.Get(0)
	if boards == nil {
		return nil, args.Error(1)
	}
	return boards.([]model.Board), args.Error(1)
}

func (m *MockBoardRepository) Update(ctx context.Context, board *model.Board) error {
	args := m.Called(ctx, board)
	return args.Error(0)
}

func (m *MockBoardRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBoardMemberRepository struct {
	mock.Mock
}

func (m *MockBoardMemberRepository) GetByBoardAndUser(ctx context.Context, boardID, userID uuid.UUID) (*model.BoardMember, error) {
	args := m.Called(ctx, boardID, userID)
	member := args.Get(0)
	if member == nil {
		return nil, args.Error(1)
	}
	return member.(*model.BoardMember), args.Error(1)
}

func (m *MockBoardMemberRepository) ListByBoard(ctx context.Context, boardID uuid.UUID) ([]model.BoardMember, error) {
	args := m.Called(ctx, boardID)
	members := args.Get(0)
	if members == nil {
		return nil, args.Error(1)
	}
	return members.([]model.BoardMember), args.Error(1)
}

func (m *MockBoardMemberRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]model.BoardMember, error) {
	args := m.Called(ctx, userID)
	members := args.Get(0)
	if members == nil {
		return nil, args.Error(1)
	}
	return members.([]model.BoardMember), args.Error(1)
}

func (m *MockBoardMemberRepository) Share(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error {
	args := m.Called(ctx, boardID, userID, role)
	return args.Error(0)
}

func (m *MockBoardMemberRepository) UpdateRole(ctx context.Context, boardID, userID uuid.UUID, role model.Role) error {
	args := m.Called(ctx, boardID, userID, role)
	return args.Error(0)
}

func (m *MockBoardMemberRepository) Remove(ctx context.Context, boardID, userID uuid.UUID) error {
	args := m.Called(ctx, boardID, userID)
	return args.Error(0)
}

func (m *MockBoardMemberRepository) DeleteByBoard(ctx context.Context, boardID uuid.UUID) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}

func (m *MockBoardMemberRepository) CountByBoard(ctx context.Context, boardID uuid.UUID) (int64, error) {
	args := m.Called(ctx, boardID)
	return args.Get(0).(int64), args.Error(1)
}

type MockTaskNotifier struct {
	mock.Mock
}

func (m *MockTaskNotifier) DeleteBoardTasks(ctx context.Context, boardID uuid.UUID) error {
	args := m.Called(ctx, boardID)
	return args.Error(0)
}
