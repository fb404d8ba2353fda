package search

import (
	"context"
	"time"

	"github.com/risehub-org/risehub/internal/domain"
	"github.com/stretchr/testify/mock"
)

type MockContentRepository struct {
	mock.Mock
}

func (m *MockContentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContentItem), args.Error(1)
}

func (m *MockContentRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ContentItem, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.ContentItem), args.Error(1)
}

type MockHistoryRepository struct {
	mock.Mock
}

func (m *MockHistoryRepository) CountByPrefix(ctx context.Context, prefix string, limit int) ([]QueryCount, error) {
	args := m.Called(ctx, prefix, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]QueryCount), args.Error(1)
}

func (m *MockHistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SearchHistoryEntry, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.SearchHistoryEntry), args.Error(1)
}

type MockInteractionRepository struct {
	mock.Mock
}

func (m *MockInteractionRepository) ListViewsByContent(ctx context.Context, contentID string, limit int) ([]*domain.InteractionEvent, error) {
	args := m.Called(ctx, contentID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InteractionEvent), args.Error(1)
}

func (m *MockInteractionRepository) ListViewsByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.InteractionEvent, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.InteractionEvent), args.Error(1)
}
