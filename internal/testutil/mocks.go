package testutil

import (
	"context"

	"homeworkbot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockStatusSource is a mock for service.StatusSource
type MockStatusSource struct {
	mock.Mock
}

func (m *MockStatusSource) Fetch(ctx context.Context, since int64) (*domain.StatusReport, error) {
	args := m.Called(since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.StatusReport), args.Error(1)
}

// MockNotifier is a mock for service.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Send(text string) {
	m.Called(text)
}
