package mocks

import (
	"context"

	"content-state/core/events"

	"github.com/stretchr/testify/mock"
)

// Publisher is a mock implementation of events.Publisher
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, evt events.StateChanged) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *Publisher) Close() {
	m.Called()
}
