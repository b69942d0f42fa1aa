// Package mocks provides testify mocks of the domain interfaces.
package mocks

import (
	"context"

	"argue.dev/pkg/argue/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockWorkflow is a mock of domain.Workflow.
type MockWorkflow struct {
	mock.Mock
}

var _ domain.Workflow = (*MockWorkflow)(nil)

// NewMockWorkflow creates a MockWorkflow whose expectations are asserted
// when the test ends.
func NewMockWorkflow(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockWorkflow {
	mockWorkflow := &MockWorkflow{}
	mockWorkflow.Mock.Test(t)

	t.Cleanup(func() { mockWorkflow.AssertExpectations(t) })

	return mockWorkflow
}

func (w *MockWorkflow) Analyze(ctx context.Context, args domain.AnalyzeArgs) error {
	return w.Called(ctx, args).Error(0)
}

func (w *MockWorkflow) Extensions(ctx context.Context, args domain.ExtensionsArgs) error {
	return w.Called(ctx, args).Error(0)
}

func (w *MockWorkflow) Iterate(ctx context.Context, args domain.IterateArgs) error {
	return w.Called(ctx, args).Error(0)
}

func (w *MockWorkflow) Relate(ctx context.Context, args domain.RelateArgs) error {
	return w.Called(ctx, args).Error(0)
}

func (w *MockWorkflow) Check(ctx context.Context, args domain.CheckArgs) error {
	return w.Called(ctx, args).Error(0)
}

func (w *MockWorkflow) Examples(ctx context.Context) error {
	return w.Called(ctx).Error(0)
}

func (w *MockWorkflow) Sample(ctx context.Context, args domain.SampleRunArgs) error {
	return w.Called(ctx, args).Error(0)
}

func (w *MockWorkflow) View(ctx context.Context, args domain.ViewArgs) error {
	return w.Called(ctx, args).Error(0)
}
