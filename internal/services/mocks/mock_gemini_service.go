package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGeminiService struct {
	mock.Mock
}

// GenerateContent records inputs as a single []string argument. A return value
// of type func(context.Context, []string) string is invoked to build the
// response.
func (m *MockGeminiService) GenerateContent(ctx context.Context, inputs ...string) (string, error) {
	args := m.Called(ctx, inputs)
	if fn, ok := args.Get(0).(func(context.Context, []string) string); ok {
		return fn(ctx, inputs), args.Error(1)
	}
	return args.String(0), args.Error(1)
}

// EchoPrompt returns the last input, which is the interpolated prompt.
func EchoPrompt(_ context.Context, inputs []string) string {
	if len(inputs) == 0 {
		return ""
	}
	return inputs[len(inputs)-1]
}
