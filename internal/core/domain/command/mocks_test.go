package command

import (
	"cmdbot/internal/core/domain"
	"context"

	"github.com/stretchr/testify/mock"
)

type MockBot struct {
	mock.Mock
}

func (m *MockBot) Name() string {
	return "cmdbot"
}

func (m *MockBot) Say(ctx context.Context, channel string, text string) error {
	args := m.Called(ctx, channel, text)
	return args.Error(0)
}

type MockTracker struct {
	counts map[string]int
}

func (m *MockTracker) Record(key string) {
	if m.counts == nil {
		m.counts = make(map[string]int)
	}
	m.counts[key]++
}

func (m *MockTracker) Count(key string) int {
	return m.counts[key]
}

type MockGenerator struct {
	prompts []domain.Prompt
	resp    string
	err     error
}

func (m *MockGenerator) GenerateFromPrompt(_ context.Context, prompts []domain.Prompt) (domain.ModelResponse, error) {
	m.prompts = prompts
	if m.err != nil {
		return domain.ModelResponse{}, m.err
	}
	return domain.ModelResponse{Response: m.resp, Metadata: domain.ResponseMetadata{Model: "mock"}}, nil
}

func bind(b *Base, bot *MockBot, user domain.User) {
	b.SetUser(user)
	b.SetChannel(domain.Channel{Name: "stream"})
	b.SetBot(bot)
}
