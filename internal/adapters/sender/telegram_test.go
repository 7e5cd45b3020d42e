package sender

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockBot struct {
	mock.Mock
}

func (m *MockBot) SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error) {
	args := m.Called(ctx, params)
	msg, _ := args.Get(0).(*models.Message)
	return msg, args.Error(1)
}

func TestTelegram_Say(t *testing.T) {
	longText := strings.Repeat("x", TelegramMessageLimit+10)

	tests := []struct {
		name      string
		channel   string
		text      string
		wantCalls int
		setupMock func(mb *MockBot)
		wantErr   bool
	}{
		{
			name:      "single message",
			channel:   "1001",
			text:      "hello",
			wantCalls: 1,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
					return params.Text == "hello" && params.ChatID == int64(1001)
				})).
					Return(&models.Message{ID: 123}, nil).
					Once()
			},
		},
		{
			name:      "message chunked in two",
			channel:   "-1001",
			text:      longText,
			wantCalls: 2,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.MatchedBy(func(params *bot.SendMessageParams) bool {
					return len(params.Text) <= TelegramMessageLimit
				})).
					Return(&models.Message{ID: 456}, nil).
					Twice()
			},
		},
		{
			name:      "send fails on first",
			channel:   "1001",
			text:      "fail",
			wantCalls: 1,
			setupMock: func(mb *MockBot) {
				mb.On("SendMessage", mock.Anything, mock.Anything).Return(nil, errors.New("fail")).Once()
			},
			wantErr: true,
		},
		{
			name:      "invalid chat id",
			channel:   "stream",
			text:      "hello",
			wantCalls: 0,
			setupMock: func(_ *MockBot) {},
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mb := new(MockBot)
			sender := NewTelegram(mb, "cmdbot", 0)

			tc.setupMock(mb)
			err := sender.Say(t.Context(), tc.channel, tc.text)

			if tc.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
			mb.AssertNumberOfCalls(t, "SendMessage", tc.wantCalls)
			mb.AssertExpectations(t)
		})
	}
}

func TestTelegram_SayThrottledContextCancelled(t *testing.T) {
	mb := new(MockBot)
	mb.On("SendMessage", mock.Anything, mock.Anything).Return(&models.Message{}, nil).Once()

	sender := NewTelegram(mb, "cmdbot", 0.001)
	require.NoError(t, sender.Say(t.Context(), "1", "first"))

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := sender.Say(ctx, "1", "second")
	require.Error(t, err)
	mb.AssertNumberOfCalls(t, "SendMessage", 1)
}

func TestChunkText(t *testing.T) {
	assert.Equal(t, []string{"abc"}, chunkText("abc", 3))
	assert.Equal(t, []string{"ab", "cd", "e"}, chunkText("abcde", 2))
	assert.Equal(t, []string{"äö", "ü"}, chunkText("äöü", 2))
}

func TestConsole_Say(t *testing.T) {
	sb := &strings.Builder{}
	c := NewConsole("cmdbot", sb)

	require.NoError(t, c.Say(t.Context(), "console", "pong"))
	assert.Equal(t, "cmdbot", c.Name())
	assert.Equal(t, "[console] cmdbot: pong\n", sb.String())
}
