package source

import (
	"cmdbot/internal/core/domain"
	"context"
	"errors"
	"slices"
	"strconv"
	"sync"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

var ErrAlreadySubscribed = errors.New("message source already has a subscriber")

type TelegramParams struct {
	// AllowedChatIDs restricts the chats that produce events. Empty allows all.
	AllowedChatIDs []int64
	BroadcasterIDs []int64
	ModeratorIDs   []int64
	VIPIDs         []int64
	Buffer         int
}

// Telegram turns go-telegram updates into responses. Register HandleUpdate as
// the default handler of the bot.
type Telegram struct {
	params     TelegramParams
	events     chan domain.Response
	subscribed bool
	mutex      sync.Mutex
}

func NewTelegram(p TelegramParams) *Telegram {
	return &Telegram{
		params: p,
		events: make(chan domain.Response, max(p.Buffer, 0)),
	}
}

func (s *Telegram) Subscribe(_ context.Context) (<-chan domain.Response, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.subscribed {
		return nil, ErrAlreadySubscribed
	}

	s.subscribed = true
	return s.events, nil
}

func (s *Telegram) HandleUpdate(ctx context.Context, _ *bot.Bot, update *models.Update) {
	if update == nil || update.Message == nil {
		return
	}

	msg := update.Message
	if !s.isAllowed(msg.Chat.ID) {
		log.Debug().Int64("chatID", msg.Chat.ID).Msg("ignoring update from chat outside allowlist")
		return
	}

	r := s.mapMessage(msg)

	select {
	case s.events <- r:
	case <-ctx.Done():
		log.Debug().Int64("chatID", msg.Chat.ID).Msg("context done, dropping update")
	}
}

func (s *Telegram) isAllowed(chatID int64) bool {
	if len(s.params.AllowedChatIDs) == 0 {
		return true
	}

	return slices.Contains(s.params.AllowedChatIDs, chatID)
}

func (s *Telegram) mapMessage(msg *models.Message) domain.Response {
	r := domain.Response{
		Kind:    domain.Unknown,
		Channel: strconv.FormatInt(msg.Chat.ID, 10),
	}

	user := msg.From

	switch {
	case len(msg.NewChatMembers) > 0:
		r.Kind = domain.Join
		user = &msg.NewChatMembers[0]
	case msg.LeftChatMember != nil:
		r.Kind = domain.Part
		user = msg.LeftChatMember
	case msg.Text != "":
		r.Kind = domain.ChatMessage
		r.Message = msg.Text
	case msg.Caption != "":
		r.Kind = domain.ChatMessage
		r.Message = msg.Caption
	}

	if user != nil {
		r.Name = getUserNameOrFirstName(user)
		r.IsBroadcaster = slices.Contains(s.params.BroadcasterIDs, user.ID)
		r.IsModerator = slices.Contains(s.params.ModeratorIDs, user.ID)
		r.IsVIP = slices.Contains(s.params.VIPIDs, user.ID)
	}

	return r
}

func getUserNameOrFirstName(user *models.User) string {
	if user.Username == "" {
		return user.FirstName
	}

	return user.Username
}
