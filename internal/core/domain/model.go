package domain

type ResponseKind int

const (
	Unknown ResponseKind = iota
	ChatMessage
	Notice
	UserNotice
	Join
	Part
)

func (k ResponseKind) String() string {
	switch k {
	case ChatMessage:
		return "chat_message"
	case Notice:
		return "notice"
	case UserNotice:
		return "user_notice"
	case Join:
		return "join"
	case Part:
		return "part"
	default:
		return "unknown"
	}
}

// Response is a single already-parsed event delivered by a message source.
type Response struct {
	Kind          ResponseKind
	Name          string
	Color         string
	IsBroadcaster bool
	IsModerator   bool
	IsSubscriber  bool
	IsVIP         bool
	Channel       string
	Message       string
}

// User returns the identity of the sender of the response.
func (r Response) User() User {
	return User{
		Name:          r.Name,
		Color:         r.Color,
		IsBroadcaster: r.IsBroadcaster,
		IsModerator:   r.IsModerator,
		IsSubscriber:  r.IsSubscriber,
		IsVIP:         r.IsVIP,
	}
}

func (r Response) ChannelRef() Channel {
	return Channel{Name: r.Channel}
}

type User struct {
	Name          string
	Color         string
	IsBroadcaster bool
	IsModerator   bool
	IsSubscriber  bool
	IsVIP         bool
}

// IsPrivileged reports whether the user owns or moderates the channel.
func (u User) IsPrivileged() bool {
	return u.IsBroadcaster || u.IsModerator
}

type Channel struct {
	Name string
}

type Author string

const (
	UserAuthor   Author = "user"
	SystemAuthor Author = "system"
)

type Prompt struct {
	Prompt string
	Author Author
}

type ModelResponse struct {
	Response string
	Metadata ResponseMetadata
}

type ResponseMetadata struct {
	Model            string
	CompletionTokens int
	TotalTokens      int
}
