package command

import (
	"cmdbot/internal/core/domain"
	"strings"
)

const DefaultPrefix = "!"

type Parser struct {
	prefix string
}

func NewParser(prefix string) *Parser {
	if prefix == "" {
		prefix = DefaultPrefix
	}

	return &Parser{prefix: prefix}
}

func (p *Parser) Prefix() string {
	return p.prefix
}

// IsCommand reports whether the response is a chat message starting with the prefix.
func (p *Parser) IsCommand(r domain.Response) bool {
	if r.Kind != domain.ChatMessage {
		return false
	}

	return strings.HasPrefix(r.Message, p.prefix)
}

// Parse splits a command message into its key and positional parameters.
func (p *Parser) Parse(message string) domain.Invocation {
	tokens := strings.Fields(message)
	if len(tokens) == 0 {
		return domain.Invocation{Parameters: []string{}}
	}

	return domain.Invocation{
		Key:        strings.TrimPrefix(tokens[0], p.prefix),
		Parameters: tokens[1:],
	}
}
