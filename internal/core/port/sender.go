package port

import (
	"context"
	"slackcmd/internal/core/domain"
)

type Replier interface {
	// SendReply posts text into the thread addressed by target.
	SendReply(ctx context.Context, target domain.ReplyTarget, text string) error
}

type MessageStore interface {
	// GetMessage fetches a single message by its timestamp. It returns nil without error when the message does
	// not exist.
	GetMessage(ctx context.Context, channel, messageID string) (*domain.Message, error)
	// GetPermalink returns a shareable link to a message.
	GetPermalink(ctx context.Context, channel, messageID string) (string, error)
	// DeleteMessage removes a message posted by the bot.
	DeleteMessage(ctx context.Context, channel, messageID string) error
}

type Directory interface {
	// GetBotIdentity returns the identity the bot token authenticates as.
	GetBotIdentity(ctx context.Context) (domain.BotIdentity, error)
	// ListKnownChannels returns a map from channel identifier to channel name.
	ListKnownChannels(ctx context.Context) (map[string]string, error)
	// GetChannelName looks up the name of a single channel.
	GetChannelName(ctx context.Context, channel string) (string, error)
}

// ChatClient is the complete outbound chat platform API available to handlers.
type ChatClient interface {
	Replier
	MessageStore
	Directory
}
