package service

import (
	"context"
	"slackcmd/internal/core/domain"
)

// Handler is a chat command the bot can execute.
type Handler interface {
	// Name is the command word users type after the bot mention. It is also used in the help listing.
	Name() string
	// Description is shown next to the name in the help listing.
	Description() string
	// ChannelScope lists the channel names the command is reachable from.
	ChannelScope() domain.ChannelScope
	// Execute runs the command. args holds the tokenized message body, command word first. Implementations may
	// be invoked concurrently and must only reply through state.Client.
	Execute(ctx context.Context, args []string, message *domain.Message, state *State) error
}
