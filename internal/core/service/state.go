package service

import (
	"context"
	"fmt"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/port"
	"time"

	"github.com/rs/zerolog/log"
)

// State is shared by the dispatcher and every running handler. Only Channels changes after construction.
type State struct {
	Marker    string
	Identity  domain.BotIdentity
	Client    port.ChatClient
	Channels  *domain.ChannelDirectory
	StartTime time.Time

	registry *Registry
	help     *Help
}

// NewState fetches the bot identity and channel list from the client and indexes handlers. A missing bot user
// id is fatal.
func NewState(ctx context.Context, client port.ChatClient, handlers []Handler) (*State, error) {
	identity, err := client.GetBotIdentity(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bot identity: %w", err)
	}

	marker, err := identity.Marker()
	if err != nil {
		return nil, err
	}

	known, err := client.ListKnownChannels(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list known channels: %w", err)
	}

	log.Info().
		Str("user", identity.UserID).
		Str("name", identity.Name).
		Int("channels", len(known)).
		Msg("bot identity loaded")

	return &State{
		Marker:    marker,
		Identity:  identity,
		Client:    client,
		Channels:  domain.NewChannelDirectory(known),
		StartTime: time.Now(),
		registry:  NewRegistry(handlers),
		help:      NewHelp(handlers),
	}, nil
}

// Resolve finds the handler for command in the channel with the given identifier.
func (s *State) Resolve(channelID, command string) (Handler, bool) {
	return s.registry.Resolve(s.channelName(channelID), command)
}

// RenderHelp renders the help listing for the channel with the given identifier.
func (s *State) RenderHelp(channelID, unknownCommand string) string {
	return s.help.Render(s.channelName(channelID), unknownCommand)
}

func (s *State) Uptime() time.Duration {
	return time.Since(s.StartTime)
}

func (s *State) channelName(channelID string) string {
	name, ok := s.Channels.Name(channelID)
	if !ok {
		log.Debug().Str("channel", channelID).Msg("channel name not found, using all channels scope")
		return ""
	}

	return name
}
