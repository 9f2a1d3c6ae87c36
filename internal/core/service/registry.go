package service

import (
	"github.com/rs/zerolog/log"
)

// Registry resolves command names to handlers per channel. It is built once and never modified.
type Registry struct {
	// channel name -> command name -> handler
	channels map[string]map[string]Handler
	all      map[string]Handler
}

func NewRegistry(handlers []Handler) *Registry {
	r := &Registry{
		channels: make(map[string]map[string]Handler),
		all:      make(map[string]Handler),
	}

	for _, h := range handlers {
		l := log.With().Str("handler", h.Name()).Logger()
		scope := h.ChannelScope()

		if scope.IsAll() {
			if _, ok := r.all[h.Name()]; ok {
				l.Warn().Msg("handler already registered for all channels, replacing")
			}
			l.Info().Msg("register for all channels")
			r.all[h.Name()] = h
			continue
		}

		channels := scope.Channels()
		if len(channels) == 0 {
			l.Warn().Msg("handler has an empty channel scope and is unreachable")
			continue
		}

		for _, ch := range channels {
			commands, ok := r.channels[ch]
			if !ok {
				commands = make(map[string]Handler)
				r.channels[ch] = commands
			}
			if _, ok := commands[h.Name()]; ok {
				l.Warn().Str("channel", ch).Msg("handler already registered for channel, replacing")
			}
			l.Info().Str("channel", ch).Msg("register for channel")
			commands[h.Name()] = h
		}
	}

	return r
}

// Resolve returns the handler for command in the named channel, falling back to handlers registered for all
// channels. An empty channel name means the channel is unknown.
func (r *Registry) Resolve(channel, command string) (Handler, bool) {
	if channel != "" {
		if h, ok := r.channels[channel][command]; ok {
			return h, true
		}
	}

	h, ok := r.all[command]
	return h, ok
}
