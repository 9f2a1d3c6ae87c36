package service

import (
	"fmt"
	"slackcmd/internal/core/domain"
	"sort"
	"strings"
)

const helpBullet = "\n• "

// Help renders the fallback help listing from the registered handlers.
type Help struct {
	global   []string
	channels map[string][]string
}

func NewHelp(handlers []Handler) *Help {
	h := &Help{channels: make(map[string][]string)}

	for _, handler := range handlers {
		entry := helpEntry(handler.Name(), handler.Description())

		scope := handler.ChannelScope()
		if scope.IsAll() {
			h.global = append(h.global, entry)
			continue
		}

		for _, ch := range scope.Channels() {
			h.channels[ch] = append(h.channels[ch], entry)
		}
	}

	sort.Strings(h.global)
	for _, entries := range h.channels {
		sort.Strings(entries)
	}

	return h
}

// Render builds the help message for a channel. unknownCommand is announced unless it is empty or the
// help command itself.
func (h *Help) Render(channel, unknownCommand string) string {
	sb := &strings.Builder{}

	if unknownCommand != "" && unknownCommand != domain.HelpCommand {
		fmt.Fprintf(sb, "Unknown command: `%s`\n", unknownCommand)
	}

	sb.WriteString("Available commands:")
	sb.WriteString(helpBullet)
	sb.WriteString(helpEntry(domain.HelpCommand, domain.HelpDescription))

	entries := h.global
	if channel != "" {
		entries = append(entries[:len(entries):len(entries)], h.channels[channel]...)
	}

	for _, entry := range entries {
		sb.WriteString(helpBullet)
		sb.WriteString(entry)
	}

	return sb.String()
}

func helpEntry(name, description string) string {
	return fmt.Sprintf("`%s`: %s", name, description)
}
