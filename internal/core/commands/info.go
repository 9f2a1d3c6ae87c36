package commands

import (
	"context"
	"fmt"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/service"
	"strings"
	"time"
)

type InfoHandler struct{}

func NewInfoHandler() *InfoHandler {
	return &InfoHandler{}
}

func (h *InfoHandler) Name() string {
	return "info"
}

func (h *InfoHandler) Description() string {
	return "Print bot info"
}

func (h *InfoHandler) ChannelScope() domain.ChannelScope {
	return domain.AllChannels()
}

func (h *InfoHandler) Execute(ctx context.Context, _ []string, message *domain.Message, state *service.State) error {
	target, err := message.ReplyTarget()
	if err != nil {
		return err
	}

	userID := state.Identity.UserID
	if userID == "" {
		userID = "N/A"
	}

	sb := &strings.Builder{}
	sb.WriteString("Bot info:\n")
	fmt.Fprintf(sb, "- Bot user_id: %s\n", userID)
	fmt.Fprintf(sb, "- Bot user_name: %s\n", state.Identity.Name)
	fmt.Fprintf(sb, "- Uptime: %s\n", state.Uptime().Truncate(time.Second))
	sb.WriteString("- Known channels:")
	for _, name := range state.Channels.Names() {
		sb.WriteString("\n")
		sb.WriteString(name)
	}

	err = state.Client.SendReply(ctx, target, sb.String())
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrSendingReplyFailed, err)
	}

	return nil
}
