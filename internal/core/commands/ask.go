package commands

import (
	"context"
	"fmt"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/port"
	"slackcmd/internal/core/service"
	"strings"

	"github.com/rs/zerolog/log"
)

type AskHandler struct {
	generator port.TextGenerator
	scope     domain.ChannelScope
}

func NewAskHandler(generator port.TextGenerator, scope domain.ChannelScope) *AskHandler {
	return &AskHandler{generator: generator, scope: scope}
}

func (h *AskHandler) Name() string {
	return "ask"
}

func (h *AskHandler) Description() string {
	return "Ask the language model a question"
}

func (h *AskHandler) ChannelScope() domain.ChannelScope {
	return h.scope
}

func (h *AskHandler) Execute(ctx context.Context, args []string, message *domain.Message,
	state *service.State) error {
	target, err := message.ReplyTarget()
	if err != nil {
		return err
	}

	var prompt string
	if len(args) > 1 {
		prompt = strings.TrimSpace(strings.Join(args[1:], " "))
	}

	if prompt == "" {
		return reply(ctx, state.Client, target, "please input a prompt")
	}

	log.Debug().Str("channel", target.Channel).Int("length", len(prompt)).Msg("generating answer")

	response, err := h.generator.GenerateFromPrompt(ctx, prompt)
	if err != nil {
		return fmt.Errorf("failed to generate reply: %w", err)
	}

	return reply(ctx, state.Client, target, response)
}
