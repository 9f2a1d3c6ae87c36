package sender

import (
	"context"
	"fmt"
	"slackcmd/internal/core/domain"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack"
)

// SlackMessageLimit is the number of characters posted per message, longer replies are split.
const SlackMessageLimit = 4000

const channelPageSize = 100

type SlackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	GetConversationHistoryContext(ctx context.Context,
		params *slack.GetConversationHistoryParameters) (*slack.GetConversationHistoryResponse, error)
	GetPermalinkContext(ctx context.Context, params *slack.PermalinkParameters) (string, error)
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
	AuthTestContext(ctx context.Context) (*slack.AuthTestResponse, error)
	GetConversationsContext(ctx context.Context, params *slack.GetConversationsParameters) ([]slack.Channel, string,
		error)
	GetConversationInfoContext(ctx context.Context, input *slack.GetConversationInfoInput) (*slack.Channel, error)
}

type Slack struct {
	api SlackAPI
}

func NewSlack(api SlackAPI) *Slack {
	return &Slack{api: api}
}

func (s *Slack) SendReply(ctx context.Context, target domain.ReplyTarget, text string) error {
	for _, chunk := range splitMessage(text, SlackMessageLimit) {
		log.Trace().Str("channel", target.Channel).Str("thread", target.Thread).Msg("sending reply")

		_, _, err := s.api.PostMessageContext(ctx, target.Channel,
			slack.MsgOptionText(chunk, false),
			slack.MsgOptionTS(target.Thread),
		)
		if err != nil {
			log.Error().Err(err).Str("channel", target.Channel).Msg("failed to send message")
			return err
		}
	}

	return nil
}

func (s *Slack) GetMessage(ctx context.Context, channel, messageID string) (*domain.Message, error) {
	res, err := s.api.GetConversationHistoryContext(ctx, &slack.GetConversationHistoryParameters{
		ChannelID: channel,
		Latest:    messageID,
		Inclusive: true,
		Limit:     1,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch message history: %w", err)
	}

	for _, m := range res.Messages {
		if m.Timestamp != messageID {
			continue
		}

		return &domain.Message{
			Channel:         channel,
			User:            m.User,
			Timestamp:       m.Timestamp,
			ThreadTimestamp: m.ThreadTimestamp,
			Text:            m.Text,
			SubType:         m.SubType,
		}, nil
	}

	return nil, nil
}

func (s *Slack) GetPermalink(ctx context.Context, channel, messageID string) (string, error) {
	link, err := s.api.GetPermalinkContext(ctx, &slack.PermalinkParameters{Channel: channel, Ts: messageID})
	if err != nil {
		return "", fmt.Errorf("failed to fetch permalink: %w", err)
	}

	return link, nil
}

func (s *Slack) DeleteMessage(ctx context.Context, channel, messageID string) error {
	_, _, err := s.api.DeleteMessageContext(ctx, channel, messageID)
	if err != nil {
		log.Error().Err(err).Str("channel", channel).Str("ts", messageID).Msg("failed to delete message")
		return err
	}

	return nil
}

func (s *Slack) GetBotIdentity(ctx context.Context) (domain.BotIdentity, error) {
	res, err := s.api.AuthTestContext(ctx)
	if err != nil {
		return domain.BotIdentity{}, fmt.Errorf("auth test failed: %w", err)
	}

	return domain.BotIdentity{
		UserID: res.UserID,
		BotID:  res.BotID,
		Name:   res.User,
		TeamID: res.TeamID,
	}, nil
}

// ListKnownChannels pages through all public and private channels that are not archived.
func (s *Slack) ListKnownChannels(ctx context.Context) (map[string]string, error) {
	result := make(map[string]string)
	params := &slack.GetConversationsParameters{
		ExcludeArchived: true,
		Limit:           channelPageSize,
		Types:           []string{"public_channel", "private_channel"},
	}

	for {
		channels, cursor, err := s.api.GetConversationsContext(ctx, params)
		if err != nil {
			return nil, fmt.Errorf("failed to list channels: %w", err)
		}

		for _, ch := range channels {
			if ch.Name == "" {
				return nil, fmt.Errorf("channel name is missing for %s", ch.ID)
			}
			result[ch.ID] = ch.Name
		}

		if cursor == "" {
			break
		}
		params.Cursor = cursor
	}

	log.Debug().Int("channels", len(result)).Msg("fetched known channels")

	return result, nil
}

func (s *Slack) GetChannelName(ctx context.Context, channel string) (string, error) {
	ch, err := s.api.GetConversationInfoContext(ctx, &slack.GetConversationInfoInput{ChannelID: channel})
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel info: %w", err)
	}

	return ch.Name, nil
}

func splitMessage(text string, limit int) []string {
	runes := []rune(text)
	if len(runes) <= limit {
		return []string{text}
	}

	var chunks []string
	for len(runes) > limit {
		chunks = append(chunks, string(runes[:limit]))
		runes = runes[limit:]
	}
	if len(runes) > 0 {
		chunks = append(chunks, string(runes))
	}

	return chunks
}
