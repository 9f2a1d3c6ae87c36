package commands

import (
	"context"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/service"
	"time"

	"github.com/stretchr/testify/mock"
)

type MockChatClient struct{ mock.Mock }

func (m *MockChatClient) SendReply(ctx context.Context, target domain.ReplyTarget, text string) error {
	args := m.Called(ctx, target, text)
	return args.Error(0)
}

func (m *MockChatClient) GetMessage(ctx context.Context, channel, messageID string) (*domain.Message, error) {
	args := m.Called(ctx, channel, messageID)
	msg, _ := args.Get(0).(*domain.Message)
	return msg, args.Error(1)
}

func (m *MockChatClient) GetPermalink(ctx context.Context, channel, messageID string) (string, error) {
	args := m.Called(ctx, channel, messageID)
	return args.String(0), args.Error(1)
}

func (m *MockChatClient) DeleteMessage(ctx context.Context, channel, messageID string) error {
	args := m.Called(ctx, channel, messageID)
	return args.Error(0)
}

func (m *MockChatClient) GetBotIdentity(ctx context.Context) (domain.BotIdentity, error) {
	args := m.Called(ctx)
	identity, _ := args.Get(0).(domain.BotIdentity)
	return identity, args.Error(1)
}

func (m *MockChatClient) ListKnownChannels(ctx context.Context) (map[string]string, error) {
	args := m.Called(ctx)
	channels, _ := args.Get(0).(map[string]string)
	return channels, args.Error(1)
}

func (m *MockChatClient) GetChannelName(ctx context.Context, channel string) (string, error) {
	args := m.Called(ctx, channel)
	return args.String(0), args.Error(1)
}

func newState(client *MockChatClient) *service.State {
	return &service.State{
		Marker:    "<@U1>",
		Identity:  domain.BotIdentity{UserID: "U1", Name: "cmdbot"},
		Client:    client,
		Channels:  domain.NewChannelDirectory(map[string]string{"C1": "ops", "C2": "general"}),
		StartTime: time.Now().Add(-90 * time.Second),
	}
}

var (
	testMessage = &domain.Message{Channel: "C1", Timestamp: "100.2", ThreadTimestamp: "100.1", Text: "<@U1> cmd"}
	testTarget  = domain.ReplyTarget{Channel: "C1", Thread: "100.1"}
)
