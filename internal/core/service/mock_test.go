package service

import (
	"context"
	"slackcmd/internal/core/domain"
	"sync"
)

type sentReply struct {
	Target domain.ReplyTarget
	Text   string
}

type MockChatClient struct {
	mu        sync.Mutex
	replies   []sentReply
	replyErr  error
	identity  domain.BotIdentity
	idErr     error
	channels  map[string]string
	chanErr   error
	permalink string
}

func (m *MockChatClient) SendReply(_ context.Context, target domain.ReplyTarget, text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.replies = append(m.replies, sentReply{Target: target, Text: text})
	return m.replyErr
}

func (m *MockChatClient) Replies() []sentReply {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentReply(nil), m.replies...)
}

func (m *MockChatClient) GetMessage(_ context.Context, _, _ string) (*domain.Message, error) {
	return nil, nil
}

func (m *MockChatClient) GetPermalink(_ context.Context, _, _ string) (string, error) {
	return m.permalink, nil
}

func (m *MockChatClient) DeleteMessage(_ context.Context, _, _ string) error {
	return nil
}

func (m *MockChatClient) GetBotIdentity(_ context.Context) (domain.BotIdentity, error) {
	return m.identity, m.idErr
}

func (m *MockChatClient) ListKnownChannels(_ context.Context) (map[string]string, error) {
	return m.channels, m.chanErr
}

func (m *MockChatClient) GetChannelName(_ context.Context, channel string) (string, error) {
	return m.channels[channel], nil
}

type handlerCall struct {
	Args    []string
	Message *domain.Message
}

type MockHandler struct {
	name        string
	description string
	scope       domain.ChannelScope
	execute     func(ctx context.Context, args []string) error

	mu    sync.Mutex
	calls []handlerCall
}

func newMockHandler(name string, scope domain.ChannelScope) *MockHandler {
	return &MockHandler{name: name, description: "does " + name, scope: scope}
}

func (m *MockHandler) Name() string {
	return m.name
}

func (m *MockHandler) Description() string {
	return m.description
}

func (m *MockHandler) ChannelScope() domain.ChannelScope {
	return m.scope
}

func (m *MockHandler) Execute(ctx context.Context, args []string, message *domain.Message, _ *State) error {
	m.mu.Lock()
	m.calls = append(m.calls, handlerCall{Args: args, Message: message})
	m.mu.Unlock()

	if m.execute != nil {
		return m.execute(ctx, args)
	}

	return nil
}

func (m *MockHandler) Calls() []handlerCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]handlerCall(nil), m.calls...)
}
