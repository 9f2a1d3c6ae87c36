package handler

import (
	"context"
	"errors"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/service"

	"github.com/rs/zerolog/log"
	"github.com/slack-go/slack/slackevents"
	"github.com/slack-go/slack/socketmode"
)

type CommandDispatcher interface {
	Handle(ctx context.Context, message *domain.Message)
}

// Listener receives socket mode events, acknowledges them and feeds messages to the dispatcher.
type Listener struct {
	client     *socketmode.Client
	dispatcher CommandDispatcher
	state      *service.State
	ack        func(req socketmode.Request)
}

func NewListener(client *socketmode.Client, dispatcher CommandDispatcher, state *service.State) *Listener {
	return &Listener{
		client:     client,
		dispatcher: dispatcher,
		state:      state,
		ack: func(req socketmode.Request) {
			client.Ack(req)
		},
	}
}

// Run connects to Slack and serves events until ctx is done or the connection fails for good.
func (l *Listener) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		runErr <- l.client.RunContext(ctx)
		cancel()
	}()

	l.Serve(ctx, l.client.Events)

	err := <-runErr
	if errors.Is(err, context.Canceled) {
		return nil
	}

	return err
}

// Serve handles events one at a time, in arrival order, until ctx is done or events is closed.
func (l *Listener) Serve(ctx context.Context, events <-chan socketmode.Event) {
	for {
		select {
		case <-ctx.Done():
			log.Debug().Msg("listener stopped")
			return
		case evt, ok := <-events:
			if !ok {
				return
			}
			l.handleEvent(ctx, evt)
		}
	}
}

func (l *Listener) handleEvent(ctx context.Context, evt socketmode.Event) {
	switch evt.Type {
	case socketmode.EventTypeConnecting:
		log.Info().Msg("connecting to slack")
	case socketmode.EventTypeConnected:
		log.Info().Msg("connected to slack")
	case socketmode.EventTypeConnectionError:
		log.Warn().Interface("data", evt.Data).Msg("slack connection error")
	case socketmode.EventTypeEventsAPI:
		if evt.Request != nil {
			l.ack(*evt.Request)
		}

		apiEvent, ok := evt.Data.(slackevents.EventsAPIEvent)
		if !ok {
			log.Warn().Msg("unexpected events api payload")
			return
		}
		l.handleInnerEvent(ctx, apiEvent.InnerEvent)
	default:
		log.Trace().Str("type", string(evt.Type)).Msg("ignoring socket mode event")
	}
}

func (l *Listener) handleInnerEvent(ctx context.Context, inner slackevents.EventsAPIInnerEvent) {
	switch ev := inner.Data.(type) {
	case *slackevents.MessageEvent:
		l.dispatcher.Handle(ctx, &domain.Message{
			Channel:         ev.Channel,
			User:            ev.User,
			Timestamp:       ev.TimeStamp,
			ThreadTimestamp: ev.ThreadTimeStamp,
			Text:            ev.Text,
			SubType:         ev.SubType,
		})
	case *slackevents.ChannelCreatedEvent:
		l.learnChannel(ev.Channel.ID, ev.Channel.Name)
	case *slackevents.ChannelRenameEvent:
		l.learnChannel(ev.Channel.ID, ev.Channel.Name)
	case *slackevents.MemberJoinedChannelEvent:
		if ev.User != l.state.Identity.UserID {
			return
		}

		// the lookup is a network call and must not hold up ingestion
		go l.resolveChannel(ctx, ev.Channel)
	default:
		log.Trace().Str("type", inner.Type).Msg("ignoring inner event")
	}
}

func (l *Listener) resolveChannel(ctx context.Context, id string) {
	name, err := l.state.Client.GetChannelName(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("channel", id).Msg("failed to resolve joined channel")
		return
	}

	l.learnChannel(id, name)
}

func (l *Listener) learnChannel(id, name string) {
	if id == "" || name == "" {
		return
	}

	log.Info().Str("channel", id).Str("name", name).Msg("learned channel")
	l.state.Channels.Put(id, name)
}
