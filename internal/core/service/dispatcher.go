package service

import (
	"context"
	"slackcmd/internal/core/domain"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

// Dispatcher routes inbound messages to handlers. Routing happens in arrival order, execution does not.
type Dispatcher struct {
	state    *State
	isolator *Isolator
}

func NewDispatcher(state *State, timeout time.Duration) *Dispatcher {
	return &Dispatcher{
		state:    state,
		isolator: NewIsolator(state.Client, timeout),
	}
}

// Run dispatches messages from events until the channel is closed or ctx is done.
func (d *Dispatcher) Run(ctx context.Context, events <-chan *domain.Message) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case message, ok := <-events:
			if !ok {
				return nil
			}
			d.Handle(ctx, message)
		}
	}
}

// Handle routes a single message and schedules its execution. It never waits for the handler.
func (d *Dispatcher) Handle(ctx context.Context, message *domain.Message) {
	if message == nil || !message.IsPlain() {
		log.Trace().Msg("event was ignored as it is not a plain message")
		return
	}

	body, ok := domain.StripMarker(message.Text, d.state.Marker)
	if !ok {
		log.Trace().Msg("event was ignored as non-related to the bot")
		return
	}

	target, err := message.ReplyTarget()
	if err != nil {
		log.Warn().Err(err).Str("ts", message.Timestamp).Msg("dropping command without reply target")
		return
	}

	// executions outlive the event that triggered them
	ctx = context.WithoutCancel(ctx)

	command := domain.ParseCommand(body)

	id, err := uuid.NewV4()
	if err != nil {
		log.Warn().Err(err).Msg("failed to generate invocation id")
	}

	l := log.With().
		Str("invocation", id.String()).
		Str("channel", target.Channel).
		Str("thread", target.Thread).
		Str("command", command).
		Logger()

	l.Debug().Str("user", message.User).Msg("received command")

	args, err := domain.Tokenize(body)
	if err != nil {
		l.Debug().Err(err).Msg("failed to parse arguments")
		d.isolator.Respond(ctx, l, target, domain.InvalidQuotingReply)
		return
	}

	handler, ok := d.state.Resolve(target.Channel, command)
	if !ok {
		l.Debug().Msg("no handler for command, responding with help")
		d.isolator.Respond(ctx, l, target, d.state.RenderHelp(target.Channel, command))
		return
	}

	d.isolator.Execute(ctx, l, &Invocation{
		ID:      id.String(),
		Handler: handler,
		Args:    args,
		Message: message,
		Target:  target,
	}, d.state)
}

// Wait blocks until all scheduled executions have finished.
func (d *Dispatcher) Wait() {
	d.isolator.Wait()
}
