package service

import (
	"context"
	"fmt"
	"slackcmd/internal/core/domain"
	"slackcmd/internal/core/port"
	"time"

	"github.com/rs/zerolog"
	"github.com/sourcegraph/conc"
	"github.com/sourcegraph/conc/panics"
)

// Invocation is one routed command waiting to be executed.
type Invocation struct {
	ID      string
	Handler Handler
	Args    []string
	Message *domain.Message
	Target  domain.ReplyTarget
}

// Isolator runs handlers in their own goroutines. Errors and panics raised by a handler are logged and
// answered with a generic reply, they never reach the caller.
type Isolator struct {
	replier port.Replier
	timeout time.Duration
	wg      conc.WaitGroup
}

// NewIsolator creates an Isolator. A zero timeout leaves handler executions unbounded.
func NewIsolator(replier port.Replier, timeout time.Duration) *Isolator {
	return &Isolator{replier: replier, timeout: timeout}
}

// Execute schedules inv and returns immediately.
func (i *Isolator) Execute(ctx context.Context, l zerolog.Logger, inv *Invocation, state *State) {
	i.spawn(l, func() {
		i.run(ctx, l, inv, state)
	})
}

// Respond schedules a plain reply and returns immediately. Delivery failures are logged.
func (i *Isolator) Respond(ctx context.Context, l zerolog.Logger, target domain.ReplyTarget, text string) {
	i.spawn(l, func() {
		if err := i.replier.SendReply(ctx, target, text); err != nil {
			l.Error().Err(err).Msg(domain.ErrSendingReplyFailed.Error())
		}
	})
}

// Wait blocks until every scheduled execution has returned.
func (i *Isolator) Wait() {
	i.wg.Wait()
}

func (i *Isolator) run(ctx context.Context, l zerolog.Logger, inv *Invocation, state *State) {
	started := time.Now()

	err := i.execute(ctx, inv, state)
	if err == nil {
		l.Debug().Dur("took", time.Since(started)).Msg("handler finished successfully")
		return
	}

	l.Error().Err(err).Dur("took", time.Since(started)).Msg("handler failed")

	// the handler context may have expired, the notice is sent on the parent
	if err := i.replier.SendReply(ctx, inv.Target, domain.HandlerErrorReply); err != nil {
		l.Error().Err(err).Msg("failed to send error message")
	}
}

func (i *Isolator) execute(ctx context.Context, inv *Invocation, state *State) (err error) {
	if i.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, i.timeout)
		defer cancel()
	}

	var pc panics.Catcher
	pc.Try(func() {
		err = inv.Handler.Execute(ctx, inv.Args, inv.Message, state)
	})
	if r := pc.Recovered(); r != nil {
		return fmt.Errorf("%w: %v\n%s", domain.ErrHandlerPanicked, r.Value, r.Stack)
	}

	return err
}

func (i *Isolator) spawn(l zerolog.Logger, fn func()) {
	i.wg.Go(func() {
		var pc panics.Catcher
		pc.Try(fn)
		if r := pc.Recovered(); r != nil {
			l.Error().Str("panic", r.String()).Msg("recovered panic in background execution")
		}
	})
}
