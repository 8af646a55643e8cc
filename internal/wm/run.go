package wm

import (
	"context"
	"errors"

	"github.com/yourusername/matrix/internal/event"
	"github.com/yourusername/matrix/internal/logging"
)

// Run handles events one at a time until the exit command runs, ctx is
// canceled or events is closed. Every mutation of s happens on the calling
// goroutine; producers only send on events. Each observer is called on
// that goroutine once at start and after every handled event.
func Run(ctx context.Context, s *Space, events <-chan event.Event, observers ...func(*Space)) error {
	logging.Info().Int("managed", len(s.leaves)).Msg("event loop started")
	notify(s, observers)

	for {
		select {
		case <-ctx.Done():
			logging.Info().Msg("event loop canceled")
			return nil

		case ev, ok := <-events:
			if !ok {
				logging.Info().Msg("event source closed")
				return nil
			}
			err := s.Handle(ev)
			if errors.Is(err, ErrExit) {
				logging.Info().Msg("exit requested")
				return nil
			}
			if err != nil {
				logging.Error().Err(err).Str("event", ev.String()).Msg("event failed")
			}
			notify(s, observers)
		}
	}
}

func notify(s *Space, observers []func(*Space)) {
	for _, fn := range observers {
		fn(s)
	}
}
