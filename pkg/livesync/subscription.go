package livesync

import (
	"context"

	"github.com/capsule-admin/campaign-governance-service/pkg/errors"
)

// Source couples a full-collection read with a change notification stream.
// Snapshot returns the complete current contents of the remote collection;
// Changes signals every remote mutation, including ones this client issued.
type Source[T any] interface {
	Snapshot(ctx context.Context) ([]T, error)
	Changes(ctx context.Context) (<-chan struct{}, error)
}

// Subscription is a standing snapshot subscription. Unsubscribe is the only
// cancellation primitive; it tears down the change stream and waits for the
// delivery goroutine to exit.
type Subscription struct {
	cancel context.CancelFunc
	done   chan struct{}
}

func (s *Subscription) Unsubscribe() {
	s.cancel()
	<-s.done
}

// Subscribe establishes a subscription on src. The full current snapshot is
// delivered once immediately and again after every remote mutation; the
// consumer replaces its local mirror wholesale on each delivery. A source
// error is reported once through onError and ends the subscription; it is
// not retried.
func Subscribe[T any](ctx context.Context, src Source[T], onSnapshot func([]T), onError func(error)) *Subscription {
	ctx, cancel := context.WithCancel(ctx)
	sub := &Subscription{
		cancel: cancel,
		done:   make(chan struct{}),
	}

	go func() {
		defer close(sub.done)

		changes, err := src.Changes(ctx)
		if err != nil {
			onError(err)
			return
		}

		deliver := func() bool {
			records, err := src.Snapshot(ctx)
			if err != nil {
				if ctx.Err() == nil {
					onError(err)
				}
				return false
			}
			onSnapshot(records)
			return true
		}

		if !deliver() {
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-changes:
				if !ok {
					if ctx.Err() == nil {
						onError(errors.NewServerError(errors.ErrSubscriptionClosed, nil))
					}
					return
				}
				if !deliver() {
					return
				}
			}
		}
	}()

	return sub
}
