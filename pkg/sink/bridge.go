package sink

import (
	"context"
	"fmt"
	"time"

	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
)

// blockOn runs op as a single operation on its own goroutine and blocks the
// caller until it resolves. The operation gets a fresh context; it never
// inherits anything from the caller. With a positive timeout the wait is
// abandoned once the deadline passes and the operation's context is
// cancelled. A panic inside op is reported as an error.
func blockOn(timeout time.Duration, op func(ctx context.Context) error) error {
	var (
		ctx    context.Context
		cancel context.CancelFunc
	)
	if timeout > 0 {
		ctx, cancel = context.WithTimeout(context.Background(), timeout)
	} else {
		ctx, cancel = context.WithCancel(context.Background())
	}
	defer cancel()

	done := make(chan error, 1)
	go func() {
		defer func() {
			if r := recover(); r != nil {
				done <- fmt.Errorf("write panicked: %v", r)
			}
		}()
		done <- op(ctx)
	}()

	select {
	case err := <-done:
		if err != nil && ctx.Err() == context.DeadlineExceeded {
			return fmt.Errorf("%w after %s: %v", apperrors.ErrTimeout, timeout, err)
		}
		return err
	case <-ctx.Done():
		return fmt.Errorf("%w after %s: %v", apperrors.ErrTimeout, timeout, ctx.Err())
	}
}
