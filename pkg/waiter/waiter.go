// Package waiter polls a query operation until a count condition is met or a
// deadline passes.
package waiter

import (
	"context"
	"log/slog"
	"time"

	"github.com/stackwise/invctl/pkg/condition"
	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/record"
)

// QueryFunc performs one query attempt. A nil slice with a nil error is a
// valid "no result" answer, distinct from an empty one.
type QueryFunc func(ctx context.Context) ([]record.Record, error)

// Wait invokes query until cond is satisfied by the result, sleeping interval
// between attempts. The deadline applies to the loop as a whole, not to an
// individual call; query invocations never overlap.
//
// A satisfied condition returns nil. Exceeding the deadline returns a timeout
// error. A query failure propagates immediately without retrying.
func Wait(ctx context.Context, cond condition.Condition, query QueryFunc, interval, timeout time.Duration) error {
	start := time.Now()
	attempt := 0

	for {
		attempt++
		result, err := query(ctx)
		if err != nil {
			return invErrors.Wrap(invErrors.ErrCodeUpstream, err, "query failed")
		}

		n := len(result)
		if cond.Satisfied(n, result != nil) {
			slog.Debug("wait condition satisfied",
				"condition", cond.String(),
				"attempts", attempt,
				"elapsed", time.Since(start),
			)
			return nil
		}

		if time.Since(start) > timeout {
			return invErrors.Newf(invErrors.ErrCodeTimeout,
				"condition %q not met within %s (%d attempts, last count %d)",
				cond.String(), timeout, attempt, n)
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(interval):
		}
	}
}
