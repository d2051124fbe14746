package waiter

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stackwise/invctl/pkg/condition"
	invErrors "github.com/stackwise/invctl/pkg/errors"
	"github.com/stackwise/invctl/pkg/record"
)

func TestWait_SatisfiedAfterSecondAttempt(t *testing.T) {
	calls := 0
	query := func(_ context.Context) ([]record.Record, error) {
		calls++
		if calls == 1 {
			return []record.Record{{"name": "web01"}}, nil
		}
		return []record.Record{{"name": "web01"}, {"name": "web02"}}, nil
	}

	err := Wait(context.Background(), condition.Exact(2), query, 0, 10*time.Second)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("query invoked %d times, want exactly 2", calls)
	}
}

func TestWait_ZeroConditionSatisfiedByNilResult(t *testing.T) {
	calls := 0
	query := func(_ context.Context) ([]record.Record, error) {
		calls++
		return nil, nil
	}

	err := Wait(context.Background(), condition.Zero(), query, 0, time.Second)
	if err != nil {
		t.Fatalf("Wait failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("query invoked %d times, want 1", calls)
	}
}

func TestWait_Timeout(t *testing.T) {
	query := func(_ context.Context) ([]record.Record, error) {
		return nil, nil
	}

	err := Wait(context.Background(), condition.Exact(1), query, time.Millisecond, 20*time.Millisecond)
	if err == nil {
		t.Fatal("Wait succeeded, want timeout")
	}
	if invErrors.CodeOf(err) != invErrors.ErrCodeTimeout {
		t.Errorf("code = %q, want timeout", invErrors.CodeOf(err))
	}
}

func TestWait_UpstreamFailurePropagatesImmediately(t *testing.T) {
	calls := 0
	query := func(_ context.Context) ([]record.Record, error) {
		calls++
		return nil, fmt.Errorf("connection refused")
	}

	err := Wait(context.Background(), condition.Exact(1), query, 0, 10*time.Second)
	if err == nil {
		t.Fatal("Wait succeeded, want error")
	}
	if invErrors.CodeOf(err) != invErrors.ErrCodeUpstream {
		t.Errorf("code = %q, want upstream failure", invErrors.CodeOf(err))
	}
	if calls != 1 {
		t.Errorf("query invoked %d times, want 1 (no retry)", calls)
	}
}

func TestWait_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	query := func(_ context.Context) ([]record.Record, error) {
		cancel()
		return nil, nil
	}

	err := Wait(ctx, condition.Exact(1), query, time.Minute, time.Hour)
	if err != context.Canceled {
		t.Errorf("err = %v, want context.Canceled", err)
	}
}
