package retry

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"
)

type testSQLiteError struct {
	code int
}

func (e testSQLiteError) Error() string { return fmt.Sprintf("sqlite error %d", e.code) }
func (e testSQLiteError) Code() int     { return e.code }

func TestDo_RetriesOnBusy(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3}, IsBusy, func() error {
		attempts++
		return testSQLiteError{code: codeBusy}
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 3 {
		t.Fatalf("expected 3 attempts, got %d", attempts)
	}
}

func TestDo_NoRetryOnOtherErrors(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3}, IsBusy, func() error {
		attempts++
		return errors.New("boom")
	})

	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if attempts != 1 {
		t.Fatalf("expected 1 attempt, got %d", attempts)
	}
}

func TestDo_SucceedsAfterRetry(t *testing.T) {
	attempts := 0
	err := Do(context.Background(), Config{MaxAttempts: 3, BaseDelay: time.Millisecond}, nil, func() error {
		attempts++
		if attempts == 1 {
			return fmt.Errorf("themestore: upsert failed: %w", testSQLiteError{code: codeLocked})
		}
		return nil
	})

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if attempts != 2 {
		t.Fatalf("expected 2 attempts, got %d", attempts)
	}
}

func TestDo_ContextCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	attempts := 0
	err := Do(ctx, Config{MaxAttempts: 3}, IsBusy, func() error {
		attempts++
		return testSQLiteError{code: codeBusy}
	})

	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if attempts != 0 {
		t.Fatalf("expected 0 attempts, got %d", attempts)
	}
}

func TestIsBusy(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"plain", errors.New("boom"), false},
		{"busy", testSQLiteError{code: codeBusy}, true},
		{"busy snapshot", testSQLiteError{code: codeBusy | 2<<8}, true},
		{"locked wrapped", fmt.Errorf("wrap: %w", testSQLiteError{code: codeLocked}), true},
		{"constraint", testSQLiteError{code: 19}, false},
		{"deadline", context.DeadlineExceeded, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBusy(tt.err); got != tt.want {
				t.Errorf("IsBusy(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func TestBackoffDelay(t *testing.T) {
	if delay := backoffDelay(0, time.Second, 1); delay != 0 {
		t.Fatalf("expected zero delay, got %v", delay)
	}
	for attempt := 1; attempt <= 6; attempt++ {
		if delay := backoffDelay(50*time.Millisecond, 200*time.Millisecond, attempt); delay > 200*time.Millisecond {
			t.Fatalf("attempt %d: delay %v exceeds max", attempt, delay)
		}
	}
}
