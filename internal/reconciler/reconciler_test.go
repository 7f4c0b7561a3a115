package reconciler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/ticketgate/TicketGate/internal/reconciler/mocks"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func TestReconciler_Tick_ReportsDrift(t *testing.T) {
	checker := mocks.NewMockDriftChecker(t)
	log := newTestLogger(t)

	r := New(checker, 50*time.Millisecond, log)

	drift := []*domain.CapacityDrift{
		{EventID: "e1", TicketsIssued: 10, TicketRows: 9},
	}
	checker.EXPECT().CapacityDrift(mock.Anything).Return(drift, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(checker.Calls), 1)
}

func TestReconciler_Tick_HandlesError(t *testing.T) {
	checker := mocks.NewMockDriftChecker(t)
	log := newTestLogger(t)

	r := New(checker, 50*time.Millisecond, log)

	checker.EXPECT().CapacityDrift(mock.Anything).Return(nil, errors.New("db error"))

	ctx, cancel := context.WithTimeout(context.Background(), 80*time.Millisecond)
	defer cancel()

	r.Start(ctx)

	assert.GreaterOrEqual(t, len(checker.Calls), 1)
}

func TestReconciler_StopsOnContextCancel(t *testing.T) {
	checker := mocks.NewMockDriftChecker(t)
	log := newTestLogger(t)

	r := New(checker, time.Second, log) // interval longer than test

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		r.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
		// success
	case <-time.After(time.Second):
		t.Fatal("reconciler did not stop on context cancel")
	}
}
