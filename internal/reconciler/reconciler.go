package reconciler

import (
	"context"
	"time"

	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type driftChecker interface {
	CapacityDrift(ctx context.Context) ([]*domain.CapacityDrift, error)
}

// Reconciler periodically compares each event's issuance counter against its
// ticket rows. It is an alarm, not a repair: the compensating decrement in
// the issuer is the only writer of the counter outside a purchase.
type Reconciler struct {
	ticketService driftChecker
	interval      time.Duration
	logger        logger.Logger
}

func New(
	ticketService driftChecker,
	interval time.Duration,
	logger logger.Logger,
) *Reconciler {
	return &Reconciler{
		ticketService: ticketService,
		interval:      interval,
		logger:        logger,
	}
}

func (r *Reconciler) Start(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	r.logger.Info("reconciler started",
		logger.Duration("interval", r.interval),
	)

	for {
		select {
		case <-ctx.Done():
			r.logger.Info("reconciler stopped")
			return
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Reconciler) tick(ctx context.Context) {
	drift, err := r.ticketService.CapacityDrift(ctx)
	if err != nil {
		r.logger.Error("failed to check capacity drift",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, d := range drift {
		r.logger.Warn("capacity drift detected",
			logger.String("event_id", d.EventID),
			logger.Int("tickets_issued", d.TicketsIssued),
			logger.Int("ticket_rows", d.TicketRows),
		)
	}
}
