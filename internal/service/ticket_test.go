package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/ticketgate/TicketGate/internal/domain"
	"github.com/ticketgate/TicketGate/internal/service/ports/mocks"
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

func TestTicketService_Issue_Success(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	event := &domain.Event{ID: "e1", Name: "Concert", MaxTickets: 100, TicketsIssued: 1}

	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything, event).Return()

	ticket, err := svc.Issue(context.Background(), "e1", "u1")

	require.NoError(t, err)
	assert.Equal(t, "e1", ticket.EventID)
	assert.Equal(t, "u1", ticket.UserID)
	assert.Equal(t, domain.TicketStateIssued, ticket.State)
	assert.Nil(t, ticket.RedeemedAt)
	assert.NotEmpty(t, ticket.ID)
	assert.False(t, ticket.IssuedAt.IsZero())

	_, err = uuid.Parse(ticket.Code)
	assert.NoError(t, err, "redemption code must be a v4 uuid")

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

func TestTicketService_Issue_LastSlotNotifiesSoldOut(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	event := &domain.Event{ID: "e1", Name: "Concert", MaxTickets: 2, TicketsIssued: 2}

	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything, event).Return()
	notifier.EXPECT().NotifySoldOut(mock.Anything, event).Return()

	_, err := svc.Issue(context.Background(), "e1", "u1")

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Issue_EventNotFound(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	_, err := svc.Issue(context.Background(), "missing", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_Issue_CapacityExceeded(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(domain.ErrCapacityExceeded)

	_, err := svc.Issue(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)
}

func TestTicketService_Issue_CodeCollisionRetried(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	event := &domain.Event{ID: "e1", MaxTickets: 100, TicketsIssued: 1}

	var codes []string
	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tk *domain.Ticket) {
			codes = append(codes, tk.Code)
		}).
		Return(domain.ErrCodeCollision).Once()
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).
		Run(func(ctx context.Context, tk *domain.Ticket) {
			codes = append(codes, tk.Code)
		}).
		Return(nil).Once()
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	notifier.EXPECT().NotifyTicketIssued(mock.Anything, mock.Anything, event).Return()

	ticket, err := svc.Issue(context.Background(), "e1", "u1")

	require.NoError(t, err)
	require.Len(t, codes, 2)
	assert.NotEqual(t, codes[0], codes[1], "retry must mint a fresh code")
	assert.Equal(t, codes[1], ticket.Code)

	time.Sleep(50 * time.Millisecond)
}

func TestTicketService_Issue_CollisionExhaustionReleasesSlot(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrCodeCollision).Times(codeAttempts)
	eventRepo.EXPECT().ReleaseSlot(mock.Anything, "e1").Return(nil)

	_, err := svc.Issue(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrCapacityExceeded,
		"exhausted code retries must not surface as a sold-out event")
}

func TestTicketService_Issue_CreateFailureReleasesSlot(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(errors.New("db error"))
	eventRepo.EXPECT().ReleaseSlot(mock.Anything, "e1").Return(nil)

	_, err := svc.Issue(context.Background(), "e1", "u1")

	require.Error(t, err)
}

func TestTicketService_Issue_ReleaseFailureIsLoggedNotReturned(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	createErr := errors.New("db error")
	eventRepo.EXPECT().TryReserveSlot(mock.Anything, "e1").Return(nil)
	ticketRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(createErr)
	eventRepo.EXPECT().ReleaseSlot(mock.Anything, "e1").Return(errors.New("release failed"))

	_, err := svc.Issue(context.Background(), "e1", "u1")

	require.Error(t, err)
	assert.ErrorIs(t, err, createErr)
}

func TestTicketService_Redeem_Success(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	redeemedAt := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:         "t1",
		EventID:    "e1",
		UserID:     "u1",
		Code:       "c1",
		State:      domain.TicketStateRedeemed,
		RedeemedAt: &redeemedAt,
	}
	ticketRepo.EXPECT().Redeem(mock.Anything, "c1").Return(ticket, nil)

	result, err := svc.Redeem(context.Background(), "c1")

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStateRedeemed, result.State)
	assert.Equal(t, &redeemedAt, result.RedeemedAt)
}

func TestTicketService_Redeem_AlreadyRedeemed(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	firstRedeem := time.Now().UTC().Add(-time.Hour)
	ticket := &domain.Ticket{
		ID:         "t1",
		Code:       "c1",
		State:      domain.TicketStateRedeemed,
		RedeemedAt: &firstRedeem,
	}
	ticketRepo.EXPECT().Redeem(mock.Anything, "c1").Return(ticket, domain.ErrTicketAlreadyRedeemed)

	result, err := svc.Redeem(context.Background(), "c1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketAlreadyRedeemed)
	require.NotNil(t, result)
	assert.Equal(t, &firstRedeem, result.RedeemedAt, "original redemption time must be preserved")
}

func TestTicketService_Redeem_InvalidCode(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	ticketRepo.EXPECT().Redeem(mock.Anything, "bogus").Return(nil, domain.ErrInvalidCode)

	_, err := svc.Redeem(context.Background(), "bogus")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidCode)
}

func TestTicketService_CapacityDrift(t *testing.T) {
	ticketRepo := mocks.NewMockTicketRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	notifier := mocks.NewMockOpsNotifier(t)
	log := newTestLogger(t)

	svc := NewTicketService(ticketRepo, eventRepo, notifier, log)

	drift := []*domain.CapacityDrift{
		{EventID: "e1", TicketsIssued: 5, TicketRows: 4},
	}
	eventRepo.EXPECT().ListCapacityDrift(mock.Anything).Return(drift, nil)
	notifier.EXPECT().NotifyCapacityDrift(mock.Anything, drift[0]).Return()

	result, err := svc.CapacityDrift(context.Background())

	require.NoError(t, err)
	assert.Len(t, result, 1)

	time.Sleep(50 * time.Millisecond) // goroutine notify
}

// fakeStore enforces the storage-layer conditional-write contract in memory
// so the issuance and redemption flows can be exercised under real
// concurrency and in end-to-end scenarios.
type fakeStore struct {
	mu      sync.Mutex
	events  map[string]*domain.Event
	tickets map[string]*domain.Ticket // by code
}

func newFakeStore(events ...*domain.Event) *fakeStore {
	s := &fakeStore{
		events:  make(map[string]*domain.Event),
		tickets: make(map[string]*domain.Ticket),
	}
	for _, e := range events {
		s.events[e.ID] = e
	}
	return s
}

func (s *fakeStore) TryReserveSlot(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[eventID]
	if !ok {
		return domain.ErrEventNotFound
	}
	if e.TicketsIssued >= e.MaxTickets {
		return domain.ErrCapacityExceeded
	}
	e.TicketsIssued++
	return nil
}

func (s *fakeStore) ReleaseSlot(_ context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok := s.events[eventID]; ok && e.TicketsIssued > 0 {
		e.TicketsIssued--
	}
	return nil
}

func (s *fakeStore) GetByID(_ context.Context, id string) (*domain.Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.events[id]
	if !ok {
		return nil, domain.ErrEventNotFound
	}
	cp := *e
	return &cp, nil
}

func (s *fakeStore) Create(_ context.Context, e *domain.Event) error { return nil }

func (s *fakeStore) List(_ context.Context) ([]*domain.Event, error) { return nil, nil }

func (s *fakeStore) GetDetails(_ context.Context, eventID string) (*domain.EventDetails, error) {
	return nil, domain.ErrEventNotFound
}

func (s *fakeStore) ListCapacityDrift(_ context.Context) ([]*domain.CapacityDrift, error) {
	return nil, nil
}

func (s *fakeStore) CreateTicket(_ context.Context, t *domain.Ticket) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.tickets[t.Code]; exists {
		return domain.ErrCodeCollision
	}
	cp := *t
	s.tickets[t.Code] = &cp
	return nil
}

func (s *fakeStore) RedeemTicket(_ context.Context, code string) (*domain.Ticket, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tickets[code]
	if !ok {
		return nil, domain.ErrInvalidCode
	}
	if t.State == domain.TicketStateRedeemed {
		cp := *t
		return &cp, domain.ErrTicketAlreadyRedeemed
	}
	now := time.Now().UTC()
	t.State = domain.TicketStateRedeemed
	t.RedeemedAt = &now
	cp := *t
	return &cp, nil
}

// fakeTicketRepo adapts fakeStore to ports.TicketRepo.
type fakeTicketRepo struct{ store *fakeStore }

func (r *fakeTicketRepo) Create(ctx context.Context, t *domain.Ticket) error {
	return r.store.CreateTicket(ctx, t)
}

func (r *fakeTicketRepo) Redeem(ctx context.Context, code string) (*domain.Ticket, error) {
	return r.store.RedeemTicket(ctx, code)
}

func (r *fakeTicketRepo) ListByUser(_ context.Context, _ string) ([]*domain.Ticket, error) {
	return nil, nil
}

func (r *fakeTicketRepo) ListByEvent(_ context.Context, _ string) ([]*domain.Ticket, error) {
	return nil, nil
}

type noopNotifier struct{}

func (noopNotifier) NotifyTicketIssued(context.Context, *domain.Ticket, *domain.Event) {}
func (noopNotifier) NotifySoldOut(context.Context, *domain.Event)                      {}
func (noopNotifier) NotifyCapacityDrift(context.Context, *domain.CapacityDrift)        {}

func TestTicketService_Issue_ConcurrentNeverOversells(t *testing.T) {
	const (
		maxTickets = 20
		extra      = 15
	)

	store := newFakeStore(&domain.Event{ID: "e1", Name: "Concert", MaxTickets: maxTickets})
	svc := NewTicketService(&fakeTicketRepo{store: store}, store, noopNotifier{}, newTestLogger(t))

	var (
		wg        sync.WaitGroup
		successes int32
		soldOut   int32
		countMu   sync.Mutex
	)
	for i := 0; i < maxTickets+extra; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Issue(context.Background(), "e1", "u1")
			countMu.Lock()
			defer countMu.Unlock()
			switch {
			case err == nil:
				successes++
			case errors.Is(err, domain.ErrCapacityExceeded):
				soldOut++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, maxTickets, successes)
	assert.EqualValues(t, extra, soldOut)

	event, err := store.GetByID(context.Background(), "e1")
	require.NoError(t, err)
	assert.Equal(t, maxTickets, event.TicketsIssued)
	assert.LessOrEqual(t, event.TicketsIssued, event.MaxTickets)

	time.Sleep(100 * time.Millisecond) // goroutine notify
}

func TestTicketService_Redeem_ConcurrentSingleWinner(t *testing.T) {
	store := newFakeStore(&domain.Event{ID: "e1", Name: "Concert", MaxTickets: 10})
	svc := NewTicketService(&fakeTicketRepo{store: store}, store, noopNotifier{}, newTestLogger(t))

	ticket, err := svc.Issue(context.Background(), "e1", "u1")
	require.NoError(t, err)

	const scanners = 8

	var (
		wg       sync.WaitGroup
		accepted int32
		rejected int32
		countMu  sync.Mutex
	)
	for i := 0; i < scanners; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Redeem(context.Background(), ticket.Code)
			countMu.Lock()
			defer countMu.Unlock()
			switch {
			case err == nil:
				accepted++
			case errors.Is(err, domain.ErrTicketAlreadyRedeemed):
				rejected++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.EqualValues(t, 1, accepted, "exactly one scanner wins")
	assert.EqualValues(t, scanners-1, rejected)

	time.Sleep(100 * time.Millisecond)
}

func TestTicketService_FullScenario(t *testing.T) {
	store := newFakeStore(&domain.Event{ID: "E1", Name: "Concert", MaxTickets: 2})
	svc := NewTicketService(&fakeTicketRepo{store: store}, store, noopNotifier{}, newTestLogger(t))

	ctx := context.Background()

	t1, err := svc.Issue(ctx, "E1", "userA")
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStateIssued, t1.State)

	t2, err := svc.Issue(ctx, "E1", "userB")
	require.NoError(t, err)
	assert.NotEqual(t, t1.Code, t2.Code)

	_, err = svc.Issue(ctx, "E1", "userC")
	assert.ErrorIs(t, err, domain.ErrCapacityExceeded)

	redeemed, err := svc.Redeem(ctx, t1.Code)
	require.NoError(t, err)
	assert.Equal(t, domain.TicketStateRedeemed, redeemed.State)
	require.NotNil(t, redeemed.RedeemedAt)

	again, err := svc.Redeem(ctx, t1.Code)
	assert.ErrorIs(t, err, domain.ErrTicketAlreadyRedeemed)
	require.NotNil(t, again)
	assert.Equal(t, redeemed.RedeemedAt.Unix(), again.RedeemedAt.Unix())

	_, err = svc.Redeem(ctx, "bogus")
	assert.ErrorIs(t, err, domain.ErrInvalidCode)

	time.Sleep(100 * time.Millisecond)
}
