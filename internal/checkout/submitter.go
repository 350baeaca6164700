package checkout

import (
	"context"
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/23prakashjha/Grocery-App/internal/domain"
	"github.com/23prakashjha/Grocery-App/pkg/logger"
)

// State is the submission lifecycle phase of one checkout.
type State string

const (
	// StateIdle accepts a new submission. The initial state.
	StateIdle State = "idle"
	// StateValidating runs local precondition checks.
	StateValidating State = "validating"
	// StateSubmitting has an order request in flight to the order service.
	StateSubmitting State = "submitting"
	// StateSucceeded is terminal for this order; a new submission may start.
	StateSucceeded State = "succeeded"
	// StateFailed records a failed remote submission; a new one may start.
	StateFailed State = "failed"
)

var submissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "storefront_order_submissions_total",
	Help: "Order submission outcomes.",
}, []string{"result"})

// OrderPlacer sends a cash-on-delivery order to the order service and
// returns the server's confirmation message.
type OrderPlacer interface {
	PlaceOrder(ctx context.Context, items []domain.OrderItem, address domain.Address) (string, error)
}

// SubmitInput is everything a submission needs, gathered by the session
// before calling Submit so no cart or address lock is held during the
// network round trip.
type SubmitInput struct {
	Address *domain.Address
	Items   []domain.OrderItem
	Payment domain.PaymentOption
}

// SubmitResult reports a successful submission.
type SubmitResult struct {
	Message  string `json:"message"`
	Redirect string `json:"redirect"`
}

// Submitter drives one session's order submission state machine. Exactly one
// submission may be in flight at a time; everything else about the session
// stays live while it runs.
type Submitter struct {
	placer OrderPlacer

	mu    sync.Mutex
	state State
}

// NewSubmitter creates a submitter in the idle state.
func NewSubmitter(placer OrderPlacer) *Submitter {
	return &Submitter{placer: placer, state: StateIdle}
}

// State returns the current lifecycle phase.
func (s *Submitter) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Submit validates the input and places the order. While a previous call is
// still validating or submitting, it fails with ErrSubmitInFlight. Any
// failure leaves the session's cart and address state untouched, so the
// shopper can fix the problem and retry.
func (s *Submitter) Submit(ctx context.Context, in SubmitInput) (*SubmitResult, error) {
	if err := s.begin(); err != nil {
		return nil, err
	}

	log := logger.WithContext(ctx)

	// Local rejections never reach the order service and leave the machine
	// back in idle; only a submitted order can end in failed.
	if in.Address == nil {
		s.transition(StateIdle)
		submissionsTotal.WithLabelValues("validation_failed").Inc()
		return nil, domain.NewValidationError("no address")
	}
	if len(in.Items) == 0 {
		s.transition(StateIdle)
		submissionsTotal.WithLabelValues("validation_failed").Inc()
		return nil, domain.NewValidationError("empty cart")
	}

	if in.Payment != domain.PaymentCOD {
		s.transition(StateIdle)
		submissionsTotal.WithLabelValues("unsupported").Inc()
		return nil, domain.ErrOnlineNotSupported
	}

	s.transition(StateSubmitting)
	log.Info("placing order",
		"items", len(in.Items),
		"payment", string(in.Payment),
	)

	message, err := s.placer.PlaceOrder(ctx, in.Items, *in.Address)
	if err != nil {
		s.transition(StateFailed)
		submissionsTotal.WithLabelValues("failed").Inc()
		log.Error("order placement failed", "error", err)
		return nil, err
	}

	s.transition(StateSucceeded)
	submissionsTotal.WithLabelValues("succeeded").Inc()
	log.Info("order placed", "message", message)

	return &SubmitResult{Message: message, Redirect: "/my-orders"}, nil
}

// begin moves idle, succeeded or failed into validating. Validating and
// submitting reject re-entry.
func (s *Submitter) begin() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateValidating, StateSubmitting:
		return domain.ErrSubmitInFlight
	}
	s.state = StateValidating
	return nil
}

func (s *Submitter) transition(to State) {
	s.mu.Lock()
	s.state = to
	s.mu.Unlock()
}
