package checkout

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spicetable/pos/internal/domain"
	"github.com/spicetable/pos/internal/notify"
	"github.com/spicetable/pos/internal/receipt"
	"github.com/spicetable/pos/pkg/errors"
)

// OrderSink receives the order snapshot once checkout succeeds. A sink
// failure is surfaced as a notification; the receipt stays visible so
// the operator can retry or dismiss.
type OrderSink interface {
	SaveOrder(ctx context.Context, order *domain.Order) error
}

// Printer is the host print/export surface. It receives the fully
// rendered receipt document.
type Printer interface {
	Print(doc string) error
}

// Orchestrator drives a session through the checkout lifecycle:
// Building -> Validating -> Processing -> AwaitingAction -> Building.
// It is single-writer per session; duplicate submissions while
// Processing are rejected rather than serialized.
type Orchestrator struct {
	session   *Session
	formatter *receipt.Formatter
	notifier  notify.Notifier
	sink      OrderSink
	printer   Printer
	logger    *zap.Logger

	// delay models the network round-trip of submitting a bill. Zero in
	// tests.
	delay time.Duration
	now   func() time.Time

	state domain.CheckoutState
	order *domain.Order
}

// Option configures an Orchestrator
type Option func(*Orchestrator)

// WithDelay sets the simulated processing latency.
func WithDelay(d time.Duration) Option {
	return func(o *Orchestrator) { o.delay = d }
}

// WithOrderSink wires the persistence boundary for finished bills.
func WithOrderSink(sink OrderSink) Option {
	return func(o *Orchestrator) { o.sink = sink }
}

// WithPrinter wires the host print surface.
func WithPrinter(p Printer) Option {
	return func(o *Orchestrator) { o.printer = p }
}

// WithClock overrides the time source used for bill IDs and timestamps.
func WithClock(now func() time.Time) Option {
	return func(o *Orchestrator) { o.now = now }
}

// NewOrchestrator creates an orchestrator in the Building state.
func NewOrchestrator(session *Session, formatter *receipt.Formatter, notifier notify.Notifier, logger *zap.Logger, opts ...Option) *Orchestrator {
	if notifier == nil {
		notifier = notify.Noop{}
	}
	o := &Orchestrator{
		session:   session,
		formatter: formatter,
		notifier:  notifier,
		logger:    logger,
		now:       time.Now,
		state:     domain.StateBuilding,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// State returns the current checkout state.
func (o *Orchestrator) State() domain.CheckoutState {
	return o.state
}

// Order returns the bill currently awaiting action, or nil.
func (o *Orchestrator) Order() *domain.Order {
	return o.order
}

// Session returns the session this orchestrator drives.
func (o *Orchestrator) Session() *Session {
	return o.session
}

// Checkout validates the cart and, after the simulated processing
// latency, produces the immutable bill snapshot and moves to
// AwaitingAction. An empty cart fails the guard and leaves the machine
// in Building; a checkout while one is already processing is rejected.
func (o *Orchestrator) Checkout(ctx context.Context) (*domain.Order, error) {
	// Rejects re-entry while Processing (duplicate submission) and
	// checkout while a bill is still awaiting action.
	if err := o.transition(domain.StateValidating); err != nil {
		return nil, err
	}

	if o.session.Cart.IsEmpty() {
		o.state = domain.StateBuilding
		err := &errors.ErrEmptyCart{}
		o.notifier.Notify(notify.KindError, "cannot place an order with an empty cart")
		return nil, err
	}

	o.state = domain.StateProcessing
	if o.delay > 0 {
		select {
		case <-time.After(o.delay):
		case <-ctx.Done():
			// Only server shutdown lands here; there is no user-facing
			// cancel once processing starts.
			o.state = domain.StateBuilding
			return nil, ctx.Err()
		}
	}

	o.session.Recompute()
	order := o.snapshot()
	o.order = order
	o.state = domain.StateAwaitingAction
	o.notifier.Notify(notify.KindSuccess, fmt.Sprintf("order %s placed", order.ID))

	if o.logger != nil {
		o.logger.Info("checkout complete",
			zap.String("order_id", order.ID),
			zap.Int("lines", len(order.Lines)),
			zap.Float64("total", order.Total),
		)
	}

	if o.sink != nil {
		if err := o.sink.SaveOrder(ctx, order); err != nil {
			// Keep the receipt visible; dismiss stays available so the
			// terminal can't get stuck.
			if o.logger != nil {
				o.logger.Error("failed to save order", zap.String("order_id", order.ID), zap.Error(err))
			}
			o.notifier.Notify(notify.KindError, "order could not be saved, bill is still available")
		}
	}

	return order, nil
}

// Print renders the bill awaiting action and hands it to the print
// surface. It is repeatable and never advances or resets state.
func (o *Orchestrator) Print() (string, error) {
	if o.state != domain.StateAwaitingAction || o.order == nil {
		return "", &errors.ErrInvalidStateTransition{From: o.state.String(), To: domain.StateAwaitingAction.String()}
	}
	doc := receipt.Render(o.formatter.Format(o.order))
	if o.printer != nil {
		if err := o.printer.Print(doc); err != nil {
			return doc, err
		}
	}
	return doc, nil
}

// Receipt returns the rendered receipt for the bill awaiting action
// without touching the print surface.
func (o *Orchestrator) Receipt() (string, error) {
	if o.state != domain.StateAwaitingAction || o.order == nil {
		return "", &errors.ErrInvalidStateTransition{From: o.state.String(), To: domain.StateAwaitingAction.String()}
	}
	return receipt.Render(o.formatter.Format(o.order)), nil
}

// Dismiss finalizes the bill: it drops the displayed order, clears the
// cart and restores the session context to defaults, returning to
// Building. Dismissing while already in Building is a no-op.
func (o *Orchestrator) Dismiss() error {
	if o.state == domain.StateBuilding {
		return nil
	}
	if err := o.transition(domain.StateFinalized); err != nil {
		return err
	}
	o.order = nil
	o.session.Cart.Clear()
	o.session.resetContext()
	o.state = domain.StateBuilding
	return nil
}

// transition moves the machine to the next state, enforcing the allowed
// transition table.
func (o *Orchestrator) transition(to domain.CheckoutState) error {
	if !o.state.CanTransitionTo(to) {
		return &errors.ErrInvalidStateTransition{From: o.state.String(), To: to.String()}
	}
	o.state = to
	return nil
}

// snapshot copies the session into an immutable order record.
func (o *Orchestrator) snapshot() *domain.Order {
	now := o.now()
	return &domain.Order{
		ID:            billID(now),
		Customer:      o.session.Customer,
		Table:         o.session.Table,
		PaymentMethod: o.session.Payment,
		ServiceType:   o.session.Service,
		Lines:         o.session.Cart.Snapshot(),
		Subtotal:      o.session.Subtotal,
		Discount:      o.session.Discount,
		Total:         o.session.Total,
		CreatedAt:     now,
	}
}

// billID builds a time-based unique bill token, e.g. BILL-20240131-184502-3f9a21.
func billID(now time.Time) string {
	return fmt.Sprintf("BILL-%s-%s", now.Format("20060102-150405"), uuid.NewString()[:6])
}
