package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/core/domain/services"
	"shiptrack/internal/core/ports"
	"shiptrack/internal/pkg/errs"
)

// maxTransitionAttempts bounds how many times a transition is re-validated and
// re-applied after losing an optimistic-lock race. Each retry re-reads the
// order, so a request that is still valid against the new status wins on the
// next attempt and a request that is not fails with the real validation error.
const maxTransitionAttempts = 3

// TransitionResult carries the outcome of an accepted transition: the updated
// order and the ledger entry recorded for it.
type TransitionResult struct {
	Order *order.Order
	Entry *order.HistoryEntry
	From  order.Status
}

// TransitionShipmentCommandHandler handles the business logic for status
// transitions. Validation, the order update, and the ledger append run inside
// one transaction; the status-changed event is published only after commit.
//
// Example:
//
//	handler := NewTransitionShipmentCommandHandler(uowFactory, publisher)
//	cmd, _ := NewTransitionShipmentCommand(
//	    orderID, order.StatusPickedUp, "Mumbai - Andheri East", "Collected", actor)
//
//	result, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("transition failed: %w", err)
//	}
type TransitionShipmentCommandHandler struct {
	uowFactory TransitionUoWFactory
	validator  services.TransitionValidator
	publisher  ports.EventPublisher
}

// NewTransitionShipmentCommandHandler creates a handler for transition operations.
// publisher may be nil when no broker is configured; events are then skipped.
func NewTransitionShipmentCommandHandler(
	uowFactory TransitionUoWFactory, publisher ports.EventPublisher,
) TransitionShipmentCommandHandler {
	return TransitionShipmentCommandHandler{
		uowFactory: uowFactory,
		validator:  services.NewTransitionValidator(),
		publisher:  publisher,
	}
}

// Handle processes the transition command.
//
// The sequence per attempt is: load the order, validate the requested
// transition against the current status and the actor, apply it, persist the
// order with an optimistic-lock update, and append the ledger entry. The two
// writes commit together or not at all.
//
// When the optimistic lock reports a conflict the whole sequence is retried
// against the fresh order state, up to maxTransitionAttempts times. Any other
// error is returned as is.
func (h *TransitionShipmentCommandHandler) Handle(
	ctx context.Context, cmd TransitionShipmentCommand,
) (TransitionResult, error) {
	if err := cmd.Validate(); err != nil {
		return TransitionResult{}, err
	}

	var result TransitionResult
	var err error
	for attempt := 1; attempt <= maxTransitionAttempts; attempt++ {
		result, err = h.attempt(ctx, cmd)
		if err == nil {
			h.publish(ctx, result)
			return result, nil
		}
		if !errors.Is(err, errs.ErrConcurrencyConflict) {
			return TransitionResult{}, err
		}
	}

	return TransitionResult{}, err
}

func (h *TransitionShipmentCommandHandler) attempt(
	ctx context.Context, cmd TransitionShipmentCommand,
) (TransitionResult, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return TransitionResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	ord, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return TransitionResult{}, err
	}

	record, err := h.validator.Validate(
		ord, cmd.Status(), cmd.Actor(), cmd.Location(), cmd.Remarks(), time.Now().UTC())
	if err != nil {
		return TransitionResult{}, err
	}

	if err = ord.ApplyTransition(record); err != nil {
		return TransitionResult{}, err
	}

	entry, err := order.NewHistoryEntry(kernel.NewUUID(), record)
	if err != nil {
		return TransitionResult{}, err
	}

	if err = orderRepo.Update(ctx, ord); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.HistoryRepository().Append(ctx, entry); err != nil {
		return TransitionResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return TransitionResult{}, err
	}

	return TransitionResult{Order: ord, Entry: entry, From: record.From()}, nil
}

// publish emits the status-changed event after the transaction has committed.
// Publishing is best effort: a broker failure is logged and never undoes the
// committed transition.
func (h *TransitionShipmentCommandHandler) publish(ctx context.Context, result TransitionResult) {
	if h.publisher == nil {
		return
	}

	event := ports.StatusChangedEvent{
		OrderID:        result.Order.ID().String(),
		TrackingNumber: result.Order.TrackingNumber(),
		FromStatus:     result.From.String(),
		ToStatus:       result.Order.Status().String(),
		Location:       result.Entry.Location(),
		OccurredAt:     result.Entry.RecordedAt(),
	}

	if err := h.publisher.PublishStatusChanged(ctx, event); err != nil {
		slog.Warn("failed to publish status changed event",
			"order_id", event.OrderID, "error", err)
	}
}
