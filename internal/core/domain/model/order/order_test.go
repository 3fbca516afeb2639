package order_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
	"shiptrack/internal/pkg/errs"
)

func testRoute(t *testing.T) kernel.Route {
	t.Helper()
	route, err := kernel.NewRoute("Mumbai", "Delhi")
	require.NoError(t, err)
	return route
}

func testDetails() order.ParcelDetails {
	return order.ParcelDetails{
		PackageType:        "box",
		ContentDescription: "books",
		PaymentStatus:      "unpaid",
	}
}

func newTestOrder(t *testing.T, createdAt time.Time) *order.Order {
	t.Helper()
	ord, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(),
		"ST-AB12CD34EF", "AWB-1234567890",
		testRoute(t), testDetails(), createdAt)
	require.NoError(t, err)
	return ord
}

func newTestRecord(t *testing.T, ord *order.Order, to order.Status, at time.Time) order.TransitionRecord {
	t.Helper()
	record, err := order.NewTransitionRecord(
		ord.ID(), ord.Status(), to, "Mumbai - Andheri East", "Collected", kernel.NewUUID(), at)
	require.NoError(t, err)
	return record
}

func TestNewOrder(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now)

	assert.Equal(t, order.StatusPending, ord.Status())
	assert.Equal(t, "ST-AB12CD34EF", ord.TrackingNumber())
	assert.Equal(t, "AWB-1234567890", ord.AWBNumber())
	assert.Equal(t, "Mumbai", ord.Route().Origin())
	assert.Equal(t, "Delhi", ord.Route().Destination())
	assert.Equal(t, now, ord.CreatedAt())
	assert.Equal(t, now, ord.UpdatedAt())
	assert.Equal(t, 1, ord.Version())
	assert.Nil(t, ord.DeliveryAgent())
	require.NoError(t, ord.Validate())
}

func TestNewOrder_ValidationErrors(t *testing.T) {
	now := time.Now().UTC()
	route := testRoute(t)

	_, err := order.NewOrder(kernel.UUID{}, kernel.NewUUID(),
		"ST-1", "AWB-1", route, testDetails(), now)
	require.Error(t, err)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"", "AWB-1", route, testDetails(), now)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"ST-1", "AWB-1", route, order.ParcelDetails{}, now)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"ST-1", "AWB-1", route, testDetails(), time.Time{})
	require.Error(t, err)
}

func TestNewOrder_PaymentStatusDefaultsToUnpaid(t *testing.T) {
	details := testDetails()
	details.PaymentStatus = ""

	ord, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(),
		"ST-1", "AWB-1", testRoute(t), details, time.Now().UTC())
	require.NoError(t, err)
	assert.Equal(t, "unpaid", ord.Details().PaymentStatus)
}

func TestOrder_Validate_NotConstructed(t *testing.T) {
	var ord order.Order
	require.ErrorIs(t, ord.Validate(), order.ErrOrderIsNotConstructed)

	var nilOrder *order.Order
	require.ErrorIs(t, nilOrder.Validate(), order.ErrOrderIsNotConstructed)
}

func TestRestoreOrder(t *testing.T) {
	id := kernel.NewUUID()
	agentID := kernel.NewUUID()
	createdAt := time.Now().UTC().Add(-2 * time.Hour)
	updatedAt := time.Now().UTC()

	ord, err := order.RestoreOrder(
		id, kernel.NewUUID(), "ST-1", "AWB-1", testRoute(t), testDetails(),
		order.StatusInTransit, &agentID, createdAt, updatedAt, 5)
	require.NoError(t, err)

	assert.Equal(t, order.StatusInTransit, ord.Status())
	assert.Equal(t, 5, ord.Version())
	require.NotNil(t, ord.DeliveryAgent())
	assert.True(t, ord.DeliveryAgent().IsEqual(agentID))
	assert.Equal(t, createdAt, ord.CreatedAt())
	assert.Equal(t, updatedAt, ord.UpdatedAt())
}

func TestRestoreOrder_InvalidRows(t *testing.T) {
	now := time.Now().UTC()
	route := testRoute(t)

	_, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "ST-1", "AWB-1", route, testDetails(),
		order.StatusUnknown, nil, now, now, 1)
	require.Error(t, err)

	_, err = order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "ST-1", "AWB-1", route, testDetails(),
		order.StatusPending, nil, now, now, 0)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrVersionIsInvalid)
}

func TestOrder_ApplyTransition(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now)

	record := newTestRecord(t, ord, order.StatusPickedUp, now.Add(time.Minute))
	require.NoError(t, ord.ApplyTransition(record))

	assert.Equal(t, order.StatusPickedUp, ord.Status())
	assert.Equal(t, now.Add(time.Minute), ord.UpdatedAt())
}

func TestOrder_ApplyTransition_RejectsReplay(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now)

	record := newTestRecord(t, ord, order.StatusPickedUp, now.Add(time.Minute))
	require.NoError(t, ord.ApplyTransition(record))

	// The same record applied twice must fail: the order already moved on.
	err := ord.ApplyTransition(record)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.StatusPickedUp, ord.Status())
}

func TestOrder_ApplyTransition_RejectsWrongOrder(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now)
	other := newTestOrder(t, now)

	record := newTestRecord(t, other, order.StatusPickedUp, now)
	err := ord.ApplyTransition(record)
	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Equal(t, order.StatusPending, ord.Status())
}

func TestOrder_ApplyTransition_RejectsUnconstructedRecord(t *testing.T) {
	ord := newTestOrder(t, time.Now().UTC())

	err := ord.ApplyTransition(order.TransitionRecord{})
	require.ErrorIs(t, err, order.ErrTransitionRecordIsNotConstructed)
}

func TestOrder_AssignAgent(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now)
	agentID := kernel.NewUUID()

	require.NoError(t, ord.AssignAgent(agentID, now.Add(time.Minute)))
	assert.True(t, ord.IsAssignedTo(agentID))
	assert.Equal(t, now.Add(time.Minute), ord.UpdatedAt())

	// Reassignment replaces the agent.
	otherAgent := kernel.NewUUID()
	require.NoError(t, ord.AssignAgent(otherAgent, now.Add(2*time.Minute)))
	assert.True(t, ord.IsAssignedTo(otherAgent))
	assert.False(t, ord.IsAssignedTo(agentID))
}

func TestOrder_AssignAgent_TerminalOrder(t *testing.T) {
	now := time.Now().UTC()
	ord, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "ST-1", "AWB-1",
		testRoute(t), testDetails(), order.StatusDelivered, nil, now, now, 3)
	require.NoError(t, err)

	err = ord.AssignAgent(kernel.NewUUID(), now)
	require.Error(t, err)
	require.ErrorIs(t, err, order.ErrOrderIsClosed)
	assert.Nil(t, ord.DeliveryAgent())
}

func TestOrder_IsPickupDelayed(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now.Add(-25*time.Hour))

	assert.True(t, ord.IsPickupDelayed(now))

	fresh := newTestOrder(t, now.Add(-time.Hour))
	assert.False(t, fresh.IsPickupDelayed(now))

	// Orders parked in hold are not flagged, whatever their age.
	held, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), "ST-1", "AWB-1",
		testRoute(t), testDetails(), order.StatusHold, nil,
		now.Add(-48*time.Hour), now, 2)
	require.NoError(t, err)
	assert.False(t, held.IsPickupDelayed(now))
}

func TestNewHistoryEntry(t *testing.T) {
	now := time.Now().UTC()
	ord := newTestOrder(t, now)
	record := newTestRecord(t, ord, order.StatusPickedUp, now.Add(time.Minute))

	id := kernel.NewUUID()
	entry, err := order.NewHistoryEntry(id, record)
	require.NoError(t, err)

	assert.True(t, entry.ID().IsEqual(id))
	assert.True(t, entry.OrderID().IsEqual(ord.ID()))
	assert.Equal(t, order.StatusPickedUp, entry.Status())
	assert.Equal(t, "Mumbai - Andheri East", entry.Location())
	assert.Equal(t, "Collected", entry.Remarks())
	assert.Equal(t, now.Add(time.Minute), entry.RecordedAt())
	require.NoError(t, entry.Validate())
}

func TestNewHistoryEntry_UnconstructedRecord(t *testing.T) {
	_, err := order.NewHistoryEntry(kernel.NewUUID(), order.TransitionRecord{})
	require.ErrorIs(t, err, order.ErrTransitionRecordIsNotConstructed)
}

func TestRestoreHistoryEntry_Validation(t *testing.T) {
	now := time.Now().UTC()

	_, err := order.RestoreHistoryEntry(
		kernel.NewUUID(), kernel.NewUUID(), order.StatusPickedUp,
		"", "Collected", kernel.NewUUID(), now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	entry, err := order.RestoreHistoryEntry(
		kernel.NewUUID(), kernel.NewUUID(), order.StatusPickedUp,
		"Mumbai", "Collected", kernel.NewUUID(), now)
	require.NoError(t, err)
	require.NoError(t, entry.Validate())
}

func TestNewTransitionRecord_Validation(t *testing.T) {
	now := time.Now().UTC()
	orderID := kernel.NewUUID()
	actorID := kernel.NewUUID()

	_, err := order.NewTransitionRecord(
		orderID, order.StatusPending, order.StatusDelivered, "Mumbai", "note", actorID, now)
	require.ErrorIs(t, err, order.ErrInvalidTransition)

	_, err = order.NewTransitionRecord(
		orderID, order.StatusPending, order.StatusPickedUp, "", "note", actorID, now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewTransitionRecord(
		orderID, order.StatusPending, order.StatusPickedUp, "Mumbai", "", actorID, now)
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = order.NewTransitionRecord(
		orderID, order.StatusPending, order.StatusPickedUp, "Mumbai", "note", actorID, time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	record, err := order.NewTransitionRecord(
		orderID, order.StatusPending, order.StatusPickedUp, "Mumbai", "note", actorID, now)
	require.NoError(t, err)
	assert.Equal(t, order.StatusPending, record.From())
	assert.Equal(t, order.StatusPickedUp, record.To())
	require.NoError(t, record.Validate())
}
