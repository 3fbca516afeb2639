package queries

import (
	"errors"

	"shiptrack/internal/pkg/errs"
	"shiptrack/internal/pkg/guard"
)

var ErrTrackOrderQueryIsNotConstructed = errors.New(
	"TrackOrderQuery must be created via NewTrackOrderQuery constructor",
)

// TrackOrderQuery retrieves one shipment with its full history by tracking
// number or AWB number. This backs the public tracking page, so it takes no
// actor.
type TrackOrderQuery struct {
	number string

	guard guard.ConstructorGuard
}

// NewTrackOrderQuery creates a tracking query for the given number.
func NewTrackOrderQuery(number string) (TrackOrderQuery, error) {
	if number == "" {
		return TrackOrderQuery{}, errs.NewValueIsRequiredError("tracking number")
	}

	return TrackOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrTrackOrderQueryIsNotConstructed if validation fails.
func (q TrackOrderQuery) Validate() error {
	return q.guard.Validate(ErrTrackOrderQueryIsNotConstructed)
}

// Number returns the tracking or AWB number to look up.
func (q TrackOrderQuery) Number() string {
	return q.number
}

// TrackOrderResponse pairs a shipment with its recorded transitions.
type TrackOrderResponse struct {
	Order   OrderResponse
	History []HistoryEntryResponse
}
