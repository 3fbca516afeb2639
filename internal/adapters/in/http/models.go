package http

import (
	"time"

	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/order"
)

// Request bodies.

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Mobile   string `json:"mobile,omitempty"`
	City     string `json:"city,omitempty"`
	Role     string `json:"role,omitempty"`
}

type CreateShipmentRequest struct {
	Origin               string     `json:"origin"`
	Destination          string     `json:"destination"`
	PackageType          string     `json:"package_type"`
	ContentDescription   string     `json:"content_description,omitempty"`
	PaymentStatus        string     `json:"payment_status,omitempty"`
	PickupDate           *time.Time `json:"pickup_date,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
}

type TransitionRequest struct {
	Status   string `json:"status"`
	Location string `json:"location"`
	Remarks  string `json:"remarks"`
}

type AssignAgentRequest struct {
	AgentID string `json:"agent_id"`
}

// Response bodies.

type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}

type UserResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type ShipmentResponse struct {
	ID                   string     `json:"id"`
	TrackingNumber       string     `json:"tracking_number"`
	AWBNumber            string     `json:"awb_number"`
	Origin               string     `json:"origin"`
	Destination          string     `json:"destination"`
	PackageType          string     `json:"package_type"`
	ContentDescription   string     `json:"content_description,omitempty"`
	PaymentStatus        string     `json:"payment_status"`
	PickupDate           *time.Time `json:"pickup_date,omitempty"`
	ExpectedDeliveryDate *time.Time `json:"expected_delivery_date,omitempty"`
	Status               string     `json:"status"`
	DeliveryAgentID      string     `json:"delivery_agent_id,omitempty"`
	IsPickupDelayed      bool       `json:"is_pickup_delayed"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

type HistoryEntryResponse struct {
	ID         string    `json:"id"`
	Status     string    `json:"status"`
	Location   string    `json:"location"`
	Remarks    string    `json:"remarks"`
	ActorID    string    `json:"actor_id"`
	ActorName  string    `json:"actor_name,omitempty"`
	RecordedAt time.Time `json:"recorded_at"`
}

type TrackResponse struct {
	Shipment ShipmentResponse       `json:"shipment"`
	History  []HistoryEntryResponse `json:"history"`
}

type AgentResponse struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Mobile string `json:"mobile,omitempty"`
	City   string `json:"city,omitempty"`
}

// Error is the uniform error payload. AllowedNext is populated only for
// rejected status transitions, so clients can re-render valid choices.
type Error struct {
	Code        int      `json:"code"`
	Message     string   `json:"message"`
	AllowedNext []string `json:"allowed_next,omitempty"`
}

func shipmentFromQuery(o queries.OrderResponse) ShipmentResponse {
	resp := ShipmentResponse{
		ID:                 o.ID.String(),
		TrackingNumber:     o.TrackingNumber,
		AWBNumber:          o.AWBNumber,
		Origin:             o.Origin,
		Destination:        o.Destination,
		PackageType:        o.PackageType,
		ContentDescription: o.ContentDescription,
		PaymentStatus:      o.PaymentStatus,
		Status:             o.Status,
		IsPickupDelayed:    o.IsPickupDelayed,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
	if o.DeliveryAgentID != nil {
		resp.DeliveryAgentID = o.DeliveryAgentID.String()
	}
	if !o.PickupDate.IsZero() {
		pickup := o.PickupDate
		resp.PickupDate = &pickup
	}
	if !o.ExpectedDeliveryDate.IsZero() {
		expected := o.ExpectedDeliveryDate
		resp.ExpectedDeliveryDate = &expected
	}
	return resp
}

func shipmentFromDomain(o *order.Order, now time.Time) ShipmentResponse {
	details := o.Details()
	resp := ShipmentResponse{
		ID:                 o.ID().String(),
		TrackingNumber:     o.TrackingNumber(),
		AWBNumber:          o.AWBNumber(),
		Origin:             o.Route().Origin(),
		Destination:        o.Route().Destination(),
		PackageType:        details.PackageType,
		ContentDescription: details.ContentDescription,
		PaymentStatus:      details.PaymentStatus,
		Status:             o.Status().String(),
		IsPickupDelayed:    o.IsPickupDelayed(now),
		CreatedAt:          o.CreatedAt(),
		UpdatedAt:          o.UpdatedAt(),
	}
	if agentID := o.DeliveryAgent(); agentID != nil {
		resp.DeliveryAgentID = agentID.String()
	}
	if !details.PickupDate.IsZero() {
		pickup := details.PickupDate
		resp.PickupDate = &pickup
	}
	if !details.ExpectedDeliveryDate.IsZero() {
		expected := details.ExpectedDeliveryDate
		resp.ExpectedDeliveryDate = &expected
	}
	return resp
}

func historyFromQuery(entries []queries.HistoryEntryResponse) []HistoryEntryResponse {
	resp := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		resp[i] = HistoryEntryResponse{
			ID:         entry.ID.String(),
			Status:     entry.Status,
			Location:   entry.Location,
			Remarks:    entry.Remarks,
			ActorID:    entry.ActorID.String(),
			ActorName:  entry.ActorName,
			RecordedAt: entry.RecordedAt,
		}
	}
	return resp
}
