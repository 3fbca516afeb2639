// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"github.com/google/uuid"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/domain/model/order"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Timestamps are owned by the domain, so GORM's automatic time tracking is
// switched off. Version backs the optimistic lock; see GormOrderRepository.Update.
type OrderDTO struct {
	ID                   uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID           uuid.UUID `gorm:"type:uuid;index"`
	TrackingNumber       string    `gorm:"uniqueIndex"`
	AWBNumber            string    `gorm:"column:awb_number;uniqueIndex"`
	Origin               string
	Destination          string
	PackageType          string
	ContentDescription   string
	PaymentStatus        string
	PickupDate           time.Time
	ExpectedDeliveryDate time.Time
	Status               int        `gorm:"index"`
	DeliveryAgentID      *uuid.UUID `gorm:"type:uuid;index"`
	CreatedAt            time.Time  `gorm:"index;autoCreateTime:false"`
	UpdatedAt            time.Time  `gorm:"autoUpdateTime:false"`
	Version              int
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps all order attributes including optional agent assignment.
func fromDomain(aggregate *order.Order) OrderDTO {
	var agentID *uuid.UUID
	if id := aggregate.DeliveryAgent(); id != nil {
		raw := id.Bytes()
		agentID = &raw
	}

	details := aggregate.Details()
	return OrderDTO{
		ID:                   aggregate.ID().Bytes(),
		CustomerID:           aggregate.CustomerID().Bytes(),
		TrackingNumber:       aggregate.TrackingNumber(),
		AWBNumber:            aggregate.AWBNumber(),
		Origin:               aggregate.Route().Origin(),
		Destination:          aggregate.Route().Destination(),
		PackageType:          details.PackageType,
		ContentDescription:   details.ContentDescription,
		PaymentStatus:        details.PaymentStatus,
		PickupDate:           details.PickupDate,
		ExpectedDeliveryDate: details.ExpectedDeliveryDate,
		Status:               int(aggregate.Status()),
		DeliveryAgentID:      agentID,
		CreatedAt:            aggregate.CreatedAt(),
		UpdatedAt:            aggregate.UpdatedAt(),
		Version:              aggregate.Version(),
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including status, assignment, and the
// optimistic-lock version using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	var agentID *kernel.UUID
	if dto.DeliveryAgentID != nil {
		aID, agentErr := kernel.UUIDFromBytes((*dto.DeliveryAgentID)[:])
		if agentErr != nil {
			return nil, agentErr
		}

		agentID = &aID
	}

	route, err := kernel.NewRoute(dto.Origin, dto.Destination)
	if err != nil {
		return nil, err
	}

	details := order.ParcelDetails{
		PackageType:          dto.PackageType,
		ContentDescription:   dto.ContentDescription,
		PaymentStatus:        dto.PaymentStatus,
		PickupDate:           dto.PickupDate,
		ExpectedDeliveryDate: dto.ExpectedDeliveryDate,
	}

	return order.RestoreOrder(
		id,
		customerID,
		dto.TrackingNumber,
		dto.AWBNumber,
		route,
		details,
		order.Status(dto.Status),
		agentID,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
