// Package kernel provides shared value objects used across the domain model.
//
// The package includes:
//   - UUID: validated entity identifier wrapping github.com/google/uuid
//   - Route: origin/destination pair for a shipment
//
// All kernel types are immutable value objects with constructor validation.
// Zero values are invalid and fail Validate; this catches entities that were
// built by direct struct literal instead of through a constructor.
package kernel
