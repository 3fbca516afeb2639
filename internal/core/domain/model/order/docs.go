// Package order provides domain entities and business logic for shipment
// order management. It implements the Order aggregate root with lifecycle
// management, the status state machine, and the shipment history ledger.
//
// The package includes:
//   - Order: the aggregate root managing identity, parcel attributes, agent
//     assignment, and the status lifecycle
//   - Status: a state machine that enforces valid status transitions
//   - TransitionRecord: an approved transition, the only input ApplyTransition accepts
//   - HistoryEntry: one immutable line of the shipment history ledger
//
// Key business rules:
//   - Orders start in pending and end in delivered, cancelled, or returned
//   - The status field changes only through validated transition records
//   - Terminal statuses accept no further transitions or reassignment
//   - Ledger entries are append-only and reconstruct a valid walk of the
//     transition graph when read in timestamp order
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
