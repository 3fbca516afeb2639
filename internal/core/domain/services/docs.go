// Package services provides domain services that orchestrate business rules
// across multiple domain entities in the tracking system. It implements
// decisions that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - TransitionValidator: the single authority for approving order status
//     transitions, combining graph, role, and assignment constraints
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
