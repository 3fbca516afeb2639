// Package account provides the user domain model for the tracking system.
//
// The package includes:
//   - User: the role-bearing actor aggregate (admin, delivery agent, customer)
//   - Role: authorization level enum with wire-name parsing
//   - Actor: the (id, role) identity a request acts under
//
// Key business rules:
//   - Only admins and delivery agents may submit status transitions
//   - Only admins may bind orders to delivery agents
//   - A delivery agent may be referenced by many orders; orders do not own agents
package account
