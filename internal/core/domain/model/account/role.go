package account

import (
	"fmt"

	"shiptrack/internal/pkg/errs"
)

// Role represents the authorization level of a user.
// Roles decide which operations an actor may perform:
// admins manage assignments and see everything, delivery agents progress the
// shipments assigned to them, customers request pickups and track their own
// orders.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin can manage agents, assign orders, and submit any transition.
	RoleAdmin

	// RoleDeliveryAgent can submit status transitions for orders assigned to them.
	RoleDeliveryAgent

	// RoleCustomer can request pickups and track their own orders.
	// Customers never submit status transitions.
	RoleCustomer
)

// getRoleStrings returns the wire names for all Role values, including the
// invalid one, to support string conversion.
func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:       "unknown",
		RoleAdmin:         "admin",
		RoleDeliveryAgent: "delivery_agent",
		RoleCustomer:      "customer",
	}
}

// getValidRoleStrings returns only valid Role values to support validation
// and parsing.
func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:         "admin",
		RoleDeliveryAgent: "delivery_agent",
		RoleCustomer:      "customer",
	}
}

// RoleFromString parses a wire name ("admin", "delivery_agent", "customer")
// into a Role. Returns an error for unrecognized names.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role",
		fmt.Errorf("%q is not a valid role", s))
}

// Validate checks if the Role value is valid.
// Valid roles are: RoleAdmin, RoleDeliveryAgent, RoleCustomer.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role",
			fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the wire name of the role ("admin", "delivery_agent",
// "customer"), or "unknown" for invalid values. Implements fmt.Stringer.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// CanTransitionOrders reports whether the role is allowed to submit status
// transitions at all. Only admins and delivery agents may; the per-order
// assignment check is enforced separately by the transition validator.
func (r Role) CanTransitionOrders() bool {
	return r == RoleAdmin || r == RoleDeliveryAgent
}

// CanAssignAgents reports whether the role may bind orders to delivery agents.
// Assignment is an admin-only operation.
func (r Role) CanAssignAgents() bool {
	return r == RoleAdmin
}
