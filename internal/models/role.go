package models

import "errors"

// Role determines which account partition and policy apply.
type Role string

const (
	RoleBuyer  Role = "Buyer"
	RoleSeller Role = "Seller"
	RoleBroker Role = "Broker"
	RoleAdmin  Role = "Admin"
)

// ProbeOrder is the fixed lookup order used by every flow that resolves an
// account from an email alone (login, resend, recovery). First match wins.
var ProbeOrder = []Role{RoleBuyer, RoleSeller, RoleBroker, RoleAdmin}

// RequiresApproval reports whether the role must pass OTP email verification
// before login. Admins are provisioned, not self-registered, and are exempt.
func (r Role) RequiresApproval() bool {
	return r != RoleAdmin
}

// CollectionName returns the partition label used in routes and logs.
func (r Role) CollectionName() string {
	switch r {
	case RoleBuyer:
		return "buyer"
	case RoleSeller:
		return "seller"
	case RoleBroker:
		return "broker"
	case RoleAdmin:
		return "admin"
	}
	return ""
}

var ErrInvalidRole = errors.New("invalid role")

// ParseRole maps a route segment or payload value to a Role.
func ParseRole(s string) (Role, error) {
	switch s {
	case "buyer", "Buyer":
		return RoleBuyer, nil
	case "seller", "Seller":
		return RoleSeller, nil
	case "broker", "Broker":
		return RoleBroker, nil
	case "admin", "Admin":
		return RoleAdmin, nil
	}
	return "", ErrInvalidRole
}
