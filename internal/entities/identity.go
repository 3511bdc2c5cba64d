package entities

// Identity is the authenticated caller as asserted by the upstream auth
// proxy. The service trusts it completely; token verification lives outside.
type Identity struct {
	UserID int64
	Role   RoleType
}

type RoleType string

const (
	RoleCustomer RoleType = "customer"
	RoleAdmin    RoleType = "admin"
	RoleCourier  RoleType = "courier"
)

func (r RoleType) String() string {
	return string(r)
}

func (r RoleType) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleCourier:
		return true
	default:
		return false
	}
}
