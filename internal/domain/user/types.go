package user

type Role string

const (
	RoleSeller Role = "Seller"
	RoleTaker  Role = "Taker"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleSeller, RoleTaker:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}

// CanPurchaseAccess reports whether the role may buy listing access; sellers list, takers buy.
func (r Role) CanPurchaseAccess() bool {
	return r == RoleTaker
}

func (r Role) CanCreateListings() bool {
	return r == RoleSeller
}
