package entities

import "time"

type User struct {
	ID        int64
	Name      string
	Password  string
	Phone     string
	Picture   string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserRole int

const (
	RoleCustomer UserRole = 0
	RoleRider    UserRole = 1
)

func (r UserRole) Valid() bool {
	return r == RoleCustomer || r == RoleRider
}

func (r UserRole) String() string {
	switch r {
	case RoleCustomer:
		return "customer"
	case RoleRider:
		return "rider"
	default:
		return "unknown"
	}
}

type UserModify struct {
	ID       *int64
	Name     *string
	Password *string
	Phone    *string
	Picture  *string
	Role     *UserRole
}
