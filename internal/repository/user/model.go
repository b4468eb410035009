package user

import "time"

type UserDB struct {
	ID        int64
	Name      string
	Password  string
	Phone     string
	Picture   string
	Role      int
	CreatedAt time.Time
	UpdatedAt time.Time
}

type UserModifyDB struct {
	ID       *int64
	Name     *string
	Password *string
	Phone    *string
	Picture  *string
	Role     *int
}
