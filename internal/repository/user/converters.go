package user

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func ToDomain(u *UserDB) *entities.User {
	if u == nil {
		return nil
	}
	return &entities.User{
		ID:        u.ID,
		Name:      u.Name,
		Password:  u.Password,
		Phone:     u.Phone,
		Picture:   u.Picture,
		Role:      entities.UserRole(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromDomainModify(u *entities.UserModify) *UserModifyDB {
	if u == nil {
		return nil
	}
	userModifyDB := &UserModifyDB{
		ID:       u.ID,
		Name:     u.Name,
		Password: u.Password,
		Phone:    u.Phone,
		Picture:  u.Picture,
	}
	if u.Role != nil {
		role := int(*u.Role)
		userModifyDB.Role = &role
	}
	return userModifyDB
}
