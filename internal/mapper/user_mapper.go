package mapper

import (
	"time"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/model"
)

type UserMapper struct{}

func NewUserMapper() *UserMapper {
	return &UserMapper{}
}

func (m *UserMapper) ToEntity(u *model.User) *entity.User {
	if u == nil {
		return nil
	}

	var updatedAt *time.Time
	if !u.UpdatedAt.IsZero() {
		t := u.UpdatedAt
		updatedAt = &t
	}

	return &entity.User{
		Id:             u.Id,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           entity.UserRole(u.Role),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Company:        u.Company,
		Phone:          u.Phone,
		Title:          u.Title,
		CompanyAddress: u.CompanyAddress,
		City:           u.City,
		State:          u.State,
		Zipcode:        u.Zipcode,
		Trade:          u.Trade,
		TermsAccepted:  u.TermsAccepted,
		Signature:      u.Signature,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}

func (m *UserMapper) ToModel(u *entity.User) *model.User {
	if u == nil {
		return nil
	}

	var updatedAt time.Time
	if u.UpdatedAt != nil {
		updatedAt = *u.UpdatedAt
	}

	return &model.User{
		Id:             u.Id,
		Email:          u.Email,
		PasswordHash:   u.PasswordHash,
		Role:           string(u.Role),
		FirstName:      u.FirstName,
		LastName:       u.LastName,
		Company:        u.Company,
		Phone:          u.Phone,
		Title:          u.Title,
		CompanyAddress: u.CompanyAddress,
		City:           u.City,
		State:          u.State,
		Zipcode:        u.Zipcode,
		Trade:          u.Trade,
		TermsAccepted:  u.TermsAccepted,
		Signature:      u.Signature,
		CreatedAt:      u.CreatedAt,
		UpdatedAt:      updatedAt,
	}
}
