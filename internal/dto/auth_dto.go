package dto

import (
	"time"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FirstName      string `json:"firstName" validate:"required"`
	LastName       string `json:"lastName" validate:"required"`
	Company        string `json:"company" validate:"required"`
	Phone          string `json:"phone"`
	Title          string `json:"title"`
	CompanyAddress string `json:"companyAddress"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zipcode        string `json:"zipcode"`
	Trade          string `json:"trade"`
	TermsAccepted  bool   `json:"termsAccepted" validate:"required"`
	Signature      string `json:"signature"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	AccessToken string          `json:"accessToken"`
	User        ProfileResponse `json:"user"`
}

type ProfileResponse struct {
	Id             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Role           string    `json:"role"`
	Company        string    `json:"company"`
	Phone          string    `json:"phone,omitempty"`
	Title          string    `json:"title,omitempty"`
	CompanyAddress string    `json:"companyAddress,omitempty"`
	City           string    `json:"city,omitempty"`
	State          string    `json:"state,omitempty"`
	Zipcode        string    `json:"zipcode,omitempty"`
	Trade          string    `json:"trade,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
