package dto

import "github.com/google/uuid"

type UpdateProfileRequest struct {
	FirstName      string `json:"firstName" validate:"omitempty,min=1"`
	LastName       string `json:"lastName" validate:"omitempty,min=1"`
	Company        string `json:"company"`
	Phone          string `json:"phone"`
	Title          string `json:"title"`
	CompanyAddress string `json:"companyAddress"`
	City           string `json:"city"`
	State          string `json:"state"`
	Zipcode        string `json:"zipcode"`
	Trade          string `json:"trade"`
}

// FilterUsersRequest carries the whitelisted query filters for the user
// directory. Unknown fields are rejected by the service.
type FilterUsersRequest struct {
	Company string `query:"company"`
	Trade   string `query:"trade"`
	State   string `query:"state"`
	City    string `query:"city"`
}

type ContactResponse struct {
	Id       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Company  string    `json:"company"`
	Title    string    `json:"title,omitempty"`
}
