package dto

type FileObjectResponse struct {
	Key          string `json:"key"`
	Size         int64  `json:"size"`
	LastModified string `json:"lastModified"`
}

type PresignResponse struct {
	URL       string `json:"url"`
	ExpiresIn int    `json:"expiresIn"`
}

type ShareFilesRequest struct {
	Emails  []string `json:"emails" validate:"required,min=1,dive,email"`
	Subject string   `json:"subject" validate:"required"`
	Message string   `json:"message"`
	Prefix  string   `json:"prefix" validate:"required"`
}
