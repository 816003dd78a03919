package model

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Email          string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	PasswordHash   string    `gorm:"type:varchar(255);not null"`
	Role           string    `gorm:"type:varchar(50);not null;default:'user'"`
	FirstName      string    `gorm:"type:varchar(100);not null"`
	LastName       string    `gorm:"type:varchar(100);not null"`
	Company        string    `gorm:"type:varchar(255);not null"`
	Phone          string    `gorm:"type:varchar(50)"`
	Title          string    `gorm:"type:varchar(100)"`
	CompanyAddress string    `gorm:"type:varchar(255)"`
	City           string    `gorm:"type:varchar(100)"`
	State          string    `gorm:"type:varchar(50)"`
	Zipcode        string    `gorm:"type:varchar(20)"`
	Trade          string    `gorm:"type:varchar(100)"`
	TermsAccepted  bool      `gorm:"not null;default:false"`
	Signature      string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (User) TableName() string {
	return "users"
}
