package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByID struct {
	ID uuid.UUID
}

func (s ByID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id = ?", s.ID)
}

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

type OwnedBy struct {
	UserID uuid.UUID
}

func (s OwnedBy) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

type ExcludingUser struct {
	UserID uuid.UUID
}

func (s ExcludingUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("id <> ?", s.UserID)
}

// ByField filters on a single column with exact match. Callers are
// responsible for whitelisting the column name.
type ByField struct {
	Column string
	Value  string
}

func (s ByField) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(s.Column+" = ?", s.Value)
}

type Limit struct {
	N int
}

func (s Limit) Apply(db *gorm.DB) *gorm.DB {
	return db.Limit(s.N)
}
