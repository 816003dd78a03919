package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByProjectID struct {
	ProjectID uuid.UUID
}

func (s ByProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("project_id = ?", s.ProjectID)
}

type BySubProjectID struct {
	SubProjectID uuid.UUID
}

func (s BySubProjectID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("sub_project_id = ?", s.SubProjectID)
}

// VisibleToMember limits subprojects to public ones plus those the user is
// assigned to. Admin callers skip this specification entirely.
type VisibleToMember struct {
	UserID uuid.UUID
}

func (s VisibleToMember) Apply(db *gorm.DB) *gorm.DB {
	return db.Where(
		"is_public = TRUE OR id IN (?)",
		db.Session(&gorm.Session{NewDB: true}).
			Table("sub_project_members").
			Select("sub_project_id").
			Where("user_id = ?", s.UserID),
	)
}

type Unanswered struct{}

func (s Unanswered) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("answer_text IS NULL")
}

type BulletinsOnly struct{}

func (s BulletinsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_bulletin = TRUE")
}

type QuestionsOnly struct{}

func (s QuestionsOnly) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("is_bulletin = FALSE")
}
