package mapper

import (
	"encoding/json"
	"time"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/model"

	"gorm.io/datatypes"
)

type FeedbackMapper struct{}

func NewFeedbackMapper() *FeedbackMapper {
	return &FeedbackMapper{}
}

func (m *FeedbackMapper) ToEntity(f *model.Feedback) *entity.Feedback {
	if f == nil {
		return nil
	}
	return &entity.Feedback{
		Id:           f.Id,
		UserId:       f.UserId,
		SubProjectId: f.SubProjectId,
		Rating:       entity.FeedbackRating(f.Rating),
		Comment:      f.Comment,
		Status:       entity.FeedbackStatus(f.Status),
		CreatedAt:    f.CreatedAt,
	}
}

func (m *FeedbackMapper) ToModel(f *entity.Feedback) *model.Feedback {
	if f == nil {
		return nil
	}
	return &model.Feedback{
		Id:           f.Id,
		UserId:       f.UserId,
		SubProjectId: f.SubProjectId,
		Rating:       string(f.Rating),
		Comment:      f.Comment,
		Status:       string(f.Status),
		CreatedAt:    f.CreatedAt,
	}
}

type BidMapper struct{}

func NewBidMapper() *BidMapper {
	return &BidMapper{}
}

func (m *BidMapper) ToEntity(b *model.BidDecision) *entity.BidDecision {
	if b == nil {
		return nil
	}

	var updatedAt *time.Time
	if !b.UpdatedAt.IsZero() {
		t := b.UpdatedAt
		updatedAt = &t
	}

	return &entity.BidDecision{
		Id:           b.Id,
		UserId:       b.UserId,
		SubProjectId: b.SubProjectId,
		Decision:     entity.BidChoice(b.Decision),
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *BidMapper) ToModel(b *entity.BidDecision) *model.BidDecision {
	if b == nil {
		return nil
	}

	var updatedAt time.Time
	if b.UpdatedAt != nil {
		updatedAt = *b.UpdatedAt
	}

	return &model.BidDecision{
		Id:           b.Id,
		UserId:       b.UserId,
		SubProjectId: b.SubProjectId,
		Decision:     string(b.Decision),
		Reason:       b.Reason,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

type ActivityMapper struct{}

func NewActivityMapper() *ActivityMapper {
	return &ActivityMapper{}
}

func (m *ActivityMapper) ToEntity(a *model.Activity) *entity.Activity {
	if a == nil {
		return nil
	}

	metadata := make(map[string]interface{})
	if len(a.Metadata) > 0 {
		_ = json.Unmarshal(a.Metadata, &metadata)
	}

	return &entity.Activity{
		Id:        a.Id,
		TypeCode:  a.TypeCode,
		ActorId:   a.ActorId,
		Metadata:  metadata,
		CreatedAt: a.CreatedAt,
	}
}

func (m *ActivityMapper) ToModel(a *entity.Activity) *model.Activity {
	if a == nil {
		return nil
	}

	var metadata datatypes.JSON
	if a.Metadata != nil {
		raw, _ := json.Marshal(a.Metadata)
		metadata = datatypes.JSON(raw)
	}

	return &model.Activity{
		Id:        a.Id,
		TypeCode:  a.TypeCode,
		ActorId:   a.ActorId,
		Metadata:  metadata,
		CreatedAt: a.CreatedAt,
	}
}
