package mapper

import (
	"project-collab-be/internal/entity"
	"project-collab-be/internal/model"
)

type QuestionMapper struct{}

func NewQuestionMapper() *QuestionMapper {
	return &QuestionMapper{}
}

func (m *QuestionMapper) ToEntity(q *model.Question) *entity.Question {
	if q == nil {
		return nil
	}

	var answer *entity.Answer
	if q.AnswerText != nil {
		answer = &entity.Answer{Text: *q.AnswerText}
		if q.AnsweredBy != nil {
			answer.AnsweredBy = *q.AnsweredBy
		}
		if q.AnsweredAt != nil {
			answer.AnsweredAt = *q.AnsweredAt
		}
	}

	return &entity.Question{
		Id:           q.Id,
		Text:         q.Text,
		UserId:       q.UserId,
		SubProjectId: q.SubProjectId,
		BlobKey:      q.BlobKey,
		Answer:       answer,
		IsBulletin:   q.IsBulletin,
		CreatedAt:    q.CreatedAt,
	}
}

func (m *QuestionMapper) ToModel(q *entity.Question) *model.Question {
	if q == nil {
		return nil
	}

	mdl := &model.Question{
		Id:           q.Id,
		Text:         q.Text,
		UserId:       q.UserId,
		SubProjectId: q.SubProjectId,
		BlobKey:      q.BlobKey,
		IsBulletin:   q.IsBulletin,
		CreatedAt:    q.CreatedAt,
	}

	if q.Answer != nil {
		by := q.Answer.AnsweredBy
		at := q.Answer.AnsweredAt
		text := q.Answer.Text
		mdl.AnsweredBy = &by
		mdl.AnsweredAt = &at
		mdl.AnswerText = &text
	}
	return mdl
}
