package mapper

import (
	"encoding/json"
	"time"

	"legal-assist-be/internal/entity"
	"legal-assist-be/internal/model"

	"gorm.io/datatypes"
)

type DirectoryMapper struct{}

func NewDirectoryMapper() *DirectoryMapper {
	return &DirectoryMapper{}
}

func (m *DirectoryMapper) LawyerToEntity(l *model.Lawyer) *entity.Lawyer {
	if l == nil {
		return nil
	}

	var updatedAt *time.Time
	if !l.UpdatedAt.IsZero() {
		t := l.UpdatedAt
		updatedAt = &t
	}

	return &entity.Lawyer{
		Id:           l.Id,
		Name:         l.Name,
		Firm:         l.Firm,
		LegalArea:    l.LegalArea,
		Jurisdiction: l.Jurisdiction,
		Phone:        l.Phone,
		Email:        l.Email,
		URL:          l.URL,
		Rating:       l.Rating,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DirectoryMapper) LawyerToModel(l *entity.Lawyer) *model.Lawyer {
	if l == nil {
		return nil
	}

	var updatedAt time.Time
	if l.UpdatedAt != nil {
		updatedAt = *l.UpdatedAt
	}

	return &model.Lawyer{
		Id:           l.Id,
		Name:         l.Name,
		Firm:         l.Firm,
		LegalArea:    l.LegalArea,
		Jurisdiction: l.Jurisdiction,
		Phone:        l.Phone,
		Email:        l.Email,
		URL:          l.URL,
		Rating:       l.Rating,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DirectoryMapper) CrisisResourceToEntity(r *model.CrisisResource) *entity.CrisisResource {
	if r == nil {
		return nil
	}

	var updatedAt *time.Time
	if !r.UpdatedAt.IsZero() {
		t := r.UpdatedAt
		updatedAt = &t
	}

	return &entity.CrisisResource{
		Id:           r.Id,
		Name:         r.Name,
		Phone:        r.Phone,
		URL:          r.URL,
		Description:  r.Description,
		Category:     r.Category,
		Jurisdiction: r.Jurisdiction,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DirectoryMapper) ActionTemplateToEntity(t *model.ActionTemplate) *entity.ActionTemplate {
	if t == nil {
		return nil
	}

	var updatedAt *time.Time
	if !t.UpdatedAt.IsZero() {
		u := t.UpdatedAt
		updatedAt = &u
	}

	var steps []string
	if len(t.Steps) > 0 {
		// Malformed rows degrade to an empty checklist
		_ = json.Unmarshal(t.Steps, &steps)
	}

	return &entity.ActionTemplate{
		Id:           t.Id,
		Topic:        t.Topic,
		Jurisdiction: t.Jurisdiction,
		Title:        t.Title,
		Steps:        steps,
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DirectoryMapper) ActionTemplateToModel(t *entity.ActionTemplate) *model.ActionTemplate {
	if t == nil {
		return nil
	}

	var updatedAt time.Time
	if t.UpdatedAt != nil {
		updatedAt = *t.UpdatedAt
	}

	steps, _ := json.Marshal(t.Steps)

	return &model.ActionTemplate{
		Id:           t.Id,
		Topic:        t.Topic,
		Jurisdiction: t.Jurisdiction,
		Title:        t.Title,
		Steps:        datatypes.JSON(steps),
		CreatedAt:    t.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}

func (m *DirectoryMapper) CrisisResourceToModel(r *entity.CrisisResource) *model.CrisisResource {
	if r == nil {
		return nil
	}

	var updatedAt time.Time
	if r.UpdatedAt != nil {
		updatedAt = *r.UpdatedAt
	}

	return &model.CrisisResource{
		Id:           r.Id,
		Name:         r.Name,
		Phone:        r.Phone,
		URL:          r.URL,
		Description:  r.Description,
		Category:     r.Category,
		Jurisdiction: r.Jurisdiction,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    updatedAt,
	}
}
