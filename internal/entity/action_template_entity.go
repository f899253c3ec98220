package entity

import (
	"time"

	"github.com/google/uuid"
)

type ActionTemplate struct {
	Id           uuid.UUID
	Topic        string
	Jurisdiction string
	Title        string
	Steps        []string
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
