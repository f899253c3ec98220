package entity

import (
	"time"

	"github.com/google/uuid"
)

type CrisisResource struct {
	Id           uuid.UUID
	Name         string
	Phone        string
	URL          string
	Description  string
	Category     string
	Jurisdiction string // empty = national
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
