package entity

import (
	"time"

	"github.com/google/uuid"
)

type Lawyer struct {
	Id           uuid.UUID
	Name         string
	Firm         string
	LegalArea    string
	Jurisdiction string
	Phone        string
	Email        string
	URL          string
	Rating       float64
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
