package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lawyer struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:text;not null"`
	Firm         string         `gorm:"type:text"`
	LegalArea    string         `gorm:"type:varchar(50);not null;index"`
	Jurisdiction string         `gorm:"type:varchar(10);not null;index"`
	Phone        string         `gorm:"type:varchar(30)"`
	Email        string         `gorm:"type:text"`
	URL          string         `gorm:"type:text"`
	Rating       float64        `gorm:"type:numeric(3,2);default:0"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (Lawyer) TableName() string {
	return "lawyers"
}
