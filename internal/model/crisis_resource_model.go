package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CrisisResource struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name         string         `gorm:"type:text;not null"`
	Phone        string         `gorm:"type:varchar(30)"`
	URL          string         `gorm:"type:text"`
	Description  string         `gorm:"type:text"`
	Category     string         `gorm:"type:varchar(50);not null;index"`
	Jurisdiction string         `gorm:"type:varchar(10);index"` // empty = national
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (CrisisResource) TableName() string {
	return "crisis_resources"
}
