package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ActionTemplate struct {
	Id           uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Topic        string         `gorm:"type:varchar(50);not null;index"`
	Jurisdiction string         `gorm:"type:varchar(10);not null;index"`
	Title        string         `gorm:"type:text;not null"`
	Steps        datatypes.JSON `gorm:"type:jsonb;not null"`
	CreatedAt    time.Time      `gorm:"autoCreateTime"`
	UpdatedAt    time.Time      `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt `gorm:"index"`
}

func (ActionTemplate) TableName() string {
	return "action_templates"
}
