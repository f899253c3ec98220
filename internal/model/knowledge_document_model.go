package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/pgvector/pgvector-go"
	"gorm.io/gorm"
)

type KnowledgeDocument struct {
	Id           uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Title        string          `gorm:"type:text;not null"`
	Content      string          `gorm:"type:text;not null"`
	Source       string          `gorm:"type:varchar(100)"`
	URL          string          `gorm:"type:text"`
	LegalArea    string          `gorm:"type:varchar(50);index"`
	Jurisdiction string          `gorm:"type:varchar(10);index"`
	Embedding    pgvector.Vector `gorm:"type:vector(768)"` // nomic-embed-text uses 768 dimensions
	CreatedAt    time.Time       `gorm:"autoCreateTime"`
	UpdatedAt    time.Time       `gorm:"autoUpdateTime"`
	DeletedAt    gorm.DeletedAt  `gorm:"index"`
}

func (KnowledgeDocument) TableName() string {
	return "knowledge_documents"
}
