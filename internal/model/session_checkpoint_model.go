package model

import (
	"time"

	"gorm.io/datatypes"
)

// SessionCheckpoint is the durable snapshot of the orchestrator's
// session state, written once per turn after stage merge.
type SessionCheckpoint struct {
	SessionId string         `gorm:"type:uuid;primaryKey"`
	State     datatypes.JSON `gorm:"type:jsonb;not null"`
	UpdatedAt time.Time      `gorm:"autoUpdateTime"`
}

func (SessionCheckpoint) TableName() string {
	return "session_checkpoints"
}
