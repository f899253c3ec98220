package implementation

import (
	"context"
	"errors"

	"legal-assist-be/internal/model"
	"legal-assist-be/internal/repository/contract"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SessionCheckpointRepositoryImpl struct {
	db *gorm.DB
}

func NewSessionCheckpointRepository(db *gorm.DB) contract.SessionCheckpointRepository {
	return &SessionCheckpointRepositoryImpl{db: db}
}

func (r *SessionCheckpointRepositoryImpl) Upsert(ctx context.Context, sessionId string, state []byte) error {
	checkpoint := model.SessionCheckpoint{
		SessionId: sessionId,
		State:     datatypes.JSON(state),
	}
	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "session_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"state", "updated_at"}),
	}).Create(&checkpoint).Error
}

func (r *SessionCheckpointRepositoryImpl) FindBySessionId(ctx context.Context, sessionId string) ([]byte, error) {
	var m model.SessionCheckpoint
	err := r.db.WithContext(ctx).Where("session_id = ?", sessionId).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return []byte(m.State), nil
}

func (r *SessionCheckpointRepositoryImpl) Delete(ctx context.Context, sessionId string) error {
	return r.db.WithContext(ctx).Where("session_id = ?", sessionId).Delete(&model.SessionCheckpoint{}).Error
}
