package repositories

import (
	"context"
	"errors"
	"jiwoo-back/models"
	"time"

	"gorm.io/gorm"
)

type SessionRepository struct {
	DB *gorm.DB
}

func NewSessionRepository(DB *gorm.DB) *SessionRepository {
	return &SessionRepository{DB: DB}
}

func (r *SessionRepository) Create(ctx context.Context, session *models.UserSession) error {
	return r.DB.WithContext(ctx).Create(session).Error
}

// FindActive returns the session when it is active and not expired, nil otherwise.
func (r *SessionRepository) FindActive(ctx context.Context, sessionID string) (*models.UserSession, error) {
	var session models.UserSession
	err := r.DB.WithContext(ctx).
		Where("session_id = ? AND is_active = ? AND expires_at > ?", sessionID, true, time.Now()).
		First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *SessionRepository) Rotate(ctx context.Context, sessionID string, refreshTokenID int64, expiresAt time.Time) error {
	return r.DB.WithContext(ctx).Model(&models.UserSession{}).
		Where("session_id = ?", sessionID).
		Updates(map[string]interface{}{
			"refresh_token_id": refreshTokenID,
			"expires_at":       expiresAt,
			"last_activity_at": time.Now(),
		}).Error
}

func (r *SessionRepository) Touch(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).Model(&models.UserSession{}).
		Where("session_id = ?", sessionID).
		Update("last_activity_at", time.Now()).Error
}

func (r *SessionRepository) Deactivate(ctx context.Context, sessionID string) error {
	return r.DB.WithContext(ctx).Model(&models.UserSession{}).
		Where("session_id = ?", sessionID).
		Update("is_active", false).Error
}
