package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type progressRepo struct {
	db *gorm.DB
}

func (r *progressRepo) Insert(ctx context.Context, rec *ProgressRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	row := learningProgressModel{
		ID:               rec.ID,
		UserID:           rec.UserID,
		ContentTitle:     rec.ContentTitle,
		ContentType:      rec.ContentType,
		MoodContext:      rec.MoodContext,
		Completed:        rec.Completed,
		CompletionDate:   rec.CompletionDate,
		TimeSpentSeconds: rec.TimeSpentSeconds,
		CreatedAt:        rec.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return &PersistenceError{Op: "insert progress", Err: err}
	}
	return nil
}

func (r *progressRepo) MarkCompleted(ctx context.Context, userID, id string, timeSpentSeconds int) error {
	var row learningProgressModel
	err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &PersistenceError{Op: "complete progress", Err: ErrNotFound}
	}
	if err != nil {
		return &PersistenceError{Op: "complete progress", Err: err}
	}
	if row.Completed {
		return &PersistenceError{Op: "complete progress", Err: ErrAlreadyCompleted}
	}

	now := time.Now()
	res := r.db.WithContext(ctx).
		Model(&learningProgressModel{}).
		Where("id = ? AND user_id = ? AND completed = ?", id, userID, false).
		Updates(map[string]any{
			"completed":       true,
			"completion_date": now,
			"time_spent":      timeSpentSeconds,
		})
	if res.Error != nil {
		return &PersistenceError{Op: "complete progress", Err: res.Error}
	}
	if res.RowsAffected == 0 {
		return &PersistenceError{Op: "complete progress", Err: ErrAlreadyCompleted}
	}
	return nil
}

func (r *progressRepo) RecentForUser(ctx context.Context, userID string, limit int) ([]ProgressRecord, error) {
	var rows []learningProgressModel
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, &PersistenceError{Op: "list progress", Err: err}
	}

	recs := make([]ProgressRecord, len(rows))
	for i, row := range rows {
		recs[i] = ProgressRecord{
			ID:               row.ID,
			UserID:           row.UserID,
			ContentTitle:     row.ContentTitle,
			ContentType:      row.ContentType,
			MoodContext:      row.MoodContext,
			Completed:        row.Completed,
			CompletionDate:   row.CompletionDate,
			TimeSpentSeconds: row.TimeSpentSeconds,
			CreatedAt:        row.CreatedAt,
		}
	}
	return recs, nil
}
