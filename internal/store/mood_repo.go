package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type moodEventRepo struct {
	db *gorm.DB
}

func (r *moodEventRepo) Insert(ctx context.Context, rec *MoodEventRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	row := moodEntryModel{
		ID:        rec.ID,
		UserID:    rec.UserID,
		Mood:      rec.Mood,
		Label:     rec.Label,
		Emoji:     rec.Emoji,
		Timestamp: rec.Timestamp,
		CreatedAt: rec.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return &PersistenceError{Op: "insert mood event", Err: err}
	}
	return nil
}

func (r *moodEventRepo) RecentForUser(ctx context.Context, userID string, limit int) ([]MoodEventRecord, error) {
	var rows []moodEntryModel
	q := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("timestamp DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, &PersistenceError{Op: "list mood events", Err: err}
	}

	recs := make([]MoodEventRecord, len(rows))
	for i, row := range rows {
		recs[i] = MoodEventRecord{
			ID:        row.ID,
			UserID:    row.UserID,
			Mood:      row.Mood,
			Label:     row.Label,
			Emoji:     row.Emoji,
			Timestamp: row.Timestamp,
			CreatedAt: row.CreatedAt,
		}
	}
	return recs, nil
}
