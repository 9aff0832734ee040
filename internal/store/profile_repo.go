package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type profileRepo struct {
	db *gorm.DB
}

func (r *profileRepo) Upsert(ctx context.Context, rec *ProfileRecord) error {
	now := time.Now()

	var existing userProfileModel
	err := r.db.WithContext(ctx).
		Where("email = ?", rec.Email).
		First(&existing).Error
	switch {
	case err == nil:
		existing.FullName = rec.FullName
		existing.AvatarURL = rec.AvatarURL
		existing.UpdatedAt = now
		if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
			return &PersistenceError{Op: "update profile", Err: err}
		}
		*rec = profileRecord(existing)
		return nil

	case errors.Is(err, gorm.ErrRecordNotFound):
		row := userProfileModel{
			ID:        uuid.NewString(),
			Email:     rec.Email,
			FullName:  rec.FullName,
			AvatarURL: rec.AvatarURL,
			CreatedAt: now,
			UpdatedAt: now,
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return &PersistenceError{Op: "create profile", Err: err}
		}
		*rec = profileRecord(row)
		return nil

	default:
		return &PersistenceError{Op: "lookup profile", Err: err}
	}
}

func (r *profileRepo) Get(ctx context.Context, id string) (*ProfileRecord, error) {
	var row userProfileModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &PersistenceError{Op: "get profile", Err: ErrNotFound}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get profile", Err: err}
	}
	rec := profileRecord(row)
	return &rec, nil
}

func (r *profileRepo) SetCurrent(ctx context.Context, id string) error {
	row := sessionModel{ID: sessionRowID, ProfileID: id, UpdatedAt: time.Now()}
	if err := r.db.WithContext(ctx).Save(&row).Error; err != nil {
		return &PersistenceError{Op: "set session", Err: err}
	}
	return nil
}

func (r *profileRepo) Current(ctx context.Context) (*ProfileRecord, error) {
	var sess sessionModel
	err := r.db.WithContext(ctx).Where("id = ?", sessionRowID).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) || (err == nil && sess.ProfileID == "") {
		return nil, &PersistenceError{Op: "get session", Err: ErrNotFound}
	}
	if err != nil {
		return nil, &PersistenceError{Op: "get session", Err: err}
	}
	return r.Get(ctx, sess.ProfileID)
}

func (r *profileRepo) ClearCurrent(ctx context.Context) error {
	err := r.db.WithContext(ctx).
		Where("id = ?", sessionRowID).
		Delete(&sessionModel{}).Error
	if err != nil {
		return &PersistenceError{Op: "clear session", Err: err}
	}
	return nil
}

func profileRecord(row userProfileModel) ProfileRecord {
	return ProfileRecord{
		ID:        row.ID,
		Email:     row.Email,
		FullName:  row.FullName,
		AvatarURL: row.AvatarURL,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}
