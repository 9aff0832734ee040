package store

import "time"

// Column layouts mirror the hosted schema so an exported database stays
// compatible with the web client.

type moodEntryModel struct {
	ID        string    `gorm:"primaryKey;column:id"`
	UserID    string    `gorm:"column:user_id;index:idx_mood_entries_user_time,priority:1"`
	Mood      string    `gorm:"column:mood"`
	Label     string    `gorm:"column:label"`
	Emoji     string    `gorm:"column:emoji"`
	Timestamp time.Time `gorm:"column:timestamp;index:idx_mood_entries_user_time,priority:2,sort:desc"`
	CreatedAt time.Time `gorm:"column:created_at"`
}

func (moodEntryModel) TableName() string { return "mood_entries" }

type learningProgressModel struct {
	ID               string     `gorm:"primaryKey;column:id"`
	UserID           string     `gorm:"column:user_id;index:idx_learning_progress_user_time,priority:1"`
	ContentTitle     string     `gorm:"column:content_title"`
	ContentType      string     `gorm:"column:content_type"`
	MoodContext      string     `gorm:"column:mood"`
	Completed        bool       `gorm:"column:completed"`
	CompletionDate   *time.Time `gorm:"column:completion_date"`
	TimeSpentSeconds *int       `gorm:"column:time_spent"`
	CreatedAt        time.Time  `gorm:"column:created_at;index:idx_learning_progress_user_time,priority:2,sort:desc"`
}

func (learningProgressModel) TableName() string { return "learning_progress" }

type userProfileModel struct {
	ID        string    `gorm:"primaryKey;column:id"`
	Email     string    `gorm:"column:email;uniqueIndex"`
	FullName  string    `gorm:"column:full_name"`
	AvatarURL string    `gorm:"column:avatar_url"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userProfileModel) TableName() string { return "user_profiles" }

// sessionModel is a single-row marker for the locally signed-in profile.
type sessionModel struct {
	ID        int       `gorm:"primaryKey;column:id"`
	ProfileID string    `gorm:"column:profile_id"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (sessionModel) TableName() string { return "local_session" }

const sessionRowID = 1
