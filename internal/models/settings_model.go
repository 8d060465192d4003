package models

import "time"

type Settings struct {
	ID              int64     `db:"id" json:"id"`
	UserID          int64     `db:"user_id" json:"user_id"`
	Timezone        string    `db:"timezone" json:"timezone"`
	DefaultHashtags []string  `db:"default_hashtags" json:"default_hashtags"`
	AutoOptimize    bool      `db:"auto_optimize" json:"auto_optimize"`
	CreatedAt       time.Time `db:"created_at" json:"created_at"`
	UpdatedAt       time.Time `db:"updated_at" json:"updated_at"`
}
