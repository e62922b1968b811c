package models

import "time"

// Image records every object uploaded to OSS.
type Image struct {
	ID        int64     `gorm:"column:id;primary_key;AUTO_INCREMENT" json:"id"`
	UserID    int64     `gorm:"column:user_id;not null;index" json:"user_id"`
	Bucket    string    `gorm:"column:bucket;not null" json:"bucket"`
	ObjectKey string    `gorm:"column:object_key;not null" json:"object_key"`
	URL       string    `gorm:"column:url;not null" json:"url"`
	Size      int64     `gorm:"column:size;not null" json:"size"`
	Width     int       `gorm:"column:width" json:"width"`
	Height    int       `gorm:"column:height" json:"height"`
	CreatedAt time.Time `gorm:"column:created_at" json:"created_at"`
}

func (Image) TableName() string {
	return "images"
}
