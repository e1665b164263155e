package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

// MediaItem is a site photo, progress update or camera feed reference.
// Only the URL is stored; the media itself lives elsewhere.
type MediaItem struct {
	ID          string    `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID   string    `gorm:"type:varchar(32);not null;index" json:"project_id"`
	Title       string    `gorm:"type:varchar(200);not null" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	MediaType   MediaType `gorm:"type:varchar(20)" json:"media_type"`
	MediaURL    string    `gorm:"type:varchar(512)" json:"media_url"`
	CapturedAt  time.Time `json:"captured_at"`
	UploadedBy  string    `gorm:"type:varchar(120)" json:"uploaded_by"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (m *MediaItem) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = util.NewID("media")
	}
	return nil
}
