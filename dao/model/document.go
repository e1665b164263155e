package model

import (
	"time"

	"gorm.io/gorm"

	"portfolio/util"
)

type Document struct {
	ID          string         `gorm:"primaryKey;type:varchar(32)" json:"id"`
	ProjectID   string         `gorm:"type:varchar(32);not null;index" json:"project_id"`
	DocType     DocType        `gorm:"type:varchar(20)" json:"doc_type"`
	Title       string         `gorm:"type:varchar(200);not null" json:"title"`
	Description string         `gorm:"type:text" json:"description"`
	FileURL     string         `gorm:"type:varchar(512)" json:"file_url"`
	Version     string         `gorm:"type:varchar(40)" json:"version"`
	Status      DocumentStatus `gorm:"type:varchar(20)" json:"status"`
	UploadedBy  string         `gorm:"type:varchar(120)" json:"uploaded_by"`
	UploadedAt  time.Time      `json:"uploaded_at"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}

func (d *Document) BeforeCreate(_ *gorm.DB) error {
	if d.ID == "" {
		d.ID = util.NewID("doc")
	}
	return nil
}
