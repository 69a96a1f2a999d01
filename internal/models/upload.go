package models

import (
	"gorm.io/datatypes"
)

// Upload is the bookkeeping row for a stored file (product or profile photo).
type Upload struct {
	BaseModel
	OwnerID      string `gorm:"not null;index" json:"-"`
	OriginalName string `json:"original_name"`
	Path         string `gorm:"not null" json:"-"`
	URL          string `json:"url"`
	MimeType     string `json:"mime_type"`
	Size         int64  `json:"size"`

	// Metadata carries image dimensions and resize info.
	Metadata datatypes.JSON `json:"metadata,omitempty"`
}
