package models

import "github.com/lib/pq"

// BuyerProfile holds the buyer-specific settings page fields.
type BuyerProfile struct {
	BaseModel
	AccountID        string `gorm:"not null;uniqueIndex" json:"-"`
	PresentAddress   string `json:"present_address,omitempty"`
	PermanentAddress string `json:"permanent_address,omitempty"`
	City             string `json:"city,omitempty"`
	PostalCode       string `json:"postal_code,omitempty"`
	Country          string `json:"country,omitempty"`
	Language         string `json:"language,omitempty"`
	TimeZone         string `json:"time_zone,omitempty"`

	EmailNotification bool `gorm:"default:false" json:"email_notification"`
	PushNotification  bool `gorm:"default:false" json:"push_notification"`
}

// BrokerProfile holds the broker directory listing fields.
type BrokerProfile struct {
	BaseModel
	AccountID    string         `gorm:"not null;uniqueIndex" json:"-"`
	Phone        string         `json:"phone,omitempty"`
	Location     string         `json:"location,omitempty"`
	About        string         `json:"about,omitempty"`
	Experience   string         `json:"experience,omitempty"`
	Specialities pq.StringArray `gorm:"type:text[]" json:"specialities,omitempty"`
	Expertise    string         `json:"expertise,omitempty"`
	Language     string         `json:"language,omitempty"`
}
