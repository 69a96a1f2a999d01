package dto

import "autobuy_backend/internal/models"

// ProfileResponse is the sanitized account view returned by profile
// and login endpoints. Password hash, internal flags, id and
// timestamps never leave the service layer.
type ProfileResponse struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	Username  string `json:"username,omitempty"`
	Email     string `json:"email"`
	Role      string `json:"role"`

	// Buyer settings
	PresentAddress    string `json:"present_address,omitempty"`
	PermanentAddress  string `json:"permanent_address,omitempty"`
	City              string `json:"city,omitempty"`
	PostalCode        string `json:"postal_code,omitempty"`
	Country           string `json:"country,omitempty"`
	TimeZone          string `json:"time_zone,omitempty"`
	EmailNotification *bool  `json:"email_notification,omitempty"`
	PushNotification  *bool  `json:"push_notification,omitempty"`

	// Broker directory listing
	Phone        string   `json:"phone,omitempty"`
	Location     string   `json:"location,omitempty"`
	About        string   `json:"about,omitempty"`
	Experience   string   `json:"experience,omitempty"`
	Specialities []string `json:"specialities,omitempty"`
	Expertise    string   `json:"expertise,omitempty"`
	Language     string   `json:"language,omitempty"`

	// Seller inventory
	Products []models.Product `json:"products,omitempty"`
}

// UpdateProfileRequest uses pointer fields so a client can clear a
// value with an explicit empty string while absent fields stay
// untouched.
type UpdateProfileRequest struct {
	FirstName *string `json:"first_name,omitempty"`
	LastName  *string `json:"last_name,omitempty"`
	Username  *string `json:"username,omitempty"`

	PresentAddress    *string `json:"present_address,omitempty"`
	PermanentAddress  *string `json:"permanent_address,omitempty"`
	City              *string `json:"city,omitempty"`
	PostalCode        *string `json:"postal_code,omitempty"`
	Country           *string `json:"country,omitempty"`
	TimeZone          *string `json:"time_zone,omitempty"`
	EmailNotification *bool   `json:"email_notification,omitempty"`
	PushNotification  *bool   `json:"push_notification,omitempty"`

	Phone        *string   `json:"phone,omitempty"`
	Location     *string   `json:"location,omitempty"`
	About        *string   `json:"about,omitempty"`
	Experience   *string   `json:"experience,omitempty"`
	Specialities *[]string `json:"specialities,omitempty"`
	Expertise    *string   `json:"expertise,omitempty"`
	Language     *string   `json:"language,omitempty"`
}
