package models

import "time"

// Account is one marketplace identity. Roles live in a single table with a
// discriminator column; the composite unique index on (role, email) keeps
// emails unique within a role while allowing the same address to register
// under different roles, matching the legacy per-role collections.
type Account struct {
	BaseModel
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Username     string `json:"username,omitempty"`
	Email        string `gorm:"not null;uniqueIndex:idx_accounts_role_email" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	Role         Role   `gorm:"type:varchar(20);not null;uniqueIndex:idx_accounts_role_email" json:"role"`

	// Approved flips to true only on successful OTP verification.
	Approved bool `gorm:"default:false" json:"-"`
	// Active is admin-controlled deactivation.
	Active bool `gorm:"default:true" json:"-"`
	// LastChangedPassword invalidates every token issued before it.
	LastChangedPassword time.Time `gorm:"not null" json:"-"`

	// Relations
	BuyerProfile  *BuyerProfile  `gorm:"foreignKey:AccountID" json:"buyer_profile,omitempty"`
	BrokerProfile *BrokerProfile `gorm:"foreignKey:AccountID" json:"broker_profile,omitempty"`
	Products      []Product      `gorm:"foreignKey:SellerID" json:"products,omitempty"`
}
