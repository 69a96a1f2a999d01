package models

import "time"

// OTPRecord is one pending one-time code. AccountID is a weak reference, not
// an ownership relation; the denormalized email is the alternate lookup key
// used by flows that only carry an email-scoped token. Delete-then-insert on
// every send keeps at most one live record per (role, email).
type OTPRecord struct {
	BaseModel
	AccountID string    `gorm:"index" json:"-"`
	Role      Role      `gorm:"type:varchar(20);not null;index:idx_otp_role_email" json:"-"`
	Email     string    `gorm:"not null;index:idx_otp_role_email" json:"-"`
	OTPHash   string    `gorm:"not null" json:"-"`
	ExpiresAt time.Time `gorm:"not null" json:"-"`
}

// Expired reports whether the record is past its TTL at the given instant.
func (r *OTPRecord) Expired(now time.Time) bool {
	return now.After(r.ExpiresAt)
}
