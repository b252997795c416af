package models

import "time"

// CodeTTL is how long a moderator code stays valid after it is issued
const CodeTTL = 7 * 24 * time.Hour

// ModeratorCode represents the structure of a moderator verification code document in MongoDB.
// The code doubles as the document key.
type ModeratorCode struct {
	ID        string     `json:"_id" bson:"_id"`
	Code      string     `json:"code" bson:"code"`
	Email     string     `json:"email" bson:"email"`
	Used      bool       `json:"used" bson:"used"`
	CreatedAt time.Time  `json:"createdAt" bson:"createdAt"`
	ExpiresAt *time.Time `json:"expiresAt" bson:"expiresAt"`
}

// NewModeratorCode builds an unused record for email, expiring CodeTTL after now
func NewModeratorCode(code, email string, now time.Time) ModeratorCode {
	now = now.UTC().Truncate(time.Millisecond)
	expiresAt := now.Add(CodeTTL)
	return ModeratorCode{
		ID:        code,
		Code:      code,
		Email:     email,
		Used:      false,
		CreatedAt: now,
		ExpiresAt: &expiresAt,
	}
}
