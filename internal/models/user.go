package models

// User is a local mirror of an identity-provider account. A row is created
// the first time a token for an unseen email is verified; it is never updated
// or deleted afterwards, so the first-seen name sticks.
type User struct {
	ID        string `gorm:"size:36;primaryKey" json:"id"`
	Email     string `gorm:"size:255;not null;uniqueIndex" json:"email"`
	FirstName string `gorm:"size:100;not null" json:"first_name"`
}
