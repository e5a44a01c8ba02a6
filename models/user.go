package models

import "time"

// User is a stored account record. No authentication flow is exposed;
// the store exists as the swap-in point a future admin surface would use.
type User struct {
	ID        string    `json:"id" bson:"id"`
	Username  string    `json:"username" bson:"username"`
	Password  string    `json:"-" bson:"password"` // bcrypt hash
	CreatedAt time.Time `json:"createdAt" bson:"created_at"`
}
