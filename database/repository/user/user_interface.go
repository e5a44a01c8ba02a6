package userRepo

import (
	"peacelock/models"
)

// UserRepository defines methods for user data access. Passwords are
// bcrypt-hashed before storage; plaintext never leaves Create.
type UserRepository interface {
	// Create inserts a new user record, hashing the supplied password.
	Create(username, password string) (*models.User, error)
	// GetByID retrieves a user by its unique ID.
	GetByID(id string) (*models.User, error)
	// GetByUsername retrieves a user by username.
	GetByUsername(username string) (*models.User, error)
}
