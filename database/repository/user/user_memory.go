package userRepo

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"peacelock/models"
)

// MemoryUserRepo is the in-memory user store.
type MemoryUserRepo struct {
	mu    sync.RWMutex
	users map[string]models.User
}

func NewMemoryUserRepo() *MemoryUserRepo {
	return &MemoryUserRepo{
		users: make(map[string]models.User),
	}
}

func (r *MemoryUserRepo) Create(username, password string) (*models.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Username == username {
			return nil, fmt.Errorf("username %s already taken", username)
		}
	}

	user := models.User{
		ID:        uuid.New().String(),
		Username:  username,
		Password:  string(hash),
		CreatedAt: time.Now(),
	}
	r.users[user.ID] = user
	return &user, nil
}

func (r *MemoryUserRepo) GetByID(id string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	user, ok := r.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &user, nil
}

func (r *MemoryUserRepo) GetByUsername(username string) (*models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Username == username {
			return &u, nil
		}
	}
	return nil, models.ErrNotFound
}
