package memory

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.UserStore = (*UserRepository)(nil)

// UserRepository keeps accounts in memory for the lifetime of the process.
type UserRepository struct {
	mu    sync.RWMutex
	users []model.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user model.User) (model.User, error) {
	if user.Email == "" {
		return model.User{}, model.NewValidationError("email")
	}
	if user.FullName == "" {
		return model.User{}, model.NewValidationError("fullName")
	}
	if user.Type != model.UserTypeEmployee && user.Type != model.UserTypeEmployer {
		return model.User{}, model.NewValidationError("type")
	}

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	if user.Subscription == "" {
		user.Subscription = model.SubscriptionNone
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.users = append(r.users, user)

	return user, nil
}

func (r *UserRepository) GetByID(id uuid.UUID) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

func (r *UserRepository) GetByEmail(email string) (model.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}

	return model.User{}, model.ErrNotFound
}

// Replace swaps the whole stored record for the user with the same ID.
// Profile edits always re-set the full record, there is no field-level patch.
func (r *UserRepository) Replace(user model.User) (model.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, u := range r.users {
		if u.ID == user.ID {
			r.users[i] = user
			return user, nil
		}
	}

	return model.User{}, model.ErrNotFound
}
