package service

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// RegisterParams contains parameters to create an account.
type RegisterParams struct {
	Type        model.UserType
	FullName    string
	Phone       string
	Email       string
	HealthNeeds string

	// Employer only.
	CompanyName        string
	CompanyDescription string
	LicenseFileName    string
	LicenseFile        io.Reader
}

// Auth implements registration, demo login and profile replacement.
// Login performs no credential verification: the platform runs in demo mode
// and an account is identified by its email alone.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	storage      model.DocumentStorage
	tokenManager model.TokenManager
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	storage model.DocumentStorage,
	tokenManager model.TokenManager,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		storage:      storage,
		tokenManager: tokenManager,
		logger:       logger,
	}
}

// Register creates an account, stores the employer license if provided, opens
// the session and issues an access token.
func (a *Auth) Register(ctx context.Context, params RegisterParams) (model.User, string, error) {
	existing, err := a.userStore.GetByEmail(params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: login via register for existing email", "email", params.Email)
		return a.openSession(existing)
	}

	if params.Type == model.UserTypeEmployer && params.CompanyName == "" {
		return model.User{}, "", model.NewValidationError("companyName")
	}

	user := model.User{
		Type:         params.Type,
		FullName:     params.FullName,
		Phone:        params.Phone,
		Email:        params.Email,
		Subscription: model.SubscriptionNone,
	}

	switch params.Type {
	case model.UserTypeEmployee:
		user.HealthNeeds = params.HealthNeeds
	case model.UserTypeEmployer:
		user.CompanyName = params.CompanyName
		user.CompanyDescription = params.CompanyDescription

		if params.LicenseFile != nil {
			key := fmt.Sprintf("licenses/%s-%s", uuid.New(), params.LicenseFileName)
			if err := a.storage.Upload(ctx, key, params.LicenseFile); err != nil {
				return model.User{}, "", fmt.Errorf("failed to upload license: %w", err)
			}
			user.LicenseKey = key
		}
	}

	user, err = a.userStore.Create(user)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to create user: %w", err)
	}

	a.logger.Info("Auth service: user registered", "user_id", user.ID, "type", user.Type)

	return a.openSession(user)
}

// Login finds the account by email and opens the session. Demo semantics:
// there is no password and no credential check.
func (a *Auth) Login(_ context.Context, email string) (model.User, string, error) {
	if email == "" {
		return model.User{}, "", model.NewValidationError("email")
	}

	user, err := a.userStore.GetByEmail(email)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to get user by email: %w", err)
	}

	return a.openSession(user)
}

// Logout clears the session. Catalog, resume and application data stay in
// place: they are process-wide, not session-scoped.
func (a *Auth) Logout(_ context.Context) {
	a.sessionStore.Set(nil)
}

// CurrentUser returns the session user, or ErrNotFound when logged out.
func (a *Auth) CurrentUser(_ context.Context) (model.User, error) {
	user := a.sessionStore.Get()
	if user == nil {
		return model.User{}, model.ErrNotFound
	}

	return *user, nil
}

// GetUser returns an account by id.
func (a *Auth) GetUser(_ context.Context, id uuid.UUID) (model.User, error) {
	user, err := a.userStore.GetByID(id)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	return user, nil
}

// ReplaceProfile re-sets the whole user record. There is no field-level
// patch: callers send the full edited record.
func (a *Auth) ReplaceProfile(_ context.Context, user model.User) (model.User, error) {
	replaced, err := a.userStore.Replace(user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to replace user: %w", err)
	}

	if current := a.sessionStore.Get(); current != nil && current.ID == replaced.ID {
		a.sessionStore.Set(&replaced)
	}

	return replaced, nil
}

func (a *Auth) openSession(user model.User) (model.User, string, error) {
	accessToken, err := a.tokenManager.GenerateAccessToken(user.ID)
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to generate access token: %w", err)
	}

	a.sessionStore.Set(&user)

	return user, accessToken, nil
}
