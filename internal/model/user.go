package model

import (
	"time"

	"github.com/google/uuid"
)

// UserType discriminates the two account variants.
type UserType string

const (
	// UserTypeEmployee is a job seeker account.
	UserTypeEmployee UserType = "employee"
	// UserTypeEmployer is a company account.
	UserTypeEmployer UserType = "employer"
)

// SubscriptionTier enumerates premium subscription levels.
type SubscriptionTier string

const (
	// SubscriptionNone is the free tier.
	SubscriptionNone SubscriptionTier = "none"
	// SubscriptionBasic is the 7-day premium tier.
	SubscriptionBasic SubscriptionTier = "basic"
	// SubscriptionPlus is the 30-day premium tier.
	SubscriptionPlus SubscriptionTier = "plus"
)

// User represents an account. Employee and employer variants share the record;
// role-specific fields are validated against Type on registration and the
// record is always replaced wholesale, never patched field by field.
type User struct {
	ID                  uuid.UUID
	Type                UserType
	FullName            string
	Phone               string
	Email               string
	Subscription        SubscriptionTier
	SubscriptionEndDate *time.Time

	// Employee only.
	HealthNeeds string

	// Employer only.
	CompanyName        string
	CompanyDescription string
	LicenseKey         string

	CreatedAt time.Time
}

// UserStore defines storage operations for accounts.
type UserStore interface {
	Create(user User) (User, error)
	GetByID(id uuid.UUID) (User, error)
	GetByEmail(email string) (User, error)
	// Replace swaps the whole record for the user with the same ID.
	Replace(user User) (User, error)
}

// SessionStore holds the current authenticated user, or nil when logged out.
// Clearing the session never touches the catalog, resume or application data.
type SessionStore interface {
	Set(user *User)
	Get() *User
}
