package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

const (
	basicDuration = 7 * 24 * time.Hour
	plusDuration  = 30 * 24 * time.Hour
)

// Subscription governs premium tiers and the capability checks gating the
// online-interview, inclusive-rewrite and resume-polish features.
type Subscription struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	// enforceExpiry is off by default: the product shipped without an
	// end-date check, so premium stays active until the policy flips.
	enforceExpiry bool
	logger        *logger.Logger
	now           func() time.Time
}

func NewSubscription(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	enforceExpiry bool,
	logger *logger.Logger,
) *Subscription {
	return &Subscription{
		userStore:     userStore,
		sessionStore:  sessionStore,
		enforceExpiry: enforceExpiry,
		logger:        logger,
		now:           time.Now,
	}
}

// Subscribe activates the tier and stamps the end date: now+7d for basic,
// now+30d for plus. Tier switches, including plus -> basic downgrades, are
// allowed and always restamp the end date.
func (s *Subscription) Subscribe(_ context.Context, userID uuid.UUID, tier model.SubscriptionTier) (model.User, error) {
	var duration time.Duration
	switch tier {
	case model.SubscriptionBasic:
		duration = basicDuration
	case model.SubscriptionPlus:
		duration = plusDuration
	default:
		return model.User{}, model.NewValidationError("tier")
	}

	user, err := s.userStore.GetByID(userID)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	endDate := s.now().Add(duration)
	user.Subscription = tier
	user.SubscriptionEndDate = &endDate

	user, err = s.userStore.Replace(user)
	if err != nil {
		return model.User{}, fmt.Errorf("failed to replace user: %w", err)
	}

	if current := s.sessionStore.Get(); current != nil && current.ID == user.ID {
		s.sessionStore.Set(&user)
	}

	s.logger.Info("Subscription service: tier activated",
		"user_id", user.ID,
		"tier", tier,
		"end_date", endDate)

	return user, nil
}

// HasPremium reports whether the user holds a premium capability.
// The end date is ignored unless expiry enforcement is switched on.
func (s *Subscription) HasPremium(user model.User) bool {
	if user.Subscription == model.SubscriptionNone {
		return false
	}

	if s.enforceExpiry && user.SubscriptionEndDate != nil && user.SubscriptionEndDate.Before(s.now()) {
		return false
	}

	return true
}
