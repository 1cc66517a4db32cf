package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/tweetapp/tweet-service/internal/auth"
	"github.com/tweetapp/tweet-service/internal/config"
	"github.com/tweetapp/tweet-service/internal/domain"
	"github.com/tweetapp/tweet-service/internal/events"
	"github.com/tweetapp/tweet-service/internal/repository"
	"github.com/tweetapp/tweet-service/internal/validation"
	apperrors "github.com/tweetapp/tweet-service/pkg/util/errorutil"
)

// ErrInvalidCredentials is returned when a login attempt fails. Unknown
// email and wrong password deliberately collapse into this one error so
// the caller cannot distinguish them.
var ErrInvalidCredentials = errors.New("incorrect username or password")

// ErrWrongPassword is returned by ChangePassword when the supplied old
// password does not match. Unlike login, the caller is already
// authenticated here, so naming the failure leaks nothing.
var ErrWrongPassword = errors.New("wrong password")

// ErrUserNotFound is returned for lookups and resets against an email
// that is not registered.
var ErrUserNotFound = errors.New("user not found")

// UserService owns the account lifecycle. It is the only component that
// mutates LoggedIn and PasswordHash.
type UserService struct {
	users      repository.UserRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	policy     validation.Policy
	bcryptCost int
}

// UserDependencies bundles collaborators for the user service.
type UserDependencies struct {
	UserRepo   repository.UserRepository
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewUserService builds the service.
func NewUserService(cfg config.Config, deps UserDependencies) *UserService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserService{
		users:      deps.UserRepo,
		dispatcher: deps.Dispatcher,
		logger:     logger,
		policy: validation.Policy{
			PasswordMinLength: cfg.Validation.PasswordMinLength,
			TweetMaxLength:    cfg.Validation.TweetMaxLength,
		},
		bcryptCost: cfg.Auth.BcryptCost,
	}
}

// RegisterInput carries the raw registration fields as captured by the
// front end.
type RegisterInput struct {
	FirstName       string
	LastName        string
	Gender          string
	DateOfBirth     string
	Email           string
	Password        string
	ConfirmPassword string
}

// Register validates the input and creates the account. Validation
// violations are returned as a single typed error carrying the full
// ordered list; no write happens unless validation passes. An unparseable
// optional date of birth is tolerated: it is logged and recorded as
// absent rather than rejecting the registration.
func (s *UserService) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	if violations := validation.ValidateRegistration(s.policy,
		input.FirstName, input.LastName, input.Gender, input.DateOfBirth,
		input.Email, input.Password, input.ConfirmPassword); len(violations) > 0 {
		return nil, apperrors.NewValidationError(violations)
	}

	dob, malformed := validation.ParseDateOfBirth(input.DateOfBirth)
	if malformed {
		s.logger.Warn("invalid date of birth format, recording as absent",
			zap.String("email", input.Email))
	}

	user := &domain.User{
		FirstName:   strings.TrimSpace(input.FirstName),
		LastName:    strings.TrimSpace(input.LastName),
		Gender:      domain.Gender(strings.ToLower(strings.TrimSpace(input.Gender))),
		DateOfBirth: dob,
		Email:       strings.TrimSpace(input.Email),
	}
	if err := s.RegisterUser(ctx, user, input.Password); err != nil {
		return nil, err
	}
	return user, nil
}

// RegisterUser hashes the password and persists the user with
// LoggedIn=false. The email-existence pre-check is a fast filter only;
// the repository's unique constraint is the authoritative signal, so a
// racing duplicate surfaces as the same conflict error.
func (s *UserService) RegisterUser(ctx context.Context, user *domain.User, password string) error {
	exists, err := s.EmailExists(ctx, user.Email)
	if err != nil {
		return apperrors.MapError(err)
	}
	if exists {
		return apperrors.NewConflict("email already registered", map[string]any{"email": user.Email})
	}

	hash, err := auth.HashPassword(password, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	user.PasswordHash = hash
	user.LoggedIn = false

	if err := s.users.Insert(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return apperrors.NewConflict("email already registered", map[string]any{"email": user.Email})
		}
		s.logger.Error("unable to save user", zap.Error(err))
		return apperrors.NewInternalError(err)
	}

	s.publish(ctx, events.EventUserRegistered, user.Email, events.UserRegisteredPayload{
		UserID:    user.ID,
		FirstName: user.FirstName,
	})
	return nil
}

// EmailExists reports whether a user with that email is persisted.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	_, err := s.users.FindByEmail(ctx, email)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	return false, err
}

// GetUserByEmail looks up a user, returning ErrUserNotFound when absent.
func (s *UserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, apperrors.MapError(err)
	}
	return user, nil
}

// GetAllUsers returns every registered user in insertion order.
func (s *UserService) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, apperrors.MapError(err)
	}
	return users, nil
}

// CheckUserCredentials returns the matching user only when the email
// exists and the password verifies. Every other outcome is
// ErrInvalidCredentials.
func (s *UserService) CheckUserCredentials(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, apperrors.MapError(err)
	}
	if err := auth.ComparePassword(user.PasswordHash, password); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Login authenticates and marks the user logged in, stamping LastLoginAt.
func (s *UserService) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.CheckUserCredentials(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.UpdateLoginStatus(ctx, user, true); err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventUserLoggedIn, user.Email, nil)
	return user, nil
}

// Logout clears the logged-in flag.
func (s *UserService) Logout(ctx context.Context, user *domain.User) error {
	if err := s.UpdateLoginStatus(ctx, user, false); err != nil {
		return err
	}
	s.publish(ctx, events.EventUserLoggedOut, user.Email, nil)
	return nil
}

// UpdateLoginStatus mutates and persists the logged-in flag. It is
// idempotent: setting the current value again performs no write. Turning
// the flag on also stamps LastLoginAt.
func (s *UserService) UpdateLoginStatus(ctx context.Context, user *domain.User, loggedIn bool) error {
	if user.LoggedIn == loggedIn {
		return nil
	}
	user.LoggedIn = loggedIn
	if loggedIn {
		now := time.Now()
		user.LastLoginAt = &now
	}
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("unable to update login status", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

// ResetPassword is the unauthenticated, email-gated reset flow. Unknown
// emails are reported as not found and nothing is mutated.
func (s *UserService) ResetPassword(ctx context.Context, email, newPassword, confirmPassword string) error {
	exists, err := s.EmailExists(ctx, email)
	if err != nil {
		return apperrors.MapError(err)
	}
	if !exists {
		return ErrUserNotFound
	}

	if violations := validation.ValidatePasswordChange(s.policy, newPassword, confirmPassword); len(violations) > 0 {
		return apperrors.NewValidationError(violations)
	}

	user, err := s.GetUserByEmail(ctx, email)
	if err != nil {
		return err
	}
	return s.UpdateUserPassword(ctx, user, newPassword)
}

// ChangePassword is the authenticated flow, gated on the old password.
func (s *UserService) ChangePassword(ctx context.Context, user *domain.User, oldPassword, newPassword, confirmPassword string) error {
	if err := auth.ComparePassword(user.PasswordHash, oldPassword); err != nil {
		return ErrWrongPassword
	}
	if violations := validation.ValidatePasswordChange(s.policy, newPassword, confirmPassword); len(violations) > 0 {
		return apperrors.NewValidationError(violations)
	}
	return s.UpdateUserPassword(ctx, user, newPassword)
}

// UpdateUserPassword hashes and persists the new password.
func (s *UserService) UpdateUserPassword(ctx context.Context, user *domain.User, newPassword string) error {
	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		return apperrors.MapError(err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(ctx, user); err != nil {
		s.logger.Error("unable to update password", zap.Error(err))
		return apperrors.NewInternalError(err)
	}
	return nil
}

func (s *UserService) publish(ctx context.Context, eventType events.EventType, actor string, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	_ = s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Actor:     actor,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
