package usecase

import (
	"context"
	"errors"
	"strings"

	"go-recruitment-tracker/internal/domain"
	"go-recruitment-tracker/pkg/apperror"
	"go-recruitment-tracker/pkg/auth"
	"go-recruitment-tracker/pkg/logger"
	"go-recruitment-tracker/pkg/security"
	"go-recruitment-tracker/pkg/validation"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const (
	invalidCredentialsMessage = "Invalid credentials"
	loginBlockedMessage       = "Too many failed login attempts. Please try again later."
)

// PasswordCost is the bcrypt cost used for new password hashes.
var PasswordCost = bcrypt.DefaultCost

type authUsecase struct {
	userRepo  domain.UserRepository
	tokens    *auth.TokenManager
	tracker   *security.LoginTracker
	secLog    *security.SecurityLogger
	validator *validation.Validator
}

func NewAuthUsecase(
	userRepo domain.UserRepository,
	tokens *auth.TokenManager,
	tracker *security.LoginTracker,
	secLog *security.SecurityLogger,
	v *validation.Validator,
) domain.AuthUsecase {
	return &authUsecase{
		userRepo:  userRepo,
		tokens:    tokens,
		tracker:   tracker,
		secLog:    secLog,
		validator: v,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// emailTaken reports whether a user other than excludeID owns email.
func (u *authUsecase) emailTaken(ctx context.Context, email, excludeID string) (bool, error) {
	existing, err := u.userRepo.GetByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return existing.ID != excludeID, nil
}

func (u *authUsecase) issue(user *domain.User) (*domain.AuthResult, error) {
	token, claims, err := u.tokens.Issue(user.ID, user.Email, user.Nombre)
	if err != nil {
		return nil, err
	}
	return &domain.AuthResult{
		Token:     token,
		TokenType: "Bearer",
		ExpiresAt: claims.ExpiresAt.Time,
		User:      user,
	}, nil
}

func (u *authUsecase) Register(ctx context.Context, input map[string]any, client domain.ClientInfo) (*domain.AuthResult, error) {
	var in domain.RegisterInput
	errs := u.validator.Bind(input, &in)
	in.Email = normalizeEmail(in.Email)

	if in.Email != "" && !errs.Has("email") {
		taken, err := u.emailTaken(ctx, in.Email, "")
		if err != nil {
			return nil, internalError(ctx, "Error registering the user", err)
		}
		if taken {
			errs.Add("email", validation.Taken("email"))
		}
	}
	if !errs.Empty() {
		return nil, validationError(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		return nil, internalError(ctx, "Error registering the user", err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Nombre:       in.Nombre,
		Email:        in.Email,
		PasswordHash: string(hash),
	}
	if err := u.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, validationError(validation.Errors{"email": {validation.Taken("email")}})
		}
		return nil, internalError(ctx, "Error registering the user", err)
	}

	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventUserRegistered,
		SubjectType:  "user_id",
		SubjectValue: user.ID,
		IP:           client.IP,
		UserAgent:    client.UserAgent,
		RequestID:    client.RequestID,
	})

	result, err := u.issue(user)
	if err != nil {
		return nil, internalError(ctx, "Error registering the user", err)
	}
	return result, nil
}

func (u *authUsecase) Login(ctx context.Context, input map[string]any, client domain.ClientInfo) (*domain.AuthResult, error) {
	var in domain.LoginInput
	if errs := u.validator.Bind(input, &in); !errs.Empty() {
		return nil, validationError(errs)
	}
	email := normalizeEmail(in.Email)

	blocked, err := u.tracker.IsBlocked(ctx, email, client.IP)
	if err != nil {
		logger.FromContext(ctx).Warn("Login block check failed", "error", err)
	}
	if blocked {
		u.secLog.LogLoginBlocked(ctx, email, client.IP, client.UserAgent, client.RequestID)
		return nil, apperror.TooManyRequests(loginBlockedMessage)
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, internalError(ctx, "Error logging in", err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)) != nil {
		nowBlocked, _, err := u.tracker.RecordFailedAttempt(ctx, email, client.IP, client.UserAgent, client.RequestID)
		if err != nil {
			logger.FromContext(ctx).Warn("Recording failed login failed", "error", err)
		}
		if nowBlocked {
			return nil, apperror.TooManyRequests(loginBlockedMessage)
		}
		return nil, apperror.Unauthorized(invalidCredentialsMessage)
	}

	if err := u.tracker.ClearAttempts(ctx, email, client.IP); err != nil {
		logger.FromContext(ctx).Warn("Clearing login attempts failed", "error", err)
	}
	u.secLog.LogLoginSuccess(ctx, user.ID, client.IP, client.UserAgent, client.RequestID)

	result, err := u.issue(user)
	if err != nil {
		return nil, internalError(ctx, "Error logging in", err)
	}
	return result, nil
}

func (u *authUsecase) Logout(ctx context.Context, token string, client domain.ClientInfo) error {
	claims, err := u.tokens.Parse(token)
	if err != nil {
		return apperror.Unauthorized("Invalid or expired token")
	}
	if err := u.tokens.Revoke(ctx, claims); err != nil {
		logger.FromContext(ctx).Warn("Token revocation unavailable", "error", err)
	}
	u.secLog.Log(ctx, security.SecurityEvent{
		Event:        security.EventLogout,
		SubjectType:  "user_id",
		SubjectValue: claims.Subject,
		IP:           client.IP,
		UserAgent:    client.UserAgent,
		RequestID:    client.RequestID,
	})
	return nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if errors.Is(err, domain.ErrNotFound) {
		return nil, apperror.NotFound("User not found")
	}
	if err != nil {
		return nil, internalError(ctx, "Error fetching the user", err)
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(ctx context.Context, id string, input map[string]any) (*domain.User, error) {
	user, err := u.GetCurrentUser(ctx, id)
	if err != nil {
		return nil, err
	}

	var in domain.UpdateProfileInput
	errs := u.validator.Bind(input, &in)
	if in.Email != nil && !errs.Has("email") {
		email := normalizeEmail(*in.Email)
		in.Email = &email
		taken, err := u.emailTaken(ctx, email, id)
		if err != nil {
			return nil, internalError(ctx, "Error updating the profile", err)
		}
		if taken {
			errs.Add("email", validation.Taken("email"))
		}
	}
	if !errs.Empty() {
		return nil, validationError(errs)
	}

	user.Nombre = *in.Nombre
	user.Email = *in.Email
	if err := u.userRepo.Update(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, validationError(validation.Errors{"email": {validation.Taken("email")}})
		}
		return nil, internalError(ctx, "Error updating the profile", err)
	}
	return user, nil
}

func (u *authUsecase) ChangePassword(ctx context.Context, id string, input map[string]any) error {
	user, err := u.GetCurrentUser(ctx, id)
	if err != nil {
		return err
	}

	var in domain.ChangePasswordInput
	errs := u.validator.Bind(input, &in)
	if in.CurrentPassword != "" && bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.CurrentPassword)) != nil {
		errs.Add("current_password", "The password is incorrect.")
	}
	if !errs.Empty() {
		return validationError(errs)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), PasswordCost)
	if err != nil {
		return internalError(ctx, "Error changing the password", err)
	}
	user.PasswordHash = string(hash)
	if err := u.userRepo.Update(ctx, user); err != nil {
		return internalError(ctx, "Error changing the password", err)
	}
	logger.FromContext(ctx).Info("Password changed", "user_id", user.ID)
	return nil
}
