package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/JosephOluOlofinte/sleat-backend/config"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/domain"
	"github.com/JosephOluOlofinte/sleat-backend/internal/auth/dto"
	autherror "github.com/JosephOluOlofinte/sleat-backend/internal/errors"
	"github.com/JosephOluOlofinte/sleat-backend/internal/mailer"
	"github.com/JosephOluOlofinte/sleat-backend/pkg/datetime"
	"github.com/google/uuid"
)

// AuthService composes the credential store, session store, verification
// code ledger, token codec and mailer into the user-facing auth flows.
// Nothing outside this service touches those collaborators directly.
type AuthService struct {
	users     domain.UserRepository
	sessions  domain.SessionRepository
	codes     domain.VerificationCodeRepository
	tokens    TokenGenerator
	mail      mailer.Mailer
	appOrigin string
}

func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionRepository,
	codes domain.VerificationCodeRepository,
	tokens TokenGenerator,
	mail mailer.Mailer,
	cfg *config.Config,
) *AuthService {
	return &AuthService{
		users:     users,
		sessions:  sessions,
		codes:     codes,
		tokens:    tokens,
		mail:      mail,
		appOrigin: cfg.AppOrigin,
	}
}

func (s *AuthService) Register(ctx context.Context, input dto.RegisterInput) (*dto.AuthResponse, error) {
	exists, err := s.users.ExistsByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, autherror.ErrEmailAlreadyInUse
	}

	hashed, err := domain.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        input.Email,
		Name:         input.Name,
		PasswordHash: hashed,
		Verified:     false,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	code := &domain.VerificationCode{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      domain.EmailVerification,
		ExpiresAt: now.Add(datetime.OneYear),
		CreatedAt: now,
	}

	if err := s.codes.Create(ctx, code); err != nil {
		return nil, err
	}

	// Verification mail is best effort; registration must not fail
	// because outbound mail did.
	url := fmt.Sprintf("%s/email/verify/%s", s.appOrigin, code.ID)
	subject, html := mailer.VerifyEmailTemplate(url)
	if _, err := s.mail.Send(ctx, mailer.Message{To: user.Email, Subject: subject, HTML: html}); err != nil {
		log.Printf("warn: failed to send verification email to %s: %v", user.Email, err)
	}

	session, err := s.createSession(ctx, user.ID, input.UserAgent, now)
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.signTokenPair(user.ID, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         user.OmitPassword(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) Login(ctx context.Context, input dto.LoginInput) (*dto.AuthResponse, error) {
	user, err := s.users.GetByEmail(ctx, input.Email)
	if err != nil {
		return nil, err
	}

	// Unknown email and wrong password must be indistinguishable.
	if user == nil || !user.ComparePassword(input.Password) {
		return nil, autherror.ErrInvalidCredentials
	}

	// Login always creates a fresh session, never reuses one.
	session, err := s.createSession(ctx, user.ID, input.UserAgent, time.Now())
	if err != nil {
		return nil, err
	}

	accessToken, refreshToken, err := s.signTokenPair(user.ID, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		User:         user.OmitPassword(),
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (*dto.RefreshResponse, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return nil, autherror.ErrInvalidRefreshToken
	}

	now := time.Now()

	// Both gates apply: the token signature was valid, but the session
	// record must still exist and be unexpired on its own clock.
	session, err := s.sessions.GetByID(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil || !session.Valid(now) {
		return nil, autherror.ErrSessionExpired
	}

	// Rotation is conditional: only a session within a day of expiry is
	// extended and handed a new refresh token.
	sessionNeedsRefresh := session.ExpiresAt.Sub(now) <= datetime.OneDay

	var newRefreshToken string
	if sessionNeedsRefresh {
		newExpiry := now.Add(datetime.ThirtyDays)
		if err := s.sessions.UpdateExpiry(ctx, session.ID, newExpiry); err != nil {
			return nil, err
		}

		newRefreshToken, err = s.tokens.SignRefreshToken(session.ID)
		if err != nil {
			return nil, err
		}
	}

	accessToken, err := s.tokens.SignAccessToken(session.UserID, session.ID)
	if err != nil {
		return nil, err
	}

	return &dto.RefreshResponse{
		AccessToken:     accessToken,
		NewRefreshToken: newRefreshToken,
	}, nil
}

func (s *AuthService) VerifyEmail(ctx context.Context, code string) (*domain.PublicUser, error) {
	validCode, err := s.codes.FindValid(ctx, code, domain.EmailVerification, time.Now())
	if err != nil {
		return nil, err
	}
	if validCode == nil {
		return nil, autherror.ErrInvalidVerificationCode
	}

	user, err := s.users.SetVerified(ctx, validCode.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.New(autherror.KindInternal, "failed to verify email address")
	}

	deleted, err := s.codes.Delete(ctx, validCode.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		// Lost a consume race; the code was already used.
		return nil, autherror.ErrInvalidVerificationCode
	}

	publicUser := user.OmitPassword()

	return &publicUser, nil
}

func (s *AuthService) SendPasswordResetEmail(ctx context.Context, email string) (*dto.ResetEmailResponse, error) {
	// Unlike login, this endpoint does reveal account existence.
	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrAccountNotFound
	}

	now := time.Now()

	count, err := s.codes.CountRecent(ctx, user.ID, domain.PasswordReset, now.Add(-datetime.FiveMinutes))
	if err != nil {
		return nil, err
	}
	if count > 1 {
		return nil, autherror.ErrTooManyResetRequests
	}

	code := &domain.VerificationCode{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		Type:      domain.PasswordReset,
		ExpiresAt: now.Add(datetime.OneHour),
		CreatedAt: now,
	}

	if err := s.codes.Create(ctx, code); err != nil {
		return nil, err
	}

	url := fmt.Sprintf("%s/password/reset?code=%s&exp=%d", s.appOrigin, code.ID, code.ExpiresAt.UnixMilli())
	subject, html := mailer.PasswordResetTemplate(url)

	// This mail is the whole point of the operation, so a delivery
	// failure is fatal here.
	result, err := s.mail.Send(ctx, mailer.Message{To: user.Email, Subject: subject, HTML: html})
	if err != nil {
		return nil, autherror.New(autherror.KindInternal, fmt.Sprintf("failed to send password reset email: %v", err))
	}
	if result == nil || result.ID == "" {
		return nil, autherror.ErrEmailSendFailed
	}

	return &dto.ResetEmailResponse{
		URL:     url,
		EmailID: result.ID,
	}, nil
}

func (s *AuthService) ResetPassword(ctx context.Context, input dto.ResetPasswordInput) (*domain.PublicUser, error) {
	validCode, err := s.codes.FindValid(ctx, input.VerificationCode, domain.PasswordReset, time.Now())
	if err != nil {
		return nil, err
	}
	if validCode == nil {
		return nil, autherror.ErrInvalidVerificationCode
	}

	hashed, err := domain.HashPassword(input.Password)
	if err != nil {
		return nil, err
	}

	user, err := s.users.UpdatePassword(ctx, validCode.UserID, hashed)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.New(autherror.KindInternal, "failed to reset password")
	}

	deleted, err := s.codes.Delete(ctx, validCode.ID)
	if err != nil {
		return nil, err
	}
	if !deleted {
		return nil, autherror.ErrInvalidVerificationCode
	}

	// Global logout: every outstanding token pair dies with its session.
	if err := s.sessions.DeleteAllByUserID(ctx, user.ID); err != nil {
		return nil, err
	}

	publicUser := user.OmitPassword()

	return &publicUser, nil
}

func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Delete(ctx, sessionID)
}

func (s *AuthService) CurrentUser(ctx context.Context, userID string) (*domain.PublicUser, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, autherror.ErrAccountNotFound
	}

	publicUser := user.OmitPassword()

	return &publicUser, nil
}

func (s *AuthService) ListSessions(ctx context.Context, userID, currentSessionID string) ([]dto.SessionOutput, error) {
	sessions, err := s.sessions.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	out := make([]dto.SessionOutput, 0, len(sessions))
	for _, sess := range sessions {
		out = append(out, dto.SessionOutput{
			ID:        sess.ID,
			UserAgent: sess.UserAgent,
			CreatedAt: sess.CreatedAt,
			ExpiresAt: sess.ExpiresAt,
			Current:   sess.ID == currentSessionID,
		})
	}

	return out, nil
}

func (s *AuthService) DeleteSession(ctx context.Context, userID, sessionID string) error {
	session, err := s.sessions.GetByID(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil || session.UserID != userID {
		return autherror.ErrSessionNotFound
	}

	return s.sessions.Delete(ctx, session.ID)
}

func (s *AuthService) createSession(ctx context.Context, userID, userAgent string, now time.Time) (*domain.Session, error) {
	session := &domain.Session{
		ID:        uuid.NewString(),
		UserID:    userID,
		UserAgent: userAgent,
		ExpiresAt: now.Add(datetime.ThirtyDays),
		CreatedAt: now,
	}

	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return session, nil
}

func (s *AuthService) signTokenPair(userID, sessionID string) (string, string, error) {
	refreshToken, err := s.tokens.SignRefreshToken(sessionID)
	if err != nil {
		return "", "", err
	}

	accessToken, err := s.tokens.SignAccessToken(userID, sessionID)
	if err != nil {
		return "", "", err
	}

	return accessToken, refreshToken, nil
}
