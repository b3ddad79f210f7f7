package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/m04kA/SMC-FrontDeskService/internal/domain"
	"github.com/m04kA/SMC-FrontDeskService/internal/integrations/identity"
	"github.com/m04kA/SMC-FrontDeskService/internal/service/auth/models"
)

// Claims содержимое сессионного токена
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Service вход, регистрация и сессии сотрудников ресепшена
type Service struct {
	identity     IdentityProvider
	store        RevocationStore
	secret       []byte
	issuer       string
	ttl          time.Duration
	newTokenID   func() string
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	identity IdentityProvider,
	store RevocationStore,
	secret string,
	issuer string,
	ttl time.Duration,
	logger Logger,
) *Service {
	return &Service{
		identity:     identity,
		store:        store,
		secret:       []byte(secret),
		issuer:       issuer,
		ttl:          ttl,
		newTokenID:   uuid.NewString,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SignIn проверяет учётные данные у провайдера и выдаёт токен
func (s *Service) SignIn(ctx context.Context, req *models.CredentialsRequest) (*models.SessionResponse, error) {
	email, err := validateCredentials(req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SignIn: email=%s", email)

	user, err := s.identity.SignIn(ctx, email, req.Password)
	if err != nil {
		return nil, s.mapIdentityError("SignIn", err)
	}

	return s.issue(user)
}

// SignUp регистрирует пользователя у провайдера и выдаёт токен
func (s *Service) SignUp(ctx context.Context, req *models.CredentialsRequest) (*models.SessionResponse, error) {
	email, err := validateCredentials(req)
	if err != nil {
		return nil, err
	}

	s.logger.Info("SignUp: email=%s", email)

	user, err := s.identity.SignUp(ctx, email, req.Password)
	if err != nil {
		return nil, s.mapIdentityError("SignUp", err)
	}

	return s.issue(user)
}

// SignOut отзывает токен до истечения его срока действия
func (s *Service) SignOut(ctx context.Context, token string) error {
	claims, err := s.parse(token)
	if err != nil {
		return err
	}

	ttl := claims.ExpiresAt.Time.Sub(s.timeProvider.Now())
	if err := s.store.Revoke(ctx, claims.ID, ttl); err != nil {
		s.logger.Error("SignOut: failed to revoke token for user=%s: %v", claims.Subject, err)
		return fmt.Errorf("%w: SignOut - revoke: %v", ErrInternal, err)
	}

	s.logger.Info("SignOut: user=%s signed out", claims.Subject)
	return nil
}

// Authenticate проверяет подпись, издателя, срок действия и отзыв токена
func (s *Service) Authenticate(ctx context.Context, token string) (*domain.UserSession, error) {
	claims, err := s.parse(token)
	if err != nil {
		return nil, err
	}

	revoked, err := s.store.IsRevoked(ctx, claims.ID)
	if err != nil {
		s.logger.Error("Authenticate: failed to check revocation: %v", err)
		return nil, fmt.Errorf("%w: Authenticate - revocation check: %v", ErrInternal, err)
	}
	if revoked {
		return nil, fmt.Errorf("%w: token revoked", ErrInvalidToken)
	}

	return &domain.UserSession{
		UserID:    claims.Subject,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

func (s *Service) issue(user *identity.User) (*models.SessionResponse, error) {
	now := s.timeProvider.Now()
	expiresAt := now.Add(s.ttl)

	claims := Claims{
		Email: user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    s.issuer,
			ID:        s.newTokenID(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		s.logger.Error("issue: failed to sign token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: sign token: %v", ErrInternal, err)
	}

	s.logger.Info("issue: token issued for user=%s, expires=%s", user.ID, expiresAt.Format(time.RFC3339))

	return &models.SessionResponse{
		Token:     signed,
		ExpiresAt: claims.ExpiresAt.Time,
		User:      models.UserResponse{ID: user.ID, Email: user.Email},
	}, nil
}

func (s *Service) parse(token string) (*Claims, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return nil, fmt.Errorf("%w: empty token", ErrInvalidToken)
	}

	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (interface{}, error) { return s.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.timeProvider.Now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if claims.ID == "" || claims.Subject == "" {
		return nil, fmt.Errorf("%w: missing subject or token id", ErrInvalidToken)
	}

	return claims, nil
}

func (s *Service) mapIdentityError(op string, err error) error {
	switch {
	case errors.Is(err, identity.ErrInvalidCredentials):
		s.logger.Warn("%s: invalid credentials", op)
		return ErrInvalidCredentials
	case errors.Is(err, identity.ErrEmailExists):
		s.logger.Warn("%s: email already registered", op)
		return ErrEmailTaken
	case errors.Is(err, identity.ErrWeakPassword):
		s.logger.Warn("%s: weak password", op)
		return ErrWeakPassword
	case errors.Is(err, identity.ErrInvalidEmail):
		s.logger.Warn("%s: invalid email", op)
		return ErrInvalidEmail
	default:
		s.logger.Error("%s: identity provider error: %v", op, err)
		return fmt.Errorf("%w: %s - identity provider: %v", ErrInternal, op, err)
	}
}

func validateCredentials(req *models.CredentialsRequest) (string, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" || req.Password == "" {
		return "", fmt.Errorf("%w: email and password are required", ErrInvalidInput)
	}
	return email, nil
}
