package services

import (
	"context"
	"fmt"
	"jiwoo-back/controllers/idgen"
	"jiwoo-back/dto"
	"jiwoo-back/models"
	"jiwoo-back/types"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id int) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int) error
}

type SessionStore interface {
	Create(ctx context.Context, session *models.UserSession) error
	FindActive(ctx context.Context, sessionID string) (*models.UserSession, error)
	Rotate(ctx context.Context, sessionID string, refreshTokenID int64, expiresAt time.Time) error
	Touch(ctx context.Context, sessionID string) error
	Deactivate(ctx context.Context, sessionID string) error
}

type UserService struct {
	users    UserStore
	sessions SessionStore
	tokens   *TokenIssuer
	rotate   bool
}

func NewUserService(users UserStore, sessions SessionStore, tokens *TokenIssuer) *UserService {
	return &UserService{users: users, sessions: sessions, tokens: tokens}
}

// WithRefreshRotation makes Refresh hand out a new refresh token each time and reject
// every earlier one of the same session.
func (s *UserService) WithRefreshRotation(enabled bool) *UserService {
	s.rotate = enabled
	return s
}

func (s *UserService) Signup(ctx context.Context, req dto.SignupDTO) (*dto.UserDTO, error) {
	email := normalizeEmail(req.Email)
	exists, err := s.users.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailAlreadyExists
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &models.User{
		Name:     strings.TrimSpace(req.Name),
		Email:    email,
		Password: string(hashed),
		Provider: models.ProviderLocal,
		UserRole: types.RoleUser,
		Gender:   req.Gender,
		PhoneNo:  req.PhoneNo,
	}
	if !req.BirthDate.IsZero() {
		birth := req.BirthDate.Time
		user.BirthDate = &birth
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

// ExistsEmail reports whether the address is already registered.
func (s *UserService) ExistsEmail(ctx context.Context, email string) (bool, error) {
	return s.users.ExistsByEmail(ctx, normalizeEmail(email))
}

func (s *UserService) FindUserByEmail(ctx context.Context, email string) (*dto.UserDTO, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil || user == nil {
		return nil, err
	}
	return toUserDTO(user), nil
}

// Login checks the credentials and opens a new session.
func (s *UserService) Login(ctx context.Context, email, password string, client dto.ClientInfo) (*dto.TokenDTO, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if user == nil || user.Provider != models.ProviderLocal {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	now := s.tokens.now()
	session := &models.UserSession{
		SessionID:      uuid.NewString(),
		UserID:         user.ID,
		RefreshTokenID: idgen.GenerateID(),
		IPAddress:      client.IPAddress,
		UserAgent:      client.UserAgent,
		IsActive:       true,
		ExpiresAt:      now.Add(s.tokens.refreshTTL),
		LastActivityAt: now,
	}
	if err := s.sessions.Create(ctx, session); err != nil {
		return nil, err
	}

	return s.issuePair(user, session.SessionID, session.RefreshTokenID)
}

// Refresh exchanges a refresh token for a new access token. The refresh token stays valid
// until its session ends, unless rotation is enabled: then a new refresh token is issued
// and only the latest one of the session is accepted.
func (s *UserService) Refresh(ctx context.Context, refreshToken string) (*dto.TokenDTO, error) {
	claims, err := s.tokens.ParseRefreshToken(refreshToken)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	session, err := s.sessions.FindActive(ctx, claims.SessionID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		return nil, ErrInvalidRefreshToken
	}
	if s.rotate && session.RefreshTokenID != claims.TokenID {
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.users.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidRefreshToken
	}

	if !s.rotate {
		access, err := s.tokens.IssueAccessToken(user, session.SessionID)
		if err != nil {
			return nil, err
		}
		if err := s.sessions.Touch(ctx, session.SessionID); err != nil {
			return nil, err
		}
		return &dto.TokenDTO{AccessToken: access}, nil
	}

	nextID := idgen.GenerateID()
	if err := s.sessions.Rotate(ctx, session.SessionID, nextID, s.tokens.now().Add(s.tokens.refreshTTL)); err != nil {
		return nil, err
	}
	return s.issuePair(user, session.SessionID, nextID)
}

func (s *UserService) Logout(ctx context.Context, sessionID string) error {
	return s.sessions.Deactivate(ctx, sessionID)
}

// ParseAccessToken validates the signature and expiry of an access token.
func (s *UserService) ParseAccessToken(token string) (*AccessClaims, error) {
	return s.tokens.ParseAccessToken(token)
}

// ValidateSession fails when the session was logged out or has expired.
func (s *UserService) ValidateSession(ctx context.Context, sessionID string) error {
	session, err := s.sessions.FindActive(ctx, sessionID)
	if err != nil {
		return err
	}
	if session == nil {
		return ErrInvalidSession
	}
	return s.sessions.Touch(ctx, sessionID)
}

func (s *UserService) GetProfile(ctx context.Context, userID int) (*dto.UserDTO, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrNotFound
	}
	return toUserDTO(user), nil
}

func (s *UserService) EditPassword(ctx context.Context, userID int, oldPassword, newPassword string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(oldPassword)) != nil {
		return ErrInvalidCredentials
	}
	if oldPassword == newPassword {
		return ErrSamePassword
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = string(hashed)
	return s.users.Update(ctx, user)
}

func (s *UserService) EditInfo(ctx context.Context, userID int, gender, phoneNo string) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrNotFound
	}
	user.Gender = gender
	user.PhoneNo = phoneNo
	return s.users.Update(ctx, user)
}

func (s *UserService) Withdraw(ctx context.Context, userID int) error {
	return s.users.Delete(ctx, userID)
}

func (s *UserService) issuePair(user *models.User, sessionID string, refreshTokenID int64) (*dto.TokenDTO, error) {
	access, err := s.tokens.IssueAccessToken(user, sessionID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefreshToken(sessionID, refreshTokenID)
	if err != nil {
		return nil, err
	}
	return &dto.TokenDTO{AccessToken: access, RefreshToken: refresh}, nil
}

func toUserDTO(user *models.User) *dto.UserDTO {
	out := &dto.UserDTO{
		ID:       user.ID,
		Name:     user.Name,
		Email:    user.Email,
		Provider: user.Provider,
		UserRole: user.UserRole,
		Gender:   user.Gender,
		PhoneNo:  user.PhoneNo,
	}
	if user.BirthDate != nil {
		out.BirthDate = types.NewDate(*user.BirthDate)
	}
	return out
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
