package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"shop_system/internal/domain"
	"shop_system/internal/store"
	"shop_system/internal/utils"

	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
)

// RegisterInput is a validated registration request
type RegisterInput struct {
	Username  string
	Password  string
	Email     string
	FirstName string
	LastName  string
	UserType  string
	AdminKey  string // Value of the X-Admin-Key header
}

type AuthService struct {
	store      *store.Store
	secret     string
	accessTTL  time.Duration
	refreshTTL time.Duration
	adminKey   string
}

func NewAuthService(st *store.Store, secret string, accessTTL, refreshTTL time.Duration, adminKey string) *AuthService {
	return &AuthService{store: st, secret: secret, accessTTL: accessTTL, refreshTTL: refreshTTL, adminKey: adminKey}
}

// Register creates a customer, or an admin when the caller presents the
// configured registration key
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (domain.User, error) {
	role, err := s.resolveRole(in.UserType, in.AdminKey)
	if err != nil {
		return domain.User{}, err
	}
	username := strings.ToLower(in.Username) // Usernames are unique case-insensitively

	exists, err := s.store.Users.ExistsByUsername(ctx, username)
	if err != nil {
		return domain.User{}, fmt.Errorf("check username: %w", err)
	}
	if exists {
		return domain.User{}, domain.WithReason(domain.ErrConflict, "Username already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return domain.User{}, fmt.Errorf("hash password: %w", err)
	}
	user := domain.User{
		Username:  username,
		Password:  string(hash),
		Email:     in.Email,
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Role:      role,
	}
	if err := s.store.Users.Create(ctx, &user); err != nil {
		// Lost a race with a concurrent registration of the same name
		if again, _ := s.store.Users.ExistsByUsername(ctx, username); again {
			return domain.User{}, domain.WithReason(domain.ErrConflict, "Username already exists")
		}
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   user.ID,
		"user_type": user.Role,
	}).Info("User registered")
	return user, nil
}

func (s *AuthService) resolveRole(userType, key string) (string, error) {
	switch userType {
	case "", domain.RoleCustomer:
		return domain.RoleCustomer, nil
	case domain.RoleAdmin:
		if s.adminKey == "" || subtle.ConstantTimeCompare([]byte(key), []byte(s.adminKey)) != 1 {
			return "", domain.WithReason(domain.ErrForbidden, "Admin registration requires a valid X-Admin-Key")
		}
		return domain.RoleAdmin, nil
	default:
		return "", domain.WithReason(domain.ErrBadRequest, "user_type must be customer or admin")
	}
}

// Login checks the credentials and issues an access/refresh token pair
func (s *AuthService) Login(ctx context.Context, username, password string) (utils.TokenPair, error) {
	user, err := s.store.Users.FindByUsername(ctx, strings.ToLower(username))
	if errors.Is(err, domain.ErrNotFound) {
		return utils.TokenPair{}, domain.WithReason(domain.ErrUnauthorized, "Invalid credentials")
	}
	if err != nil {
		return utils.TokenPair{}, fmt.Errorf("find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return utils.TokenPair{}, domain.WithReason(domain.ErrUnauthorized, "Invalid credentials")
	}
	return utils.GenerateTokenPair(user.ID, user.Role, s.secret, s.accessTTL, s.refreshTTL)
}

// Refresh exchanges a refresh token for a new access token
func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := utils.ParseTokenOfType(refreshToken, s.secret, utils.RefreshToken)
	if err != nil {
		return "", domain.WithReason(domain.ErrUnauthorized, "Invalid or expired refresh token")
	}
	user, err := s.store.Users.FindByID(ctx, claims.UserID)
	if errors.Is(err, domain.ErrNotFound) {
		return "", domain.WithReason(domain.ErrUnauthorized, "Invalid or expired refresh token")
	}
	if err != nil {
		return "", fmt.Errorf("find user: %w", err)
	}
	return utils.GenerateJWT(user.ID, user.Role, utils.AccessToken, s.secret, s.accessTTL)
}
