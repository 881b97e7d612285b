package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/ecomstore/catalog/cmd/config"
	"github.com/ecomstore/catalog/constant"
	"github.com/ecomstore/catalog/model"
	redisrepo "github.com/ecomstore/catalog/repository/redis"
	"github.com/ecomstore/catalog/utils/errors"
	"github.com/ecomstore/catalog/utils/logger"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// CredentialVerifier checks a username/password pair. It is a capability so
// the gate is not tied to any particular credential store.
type CredentialVerifier interface {
	Verify(ctx context.Context, username, password string) (bool, error)
}

type AuthApp interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
	ValidateToken(ctx context.Context, tokenString string) (string, error)
}

type AuthAppImpl struct {
	config    *config.Config
	verifier  CredentialVerifier
	redisRepo redisrepo.Repository
}

func NewAuthApp(config *config.Config, verifier CredentialVerifier, redisRepo redisrepo.Repository) AuthApp {
	return &AuthAppImpl{
		config:    config,
		verifier:  verifier,
		redisRepo: redisRepo,
	}
}

func (s *AuthAppImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	ok, err := s.verifier.Verify(ctx, req.Username, req.Password)
	if err != nil {
		logger.Error("[Login] err verifier.Verify", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}
	if !ok {
		return nil, errors.SetCustomError(constant.ErrInvalidPassword)
	}

	token, jti, err := s.generateJWT(req.Username)
	if err != nil {
		logger.Error("[Login] err generateJWT", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	// Store session in Redis
	err = s.redisRepo.SetSession(ctx, jti, req.Username, s.config.Auth.SessionExpTime)
	if err != nil {
		logger.Error("[Login] err SetSession", zap.String("error", err.Error()))
		return nil, errors.SetCustomError(constant.ErrInternal)
	}

	return &model.LoginResponse{
		Username: req.Username,
		Token:    token,
	}, nil
}

func (s *AuthAppImpl) ValidateToken(ctx context.Context, tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.config.Auth.JWTSecret), nil
	})
	if err != nil {
		return "", fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || !token.Valid {
		return "", fmt.Errorf("invalid claims")
	}

	username := claims.Subject
	if username == "" {
		return "", fmt.Errorf("token missing subject")
	}

	jti := claims.ID
	if jti == "" {
		return "", fmt.Errorf("token missing jti")
	}

	// Check Redis session key
	sessionUser, err := s.redisRepo.GetSession(ctx, jti)
	if err != nil {
		return "", fmt.Errorf("invalid or expired session")
	}

	if sessionUser != username {
		return "", fmt.Errorf("token does not match user session")
	}

	return username, nil
}

// generateJWT creates a JWT token for the admin user
func (s *AuthAppImpl) generateJWT(username string) (string, string, error) {
	newUUID, _ := uuid.NewRandom()
	claims := jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(s.config.Auth.JWTExpiration)),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
		ID:        newUUID.String(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.config.Auth.JWTSecret))
	if err != nil {
		return "", "", fmt.Errorf("failed to sign token: %w", err)
	}

	return tokenString, claims.ID, nil
}

// StaticVerifier verifies against the configured admin username and bcrypt
// password hash.
type StaticVerifier struct {
	username     string
	passwordHash string
}

func NewStaticVerifier(username, passwordHash string) *StaticVerifier {
	return &StaticVerifier{
		username:     username,
		passwordHash: passwordHash,
	}
}

func (v *StaticVerifier) Verify(ctx context.Context, username, password string) (bool, error) {
	if username != v.username {
		return false, nil
	}
	err := bcrypt.CompareHashAndPassword([]byte(v.passwordHash), []byte(password))
	if err != nil {
		return false, nil
	}
	return true, nil
}
