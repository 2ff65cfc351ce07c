package services

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/laibam4/reelico/internal/auth"
	"github.com/laibam4/reelico/internal/models"
	"github.com/laibam4/reelico/internal/repository"
)

// AuthService handles registration and login, issuing the bearer tokens
// the upload path requires.
type AuthService struct {
	users  repository.UserRepository
	tokens *auth.TokenManager
	logger *zap.SugaredLogger
}

func NewAuthService(users repository.UserRepository, tokens *auth.TokenManager, logger *zap.SugaredLogger) *AuthService {
	return &AuthService{users: users, tokens: tokens, logger: logger}
}

func (s *AuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	user := &models.User{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.users.Create(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns a signed access token. Unknown
// email and wrong password collapse to the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}
	token, err := s.tokens.Generate(user.ID.Hex())
	if err != nil {
		s.logger.Errorw("token sign failed", "user", user.ID.Hex(), "err", err)
		return "", nil, err
	}
	return token, user, nil
}
