package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/laibam4/reelico/internal/auth"
	"github.com/laibam4/reelico/internal/models"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byEmail: map[string]*models.User{}}
}

func (r *fakeUserRepo) Create(_ context.Context, u *models.User) error {
	if _, ok := r.byEmail[u.Email]; ok {
		return mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	}
	u.ID = primitive.NewObjectID()
	r.byEmail[u.Email] = u
	return nil
}

func (r *fakeUserRepo) FindByEmail(_ context.Context, email string) (*models.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	return u, nil
}

func newAuthService(t *testing.T) (*AuthService, *fakeUserRepo, *auth.TokenManager) {
	t.Helper()
	tokens, err := auth.NewTokenManager("test-secret", time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	repo := newFakeUserRepo()
	return NewAuthService(repo, tokens, zap.NewNop().Sugar()), repo, tokens
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo, _ := newAuthService(t)
	user, err := svc.Register(context.Background(), "laiba", "laiba@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	stored := repo.byEmail["laiba@example.com"]
	if stored == nil {
		t.Fatal("user not stored")
	}
	if stored.PasswordHash == "hunter22" {
		t.Fatal("password stored in clear")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("hunter22")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
	if user.ID.IsZero() {
		t.Error("registered user has no id")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _, _ := newAuthService(t)
	if _, err := svc.Register(context.Background(), "laiba", "laiba@example.com", "pw"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(context.Background(), "other", "laiba@example.com", "pw2"); !errors.Is(err, ErrEmailTaken) {
		t.Errorf("err = %v, want ErrEmailTaken", err)
	}
}

func TestLoginIssuesVerifiableToken(t *testing.T) {
	svc, _, tokens := newAuthService(t)
	user, err := svc.Register(context.Background(), "laiba", "laiba@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}

	token, loggedIn, err := svc.Login(context.Background(), "laiba@example.com", "hunter22")
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn.ID != user.ID {
		t.Error("login returned a different user")
	}
	userID, err := tokens.Verify(token)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if userID != user.ID.Hex() {
		t.Errorf("token user = %s, want %s", userID, user.ID.Hex())
	}
}

func TestLoginFailuresCollapse(t *testing.T) {
	svc, _, _ := newAuthService(t)
	if _, err := svc.Register(context.Background(), "laiba", "laiba@example.com", "hunter22"); err != nil {
		t.Fatal(err)
	}

	if _, _, err := svc.Login(context.Background(), "laiba@example.com", "wrong"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("wrong password: err = %v, want ErrInvalidCredentials", err)
	}
	if _, _, err := svc.Login(context.Background(), "nobody@example.com", "hunter22"); !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("unknown email: err = %v, want ErrInvalidCredentials", err)
	}
}
