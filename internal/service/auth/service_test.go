package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/BarberBookingService/internal/domain"
	userstore "github.com/m04kA/BarberBookingService/internal/infra/storage/user"
	"github.com/m04kA/BarberBookingService/internal/service/auth/models"
)

type stubUserRepo struct {
	users     map[string]*domain.CustomerUser
	createErr error
	nextID    int64
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.CustomerUser), nextID: 1}
}

func (s *stubUserRepo) Create(ctx context.Context, u *domain.CustomerUser) (*domain.CustomerUser, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	if _, ok := s.users[u.Email]; ok {
		return nil, userstore.ErrEmailTaken
	}
	stored := *u
	stored.ID = s.nextID
	s.nextID++
	stored.CreatedAt = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	s.users[stored.Email] = &stored
	return &stored, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*domain.CustomerUser, error) {
	u, ok := s.users[email]
	if !ok {
		return nil, userstore.ErrUserNotFound
	}
	return u, nil
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int64) (*domain.CustomerUser, error) {
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, userstore.ErrUserNotFound
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func newTestService(repo UserRepository) *Service {
	adminHash, _ := bcrypt.GenerateFromPassword([]byte("admin-secret"), bcryptCost)
	svc := NewService(repo, "test-jwt-secret", time.Hour, "owner@example.com", string(adminHash), nopLogger{})
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC) }
	return svc
}

func signupRequest() *models.SignupRequest {
	return &models.SignupRequest{
		Name:     "Ivan Petrov",
		Email:    "Ivan@Example.com",
		Password: "secret123",
	}
}

func TestSignup_RegistersAndIssuesToken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	resp, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	// Email нормализуется к нижнему регистру
	assert.Equal(t, "ivan@example.com", resp.User.Email)
	assert.Equal(t, "Ivan Petrov", resp.User.Name)
	require.NotEmpty(t, resp.Token)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, resp.User.ID, claims.UserID)
	assert.Equal(t, RoleCustomer, claims.Role)
	assert.Equal(t, "ivan@example.com", claims.Email)

	// Пароль хранится только в виде bcrypt хэша
	stored := repo.users["ivan@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
}

func TestSignup_EmailTaken(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Signup(context.Background(), signupRequest())
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestSignup_Validation(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	tests := []struct {
		name   string
		mutate func(req *models.SignupRequest)
	}{
		{"short name", func(req *models.SignupRequest) { req.Name = "A" }},
		{"email without at", func(req *models.SignupRequest) { req.Email = "not-an-email" }},
		{"short password", func(req *models.SignupRequest) { req.Password = "123" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := signupRequest()
			tt.mutate(req)

			_, err := svc.Signup(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestLogin_Success(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	resp, err := svc.Login(context.Background(), &models.LoginRequest{Email: "ivan@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "ivan@example.com", resp.User.Email)
}

func TestLogin_SameErrorForUnknownEmailAndWrongPassword(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	_, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "nobody@example.com", Password: "secret123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), &models.LoginRequest{Email: "ivan@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAdminLogin(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	resp, err := svc.AdminLogin(context.Background(), &models.AdminLoginRequest{Email: "Owner@Example.com", Password: "admin-secret"})
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, resp.Role)

	claims, err := svc.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, RoleAdmin, claims.Role)

	_, err = svc.AdminLogin(context.Background(), &models.AdminLoginRequest{Email: "owner@example.com", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.AdminLogin(context.Background(), &models.AdminLoginRequest{Email: "ivan@example.com", Password: "admin-secret"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestParseToken_Expired(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	token, err := svc.issueToken(1, RoleCustomer, "ivan@example.com")
	require.NoError(t, err)

	// Сдвигаем часы сервиса за пределы срока жизни токена
	svc.now = func() time.Time { return time.Date(2026, 3, 1, 14, 0, 0, 0, time.UTC) }

	_, err = svc.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestParseToken_WrongSecret(t *testing.T) {
	svc := newTestService(newStubUserRepo())

	token, err := svc.issueToken(1, RoleCustomer, "ivan@example.com")
	require.NoError(t, err)

	other := newTestService(newStubUserRepo())
	other.jwtSecret = []byte("another-secret")

	_, err = other.ParseToken(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestGetProfile(t *testing.T) {
	repo := newStubUserRepo()
	svc := newTestService(repo)

	created, err := svc.Signup(context.Background(), signupRequest())
	require.NoError(t, err)

	profile, err := svc.GetProfile(context.Background(), created.User.ID)
	require.NoError(t, err)
	assert.Equal(t, "ivan@example.com", profile.Email)

	_, err = svc.GetProfile(context.Background(), 9999)
	assert.ErrorIs(t, err, ErrUserNotFound)
}
