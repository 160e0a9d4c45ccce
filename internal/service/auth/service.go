package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/BarberBookingService/internal/domain"
	userRepo "github.com/m04kA/BarberBookingService/internal/infra/storage/user"
	"github.com/m04kA/BarberBookingService/internal/service/auth/models"
)

// bcryptCost стоимость хеширования паролей
const bcryptCost = 10

// Service сервис аутентификации клиентов и администратора
type Service struct {
	userRepo  UserRepository
	jwtSecret []byte
	tokenTTL  time.Duration

	// Учетные данные единственного администратора задаются конфигурацией,
	// администратор не хранится в таблице клиентов
	adminEmail        string
	adminPasswordHash string

	now    func() time.Time
	logger Logger
}

// NewService создает новый экземпляр сервиса аутентификации
func NewService(
	userRepo UserRepository,
	jwtSecret string,
	tokenTTL time.Duration,
	adminEmail string,
	adminPasswordHash string,
	logger Logger,
) *Service {
	return &Service{
		userRepo:          userRepo,
		jwtSecret:         []byte(jwtSecret),
		tokenTTL:          tokenTTL,
		adminEmail:        adminEmail,
		adminPasswordHash: adminPasswordHash,
		now:               time.Now,
		logger:            logger,
	}
}

// Signup регистрирует нового клиента и сразу выдает токен
func (s *Service) Signup(ctx context.Context, req *models.SignupRequest) (*models.AuthResponse, error) {
	if err := validateSignup(req); err != nil {
		s.logger.Warn("Signup: invalid input for email=%s: %v", req.Email, err)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		s.logger.Error("Signup: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Signup - hash password: %v", ErrInternal, err)
	}

	user := &domain.CustomerUser{
		Name:         strings.TrimSpace(req.Name),
		Email:        normalizeEmail(req.Email),
		Phone:        req.Phone,
		PasswordHash: string(hash),
	}

	created, err := s.userRepo.Create(ctx, user)
	if err != nil {
		if errors.Is(err, userRepo.ErrEmailTaken) {
			s.logger.Warn("Signup: email=%s already in use", user.Email)
			return nil, ErrEmailTaken
		}
		s.logger.Error("Signup: repository error for email=%s: %v", user.Email, err)
		return nil, fmt.Errorf("%w: Signup - repository error: %v", ErrInternal, err)
	}

	token, err := s.issueToken(created.ID, RoleCustomer, created.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Signup: registered user id=%d email=%s", created.ID, created.Email)
	return &models.AuthResponse{Token: token, User: *models.FromDomainUser(created)}, nil
}

// Login аутентифицирует клиента по email и паролю
// При неверном email и при неверном пароле возвращается одна и та же ошибка,
// чтобы не раскрывать наличие аккаунта
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	email := normalizeEmail(req.Email)

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("Login: unknown email=%s", email)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("Login: repository error for email=%s: %v", email, err)
		return nil, fmt.Errorf("%w: Login - repository error: %v", ErrInternal, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("Login: wrong password for email=%s", email)
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(user.ID, RoleCustomer, user.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Login: user id=%d logged in", user.ID)
	return &models.AuthResponse{Token: token, User: *models.FromDomainUser(user)}, nil
}

// AdminLogin аутентифицирует администратора по учетным данным из конфигурации
func (s *Service) AdminLogin(ctx context.Context, req *models.AdminLoginRequest) (*models.AdminAuthResponse, error) {
	email := normalizeEmail(req.Email)

	if email != normalizeEmail(s.adminEmail) {
		s.logger.Warn("AdminLogin: unknown admin email=%s", email)
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(req.Password)); err != nil {
		s.logger.Warn("AdminLogin: wrong password for admin")
		return nil, ErrInvalidCredentials
	}

	token, err := s.issueToken(0, RoleAdmin, email)
	if err != nil {
		return nil, err
	}

	s.logger.Info("AdminLogin: admin logged in")
	return &models.AdminAuthResponse{Token: token, Role: RoleAdmin}, nil
}

// GetProfile получает профиль клиента по ID из токена
func (s *Service) GetProfile(ctx context.Context, userID int64) (*models.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userRepo.ErrUserNotFound) {
			s.logger.Warn("GetProfile: user id=%d not found", userID)
			return nil, ErrUserNotFound
		}
		s.logger.Error("GetProfile: repository error for user id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetProfile - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainUser(user), nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
