package services

import (
	"errors"
	"strings"
	"time"

	"github.com/nanho-work/theUBoo/entity"
	"github.com/nanho-work/theUBoo/repository"
	"github.com/nanho-work/theUBoo/utils"
	"golang.org/x/crypto/bcrypt"
)

// AuthService handles back-office login and the session check the admin SPA
// polls while its guard is in the checking state.
type AuthService struct {
	adminRepo *repository.AdminRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.AdminRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{
		adminRepo: repo,
		jwtSecret: secret,
		jwtTTL:    ttl,
	}
}

// Login checks credentials and mints a JWT with the admin role.
func (s *AuthService) Login(email, password string) (string, *entity.Admin, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.adminRepo.FindByEmail(email)
	if err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(password)); err != nil {
		return "", nil, errors.New("invalid credentials")
	}

	token, err := utils.GenerateToken(admin.ID, "admin", s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, errors.New("cannot generate token")
	}

	return token, admin, nil
}

func (s *AuthService) GetProfile(adminID uint) (*entity.Admin, error) {
	return s.adminRepo.FindByID(adminID)
}
