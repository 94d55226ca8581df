package services

import (
	"errors"
	"strings"
	"time"

	"github.com/fatouibra/Projet-Fatou-sub001/entity"
	"github.com/fatouibra/Projet-Fatou-sub001/pkg/apperr"
	"github.com/fatouibra/Projet-Fatou-sub001/repository"
	"github.com/fatouibra/Projet-Fatou-sub001/utils"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type AuthService struct {
	userRepo  *repository.UserRepository
	jwtSecret string
	jwtTTL    time.Duration
}

func NewAuthService(repo *repository.UserRepository, secret string, ttl time.Duration) *AuthService {
	return &AuthService{userRepo: repo, jwtSecret: secret, jwtTTL: ttl}
}

func (s *AuthService) Register(email, password, firstName, lastName, phone string) (*entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, apperr.Validation("email and password are required")
	}
	if len(password) < 6 {
		return nil, apperr.Validation("password must be at least 6 characters")
	}

	count, err := s.userRepo.CountByEmail(email)
	if err != nil {
		return nil, apperr.Storage(err)
	}
	if count > 0 {
		return nil, apperr.Conflict("email already registered")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Storage(err)
	}

	user := &entity.User{
		Email:       email,
		Password:    string(hashed),
		FirstName:   strings.TrimSpace(firstName),
		LastName:    strings.TrimSpace(lastName),
		PhoneNumber: strings.TrimSpace(phone),
		Role:        entity.RoleCustomer,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, apperr.Storage(err)
	}
	return user, nil
}

// Login checks credentials and issues a JWT. Restaurator tokens carry the
// bound restaurant id.
func (s *AuthService) Login(email, password string) (string, *entity.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userRepo.FindByEmail(email)
	if err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, apperr.Validation("invalid credentials")
	}

	var restID uint
	if user.Role == entity.RoleRestaurator {
		restID, err = s.userRepo.FindRestaurantIDByOwner(user.ID)
		if err != nil {
			return "", nil, apperr.Storage(err)
		}
	}

	token, err := utils.GenerateToken(user.ID, user.Role, restID, s.jwtSecret, s.jwtTTL)
	if err != nil {
		return "", nil, apperr.Storage(err)
	}
	return token, user, nil
}

func (s *AuthService) GetProfile(userID uint) (*entity.User, error) {
	u, err := s.userRepo.FindByID(userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("user not found")
	}
	if err != nil {
		return nil, apperr.Storage(err)
	}
	return u, nil
}

func (s *AuthService) UpdateProfile(userID uint, firstName, lastName, phone string) (*entity.User, error) {
	updates := map[string]any{}
	if firstName != "" {
		updates["first_name"] = strings.TrimSpace(firstName)
	}
	if lastName != "" {
		updates["last_name"] = strings.TrimSpace(lastName)
	}
	if phone != "" {
		updates["phone_number"] = strings.TrimSpace(phone)
	}
	if len(updates) > 0 {
		if err := s.userRepo.Update(userID, updates); err != nil {
			return nil, apperr.Storage(err)
		}
	}
	return s.GetProfile(userID)
}
