package service

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/constants"
	"github.com/flightbase-api/internal/logger"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/queue"
	"github.com/flightbase-api/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthService implements staff authentication and the failed-login
// lockout state machine.
type AuthService struct {
	cfg       *config.Config
	staffRepo repository.StaffRepository
	queue     *queue.Client
}

// NewAuthService creates an auth service. The queue client may be a
// disabled no-op client.
func NewAuthService(cfg *config.Config, staffRepo repository.StaffRepository, queueClient *queue.Client) *AuthService {
	return &AuthService{
		cfg:       cfg,
		staffRepo: staffRepo,
		queue:     queueClient,
	}
}

// StaffClaims is the JWT claim set issued to staff.
type StaffClaims struct {
	StaffID uint   `json:"staff_id"`
	Email   string `json:"email"`
	Role    string `json:"role"`
	jwt.RegisteredClaims
}

// GenerateStaffJWT issues an HS256 token for a staff account. The
// subject is the username and every token carries a fresh jti.
func (s *AuthService) GenerateStaffJWT(staff *models.Staff) (string, time.Time, error) {
	expireMinutes := s.cfg.JWT.ExpireMinutes
	if expireMinutes <= 0 {
		expireMinutes = 60
	}
	now := time.Now()
	expiresAt := now.Add(time.Duration(expireMinutes) * time.Minute)
	claims := StaffClaims{
		StaffID: staff.ID,
		Email:   staff.Email,
		Role:    staff.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staff.Username,
			ID:        uuid.NewString(),
			Issuer:    s.cfg.JWT.Issuer,
			Audience:  jwt.ClaimStrings{s.cfg.JWT.Audience},
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(s.cfg.JWT.SecretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// ParseStaffJWT validates a token and returns its claims.
func (s *AuthService) ParseStaffJWT(tokenString string) (*StaffClaims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(s.cfg.JWT.Issuer),
		jwt.WithAudience(s.cfg.JWT.Audience),
	)
	claims := &StaffClaims{}
	token, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.JWT.SecretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(*StaffClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Authenticate verifies a username/password pair and applies lockout
// bookkeeping. Checks run in a fixed order: lookup, lock, active flag,
// password. An unknown username and a wrong password are
// indistinguishable to the caller.
func (s *AuthService) Authenticate(username, password string) (*models.Staff, string, time.Time, error) {
	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, "", time.Time{}, ErrInvalidInput
	}

	staff, err := s.staffRepo.GetByUsername(username)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	if staff == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}

	now := time.Now()
	if staff.LockedUntil != nil {
		if staff.LockedUntil.After(now) {
			return nil, "", time.Time{}, &AccountLockedError{Until: *staff.LockedUntil}
		}
		// Expired lock: the account starts a fresh attempt window.
		staff.FailedLoginAttempts = 0
		staff.LockedUntil = nil
	}

	if !staff.IsActive {
		return nil, "", time.Time{}, ErrAccountInactive
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(password)); err != nil {
		return nil, "", time.Time{}, s.registerFailedAttempt(staff, now)
	}

	staff.FailedLoginAttempts = 0
	staff.LockedUntil = nil
	staff.LastLogin = &now
	if err := s.staffRepo.Update(staff); err != nil {
		return nil, "", time.Time{}, err
	}

	token, expiresAt, err := s.GenerateStaffJWT(staff)
	if err != nil {
		return nil, "", time.Time{}, err
	}
	return staff, token, expiresAt, nil
}

// registerFailedAttempt increments the counter and locks the account
// once the threshold is reached. The caller always gets the generic
// credentials error so attempt counts do not leak.
func (s *AuthService) registerFailedAttempt(staff *models.Staff, now time.Time) error {
	maxAttempts := s.cfg.Security.Lockout.MaxFailedAttempts
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	lockMinutes := s.cfg.Security.Lockout.LockMinutes
	if lockMinutes <= 0 {
		lockMinutes = 15
	}

	staff.FailedLoginAttempts++
	if staff.FailedLoginAttempts >= maxAttempts && staff.LockedUntil == nil {
		until := now.Add(time.Duration(lockMinutes) * time.Minute)
		staff.LockedUntil = &until
		logger.Warnw("staff_account_locked",
			"staff_id", staff.ID,
			"username", staff.Username,
			"failed_attempts", staff.FailedLoginAttempts,
			"locked_until", until,
		)
		if err := s.queue.EnqueueStaffAccountLocked(queue.StaffAccountLockedPayload{
			StaffID:     staff.ID,
			Username:    staff.Username,
			LockedUntil: until,
		}); err != nil {
			logger.Errorw("staff_account_locked_enqueue_failed", "error", err, "staff_id", staff.ID)
		}
	}

	if err := s.staffRepo.Update(staff); err != nil {
		return err
	}
	return ErrInvalidCredentials
}

// RegisterInput is the staff self-registration request.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	AirportID *uint
	AirlineID *uint
}

// Register creates a staff account. New accounts always start as
// inactive operators; an administrator activates and promotes them.
func (s *AuthService) Register(input RegisterInput) (*models.Staff, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" || len(username) > 50 {
		return nil, ErrInvalidInput
	}
	email, err := normalizeEmail(input.Email)
	if err != nil {
		return nil, ErrInvalidInput
	}
	if err := validatePassword(s.cfg.Security.PasswordPolicy, input.Password); err != nil {
		return nil, err
	}

	existing, err := s.staffRepo.GetByUsername(username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrUsernameExists
	}
	existing, err = s.staffRepo.GetByEmail(email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	staff := &models.Staff{
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         constants.RoleOperator,
		AirportID:    input.AirportID,
		AirlineID:    input.AirlineID,
		IsActive:     false,
	}
	if err := s.staffRepo.Create(staff); err != nil {
		// Concurrent registrations can slip past the pre-checks, so
		// unique violations are classified after the fact.
		if isDuplicateKeyError(err) {
			byUsername, lookupErr := s.staffRepo.GetByUsername(username)
			if lookupErr == nil && byUsername != nil {
				return nil, ErrUsernameExists
			}
			return nil, ErrEmailExists
		}
		return nil, err
	}
	return staff, nil
}

// ChangePassword replaces the password of the authenticated staff
// member. Lockout state is left untouched.
func (s *AuthService) ChangePassword(staffID uint, currentPassword, newPassword string) error {
	if staffID == 0 {
		return ErrNotFound
	}

	staff, err := s.staffRepo.GetByID(staffID)
	if err != nil {
		return err
	}
	if staff == nil {
		return ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(staff.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidPassword
	}

	if err := validatePassword(s.cfg.Security.PasswordPolicy, newPassword); err != nil {
		return err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	staff.PasswordHash = string(hashedPassword)
	return s.staffRepo.Update(staff)
}

func normalizeEmail(email string) (string, error) {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" || len(trimmed) > 100 {
		return "", ErrInvalidInput
	}
	addr, err := mail.ParseAddress(trimmed)
	if err != nil || addr.Address != trimmed {
		return "", ErrInvalidInput
	}
	return strings.ToLower(trimmed), nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
