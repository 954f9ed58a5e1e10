package service

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const (
	verificationTokenTTL  = 24 * time.Hour
	passwordResetTokenTTL = time.Hour
)

// Mailer delivers account emails. Implementations must not block the caller
// beyond a single SMTP round trip.
type Mailer interface {
	Send(to, subject, body string) error
}

// NopMailer drops outgoing mail. Used in tests.
type NopMailer struct{}

// Send implements Mailer
func (NopMailer) Send(to, subject, body string) error { return nil }

// AccountService handles registration, verification, password resets, login
// and profile management.
type AccountService struct {
	users     repository.UserRepositoryInterface
	tokens    repository.TokenRepositoryInterface
	companies repository.CompanyRepositoryInterface
	auth      *auth.Service
	mailer    Mailer
	auditor   *Auditor
	validator *validator.Validate
}

// NewAccountService creates a new account service
func NewAccountService(
	users repository.UserRepositoryInterface,
	tokens repository.TokenRepositoryInterface,
	companies repository.CompanyRepositoryInterface,
	authService *auth.Service,
	mailer Mailer,
	auditor *Auditor,
) *AccountService {
	if mailer == nil {
		mailer = NopMailer{}
	}
	return &AccountService{
		users:     users,
		tokens:    tokens,
		companies: companies,
		auth:      authService,
		mailer:    mailer,
		auditor:   auditor,
		validator: validator.New(),
	}
}

// RegisterRequest carries the registration payload.
type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email,max=255"`
	Password  string `json:"password" validate:"required,min=8,max=72"`
	FirstName string `json:"first_name" validate:"max=100"`
	LastName  string `json:"last_name" validate:"max=100"`
}

// Register creates an unverified account and issues a verification token.
func (s *AccountService) Register(req *RegisterRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if existing, err := s.users.GetByEmail(email); err == nil && existing != nil {
		return nil, apperrors.ErrUserExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		FirstName:    strings.TrimSpace(req.FirstName),
		LastName:     strings.TrimSpace(req.LastName),
		Role:         models.RoleMember,
	}
	if err := s.users.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	if err := s.issueToken(user, models.TokenPurposeVerification, verificationTokenTTL,
		"Verify your ProjeXtPal account"); err != nil {
		logrus.WithError(err).WithField("email", email).Error("failed to send verification token")
	}
	return user, nil
}

// VerifyEmail consumes a live verification token and marks the user verified.
func (s *AccountService) VerifyEmail(tokenValue string) (*models.User, error) {
	token, err := s.tokens.GetLive(tokenValue, models.TokenPurposeVerification)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrTokenExpired)
	}
	if !token.IsLive(time.Now()) {
		return nil, apperrors.ErrTokenExpired
	}

	user, err := s.users.GetByID(token.UserID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound)
	}
	user.IsVerified = true
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	if err := s.tokens.MarkUsed(token.ID); err != nil {
		return nil, fmt.Errorf("failed to consume token: %w", err)
	}
	return user, nil
}

// RequestPasswordReset issues a reset token for the given email. An unknown
// email is not an error, so addresses cannot be enumerated.
func (s *AccountService) RequestPasswordReset(email string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(email)
	if err != nil {
		logrus.WithField("email", email).Info("password reset requested for unknown email")
		return nil
	}
	if err := s.issueToken(user, models.TokenPurposePasswordReset, passwordResetTokenTTL,
		"Reset your ProjeXtPal password"); err != nil {
		return fmt.Errorf("failed to issue reset token: %w", err)
	}
	return nil
}

// ResetPassword consumes a live reset token and replaces the password.
func (s *AccountService) ResetPassword(tokenValue, newPassword string) error {
	if len(newPassword) < 8 {
		return apperrors.NewValidationError("password", "must be at least 8 characters")
	}
	token, err := s.tokens.GetLive(tokenValue, models.TokenPurposePasswordReset)
	if err != nil {
		return notFoundOr(err, apperrors.ErrTokenExpired)
	}
	if !token.IsLive(time.Now()) {
		return apperrors.ErrTokenExpired
	}

	user, err := s.users.GetByID(token.UserID)
	if err != nil {
		return notFoundOr(err, apperrors.ErrUserNotFound)
	}
	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}
	user.PasswordHash = hash
	if err := s.users.Update(user); err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return s.tokens.MarkUsed(token.ID)
}

// Login checks credentials and returns a signed JWT with the user.
func (s *AccountService) Login(email, password string) (string, *models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.users.GetByEmail(email)
	if err != nil {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !auth.VerifyPassword(user.PasswordHash, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}
	if !user.IsActive {
		return "", nil, apperrors.NewAuthenticationError("account is deactivated")
	}
	if !user.IsVerified {
		return "", nil, apperrors.NewAuthenticationError("email is not verified")
	}

	token, err := s.auth.IssueToken(user)
	if err != nil {
		return "", nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return token, user, nil
}

// GetMe returns the caller's account.
func (s *AccountService) GetMe(claims *auth.Claims) (*models.User, error) {
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound)
	}
	return user, nil
}

// UpdateProfileRequest carries the self-service profile fields. All three
// are applied atomically; omitted fields keep their value.
type UpdateProfileRequest struct {
	FirstName    *string `json:"first_name,omitempty" validate:"omitempty,max=100"`
	LastName     *string `json:"last_name,omitempty" validate:"omitempty,max=100"`
	ProfileImage *string `json:"profile_image,omitempty" validate:"omitempty,max=500"`
	Theme        *string `json:"theme,omitempty" validate:"omitempty,oneof=light dark"`
}

// UpdateProfile applies a partial profile update to the caller's account.
func (s *AccountService) UpdateProfile(claims *auth.Claims, req *UpdateProfileRequest) (*models.User, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	user, err := s.users.GetByID(claims.UserID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound)
	}

	before := *user
	if req.FirstName != nil {
		user.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		user.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.ProfileImage != nil {
		user.ProfileImage = *req.ProfileImage
	}
	if req.Theme != nil {
		user.Theme = *req.Theme
	}
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	s.auditor.Record(claims, user.CompanyID, "update", "user", user.ID, &before, user)
	return user, nil
}

// SetRole changes another user's role. Admins act within their own company;
// only super admins may grant super_admin or cross company lines.
func (s *AccountService) SetRole(claims *auth.Claims, userID uuid.UUID, role models.UserRole) (*models.User, error) {
	if !role.IsValid() {
		return nil, apperrors.NewValidationError("role", "unknown role")
	}
	if role == models.RoleSuperAdmin && claims.Role != models.RoleSuperAdmin {
		return nil, apperrors.ErrForbidden
	}

	user, err := s.users.GetByID(userID)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound)
	}
	scope := auth.ScopeFromClaims(claims)
	if !scope.SuperAdmin && !scope.CanAccessCompany(user.CompanyID) {
		return nil, apperrors.ErrUserNotFound
	}

	before := *user
	user.Role = role
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	s.auditor.Record(claims, user.CompanyID, "set_role", "user", user.ID, &before, user)
	return user, nil
}

// LinkUserCompany attaches a user to a company by name, creating the company
// when it does not exist yet. Super admin only.
func (s *AccountService) LinkUserCompany(claims *auth.Claims, email, companyName string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	companyName = strings.ToLower(strings.TrimSpace(companyName))
	if companyName == "" {
		return nil, apperrors.NewValidationError("company_name", "company name is required")
	}

	user, err := s.users.GetByEmail(email)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrUserNotFound)
	}

	company, err := s.companies.GetByName(companyName)
	if err != nil {
		if !isRecordNotFound(err) {
			return nil, fmt.Errorf("failed to look up company: %w", err)
		}
		company = &models.Company{Name: companyName}
		if err := s.companies.Create(company); err != nil {
			return nil, fmt.Errorf("failed to create company: %w", err)
		}
		s.auditor.Record(claims, &company.ID, "create", "company", company.ID, nil, company)
	}

	before := *user
	user.CompanyID = &company.ID
	if err := s.users.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	s.auditor.Record(claims, &company.ID, "link_company", "user", user.ID, &before, user)
	return user, nil
}

// CreateCompanyRequest carries the company payload.
type CreateCompanyRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Description string `json:"description"`
}

// CreateCompany registers a new tenant. Super admin only; names are
// lower-cased and unique.
func (s *AccountService) CreateCompany(claims *auth.Claims, req *CreateCompanyRequest) (*models.Company, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	name := strings.ToLower(strings.TrimSpace(req.Name))
	if existing, err := s.companies.GetByName(name); err == nil && existing != nil {
		return nil, apperrors.ErrCompanyExists
	}

	company := &models.Company{Name: name, Description: req.Description}
	if err := s.companies.Create(company); err != nil {
		return nil, fmt.Errorf("failed to create company: %w", err)
	}
	s.auditor.Record(claims, &company.ID, "create", "company", company.ID, nil, company)
	return company, nil
}

// GetCompany returns a company visible to the caller.
func (s *AccountService) GetCompany(claims *auth.Claims, id uuid.UUID) (*models.Company, error) {
	scope := auth.ScopeFromClaims(claims)
	if !scope.CanAccessCompany(&id) {
		return nil, apperrors.ErrCompanyNotFound
	}
	company, err := s.companies.GetByID(id)
	if err != nil {
		return nil, notFoundOr(err, apperrors.ErrCompanyNotFound)
	}
	return company, nil
}

// ListCompanies returns all tenants. Super admin only; enforced at the route.
func (s *AccountService) ListCompanies(page, pageSize int) ([]models.Company, int64, error) {
	limit, offset := paginate(page, pageSize)
	companies, total, err := s.companies.GetAll(limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list companies: %w", err)
	}
	return companies, total, nil
}

// ListUsers returns the members of the caller's company. Super admins may
// name any company.
func (s *AccountService) ListUsers(claims *auth.Claims, companyID *uuid.UUID, page, pageSize int) ([]models.User, int64, error) {
	scope := auth.ScopeFromClaims(claims)
	target := companyID
	if !scope.SuperAdmin {
		target = scope.CompanyID
	}
	if target == nil {
		return nil, 0, apperrors.ErrCompanyRequired
	}
	if !scope.CanAccessCompany(target) {
		return nil, 0, apperrors.ErrCompanyNotFound
	}

	limit, offset := paginate(page, pageSize)
	users, total, err := s.users.GetByCompanyID(*target, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}
	return users, total, nil
}

func (s *AccountService) issueToken(user *models.User, purpose models.TokenPurpose, ttl time.Duration, subject string) error {
	value, err := randomToken()
	if err != nil {
		return err
	}
	token := &models.AuthToken{
		UserID:    user.ID,
		Token:     value,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(ttl),
	}
	if err := s.tokens.Issue(token); err != nil {
		return fmt.Errorf("failed to store token: %w", err)
	}
	body := fmt.Sprintf("Hello %s,\n\nYour %s token is: %s\n\nIt expires in %s.",
		user.FirstName, purpose, value, ttl)
	if err := s.mailer.Send(user.Email, subject, body); err != nil {
		logrus.WithError(err).WithField("email", user.Email).Warn("failed to send account email")
	}
	return nil
}

// randomToken returns 32 random bytes hex-encoded.
func randomToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

func isRecordNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) || apperrors.IsNotFound(err)
}
