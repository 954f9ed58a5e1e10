package service_test

import (
	"testing"
	"time"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/mocks"
	"projextpal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type AccountServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockUserRepo    *mocks.MockUserRepositoryInterface
	mockTokenRepo   *mocks.MockTokenRepositoryInterface
	mockCompanyRepo *mocks.MockCompanyRepositoryInterface
	accountService  *service.AccountService
}

func (suite *AccountServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockUserRepo = mocks.NewMockUserRepositoryInterface(suite.ctrl)
	suite.mockTokenRepo = mocks.NewMockTokenRepositoryInterface(suite.ctrl)
	suite.mockCompanyRepo = mocks.NewMockCompanyRepositoryInterface(suite.ctrl)
	authService := auth.NewService("test-secret", 24)
	suite.accountService = service.NewAccountService(
		suite.mockUserRepo, suite.mockTokenRepo, suite.mockCompanyRepo, authService, nil, nil)
}

func (suite *AccountServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AccountServiceTestSuite) user() *models.User {
	hash, err := auth.HashPassword("correct-horse")
	suite.NoError(err)
	return &models.User{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		Email:        "jane@test.com",
		PasswordHash: hash,
		FirstName:    "Jane",
		Role:         models.RoleMember,
		IsVerified:   true,
		IsActive:     true,
	}
}

func (suite *AccountServiceTestSuite) TestRegister_NormalizesEmailAndIssuesToken() {
	suite.mockUserRepo.EXPECT().GetByEmail("jane@test.com").Return(nil, gorm.ErrRecordNotFound)
	suite.mockUserRepo.EXPECT().Create(gomock.Any()).Return(nil)

	var issued *models.AuthToken
	suite.mockTokenRepo.EXPECT().Issue(gomock.Any()).DoAndReturn(func(token *models.AuthToken) error {
		issued = token
		return nil
	})

	user, err := suite.accountService.Register(&service.RegisterRequest{
		Email:    "  Jane@Test.com ",
		Password: "correct-horse",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "jane@test.com", user.Email)
	assert.False(suite.T(), user.IsVerified)
	assert.Equal(suite.T(), models.RoleMember, user.Role)
	assert.NotNil(suite.T(), issued)
	assert.Equal(suite.T(), models.TokenPurposeVerification, issued.Purpose)
	assert.Len(suite.T(), issued.Token, 64)
}

func (suite *AccountServiceTestSuite) TestRegister_DuplicateEmail_Conflict() {
	existing := suite.user()

	suite.mockUserRepo.EXPECT().GetByEmail("jane@test.com").Return(existing, nil)

	user, err := suite.accountService.Register(&service.RegisterRequest{
		Email:    "jane@test.com",
		Password: "correct-horse",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrUserExists)
	assert.Nil(suite.T(), user)
}

func (suite *AccountServiceTestSuite) TestVerifyEmail_ConsumesToken() {
	user := suite.user()
	user.IsVerified = false
	token := &models.AuthToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Token:     "live-token",
		Purpose:   models.TokenPurposeVerification,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.EXPECT().GetLive("live-token", models.TokenPurposeVerification).Return(token, nil)
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)
	suite.mockTokenRepo.EXPECT().MarkUsed(token.ID).Return(nil)

	verified, err := suite.accountService.VerifyEmail("live-token")

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), verified.IsVerified)
}

func (suite *AccountServiceTestSuite) TestVerifyEmail_ExpiredToken_AuthenticationError() {
	token := &models.AuthToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    uuid.New(),
		Token:     "stale-token",
		Purpose:   models.TokenPurposeVerification,
		ExpiresAt: time.Now().Add(-time.Minute),
	}

	suite.mockTokenRepo.EXPECT().GetLive("stale-token", models.TokenPurposeVerification).Return(token, nil)

	verified, err := suite.accountService.VerifyEmail("stale-token")

	assert.ErrorIs(suite.T(), err, apperrors.ErrTokenExpired)
	assert.Nil(suite.T(), verified)
}

func (suite *AccountServiceTestSuite) TestRequestPasswordReset_UnknownEmail_Silent() {
	suite.mockUserRepo.EXPECT().GetByEmail("nobody@test.com").Return(nil, gorm.ErrRecordNotFound)

	// Unknown addresses must not be distinguishable from known ones
	err := suite.accountService.RequestPasswordReset("nobody@test.com")

	assert.NoError(suite.T(), err)
}

func (suite *AccountServiceTestSuite) TestResetPassword_ReplacesHash() {
	user := suite.user()
	oldHash := user.PasswordHash
	token := &models.AuthToken{
		BaseModel: models.BaseModel{ID: uuid.New()},
		UserID:    user.ID,
		Token:     "reset-token",
		Purpose:   models.TokenPurposePasswordReset,
		ExpiresAt: time.Now().Add(time.Hour),
	}

	suite.mockTokenRepo.EXPECT().GetLive("reset-token", models.TokenPurposePasswordReset).Return(token, nil)
	suite.mockUserRepo.EXPECT().GetByID(user.ID).Return(user, nil)
	suite.mockUserRepo.EXPECT().Update(user).Return(nil)
	suite.mockTokenRepo.EXPECT().MarkUsed(token.ID).Return(nil)

	err := suite.accountService.ResetPassword("reset-token", "new-password-1")

	assert.NoError(suite.T(), err)
	assert.NotEqual(suite.T(), oldHash, user.PasswordHash)
	assert.True(suite.T(), auth.VerifyPassword(user.PasswordHash, "new-password-1"))
}

func (suite *AccountServiceTestSuite) TestResetPassword_ShortPassword_ValidationError() {
	err := suite.accountService.ResetPassword("reset-token", "short")

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
}

func (suite *AccountServiceTestSuite) TestLogin_Success() {
	user := suite.user()

	suite.mockUserRepo.EXPECT().GetByEmail("jane@test.com").Return(user, nil)

	token, loggedIn, err := suite.accountService.Login(" Jane@Test.com ", "correct-horse")

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), token)
	assert.Equal(suite.T(), user.ID, loggedIn.ID)
}

func (suite *AccountServiceTestSuite) TestLogin_WrongPassword_InvalidCredentials() {
	user := suite.user()

	suite.mockUserRepo.EXPECT().GetByEmail("jane@test.com").Return(user, nil)

	token, loggedIn, err := suite.accountService.Login("jane@test.com", "wrong")

	assert.ErrorIs(suite.T(), err, apperrors.ErrInvalidCredentials)
	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), loggedIn)
}

func (suite *AccountServiceTestSuite) TestLogin_UnverifiedUser_AuthenticationError() {
	user := suite.user()
	user.IsVerified = false

	suite.mockUserRepo.EXPECT().GetByEmail("jane@test.com").Return(user, nil)

	token, loggedIn, err := suite.accountService.Login("jane@test.com", "correct-horse")

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.AuthenticationError{}, err)
	assert.Empty(suite.T(), token)
	assert.Nil(suite.T(), loggedIn)
}

func (suite *AccountServiceTestSuite) TestSetRole_EscalationToSuperAdmin_Forbidden() {
	admin := &auth.Claims{
		UserID: uuid.New(),
		Email:  "admin@test.com",
		Role:   models.RoleAdmin,
	}

	updated, err := suite.accountService.SetRole(admin, uuid.New(), models.RoleSuperAdmin)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), updated)
}

func TestAccountServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}
