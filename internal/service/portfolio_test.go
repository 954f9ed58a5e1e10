package service_test

import (
	"testing"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	apperrors "projextpal-backend/internal/errors"
	"projextpal-backend/internal/mocks"
	"projextpal-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type PortfolioServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockPortfolioRepo *mocks.MockPortfolioRepositoryInterface
	portfolioService  *service.PortfolioService

	companyID uuid.UUID
}

func (suite *PortfolioServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPortfolioRepo = mocks.NewMockPortfolioRepositoryInterface(suite.ctrl)
	suite.portfolioService = service.NewPortfolioService(suite.mockPortfolioRepo, nil, nil)
	suite.companyID = uuid.New()
}

func (suite *PortfolioServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PortfolioServiceTestSuite) memberClaims() *auth.Claims {
	return &auth.Claims{
		UserID:    uuid.New(),
		Email:     "member@test.com",
		Role:      models.RoleMember,
		CompanyID: &suite.companyID,
	}
}

func (suite *PortfolioServiceTestSuite) TestCreate_TenantedCaller_PinnedToOwnCompany() {
	claims := suite.memberClaims()
	other := uuid.New()

	suite.mockPortfolioRepo.EXPECT().Create(gomock.Any()).Return(nil)

	// The requested company is ignored for tenanted callers
	portfolio, err := suite.portfolioService.Create(claims, &service.CreatePortfolioRequest{
		Name:      "Growth",
		CompanyID: &other,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), suite.companyID, *portfolio.CompanyID)
	assert.Equal(suite.T(), claims.UserID, portfolio.OwnerID)
	assert.Equal(suite.T(), models.WorkStatusDraft, portfolio.Status)
}

func (suite *PortfolioServiceTestSuite) TestCreate_TenantedCallerWithoutCompany_ValidationError() {
	claims := suite.memberClaims()
	claims.CompanyID = nil

	portfolio, err := suite.portfolioService.Create(claims, &service.CreatePortfolioRequest{
		Name: "Growth",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyRequired)
	assert.Nil(suite.T(), portfolio)
}

func (suite *PortfolioServiceTestSuite) TestCreate_SuperAdmin_GlobalPortfolio() {
	claims := &auth.Claims{
		UserID: uuid.New(),
		Email:  "root@test.com",
		Role:   models.RoleSuperAdmin,
	}

	suite.mockPortfolioRepo.EXPECT().Create(gomock.Any()).Return(nil)

	portfolio, err := suite.portfolioService.Create(claims, &service.CreatePortfolioRequest{
		Name: "Cross-tenant",
	})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), portfolio.CompanyID)
}

func (suite *PortfolioServiceTestSuite) TestSetStatus_IllegalTransition_Conflict() {
	claims := suite.memberClaims()
	portfolio := &models.Portfolio{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: &suite.companyID,
		OwnerID:   claims.UserID,
		Name:      "Growth",
		Status:    models.WorkStatusDraft,
	}

	suite.mockPortfolioRepo.EXPECT().GetByID(gomock.Any(), portfolio.ID).Return(portfolio, nil)

	updated, err := suite.portfolioService.SetStatus(claims, portfolio.ID, models.WorkStatusCompleted)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIllegalTransition)
	assert.Nil(suite.T(), updated)
}

func (suite *PortfolioServiceTestSuite) TestSetStatus_DraftToActive_Success() {
	claims := suite.memberClaims()
	portfolio := &models.Portfolio{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: &suite.companyID,
		OwnerID:   claims.UserID,
		Name:      "Growth",
		Status:    models.WorkStatusDraft,
	}

	suite.mockPortfolioRepo.EXPECT().GetByID(gomock.Any(), portfolio.ID).Return(portfolio, nil)
	suite.mockPortfolioRepo.EXPECT().Update(portfolio).Return(nil)

	updated, err := suite.portfolioService.SetStatus(claims, portfolio.ID, models.WorkStatusActive)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkStatusActive, updated.Status)
}

func (suite *PortfolioServiceTestSuite) TestList_UnknownStatus_ValidationError() {
	claims := suite.memberClaims()

	portfolios, total, err := suite.portfolioService.List(claims, "bogus", 1, 10)

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), portfolios)
	assert.Zero(suite.T(), total)
}

func TestPortfolioServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PortfolioServiceTestSuite))
}
