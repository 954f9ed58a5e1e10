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

type ProjectServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockProjectRepo   *mocks.MockProjectRepositoryInterface
	mockPortfolioRepo *mocks.MockPortfolioRepositoryInterface
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	projectService    *service.ProjectService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *ProjectServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockPortfolioRepo = mocks.NewMockPortfolioRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.projectService = service.NewProjectService(
		suite.mockProjectRepo, suite.mockPortfolioRepo, suite.mockProgrammeRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "pm@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *ProjectServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProjectServiceTestSuite) TestCreate_StartsInDraft() {
	suite.mockProjectRepo.EXPECT().Create(gomock.Any()).Return(nil)

	project, err := suite.projectService.Create(suite.claims, &service.CreateProjectRequest{
		Name:        "Platform Rebuild",
		Methodology: models.MethodologyScrum,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkStatusDraft, project.Status)
	assert.Equal(suite.T(), suite.companyID, project.CompanyID)
	assert.Equal(suite.T(), models.MethodologyScrum, project.Methodology)
}

func (suite *ProjectServiceTestSuite) TestCreate_UnknownMethodology_ValidationError() {
	project, err := suite.projectService.Create(suite.claims, &service.CreateProjectRequest{
		Name:        "Platform Rebuild",
		Methodology: models.Methodology("six-sigma"),
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), project)
}

func (suite *ProjectServiceTestSuite) TestCreate_EndBeforeStart_ValidationError() {
	start := time.Now()
	end := start.AddDate(0, 0, -7)

	project, err := suite.projectService.Create(suite.claims, &service.CreateProjectRequest{
		Name:        "Platform Rebuild",
		Methodology: models.MethodologyKanban,
		StartDate:   &start,
		EndDate:     &end,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), project)
}

func (suite *ProjectServiceTestSuite) TestCreate_MissingPortfolio_NotFound() {
	portfolioID := uuid.New()

	suite.mockPortfolioRepo.EXPECT().GetByID(gomock.Any(), portfolioID).
		Return(nil, gorm.ErrRecordNotFound)

	project, err := suite.projectService.Create(suite.claims, &service.CreateProjectRequest{
		Name:        "Platform Rebuild",
		Methodology: models.MethodologyScrum,
		PortfolioID: &portfolioID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrPortfolioNotFound)
	assert.Nil(suite.T(), project)
}

func (suite *ProjectServiceTestSuite) TestCreate_NoCompany_ValidationError() {
	claims := &auth.Claims{UserID: uuid.New(), Email: "floating@test.com", Role: models.RoleMember}

	project, err := suite.projectService.Create(claims, &service.CreateProjectRequest{
		Name:        "Platform Rebuild",
		Methodology: models.MethodologyScrum,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyRequired)
	assert.Nil(suite.T(), project)
}

func (suite *ProjectServiceTestSuite) TestSetStatus_DraftToActive_Success() {
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Name:        "Platform Rebuild",
		Methodology: models.MethodologyScrum,
		Status:      models.WorkStatusDraft,
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockProjectRepo.EXPECT().Update(project).Return(nil)

	updated, err := suite.projectService.SetStatus(suite.claims, project.ID, models.WorkStatusActive)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkStatusActive, updated.Status)
}

func (suite *ProjectServiceTestSuite) TestSetStatus_CompletedToActive_Conflict() {
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Methodology: models.MethodologyScrum,
		Status:      models.WorkStatusCompleted,
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	updated, err := suite.projectService.SetStatus(suite.claims, project.ID, models.WorkStatusActive)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIllegalTransition)
	assert.Nil(suite.T(), updated)
}

func (suite *ProjectServiceTestSuite) TestGet_IncludeDeletedAsManager_Forbidden() {
	project, err := suite.projectService.Get(suite.claims, uuid.New(), true)

	assert.ErrorIs(suite.T(), err, apperrors.ErrForbidden)
	assert.Nil(suite.T(), project)
}

func (suite *ProjectServiceTestSuite) TestAttach_NilUUIDDetachesContainer() {
	portfolioID := uuid.New()
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Methodology: models.MethodologyScrum,
		Status:      models.WorkStatusActive,
		PortfolioID: &portfolioID,
	}
	detach := uuid.Nil

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockProjectRepo.EXPECT().Update(project).Return(nil)

	updated, err := suite.projectService.Attach(suite.claims, project.ID, &service.AttachRequest{
		PortfolioID: &detach,
	})

	assert.NoError(suite.T(), err)
	assert.Nil(suite.T(), updated.PortfolioID)
}

func (suite *ProjectServiceTestSuite) TestAttach_ToProgrammeInTenant_Success() {
	programme := &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		Framework: models.FrameworkMSP,
	}
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Methodology: models.MethodologyScrum,
		Status:      models.WorkStatusActive,
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockProjectRepo.EXPECT().Update(project).Return(nil)

	updated, err := suite.projectService.Attach(suite.claims, project.ID, &service.AttachRequest{
		ProgrammeID: &programme.ID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), programme.ID, *updated.ProgrammeID)
}

func (suite *ProjectServiceTestSuite) TestList_UnknownMethodologyFilter_ValidationError() {
	projects, total, err := suite.projectService.List(suite.claims, "", models.Methodology("xp"), 1, 20)

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), projects)
	assert.Zero(suite.T(), total)
}

func TestProjectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectServiceTestSuite))
}
