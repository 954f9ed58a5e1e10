package service_test

import (
	"context"
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

type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockProjectRepo    *mocks.MockProjectRepositoryInterface
	mockPortfolioRepo  *mocks.MockPortfolioRepositoryInterface
	mockProgrammeRepo  *mocks.MockProgrammeRepositoryInterface
	mockDependencyRepo *mocks.MockDependencyRepositoryInterface
	mockResourceRepo   *mocks.MockResourceRepositoryInterface
	mockScrumRepo      *mocks.MockScrumRepositoryInterface
	mockKanbanRepo     *mocks.MockKanbanRepositoryInterface
	mockLSSRepo        *mocks.MockLSSRepositoryInterface
	analyticsService   *service.AnalyticsService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockPortfolioRepo = mocks.NewMockPortfolioRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.mockDependencyRepo = mocks.NewMockDependencyRepositoryInterface(suite.ctrl)
	suite.mockResourceRepo = mocks.NewMockResourceRepositoryInterface(suite.ctrl)
	suite.mockScrumRepo = mocks.NewMockScrumRepositoryInterface(suite.ctrl)
	suite.mockKanbanRepo = mocks.NewMockKanbanRepositoryInterface(suite.ctrl)
	suite.mockLSSRepo = mocks.NewMockLSSRepositoryInterface(suite.ctrl)
	suite.analyticsService = service.NewAnalyticsService(
		suite.mockProjectRepo,
		suite.mockPortfolioRepo,
		suite.mockProgrammeRepo,
		suite.mockDependencyRepo,
		suite.mockResourceRepo,
		suite.mockScrumRepo,
		suite.mockKanbanRepo,
		suite.mockLSSRepo,
		nil,
	)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "analyst@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnalyticsServiceTestSuite) TestGetSummary_AggregatesCounts() {
	suite.mockPortfolioRepo.EXPECT().CountByStatus(gomock.Any()).
		Return(map[models.WorkStatus]int64{models.WorkStatusActive: 2}, nil)
	suite.mockProgrammeRepo.EXPECT().CountByStatus(gomock.Any()).
		Return(map[models.WorkStatus]int64{models.WorkStatusActive: 3}, nil)
	suite.mockProjectRepo.EXPECT().CountByStatus(gomock.Any()).
		Return(map[models.WorkStatus]int64{models.WorkStatusActive: 5, models.WorkStatusDraft: 1}, nil)
	suite.mockProjectRepo.EXPECT().CountByMethodology(gomock.Any()).
		Return(map[models.Methodology]int64{models.MethodologyScrum: 4, models.MethodologyKanban: 2}, nil)

	summary, err := suite.analyticsService.GetSummary(context.Background(), suite.claims)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), summary.Portfolios[models.WorkStatusActive])
	assert.Equal(suite.T(), int64(1), summary.Projects[models.WorkStatusDraft])
	assert.Equal(suite.T(), int64(4), summary.Methodology[models.MethodologyScrum])
}

func (suite *AnalyticsServiceTestSuite) TestMethodologyMetrics_Waterfall_NotImplemented() {
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Methodology: models.MethodologyWaterfall,
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	metrics, err := suite.analyticsService.MethodologyMetrics(suite.claims, project.ID)

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.NotImplementedError{}, err)
	assert.Nil(suite.T(), metrics)
}

func (suite *AnalyticsServiceTestSuite) TestMethodologyMetrics_ScrumVelocity() {
	project := &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Methodology: models.MethodologyScrum,
	}
	iterations := []models.Iteration{
		{Status: models.IterationStatusCompleted},
		{Status: models.IterationStatusCompleted},
		{Status: models.IterationStatusActive},
	}
	backlog := []models.BacklogItem{
		{StoryPoints: 5, IsDone: true},
		{StoryPoints: 3, IsDone: true},
		{StoryPoints: 8, IsDone: false},
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockScrumRepo.EXPECT().ListIterations(gomock.Any(), project.ID).Return(iterations, nil)
	suite.mockScrumRepo.EXPECT().ListBacklog(gomock.Any(), project.ID).Return(backlog, nil)

	metrics, err := suite.analyticsService.MethodologyMetrics(suite.claims, project.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 2, metrics["completed_iterations"])
	assert.Equal(suite.T(), 8, metrics["story_points_done"])
	assert.Equal(suite.T(), 16, metrics["story_points_total"])
	assert.Equal(suite.T(), 4.0, metrics["velocity"])
}

func (suite *AnalyticsServiceTestSuite) TestGetProgrammeRollup_CountsProjectsAndDependencies() {
	programme := &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		Name:      "Transformation",
		Framework: models.FrameworkMSP,
	}
	projects := []models.Project{
		{Status: models.WorkStatusActive, Methodology: models.MethodologyScrum},
		{Status: models.WorkStatusActive, Methodology: models.MethodologyKanban},
		{Status: models.WorkStatusCompleted, Methodology: models.MethodologyScrum},
	}
	deps := []models.Dependency{{}, {}}

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockProjectRepo.EXPECT().ListByProgramme(gomock.Any(), programme.ID).Return(projects, nil)
	suite.mockDependencyRepo.EXPECT().ListByScope(gomock.Any(), models.DependencyScopeProgramme, &programme.ID).Return(deps, nil)
	suite.mockResourceRepo.EXPECT().ListByProgramme(gomock.Any(), programme.ID).Return([]models.Resource{}, nil)

	rollup, err := suite.analyticsService.GetProgrammeRollup(suite.claims, programme.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, rollup.ProjectCount)
	assert.Equal(suite.T(), 2, rollup.DependencyCount)
	assert.Equal(suite.T(), 2, rollup.StatusCounts[models.WorkStatusActive])
	assert.Equal(suite.T(), 2, rollup.Methodologies[models.MethodologyScrum])
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}
