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
)

type ScrumServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockScrumRepo   *mocks.MockScrumRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockHybridRepo  *mocks.MockHybridRepositoryInterface
	scrumService    *service.ScrumService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *ScrumServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScrumRepo = mocks.NewMockScrumRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockHybridRepo = mocks.NewMockHybridRepositoryInterface(suite.ctrl)
	suite.scrumService = service.NewScrumService(suite.mockScrumRepo, suite.mockProjectRepo, suite.mockHybridRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "member@test.com",
		Role:      models.RoleMember,
		CompanyID: &suite.companyID,
	}
}

func (suite *ScrumServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ScrumServiceTestSuite) scrumProject() *models.Project {
	return &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Name:        "Checkout",
		Methodology: models.MethodologyScrum,
		Status:      models.WorkStatusActive,
	}
}

func (suite *ScrumServiceTestSuite) TestCreateIteration_DefaultEndDate_Success() {
	project := suite.scrumProject()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockScrumRepo.EXPECT().CreateIteration(gomock.Any()).Return(nil)

	iteration, err := suite.scrumService.CreateIteration(suite.claims, &service.CreateIterationRequest{
		ProjectID: project.ID,
		Name:      "Sprint 1",
		StartDate: start,
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), iteration)
	// Missing end date defaults to fourteen days after the start
	assert.Equal(suite.T(), start.AddDate(0, 0, 14), iteration.EndDate)
	assert.Equal(suite.T(), models.IterationStatusPlanned, iteration.Status)
	assert.Equal(suite.T(), suite.companyID, iteration.CompanyID)
}

func (suite *ScrumServiceTestSuite) TestCreateIteration_EndBeforeStart_ValidationError() {
	project := suite.scrumProject()
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 0, -1)

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	iteration, err := suite.scrumService.CreateIteration(suite.claims, &service.CreateIterationRequest{
		ProjectID: project.ID,
		Name:      "Sprint 1",
		StartDate: start,
		EndDate:   &end,
	})

	assert.Error(suite.T(), err)
	assert.Nil(suite.T(), iteration)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
}

func (suite *ScrumServiceTestSuite) TestCreateIteration_WrongMethodology_Conflict() {
	project := suite.scrumProject()
	project.Methodology = models.MethodologyKanban

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	iteration, err := suite.scrumService.CreateIteration(suite.claims, &service.CreateIterationRequest{
		ProjectID: project.ID,
		Name:      "Sprint 1",
		StartDate: time.Now(),
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), iteration)
}

func (suite *ScrumServiceTestSuite) TestCreateIteration_HybridMixAdmitsScrum_Success() {
	project := suite.scrumProject()
	project.Methodology = models.MethodologyHybrid
	config := &models.HybridConfig{
		ProjectID:   project.ID,
		Primary:     models.MethodologyKanban,
		Secondaries: []byte(`["scrum"]`),
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockHybridRepo.EXPECT().GetConfigByProject(gomock.Any(), project.ID).Return(config, nil)
	suite.mockScrumRepo.EXPECT().CreateIteration(gomock.Any()).Return(nil)

	iteration, err := suite.scrumService.CreateIteration(suite.claims, &service.CreateIterationRequest{
		ProjectID: project.ID,
		Name:      "Sprint 1",
		StartDate: time.Now(),
	})

	assert.NoError(suite.T(), err)
	assert.NotNil(suite.T(), iteration)
}

func (suite *ScrumServiceTestSuite) TestUpdateIteration_ActivateWithOverlap_Conflict() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	iteration := &models.Iteration{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ProjectID: uuid.New(),
		Name:      "Sprint 2",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		Status:    models.IterationStatusPlanned,
	}
	active := models.IterationStatusActive

	suite.mockScrumRepo.EXPECT().GetIteration(gomock.Any(), iteration.ID).Return(iteration, nil)
	suite.mockScrumRepo.EXPECT().
		CountOverlappingActive(iteration.ProjectID, iteration.StartDate, iteration.EndDate, iteration.ID).
		Return(int64(1), nil)

	updated, err := suite.scrumService.UpdateIteration(suite.claims, iteration.ID, &service.UpdateIterationRequest{
		Status: &active,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrIterationOverlap)
	assert.Nil(suite.T(), updated)
}

func (suite *ScrumServiceTestSuite) TestUpdateIteration_StaleVersion_Conflict() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	iteration := &models.Iteration{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProjectID:   uuid.New(),
		Name:        "Sprint 2",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 14),
		Status:      models.IterationStatusPlanned,
		LockVersion: 3,
	}
	name := "Sprint 2 revised"

	suite.mockScrumRepo.EXPECT().GetIteration(gomock.Any(), iteration.ID).Return(iteration, nil)
	suite.mockScrumRepo.EXPECT().UpdateIteration(gomock.Any(), 3).Return(false, nil)

	updated, err := suite.scrumService.UpdateIteration(suite.claims, iteration.ID, &service.UpdateIterationRequest{
		Name: &name,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStaleVersion)
	assert.Nil(suite.T(), updated)
}

func (suite *ScrumServiceTestSuite) TestUpdateIteration_StaleRequestVersion_Conflict() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	iteration := &models.Iteration{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProjectID:   uuid.New(),
		Name:        "Sprint 2",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 14),
		Status:      models.IterationStatusPlanned,
		LockVersion: 4,
	}
	name := "Sprint 2 revised"
	staleVersion := 3

	suite.mockScrumRepo.EXPECT().GetIteration(gomock.Any(), iteration.ID).Return(iteration, nil)

	updated, err := suite.scrumService.UpdateIteration(suite.claims, iteration.ID, &service.UpdateIterationRequest{
		Name:        &name,
		LockVersion: &staleVersion,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrStaleVersion)
	assert.Nil(suite.T(), updated)
}

func (suite *ScrumServiceTestSuite) TestUpdateIteration_MatchingRequestVersion_Success() {
	start := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	iteration := &models.Iteration{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProjectID:   uuid.New(),
		Name:        "Sprint 2",
		StartDate:   start,
		EndDate:     start.AddDate(0, 0, 14),
		Status:      models.IterationStatusPlanned,
		LockVersion: 4,
	}
	name := "Sprint 2 revised"
	version := 4

	suite.mockScrumRepo.EXPECT().GetIteration(gomock.Any(), iteration.ID).Return(iteration, nil)
	suite.mockScrumRepo.EXPECT().UpdateIteration(iteration, 4).Return(true, nil)

	updated, err := suite.scrumService.UpdateIteration(suite.claims, iteration.ID, &service.UpdateIterationRequest{
		Name:        &name,
		LockVersion: &version,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Sprint 2 revised", updated.Name)
}

func (suite *ScrumServiceTestSuite) TestCreateBacklogItem_OrderTaken_Conflict() {
	project := suite.scrumProject()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockScrumRepo.EXPECT().OrderTaken(project.ID, 1, uuid.Nil).Return(true, nil)

	item, err := suite.scrumService.CreateBacklogItem(suite.claims, &service.CreateBacklogItemRequest{
		ProjectID: project.ID,
		Title:     "Add payment provider",
		Order:     1,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrBacklogOrderTaken)
	assert.Nil(suite.T(), item)
}

func (suite *ScrumServiceTestSuite) TestCreateBacklogItem_DefaultPriority_Success() {
	project := suite.scrumProject()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockScrumRepo.EXPECT().OrderTaken(project.ID, 4, uuid.Nil).Return(false, nil)
	suite.mockScrumRepo.EXPECT().CreateBacklogItem(gomock.Any()).Return(nil)

	item, err := suite.scrumService.CreateBacklogItem(suite.claims, &service.CreateBacklogItemRequest{
		ProjectID: project.ID,
		Title:     "Add payment provider",
		Order:     4,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.PriorityShould, item.Priority)
}

func (suite *ScrumServiceTestSuite) TestCreateDailyUpdate_Duplicate_Conflict() {
	iteration := &models.Iteration{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ProjectID: uuid.New(),
	}
	date := time.Date(2026, 3, 4, 0, 0, 0, 0, time.UTC)
	existing := &models.DailyUpdate{BaseModel: models.BaseModel{ID: uuid.New()}}

	suite.mockScrumRepo.EXPECT().GetIteration(gomock.Any(), iteration.ID).Return(iteration, nil)
	suite.mockScrumRepo.EXPECT().
		GetDailyUpdateByKey(iteration.ID, suite.claims.UserID, date).
		Return(existing, nil)

	update, err := suite.scrumService.CreateDailyUpdate(suite.claims, &service.CreateDailyUpdateRequest{
		IterationID: iteration.ID,
		Date:        date,
		Today:       "Finish the provider integration",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDailyUpdateExists)
	assert.Nil(suite.T(), update)
}

func (suite *ScrumServiceTestSuite) TestInitializeDoD_SeedsDefaults() {
	project := suite.scrumProject()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockScrumRepo.EXPECT().CountDoD(project.ID).Return(int64(0), nil)

	var seeded []models.DoDItem
	suite.mockScrumRepo.EXPECT().CreateDoDItems(gomock.Any()).DoAndReturn(func(items []models.DoDItem) error {
		seeded = items
		return nil
	})
	suite.mockScrumRepo.EXPECT().
		ListDoD(gomock.Any(), project.ID, models.DoDScope("")).
		DoAndReturn(func(_ auth.TenantScope, _ uuid.UUID, _ models.DoDScope) ([]models.DoDItem, error) {
			return seeded, nil
		})

	items, err := suite.scrumService.InitializeDoD(suite.claims, project.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 4)
	for i, item := range items {
		assert.Equal(suite.T(), models.DoDScopeProject, item.Scope)
		assert.Equal(suite.T(), i, item.Order)
		assert.True(suite.T(), item.IsActive)
	}
}

func (suite *ScrumServiceTestSuite) TestInitializeDoD_AlreadySeeded_Idempotent() {
	project := suite.scrumProject()
	existing := []models.DoDItem{{Criterion: "Code reviewed and approved"}}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockScrumRepo.EXPECT().CountDoD(project.ID).Return(int64(1), nil)
	// No seeding when criteria already exist
	suite.mockScrumRepo.EXPECT().ListDoD(gomock.Any(), project.ID, models.DoDScope("")).Return(existing, nil)

	items, err := suite.scrumService.InitializeDoD(suite.claims, project.ID)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), items, 1)
}

func TestScrumServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ScrumServiceTestSuite))
}
