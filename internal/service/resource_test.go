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

type ResourceServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockResourceRepo  *mocks.MockResourceRepositoryInterface
	mockProjectRepo   *mocks.MockProjectRepositoryInterface
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	resourceService   *service.ResourceService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *ResourceServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockResourceRepo = mocks.NewMockResourceRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.resourceService = service.NewResourceService(
		suite.mockResourceRepo, suite.mockProjectRepo, suite.mockProgrammeRepo, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "planner@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *ResourceServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ResourceServiceTestSuite) project() *models.Project {
	return &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Methodology: models.MethodologyScrum,
		Status:      models.WorkStatusActive,
	}
}

func (suite *ResourceServiceTestSuite) TestCreate_WithinBudget_NoWarning() {
	project := suite.project()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockResourceRepo.EXPECT().SumAllocationByName(gomock.Any(), "Dana Architect", uuid.Nil).Return(40, nil)
	suite.mockResourceRepo.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.resourceService.Create(suite.claims, &service.CreateResourceRequest{
		ProjectID:            &project.ID,
		Name:                 "Dana Architect",
		AllocationPercentage: 60,
	})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.Warning)
	assert.Equal(suite.T(), models.ResourceTypePerson, result.Resource.Type)
	assert.Equal(suite.T(), suite.companyID, result.Resource.CompanyID)
}

func (suite *ResourceServiceTestSuite) TestCreate_OverAllocated_AcceptedWithWarning() {
	project := suite.project()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockResourceRepo.EXPECT().SumAllocationByName(gomock.Any(), "Dana Architect", uuid.Nil).Return(80, nil)
	suite.mockResourceRepo.EXPECT().Create(gomock.Any()).Return(nil)

	result, err := suite.resourceService.Create(suite.claims, &service.CreateResourceRequest{
		ProjectID:            &project.ID,
		Name:                 "Dana Architect",
		AllocationPercentage: 50,
	})

	assert.NoError(suite.T(), err)
	assert.NotEmpty(suite.T(), result.Warning)
	assert.Contains(suite.T(), result.Warning, "130%")
}

func (suite *ResourceServiceTestSuite) TestCreate_HardConstraintOverAllocated_Conflict() {
	project := suite.project()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockResourceRepo.EXPECT().SumAllocationByName(gomock.Any(), "Build Server", uuid.Nil).Return(70, nil)

	result, err := suite.resourceService.Create(suite.claims, &service.CreateResourceRequest{
		ProjectID:            &project.ID,
		Name:                 "Build Server",
		Type:                 models.ResourceTypeEquipment,
		AllocationPercentage: 50,
		HardConstraint:       true,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrAllocationExceeded)
	assert.Nil(suite.T(), result)
}

func (suite *ResourceServiceTestSuite) TestCreate_BothParents_ValidationError() {
	projectID := uuid.New()
	programmeID := uuid.New()

	result, err := suite.resourceService.Create(suite.claims, &service.CreateResourceRequest{
		ProjectID:            &projectID,
		ProgrammeID:          &programmeID,
		Name:                 "Dana Architect",
		AllocationPercentage: 10,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), result)
}

func (suite *ResourceServiceTestSuite) TestCreate_NoParent_ValidationError() {
	result, err := suite.resourceService.Create(suite.claims, &service.CreateResourceRequest{
		Name:                 "Dana Architect",
		AllocationPercentage: 10,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), result)
}

func (suite *ResourceServiceTestSuite) TestUpdate_RaisingAllocation_ExcludesSelfFromSum() {
	resource := &models.Resource{
		BaseModel:            models.BaseModel{ID: uuid.New()},
		CompanyID:            suite.companyID,
		Name:                 "Dana Architect",
		Type:                 models.ResourceTypePerson,
		AllocationPercentage: 40,
	}
	newAllocation := 90

	suite.mockResourceRepo.EXPECT().GetByID(gomock.Any(), resource.ID).Return(resource, nil)
	suite.mockResourceRepo.EXPECT().SumAllocationByName(gomock.Any(), "Dana Architect", resource.ID).Return(10, nil)
	suite.mockResourceRepo.EXPECT().Update(resource).Return(nil)

	result, err := suite.resourceService.Update(suite.claims, resource.ID, &service.UpdateResourceRequest{
		AllocationPercentage: &newAllocation,
	})

	assert.NoError(suite.T(), err)
	assert.Empty(suite.T(), result.Warning)
	assert.Equal(suite.T(), 90, result.Resource.AllocationPercentage)
}

func TestResourceServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ResourceServiceTestSuite))
}
