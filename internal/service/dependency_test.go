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

type DependencyServiceTestSuite struct {
	suite.Suite
	ctrl               *gomock.Controller
	mockDependencyRepo *mocks.MockDependencyRepositoryInterface
	mockProjectRepo    *mocks.MockProjectRepositoryInterface
	dependencyService  *service.DependencyService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *DependencyServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockDependencyRepo = mocks.NewMockDependencyRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.dependencyService = service.NewDependencyService(suite.mockDependencyRepo, suite.mockProjectRepo, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *DependencyServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *DependencyServiceTestSuite) project() *models.Project {
	return &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Name:        "Project",
		Methodology: models.MethodologyScrum,
	}
}

func edge(pred, succ uuid.UUID) models.Dependency {
	return models.Dependency{
		BaseModel:     models.BaseModel{ID: uuid.New()},
		PredecessorID: pred,
		SuccessorID:   succ,
		Type:          models.DependencyFinishToStart,
		Scope:         models.DependencyScopeProject,
	}
}

func (suite *DependencyServiceTestSuite) TestCreate_SelfEdge_Conflict() {
	id := uuid.New()

	dep, err := suite.dependencyService.Create(suite.claims, &service.CreateDependencyRequest{
		PredecessorID: id,
		SuccessorID:   id,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDependencyCycle)
	assert.Nil(suite.T(), dep)
}

func (suite *DependencyServiceTestSuite) TestCreate_ClosesCycle_Conflict() {
	a := suite.project()
	b := suite.project()
	c := suite.project()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.mockDependencyRepo.EXPECT().
		ListByScope(gomock.Any(), models.DependencyScopeProject, nil).
		Return([]models.Dependency{edge(a.ID, b.ID), edge(b.ID, c.ID)}, nil)

	// A -> B -> C already exists; C -> A closes the loop
	dep, err := suite.dependencyService.Create(suite.claims, &service.CreateDependencyRequest{
		PredecessorID: c.ID,
		SuccessorID:   a.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDependencyCycle)
	assert.Nil(suite.T(), dep)
}

func (suite *DependencyServiceTestSuite) TestCreate_AcyclicEdge_Success() {
	a := suite.project()
	b := suite.project()
	c := suite.project()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), c.ID).Return(c, nil)
	suite.mockDependencyRepo.EXPECT().
		ListByScope(gomock.Any(), models.DependencyScopeProject, nil).
		Return([]models.Dependency{edge(a.ID, b.ID), edge(b.ID, c.ID)}, nil)
	suite.mockDependencyRepo.EXPECT().Create(gomock.Any()).Return(nil)

	dep, err := suite.dependencyService.Create(suite.claims, &service.CreateDependencyRequest{
		PredecessorID: a.ID,
		SuccessorID:   c.ID,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.DependencyFinishToStart, dep.Type)
	assert.Equal(suite.T(), models.DependencyScopeProject, dep.Scope)
	assert.Equal(suite.T(), suite.companyID, dep.CompanyID)
}

func (suite *DependencyServiceTestSuite) TestCreate_CrossCompanyEndpoints_NotFound() {
	a := suite.project()
	b := suite.project()
	b.CompanyID = uuid.New()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), a.ID).Return(a, nil)
	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), b.ID).Return(b, nil)

	dep, err := suite.dependencyService.Create(suite.claims, &service.CreateDependencyRequest{
		PredecessorID: a.ID,
		SuccessorID:   b.ID,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrProjectNotFound)
	assert.Nil(suite.T(), dep)
}

func (suite *DependencyServiceTestSuite) TestCreate_ProgrammeScopeWithoutProgramme_ValidationError() {
	dep, err := suite.dependencyService.Create(suite.claims, &service.CreateDependencyRequest{
		PredecessorID: uuid.New(),
		SuccessorID:   uuid.New(),
		Scope:         models.DependencyScopeProgramme,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), dep)
}

func TestDependencyServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DependencyServiceTestSuite))
}
