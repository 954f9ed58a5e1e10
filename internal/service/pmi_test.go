package service_test

import (
	"encoding/json"
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

type PMIServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockArtifactRepo  *mocks.MockProgrammeArtifactRepositoryInterface
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	pmiService        *service.PMIService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *PMIServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockArtifactRepo = mocks.NewMockProgrammeArtifactRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.pmiService = service.NewPMIService(suite.mockArtifactRepo, suite.mockProgrammeRepo, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *PMIServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *PMIServiceTestSuite) programme(framework models.Framework) *models.Programme {
	return &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ManagerID: suite.claims.UserID,
		Name:      "Modernisation Programme",
		Framework: framework,
		Status:    models.WorkStatusActive,
	}
}

func (suite *PMIServiceTestSuite) component(programmeID uuid.UUID, dependsOn ...uuid.UUID) *models.ProgramComponent {
	raw, err := json.Marshal(dependsOn)
	suite.NoError(err)
	return &models.ProgramComponent{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProgrammeID: programmeID,
		Name:        "Billing Replatform",
		DependsOn:   raw,
	}
}

func (suite *PMIServiceTestSuite) TestCreateComponent_NoDependencies_Success() {
	programme := suite.programme(models.FrameworkPMI)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockArtifactRepo.EXPECT().CreateComponent(gomock.Any()).Return(nil)

	component, err := suite.pmiService.CreateComponent(suite.claims, &service.CreateComponentRequest{
		ProgrammeID: programme.ID,
		Name:        "Billing Replatform",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), programme.ID, component.ProgrammeID)
	assert.Equal(suite.T(), suite.companyID, component.CompanyID)
}

func (suite *PMIServiceTestSuite) TestCreateComponent_WrongFramework_Conflict() {
	programme := suite.programme(models.FrameworkMSP)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)

	component, err := suite.pmiService.CreateComponent(suite.claims, &service.CreateComponentRequest{
		ProgrammeID: programme.ID,
		Name:        "Billing Replatform",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), component)
}

func (suite *PMIServiceTestSuite) TestCreateComponent_UnknownDependency_ValidationError() {
	programme := suite.programme(models.FrameworkPMI)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockArtifactRepo.EXPECT().ListComponents(gomock.Any(), programme.ID).Return([]models.ProgramComponent{}, nil)

	component, err := suite.pmiService.CreateComponent(suite.claims, &service.CreateComponentRequest{
		ProgrammeID: programme.ID,
		Name:        "Billing Replatform",
		DependsOn:   []uuid.UUID{uuid.New()},
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), component)
}

func (suite *PMIServiceTestSuite) TestUpdateComponent_SelfDependency_Cycle() {
	programmeID := uuid.New()
	component := suite.component(programmeID)

	suite.mockArtifactRepo.EXPECT().GetComponent(gomock.Any(), component.ID).Return(component, nil)
	suite.mockArtifactRepo.EXPECT().ListComponents(gomock.Any(), programmeID).Return([]models.ProgramComponent{*component}, nil)

	deps := []uuid.UUID{component.ID}
	updated, err := suite.pmiService.UpdateComponent(suite.claims, component.ID, &service.UpdateComponentRequest{
		DependsOn: &deps,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDependencyCycle)
	assert.Nil(suite.T(), updated)
}

func (suite *PMIServiceTestSuite) TestUpdateComponent_ReverseEdge_Cycle() {
	programmeID := uuid.New()
	upstream := suite.component(programmeID)
	downstream := suite.component(programmeID, upstream.ID)

	suite.mockArtifactRepo.EXPECT().GetComponent(gomock.Any(), upstream.ID).Return(upstream, nil)
	suite.mockArtifactRepo.EXPECT().ListComponents(gomock.Any(), programmeID).
		Return([]models.ProgramComponent{*upstream, *downstream}, nil)

	// downstream already depends on upstream; the reverse edge closes a loop
	deps := []uuid.UUID{downstream.ID}
	updated, err := suite.pmiService.UpdateComponent(suite.claims, upstream.ID, &service.UpdateComponentRequest{
		DependsOn: &deps,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrDependencyCycle)
	assert.Nil(suite.T(), updated)
}

func (suite *PMIServiceTestSuite) TestUpdateComponent_AcyclicDependency_Success() {
	programmeID := uuid.New()
	upstream := suite.component(programmeID)
	downstream := suite.component(programmeID)

	suite.mockArtifactRepo.EXPECT().GetComponent(gomock.Any(), downstream.ID).Return(downstream, nil)
	suite.mockArtifactRepo.EXPECT().ListComponents(gomock.Any(), programmeID).
		Return([]models.ProgramComponent{*upstream, *downstream}, nil)
	suite.mockArtifactRepo.EXPECT().UpdateComponent(downstream).Return(nil)

	deps := []uuid.UUID{upstream.ID}
	updated, err := suite.pmiService.UpdateComponent(suite.claims, downstream.ID, &service.UpdateComponentRequest{
		DependsOn: &deps,
	})

	assert.NoError(suite.T(), err)
	var stored []uuid.UUID
	assert.NoError(suite.T(), json.Unmarshal(updated.DependsOn, &stored))
	assert.Equal(suite.T(), deps, stored)
}

func TestPMIServiceTestSuite(t *testing.T) {
	suite.Run(t, new(PMIServiceTestSuite))
}
