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
	"gorm.io/gorm"
)

type HybridServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockHybridRepo  *mocks.MockHybridRepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	hybridService   *service.HybridService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *HybridServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockHybridRepo = mocks.NewMockHybridRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.hybridService = service.NewHybridService(suite.mockHybridRepo, suite.mockProjectRepo, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "mixer@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *HybridServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *HybridServiceTestSuite) hybridProject() *models.Project {
	return &models.Project{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		Name:        "Platform Rebuild",
		Methodology: models.MethodologyHybrid,
		Status:      models.WorkStatusActive,
	}
}

func (suite *HybridServiceTestSuite) TestSetConfig_FirstTime_CreatesConfig() {
	project := suite.hybridProject()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockHybridRepo.EXPECT().GetConfigByProject(gomock.Any(), project.ID).Return(nil, gorm.ErrRecordNotFound)
	suite.mockHybridRepo.EXPECT().CreateConfig(gomock.Any()).Return(nil)

	config, err := suite.hybridService.SetConfig(suite.claims, &service.ConfigRequest{
		ProjectID:   project.ID,
		Primary:     models.MethodologyWaterfall,
		Secondaries: []models.Methodology{models.MethodologyScrum},
		PhaseMap:    map[string]models.Methodology{"delivery": models.MethodologyScrum},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MethodologyWaterfall, config.Primary)
	assert.Equal(suite.T(), project.ID, config.ProjectID)
}

func (suite *HybridServiceTestSuite) TestSetConfig_ExistingConfig_UpdatedInPlace() {
	project := suite.hybridProject()
	existing := &models.HybridConfig{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProjectID:   project.ID,
		Primary:     models.MethodologyWaterfall,
		Secondaries: []byte(`["scrum"]`),
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockHybridRepo.EXPECT().GetConfigByProject(gomock.Any(), project.ID).Return(existing, nil)
	suite.mockHybridRepo.EXPECT().UpdateConfig(existing).Return(nil)

	config, err := suite.hybridService.SetConfig(suite.claims, &service.ConfigRequest{
		ProjectID:   project.ID,
		Primary:     models.MethodologyKanban,
		Secondaries: []models.Methodology{models.MethodologyPrince2},
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), existing.ID, config.ID)
	assert.Equal(suite.T(), models.MethodologyKanban, config.Primary)
}

func (suite *HybridServiceTestSuite) TestSetConfig_NonHybridProject_Conflict() {
	project := suite.hybridProject()
	project.Methodology = models.MethodologyScrum

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)

	config, err := suite.hybridService.SetConfig(suite.claims, &service.ConfigRequest{
		ProjectID: project.ID,
		Primary:   models.MethodologyWaterfall,
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), config)
}

func (suite *HybridServiceTestSuite) TestSetConfig_HybridPrimary_ValidationError() {
	config, err := suite.hybridService.SetConfig(suite.claims, &service.ConfigRequest{
		ProjectID: uuid.New(),
		Primary:   models.MethodologyHybrid,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), config)
}

func (suite *HybridServiceTestSuite) TestSetConfig_SecondaryRepeatsPrimary_ValidationError() {
	config, err := suite.hybridService.SetConfig(suite.claims, &service.ConfigRequest{
		ProjectID:   uuid.New(),
		Primary:     models.MethodologyScrum,
		Secondaries: []models.Methodology{models.MethodologyScrum},
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), config)
}

func (suite *HybridServiceTestSuite) TestSetConfig_PhaseMapOutsideMix_ValidationError() {
	config, err := suite.hybridService.SetConfig(suite.claims, &service.ConfigRequest{
		ProjectID:   uuid.New(),
		Primary:     models.MethodologyWaterfall,
		Secondaries: []models.Methodology{models.MethodologyScrum},
		PhaseMap:    map[string]models.Methodology{"delivery": models.MethodologyKanban},
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), config)
}

func (suite *HybridServiceTestSuite) TestCreateArtifact_SourceOutsideMix_Conflict() {
	project := suite.hybridProject()
	config := &models.HybridConfig{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProjectID:   project.ID,
		Primary:     models.MethodologyWaterfall,
		Secondaries: []byte(`["scrum"]`),
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockHybridRepo.EXPECT().GetConfigByProject(gomock.Any(), project.ID).Return(config, nil)

	artifact, err := suite.hybridService.CreateArtifact(suite.claims, &service.CreateArtifactRequest{
		ProjectID:         project.ID,
		SourceMethodology: models.MethodologyKanban,
		TypeTag:           "board",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), artifact)
}

func (suite *HybridServiceTestSuite) TestCreateArtifact_NoConfig_Conflict() {
	project := suite.hybridProject()

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockHybridRepo.EXPECT().GetConfigByProject(gomock.Any(), project.ID).Return(nil, gorm.ErrRecordNotFound)

	artifact, err := suite.hybridService.CreateArtifact(suite.claims, &service.CreateArtifactRequest{
		ProjectID:         project.ID,
		SourceMethodology: models.MethodologyScrum,
		TypeTag:           "backlog_item",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), artifact)
}

func (suite *HybridServiceTestSuite) TestCreateArtifact_DeclaredSecondary_Success() {
	project := suite.hybridProject()
	config := &models.HybridConfig{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProjectID:   project.ID,
		Primary:     models.MethodologyWaterfall,
		Secondaries: []byte(`["scrum"]`),
	}

	suite.mockProjectRepo.EXPECT().GetByID(gomock.Any(), project.ID).Return(project, nil)
	suite.mockHybridRepo.EXPECT().GetConfigByProject(gomock.Any(), project.ID).Return(config, nil)
	suite.mockHybridRepo.EXPECT().CreateArtifact(gomock.Any()).Return(nil)

	artifact, err := suite.hybridService.CreateArtifact(suite.claims, &service.CreateArtifactRequest{
		ProjectID:         project.ID,
		Phase:             "delivery",
		SourceMethodology: models.MethodologyScrum,
		TypeTag:           "backlog_item",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.MethodologyScrum, artifact.SourceMethodology)
	assert.Equal(suite.T(), project.CompanyID, artifact.CompanyID)
}

func TestHybridServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HybridServiceTestSuite))
}
