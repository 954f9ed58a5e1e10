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

type P2ServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockArtifactRepo  *mocks.MockProgrammeArtifactRepositoryInterface
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	p2Service         *service.P2Service

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *P2ServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockArtifactRepo = mocks.NewMockProgrammeArtifactRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.p2Service = service.NewP2Service(suite.mockArtifactRepo, suite.mockProgrammeRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *P2ServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *P2ServiceTestSuite) blueprint(version int, status models.BlueprintStatus) *models.Blueprint {
	return &models.Blueprint{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProgrammeID: uuid.New(),
		Version:     version,
		Status:      status,
	}
}

func (suite *P2ServiceTestSuite) TestCreateBlueprint_ServerAssignsVersion() {
	programme := &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ManagerID: suite.claims.UserID,
		Name:      "Operating Model",
		Framework: models.FrameworkP2Programme,
	}

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockArtifactRepo.EXPECT().MaxBlueprintVersion(programme.ID).Return(4, nil)
	suite.mockArtifactRepo.EXPECT().CreateBlueprint(gomock.Any()).Return(nil)

	blueprint, err := suite.p2Service.CreateBlueprint(suite.claims, &service.CreateBlueprintRequest{
		ProgrammeID: programme.ID,
		Content:     []byte(`{"vision":"single checkout"}`),
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 5, blueprint.Version)
	assert.Equal(suite.T(), models.BlueprintStatusDraft, blueprint.Status)
}

func (suite *P2ServiceTestSuite) TestActivateBlueprint_Draft_Success() {
	blueprint := suite.blueprint(2, models.BlueprintStatusDraft)

	suite.mockArtifactRepo.EXPECT().GetBlueprint(gomock.Any(), blueprint.ID).Return(blueprint, nil)
	suite.mockArtifactRepo.EXPECT().ActivateBlueprint(blueprint).Return(nil)

	activated, err := suite.p2Service.ActivateBlueprint(suite.claims, blueprint.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), blueprint.ID, activated.ID)
}

func (suite *P2ServiceTestSuite) TestActivateBlueprint_AlreadyActive_Idempotent() {
	blueprint := suite.blueprint(2, models.BlueprintStatusActive)

	suite.mockArtifactRepo.EXPECT().GetBlueprint(gomock.Any(), blueprint.ID).Return(blueprint, nil)

	activated, err := suite.p2Service.ActivateBlueprint(suite.claims, blueprint.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), blueprint.ID, activated.ID)
}

func (suite *P2ServiceTestSuite) TestActivateBlueprint_Archived_Conflict() {
	blueprint := suite.blueprint(1, models.BlueprintStatusArchived)

	suite.mockArtifactRepo.EXPECT().GetBlueprint(gomock.Any(), blueprint.ID).Return(blueprint, nil)

	activated, err := suite.p2Service.ActivateBlueprint(suite.claims, blueprint.ID)

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ConflictError{}, err)
	assert.Nil(suite.T(), activated)
}

func TestP2ServiceTestSuite(t *testing.T) {
	suite.Run(t, new(P2ServiceTestSuite))
}
