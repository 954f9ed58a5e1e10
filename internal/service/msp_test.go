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

type MSPServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockArtifactRepo  *mocks.MockProgrammeArtifactRepositoryInterface
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	mspService        *service.MSPService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *MSPServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockArtifactRepo = mocks.NewMockProgrammeArtifactRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.mspService = service.NewMSPService(suite.mockArtifactRepo, suite.mockProgrammeRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *MSPServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *MSPServiceTestSuite) programme(framework models.Framework) *models.Programme {
	return &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ManagerID: suite.claims.UserID,
		Name:      "Checkout Replatform",
		Framework: framework,
	}
}

func (suite *MSPServiceTestSuite) TestCreateTranche_AppendsAtEndOfSequence() {
	programme := suite.programme(models.FrameworkMSP)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockArtifactRepo.EXPECT().MaxTrancheSequence(programme.ID).Return(2, nil)
	suite.mockArtifactRepo.EXPECT().CreateTranche(gomock.Any()).Return(nil)

	tranche, err := suite.mspService.CreateTranche(suite.claims, &service.CreateTrancheRequest{
		ProgrammeID: programme.ID,
		Name:        "Tranche C",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 3, tranche.Sequence)
	assert.Equal(suite.T(), suite.companyID, tranche.CompanyID)
}

func (suite *MSPServiceTestSuite) TestCreateTranche_WrongFramework_Conflict() {
	programme := suite.programme(models.FrameworkSAFe)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)

	tranche, err := suite.mspService.CreateTranche(suite.claims, &service.CreateTrancheRequest{
		ProgrammeID: programme.ID,
		Name:        "Tranche A",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), tranche)
}

func (suite *MSPServiceTestSuite) benefit(target float64) *models.Benefit {
	return &models.Benefit{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProgrammeID: uuid.New(),
		Name:        "Conversion uplift",
		TargetValue: target,
		Unit:        "percent",
	}
}

func (suite *MSPServiceTestSuite) TestRecordRealization_UnderTarget_NoWarning() {
	benefit := suite.benefit(100)

	suite.mockArtifactRepo.EXPECT().GetBenefit(gomock.Any(), benefit.ID).Return(benefit, nil)
	suite.mockArtifactRepo.EXPECT().AppendRealization(gomock.Any()).Return(nil)
	suite.mockArtifactRepo.EXPECT().SumRealized(benefit.ID).Return(60.0, nil)

	result, err := suite.mspService.RecordRealization(suite.claims, benefit.ID, &service.RecordRealizationRequest{
		Value: 60,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 60.0, result.Total)
	assert.Empty(suite.T(), result.Warning)
}

func (suite *MSPServiceTestSuite) TestRecordRealization_OverTarget_AcceptedWithWarning() {
	benefit := suite.benefit(100)

	suite.mockArtifactRepo.EXPECT().GetBenefit(gomock.Any(), benefit.ID).Return(benefit, nil)
	suite.mockArtifactRepo.EXPECT().AppendRealization(gomock.Any()).Return(nil)
	suite.mockArtifactRepo.EXPECT().SumRealized(benefit.ID).Return(120.0, nil)

	result, err := suite.mspService.RecordRealization(suite.claims, benefit.ID, &service.RecordRealizationRequest{
		Value: 120,
	})

	// Over-target realizations are accepted, not rejected
	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 120.0, result.Total)
	assert.NotEmpty(suite.T(), result.Warning)
}

func TestMSPServiceTestSuite(t *testing.T) {
	suite.Run(t, new(MSPServiceTestSuite))
}
