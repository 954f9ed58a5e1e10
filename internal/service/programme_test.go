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

type ProgrammeServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	programmeService  *service.ProgrammeService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *ProgrammeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.programmeService = service.NewProgrammeService(suite.mockProgrammeRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *ProgrammeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ProgrammeServiceTestSuite) programme(status models.WorkStatus) *models.Programme {
	return &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ManagerID: suite.claims.UserID,
		Name:      "Transformation",
		Framework: models.FrameworkMSP,
		Status:    status,
	}
}

func (suite *ProgrammeServiceTestSuite) TestCreate_DefaultsToGenericFramework() {
	suite.mockProgrammeRepo.EXPECT().Create(gomock.Any()).Return(nil)

	programme, err := suite.programmeService.Create(suite.claims, &service.CreateProgrammeRequest{
		Name: "Transformation",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.FrameworkGeneric, programme.Framework)
	assert.Equal(suite.T(), models.WorkStatusDraft, programme.Status)
	assert.Equal(suite.T(), suite.companyID, programme.CompanyID)
	assert.Equal(suite.T(), suite.claims.UserID, programme.ManagerID)
}

func (suite *ProgrammeServiceTestSuite) TestCreate_UnknownFramework_ValidationError() {
	programme, err := suite.programmeService.Create(suite.claims, &service.CreateProgrammeRequest{
		Name:      "Transformation",
		Framework: models.Framework("scrumban"),
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), programme)
}

func (suite *ProgrammeServiceTestSuite) TestCreate_EndBeforeStart_ValidationError() {
	start := time.Now()
	end := start.AddDate(0, -1, 0)

	programme, err := suite.programmeService.Create(suite.claims, &service.CreateProgrammeRequest{
		Name:      "Transformation",
		StartDate: &start,
		EndDate:   &end,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), programme)
}

func (suite *ProgrammeServiceTestSuite) TestCreate_NoCompany_ValidationError() {
	claims := &auth.Claims{
		UserID: uuid.New(),
		Email:  "root@test.com",
		Role:   models.RoleSuperAdmin,
	}

	programme, err := suite.programmeService.Create(claims, &service.CreateProgrammeRequest{
		Name: "Transformation",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrCompanyRequired)
	assert.Nil(suite.T(), programme)
}

func (suite *ProgrammeServiceTestSuite) TestSetStatus_DraftToActive_Success() {
	programme := suite.programme(models.WorkStatusDraft)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockProgrammeRepo.EXPECT().Update(programme).Return(nil)

	updated, err := suite.programmeService.SetStatus(suite.claims, programme.ID, models.WorkStatusActive)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.WorkStatusActive, updated.Status)
}

func (suite *ProgrammeServiceTestSuite) TestSetStatus_ArchivedToActive_Conflict() {
	programme := suite.programme(models.WorkStatusArchived)

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)

	updated, err := suite.programmeService.SetStatus(suite.claims, programme.ID, models.WorkStatusActive)

	assert.ErrorIs(suite.T(), err, apperrors.ErrIllegalTransition)
	assert.Nil(suite.T(), updated)
}

func (suite *ProgrammeServiceTestSuite) TestUpdate_DatesCrossing_ValidationError() {
	programme := suite.programme(models.WorkStatusActive)
	start := time.Now()
	programme.StartDate = &start

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)

	end := start.AddDate(0, -2, 0)
	updated, err := suite.programmeService.Update(suite.claims, programme.ID, &service.UpdateProgrammeRequest{
		EndDate: &end,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), updated)
}

func TestProgrammeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ProgrammeServiceTestSuite))
}
