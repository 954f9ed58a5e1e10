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

type SAFeServiceTestSuite struct {
	suite.Suite
	ctrl              *gomock.Controller
	mockSAFeRepo      *mocks.MockSAFeRepositoryInterface
	mockProgrammeRepo *mocks.MockProgrammeRepositoryInterface
	safeService       *service.SAFeService

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *SAFeServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockSAFeRepo = mocks.NewMockSAFeRepositoryInterface(suite.ctrl)
	suite.mockProgrammeRepo = mocks.NewMockProgrammeRepositoryInterface(suite.ctrl)
	suite.safeService = service.NewSAFeService(suite.mockSAFeRepo, suite.mockProgrammeRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *SAFeServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *SAFeServiceTestSuite) safeProgramme() *models.Programme {
	return &models.Programme{
		BaseModel: models.BaseModel{ID: uuid.New()},
		CompanyID: suite.companyID,
		ManagerID: suite.claims.UserID,
		Name:      "Release Programme",
		Framework: models.FrameworkSAFe,
		Status:    models.WorkStatusActive,
	}
}

func (suite *SAFeServiceTestSuite) art(programmeID uuid.UUID) *models.ART {
	return &models.ART{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProgrammeID: programmeID,
		Name:        "Payments Train",
		Cadence:     "10 weeks",
	}
}

func (suite *SAFeServiceTestSuite) TestCreateART_NonSAFeProgramme_Conflict() {
	programme := suite.safeProgramme()
	programme.Framework = models.FrameworkMSP

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)

	art, err := suite.safeService.CreateART(suite.claims, &service.CreateARTRequest{
		ProgrammeID: programme.ID,
		Name:        "Payments Train",
	})

	assert.ErrorIs(suite.T(), err, apperrors.ErrMethodologyMismatch)
	assert.Nil(suite.T(), art)
}

func (suite *SAFeServiceTestSuite) TestCreatePI_Success() {
	programme := suite.safeProgramme()

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockSAFeRepo.EXPECT().CreatePI(gomock.Any()).Return(nil)

	pi, err := suite.safeService.CreatePI(suite.claims, &service.CreatePIRequest{
		ProgrammeID:    programme.ID,
		Name:           "PI 2026.1",
		IterationCount: 5,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), programme.ID, pi.ProgrammeID)
	assert.Equal(suite.T(), 5, pi.IterationCount)
}

func (suite *SAFeServiceTestSuite) TestCreatePI_ZeroIterations_ValidationError() {
	pi, err := suite.safeService.CreatePI(suite.claims, &service.CreatePIRequest{
		ProgrammeID:    uuid.New(),
		Name:           "PI 2026.1",
		IterationCount: 0,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), pi)
}

func (suite *SAFeServiceTestSuite) TestCreatePI_ARTFromAnotherProgramme_ValidationError() {
	programme := suite.safeProgramme()
	foreignART := suite.art(uuid.New())

	suite.mockProgrammeRepo.EXPECT().GetByID(gomock.Any(), programme.ID).Return(programme, nil)
	suite.mockSAFeRepo.EXPECT().GetART(gomock.Any(), foreignART.ID).Return(foreignART, nil)

	pi, err := suite.safeService.CreatePI(suite.claims, &service.CreatePIRequest{
		ProgrammeID:    programme.ID,
		ARTID:          &foreignART.ID,
		Name:           "PI 2026.1",
		IterationCount: 5,
	})

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), pi)
}

func (suite *SAFeServiceTestSuite) TestCreateObjective_BusinessValueInBounds_Success() {
	pi := &models.ProgramIncrement{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		CompanyID:   suite.companyID,
		ProgrammeID: uuid.New(),
		Name:        "PI 2026.1",
	}

	suite.mockSAFeRepo.EXPECT().GetPI(gomock.Any(), pi.ID).Return(pi, nil)
	suite.mockSAFeRepo.EXPECT().CreateObjective(gomock.Any()).Return(nil)

	objective, err := suite.safeService.CreateObjective(suite.claims, &service.CreateObjectiveRequest{
		ProgramIncrementID: pi.ID,
		Title:              "Ship instant payouts",
		BusinessValue:      10,
		IsCommitted:        true,
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), 10, objective.BusinessValue)
	assert.True(suite.T(), objective.IsCommitted)
}

func (suite *SAFeServiceTestSuite) TestCreateObjective_BusinessValueOutOfBounds_ValidationError() {
	for _, value := range []int{0, 11} {
		objective, err := suite.safeService.CreateObjective(suite.claims, &service.CreateObjectiveRequest{
			ProgramIncrementID: uuid.New(),
			Title:              "Ship instant payouts",
			BusinessValue:      value,
		})

		assert.Error(suite.T(), err)
		assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
		assert.Nil(suite.T(), objective)
	}
}

func (suite *SAFeServiceTestSuite) TestRecordSyncMeeting_TruncatesToDate() {
	art := suite.art(uuid.New())

	suite.mockSAFeRepo.EXPECT().GetART(gomock.Any(), art.ID).Return(art, nil)
	suite.mockSAFeRepo.EXPECT().AppendSyncMeeting(gomock.Any()).Return(nil)

	meeting, err := suite.safeService.RecordSyncMeeting(suite.claims, &service.RecordSyncMeetingRequest{
		ARTID: art.ID,
		Date:  time.Date(2026, 2, 3, 14, 45, 12, 0, time.UTC),
		Notes: "Dependency review",
	})

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), time.Date(2026, 2, 3, 0, 0, 0, 0, time.UTC), meeting.Date)
	assert.Equal(suite.T(), art.ID, meeting.ARTID)
}

func TestSAFeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SAFeServiceTestSuite))
}
