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

type Prince2ServiceTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockPrince2Repo *mocks.MockPrince2RepositoryInterface
	mockProjectRepo *mocks.MockProjectRepositoryInterface
	mockHybridRepo  *mocks.MockHybridRepositoryInterface
	prince2Service  *service.Prince2Service

	companyID uuid.UUID
	claims    *auth.Claims
}

func (suite *Prince2ServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockPrince2Repo = mocks.NewMockPrince2RepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockHybridRepo = mocks.NewMockHybridRepositoryInterface(suite.ctrl)
	suite.prince2Service = service.NewPrince2Service(suite.mockPrince2Repo, suite.mockProjectRepo, suite.mockHybridRepo, nil, nil)

	suite.companyID = uuid.New()
	suite.claims = &auth.Claims{
		UserID:    uuid.New(),
		Email:     "manager@test.com",
		Role:      models.RoleManager,
		CompanyID: &suite.companyID,
	}
}

func (suite *Prince2ServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *Prince2ServiceTestSuite) stage(order int, status models.StageStatus, gateApproved bool) *models.Stage {
	return &models.Stage{
		BaseModel:    models.BaseModel{ID: uuid.New()},
		CompanyID:    suite.companyID,
		ProjectID:    uuid.New(),
		Name:         "Delivery Stage",
		Order:        order,
		Status:       status,
		GateApproved: gateApproved,
	}
}

func (suite *Prince2ServiceTestSuite) TestApproveGate_FirstStage_Success() {
	stage := suite.stage(1, models.StageStatusPlanned, false)

	suite.mockPrince2Repo.EXPECT().GetStage(gomock.Any(), stage.ID).Return(stage, nil)
	suite.mockPrince2Repo.EXPECT().UpdateStage(stage).Return(nil)

	approved, err := suite.prince2Service.ApproveGate(suite.claims, stage.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), approved.GateApproved)
	assert.NotNil(suite.T(), approved.ApprovedAt)
	assert.Equal(suite.T(), models.StageStatusActive, approved.Status)
}

func (suite *Prince2ServiceTestSuite) TestApproveGate_PreviousStageIncomplete_Conflict() {
	stage := suite.stage(2, models.StageStatusPlanned, false)
	previous := suite.stage(1, models.StageStatusActive, true)
	previous.ProjectID = stage.ProjectID

	suite.mockPrince2Repo.EXPECT().GetStage(gomock.Any(), stage.ID).Return(stage, nil)
	suite.mockPrince2Repo.EXPECT().GetStageByOrder(stage.ProjectID, 1).Return(previous, nil)

	approved, err := suite.prince2Service.ApproveGate(suite.claims, stage.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStageOrderViolation)
	assert.Nil(suite.T(), approved)
}

func (suite *Prince2ServiceTestSuite) TestApproveGate_MissingPreviousStage_Conflict() {
	stage := suite.stage(3, models.StageStatusPlanned, false)

	suite.mockPrince2Repo.EXPECT().GetStage(gomock.Any(), stage.ID).Return(stage, nil)
	suite.mockPrince2Repo.EXPECT().GetStageByOrder(stage.ProjectID, 2).Return(nil, gorm.ErrRecordNotFound)

	approved, err := suite.prince2Service.ApproveGate(suite.claims, stage.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStageOrderViolation)
	assert.Nil(suite.T(), approved)
}

func (suite *Prince2ServiceTestSuite) TestApproveGate_AlreadyApproved_Idempotent() {
	stage := suite.stage(1, models.StageStatusActive, true)

	suite.mockPrince2Repo.EXPECT().GetStage(gomock.Any(), stage.ID).Return(stage, nil)

	approved, err := suite.prince2Service.ApproveGate(suite.claims, stage.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), stage.ID, approved.ID)
}

func (suite *Prince2ServiceTestSuite) TestCompleteStage_GateNotApproved_Conflict() {
	stage := suite.stage(1, models.StageStatusPlanned, false)

	suite.mockPrince2Repo.EXPECT().GetStage(gomock.Any(), stage.ID).Return(stage, nil)

	completed, err := suite.prince2Service.CompleteStage(suite.claims, stage.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrStageOrderViolation)
	assert.Nil(suite.T(), completed)
}

func (suite *Prince2ServiceTestSuite) TestDeleteStage_Approved_Conflict() {
	stage := suite.stage(1, models.StageStatusActive, true)

	suite.mockPrince2Repo.EXPECT().GetStage(gomock.Any(), stage.ID).Return(stage, nil)

	err := suite.prince2Service.DeleteStage(suite.claims, stage.ID)

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ConflictError{}, err)
}

func (suite *Prince2ServiceTestSuite) product(criteria, checked string) *models.Product {
	return &models.Product{
		BaseModel:       models.BaseModel{ID: uuid.New()},
		CompanyID:       suite.companyID,
		ProjectID:       uuid.New(),
		Name:            "Business Case",
		QualityCriteria: []byte(criteria),
		CheckedCriteria: []byte(checked),
	}
}

func (suite *Prince2ServiceTestSuite) TestCheckCriterion_UnknownCriterion_ValidationError() {
	product := suite.product(`["reviewed","signed off"]`, `[]`)

	suite.mockPrince2Repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)

	updated, err := suite.prince2Service.CheckCriterion(suite.claims, product.ID, "archived")

	assert.Error(suite.T(), err)
	assert.IsType(suite.T(), &apperrors.ValidationError{}, err)
	assert.Nil(suite.T(), updated)
}

func (suite *Prince2ServiceTestSuite) TestCheckCriterion_Recheck_Idempotent() {
	product := suite.product(`["reviewed","signed off"]`, `["reviewed"]`)

	suite.mockPrince2Repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)

	updated, err := suite.prince2Service.CheckCriterion(suite.claims, product.ID, "reviewed")

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), product.ID, updated.ID)
}

func (suite *Prince2ServiceTestSuite) TestApproveProduct_OpenCriteria_Conflict() {
	product := suite.product(`["reviewed","signed off"]`, `["reviewed"]`)

	suite.mockPrince2Repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)

	approved, err := suite.prince2Service.ApproveProduct(suite.claims, product.ID)

	assert.ErrorIs(suite.T(), err, apperrors.ErrProductCriteriaOpen)
	assert.Nil(suite.T(), approved)
}

func (suite *Prince2ServiceTestSuite) TestApproveProduct_AllChecked_Success() {
	product := suite.product(`["reviewed","signed off"]`, `["reviewed","signed off"]`)

	suite.mockPrince2Repo.EXPECT().GetProduct(gomock.Any(), product.ID).Return(product, nil)
	suite.mockPrince2Repo.EXPECT().UpdateProduct(product).Return(nil)

	approved, err := suite.prince2Service.ApproveProduct(suite.claims, product.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), approved.IsApproved)
}

func TestPrince2ServiceTestSuite(t *testing.T) {
	suite.Run(t, new(Prince2ServiceTestSuite))
}
