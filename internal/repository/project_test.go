package repository

import (
	"testing"

	"projextpal-backend/internal/auth"
	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ProjectRepositoryTestSuite tests the ProjectRepository
type ProjectRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProjectRepository

	companyFactory *testutils.CompanyFactory
	projectFactory *testutils.ProjectFactory
}

// SetupSuite runs before all tests in the suite
func (suite *ProjectRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProjectRepository(suite.baseTestSuite.DB)
	suite.companyFactory = testutils.NewCompanyFactory()
	suite.projectFactory = testutils.NewProjectFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ProjectRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ProjectRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ProjectRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a company directly via gorm
func (suite *ProjectRepositoryTestSuite) createCompany() *models.Company {
	company := suite.companyFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(company).Error)
	return company
}

// helper to insert a project directly via gorm
func (suite *ProjectRepositoryTestSuite) createProject(companyID uuid.UUID, methodology models.Methodology) *models.Project {
	project := suite.projectFactory.Create(companyID, methodology)
	suite.NoError(suite.baseTestSuite.DB.Create(project).Error)
	return project
}

func scopeFor(companyID uuid.UUID) auth.TenantScope {
	return auth.TenantScope{CompanyID: &companyID}
}

// TestGetByID tests retrieving a project within the caller's tenant
func (suite *ProjectRepositoryTestSuite) TestGetByID() {
	company := suite.createCompany()
	project := suite.createProject(company.ID, models.MethodologyScrum)

	retrieved, err := suite.repo.GetByID(scopeFor(company.ID), project.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(project.ID, retrieved.ID)
	suite.Equal(models.MethodologyScrum, retrieved.Methodology)
}

// TestGetByIDCrossTenant tests that another tenant's project stays hidden
func (suite *ProjectRepositoryTestSuite) TestGetByIDCrossTenant() {
	companyA := suite.createCompany()
	companyB := suite.createCompany()
	project := suite.createProject(companyA.ID, models.MethodologyKanban)

	retrieved, err := suite.repo.GetByID(scopeFor(companyB.ID), project.ID)

	suite.Error(err)
	suite.Equal(gorm.ErrRecordNotFound, err)
	suite.Nil(retrieved)
}

// TestGetByIDSuperAdmin tests that a super admin scope reads across tenants
func (suite *ProjectRepositoryTestSuite) TestGetByIDSuperAdmin() {
	company := suite.createCompany()
	project := suite.createProject(company.ID, models.MethodologyWaterfall)

	retrieved, err := suite.repo.GetByID(auth.TenantScope{SuperAdmin: true}, project.ID)

	suite.NoError(err)
	suite.Equal(project.ID, retrieved.ID)
}

// TestListFiltersByStatusAndMethodology tests the list filters
func (suite *ProjectRepositoryTestSuite) TestListFiltersByStatusAndMethodology() {
	company := suite.createCompany()
	suite.createProject(company.ID, models.MethodologyScrum)
	suite.createProject(company.ID, models.MethodologyScrum)
	kanban := suite.projectFactory.Create(company.ID, models.MethodologyKanban)
	kanban.Status = models.WorkStatusDraft
	suite.NoError(suite.baseTestSuite.DB.Create(kanban).Error)

	items, total, err := suite.repo.List(scopeFor(company.ID), "", models.MethodologyScrum, 10, 0)
	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(items, 2)

	items, total, err = suite.repo.List(scopeFor(company.ID), models.WorkStatusDraft, "", 10, 0)
	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(kanban.ID, items[0].ID)
}

// TestListScopedToTenant tests that listing never leaks other tenants
func (suite *ProjectRepositoryTestSuite) TestListScopedToTenant() {
	companyA := suite.createCompany()
	companyB := suite.createCompany()
	suite.createProject(companyA.ID, models.MethodologyScrum)
	suite.createProject(companyB.ID, models.MethodologyScrum)

	items, total, err := suite.repo.List(scopeFor(companyA.ID), "", "", 10, 0)

	suite.NoError(err)
	suite.Equal(int64(1), total)
	suite.Len(items, 1)
	suite.Equal(companyA.ID, items[0].CompanyID)
}

// TestSoftDelete tests soft deletion and the include-deleted read path
func (suite *ProjectRepositoryTestSuite) TestSoftDelete() {
	company := suite.createCompany()
	project := suite.createProject(company.ID, models.MethodologyLSSGreen)

	suite.NoError(suite.repo.SoftDelete(project.ID))

	// Regular read no longer sees the project
	_, err := suite.repo.GetByID(scopeFor(company.ID), project.ID)
	suite.Equal(gorm.ErrRecordNotFound, err)

	// Include-deleted read still does
	retrieved, err := suite.repo.GetByIDIncludeDeleted(scopeFor(company.ID), project.ID)
	suite.NoError(err)
	suite.Equal(project.ID, retrieved.ID)
	suite.True(retrieved.DeletedAt.Valid)
}

// TestSoftDeleteCascadesToBoardChildren tests that deleting a project also
// removes the columns and cards hanging off its boards
func (suite *ProjectRepositoryTestSuite) TestSoftDeleteCascadesToBoardChildren() {
	company := suite.createCompany()
	project := suite.createProject(company.ID, models.MethodologyKanban)
	db := suite.baseTestSuite.DB

	board := testutils.NewBoardFactory().Create(company.ID, project.ID)
	suite.NoError(db.Create(board).Error)
	column := testutils.NewColumnFactory().Create(company.ID, board.ID, 0)
	suite.NoError(db.Create(column).Error)
	card := testutils.NewCardFactory().Create(company.ID, board.ID, column.ID)
	suite.NoError(db.Create(card).Error)

	suite.NoError(suite.repo.SoftDelete(project.ID))

	var boards, columns, cards int64
	suite.NoError(db.Model(&models.Board{}).Where("project_id = ?", project.ID).Count(&boards).Error)
	suite.NoError(db.Model(&models.Column{}).Where("board_id = ?", board.ID).Count(&columns).Error)
	suite.NoError(db.Model(&models.Card{}).Where("board_id = ?", board.ID).Count(&cards).Error)
	suite.Zero(boards)
	suite.Zero(columns)
	suite.Zero(cards)
}

// TestCountByMethodology tests the analytics grouping query
func (suite *ProjectRepositoryTestSuite) TestCountByMethodology() {
	company := suite.createCompany()
	suite.createProject(company.ID, models.MethodologyScrum)
	suite.createProject(company.ID, models.MethodologyScrum)
	suite.createProject(company.ID, models.MethodologyKanban)

	counts, err := suite.repo.CountByMethodology(scopeFor(company.ID))

	suite.NoError(err)
	suite.Equal(int64(2), counts[models.MethodologyScrum])
	suite.Equal(int64(1), counts[models.MethodologyKanban])
}

// TestProjectRepositoryTestSuite runs the test suite
func TestProjectRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProjectRepositoryTestSuite))
}
