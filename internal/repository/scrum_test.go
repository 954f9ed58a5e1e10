package repository

import (
	"testing"
	"time"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// ScrumRepositoryTestSuite tests the ScrumRepository
type ScrumRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ScrumRepository

	companyFactory   *testutils.CompanyFactory
	projectFactory   *testutils.ProjectFactory
	iterationFactory *testutils.IterationFactory

	company *models.Company
	project *models.Project
}

// SetupSuite runs before all tests in the suite
func (suite *ScrumRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewScrumRepository(suite.baseTestSuite.DB)
	suite.companyFactory = testutils.NewCompanyFactory()
	suite.projectFactory = testutils.NewProjectFactory()
	suite.iterationFactory = testutils.NewIterationFactory()
}

// TearDownSuite runs after all tests in the suite
func (suite *ScrumRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a scrum project
func (suite *ScrumRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	suite.company = suite.companyFactory.Create()
	suite.NoError(suite.baseTestSuite.DB.Create(suite.company).Error)
	suite.project = suite.projectFactory.Create(suite.company.ID, models.MethodologyScrum)
	suite.NoError(suite.baseTestSuite.DB.Create(suite.project).Error)
}

// TearDownTest runs after each test
func (suite *ScrumRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert an iteration with the given dates and status
func (suite *ScrumRepositoryTestSuite) createIteration(start, end time.Time, status models.IterationStatus) *models.Iteration {
	iteration := suite.iterationFactory.WithDates(suite.company.ID, suite.project.ID, start, end)
	iteration.Status = status
	suite.NoError(suite.baseTestSuite.DB.Create(iteration).Error)
	return iteration
}

// TestCountOverlappingActive tests that only active overlapping iterations count
func (suite *ScrumRepositoryTestSuite) TestCountOverlappingActive() {
	day := 24 * time.Hour
	base := time.Now().Truncate(day)

	suite.createIteration(base, base.Add(14*day), models.IterationStatusActive)
	// Planned iterations never block
	suite.createIteration(base, base.Add(14*day), models.IterationStatusPlanned)
	// Back-to-back active iteration shares only the boundary instant
	suite.createIteration(base.Add(14*day), base.Add(28*day), models.IterationStatusActive)

	count, err := suite.repo.CountOverlappingActive(suite.project.ID, base.Add(7*day), base.Add(10*day), uuid.Nil)
	suite.NoError(err)
	suite.Equal(int64(1), count)

	// Touching the boundary is not an overlap
	count, err = suite.repo.CountOverlappingActive(suite.project.ID, base.Add(28*day), base.Add(42*day), uuid.Nil)
	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestCountOverlappingActiveExcludesSelf tests the exclusion used on update
func (suite *ScrumRepositoryTestSuite) TestCountOverlappingActiveExcludesSelf() {
	day := 24 * time.Hour
	base := time.Now().Truncate(day)
	iteration := suite.createIteration(base, base.Add(14*day), models.IterationStatusActive)

	count, err := suite.repo.CountOverlappingActive(suite.project.ID, base, base.Add(14*day), iteration.ID)

	suite.NoError(err)
	suite.Equal(int64(0), count)
}

// TestUpdateIteration tests the optimistic version check
func (suite *ScrumRepositoryTestSuite) TestUpdateIteration() {
	day := 24 * time.Hour
	base := time.Now().Truncate(day)
	iteration := suite.createIteration(base, base.Add(14*day), models.IterationStatusPlanned)

	iteration.Goal = "Revised goal"
	ok, err := suite.repo.UpdateIteration(iteration, 0)
	suite.NoError(err)
	suite.True(ok)

	// The stored row now carries version 1, so version 0 is stale
	iteration.Goal = "Second writer"
	ok, err = suite.repo.UpdateIteration(iteration, 0)
	suite.NoError(err)
	suite.False(ok)

	stored, err := suite.repo.GetIteration(scopeFor(suite.company.ID), iteration.ID)
	suite.NoError(err)
	suite.Equal("Revised goal", stored.Goal)
	suite.Equal(1, stored.LockVersion)
}

// TestOrderTaken tests the per-project backlog order uniqueness probe
func (suite *ScrumRepositoryTestSuite) TestOrderTaken() {
	factory := testutils.NewBacklogItemFactory()
	item := factory.Create(suite.company.ID, suite.project.ID, 1)
	suite.NoError(suite.baseTestSuite.DB.Create(item).Error)

	taken, err := suite.repo.OrderTaken(suite.project.ID, 1, uuid.Nil)
	suite.NoError(err)
	suite.True(taken)

	taken, err = suite.repo.OrderTaken(suite.project.ID, 2, uuid.Nil)
	suite.NoError(err)
	suite.False(taken)

	// The item itself is excluded when probing its own order on update
	taken, err = suite.repo.OrderTaken(suite.project.ID, 1, item.ID)
	suite.NoError(err)
	suite.False(taken)
}

// TestListBacklogOrdering tests that the backlog lists in item order
func (suite *ScrumRepositoryTestSuite) TestListBacklogOrdering() {
	factory := testutils.NewBacklogItemFactory()
	for _, order := range []int{3, 1, 2} {
		item := factory.Create(suite.company.ID, suite.project.ID, order)
		suite.NoError(suite.baseTestSuite.DB.Create(item).Error)
	}

	items, err := suite.repo.ListBacklog(scopeFor(suite.company.ID), suite.project.ID)

	suite.NoError(err)
	suite.Len(items, 3)
	suite.Equal(1, items[0].Order)
	suite.Equal(2, items[1].Order)
	suite.Equal(3, items[2].Order)
}

// TestScrumRepositoryTestSuite runs the test suite
func TestScrumRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ScrumRepositoryTestSuite))
}
