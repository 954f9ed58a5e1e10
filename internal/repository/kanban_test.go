package repository

import (
	"testing"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// KanbanRepositoryTestSuite tests the KanbanRepository
type KanbanRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *KanbanRepository

	company *models.Company
	board   *models.Board
	todo    *models.Column
	doing   *models.Column
}

// SetupSuite runs before all tests in the suite
func (suite *KanbanRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewKanbanRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *KanbanRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a board with two columns,
// the second limited to two in-flight cards
func (suite *KanbanRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.company = testutils.NewCompanyFactory().Create()
	suite.NoError(db.Create(suite.company).Error)

	project := testutils.NewProjectFactory().Create(suite.company.ID, models.MethodologyKanban)
	suite.NoError(db.Create(project).Error)

	suite.board = testutils.NewBoardFactory().Create(suite.company.ID, project.ID)
	suite.NoError(db.Create(suite.board).Error)

	columnFactory := testutils.NewColumnFactory()
	suite.todo = columnFactory.Create(suite.company.ID, suite.board.ID, 0)
	suite.NoError(db.Create(suite.todo).Error)
	suite.doing = columnFactory.WithWIPLimit(suite.company.ID, suite.board.ID, 1, 2)
	suite.NoError(db.Create(suite.doing).Error)
}

// TearDownTest runs after each test
func (suite *KanbanRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a card in the given column
func (suite *KanbanRepositoryTestSuite) createCard(column *models.Column) *models.Card {
	card := testutils.NewCardFactory().Create(suite.company.ID, suite.board.ID, column.ID)
	suite.NoError(suite.baseTestSuite.DB.Create(card).Error)
	return card
}

// TestMoveCard tests a successful move bumps the lock version
func (suite *KanbanRepositoryTestSuite) TestMoveCard() {
	card := suite.createCard(suite.todo)

	moved, err := suite.repo.MoveCard(card, suite.doing.ID, 0, 0, suite.doing.WIPLimit)

	suite.NoError(err)
	suite.True(moved)

	stored, err := suite.repo.GetCard(scopeFor(suite.company.ID), card.ID)
	suite.NoError(err)
	suite.Equal(suite.doing.ID, stored.ColumnID)
	suite.Equal(1, stored.LockVersion)

	// The passed struct reflects the accepted move, like the stored row.
	suite.Equal(suite.doing.ID, card.ColumnID)
	suite.Equal(1, card.LockVersion)
}

// TestMoveCardStaleVersion tests that a stale lock version moves nothing
func (suite *KanbanRepositoryTestSuite) TestMoveCardStaleVersion() {
	card := suite.createCard(suite.todo)

	moved, err := suite.repo.MoveCard(card, suite.doing.ID, 0, 5, suite.doing.WIPLimit)

	suite.NoError(err)
	suite.False(moved)

	stored, err := suite.repo.GetCard(scopeFor(suite.company.ID), card.ID)
	suite.NoError(err)
	suite.Equal(suite.todo.ID, stored.ColumnID)
	suite.Equal(0, stored.LockVersion)
}

// TestMoveCardWIPLimitReached tests that a full destination aborts the move
func (suite *KanbanRepositoryTestSuite) TestMoveCardWIPLimitReached() {
	suite.createCard(suite.doing)
	suite.createCard(suite.doing)
	card := suite.createCard(suite.todo)

	moved, err := suite.repo.MoveCard(card, suite.doing.ID, 0, 0, suite.doing.WIPLimit)

	suite.ErrorIs(err, ErrWIPLimitReached)
	suite.False(moved)

	// Card stays where it was
	stored, err := suite.repo.GetCard(scopeFor(suite.company.ID), card.ID)
	suite.NoError(err)
	suite.Equal(suite.todo.ID, stored.ColumnID)
}

// TestMoveCardNoLimit tests that a nil limit admits any number of cards
func (suite *KanbanRepositoryTestSuite) TestMoveCardNoLimit() {
	suite.createCard(suite.todo)
	suite.createCard(suite.todo)
	card := suite.createCard(suite.doing)

	moved, err := suite.repo.MoveCard(card, suite.todo.ID, 2, 0, nil)

	suite.NoError(err)
	suite.True(moved)
}

// TestCountCards tests the live card count behind the WIP check
func (suite *KanbanRepositoryTestSuite) TestCountCards() {
	suite.createCard(suite.doing)
	gone := suite.createCard(suite.doing)
	suite.NoError(suite.repo.SoftDeleteCard(gone.ID))

	count, err := suite.repo.CountCards(suite.doing.ID)

	suite.NoError(err)
	suite.Equal(int64(1), count)
}

// TestKanbanRepositoryTestSuite runs the test suite
func TestKanbanRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(KanbanRepositoryTestSuite))
}
