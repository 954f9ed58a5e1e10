package repository

import (
	"testing"
	"time"

	"projextpal-backend/internal/database/models"
	"projextpal-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
)

// ProgrammeArtifactRepositoryTestSuite tests the ProgrammeArtifactRepository
type ProgrammeArtifactRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ProgrammeArtifactRepository

	company   *models.Company
	programme *models.Programme
}

// SetupSuite runs before all tests in the suite
func (suite *ProgrammeArtifactRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewProgrammeArtifactRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *ProgrammeArtifactRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test and seeds a programme
func (suite *ProgrammeArtifactRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()

	db := suite.baseTestSuite.DB
	suite.company = testutils.NewCompanyFactory().Create()
	suite.NoError(db.Create(suite.company).Error)

	manager := testutils.NewUserFactory().WithRole(suite.company.ID, models.RoleManager)
	suite.NoError(db.Create(manager).Error)

	suite.programme = testutils.NewProgrammeFactory().WithFramework(suite.company.ID, manager.ID, models.FrameworkMSP)
	suite.NoError(db.Create(suite.programme).Error)
}

// TearDownTest runs after each test
func (suite *ProgrammeArtifactRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// helper to insert a tranche at the given sequence
func (suite *ProgrammeArtifactRepositoryTestSuite) createTranche(sequence int) *models.Tranche {
	tranche := testutils.NewTrancheFactory().Create(suite.company.ID, suite.programme.ID, sequence)
	suite.NoError(suite.baseTestSuite.DB.Create(tranche).Error)
	return tranche
}

// helper to insert a blueprint at the given version
func (suite *ProgrammeArtifactRepositoryTestSuite) createBlueprint(version int, status models.BlueprintStatus) *models.Blueprint {
	blueprint := &models.Blueprint{
		CompanyID:   suite.company.ID,
		ProgrammeID: suite.programme.ID,
		Version:     version,
		Status:      status,
	}
	suite.NoError(suite.baseTestSuite.DB.Create(blueprint).Error)
	return blueprint
}

// TestMaxTrancheSequence tests the sequence high-water mark
func (suite *ProgrammeArtifactRepositoryTestSuite) TestMaxTrancheSequence() {
	max, err := suite.repo.MaxTrancheSequence(suite.programme.ID)
	suite.NoError(err)
	suite.Equal(0, max)

	suite.createTranche(1)
	suite.createTranche(2)

	max, err = suite.repo.MaxTrancheSequence(suite.programme.ID)
	suite.NoError(err)
	suite.Equal(2, max)
}

// TestDeleteTrancheAndClose tests that deletion keeps sequences gap-free
func (suite *ProgrammeArtifactRepositoryTestSuite) TestDeleteTrancheAndClose() {
	suite.createTranche(1)
	middle := suite.createTranche(2)
	last := suite.createTranche(3)

	suite.NoError(suite.repo.DeleteTrancheAndClose(middle))

	tranches, err := suite.repo.ListTranches(scopeFor(suite.company.ID), suite.programme.ID)
	suite.NoError(err)
	suite.Len(tranches, 2)
	suite.Equal(1, tranches[0].Sequence)
	suite.Equal(2, tranches[1].Sequence)
	suite.Equal(last.ID, tranches[1].ID)
}

// TestActivateBlueprint tests that activation archives the previous active version
func (suite *ProgrammeArtifactRepositoryTestSuite) TestActivateBlueprint() {
	first := suite.createBlueprint(1, models.BlueprintStatusActive)
	second := suite.createBlueprint(2, models.BlueprintStatusDraft)

	suite.NoError(suite.repo.ActivateBlueprint(second))

	stored, err := suite.repo.GetBlueprint(scopeFor(suite.company.ID), first.ID)
	suite.NoError(err)
	suite.Equal(models.BlueprintStatusArchived, stored.Status)

	stored, err = suite.repo.GetBlueprint(scopeFor(suite.company.ID), second.ID)
	suite.NoError(err)
	suite.Equal(models.BlueprintStatusActive, stored.Status)
}

// TestMaxBlueprintVersion tests the version high-water mark
func (suite *ProgrammeArtifactRepositoryTestSuite) TestMaxBlueprintVersion() {
	max, err := suite.repo.MaxBlueprintVersion(suite.programme.ID)
	suite.NoError(err)
	suite.Equal(0, max)

	suite.createBlueprint(1, models.BlueprintStatusArchived)
	suite.createBlueprint(2, models.BlueprintStatusActive)

	max, err = suite.repo.MaxBlueprintVersion(suite.programme.ID)
	suite.NoError(err)
	suite.Equal(2, max)
}

// TestSumRealized tests the benefit realization total
func (suite *ProgrammeArtifactRepositoryTestSuite) TestSumRealized() {
	benefit := testutils.NewBenefitFactory().Create(suite.company.ID, suite.programme.ID)
	suite.NoError(suite.repo.CreateBenefit(benefit))

	total, err := suite.repo.SumRealized(benefit.ID)
	suite.NoError(err)
	suite.Equal(float64(0), total)

	for _, value := range []float64{30, 25.5} {
		entry := &models.BenefitRealization{
			CompanyID:  suite.company.ID,
			BenefitID:  benefit.ID,
			Value:      value,
			RealizedAt: time.Now(),
		}
		suite.NoError(suite.repo.AppendRealization(entry))
	}

	total, err = suite.repo.SumRealized(benefit.ID)
	suite.NoError(err)
	suite.InDelta(55.5, total, 0.0001)
}

// TestProgrammeArtifactRepositoryTestSuite runs the test suite
func TestProgrammeArtifactRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ProgrammeArtifactRepositoryTestSuite))
}
