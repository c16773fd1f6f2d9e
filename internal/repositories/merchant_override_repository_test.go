package repositories

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/database"
	"github.com/danvolchok/budget-tracker-web/internal/models"
)

func TestMerchantOverrideRepository(t *testing.T) {
	suite.Run(t, new(MerchantOverrideRepositorySuite))
}

type MerchantOverrideRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo MerchantOverrideRepositoryInterface
}

func (s *MerchantOverrideRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewMerchantOverrideRepository(s.db.DB)
}

func (s *MerchantOverrideRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *MerchantOverrideRepositorySuite) TestMerchantOverrideRepository_Upsert() {
	s.NoError(s.repo.Upsert("MCDONALD'S #1234", "McDonald's"))

	found, err := s.repo.GetByRawName("MCDONALD'S #1234")
	s.NoError(err)
	s.Equal("McDonald's", found.GroupName)

	// A second pin for the same raw name replaces the first.
	s.NoError(s.repo.Upsert("MCDONALD'S #1234", "Fast Food"))

	found, err = s.repo.GetByRawName("MCDONALD'S #1234")
	s.NoError(err)
	s.Equal("Fast Food", found.GroupName)

	all, err := s.repo.GetAll()
	s.NoError(err)
	s.Len(all, 1)
}

func (s *MerchantOverrideRepositorySuite) TestMerchantOverrideRepository_UpsertBatch() {
	s.Require().NoError(s.repo.Upsert("TIM HORTONS 45", "Coffee"))

	err := s.repo.UpsertBatch([]models.MerchantOverride{
		{RawName: "MCDONALD'S #1234", GroupName: "McDonald's"},
		{RawName: "MCDONALDS 40382", GroupName: "McDonald's"},
		{RawName: "TIM HORTONS 45", GroupName: "Tim Hortons"},
	})
	s.NoError(err)

	all, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(all, 3)

	updated, err := s.repo.GetByRawName("TIM HORTONS 45")
	s.NoError(err)
	s.Equal("Tim Hortons", updated.GroupName)
}

func (s *MerchantOverrideRepositorySuite) TestMerchantOverrideRepository_UpsertBatch_Empty() {
	s.NoError(s.repo.UpsertBatch(nil))
	s.NoError(s.repo.UpsertBatch([]models.MerchantOverride{}))
}

func (s *MerchantOverrideRepositorySuite) TestMerchantOverrideRepository_GetByRawName_NotFound() {
	_, err := s.repo.GetByRawName("NO SUCH MERCHANT")
	s.Equal(ErrOverrideNotFound, err)
}

func (s *MerchantOverrideRepositorySuite) TestMerchantOverrideRepository_GetAll_OrderedByRawName() {
	s.Require().NoError(s.repo.Upsert("ZETA BAKERY", "Zeta"))
	s.Require().NoError(s.repo.Upsert("ALPHA DELI", "Alpha"))

	all, err := s.repo.GetAll()
	s.NoError(err)
	s.Require().Len(all, 2)
	s.Equal("ALPHA DELI", all[0].RawName)
	s.Equal("ZETA BAKERY", all[1].RawName)
}

func (s *MerchantOverrideRepositorySuite) TestMerchantOverrideRepository_Delete() {
	s.Require().NoError(s.repo.Upsert("MCDONALD'S #1234", "McDonald's"))

	s.NoError(s.repo.Delete("MCDONALD'S #1234"))

	_, err := s.repo.GetByRawName("MCDONALD'S #1234")
	s.Equal(ErrOverrideNotFound, err)

	s.Equal(ErrOverrideNotFound, s.repo.Delete("MCDONALD'S #1234"))
}
