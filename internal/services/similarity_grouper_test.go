package services

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// SimilarityGrouperSuite defines the test suite for SimilarityGrouperInterface
type SimilarityGrouperSuite struct {
	suite.Suite
	grouper SimilarityGrouperInterface
}

// SetupTest runs before each test in the suite
func (s *SimilarityGrouperSuite) SetupTest() {
	s.grouper = NewSimilarityGrouper()
}

// TestSimilarityGrouperSuite runs the test suite
func TestSimilarityGrouperSuite(t *testing.T) {
	suite.Run(t, new(SimilarityGrouperSuite))
}

func (s *SimilarityGrouperSuite) TestGroupKey() {
	tests := []struct {
		raw  string
		want string
	}{
		{"Tim Hortons #102", "timhortons"},
		{"TIM HORTONS 45", "timhortons"},
		{"tim hortons", "timhortons"},
		{"Costco Wholesale Inc", "costcowholesale"},
		{"ACME Store", "acme"},
		{"Quick Mart Ltd.", "quickmart"},
		{"WAL-MART #3454", "walmart"},
		{"Wal Mart", "walmart"},
		{"7-Eleven 33021", "7eleven"},
		{"Joe's Diner", "joesdiner"},
		{"Inc", "inc"},
		{"   ", ""},
		{"#123", ""},
	}

	for _, tt := range tests {
		s.Equal(tt.want, GroupKey(tt.raw), "raw=%q", tt.raw)
	}
}

func (s *SimilarityGrouperSuite) TestProposeGroups_ClustersVariants() {
	counts := []models.MerchantCount{
		{Raw: "TIM HORTONS #102", Count: 5},
		{Raw: "COSTCO WHOLESALE", Count: 9},
		{Raw: "Tim Hortons 45", Count: 12},
		{Raw: "tim hortons", Count: 2},
		{Raw: "Fresh Market", Count: 1},
	}

	groups := s.grouper.ProposeGroups(counts)

	// Only the Tim Hortons cluster has more than one variant; Costco and
	// Fresh Market stay out.
	s.Require().Len(groups, 1)

	group := groups[0]
	s.Equal("Tim", group.Name)
	s.Equal(19, group.Count)
	s.Require().Len(group.Members, 3)
	s.Equal("Tim Hortons 45", group.Members[0].Raw)
	s.Equal("TIM HORTONS #102", group.Members[1].Raw)
	s.Equal("tim hortons", group.Members[2].Raw)
}

func (s *SimilarityGrouperSuite) TestProposeGroups_DisplayNameFromTopMember() {
	counts := []models.MerchantCount{
		{Raw: "wal mart", Count: 1},
		{Raw: "WAL-MART #3454", Count: 7},
	}

	groups := s.grouper.ProposeGroups(counts)

	s.Require().Len(groups, 1)
	// First token of the highest-count member, split on whitespace,
	// digits, hashes and hyphens.
	s.Equal("WAL", groups[0].Name)
}

func (s *SimilarityGrouperSuite) TestProposeGroups_SortsByCountDescending() {
	counts := []models.MerchantCount{
		{Raw: "CORNER CAFE #1", Count: 2},
		{Raw: "CORNER CAFE #2", Count: 1},
		{Raw: "BIG GROCER 10", Count: 8},
		{Raw: "BIG GROCER 11", Count: 9},
	}

	groups := s.grouper.ProposeGroups(counts)

	s.Require().Len(groups, 2)
	s.Equal("BIG", groups[0].Name)
	s.Equal(17, groups[0].Count)
	s.Equal("CORNER", groups[1].Name)
	s.Equal(3, groups[1].Count)
}

func (s *SimilarityGrouperSuite) TestProposeGroups_TieKeepsEncounterOrder() {
	counts := []models.MerchantCount{
		{Raw: "ALPHA DELI 1", Count: 3},
		{Raw: "ALPHA DELI 2", Count: 3},
		{Raw: "ZETA BAKERY 1", Count: 3},
		{Raw: "ZETA BAKERY 2", Count: 3},
	}

	first := s.grouper.ProposeGroups(counts)
	second := s.grouper.ProposeGroups(counts)

	s.Require().Len(first, 2)
	s.Equal("ALPHA", first[0].Name)
	s.Equal("ZETA", first[1].Name)
	// Same input, same order, every time.
	s.Equal(first, second)

	// Members tie on count too; the earlier variant stays first.
	s.Equal("ALPHA DELI 1", first[0].Members[0].Raw)
	s.Equal("ALPHA DELI 2", first[0].Members[1].Raw)
}

func (s *SimilarityGrouperSuite) TestProposeGroups_EmptyInput() {
	s.Empty(s.grouper.ProposeGroups(nil))
	s.Empty(s.grouper.ProposeGroups([]models.MerchantCount{}))
	s.Empty(s.grouper.ProposeGroups([]models.MerchantCount{{Raw: "###", Count: 4}}))
}

func (s *SimilarityGrouperSuite) TestSuggestMerges_NearbyKeys() {
	groups := []models.MerchantGroup{
		{Name: "Timhortons", Members: []models.MerchantCount{{Raw: "TIM HORTONS 1", Count: 3}, {Raw: "TIM HORTONS 2", Count: 1}}},
		{Name: "Timhorton", Members: []models.MerchantCount{{Raw: "TIM HORTON 9", Count: 2}, {Raw: "TIM HORTON 4", Count: 1}}},
		{Name: "Costco", Members: []models.MerchantCount{{Raw: "COSTCO 55", Count: 4}, {Raw: "COSTCO 56", Count: 2}}},
	}

	suggestions := s.grouper.SuggestMerges(groups)

	s.Require().Len(suggestions, 1)
	s.Equal("Timhortons", suggestions[0].Left)
	s.Equal("Timhorton", suggestions[0].Right)
	s.Equal(1, suggestions[0].Distance)
}

func (s *SimilarityGrouperSuite) TestSuggestMerges_IdenticalKeysSkipped() {
	groups := []models.MerchantGroup{
		{Name: "Acme", Members: []models.MerchantCount{{Raw: "ACME 1", Count: 2}}},
		{Name: "Acme", Members: []models.MerchantCount{{Raw: "acme 2", Count: 1}}},
	}

	s.Empty(s.grouper.SuggestMerges(groups))
}
