package services

import (
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/shopspring/decimal"

	"github.com/danvolchok/budget-tracker-web/internal/models"
)

// maxMergeDistance is the largest key edit distance still worth suggesting
// as a merge of two proposed groups.
const maxMergeDistance = 2

var (
	trailingJunk   = regexp.MustCompile(`[\d#\-\s]+$`)
	nonAlphaNum    = regexp.MustCompile(`[^a-z0-9]+`)
	tokenDelimiter = regexp.MustCompile(`[\s\d#\-]+`)
)

// entitySuffixes are trailing business-entity words that never distinguish
// one merchant from another.
var entitySuffixes = map[string]struct{}{
	"inc":      {},
	"ltd":      {},
	"llc":      {},
	"corp":     {},
	"co":       {},
	"store":    {},
	"location": {},
}

type similarityGrouper struct{}

// NewSimilarityGrouper creates a merchant similarity grouping service
func NewSimilarityGrouper() SimilarityGrouperInterface {
	return &similarityGrouper{}
}

// GroupKey derives the clustering key for one raw merchant name: lowercase,
// trailing digit/hash/hyphen runs stripped, trailing entity words stripped,
// remaining non-alphanumerics removed. Keys are internal and never shown to
// the user.
func GroupKey(raw string) string {
	key := strings.ToLower(strings.TrimSpace(raw))
	key = trailingJunk.ReplaceAllString(key, "")

	for {
		fields := strings.Fields(key)
		if len(fields) < 2 {
			break
		}
		if _, ok := entitySuffixes[strings.Trim(fields[len(fields)-1], ".")]; !ok {
			break
		}
		key = strings.Join(fields[:len(fields)-1], " ")
		key = trailingJunk.ReplaceAllString(key, "")
	}

	return nonAlphaNum.ReplaceAllString(key, "")
}

// ProposeGroups clusters merchants sharing an identical key. Only clusters
// with more than one raw variant become groups; everything else is left for
// manual handling. Output is deterministic for a given input slice: groups
// sort by transaction count descending with first-encounter order breaking
// ties, and so do members within a group.
func (g *similarityGrouper) ProposeGroups(counts []models.MerchantCount) []models.MerchantGroup {
	clusters := make(map[string][]models.MerchantCount)
	keys := make([]string, 0)

	for _, mc := range counts {
		key := GroupKey(mc.Raw)
		if key == "" {
			continue
		}
		if _, seen := clusters[key]; !seen {
			keys = append(keys, key)
		}
		clusters[key] = append(clusters[key], mc)
	}

	groups := make([]models.MerchantGroup, 0)
	for _, key := range keys {
		members := clusters[key]
		if len(members) < 2 {
			continue
		}

		sorted := make([]models.MerchantCount, len(members))
		copy(sorted, members)
		sort.SliceStable(sorted, func(i, j int) bool {
			return sorted[i].Count > sorted[j].Count
		})

		total := 0
		for _, m := range sorted {
			total += m.Count
		}

		groups = append(groups, models.MerchantGroup{
			Name:    displayName(sorted[0].Raw),
			Members: sorted,
			Count:   total,
			Total:   decimal.Zero,
		})
	}

	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Count > groups[j].Count
	})
	return groups
}

// SuggestMerges pairs proposed groups whose keys are within a small edit
// distance of each other. Suggestions are advisory only.
func (g *similarityGrouper) SuggestMerges(groups []models.MerchantGroup) []models.MergeSuggestion {
	keys := make([]string, len(groups))
	for i, group := range groups {
		if len(group.Members) > 0 {
			keys[i] = GroupKey(group.Members[0].Raw)
		} else {
			keys[i] = GroupKey(group.Name)
		}
	}

	suggestions := make([]models.MergeSuggestion, 0)
	for i := 0; i < len(groups); i++ {
		for j := i + 1; j < len(groups); j++ {
			if keys[i] == "" || keys[j] == "" || keys[i] == keys[j] {
				continue
			}
			distance := levenshtein.ComputeDistance(keys[i], keys[j])
			if distance <= maxMergeDistance {
				suggestions = append(suggestions, models.MergeSuggestion{
					Left:     groups[i].Name,
					Right:    groups[j].Name,
					Distance: distance,
				})
			}
		}
	}
	return suggestions
}

// displayName takes the first whitespace, digit, hash or hyphen delimited
// token of a raw name. The highest-count member of a cluster donates it.
func displayName(raw string) string {
	for _, token := range tokenDelimiter.Split(strings.TrimSpace(raw), -1) {
		if token != "" {
			return token
		}
	}
	return strings.TrimSpace(raw)
}
