package services

import (
	"context"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/agnivade/levenshtein"
	"golang.org/x/time/rate"
)

// semanticSkipDistance bounds how far the regex pass must have moved a name
// before the semantic cleaner is skipped. A result within this edit distance
// of the input means the rules did not materially change it, so the model
// gets a chance to do better.
const semanticSkipDistance = 3

// semanticBurst lets a few semantic calls through back to back before the
// inter-call delay kicks in.
const semanticBurst = 3

// cleanRule is one entry of the ordered rule table. Replacement is either a
// fixed brand name or a template referencing capture groups.
type cleanRule struct {
	pattern     *regexp.Regexp
	replacement string
}

// initCleanRules builds the ordered rule table. The first rule whose pattern
// matches is applied and normalization stops; a matched name never falls
// through to later rules. Order is load-bearing: known-brand rules come
// before the generic prefix and suffix strips.
func initCleanRules() []cleanRule {
	specs := []struct {
		pattern     string
		replacement string
	}{
		// Known brands normalize to a fixed display name regardless of
		// store number or location suffix.
		{`(?i)^wal[\s\-]*mart\b.*$`, "Wal-Mart"},
		{`(?i)^mcdonald'?s\b.*$`, "McDonald's"},
		{`(?i)^tim\s*hortons?\b.*$`, "Tim Hortons"},
		{`(?i)^starbucks\b.*$`, "Starbucks"},
		{`(?i)^(?:amazon|amzn)\b.*$`, "Amazon"},
		{`(?i)^costco\b.*$`, "Costco"},
		{`(?i)^shoppers\s*drug\s*mart\b.*$`, "Shoppers Drug Mart"},
		{`(?i)^safeway\b.*$`, "Safeway"},
		{`(?i)^7[\s\-]*eleven\b.*$`, "7-Eleven"},
		{`(?i)^shell\b.*$`, "Shell"},
		{`(?i)^esso\b.*$`, "Esso"},
		{`(?i)^uber\s*eats\b.*$`, "Uber Eats"},
		{`(?i)^uber\b.*$`, "Uber"},
		{`(?i)^lyft\b.*$`, "Lyft"},
		{`(?i)^netflix\b.*$`, "Netflix"},
		{`(?i)^spotify\b.*$`, "Spotify"},
		{`(?i)^apple(?:\.com)?\b.*$`, "Apple"},
		{`(?i)^google\b.*$`, "Google"},

		// Payment-processor prefixes wrap the real merchant name.
		{`(?i)^(?:sq|tst|py)\s*\*\s*(.+)$`, "$1"},
		{`(?i)^paypal\s*\*\s*(.+)$`, "$1"},

		// Generic trailing junk: store numbers, then country markers.
		{`^(.*\S)[\s#\-]+\d{2,}$`, "$1"},
		{`(?i)^(.*\S)\s+(?:USA|US|CANADA|CAN)$`, "$1"},
	}

	rules := make([]cleanRule, 0, len(specs))
	for _, s := range specs {
		rules = append(rules, cleanRule{
			pattern:     regexp.MustCompile(s.pattern),
			replacement: s.replacement,
		})
	}
	return rules
}

type nameNormalizer struct {
	rules    []cleanRule
	semantic SemanticCleanerInterface
	breaker  CircuitBreakerInterface
	limiter  *rate.Limiter
	audit    AuditLoggerInterface
	metrics  MetricsRecorderInterface

	mu    sync.Mutex
	cache map[string]string
}

// NewNameNormalizer creates a merchant name normalization service. The
// semantic cleaner is optional; pass nil to run on the regex rules alone.
// batchInterval paces semantic calls so bulk cleans respect provider rate
// limits; it has no effect on the regex path.
func NewNameNormalizer(
	semantic SemanticCleanerInterface,
	breaker CircuitBreakerInterface,
	audit AuditLoggerInterface,
	metrics MetricsRecorderInterface,
	batchInterval time.Duration,
) NameNormalizerInterface {
	var limiter *rate.Limiter
	if semantic != nil && batchInterval > 0 {
		limiter = rate.NewLimiter(rate.Every(batchInterval), semanticBurst)
	}
	return &nameNormalizer{
		rules:    initCleanRules(),
		semantic: semantic,
		breaker:  breaker,
		limiter:  limiter,
		audit:    audit,
		metrics:  metrics,
		cache:    make(map[string]string),
	}
}

// Clean normalizes one raw merchant string. Results are memoized per
// distinct input, so repeated lookups for the same merchant cost one map
// read. Blank input comes back trimmed to empty.
func (n *nameNormalizer) Clean(ctx context.Context, raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return trimmed
	}

	n.mu.Lock()
	if cached, ok := n.cache[trimmed]; ok {
		n.mu.Unlock()
		return cached
	}
	n.mu.Unlock()

	result := n.normalize(ctx, trimmed)

	n.mu.Lock()
	n.cache[trimmed] = result
	n.mu.Unlock()

	return result
}

// CleanBatch normalizes a set of raw strings, performing exactly one
// normalization per unique input no matter how many rows share it.
func (n *nameNormalizer) CleanBatch(ctx context.Context, raws []string) map[string]string {
	results := make(map[string]string, len(raws))
	for _, raw := range raws {
		if _, done := results[raw]; done {
			continue
		}
		results[raw] = n.Clean(ctx, raw)
	}
	return results
}

func (n *nameNormalizer) normalize(ctx context.Context, trimmed string) string {
	result := n.applyRules(trimmed)

	if n.semantic == nil {
		return result
	}
	if levenshtein.ComputeDistance(trimmed, result) > semanticSkipDistance {
		// The rules already reshaped the name; the model call is not
		// worth its latency.
		return result
	}

	cleaned, err := n.cleanSemantic(ctx, trimmed)
	if err != nil || strings.TrimSpace(cleaned) == "" {
		// Augmentation failures never surface; the regex result stands.
		return result
	}
	return strings.TrimSpace(cleaned)
}

// applyRules runs the ordered rule table, first match wins.
func (n *nameNormalizer) applyRules(name string) string {
	for _, rule := range n.rules {
		if rule.pattern.MatchString(name) {
			return strings.TrimSpace(rule.pattern.ReplaceAllString(name, rule.replacement))
		}
	}
	return name
}

func (n *nameNormalizer) cleanSemantic(ctx context.Context, raw string) (string, error) {
	if n.breaker != nil && n.breaker.IsOpen() {
		return "", ErrCircuitBreakerOpen
	}
	if n.limiter != nil {
		if err := n.limiter.Wait(ctx); err != nil {
			return "", err
		}
	}

	start := time.Now()
	cleaned, err := n.semantic.CleanName(ctx, raw)
	if n.metrics != nil {
		n.metrics.RecordProcessingTime("semantic_clean", time.Since(start))
	}

	if err != nil {
		if n.breaker != nil {
			n.breaker.RecordFailure()
		}
		if n.metrics != nil {
			n.metrics.IncrementCounter("semantic_clean_failures", map[string]string{
				"provider": n.semantic.Provider(),
			})
		}
		if n.audit != nil {
			n.audit.LogSemanticCleanFailed(ctx, n.semantic.Provider(), raw, err.Error())
		}
		return "", err
	}

	if n.breaker != nil {
		n.breaker.RecordSuccess()
	}
	if n.metrics != nil {
		n.metrics.IncrementCounter("semantic_clean_success", map[string]string{
			"provider": n.semantic.Provider(),
		})
	}
	if n.audit != nil {
		n.audit.LogSemanticCleanApplied(ctx, n.semantic.Provider(), raw, cleaned)
	}
	return cleaned, nil
}
