package complexity

import (
	"strings"

	"agent-activity/domain/ticket"

	lo "github.com/samber/lo"
)

// Rule names which branch of the classifier fired.
type Rule string

const (
	RuleNone                 Rule = ""
	RuleUAP                  Rule = "uap"
	RuleMobileReconciliation Rule = "mobile_reconciliation"
	RuleCallKeyword          Rule = "call_keyword"
	RuleQuickAction          Rule = "quick_action"
	RuleNoEffortAction       Rule = "no_effort_action"
	RuleAdminAction          Rule = "admin_action"
	RuleHighComplexity       Rule = "high_complexity_product"
	RuleDefault              Rule = "default"
)

// Result is the outcome of classifying one ticket.
type Result struct {
	Rule   Rule
	Score  float64
	Source string
}

// Classifier scores tickets. It is read-only after construction.
type Classifier struct {
	keywords        []string
	quickActions    []string
	noEffortActions []string
	adminActions    []string
	products        map[string]struct{}
}

// NewClassifier builds a classifier from rules, filling empty tables with the defaults.
func NewClassifier(rules Rules) *Classifier {
	rules = rules.WithDefaults()
	return &Classifier{
		keywords:        lo.Uniq(lo.Map(rules.SubjectKeywords, func(k string, _ int) string { return strings.ToLower(k) })),
		quickActions:    append([]string(nil), rules.QuickActions...),
		noEffortActions: append([]string(nil), rules.NoEffortActions...),
		adminActions:    append([]string(nil), rules.AdminActions...),
		products:        lo.SliceToMap(rules.HighComplexityProducts, func(p string) (string, struct{}) { return p, struct{}{} }),
	}
}

// Classify applies the rules in order and returns the first match.
// ok is false when group or subject is absent.
func (c *Classifier) Classify(group, subject, product, action string) (Result, bool) {
	if strings.TrimSpace(group) == "" || strings.TrimSpace(subject) == "" {
		return Result{}, false
	}
	tokens := lo.Map(strings.Split(group, ","), func(g string, _ int) string { return strings.TrimSpace(g) })

	// UAP is checked before Mobile Reconciliation, so a group carrying both scores as UAP.
	switch {
	case lo.Contains(tokens, GroupUAP):
		return Result{Rule: RuleUAP, Score: ScoreUAP, Source: group}, true
	case lo.Contains(tokens, GroupMobileReconciliation):
		return Result{Rule: RuleMobileReconciliation, Score: ScoreMobileReconciliation, Source: group}, true
	case containsAnyFold(subject, c.keywords):
		return Result{Rule: RuleCallKeyword, Score: ScoreCallKeyword, Source: subject}, true
	case action != "" && containsAny(action, c.quickActions):
		return Result{Rule: RuleQuickAction, Score: ScoreQuickAction, Source: action}, true
	case action != "" && containsAny(action, c.noEffortActions):
		return Result{Rule: RuleNoEffortAction, Score: ScoreNoEffortAction, Source: action}, true
	case action != "" && containsAny(action, c.adminActions):
		return Result{Rule: RuleAdminAction, Score: ScoreAdminAction, Source: action}, true
	case c.isHighComplexity(product):
		return Result{Rule: RuleHighComplexity, Score: ScoreHighComplexity, Source: product}, true
	default:
		return Result{Rule: RuleDefault, Score: ScoreDefault, Source: subject}, true
	}
}

// ClassifyRecord classifies r and attaches score, category and source.
func (c *Classifier) ClassifyRecord(r ticket.Record) ticket.Enriched {
	res, ok := c.Classify(r.Group, r.Subject, r.Product, r.ActionTaken)
	if !ok {
		return ticket.Enriched{Record: r}
	}
	score := res.Score
	return ticket.Enriched{
		Record:   r,
		Score:    &score,
		Category: Categorize(score),
		Source:   res.Source,
	}
}

func (c *Classifier) isHighComplexity(product string) bool {
	_, ok := c.products[product]
	return ok
}

// Categorize maps a score to its bucket.
func Categorize(score float64) ticket.Category {
	switch {
	case score < 15:
		return ticket.Low
	case score <= 25:
		return ticket.Medium
	default:
		return ticket.High
	}
}

// case-sensitive
func containsAny(s string, needles []string) bool {
	return lo.ContainsBy(needles, func(n string) bool { return strings.Contains(s, n) })
}

// needles must already be lower-cased
func containsAnyFold(s string, needles []string) bool {
	ls := strings.ToLower(s)
	return lo.ContainsBy(needles, func(n string) bool { return strings.Contains(ls, n) })
}
