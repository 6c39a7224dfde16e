package complexity

// Rules holds the keyword and product tables the classifier matches against.
// A zero-length table in a loaded config falls back to the default table.
type Rules struct {
	SubjectKeywords        []string `yaml:"subject_keywords"`
	QuickActions           []string `yaml:"quick_actions"`
	NoEffortActions        []string `yaml:"no_effort_actions"`
	AdminActions           []string `yaml:"admin_actions"`
	HighComplexityProducts []string `yaml:"high_complexity_products"`
}

// Group tokens with a fixed score.
const (
	GroupUAP                  = "UAP"
	GroupMobileReconciliation = "Mobile Reconciliation"
)

// Scores per rule, in evaluation order.
const (
	ScoreUAP                  = 2.0
	ScoreMobileReconciliation = 5.0
	ScoreCallKeyword          = 0.0
	ScoreQuickAction          = 15.0
	ScoreNoEffortAction       = 1.0
	ScoreAdminAction          = 20.0
	ScoreHighComplexity       = 75.0
	ScoreDefault              = 25.0
)

// DefaultRules returns a fresh copy of the built-in tables.
func DefaultRules() Rules {
	return Rules{
		SubjectKeywords: []string{
			"Voicemail",
			"voicemail",
			"voice mail",
			"vm",
			"Call with caller",
			"Call With Caller",
			"Call With",
			"Call with Caller",
			"Abandoned Call",
			"Abandoned call",
			"Missed Call",
			"call back",
			"CallBack",
			"callback",
			"Call Back",
			"Call back",
			"Missed call",
			"Conversation with",
			"Unknown caller",
		},
		QuickActions: []string{
			"Password Reset",
			"Errant Fax",
			"Unlocked Account",
			"Create",
		},
		NoEffortActions: []string{
			"No Action Taken",
			"Automation",
			"Meter Reading",
		},
		AdminActions: []string{
			"Terminated Employee Process",
			"Account Created",
			"Access Change",
			"Add/Remove from Distribution List",
			"Account Change",
			"Updated DL Group",
			"Added License",
			"Add to Allowlist",
			"Account Locked",
			"HCHB",
			"Contractor/Volunteer Set-Up",
			"Day 1 Concierge",
		},
		HighComplexityProducts: []string{
			"ADUC", "Exchange", "Fuze", "HCHB", "MOBI",
			"Printer/Scanner/Copier", "Teams", "Zendesk",
			"Windows", "Citrix", "Intune", "Network",
		},
	}
}

// WithDefaults fills every empty table from DefaultRules.
func (r Rules) WithDefaults() Rules {
	d := DefaultRules()
	if len(r.SubjectKeywords) == 0 {
		r.SubjectKeywords = d.SubjectKeywords
	}
	if len(r.QuickActions) == 0 {
		r.QuickActions = d.QuickActions
	}
	if len(r.NoEffortActions) == 0 {
		r.NoEffortActions = d.NoEffortActions
	}
	if len(r.AdminActions) == 0 {
		r.AdminActions = d.AdminActions
	}
	if len(r.HighComplexityProducts) == 0 {
		r.HighComplexityProducts = d.HighComplexityProducts
	}
	return r
}
