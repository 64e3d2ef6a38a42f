package provisioning

// State holds the identifiers resolved by provisioning phases.
// It is progressively populated as each phase completes and is passed
// to subsequent phases that need earlier results. Empty means unresolved.
type State struct {
	TenantID     string
	SigningKeyID string

	ApplicationID string
	ClientID      string
	ClientSecret  string

	AdminUserID string
	ThemeID     string
}

// NewState creates an empty provisioning state.
func NewState() *State {
	return &State{}
}
