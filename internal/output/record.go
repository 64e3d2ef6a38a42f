package output

import (
	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/util/keygen"
)

// Record is the set of variables emitted at the end of a run.
// Field order is the JSON output order.
type Record struct {
	ClientID     string `json:"AUTH_FUSIONAUTH_CLIENT_ID" yaml:"AUTH_FUSIONAUTH_CLIENT_ID"`
	ClientSecret string `json:"AUTH_FUSIONAUTH_CLIENT_SECRET" yaml:"AUTH_FUSIONAUTH_CLIENT_SECRET"`
	TenantID     string `json:"AUTH_FUSIONAUTH_TENANT_ID" yaml:"AUTH_FUSIONAUTH_TENANT_ID"`
	Issuer       string `json:"AUTH_FUSIONAUTH_ISSUER" yaml:"AUTH_FUSIONAUTH_ISSUER"`
	Secret       string `json:"AUTH_SECRET" yaml:"AUTH_SECRET"`
}

// secretFunc generates AUTH_SECRET. Replaced in tests.
var secretFunc = keygen.SessionSecret

// NewRecord builds the record from resolved state. The issuer is the
// FusionAuth endpoint. A fresh AUTH_SECRET is generated on every call.
// Unresolved identifiers are emitted as empty strings.
func NewRecord(state *provisioning.State, issuer string) (*Record, error) {
	secret, err := secretFunc()
	if err != nil {
		return nil, err
	}

	return &Record{
		ClientID:     state.ClientID,
		ClientSecret: state.ClientSecret,
		TenantID:     state.TenantID,
		Issuer:       issuer,
		Secret:       secret,
	}, nil
}

// Vars returns the record as name/value pairs in JSON field order.
func (r *Record) Vars() [][2]string {
	return [][2]string{
		{"AUTH_FUSIONAUTH_CLIENT_ID", r.ClientID},
		{"AUTH_FUSIONAUTH_CLIENT_SECRET", r.ClientSecret},
		{"AUTH_FUSIONAUTH_TENANT_ID", r.TenantID},
		{"AUTH_FUSIONAUTH_ISSUER", r.Issuer},
		{"AUTH_SECRET", r.Secret},
	}
}
