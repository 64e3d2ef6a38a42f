package setup

import (
	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/provisioning"
)

// Provisioner runs the setup phases.
type Provisioner struct{}

// NewProvisioner creates a new setup provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Phases returns the ordered phases for cfg. The theme phase is left out
// when cfg.SkipTheme is set.
func (p *Provisioner) Phases(cfg *config.Config) []provisioning.Phase {
	phases := []provisioning.Phase{
		TenantPhase{},
		SigningKeyPhase{},
		AttachKeyPhase{},
		ApplicationPhase{},
		AdminUserPhase{},
	}
	if !cfg.SkipTheme {
		phases = append(phases, ThemePhase{})
	}
	return phases
}

// Provision resolves every resource, mutating ctx.State. The returned error
// is non-nil only when the run was aborted.
func (p *Provisioner) Provision(ctx *provisioning.Context) (*provisioning.Report, error) {
	ctx.Observer.Printf("Starting creation for %s", ctx.Config.AppName)
	return provisioning.RunPhases(ctx, p.Phases(ctx.Config))
}
