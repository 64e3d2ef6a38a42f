package destroy

import (
	"errors"
	"fmt"

	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/util/naming"
)

// Phase names, also used as report keys.
const (
	PhaseDeleteTenant    = "delete-tenant"
	PhaseDeleteKey       = "delete-signing-key"
	PhaseDeleteAdminUser = "delete-admin-user"

	PhaseLookupTenant    = "lookup-tenant"
	PhaseLookupKey       = "lookup-signing-key"
	PhaseLookupAdminUser = "lookup-admin-user"
)

// ErrNotFound is reported by lookups that matched nothing.
var ErrNotFound = errors.New("not found")

// Provisioner handles teardown.
type Provisioner struct{}

// NewProvisioner creates a new destroy provisioner.
func NewProvisioner() *Provisioner {
	return &Provisioner{}
}

// Phases returns the deletion phases in execution order.
func (p *Provisioner) Phases() []provisioning.Phase {
	return []provisioning.Phase{
		deletePhase{
			name:         PhaseDeleteTenant,
			resourceType: "tenant",
			id:           func(s *provisioning.State) string { return s.TenantID },
			del:          func(ctx *provisioning.Context, id string) error { return ctx.Client.DeleteTenant(ctx, id) },
		},
		deletePhase{
			name:         PhaseDeleteKey,
			resourceType: "key",
			id:           func(s *provisioning.State) string { return s.SigningKeyID },
			del:          func(ctx *provisioning.Context, id string) error { return ctx.Client.DeleteKey(ctx, id) },
		},
		deletePhase{
			name:         PhaseDeleteAdminUser,
			resourceType: "admin user",
			id:           func(s *provisioning.State) string { return s.AdminUserID },
			del:          func(ctx *provisioning.Context, id string) error { return ctx.Client.DeleteUser(ctx, id) },
		},
	}
}

// Provision deletes the tenant, signing key and admin user recorded in
// ctx.State. The returned error is non-nil only when the run was aborted.
func (p *Provisioner) Provision(ctx *provisioning.Context) (*provisioning.Report, error) {
	ctx.Observer.Printf("[Destroy] Starting teardown for: %s", ctx.Config.AppName)
	return provisioning.RunPhases(ctx, p.Phases())
}

// Resolve looks up the tenant, signing key and admin user by the names
// setup would use and records their identifiers in ctx.State. Nothing is
// created. Resources that are not found stay empty.
func (p *Provisioner) Resolve(ctx *provisioning.Context) (*provisioning.Report, error) {
	ctx.Observer.Printf("[Destroy] Looking up resources for: %s", ctx.Config.AppName)
	return provisioning.RunPhases(ctx, []provisioning.Phase{
		lookupTenantPhase{},
		lookupKeyPhase{},
		lookupAdminUserPhase{},
	})
}

type deletePhase struct {
	name         string
	resourceType string
	id           func(*provisioning.State) string
	del          func(ctx *provisioning.Context, id string) error
}

func (d deletePhase) Name() string { return d.name }

func (d deletePhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	id := d.id(ctx.State)
	provisioning.LogResourceDeleting(ctx.Observer, d.name, d.resourceType, id)

	if err := d.del(ctx, id); err != nil {
		provisioning.LogResourceDeleteFailed(ctx.Observer, d.name, d.resourceType, id, err)
		return provisioning.Classify(err)
	}

	provisioning.LogResourceDeleted(ctx.Observer, d.name, d.resourceType, id)
	return provisioning.Resolved(id, false)
}

type lookupTenantPhase struct{}

func (lookupTenantPhase) Name() string { return PhaseLookupTenant }

func (lookupTenantPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	name := naming.Tenant(ctx.Config.AppName)
	tenant, err := ctx.Client.FindTenant(ctx, name)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseLookupTenant, "tenant", name, err)
		return provisioning.Classify(err)
	}
	if tenant == nil {
		return notFound(ctx, PhaseLookupTenant, "tenant", name)
	}

	ctx.State.TenantID = tenant.ID
	ctx.Client.SetTenantID(tenant.ID)
	provisioning.LogResourceExists(ctx.Observer, PhaseLookupTenant, "tenant", name, tenant.ID)
	return provisioning.Resolved(tenant.ID, false)
}

type lookupKeyPhase struct{}

func (lookupKeyPhase) Name() string { return PhaseLookupKey }

func (lookupKeyPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	name := naming.SigningKey(ctx.Config.AppName)
	key, err := ctx.Client.FindSigningKey(ctx, name)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseLookupKey, "key", name, err)
		return provisioning.Classify(err)
	}
	if key == nil {
		return notFound(ctx, PhaseLookupKey, "key", name)
	}

	ctx.State.SigningKeyID = key.ID
	provisioning.LogResourceExists(ctx.Observer, PhaseLookupKey, "key", name, key.ID)
	return provisioning.Resolved(key.ID, false)
}

type lookupAdminUserPhase struct{}

func (lookupAdminUserPhase) Name() string { return PhaseLookupAdminUser }

func (lookupAdminUserPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	email := ctx.Config.AdminEmail
	user, err := ctx.Client.FindUser(ctx, email)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseLookupAdminUser, "admin user", email, err)
		return provisioning.Classify(err)
	}
	if user == nil {
		return notFound(ctx, PhaseLookupAdminUser, "admin user", email)
	}

	ctx.State.AdminUserID = user.ID
	provisioning.LogResourceExists(ctx.Observer, PhaseLookupAdminUser, "admin user", email, user.ID)
	return provisioning.Resolved(user.ID, false)
}

func notFound(ctx *provisioning.Context, phase, resourceType, name string) provisioning.StepResult {
	err := fmt.Errorf("%s %q: %w", resourceType, name, ErrNotFound)
	provisioning.LogResourceFailed(ctx.Observer, phase, resourceType, name, err)
	return provisioning.Unresolved(err)
}
