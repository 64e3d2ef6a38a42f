package setup

import (
	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/platform/fusionauth"
	"github.com/imamik/fusionboot/internal/provisioning"
	"github.com/imamik/fusionboot/internal/util/naming"
)

// Phase names, also used as report keys.
const (
	PhaseTenant      = "tenant"
	PhaseSigningKey  = "signing-key"
	PhaseAttachKey   = "attach-key"
	PhaseApplication = "application"
	PhaseAdminUser   = "admin-user"
	PhaseTheme       = "theme"
)

// TenantPhase resolves {app}-tenant and scopes the client to it.
type TenantPhase struct{}

func (TenantPhase) Name() string { return PhaseTenant }

func (TenantPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	name := naming.Tenant(ctx.Config.AppName)

	tenant, created, err := ctx.Client.EnsureTenant(ctx, name)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseTenant, "tenant", name, err)
		return provisioning.Classify(err)
	}

	ctx.State.TenantID = tenant.ID
	ctx.Client.SetTenantID(tenant.ID)
	provisioning.LogResourceEnsured(ctx.Observer, PhaseTenant, "tenant", name, tenant.ID, created)
	return provisioning.Resolved(tenant.ID, created)
}

// SigningKeyPhase resolves {app}-signing-key.
type SigningKeyPhase struct{}

func (SigningKeyPhase) Name() string { return PhaseSigningKey }

func (SigningKeyPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	name := naming.SigningKey(ctx.Config.AppName)

	key, created, err := ctx.Client.EnsureSigningKey(ctx, name)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseSigningKey, "key", name, err)
		return provisioning.Classify(err)
	}

	ctx.State.SigningKeyID = key.ID
	provisioning.LogResourceEnsured(ctx.Observer, PhaseSigningKey, "key", name, key.ID, created)
	return provisioning.Resolved(key.ID, created)
}

// AttachKeyPhase makes the tenant sign access and ID tokens with the
// signing key. It runs even when the key is unresolved, so the server
// rejects the empty key ID and the step reports unresolved.
type AttachKeyPhase struct{}

func (AttachKeyPhase) Name() string { return PhaseAttachKey }

func (AttachKeyPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	tenantID, keyID := ctx.State.TenantID, ctx.State.SigningKeyID

	tenant, err := ctx.Client.SetTenantSigningKey(ctx, tenantID, keyID)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseAttachKey, "tenant", tenantID, err)
		return provisioning.Classify(err)
	}

	ctx.Observer.Event(provisioning.Event{
		Type:     provisioning.EventResourceCreated,
		Phase:    PhaseAttachKey,
		Resource: tenant.ID,
		Message:  "tenant patched",
		Fields:   map[string]string{"accessTokenKeyId": keyID, "idTokenKeyId": keyID},
	})
	return provisioning.Resolved(tenant.ID, false)
}

// ApplicationPhase resolves {app}-app and records its OAuth credentials.
type ApplicationPhase struct{}

func (ApplicationPhase) Name() string { return PhaseApplication }

func (ApplicationPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	spec := fusionauth.ApplicationSpec{
		Name:         naming.Application(ctx.Config.AppName),
		TenantID:     ctx.State.TenantID,
		Origin:       ctx.Config.Endpoint,
		CallbackURL:  naming.CallbackURL(ctx.Config.Endpoint),
		SigningKeyID: ctx.State.SigningKeyID,
		Roles:        []string{config.AdminRole},
	}

	app, created, err := ctx.Client.EnsureApplication(ctx, spec)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseApplication, "app", spec.Name, err)
		return provisioning.Classify(err)
	}

	ctx.State.ApplicationID = app.ID
	ctx.State.ClientID = app.ClientID()
	ctx.State.ClientSecret = app.ClientSecret()
	provisioning.LogResourceEnsured(ctx.Observer, PhaseApplication, "app", spec.Name, app.ID, created)
	return provisioning.Resolved(app.ID, created)
}

// AdminUserPhase resolves the admin user by email and registers it with
// the resolved application.
type AdminUserPhase struct{}

func (AdminUserPhase) Name() string { return PhaseAdminUser }

func (AdminUserPhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	spec := fusionauth.AdminUserSpec{
		Email:         ctx.Config.AdminEmail,
		Password:      ctx.Config.AdminPassword,
		ApplicationID: ctx.State.ApplicationID,
		Roles:         []string{config.AdminRole},
	}

	user, created, err := ctx.Client.EnsureAdminUser(ctx, spec)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseAdminUser, "admin user", spec.Email, err)
		return provisioning.Classify(err)
	}

	ctx.State.AdminUserID = user.ID
	provisioning.LogResourceEnsured(ctx.Observer, PhaseAdminUser, "admin user", spec.Email, user.ID, created)
	return provisioning.Resolved(user.ID, created)
}

// ThemePhase resolves {app}-theme, copying the source theme when absent.
type ThemePhase struct{}

func (ThemePhase) Name() string { return PhaseTheme }

func (ThemePhase) Provision(ctx *provisioning.Context) provisioning.StepResult {
	name := naming.Theme(ctx.Config.AppName)

	theme, created, err := ctx.Client.EnsureTheme(ctx, name, ctx.Config.SourceThemeID)
	if err != nil {
		provisioning.LogResourceFailed(ctx.Observer, PhaseTheme, "theme", name, err)
		return provisioning.Classify(err)
	}

	ctx.State.ThemeID = theme.ID
	provisioning.LogResourceEnsured(ctx.Observer, PhaseTheme, "theme", name, theme.ID, created)
	return provisioning.Resolved(theme.ID, created)
}
