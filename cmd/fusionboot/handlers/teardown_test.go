package handlers

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/config/wizard"
	"github.com/imamik/fusionboot/internal/platform/fusionauth/fakes"
	"github.com/imamik/fusionboot/internal/util/naming"
)

func seedAll(srv *fakes.Server, app string) {
	srv.SeedTenant(naming.Tenant(app))
	srv.SeedKey(naming.SigningKey(app))
	srv.SeedUser(naming.AdminEmail(app))
}

func TestTeardown_Yes(t *testing.T) {
	srv := fakes.NewServer(t)
	_, errOut := stubEnv(t, fakeConfig(srv))
	seedAll(srv, "demo")

	err := Teardown(context.Background(), TeardownOptions{NonInteractive: true, Yes: true})
	require.NoError(t, err)

	tenants, keys, users := srv.Counts()
	assert.Zero(t, tenants)
	assert.Zero(t, keys)
	assert.Zero(t, users)
	assert.Zero(t, srv.Calls("POST /api/tenant"), "teardown never creates")
	assert.Zero(t, srv.Calls("POST /api/key/generate"), "teardown never creates")
	assert.Contains(t, errOut.String(), "3 resolved")
}

func TestTeardown_PartialLookup(t *testing.T) {
	srv := fakes.NewServer(t)
	stubEnv(t, fakeConfig(srv))
	srv.SeedTenant(naming.Tenant("demo"))

	err := Teardown(context.Background(), TeardownOptions{NonInteractive: true, Yes: true})
	require.NoError(t, err)

	assert.Equal(t, 1, srv.Calls("DELETE /api/tenant/{id}"))
	assert.Zero(t, srv.Calls("DELETE /api/key/{id}"))
	assert.Zero(t, srv.Calls("DELETE /api/user/{id}"))
}

func TestTeardown_RequiresConfirmationWithoutTerminal(t *testing.T) {
	srv := fakes.NewServer(t)
	stubEnv(t, fakeConfig(srv))
	seedAll(srv, "demo")

	err := Teardown(context.Background(), TeardownOptions{NonInteractive: true})
	assert.ErrorIs(t, err, ErrConfirmationRequired)

	tenants, _, _ := srv.Counts()
	assert.Equal(t, 1, tenants)
}

func TestTeardown_NothingFound(t *testing.T) {
	srv := fakes.NewServer(t)
	_, errOut := stubEnv(t, fakeConfig(srv))

	err := Teardown(context.Background(), TeardownOptions{NonInteractive: true})
	require.NoError(t, err)

	assert.Contains(t, errOut.String(), "Nothing to delete for demo")
}

func TestTeardown_InteractiveDeclined(t *testing.T) {
	srv := fakes.NewServer(t)
	_, errOut := stubEnv(t, fakeConfig(srv))
	seedAll(srv, "demo")

	isInteractive = func() bool { return true }
	runWizard = func(context.Context, *config.Config, wizard.Options) (*wizard.Answers, error) {
		return &wizard.Answers{}, nil
	}
	confirmTeardown = func(context.Context, wizard.Options) (bool, error) { return false, nil }

	err := Teardown(context.Background(), TeardownOptions{})
	require.NoError(t, err)

	assert.Zero(t, srv.Calls("DELETE /api/tenant/{id}"))
	assert.Contains(t, errOut.String(), "Teardown canceled")
}

func TestTeardown_InteractiveConfirmed(t *testing.T) {
	srv := fakes.NewServer(t)
	stubEnv(t, fakeConfig(srv))
	seedAll(srv, "demo")

	isInteractive = func() bool { return true }
	runWizard = func(context.Context, *config.Config, wizard.Options) (*wizard.Answers, error) {
		return &wizard.Answers{}, nil
	}
	confirmTeardown = func(context.Context, wizard.Options) (bool, error) { return true, nil }

	err := Teardown(context.Background(), TeardownOptions{})
	require.NoError(t, err)

	assert.Equal(t, 1, srv.Calls("DELETE /api/tenant/{id}"))
	assert.Equal(t, 1, srv.Calls("DELETE /api/user/{id}"))
}

func TestTeardown_TransportFailure(t *testing.T) {
	srv := fakes.NewServer(t)
	stubEnv(t, fakeConfig(srv))
	srv.Close()

	err := Teardown(context.Background(), TeardownOptions{NonInteractive: true, Yes: true})
	assert.ErrorContains(t, err, "teardown lookup failed")
}
