package provisioning

import (
	"context"

	"github.com/imamik/fusionboot/internal/config"
	"github.com/imamik/fusionboot/internal/platform/fusionauth"
)

// Context wraps all dependencies and state needed for a provisioning phase.
type Context struct {
	context.Context
	Config   *config.Config
	State    *State
	Client   fusionauth.IdentityManager
	Observer Observer
}

// NewContext creates a new provisioning context. A nil observer falls back
// to a console observer on stderr. cfg must already be fully resolved.
func NewContext(
	ctx context.Context,
	cfg *config.Config,
	client fusionauth.IdentityManager,
	observer Observer,
) *Context {
	if observer == nil {
		observer = NewConsoleObserver(nil)
	}
	return &Context{
		Context:  ctx,
		Config:   cfg,
		State:    NewState(),
		Client:   client,
		Observer: observer,
	}
}
