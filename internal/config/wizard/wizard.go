package wizard

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/huh"

	"github.com/imamik/fusionboot/internal/config"
)

// Answers holds the raw prompt answers. Blank answers mean "use the default".
type Answers struct {
	AppName       string
	APIKey        string
	Endpoint      string
	AdminEmail    string
	AdminPassword string
}

// Options control how forms are rendered.
type Options struct {
	// Accessible renders forms as plain line prompts (non-TTY input).
	Accessible bool
	Input      io.Reader
	Output     io.Writer
}

// Apply copies non-blank answers onto cfg.
func (a *Answers) Apply(cfg *config.Config) {
	cfg.Merge(config.Config{
		AppName:       a.AppName,
		APIKey:        a.APIKey,
		Endpoint:      a.Endpoint,
		AdminEmail:    a.AdminEmail,
		AdminPassword: a.AdminPassword,
	})
}

// RunWizard prompts for the connection settings. Values already present in
// current are shown as defaults and kept when the prompt is left blank.
func RunWizard(ctx context.Context, current *config.Config, opts Options) (*Answers, error) {
	answers := &Answers{}

	if err := runApplicationGroup(ctx, current, answers, opts); err != nil {
		return nil, fmt.Errorf("application: %w", err)
	}

	if err := runConnectionGroup(ctx, current, answers, opts); err != nil {
		return nil, fmt.Errorf("connection: %w", err)
	}

	if err := runAdminGroup(ctx, current, answers, opts); err != nil {
		return nil, fmt.Errorf("admin user: %w", err)
	}

	return answers, nil
}

// ConfirmTeardown asks whether everything that was just provisioned should
// be deleted again. The default answer is no.
func ConfirmTeardown(ctx context.Context, opts Options) (bool, error) {
	confirmed := false

	err := newForm(opts,
		huh.NewGroup(
			huh.NewConfirm().
				Title("Delete Everything?").
				Description("Deletes the tenant, signing key and admin user").
				Affirmative("Yes").
				Negative("No").
				Value(&confirmed),
		),
	).RunWithContext(ctx)
	if err != nil {
		return false, err
	}

	return confirmed, nil
}

// newForm applies the rendering options to a form.
func newForm(opts Options, groups ...*huh.Group) *huh.Form {
	form := huh.NewForm(groups...).WithAccessible(opts.Accessible)
	if opts.Input != nil {
		form = form.WithInput(opts.Input)
	}
	if opts.Output != nil {
		form = form.WithOutput(opts.Output)
	}
	return form
}
