package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/imamik/fusionboot/internal/config"
)

func TestAnswersApply(t *testing.T) {
	cfg := &config.Config{AppName: "from-env", APIKey: "env-key"}
	answers := &Answers{
		AppName:  "",
		Endpoint: "http://fusionauth:9011",
	}

	answers.Apply(cfg)

	assert.Equal(t, "from-env", cfg.AppName, "blank answer keeps the env default")
	assert.Equal(t, "env-key", cfg.APIKey)
	assert.Equal(t, "http://fusionauth:9011", cfg.Endpoint)
}

func TestAppNameValidator(t *testing.T) {
	withDefault := appNameValidator("iron-pixel")
	assert.NoError(t, withDefault(""))
	assert.NoError(t, withDefault("other-app"))
	assert.NoError(t, withDefault("IronPixel"))
	assert.ErrorIs(t, withDefault("bad\tname"), config.ErrAppNameInvalid)

	withoutDefault := appNameValidator("")
	assert.ErrorIs(t, withoutDefault(""), config.ErrAppNameRequired)
	assert.NoError(t, withoutDefault("iron-pixel"))
}

func TestValidateEndpoint(t *testing.T) {
	assert.NoError(t, validateEndpoint(""))
	assert.NoError(t, validateEndpoint("http://localhost:9011"))
	assert.ErrorIs(t, validateEndpoint("localhost:9011"), errEndpointScheme)
	assert.ErrorIs(t, validateEndpoint("http://"), config.ErrEndpointInvalid)
}

func TestAppNameDescription(t *testing.T) {
	assert.Contains(t, appNameDescription(""), "my-app-tenant")
	assert.Contains(t, appNameDescription("iron-pixel"), "iron-pixel-tenant")
}

func TestPlaceholder(t *testing.T) {
	assert.Equal(t, "current", placeholder("current", "fallback"))
	assert.Equal(t, "fallback", placeholder("", "fallback"))
}
