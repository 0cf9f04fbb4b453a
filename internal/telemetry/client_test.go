package telemetry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_DisabledByEnvVar(t *testing.T) {
	original := PostHogAPIKey
	PostHogAPIKey = "phc_test"
	defer func() { PostHogAPIKey = original }()
	t.Setenv(EnvTrackingEnabled, "false")

	client := New()
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient when disabled")
}

func TestNew_DisabledWithoutAPIKey(t *testing.T) {
	original := PostHogAPIKey
	PostHogAPIKey = ""
	defer func() { PostHogAPIKey = original }()

	client := New()
	_, ok := client.(*noopClient)
	assert.True(t, ok, "Should return noopClient without API key")
	assert.False(t, IsEnabled())
}

func TestNoopClient_DoesNotPanic(t *testing.T) {
	client := Noop()

	client.Track("test_event", map[string]interface{}{"key": "value"})
	client.TrackCLICommandExecuted("font", true, 12)
	client.TrackCLIError("font", "configuration_error")
	client.TrackFontSizeComputed("cli", false)
	client.TrackTokensExported("css", 49)
	client.TrackDemoStarted("punk", 120)
	client.TrackMCPToolCalled("typekit_font_size", 3, true)
	client.TrackAppExited("cli", 40)
	client.Close()

	assert.Empty(t, client.GetTrackingID())
}

func TestBaseProperties(t *testing.T) {
	props := baseProperties()

	for _, key := range []string{"os", "arch", "version", "prerelease", "dev_build"} {
		assert.Contains(t, props, key)
	}
}
