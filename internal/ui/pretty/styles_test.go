package pretty

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsColorEnabled(t *testing.T) {
	assert.True(t, IsColorEnabled("always", &bytes.Buffer{}))
	assert.False(t, IsColorEnabled("never", os.Stdout))

	// Auto mode with a non-file writer stays plain.
	assert.False(t, IsColorEnabled("auto", &bytes.Buffer{}))
}

func TestIsColorEnabled_NoColorEnv(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	assert.False(t, IsColorEnabled("auto", os.Stdout))

	// Explicit "always" wins over NO_COLOR.
	assert.True(t, IsColorEnabled("always", os.Stdout))
}

func TestNewStyles(t *testing.T) {
	t.Parallel()

	styles := NewStyles(false)
	assert.Equal(t, "plain", styles.Error.Render("plain"))
	assert.Equal(t, "plain", styles.FilePath.Render("plain"))

	assert.NotNil(t, NewStyles(true))
}
