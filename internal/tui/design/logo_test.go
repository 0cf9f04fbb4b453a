package design

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderLogo(t *testing.T) {
	assert.Contains(t, RenderLogo(MinLogoHeight-1), TypekitLogoMinimal)

	full := RenderLogo(MinLogoHeight)
	assert.Contains(t, full, TypekitTagline)
	assert.NotContains(t, full, TypekitLogoMinimal)
}
