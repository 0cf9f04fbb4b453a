package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setVersion(t *testing.T, v string) {
	t.Helper()
	original := Version
	t.Cleanup(func() {
		Version = original
		resetParsedVersion()
	})
	resetParsedVersion()
	Version = v
}

func TestParsed(t *testing.T) {
	tests := []struct {
		version string
		valid   bool
	}{
		{"v1.0.0", true},
		{"1.2.3", true},
		{"v0.3.0-rc.1+abc", true},
		{"dev", false},
		{"", false},
		{"v1.0.0.0", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			setVersion(t, tt.version)
			if tt.valid {
				assert.NotNil(t, Parsed())
				assert.False(t, IsDevBuild())
			} else {
				assert.Nil(t, Parsed())
				assert.True(t, IsDevBuild())
			}
		})
	}
}

func TestIsPrerelease(t *testing.T) {
	tests := []struct {
		version string
		want    bool
	}{
		{"v1.0.0", false},
		{"v1.0.0-beta.1", true},
		{"v1.0.0+build123", false},
		{"dev", false},
	}

	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			setVersion(t, tt.version)
			assert.Equal(t, tt.want, IsPrerelease())
		})
	}
}

func TestSatisfies(t *testing.T) {
	setVersion(t, "v1.4.0")

	ok, err := Satisfies(">= 1.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Satisfies("< 1.0")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Satisfies("not a constraint")
	assert.Error(t, err)
}

func TestSatisfies_DevBuild(t *testing.T) {
	setVersion(t, "dev")

	ok, err := Satisfies(">= 9.0")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestShortCommit(t *testing.T) {
	original := Commit
	t.Cleanup(func() { Commit = original })

	Commit = "0123456789abcdef"
	assert.Equal(t, "0123456", ShortCommit())
	assert.Contains(t, Info(), "(0123456)")

	Commit = "abc"
	assert.Equal(t, "abc", ShortCommit())
}
