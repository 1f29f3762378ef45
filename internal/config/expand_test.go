package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpand(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "empty string",
			input:    "",
			expected: "",
		},
		{
			name:     "HOME expands",
			input:    "${HOME}/kyc/data.yaml",
			expected: home + "/kyc/data.yaml",
		},
		{
			name:     "USER expands",
			input:    "/data/${USER}/snapshot.yaml",
			expected: "/data/" + getUser() + "/snapshot.yaml",
		},
		{
			name:     "tilde unchanged",
			input:    "~/snapshot.yaml",
			expected: "~/snapshot.yaml",
		},
		{
			name:     "no variables",
			input:    "/srv/kyc/snapshot.yaml",
			expected: "/srv/kyc/snapshot.yaml",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Expand(tt.input))
		})
	}
}

func TestExpandTilde(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, "", ExpandTilde(""))
	assert.Equal(t, home, ExpandTilde("~"))
	assert.Equal(t, filepath.Join(home, "data.yaml"), ExpandTilde("~/data.yaml"))
	assert.Equal(t, "~other/data.yaml", ExpandTilde("~other/data.yaml"))
	assert.Equal(t, "/abs/data.yaml", ExpandTilde("/abs/data.yaml"))
}

func TestGetUser_FallsBack(t *testing.T) {
	t.Setenv("USER", "")
	t.Setenv("LOGNAME", "")
	t.Setenv("USERNAME", "")

	assert.Equal(t, "user", getUser())
}

func TestResolveDataFile(t *testing.T) {
	assert.Equal(t, "/cfg/data/snap.yaml", resolveDataFile("data/snap.yaml", "/cfg"))
	assert.Equal(t, "/abs/snap.yaml", resolveDataFile("/abs/snap.yaml", "/cfg"))
	assert.Equal(t, "rel.yaml", resolveDataFile("rel.yaml", ""))
}
