package credential

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordEncode(t *testing.T) {
	tests := []struct {
		name     string
		record   Record
		expected string
	}{
		{
			name: "github token record",
			record: Record{
				Protocol: "https",
				Host:     "github.com",
				Username: "token",
				Password: "ghp_abc123",
			},
			expected: "protocol=https\nhost=github.com\nusername=token\npassword=ghp_abc123\n\n",
		},
		{
			name: "empty password is kept",
			record: Record{
				Protocol: "https",
				Host:     "github.com",
				Username: "token",
				Password: "",
			},
			expected: "protocol=https\nhost=github.com\nusername=token\npassword=\n\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.record.Encode())
		})
	}
}

func TestRecordEncode_TerminatedByBlankLine(t *testing.T) {
	out := Record{Protocol: "https", Host: "github.com", Username: "token", Password: "x"}.Encode()
	assert.True(t, strings.HasSuffix(out, "\n\n"), "block must end with a blank line")
}

func TestDefaults(t *testing.T) {
	assert.Equal(t, "https", DefaultProtocol)
	assert.Equal(t, "github.com", DefaultHost)
	assert.Equal(t, "token", DefaultUsername)
}

func TestDefaultStorePath(t *testing.T) {
	t.Setenv("HOME", "/home/dev")

	path, err := DefaultStorePath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/home/dev", ".git-credentials"), path)
}
