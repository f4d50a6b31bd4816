// Package credential defines the credential record written into git's
// file-backed credential store and the defaults used for github.com.
package credential

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Defaults for the approved credential record. The username is the literal
// "token", not the operator's account name: git-credential-store keys records
// by protocol+host+username, and GitHub accepts any username when the
// password is a personal access token.
const (
	DefaultProtocol = "https"
	DefaultHost     = "github.com"
	DefaultUsername = "token"
)

// storeFileName is git-credential-store's default file under the home directory.
const storeFileName = ".git-credentials"

// Record is one credential tuple in git's credential wire format.
type Record struct {
	Protocol string
	Host     string
	Username string
	Password string
}

// Encode renders the record as the key=value block expected on stdin by
// `git credential approve`: one key=value pair per line, terminated by a
// blank line.
func (r Record) Encode() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "protocol=%s\n", r.Protocol)
	fmt.Fprintf(&sb, "host=%s\n", r.Host)
	fmt.Fprintf(&sb, "username=%s\n", r.Username)
	fmt.Fprintf(&sb, "password=%s\n", r.Password)
	sb.WriteString("\n")
	return sb.String()
}

// DefaultStorePath returns the default credential store location,
// ~/.git-credentials.
func DefaultStorePath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, storeFileName), nil
}
