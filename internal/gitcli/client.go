// Package gitcli wraps invocations of the git binary used by the setup flow:
// version probing, configuration writes, and credential approval.
package gitcli

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-logr/logr"

	"github.com/imamik/gitstrap/internal/credential"
)

// Scope selects which git configuration file a read or write targets.
type Scope string

const (
	// ScopeGlobal targets ~/.gitconfig, visible to every repository on the machine.
	ScopeGlobal Scope = "global"

	// ScopeLocal targets .git/config of the current repository.
	ScopeLocal Scope = "local"
)

var errUnknownScope = errors.New("unknown scope (expected: global or local)")

// ParseScope validates a scope string from the command line.
func ParseScope(s string) (Scope, error) {
	switch Scope(s) {
	case ScopeGlobal, ScopeLocal:
		return Scope(s), nil
	}
	return "", fmt.Errorf("%w: %q", errUnknownScope, s)
}

// flag returns the git command-line flag for the scope.
func (s Scope) flag() string {
	return "--" + string(s)
}

// Client executes git commands through a Runner.
type Client struct {
	runner Runner
	log    logr.Logger
}

// New returns a Client that invokes the git binary from PATH.
func New() *Client {
	return &Client{runner: execRunner{}, log: logr.Discard()}
}

// NewWithRunner returns a Client using the given runner. Used in tests.
func NewWithRunner(r Runner) *Client {
	return &Client{runner: r, log: logr.Discard()}
}

// WithLogger returns a copy of the client that traces each git invocation
// through the given logger.
func (c *Client) WithLogger(log logr.Logger) *Client {
	return &Client{runner: c.runner, log: log}
}

// Version returns the git version string, e.g. "git version 2.47.1".
func (c *Client) Version(ctx context.Context) (string, error) {
	c.log.V(1).Info("probing git version")
	return c.runner.Run(ctx, "", "--version")
}

// SetConfig writes a configuration key unconditionally, overwriting any
// existing value.
func (c *Client) SetConfig(ctx context.Context, scope Scope, key, value string) error {
	c.log.V(1).Info("writing config", "scope", scope, "key", key)
	_, err := c.runner.Run(ctx, "", "config", scope.flag(), key, value)
	return err
}

// GetConfig reads a single configuration key. Returns an error when the key
// is unset (git config --get exits non-zero).
func (c *Client) GetConfig(ctx context.Context, scope Scope, key string) (string, error) {
	return c.runner.Run(ctx, "", "config", scope.flag(), "--get", key)
}

// ConfigureCredentialHelper points the credential helper at the file-backed
// store. git will consult storePath for lookups and append approved
// credentials to it.
func (c *Client) ConfigureCredentialHelper(ctx context.Context, scope Scope, storePath string) error {
	c.log.V(1).Info("configuring credential helper", "scope", scope, "store", storePath)
	helper := fmt.Sprintf("store --file %s", storePath)
	_, err := c.runner.Run(ctx, "", "config", scope.flag(), "credential.helper", helper)
	return err
}

// ApproveCredential submits a credential record to the configured helper via
// `git credential approve`. The helper persists it so future lookups for the
// same protocol+host+username succeed without prompting.
func (c *Client) ApproveCredential(ctx context.Context, rec credential.Record) error {
	c.log.V(1).Info("approving credential", "protocol", rec.Protocol, "host", rec.Host, "username", rec.Username)
	_, err := c.runner.Run(ctx, rec.Encode(), "credential", "approve")
	return err
}
