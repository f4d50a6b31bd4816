package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-logr/logr"

	"github.com/imamik/gitstrap/internal/gitcli"
	"github.com/imamik/gitstrap/internal/ui"
)

// gitConfigReader is the subset of the git client doctor needs.
type gitConfigReader interface {
	GetConfig(ctx context.Context, scope gitcli.Scope, key string) (string, error)
}

// Factory function variables for doctor - can be replaced in tests.
var (
	newGitConfigReader = func() gitConfigReader {
		return gitcli.New().WithLogger(logr.Discard())
	}

	statFile = func(path string) bool {
		_, err := os.Stat(path)
		return err == nil
	}
)

// DoctorStatus is the diagnostic snapshot of the machine's provisioning state.
type DoctorStatus struct {
	Git              GitHealth      `json:"git"`
	Identity         IdentityHealth `json:"identity"`
	CredentialHelper string         `json:"credentialHelper,omitempty"`
	CredentialFile   FileHealth     `json:"credentialFile"`
}

// GitHealth reports whether the git binary is resolvable.
type GitHealth struct {
	Found   bool   `json:"found"`
	Path    string `json:"path,omitempty"`
	Version string `json:"version,omitempty"`
}

// IdentityHealth reports the configured identity keys.
type IdentityHealth struct {
	Email    string `json:"email,omitempty"`
	Username string `json:"username,omitempty"`
}

// FileHealth reports the credential store file.
type FileHealth struct {
	Path   string `json:"path"`
	Exists bool   `json:"exists"`
}

// Doctor reports git presence, the configured identity, the credential
// helper, and whether the credential file exists. It is read-only and never
// prints credential values.
func Doctor(ctx context.Context, scope gitcli.Scope, credentialFile string, jsonOutput bool) error {
	status := collectDoctorStatus(ctx, scope, credentialFile)

	if jsonOutput {
		data, err := json.MarshalIndent(status, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal status: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	printDoctorFormatted(status)
	return nil
}

// collectDoctorStatus gathers the diagnostic snapshot. Unset config keys are
// reported as empty, not as errors.
func collectDoctorStatus(ctx context.Context, scope gitcli.Scope, credentialFile string) *DoctorStatus {
	status := &DoctorStatus{
		CredentialFile: FileHealth{Path: credentialFile, Exists: statFile(credentialFile)},
	}

	check := checkPrerequisites()
	for _, res := range check.Results {
		if res.Tool.Name == "git" {
			status.Git = GitHealth{Found: res.Found, Path: res.Path, Version: res.Version}
		}
	}

	if !status.Git.Found {
		return status
	}

	reader := newGitConfigReader()
	if email, err := reader.GetConfig(ctx, scope, "user.email"); err == nil {
		status.Identity.Email = email
	}
	if username, err := reader.GetConfig(ctx, scope, "user.name"); err == nil {
		status.Identity.Username = username
	}
	if helper, err := reader.GetConfig(ctx, scope, "credential.helper"); err == nil {
		status.CredentialHelper = helper
	}

	return status
}

// printDoctorFormatted outputs the status as a row table with indicators.
func printDoctorFormatted(status *DoctorStatus) {
	styled := isInteractiveTTY()

	fmt.Println()
	fmt.Println(ui.Title(styled, "gitstrap doctor"))

	fmt.Println(ui.Section(styled, "  Client"))
	fmt.Println(ui.Row(styled, status.Git.Found, "git", status.Git.Version))

	fmt.Println(ui.Section(styled, "  Identity"))
	fmt.Println(ui.Row(styled, status.Identity.Email != "", "user.email", status.Identity.Email))
	fmt.Println(ui.Row(styled, status.Identity.Username != "", "user.name", status.Identity.Username))

	fmt.Println(ui.Section(styled, "  Credentials"))
	fmt.Println(ui.Row(styled, status.CredentialHelper != "", "credential.helper", status.CredentialHelper))
	fmt.Println(ui.Row(styled, status.CredentialFile.Exists, "credential file", status.CredentialFile.Path))

	fmt.Println()
	if !status.Git.Found {
		fmt.Println(ui.Dim(styled, "  Install git, then run 'gitstrap setup'."))
	} else if status.Identity.Email == "" || !status.CredentialFile.Exists {
		fmt.Println(ui.Dim(styled, "  Run 'gitstrap setup' to provision this machine."))
	}
	fmt.Println()
}
