// Package handlers contains the execution logic behind each CLI command.
//
// Commands in the commands package parse flags and delegate here. External
// collaborators (the prerequisite check, the wizard, the git client) are
// reached through package-level function variables so tests can replace them.
package handlers

import (
	"context"
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/mattn/go-isatty"

	"github.com/imamik/gitstrap/internal/credential"
	"github.com/imamik/gitstrap/internal/gitcli"
	"github.com/imamik/gitstrap/internal/setup/wizard"
	"github.com/imamik/gitstrap/internal/ui"
	"github.com/imamik/gitstrap/internal/util/prerequisites"
)

// gitConfigurer is the subset of the git client the setup flow needs.
type gitConfigurer interface {
	SetConfig(ctx context.Context, scope gitcli.Scope, key, value string) error
	ConfigureCredentialHelper(ctx context.Context, scope gitcli.Scope, storePath string) error
	ApproveCredential(ctx context.Context, rec credential.Record) error
}

// Factory function variables for setup - can be replaced in tests.
var (
	checkPrerequisites = prerequisites.CheckDefault
	runWizard          = wizard.Run

	newGitConfigurer = func(log logr.Logger) gitConfigurer {
		return gitcli.New().WithLogger(log)
	}
)

// SetupOptions carries the flag values for the setup command.
type SetupOptions struct {
	// Scope is the target of the identity and helper configuration writes.
	Scope gitcli.Scope

	// CredentialUsername is the username field of the approved record.
	// Defaults to the literal "token"; see internal/credential.
	CredentialUsername string

	// CredentialFile is the path handed to the store helper.
	CredentialFile string

	// Verbose traces each git invocation to stderr.
	Verbose bool
}

// Setup runs the five-step provisioning flow: precondition check, input
// collection, identity configuration, credential-helper configuration, and
// credential approval. The first failing step terminates the run; nothing is
// retried or rolled back.
func Setup(ctx context.Context, opts SetupOptions) error {
	check := checkPrerequisites()
	if err := check.Error(); err != nil {
		return fmt.Errorf("git is not installed or not on PATH: %w", err)
	}

	printSetupWelcome(check)

	result, err := runWizard(ctx)
	if err != nil {
		return fmt.Errorf("input collection failed: %w", err)
	}

	client := newGitConfigurer(setupLogger(opts.Verbose))

	if err := client.SetConfig(ctx, opts.Scope, "user.email", result.Email); err != nil {
		return fmt.Errorf("failed to set user.email: %w", err)
	}
	if err := client.SetConfig(ctx, opts.Scope, "user.name", result.Username); err != nil {
		return fmt.Errorf("failed to set user.name: %w", err)
	}

	if err := client.ConfigureCredentialHelper(ctx, opts.Scope, opts.CredentialFile); err != nil {
		return fmt.Errorf("failed to configure credential helper: %w", err)
	}

	rec := credential.Record{
		Protocol: credential.DefaultProtocol,
		Host:     credential.DefaultHost,
		Username: opts.CredentialUsername,
		Password: result.Token,
	}
	if err := client.ApproveCredential(ctx, rec); err != nil {
		return fmt.Errorf("failed to store credential: %w", err)
	}

	printSetupSuccess(opts, result.Email, result.Username)

	return nil
}

// setupLogger returns a stderr-backed logger when verbose is set, and a
// discarding logger otherwise.
func setupLogger(verbose bool) logr.Logger {
	if !verbose {
		return logr.Discard()
	}
	log := funcr.New(func(prefix, args string) {
		fmt.Fprintln(os.Stderr, prefix, args)
	}, funcr.Options{Verbosity: 1})
	return log.WithName("gitstrap")
}

// printSetupWelcome prints the detected git version and flow summary.
func printSetupWelcome(check *prerequisites.CheckResults) {
	fmt.Println()
	fmt.Println("gitstrap - git identity and GitHub credential setup")
	fmt.Println("===================================================")
	fmt.Println()
	for _, res := range check.Results {
		if res.Found && res.Version != "" {
			fmt.Printf("Found %s\n", res.Version)
		}
	}
	fmt.Println()
}

// printSetupSuccess prints the completion summary and next steps.
func printSetupSuccess(opts SetupOptions, email, username string) {
	styled := isInteractiveTTY()

	fmt.Println()
	fmt.Println(ui.Title(styled, "Setup complete!"))
	fmt.Println()
	fmt.Println(ui.Row(styled, true, "user.email", email))
	fmt.Println(ui.Row(styled, true, "user.name", username))
	fmt.Println(ui.Row(styled, true, "credential.helper", fmt.Sprintf("store --file %s", opts.CredentialFile)))
	fmt.Println(ui.Row(styled, true, "credential", fmt.Sprintf("%s://%s", credential.DefaultProtocol, credential.DefaultHost)))
	fmt.Println()
	fmt.Println(ui.Dim(styled, "HTTPS operations against github.com now authenticate without prompting."))
	fmt.Println()
}

func isInteractiveTTY() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
