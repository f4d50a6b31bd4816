package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gitstrap/cmd/gitstrap/handlers"
	"github.com/imamik/gitstrap/internal/credential"
	"github.com/imamik/gitstrap/internal/gitcli"
)

// Setup returns the command for the one-shot provisioning flow.
//
// The flow checks that git is installed, prompts for an access token, email,
// and username, writes the identity into git's configuration, configures the
// file-backed credential helper, and stores the credential for github.com.
//
// Optional flags:
//
//	--scope: Target of the configuration writes, global or local (default: global)
//	--credential-username: Username field of the stored credential record (default: token)
//	--credential-file: Path of the credential store file (default: ~/.git-credentials)
//	--verbose, -v: Trace each git invocation
func Setup() *cobra.Command {
	var scope string
	var credentialUsername string
	var credentialFile string
	var verbose bool

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Provision git identity and a GitHub credential",
		Long: `Provision this machine for authenticated GitHub HTTPS operations.

The flow is sequential and prompts for three values:
  1. GitHub access token (stored as the credential password)
  2. Email address     (written to user.email)
  3. Username          (written to user.name)

Existing values are overwritten without backup. The stored credential record
uses the literal username "token" unless --credential-username is set; GitHub
accepts any username when the password is a personal access token.

Examples:
  # Provision the global git configuration
  gitstrap setup

  # Provision only the current repository
  gitstrap setup --scope local`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			parsedScope, err := gitcli.ParseScope(scope)
			if err != nil {
				return err
			}

			storePath := credentialFile
			if storePath == "" {
				storePath, err = credential.DefaultStorePath()
				if err != nil {
					return err
				}
			}

			return handlers.Setup(cmd.Context(), handlers.SetupOptions{
				Scope:              parsedScope,
				CredentialUsername: credentialUsername,
				CredentialFile:     storePath,
				Verbose:            verbose,
			})
		},
	}

	cmd.Flags().StringVar(&scope, "scope", string(gitcli.ScopeGlobal), "Target scope for configuration writes (global or local)")
	cmd.Flags().StringVar(&credentialUsername, "credential-username", credential.DefaultUsername, "Username field of the stored credential record")
	cmd.Flags().StringVar(&credentialFile, "credential-file", "", "Credential store file (default: ~/.git-credentials)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Trace each git invocation")

	return cmd
}
