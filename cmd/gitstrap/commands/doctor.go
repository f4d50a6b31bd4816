package commands

import (
	"github.com/spf13/cobra"

	"github.com/imamik/gitstrap/cmd/gitstrap/handlers"
	"github.com/imamik/gitstrap/internal/credential"
	"github.com/imamik/gitstrap/internal/gitcli"
)

// Doctor returns the command for diagnosing the provisioning state.
//
// This command is read-only: it reports git presence, the configured
// identity keys, the credential helper, and whether the credential file
// exists. Credential values are never printed.
//
// Optional flags:
//
//	--scope: Scope of the configuration reads (default: global)
//	--credential-file: Credential store file to check (default: ~/.git-credentials)
//	--json: Output in JSON format
func Doctor() *cobra.Command {
	var scope string
	var credentialFile string
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose git identity and credential configuration",
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

			return handlers.Doctor(cmd.Context(), parsedScope, storePath, jsonOutput)
		},
	}

	cmd.Flags().StringVar(&scope, "scope", string(gitcli.ScopeGlobal), "Scope of the configuration reads (global or local)")
	cmd.Flags().StringVar(&credentialFile, "credential-file", "", "Credential store file to check (default: ~/.git-credentials)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")

	return cmd
}
