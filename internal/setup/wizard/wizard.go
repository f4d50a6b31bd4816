package wizard

import (
	"context"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
)

// Result holds the answers collected from the operator. The values are held
// in memory for the duration of the run only and are never logged.
type Result struct {
	// Token is the GitHub access token used as the credential password.
	Token string

	// Email is written to git's user.email.
	Email string

	// Username is written to git's user.name.
	Username string
}

// Function variable for dependency injection in tests.
var isInteractive = func() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}

// Run collects the access token, email, and username from the operator.
//
// On an interactive terminal the prompts are huh form groups with the token
// masked. Otherwise each prompt is a plain line read from stdin, so the flow
// also works under pipes and test harnesses. The context cancels the
// interactive form (e.g. Ctrl+C).
func Run(ctx context.Context) (*Result, error) {
	result := &Result{}

	if isInteractive() {
		if err := runAccessGroup(ctx, result); err != nil {
			return nil, fmt.Errorf("access token: %w", err)
		}
		if err := runIdentityGroup(ctx, result); err != nil {
			return nil, fmt.Errorf("identity: %w", err)
		}
		return result, nil
	}

	return readPlain(os.Stdin, os.Stdout)
}
