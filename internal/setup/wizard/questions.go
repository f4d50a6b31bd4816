package wizard

import (
	"context"

	"github.com/charmbracelet/huh"
)

// runAccessGroup prompts for the GitHub access token. The input is masked on
// screen; the stored value is exactly what was typed. No format check is
// applied and an empty answer is accepted.
func runAccessGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Access Token").
				Description("GitHub personal access token used for HTTPS authentication").
				Placeholder("ghp_...").
				EchoMode(huh.EchoModePassword).
				Value(&result.Token),
		).Title("GitHub Access"),
	).RunWithContext(ctx)
}

// runIdentityGroup prompts for the git identity values. Both are passed
// through unvalidated.
func runIdentityGroup(ctx context.Context, result *Result) error {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email").
				Description("Written to git's global user.email").
				Placeholder("dev@example.com").
				Value(&result.Email),
			huh.NewInput().
				Title("Username").
				Description("Written to git's global user.name").
				Placeholder("devuser").
				Value(&result.Username),
		).Title("Git Identity"),
	).RunWithContext(ctx)
}
