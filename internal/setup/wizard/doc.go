// Package wizard provides the interactive input collection for gitstrap.
//
// It prompts, in order, for a GitHub access token, an email address, and a
// username. On an interactive terminal the prompts are rendered as
// charmbracelet/huh form groups with the token input masked; otherwise each
// prompt is a plain line read from stdin.
//
// Inputs are passed through exactly as entered: no trimming beyond the line
// terminator, no format validation, and empty answers are accepted.
package wizard
