package gitcli

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes one git invocation and returns its output.
type Runner interface {
	// Run executes `git args...`. When stdin is non-empty it is piped to the
	// process. The returned string is the trimmed combined output.
	Run(ctx context.Context, stdin string, args ...string) (string, error)
}

// execRunner invokes the git binary from PATH.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, stdin string, args ...string) (string, error) {
	// #nosec G204 - args are assembled from fixed subcommands plus operator-supplied values
	cmd := exec.CommandContext(ctx, "git", args...)
	if stdin != "" {
		cmd.Stdin = strings.NewReader(stdin)
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return "", fmt.Errorf("git %s failed: %w\nOutput: %s", strings.Join(args, " "), err, string(output))
	}

	return strings.TrimSpace(string(output)), nil
}
