package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// readPlain collects the three answers as plain line reads, in prompt order.
// Only the line terminator is stripped; interior whitespace and empty lines
// are preserved as-is.
func readPlain(r io.Reader, w io.Writer) (*Result, error) {
	reader := bufio.NewReader(r)
	result := &Result{}

	prompts := []struct {
		label string
		value *string
	}{
		{"Enter your GitHub access token: ", &result.Token},
		{"Enter your email: ", &result.Email},
		{"Enter your username: ", &result.Username},
	}

	for _, p := range prompts {
		fmt.Fprint(w, p.label)

		line, err := reader.ReadString('\n')
		if err != nil {
			// A final line without a trailing newline is still an answer.
			if !errors.Is(err, io.EOF) || line == "" {
				return nil, fmt.Errorf("failed to read input: %w", err)
			}
		}

		*p.value = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	}

	return result, nil
}
