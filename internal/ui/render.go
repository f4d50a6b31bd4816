package ui

import (
	"fmt"
	"strings"
)

// Title renders a bold heading, styled when styled is true.
func Title(styled bool, text string) string {
	if styled {
		return titleStyle.Render(text)
	}
	return text
}

// Section renders a section heading with an underline rule.
func Section(styled bool, text string) string {
	rule := strings.Repeat("─", 35)
	if styled {
		return sectionStyle.Render(text) + "\n  " + dimStyle.Render(rule)
	}
	return text + "\n  " + rule
}

// Row renders one status row with a pass/fail indicator, matching the
// doctor table layout.
func Row(styled, ok bool, name, extra string) string {
	mark := checkMark
	if !ok {
		mark = crossMark
	}
	if styled {
		if ok {
			mark = okStyle.Render(mark)
		} else {
			mark = failStyle.Render(mark)
		}
	}

	if extra != "" {
		return fmt.Sprintf("  %s  %-24s %s", mark, name, extra)
	}
	return fmt.Sprintf("  %s  %s", mark, name)
}

// Dim renders de-emphasized helper text.
func Dim(styled bool, text string) string {
	if styled {
		return dimStyle.Render(text)
	}
	return text
}
