package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/lipgloss"

	"github.com/macropower/starship-profiles/pkg/config"
	"github.com/macropower/starship-profiles/pkg/launch"
	"github.com/macropower/starship-profiles/pkg/pattern"
	"github.com/macropower/starship-profiles/pkg/resolve"
)

// ErrorHandler renders a fatal error, with a hint for known failures.
// It is passed to [fang.WithErrorHandler].
func ErrorHandler(w io.Writer, styles fang.Styles, err error) {
	mustN(fmt.Fprintln(w, styles.ErrorHeader.String()))
	mustN(fmt.Fprintln(w, lipgloss.NewStyle().MarginLeft(2).Render(err.Error())))
	mustN(fmt.Fprintln(w))

	if hint := errorHint(err); hint != "" {
		mustN(fmt.Fprintln(w, styles.ErrorText.UnsetWidth().Render(hint)))
		mustN(fmt.Fprintln(w))
	}

	if isUsageError(err) {
		mustN(fmt.Fprintln(w, lipgloss.JoinHorizontal(
			lipgloss.Left,
			styles.ErrorText.UnsetWidth().Render("Try"),
			styles.Program.Flag.Render("--help"),
			styles.ErrorText.UnsetWidth().UnsetMargins().UnsetTransform().PaddingLeft(1).Render("for usage."),
		)))
		mustN(fmt.Fprintln(w))
	}
}

func errorHint(err error) string {
	switch {
	case errors.Is(err, launch.ErrExecutableNotFound):
		return "Install starship, or name the program to run with --target."
	case errors.Is(err, resolve.ErrProfilesDirMissing):
		return "Create the profiles directory next to profiles.toml, with one <name>.toml per profile."
	case errors.Is(err, pattern.ErrInvalidPattern):
		return "Patterns are regular expressions; escape literal characters such as '(' or '.'."
	case errors.Is(err, config.ErrConfigParse):
		return "Each [[profile]] needs a name, and optionally a list of patterns."
	case errors.Is(err, config.ErrPlatformDirectory):
		return "Set $HOME and $XDG_CONFIG_HOME, or pass --config."
	}

	return ""
}

// XXX: this is a hack to detect usage errors.
// See: https://github.com/spf13/cobra/pull/2266
func isUsageError(err error) bool {
	s := err.Error()
	for _, prefix := range []string{
		"flag needs an argument:",
		"unknown flag:",
		"unknown shorthand flag:",
		"invalid argument",
	} {
		if strings.HasPrefix(s, prefix) {
			return true
		}
	}

	return false
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func mustN(_ int, err error) {
	must(err)
}
