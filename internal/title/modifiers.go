package title

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// FormatTitle appends the environment and change-status modifiers to base.
func FormatTitle(base, targetEnvironment, hasInterestingChanges string) string {
	parts := []string{base}

	if env := EnvironmentModifier(targetEnvironment); env != "" {
		parts = append(parts, env)
	}
	if change := ChangeModifier(hasInterestingChanges); change != "" {
		parts = append(parts, change)
	}

	return strings.TrimSpace(strings.Join(parts, " "))
}

// EnvironmentModifier renders "production" as "(Production)". Empty and
// "unknown" environments produce no modifier.
func EnvironmentModifier(env string) string {
	if env == "" || env == Unknown {
		return ""
	}
	first, size := utf8.DecodeRuneInString(env)
	head := string(unicode.ToUpper(first))
	if first == utf8.RuneError && size <= 1 {
		// invalid UTF-8: keep the raw byte instead of U+FFFD
		head = env[:size]
	}
	return "(" + head + strings.ToLower(env[size:]) + ")"
}

// ChangeModifier maps the interesting-changes flag to its title suffix.
func ChangeModifier(hasInterestingChanges string) string {
	switch hasInterestingChanges {
	case "true":
		return changeDrivenModifier
	case "false":
		return stableModifier
	default:
		return ""
	}
}
