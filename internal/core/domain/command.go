package domain

import (
	"fmt"
	"strings"

	"github.com/google/shlex"
)

// StripMarker removes the bot address marker from the start of text. It reports false when the text
// does not address the bot.
func StripMarker(text, marker string) (string, bool) {
	if marker == "" || !strings.HasPrefix(text, marker) {
		return "", false
	}

	return strings.TrimSpace(strings.TrimPrefix(text, marker)), true
}

// ParseCommand returns the first whitespace delimited word of body, defaulting to the help command.
func ParseCommand(body string) string {
	fields := strings.Fields(body)
	if len(fields) == 0 {
		return HelpCommand
	}

	return fields[0]
}

// Tokenize splits body into shell-like tokens. The command word is kept as the first token.
func Tokenize(body string) ([]string, error) {
	args, err := shlex.Split(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedArguments, err)
	}

	return args, nil
}
