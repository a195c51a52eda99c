// pkg/interaction/input.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
	"golang.org/x/term"
)

// ReadLine prompts the user with a label and returns a trimmed line of input.
// Prompts go to stderr so stdout stays available for automation.
func ReadLine(ctx context.Context, reader *bufio.Reader, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for input", zap.String("label", label))

	_, _ = fmt.Fprint(os.Stderr, label+": ")

	text, err := reader.ReadString('\n')
	if err != nil {
		logger.Error("Failed to read user input", zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(text), nil
}

// PromptPassword displays a prompt and reads a password without echoing.
func PromptPassword(ctx context.Context, label string) (string, error) {
	logger := otelzap.Ctx(ctx)
	logger.Debug("Prompting user for password", zap.String("label", label))

	_, _ = fmt.Fprint(os.Stderr, label+": ")

	bytePassword, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		logger.Error("Failed to read password", zap.Error(err))
		return "", err
	}
	return strings.TrimSpace(string(bytePassword)), nil
}
