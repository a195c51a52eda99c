// pkg/interaction/select.go

package interaction

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/uptrace/opentelemetry-go-extra/otelzap"
	"go.uber.org/zap"
)

// SelectOption presents a numbered menu and returns the chosen entry.
// Invalid input (non-numeric or out of range) re-prompts indefinitely;
// the only error path is a read failure on the input stream.
func SelectOption(ctx context.Context, reader *bufio.Reader, label string, options []string) (string, error) {
	logger := otelzap.Ctx(ctx)

	fmt.Fprintln(os.Stderr, label+":")
	for i, opt := range options {
		fmt.Fprintf(os.Stderr, "  %d. %s\n", i+1, opt)
	}
	fmt.Fprintln(os.Stderr)

	for {
		choice, err := ReadLine(ctx, reader, fmt.Sprintf("Enter choice [1-%d]", len(options)))
		if err != nil {
			return "", err
		}

		idx, err := ParseSelection(choice, len(options))
		if err != nil {
			logger.Debug("Invalid menu selection", zap.String("input", choice), zap.Error(err))
			fmt.Fprintln(os.Stderr, err.Error())
			continue
		}
		return options[idx], nil
	}
}

// ParseSelection converts a 1-based menu answer into a 0-based index.
func ParseSelection(input string, count int) (int, error) {
	n, err := strconv.Atoi(input)
	if err != nil {
		return 0, fmt.Errorf("please enter a valid number")
	}
	if n < 1 || n > count {
		return 0, fmt.Errorf("please enter a number between 1 and %d", count)
	}
	return n - 1, nil
}
