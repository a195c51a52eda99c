// pkg/interaction/select_test.go

package interaction

import (
	"bufio"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		count   int
		want    int
		wantErr string
	}{
		{name: "first option", input: "1", count: 3, want: 0},
		{name: "last option", input: "3", count: 3, want: 2},
		{name: "zero is out of range", input: "0", count: 3, wantErr: "between 1 and 3"},
		{name: "too large", input: "4", count: 3, wantErr: "between 1 and 3"},
		{name: "negative", input: "-1", count: 3, wantErr: "between 1 and 3"},
		{name: "non-numeric", input: "abc", count: 3, wantErr: "valid number"},
		{name: "empty", input: "", count: 3, wantErr: "valid number"},
		{name: "float", input: "1.5", count: 3, wantErr: "valid number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idx, err := ParseSelection(tt.input, tt.count)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, idx)
		})
	}
}

func TestSelectOptionRepromptsUntilValid(t *testing.T) {
	options := []string{"alpha", "beta", "gamma"}
	reader := bufio.NewReader(strings.NewReader("abc\n9\n0\n2\n"))

	choice, err := SelectOption(context.Background(), reader, "Pick one", options)
	require.NoError(t, err)
	assert.Equal(t, "beta", choice)
}

func TestSelectOptionReadFailure(t *testing.T) {
	options := []string{"alpha", "beta"}
	reader := bufio.NewReader(strings.NewReader("nope"))

	// Input ends without a newline, so the read fails before any valid
	// selection is made.
	_, err := SelectOption(context.Background(), reader, "Pick one", options)
	assert.Error(t, err)
}

func TestReadLineTrimsInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("  nurse@example.org  \n"))

	value, err := ReadLine(context.Background(), reader, "Enter your Cylera username (email)")
	require.NoError(t, err)
	assert.Equal(t, "nurse@example.org", value)
}

func TestReadLineEmptyInput(t *testing.T) {
	reader := bufio.NewReader(strings.NewReader("\n"))

	value, err := ReadLine(context.Background(), reader, "Enter your Cylera username (email)")
	require.NoError(t, err)
	assert.Equal(t, "", value)
}
