// pkg/cli/output.go

package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// PrintJSON writes the raw response body to w re-indented with two spaces
// per nesting level. The body is never unmarshalled, so field order and
// values stay exactly as the service returned them.
func PrintJSON(w io.Writer, body json.RawMessage) error {
	var buf bytes.Buffer
	if err := json.Indent(&buf, body, "", "  "); err != nil {
		return fmt.Errorf("response is not valid JSON: %w", err)
	}
	_, err := fmt.Fprintln(w, buf.String())
	return err
}
