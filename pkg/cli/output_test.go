// pkg/cli/output_test.go

package cli

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintJSON(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{
			name: "object reindented with two spaces",
			body: `{"name":"infusion-pump","vlan":12}`,
			want: "{\n  \"name\": \"infusion-pump\",\n  \"vlan\": 12\n}\n",
		},
		{
			name: "key order preserved",
			body: `{"z":1,"a":2}`,
			want: "{\n  \"z\": 1,\n  \"a\": 2\n}\n",
		},
		{
			name: "nested structures",
			body: `{"devices":[{"mac":"00:0a:95:9d:68:16"}]}`,
			want: "{\n  \"devices\": [\n    {\n      \"mac\": \"00:0a:95:9d:68:16\"\n    }\n  ]\n}\n",
		},
		{
			name: "scalar body",
			body: `42`,
			want: "42\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, PrintJSON(&buf, json.RawMessage(tt.body)))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestPrintJSONInvalidBody(t *testing.T) {
	var buf bytes.Buffer
	err := PrintJSON(&buf, json.RawMessage(`{"unterminated`))
	assert.Error(t, err)
}

func TestUserError(t *testing.T) {
	err := NewUserError("run 'cylera init' first")
	assert.True(t, IsUserError(err))
	assert.Equal(t, "run 'cylera init' first", err.Error())

	assert.False(t, IsUserError(assert.AnError))
	assert.Nil(t, NewExpectedError(nil))
}
