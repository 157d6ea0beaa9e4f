package registrations

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRowCount(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		want    int
		wantErr error
	}{
		{
			name: "gviz wrapper with three rows",
			body: "](/*O_o*/\n{\"table\":{\"rows\":[{},{},{}]}})",
			want: 3,
		},
		{
			name: "full gviz callback",
			body: "/*O_o*/\ngoogle.visualization.Query.setResponse({\"version\":\"0.6\",\"status\":\"ok\",\"table\":{\"cols\":[],\"rows\":[{\"c\":[{\"v\":\"Team A\"}]},{\"c\":[{\"v\":\"Team B\"}]}]}});",
			want: 2,
		},
		{
			name: "empty rows",
			body: "x({\"table\":{\"rows\":[]}})",
			want: 0,
		},
		{
			name: "table without rows",
			body: "x({\"table\":{}})",
			want: 0,
		},
		{
			name:    "no opening brace",
			body:    "x(null)",
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "no closing paren",
			body:    "{\"table\":{\"rows\":[]}}",
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "paren before brace",
			body:    "x() {\"table\":{}}",
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "invalid json",
			body:    "x({\"table\":)",
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "html error page",
			body:    "<html><body>Sign in</body></html>",
			wantErr: ErrUnexpectedResponse,
		},
		{
			name:    "missing table",
			body:    "x({\"status\":\"error\"})",
			wantErr: ErrMissingTable,
		},
		{
			name:    "null table",
			body:    "x({\"table\":null})",
			wantErr: ErrMissingTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseRowCount(tt.body)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtractJSON(t *testing.T) {
	got, err := ExtractJSON("cb({\"a\":(1)})")
	require.NoError(t, err)
	// The last ')' wins, so a ')' inside the payload is kept.
	assert.Equal(t, "{\"a\":(1)}", got)
}
