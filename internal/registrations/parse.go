// Package registrations reads the approximate number of registered teams from
// the public export of the registration spreadsheet.
//
// The export endpoint answers with a JavaScript callback wrapping a JSON
// document (Google Visualization "gviz" format). ParseRowCount extracts the
// JSON between the first '{' and the last ')' and counts the table rows.
package registrations

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnexpectedResponse = errors.New("unexpected sheet response")
	ErrMissingTable       = errors.New("sheet response has no table")
	ErrMissingSheetID     = errors.New("sheet id is required")
)

type gvizResponse struct {
	Status string     `json:"status"`
	Table  *gvizTable `json:"table"`
}

type gvizTable struct {
	Rows []json.RawMessage `json:"rows"`
}

// ExtractJSON returns the JSON payload embedded in a wrapped response: the
// text from the first '{' up to, not including, the last ')'.
func ExtractJSON(body string) (string, error) {
	start := strings.IndexByte(body, '{')
	end := strings.LastIndexByte(body, ')')
	if start == -1 || end == -1 || end < start {
		return "", ErrUnexpectedResponse
	}
	return body[start:end], nil
}

// ParseRowCount returns the number of data rows in a wrapped gviz response.
// A table without a rows array counts as empty.
func ParseRowCount(body string) (int, error) {
	payload, err := ExtractJSON(body)
	if err != nil {
		return 0, err
	}

	var resp gvizResponse
	if err := json.Unmarshal([]byte(payload), &resp); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrUnexpectedResponse, err)
	}
	if resp.Table == nil {
		return 0, ErrMissingTable
	}
	return len(resp.Table.Rows), nil
}
