package common

import (
	"fmt"
	"strings"
	"time"
)

// TIMESTAMP_LAYOUT is ISO-8601 in UTC with microseconds and a literal Z.
const TIMESTAMP_LAYOUT = "2006-01-02T15:04:05.000000Z"

// PollRow is one data row of the sheet keyed by header label.
type PollRow struct {
	Number int // 1-based row number in the sheet, header is row 1
	Cells  map[string]string
}

// Cell returns the value under the given header label, or "" when the
// column or the cell is missing.
func (r PollRow) Cell(column string) string {
	if r.Cells == nil {
		return ""
	}
	return r.Cells[column]
}

type PollResponse struct {
	Timestamp string
	Source    string
	Q1        string
	Q2        string
	Q3        string
}

// Fields returns the document body with exactly the five stored keys.
func (p PollResponse) Fields() map[string]string {
	return map[string]string{
		"timestamp": p.Timestamp,
		"source":    p.Source,
		"q1":        p.Q1,
		"q2":        p.Q2,
		"q3":        p.Q3,
	}
}

// NormalizeAnswer maps a raw cell to yes, no or no_response. The second
// return value reports whether the cell was a recognized answer.
func NormalizeAnswer(raw string) (string, bool) {
	switch strings.TrimSpace(strings.ToLower(raw)) {
	case "yes", "y":
		return ANSWER_YES, true
	case "no", "n":
		return ANSWER_NO, true
	default:
		return ANSWER_NO_RESPONSE, false
	}
}

// NewPollResponse builds the response document for a row. columns are read
// in order into q1, q2, q3; extra columns are ignored. hasResponse is true
// when at least one column held a recognized yes/no answer.
func NewPollResponse(row PollRow, columns []string, now time.Time) (resp PollResponse, hasResponse bool) {
	resp = PollResponse{
		Timestamp: now.UTC().Format(TIMESTAMP_LAYOUT),
		Source:    RESPONSE_SOURCE,
		Q1:        ANSWER_NO_RESPONSE,
		Q2:        ANSWER_NO_RESPONSE,
		Q3:        ANSWER_NO_RESPONSE,
	}
	keys := []*string{&resp.Q1, &resp.Q2, &resp.Q3}
	for i, col := range columns {
		if i >= len(keys) {
			break
		}
		answer, ok := NormalizeAnswer(row.Cell(col))
		*keys[i] = answer
		if ok {
			hasResponse = true
		}
	}
	return resp, hasResponse
}

func (p PollResponse) String() string {
	return fmt.Sprintf("q1=%s q2=%s q3=%s", p.Q1, p.Q2, p.Q3)
}
