package model

import (
	"strconv"

	"github.com/juju/errors"
)

// Default positions in the movie dataset.
const (
	TitleColumn     = 18
	VoteCountColumn = 20
)

// VoteCountHeader is the header name of the vote count column.
const VoteCountHeader = "vote_count"

// Columns selects the record positions a Row is decoded from.
// A negative Title means the title is not read.
type Columns struct {
	Title     int
	VoteCount int
}

// DefaultColumns returns the movie dataset layout.
func DefaultColumns() Columns {
	return Columns{Title: TitleColumn, VoteCount: VoteCountColumn}
}

// Row represents data row.
type Row struct {
	ID        int    `db:"row_id"`
	Line      int    `db:"line"`
	Title     string `db:"title"`
	VoteCount string `db:"vote_count"`
}

// Votes parses the vote count as a non-negative integer. A single leading
// plus sign is accepted.
func (r Row) Votes() (uint64, bool) {
	s := r.VoteCount
	if len(s) > 1 && s[0] == '+' && s[1] != '+' {
		s = s[1:]
	}
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// Decode builds a Row from one delimited record. line is the 1-based data
// line number. A record too short to hold the vote count column is a
// NotValid error.
func Decode(line int, record []string, cols Columns) (Row, error) {
	if cols.VoteCount < 0 || len(record) <= cols.VoteCount {
		return Row{}, errors.NotValidf("record %d: %d fields, field %d", line, len(record), cols.VoteCount)
	}

	row := Row{
		Line:      line,
		VoteCount: record[cols.VoteCount],
	}
	if cols.Title >= 0 && cols.Title < len(record) {
		row.Title = record[cols.Title]
	}
	return row, nil
}

// ResolveColumns looks up name in header and returns the movie layout with
// the vote count column moved to that position.
func ResolveColumns(header []string, name string) (Columns, error) {
	cols := Columns{Title: -1, VoteCount: -1}
	for i, h := range header {
		switch h {
		case name:
			cols.VoteCount = i
		case "title":
			cols.Title = i
		}
	}
	if cols.VoteCount < 0 {
		return Columns{}, errors.NotFoundf("column %q", name)
	}
	return cols, nil
}
