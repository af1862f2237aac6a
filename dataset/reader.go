// Package dataset reads the movie dataset as decoded rows.
package dataset

import (
	"context"
	"encoding/csv"
	"io"
	"os"

	"github.com/juju/errors"

	"github.com/leesalminen/votehist/model"
)

// DefaultPath is where the dataset is read from when no path is given.
const DefaultPath = "./movie_dataset.csv"

// Options control how records are decoded.
type Options struct {
	// Comma is the field delimiter, ',' when zero.
	Comma rune
	// Columns is used unless Column is set.
	Columns model.Columns
	// Column names the vote count column by header.
	Column string
}

// DefaultOptions reads the movie dataset layout.
func DefaultOptions() Options {
	return Options{Comma: ',', Columns: model.DefaultColumns()}
}

// Reader yields rows from a delimited file with a header line.
type Reader struct {
	closer io.Closer
	csv    *csv.Reader
	cols   model.Columns
	line   int
}

// Open opens path and consumes its header.
func Open(path string, opts Options) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Trace(err)
	}
	r, err := NewReader(file, opts)
	if err != nil {
		file.Close()
		return nil, errors.Annotatef(err, "reading %s", path)
	}
	r.closer = file
	return r, nil
}

// NewReader reads rows from in. The header line is consumed here; an empty
// input has no header and yields no rows.
func NewReader(in io.Reader, opts Options) (*Reader, error) {
	cr := csv.NewReader(in)
	if opts.Comma != 0 {
		cr.Comma = opts.Comma
	}
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	r := &Reader{csv: cr, cols: opts.Columns}

	header, err := cr.Read()
	if err == io.EOF {
		return r, nil
	}
	if err != nil {
		return nil, errors.Trace(err)
	}
	if opts.Column != "" {
		cols, err := model.ResolveColumns(header, opts.Column)
		if err != nil {
			return nil, errors.Trace(err)
		}
		r.cols = cols
	}
	return r, nil
}

// Next returns the next data row or io.EOF.
func (r *Reader) Next(ctx context.Context) (model.Row, error) {
	if err := ctx.Err(); err != nil {
		return model.Row{}, err
	}
	record, err := r.csv.Read()
	if err == io.EOF {
		return model.Row{}, io.EOF
	}
	if err != nil {
		return model.Row{}, errors.Trace(err)
	}
	r.line++
	return model.Decode(r.line, record, r.cols)
}

// Close releases the underlying file, if any.
func (r *Reader) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}
