package histogram

import (
	"context"
	"io"

	"github.com/juju/errors"

	"github.com/leesalminen/votehist/model"
)

// Source yields decoded rows in input order. Next returns io.EOF once the
// input is exhausted; any other error aborts the computation.
type Source interface {
	Next(ctx context.Context) (model.Row, error)
}

// Compute reads src once and counts every row whose vote count parses, in
// the first range of rs that contains it. Rows with unparseable values are
// skipped.
func Compute(ctx context.Context, src Source, rs Ranges) (*Table, error) {
	table := NewTable()
	for {
		row, err := src.Next(ctx)
		if err == io.EOF {
			return table, nil
		}
		if err != nil {
			return nil, errors.Trace(err)
		}

		votes, ok := row.Votes()
		if !ok {
			continue
		}
		idx, ok := rs.Classify(votes)
		if !ok {
			continue
		}
		table.Inc(idx)
	}
}
