package dataimport

import (
	"context"
	"fmt"
	"io"

	"github.com/juju/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leesalminen/votehist/config"
	"github.com/leesalminen/votehist/dataset"
	"github.com/leesalminen/votehist/histogram"
	"github.com/leesalminen/votehist/model"
	"github.com/leesalminen/votehist/store"
)

// Command is the cobra command.
var Command = &cobra.Command{
	Use:   "data-import",
	Short: "Import the movie dataset into the SQL table",
	Args:  cobra.NoArgs,
	RunE:  run,
}

type commandConfig struct {
	configFile string
}

var (
	flags = new(commandConfig)
	v     = config.New()
)

func initFlags() {
	f := Command.Flags()
	f.StringVar(&flags.configFile, "config", "", "Config file (default ./votehist.yaml if present)")
	f.String("dataset", "", "Path of the CSV dataset")
	f.Int("field", 0, "0-based position of the vote count field")
	f.String("column", "", "Header name of the vote count field, overrides --field")
	f.String("driver", "", "Database driver: postgres or mysql")
	f.String("dsn", "", "Database connection string")
	f.Bool("no-truncate", false, "If set, do not truncate the table before import")
	f.Int("batch-size", 0, "Number of records to insert in one batch")

	err := config.BindFlags(v, f, "dataset", "field", "column", "driver", "dsn", "no-truncate", "batch-size")
	if err != nil {
		panic(err)
	}
}

func init() {
	initFlags()
}

const queueSize = 100

type inserter interface {
	Insert(ctx context.Context, rows []model.Row) error
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, flags.configFile)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	s, err := store.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}
	defer s.Close()

	if !cfg.NoTruncate {
		if err := s.Truncate(ctx); err != nil {
			return err
		}
	}

	r, err := dataset.Open(cfg.Dataset, cfg.DatasetOptions())
	if err != nil {
		return err
	}
	defer r.Close()

	n, err := importRows(ctx, r, s, cfg.BatchSize, cmd.OutOrStdout())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Imported %d lines, done\n", n)
	return nil
}

// importRows reads src on one goroutine and writes batches of batchSize rows
// to dst on another. Rows are stored with their raw vote count, so rows the
// histogram would skip are still imported. It returns the number of rows
// written.
func importRows(ctx context.Context, src histogram.Source, dst inserter, batchSize int, progress io.Writer) (int, error) {
	g, ctx := errgroup.WithContext(ctx)
	rows := make(chan model.Row, queueSize)

	g.Go(func() error {
		defer close(rows)
		for {
			row, err := src.Next(ctx)
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return errors.Trace(err)
			}
			select {
			case rows <- row:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	var imported int
	g.Go(func() error {
		batch := make([]model.Row, 0, batchSize)
		flush := func() error {
			if err := dst.Insert(ctx, batch); err != nil {
				return errors.Annotate(err, "error flushing batch")
			}
			imported += len(batch)
			batch = batch[:0]
			return nil
		}

		for row := range rows {
			batch = append(batch, row)
			if len(batch) < batchSize {
				continue
			}
			if err := flush(); err != nil {
				return err
			}
			fmt.Fprintf(progress, "Imported %d lines\n", imported)
		}
		if len(batch) > 0 {
			return flush()
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return imported, err
	}
	return imported, nil
}
