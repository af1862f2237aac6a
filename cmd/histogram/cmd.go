package histogram

import (
	"context"
	"io"

	"github.com/juju/errors"
	"github.com/spf13/cobra"

	"github.com/leesalminen/votehist/config"
	"github.com/leesalminen/votehist/dataset"
	hist "github.com/leesalminen/votehist/histogram"
	"github.com/leesalminen/votehist/store"
)

// Command is the cobra command.
var Command = &cobra.Command{
	Use:   "histogram",
	Short: "Print the vote count histogram of the movie dataset",
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
	f.Uint64("scale", 0, "Number of matches per bar marker")
	f.String("marker", "", "Bar marker")
	f.String("format", "", "Report format: text or json")
	f.Bool("color", false, "Colour the bars")
	f.String("source", "", "Read rows from csv or db")
	f.String("driver", "", "Database driver: postgres or mysql")
	f.String("dsn", "", "Database connection string")

	err := config.BindFlags(v, f, "dataset", "field", "column", "scale", "marker", "format", "color", "source", "driver", "dsn")
	if err != nil {
		panic(err)
	}
}

func init() {
	initFlags()
}

func run(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(v, flags.configFile)
	if err != nil {
		return err
	}
	return Run(cmd.Context(), cfg, cmd.OutOrStdout())
}

type rowSource interface {
	hist.Source
	io.Closer
}

func openSource(ctx context.Context, cfg *config.Config) (rowSource, func(), error) {
	if cfg.Source == config.SourceDB {
		s, err := store.Open(ctx, cfg.Driver, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		rows, err := s.Rows(ctx)
		if err != nil {
			s.Close()
			return nil, nil, err
		}
		return rows, func() { s.Close() }, nil
	}

	r, err := dataset.Open(cfg.Dataset, cfg.DatasetOptions())
	if err != nil {
		return nil, nil, err
	}
	return r, func() {}, nil
}

// Run computes the histogram of the configured source and writes the report
// to out. Nothing is written if the computation fails.
func Run(ctx context.Context, cfg *config.Config, out io.Writer) error {
	src, release, err := openSource(ctx, cfg)
	if err != nil {
		return err
	}
	defer release()
	defer src.Close()

	table, err := hist.Compute(ctx, src, hist.DefaultRanges)
	if err != nil {
		return errors.Trace(err)
	}

	r := cfg.Renderer()
	if cfg.Format == config.FormatJSON {
		return r.RenderJSON(out, table)
	}
	return r.Render(out, table)
}
