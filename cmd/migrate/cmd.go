package migrate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leesalminen/votehist/config"
	"github.com/leesalminen/votehist/store"
)

// Command is the cobra command.
var Command = &cobra.Command{
	Use:   "migrate",
	Short: "Create the SQL table required to import the dataset",
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
	f.String("driver", "", "Database driver: postgres or mysql")
	f.String("dsn", "", "Database connection string")

	if err := config.BindFlags(v, f, "driver", "dsn"); err != nil {
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

	ctx := cmd.Context()
	s, err := store.Open(ctx, cfg.Driver, cfg.DSN)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Migrate(ctx); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Created table %s\n", store.Table)
	return nil
}
