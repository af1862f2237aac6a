package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/leesalminen/votehist/cmd/dataimport"
	"github.com/leesalminen/votehist/cmd/histogram"
	"github.com/leesalminen/votehist/cmd/migrate"
)

func newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "votehist",
		Short:         "Histogram of movie vote counts",
		Args:          cobra.NoArgs,
		RunE:          histogram.Command.RunE,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.Flags().AddFlagSet(histogram.Command.Flags())
	root.AddCommand(histogram.Command, migrate.Command, dataimport.Command)
	return root
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, stdout io.Writer) int {
	root := newRootCommand()
	root.SetArgs(args)
	root.SetOut(stdout)
	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(stdout, "error running example:", err)
		return 1
	}
	return 0
}
