package migrate

import (
	"context"
	"testing"

	"github.com/juju/errors"
)

func TestCommandUnsupportedDriver(t *testing.T) {
	Command.SetArgs([]string{"--driver", "sqlite3", "--dsn", "file::memory:"})
	err := Command.ExecuteContext(context.Background())
	if !errors.Is(err, errors.NotSupported) {
		t.Fatalf("Execute() error = %v, want NotSupported", err)
	}
}
