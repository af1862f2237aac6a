package store

import (
	"context"
	"strings"
	"testing"

	"github.com/juju/errors"
)

func TestSchema(t *testing.T) {
	for _, driver := range []string{Postgres, MySQL} {
		schema, err := Schema(driver)
		if err != nil {
			t.Fatalf("Schema(%q) error = %v", driver, err)
		}
		for _, col := range []string{"row_id", "line", "title", "vote_count"} {
			if !strings.Contains(schema, col) {
				t.Errorf("Schema(%q) lacks column %s", driver, col)
			}
		}
	}
}

func TestOpenUnsupportedDriver(t *testing.T) {
	_, err := Open(context.Background(), "sqlite3", "file::memory:")
	if !errors.Is(err, errors.NotSupported) {
		t.Fatalf("Open() error = %v, want NotSupported", err)
	}
}

func TestSchemaGeneratesRowID(t *testing.T) {
	tests := map[string]string{
		Postgres: "row_id serial",
		MySQL:    "row_id INT NOT NULL AUTO_INCREMENT",
	}
	for driver, want := range tests {
		schema, err := Schema(driver)
		if err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(schema, want) {
			t.Errorf("Schema(%q) lacks %q", driver, want)
		}
	}
}
