package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootCommand(t *testing.T) {
	root := newRootCommand()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"histogram", "migrate", "data-import"} {
		if !names[want] {
			t.Errorf("missing subcommand %q", want)
		}
	}
	for _, flag := range []string{"dataset", "field", "scale", "format"} {
		if root.Flags().Lookup(flag) == nil {
			t.Errorf("root lacks --%s", flag)
		}
	}
}

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRun(t *testing.T) {
	path := writeFile(t, "movie_dataset.csv", "title,vote_count\nA,5\nB,+7\nC,abc\nD,250\n")

	var out bytes.Buffer
	code := run([]string{"--dataset", path, "--column", "vote_count", "--scale", "1"}, &out)
	if code != 0 {
		t.Fatalf("run() = %d, output %q", code, out.String())
	}
	want := "0..=10: ## - 2\n100..=1000: # - 1\n"
	if out.String() != want {
		t.Fatalf("output = %q, want %q", out.String(), want)
	}
}

func TestRunFailures(t *testing.T) {
	missing := filepath.Join(t.TempDir(), "movie_dataset.csv")
	short := writeFile(t, "short.csv", "title,vote_count\nA,5\nB\n")

	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "missing dataset",
			args: []string{"--dataset", missing, "--column", ""},
			want: "error running example: open " + missing + ": no such file or directory\n",
		},
		{
			name: "short row",
			args: []string{"--dataset", short, "--column", "vote_count"},
			want: "error running example: record 2: 1 fields, field 1 not valid\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			if code := run(tt.args, &out); code != 1 {
				t.Fatalf("run() = %d, want 1", code)
			}
			if out.String() != tt.want {
				t.Fatalf("output = %q, want %q", out.String(), tt.want)
			}
			if strings.Contains(out.String(), "..=") {
				t.Fatalf("histogram lines printed on failure: %q", out.String())
			}
		})
	}
}
