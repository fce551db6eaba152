package cli

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func newTestCLI() *CLI {
	return New(io.Discard, log.ErrorLevel)
}

func TestRootCommandSubcommands(t *testing.T) {
	root := newTestCLI().RootCommand()

	want := []string{"generate", "resolve", "rules", "cascade", "serve", "cache", "completion"}
	have := make(map[string]bool)
	for _, cmd := range root.Commands() {
		have[cmd.Name()] = true
	}
	for _, name := range want {
		if !have[name] {
			t.Errorf("root command missing subcommand %q", name)
		}
	}
}

func TestResolveCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "Span",
			args: []string{"resolve", "--span", "6"},
			want: "col-6",
		},
		{
			name: "Overrides",
			args: []string{"resolve", "--span", "12", "--at", "md:span=6", "--at", "lg:span=4"},
			want: "col-12 col-md-6 col-lg-4",
		},
		{
			name: "AutoWins",
			args: []string{"resolve", "--auto", "--flex", "--span", "6"},
			want: "col-auto",
		},
		{
			name: "OrderAndOffset",
			args: []string{"resolve", "--span", "6", "--offset", "3", "--order", "first"},
			want: "col-6 col-offset-3 col-order-first",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := newTestCLI().RootCommand()
			var out bytes.Buffer
			root.SetOut(&out)
			root.SetErr(io.Discard)
			root.SetArgs(tt.args)

			if err := root.Execute(); err != nil {
				t.Fatalf("Execute() error: %v", err)
			}
			if got := strings.TrimSpace(out.String()); got != tt.want {
				t.Errorf("output = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestResolveCommandRejectsBadIntent(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"resolve", "--span", "13"})

	if err := root.Execute(); err == nil {
		t.Fatal("Execute() = nil error, want span domain rejection")
	}
}

func TestGenerateCommand(t *testing.T) {
	dir := t.TempDir()

	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--no-cache", "--format", "css,json", "--output", dir})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}

	css, err := os.ReadFile(filepath.Join(dir, defaultCSSFile))
	if err != nil {
		t.Fatalf("read grid.css: %v", err)
	}
	if !strings.Contains(string(css), ".col-md-6 {") {
		t.Error("grid.css missing generated rules")
	}

	rules, err := os.ReadFile(filepath.Join(dir, defaultJSONFile))
	if err != nil {
		t.Fatalf("read rules.json: %v", err)
	}
	if !strings.Contains(string(rules), `"col-lg-offset-3"`) {
		t.Error("rules.json missing generated rules")
	}
}

func TestGenerateCommandRejectsUnknownFormat(t *testing.T) {
	root := newTestCLI().RootCommand()
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"generate", "--format", "pdf"})

	if err := root.Execute(); err == nil {
		t.Fatal("Execute() = nil error, want unknown format rejection")
	}
}

func TestCascadeCommandEmitsDOT(t *testing.T) {
	root := newTestCLI().RootCommand()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"cascade", "--no-cache", "--span", "12", "--at", "md:span=6"})

	if err := root.Execute(); err != nil {
		t.Fatalf("Execute() error: %v", err)
	}
	if !strings.Contains(out.String(), `"col-12" -> "col-md-6"`) {
		t.Errorf("DOT output missing supersession edge:\n%s", out.String())
	}
}
