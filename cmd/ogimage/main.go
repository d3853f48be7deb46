package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/ogimage"
	"github.com/fwojciec/ogimage/fs"
	"github.com/fwojciec/ogimage/goquery"
	"github.com/fwojciec/ogimage/html"
	ogslog "github.com/fwojciec/ogimage/slog"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ogimage"),
		kong.Description("Print the og:image URL of a saved HTML page"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Vars{"default_path": DefaultPath},
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	// Handle help flags
	if len(args) == 1 && (args[0] == "--help" || args[0] == "-h") {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	if _, err := parser.Parse(args); err != nil {
		return err
	}

	// Wire dependencies
	deps := &Dependencies{
		Ctx:       ctx,
		Stdout:    stdout,
		Stderr:    stderr,
		Documents: fs.NewDocumentReader(),
		Scanner:   newScanner(cli.Parser),
	}

	if cli.Verbose {
		logger := slog.New(slog.NewTextHandler(stderr, nil))
		deps.Documents = ogslog.NewLoggingDocumentReader(deps.Documents, logger)
		deps.Scanner = ogslog.NewLoggingScanner(deps.Scanner, logger)
	}

	extractor := &Extractor{Path: cli.Path}
	return extractor.Run(deps)
}

// newScanner returns the scanner registered under name.
// Kong has already validated name against the parser enum.
func newScanner(name string) ogimage.Scanner {
	if name == ParserDOM {
		return goquery.NewScanner()
	}
	return html.NewScanner()
}
