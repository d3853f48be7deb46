package main

import (
	"context"
	"fmt"
	"io"

	"github.com/fwojciec/ogimage"
)

// DefaultPath is the page read when no path is given.
const DefaultPath = "yt_channel.html"

// Scanner names accepted by --parser.
const (
	ParserTokenizer = "tokenizer"
	ParserDOM       = "dom"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer

	Documents ogimage.DocumentReader
	Scanner   ogimage.Scanner
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Path    string `arg:"" optional:"" default:"${default_path}" help:"Saved HTML page to read"`
	Parser  string `short:"p" enum:"tokenizer,dom" default:"tokenizer" help:"Markup scanner: tokenizer (streaming) or dom (goquery)"`
	Verbose bool   `short:"v" help:"Log reads and scans to stderr"`
}

// Extractor prints the og:image URL of a single page.
type Extractor struct {
	Path string
}

// Run reads the page, scans it, and prints the URL or the NotFound sentinel.
// A page without og:image is not an error; failing to write the line is.
func (c *Extractor) Run(deps *Dependencies) error {
	doc, err := deps.Documents.ReadDocument(deps.Ctx, c.Path)
	if err != nil {
		return err
	}

	result := ogimage.FindImage(deps.Scanner, doc)
	if _, err := fmt.Fprintln(deps.Stdout, ogimage.FormatResult(result)); err != nil {
		return fmt.Errorf("failed to write result: %w", err)
	}
	return nil
}
