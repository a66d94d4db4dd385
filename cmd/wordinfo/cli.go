package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/wordinfo"
	"github.com/fwojciec/wordinfo/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx      context.Context
	Stdout   io.Writer
	Stderr   io.Writer
	Logger   *slog.Logger
	JSON     bool
	Lookup   wordinfo.LookupService
	Importer *sqlite.Importer
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Timeout   time.Duration `default:"10s" env:"WORDINFO_TIMEOUT" help:"Timeout for a single page fetch"`
	Dataset   string        `env:"WORDINFO_DATASET" placeholder:"DIR" help:"Directory of per-letter dataset files (bundled data when empty)"`
	DB        string        `name:"db" env:"WORDINFO_DB" placeholder:"PATH" help:"SQLite dataset built with 'wordinfo import'"`
	Browser   bool          `help:"Fetch pages with headless Chrome"`
	UserAgent string        `name:"user-agent" env:"WORDINFO_USER_AGENT" help:"User-Agent header for page fetches"`
	JSON      bool          `name:"json" help:"Print results as JSON"`
	Verbose   bool          `short:"v" help:"Log fetches, dataset reads and lookups to stderr"`

	DictionaryURL string `name:"dictionary-url" env:"WORDINFO_DICTIONARY_URL" hidden:"" help:"Dictionary page URL template"`
	ThesaurusURL  string `name:"thesaurus-url" env:"WORDINFO_THESAURUS_URL" hidden:"" help:"Thesaurus page URL template"`

	Meaning MeaningCmd `cmd:"" help:"Show meanings grouped by part of speech"`
	Synonym SynonymCmd `cmd:"" help:"List synonyms"`
	Antonym AntonymCmd `cmd:"" help:"List antonyms"`
	Pos     PosCmd     `cmd:"" help:"Show part of speech"`
	Import  ImportCmd  `cmd:"" help:"Import dataset files into the SQLite database"`
}

// MeaningCmd is the "meaning" subcommand.
type MeaningCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// SynonymCmd is the "synonym" subcommand.
type SynonymCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// AntonymCmd is the "antonym" subcommand.
type AntonymCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// PosCmd is the "pos" subcommand.
type PosCmd struct {
	Word string `arg:"" help:"Word to look up"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Dir string `arg:"" type:"existingdir" help:"Directory of per-letter dataset files"`
}

// print writes v as indented JSON when --json is set and text otherwise.
func (deps *Dependencies) print(v any, text string) error {
	if deps.JSON {
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	if text != "" {
		fmt.Fprintln(deps.Stdout, text)
	}
	return nil
}

// fail reports err on stderr the way users should read it and returns it.
func (deps *Dependencies) fail(err error) error {
	fmt.Fprintf(deps.Stderr, "error: %s\n", wordinfo.ErrorMessage(err))
	return err
}
