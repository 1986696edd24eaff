// Command l10n localizes dashboard HTML files.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/panelkit/l10n"
	"github.com/panelkit/l10n/store"
)

// Build-time variables (can be overridden with ldflags)
var (
	version = l10n.Version
	commit  = l10n.GitCommit
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("l10n", flag.ContinueOnError)
	fs.SetOutput(stderr)

	// Flags
	lang := fs.String("lang", "", "Target language code (e.g., en, vi)")
	output := fs.String("output", "", "Output file (default: stdout)")
	outputShort := fs.String("o", "", "Output file (short for --output)")
	regions := fs.String("regions", "", "Comma-separated CSS selectors overriding the default sweep regions")
	jsonOutput := fs.Bool("json", false, "Output sweep statistics as JSON instead of the document")
	listLangs := fs.Bool("list-langs", false, "List supported languages")
	exportCatalog := fs.Bool("export-catalog", false, "Write the translation catalog as JSON and exit")
	validate := fs.Bool("validate", false, "Check catalog completeness and exit")
	showVersion := fs.Bool("version", false, "Show version")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *showVersion {
		fmt.Fprintf(stdout, "%s %s\n", l10n.Name, version)
		if commit != "unknown" && commit != "" {
			fmt.Fprintf(stdout, "  commit: %s\n", commit)
		}
		return nil
	}

	if *listLangs {
		fmt.Fprintf(stdout, "%s\t%s (source)\n", l10n.SourceLang, l10n.LanguageName(l10n.SourceLang))
		for _, l := range l10n.TargetLangs {
			fmt.Fprintf(stdout, "%s\t%s\n", l, l10n.LanguageName(l))
		}
		return nil
	}

	if *exportCatalog {
		return l10n.ExportCatalog(stdout, l10n.DefaultCatalog)
	}

	if *validate {
		missing := l10n.DefaultCatalog.Validate(l10n.TargetLangs...)
		if len(missing) == 0 {
			fmt.Fprintln(stdout, "catalog complete")
			return nil
		}
		for _, m := range missing {
			fmt.Fprintln(stdout, m)
		}
		return fmt.Errorf("%d missing translations", len(missing))
	}

	if *lang == "" {
		fs.Usage()
		return fmt.Errorf("--lang is required")
	}
	target, ok := l10n.Normalize(*lang)
	if !ok {
		return fmt.Errorf("unsupported language %q (try --list-langs)", *lang)
	}

	// Handle -o alias for --output
	if *outputShort != "" && *output == "" {
		*output = *outputShort
	}

	// Read input: file argument or stdin
	var content []byte
	var err error
	if fs.NArg() > 0 {
		content, err = os.ReadFile(fs.Arg(0))
		if err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	} else {
		content, err = io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(content)))
	if err != nil {
		return fmt.Errorf("parsing HTML: %w", err)
	}

	opts := []l10n.Option{l10n.WithStore(store.NewMemory())}
	if *regions != "" {
		var selectors []string
		for _, sel := range strings.Split(*regions, ",") {
			if sel = strings.TrimSpace(sel); sel != "" {
				selectors = append(selectors, sel)
			}
		}
		opts = append(opts, l10n.WithRegions(selectors))
	}

	session := l10n.New(doc, opts...)
	if err := session.Switch(target); err != nil {
		return err
	}

	if *jsonOutput {
		stats := struct {
			Lang    l10n.Lang `json:"lang"`
			Tracked int       `json:"tracked"`
		}{
			Lang:    session.Lang(),
			Tracked: session.Synchronizer().Tracked(),
		}
		encoder := json.NewEncoder(stdout)
		encoder.SetIndent("", "  ")
		return encoder.Encode(stats)
	}

	result, err := doc.Html()
	if err != nil {
		return fmt.Errorf("serializing HTML: %w", err)
	}

	if *output != "" {
		return os.WriteFile(*output, []byte(result), 0o644)
	}
	_, err = io.WriteString(stdout, result)
	return err
}
