// Package main provides the CLI entry point for tabcast.
package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ukaji3/tabcast-go/cmd/tabcast/logger"
	"github.com/ukaji3/tabcast-go/cmd/tabcast/picker"
	"github.com/ukaji3/tabcast-go/pkg/tabcast"
	"github.com/ukaji3/tabcast-go/pkg/tabcast/models"
	"github.com/ukaji3/tabcast-go/pkg/tabcast/settings"
	"github.com/ukaji3/tabcast-go/pkg/tabcast/sink"
	"github.com/ukaji3/tabcast-go/pkg/tabcast/source"
)

var (
	flagAll        bool
	flagTables     string
	flagList       bool
	flagSeparator  string
	flagQuote      string
	flagLineBreaks string
	flagBase       string
	flagClipboard  bool
	flagSave       bool
	flagDebug      bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "tabcast [document]",
		Short: "Export document tables as delimited text",
		Long: `tabcast discovers tables in a document (Markdown or XLSX), lets you
pick which ones to include, and writes the combined delimited text to a
.csv file next to the document. A rotating numeric suffix keeps
successive export filenames distinct.`,
		Args: cobra.ExactArgs(1),
		RunE: run,
	}

	rootCmd.Flags().BoolVar(&flagAll, "all", false, "Export every table without opening the picker")
	rootCmd.Flags().StringVar(&flagTables, "tables", "", "Comma-separated 1-based table numbers to export (headless)")
	rootCmd.Flags().BoolVar(&flagList, "list", false, "List discovered tables and exit")
	rootCmd.Flags().StringVar(&flagSeparator, "sep", "", "Cell separator: ; , tab | ~ ^ :")
	rootCmd.Flags().StringVar(&flagQuote, "quote", "", "Quote style: none, double, single")
	rootCmd.Flags().StringVar(&flagLineBreaks, "linebreaks", "", "Line-break handling: strip, space, token")
	rootCmd.Flags().StringVar(&flagBase, "base", "", "Output filename stem")
	rootCmd.Flags().BoolVar(&flagClipboard, "clipboard", false, "Also copy the export to the clipboard")
	rootCmd.Flags().BoolVar(&flagSave, "save", false, "Persist the given conversion flags as new defaults")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "Write debug logs to ~/.tabcast/debug.log")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	docPath := args[0]

	if err := logger.Init(flagDebug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to init logging: %v\n", err)
	}

	if _, err := os.Stat(docPath); err != nil {
		return fmt.Errorf("document not found: %s", docPath)
	}

	set, err := settings.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: using default settings: %v\n", err)
	}
	if err := applyOverrides(cmd, set); err != nil {
		return err
	}
	cfg, err := set.Config()
	if err != nil {
		return err
	}
	if flagSave {
		if err := settings.Save(set); err != nil {
			return fmt.Errorf("save settings: %w", err)
		}
	}

	src, err := source.Open(docPath)
	if err != nil {
		return err
	}
	if src.Mode() != source.ModeReading {
		return tabcast.ErrNotReadingMode
	}
	tables, err := src.Tables()
	if err != nil {
		return err
	}
	if len(tables) == 0 {
		fmt.Printf("No table found in %s.\n", filepath.Base(docPath))
		return nil
	}
	logger.Info("tables discovered", "document", docPath, "count", len(tables))

	if flagList {
		for i, t := range tables {
			fmt.Println(picker.Preview(t, i, 100))
		}
		return nil
	}

	sel, ok, err := selectTables(tables)
	if err != nil {
		return err
	}
	if !ok {
		fmt.Println("Export cancelled.")
		return nil
	}

	absPath, err := filepath.Abs(docPath)
	if err != nil {
		return err
	}

	copyToClipboard := set.CopyToClipboard
	if cmd.Flags().Changed("clipboard") {
		copyToClipboard = flagClipboard
	}

	sess, err := tabcast.NewSession(tables, cfg, tabcast.SessionOptions{
		BaseName:        set.BaseFilename,
		Counter:         set.Counter,
		CopyToClipboard: copyToClipboard,
		Storage:         sink.NewDir(filepath.Dir(absPath)),
		Clipboard:       sink.SystemClipboard{},
		PersistCounter: func(next string) error {
			set.Counter = next
			return settings.Save(set)
		},
	})
	if err != nil {
		return err
	}
	for _, i := range sel.Confirm() {
		sess.Toggle(i, true)
	}

	res, err := sess.Export()
	switch {
	case errors.Is(err, tabcast.ErrEmptySelection):
		fmt.Println("No tables selected.")
		return nil
	case errors.Is(err, tabcast.ErrEmptyResult):
		fmt.Println("No data to export.")
		return nil
	case err != nil:
		return err
	}

	logger.Info("export complete", "file", res.Filename, "tables", res.TableCount, "next_counter", res.NextCounter)
	if res.Copied {
		fmt.Printf("Created %s (%d tables) and copied to clipboard.\n", res.Filename, res.TableCount)
	} else {
		fmt.Printf("Created %s (%d tables).\n", res.Filename, res.TableCount)
	}
	if res.ClipboardErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", res.ClipboardErr)
	}
	if res.PersistErr != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings not saved: %v\n", res.PersistErr)
	}
	return nil
}

// applyOverrides folds per-invocation conversion flags into the loaded
// settings. Overrides are validated against the fixed enums and only
// persist when --save is given.
func applyOverrides(cmd *cobra.Command, set *settings.Settings) error {
	if cmd.Flags().Changed("sep") {
		sep, err := tabcast.ParseSeparator(flagSeparator)
		if err != nil {
			return err
		}
		set.Separator = string(sep)
	}
	if cmd.Flags().Changed("quote") {
		quote, err := tabcast.ParseQuoteStyle(flagQuote)
		if err != nil {
			return err
		}
		set.Quote = string(quote)
	}
	if cmd.Flags().Changed("linebreaks") {
		lb, err := tabcast.ParseLineBreakPolicy(flagLineBreaks)
		if err != nil {
			return err
		}
		set.LineBreaks = string(lb)
	}
	if cmd.Flags().Changed("base") {
		if flagBase == "" {
			return fmt.Errorf("base filename must not be empty")
		}
		set.BaseFilename = flagBase
	}
	if cmd.Flags().Changed("clipboard") {
		set.CopyToClipboard = flagClipboard
	}
	return nil
}

// selectTables resolves the selection from flags or the interactive
// picker. The second return value is false when the user cancelled.
func selectTables(tables []models.Table) (*tabcast.Selection, bool, error) {
	switch {
	case flagAll:
		sel := tabcast.NewSelection()
		for i := range tables {
			sel.Toggle(i, true)
		}
		return sel, true, nil

	case flagTables != "":
		sel := tabcast.NewSelection()
		for _, part := range strings.Split(flagTables, ",") {
			n, err := strconv.Atoi(strings.TrimSpace(part))
			if err != nil || n < 1 || n > len(tables) {
				return nil, false, fmt.Errorf("invalid table number %q (document has %d tables)", part, len(tables))
			}
			sel.Toggle(n-1, true)
		}
		return sel, true, nil

	default:
		return picker.Run(tables)
	}
}
