// Package cli implements the table2md command.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/bjaus/table2md"
	"github.com/bjaus/table2md/internal/config"
	"github.com/bjaus/table2md/internal/ctxlog"
	"github.com/bjaus/table2md/internal/input"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// version is set at build time.
var version = "dev"

// ErrNoInput is returned when no file is given and stdin is a terminal.
var ErrNoInput = errors.New("no input: pass a file or pipe data to stdin")

// ErrNoConfigPath is returned by --save-config when neither --config,
// $TABLE2MD_CONFIG nor a home directory gives a place to write.
var ErrNoConfigPath = errors.New("no config path")

type options struct {
	input      string
	end        string
	flush      bool
	configPath string
	debug      bool
	saveConfig bool
}

// NewRootCmd returns the table2md command.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "table2md [file]",
		Short: "Print tabular data as a Markdown table",
		Long: `table2md reads a JSON, YAML, CSV or TSV document and prints it as a
Markdown table.

JSON and YAML documents are either a list of lists, the first being the
header, or a list of objects, the first object's keys being the header.

Reads stdin when no file, or "-", is given.

Environment Variables:
  TABLE2MD_CONFIG  Config file path`,
		Args:          cobra.MaximumNArgs(1),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&opts.input, "input", "i", "", "input format: json, yaml, csv, tsv (default: from the file extension, else json)")
	f.StringVar(&opts.end, "end", "", "text written after the table")
	f.BoolVar(&opts.flush, "flush", false, "flush output after writing")
	f.StringVar(&opts.configPath, "config", "", "config file (default $TABLE2MD_CONFIG, then ~/.config/table2md/config.yaml)")
	f.BoolVar(&opts.debug, "debug", false, "log debug output to stderr")
	f.BoolVar(&opts.saveConfig, "save-config", false, "write the given flags to the config file and exit")
	return cmd
}

// Execute runs the command with args and reports any error on stderr.
func Execute(ctx context.Context, args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Error:", err)
	}
	return err
}

func run(cmd *cobra.Command, opts *options, args []string) error {
	cfg, path, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.saveConfig {
		return saveConfig(cmd, opts, cfg, path)
	}

	debug := cfg.Debug
	if cmd.Flags().Changed("debug") {
		debug = opts.debug
	}
	ctx := ctxlog.WithLogger(cmd.Context(), ctxlog.New(cmd.ErrOrStderr(), debug))

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	format, err := resolveFormat(cmd, opts, cfg, source)
	if err != nil {
		return err
	}

	tbl, err := load(ctx, source, format, cmd.InOrStdin())
	if err != nil {
		return err
	}

	end := cfg.End
	if cmd.Flags().Changed("end") {
		end = opts.end
	}
	flush := cfg.Flush
	if cmd.Flags().Changed("flush") {
		flush = opts.flush
	}
	return tbl.Print(
		table2md.WithWriter(cmd.OutOrStdout()),
		table2md.WithEnd(end),
		table2md.WithFlush(flush),
	)
}

// loadConfig returns the config and the path it was read from. The path is
// empty when there is no home directory to default to.
func loadConfig(path string) (*config.Config, string, error) {
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			// No home directory; run with defaults.
			return &config.Config{}, "", nil
		}
		path = p
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

// saveConfig merges the flags set on this run into cfg and writes it back.
func saveConfig(cmd *cobra.Command, opts *options, cfg *config.Config, path string) error {
	if path == "" {
		return ErrNoConfigPath
	}
	flags := cmd.Flags()
	if flags.Changed("input") {
		format, err := input.ParseFormat(opts.input)
		if err != nil {
			return err
		}
		cfg.Input = string(format)
	}
	if flags.Changed("end") {
		cfg.End = opts.end
	}
	if flags.Changed("flush") {
		cfg.Flush = opts.flush
	}
	if flags.Changed("debug") {
		cfg.Debug = opts.debug
	}
	if err := cfg.Save(path); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(cmd.ErrOrStderr(), "Saved config to", path)
	return nil
}

// resolveFormat picks the input format: --input, then the file extension,
// then the config file, then JSON.
func resolveFormat(cmd *cobra.Command, opts *options, cfg *config.Config, source string) (input.Format, error) {
	if cmd.Flags().Changed("input") {
		return input.ParseFormat(opts.input)
	}
	if f, ok := input.FormatFromPath(source); ok {
		return f, nil
	}
	if cfg.Input != "" {
		return input.ParseFormat(cfg.Input)
	}
	return input.JSON, nil
}

func load(ctx context.Context, source string, format input.Format, stdin io.Reader) (*table2md.Table, error) {
	logger := ctxlog.FromContext(ctx)

	r, closeFn, err := openSource(source, stdin)
	if err != nil {
		return nil, err
	}
	defer closeFn()

	logger.Debug("decoding input", "source", source, "format", format)
	tbl, err := input.Decode(r, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("decoded table", "rows", len(tbl.Data))
	return tbl, nil
}

func openSource(source string, stdin io.Reader) (io.Reader, func(), error) {
	if source == "-" {
		if stdin == nil {
			stdin = os.Stdin
		}
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, nil, ErrNoInput
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(source)
	if err != nil {
		return nil, nil, fmt.Errorf("opening input: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
