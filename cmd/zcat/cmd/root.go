package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/davecgh/go-spew/spew"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/kulaginds/lzw"
	"github.com/kulaginds/lzw/internal/format"
)

var (
	// Version of the binary, set by main.
	Version string
	// Commit of the binary, set by main.
	Commit string
)

// NewRootCmd builds the zcat command tree.
func NewRootCmd() *cobra.Command {
	var printConfig bool

	rootCmd := &cobra.Command{
		Use:   "zcat [file...]",
		Short: "Decompress .Z files to standard output",
		Long: `zcat decompresses files written by compress(1) and writes the result to
standard output. gzip and zstd input is recognised by its magic bytes as well.
With no file, or when file is -, standard input is read.`,
		Args:          cobra.ArbitraryArgs,
		Version:       fmt.Sprintf("%s (%s)", Version, Commit),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			if printConfig {
				spew.Fdump(cmd.OutOrStdout(), cfg)

				return nil
			}

			logger, err := newLogger(cfg.LogLevel)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()

			return run(cmd, cfg, logger, args)
		},
	}

	setFlags(rootCmd.PersistentFlags(), defaultConfig())
	rootCmd.Flags().BoolVar(&printConfig, "print-config", false, "Print the effective configuration and exit")

	rootCmd.AddCommand(newInfoCmd())

	return rootCmd
}

// Execute runs the root command until it finishes or an interrupt arrives.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err := NewRootCmd().ExecuteContext(ctx)
	if err != nil {
		_, _ = fmt.Fprintln(os.Stderr, "zcat:", err)
		stop()
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, cfg *Config, logger *zap.Logger, args []string) (err error) {
	ctx := cmd.Context()

	out := cmd.OutOrStdout()
	if cfg.Output != "" {
		f, cerr := os.Create(cfg.Output)
		if cerr != nil {
			return cerr
		}
		defer func() { err = closeOutput(f, err) }()

		out = f
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	var rows [][]string

	for _, name := range args {
		if err := ctx.Err(); err != nil {
			return err
		}

		res, err := decompressFile(ctx, name, cmd.InOrStdin(), out, cfg)
		if err != nil {
			logger.Error("decompression failed", zap.String("input", name), zap.Error(err))

			return fmt.Errorf("%s: %w", name, err)
		}

		logger.Info("decompressed",
			zap.String("input", name),
			zap.Stringer("format", res.kind),
			zap.Int64("in", res.bytesIn),
			zap.Int64("out", res.bytesOut),
		)

		rows = append(rows, res.row())
	}

	if cfg.Stats {
		report(cmd.ErrOrStderr(), rows)
	}

	return nil
}

// closeOutput closes c and returns its error when err is nil.
func closeOutput(c io.Closer, err error) error {
	cerr := c.Close()
	if err != nil {
		return err
	}

	if cerr != nil {
		return fmt.Errorf("close output: %w", cerr)
	}

	return nil
}

type result struct {
	name     string
	kind     format.Kind
	bytesIn  int64
	bytesOut int64

	stats    lzw.Stats
	hasStats bool
}

func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}

	return os.Open(name)
}

// decompressFile copies the decompressed content of the named input to out.
func decompressFile(ctx context.Context, name string, stdin io.Reader, out io.Writer, cfg *Config) (*result, error) {
	f, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	in := &countingReader{r: f}

	r, err := format.NewReader(in, cfg.lzwOptions())
	if err != nil {
		return nil, err
	}
	defer r.Close()

	n, err := io.Copy(out, &ctxReader{ctx: ctx, r: r})
	if err != nil {
		return nil, err
	}

	res := &result{
		name:     name,
		kind:     r.Kind,
		bytesIn:  in.n,
		bytesOut: n,
	}
	res.stats, res.hasStats = r.Stats()

	return res, nil
}

type countingReader struct {
	r io.Reader
	n int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n += int64(n)

	return n, err
}

type ctxReader struct {
	ctx context.Context
	r   io.Reader
}

func (c *ctxReader) Read(p []byte) (int, error) {
	if err := c.ctx.Err(); err != nil {
		return 0, err
	}

	return c.r.Read(p)
}
