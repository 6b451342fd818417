package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jessevdk/go-flags"
	"github.com/lestrrat-go/forest"
	"github.com/lestrrat-go/forest/node"
	"github.com/lestrrat-go/forest/s11n"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
)

const (
	formatOutline = "outline"
	formatJSON    = "json"
)

type cmdopts struct {
	Format   string `long:"format" choice:"outline" choice:"json" description:"output format"`
	Encoding string `long:"encoding" description:"charset of the input"`
	Fragment bool   `long:"fragment" description:"parse the input as a fragment"`
	Context  string `long:"context" description:"context element for --fragment (default: body)"`
	NoScript bool   `long:"noscript" description:"parse as if scripting were disabled"`
	Errors   bool   `long:"errors" description:"report parse errors on stderr"`
	Config   string `long:"config" description:"YAML file with default options"`
	Verbose  bool   `long:"verbose" description:"log debug messages"`
	Trace    bool   `long:"trace" description:"trace every tree construction event on stderr"`
	Version  bool   `long:"version" description:"display the version of the library used"`
}

type input struct {
	name string
	r    io.ReadCloser
}

func main() {
	os.Exit(_main(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func showVersion(out io.Writer) {
	fmt.Fprintf(out, "forest-lint: using forest version %s\n", forest.Version)
}

func showUsage(out io.Writer) {
	fmt.Fprintf(out, `Usage : forest-lint [options] HTMLfiles ...
	Parse the HTML files and output the resulting tree
	--format=outline|json : output format (default: outline)
	--encoding=NAME : charset of the input (default: utf-8)
	--fragment : parse the input as a fragment
	--context=TAG : context element for --fragment (default: body)
	--noscript : parse as if scripting were disabled
	--errors : report parse errors on stderr
	--config=FILE : read default options from a YAML file
	--verbose : log debug messages
	--trace : trace tree construction events
	--version : display the version of the library used
`)
}

func newLogger(out io.Writer, verbose bool) *zap.Logger {
	level := zap.InfoLevel
	if verbose {
		level = zap.DebugLevel
	}
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
		zapcore.AddSync(out),
		level,
	)
	return zap.New(core)
}

func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

func _main(ctx context.Context, argv []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts := cmdopts{}
	args, err := flags.NewParser(&opts, flags.PassDoubleDash).ParseArgs(argv)
	if err != nil {
		fmt.Fprintf(stderr, "%s\n", err)
		showUsage(stderr)
		return 1
	}

	if opts.Version {
		showVersion(stdout)
		return 0
	}

	logger := newLogger(stderr, opts.Verbose)
	defer func() { _ = logger.Sync() }()

	cfg, err := loadConfig(opts.Config)
	if err != nil {
		logger.Error("failed to load config", zap.Error(err))
		return 1
	}
	opts.merge(cfg)
	logger.Debug("options", zap.String("format", opts.Format), zap.String("encoding", opts.Encoding), zap.Bool("fragment", opts.Fragment))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if opts.Trace {
		tlog := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		ctx = forest.WithTraceLogger(ctx, tlog)
	}

	var sources []func() (input, error)
	switch {
	case len(args) > 0: // filename present
		for _, f := range args {
			sources = append(sources, func() (input, error) {
				fh, err := os.Open(f)
				if err != nil {
					return input{}, err
				}
				return input{name: f, r: fh}, nil
			})
		}
	case !isTerminal(stdin):
		sources = append(sources, func() (input, error) {
			return input{name: "-", r: io.NopCloser(stdin)}, nil
		})
	default:
		showUsage(stderr)
		return 1
	}

	// inputs are opened on a separate goroutine and parsed here, in order
	inputCh := make(chan input)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		defer close(inputCh)
		for _, open := range sources {
			in, err := open()
			if err != nil {
				return err
			}
			select {
			case inputCh <- in:
			case <-gctx.Done():
				_ = in.r.Close()
				return gctx.Err()
			}
		}
		return nil
	})

	for in := range inputCh {
		err := process(ctx, &opts, in, stdout, stderr, logger)
		_ = in.r.Close()
		if err != nil {
			logger.Error("failed to process input", zap.String("input", in.name), zap.Error(err))
			cancel()
			_ = g.Wait()
			return 1
		}
	}

	if err := g.Wait(); err != nil {
		logger.Error("failed to open input", zap.Error(err))
		return 1
	}

	return 0
}

func parseOptions(opts *cmdopts) []forest.ParseOption {
	var options []forest.ParseOption
	if opts.Encoding != "" {
		options = append(options, forest.WithEncoding(opts.Encoding))
	}
	if opts.NoScript {
		options = append(options, forest.WithScripting(false))
	}
	return options
}

func process(ctx context.Context, opts *cmdopts, in input, stdout, stderr io.Writer, logger *zap.Logger) error {
	var doc *forest.Document
	var err error
	if opts.Fragment {
		doc, err = forest.ParseFragment(ctx, in.r, node.HTMLName(opts.Context), parseOptions(opts)...)
	} else {
		doc, err = forest.Parse(ctx, in.r, parseOptions(opts)...)
	}
	if err != nil {
		return err
	}

	errs := doc.Errors()
	logger.Debug("parsed input",
		zap.String("input", in.name),
		zap.Int("nodes", doc.Tree().Len()),
		zap.Int("errors", len(errs)),
		zap.Stringer("quirks", doc.QuirksMode()),
	)
	if opts.Errors {
		for _, msg := range errs {
			fmt.Fprintf(stderr, "%s: %s\n", in.name, msg)
		}
	}

	switch opts.Format {
	case formatJSON:
		return s11n.EncodeJSON(stdout, doc)
	default:
		d := s11n.Dumper{}
		return d.DumpDocument(stdout, doc)
	}
}
