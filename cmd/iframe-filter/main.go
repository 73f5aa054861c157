package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	responsiveiframe "github.com/goliatone/go-responsive-iframe"
	"github.com/goliatone/go-responsive-iframe/internal/document"
)

// errLogOutputConflict is returned when logs and the processed document would
// share stdout. go-logger always writes to stdout.
var errLogOutputConflict = errors.New("-log-level requires -out: logs are written to stdout")

type options struct {
	configPath     string
	filePath       string
	outPath        string
	formatID       string
	langcode       string
	wrapperElement string
	wrapperClasses string
	classesSet     bool
	tips           bool
	logLevel       string
}

func main() {
	opts := options{}
	flag.StringVar(&opts.configPath, "config", "", "Path to a YAML configuration file")
	flag.StringVar(&opts.filePath, "file", "", "Input file (defaults to stdin)")
	flag.StringVar(&opts.outPath, "out", "", "Output file (defaults to stdout)")
	flag.StringVar(&opts.formatID, "format", "", "Text format to apply (defaults to front matter, then config default)")
	flag.StringVar(&opts.langcode, "langcode", "", "Language code passed to filters (defaults to front matter, then config locale)")
	flag.StringVar(&opts.wrapperElement, "wrapper-element", "", "Override the iframe wrapper element")
	flag.StringVar(&opts.wrapperClasses, "wrapper-classes", "", "Override the iframe wrapper class(es)")
	flag.BoolVar(&opts.tips, "tips", false, "Print the format tips instead of processing input")
	flag.StringVar(&opts.logLevel, "log-level", "", "Enable go-logger output on stdout at the given level (requires -out)")
	flag.Parse()

	flag.Visit(func(f *flag.Flag) {
		if f.Name == "wrapper-classes" {
			opts.classesSet = true
		}
	})

	if err := run(context.Background(), opts, os.Stdin, os.Stdout); err != nil {
		log.Fatalf("iframe-filter: %v", err)
	}
}

func run(ctx context.Context, opts options, stdin io.Reader, stdout io.Writer) error {
	if strings.TrimSpace(opts.logLevel) != "" && strings.TrimSpace(opts.outPath) == "" {
		return errLogOutputConflict
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	module, err := responsiveiframe.New(cfg)
	if err != nil {
		return fmt.Errorf("bootstrap module: %w", err)
	}

	if opts.tips {
		tips, err := module.Tips(opts.formatID, localeOr(opts.langcode, cfg.DefaultLocale), true)
		if err != nil {
			return err
		}
		for _, tip := range tips {
			fmt.Fprintln(stdout, tip)
		}
		return nil
	}

	source, err := readInput(opts.filePath, stdin)
	if err != nil {
		return err
	}
	doc, err := document.Parse(source)
	if err != nil {
		return err
	}

	formatID := firstNonEmpty(opts.formatID, doc.Format)
	langcode := firstNonEmpty(opts.langcode, doc.Langcode, cfg.DefaultLocale)

	output := stdout
	if path := strings.TrimSpace(opts.outPath); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer file.Close()
		output = file
	}

	return module.Execute(ctx, responsiveiframe.ProcessTextCommand{
		FormatID: formatID,
		Text:     doc.Body,
		Langcode: langcode,
		Output:   output,
	})
}

func loadConfig(opts options) (responsiveiframe.Config, error) {
	cfg := responsiveiframe.DefaultConfig()
	if path := strings.TrimSpace(opts.configPath); path != "" {
		loaded, err := responsiveiframe.LoadConfig(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	overrides := map[string]any{}
	if opts.wrapperElement != "" {
		overrides["wrapper_element"] = opts.wrapperElement
	}
	if opts.classesSet {
		overrides["wrapper_classes"] = opts.wrapperClasses
	}
	if len(overrides) > 0 {
		cfg = cfg.WithFilterSettings("filter_responsive_iframe", overrides)
	}

	if level := strings.TrimSpace(opts.logLevel); level != "" {
		cfg.Features.Logger = true
		cfg.Logging.Provider = "gologger"
		cfg.Logging.Level = level
	}
	return cfg, nil
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if strings.TrimSpace(path) == "" {
		return io.ReadAll(stdin)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

func localeOr(locale, fallback string) string {
	return firstNonEmpty(locale, fallback)
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
