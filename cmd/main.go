package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/luca-patrignani/showdown/config"
)

func main() {
	configPath := flag.String("config", "showdown.yaml", "YAML config file, ignored when missing")
	rules := flag.String("rules", "", "rule set: faithful or standard")
	output := flag.String("output", "", "output style: panel or plain")
	reference := flag.Bool("reference", false, "also show the verdict of the reference evaluator")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [\"<10 cards>\" ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "\nEach argument is a deal of ten cards, the first five for the left hand.\n")
		fmt.Fprintf(os.Stderr, "Without arguments deals are read from stdin, one per line.\n\n")
		fmt.Fprintf(os.Stderr, "  %s \"3H 6H KH 2H 4H 2D 7H 7H KS JH\"\n\nFlags:\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	// flags override the file and the environment
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rules":
			cfg.Rules = *rules
		case "output":
			cfg.Output = *output
		case "reference":
			cfg.Reference = *reference
		}
	})
	if err := cfg.Validate(); err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}

	logger := newLogger(cfg.LogLevel)
	logger.Debug("configuration loaded", "rules", cfg.Rules, "output", cfg.Output, "reference", cfg.Reference)

	if err := run(cfg, flag.Args(), os.Stdin, logger); err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}
}

func run(cfg *config.Config, args []string, in io.Reader, logger *slog.Logger) error {
	rules, err := cfg.RuleSet()
	if err != nil {
		return err
	}
	deals, err := readDeals(args, in)
	if err != nil {
		return err
	}
	if len(deals) == 0 {
		return errors.New("no deals to evaluate")
	}

	if cfg.Output == "panel" {
		pterm.DefaultBigText.WithLetters(
			putils.LettersFromStringWithStyle("Show", pterm.FgRed.ToStyle()),
			putils.LettersFromStringWithStyle("down", pterm.FgDarkGray.ToStyle()),
		).Render()
	}

	for _, d := range deals {
		v, err := judge(d, rules, cfg.Reference)
		if err != nil {
			return fmt.Errorf("%s: %w", d.source, err)
		}
		logger.Debug("deal evaluated",
			"deal", d.source,
			"left", v.Left.Category.String(),
			"right", v.Right.Category.String(),
			"outcome", v.Outcome.String())
		if v.disagrees() {
			logger.Warn("reference evaluator disagrees",
				"deal", d.source,
				"rules", rules.String(),
				"outcome", v.Outcome.String(),
				"reference", v.reference.outcome.String())
		}
		if err := printVerdict(cfg.Output, v); err != nil {
			return err
		}
	}
	return nil
}

func printVerdict(output string, v verdict) error {
	if output == "plain" {
		pterm.Println(plainLine(v))
		return nil
	}
	panel, err := renderPanel(v)
	if err != nil {
		return err
	}
	pterm.DefaultHeader.WithBackgroundStyle(pterm.BgGreen.ToStyle()).Println(outcomeHeader(v))
	pterm.Println(panel)
	return nil
}

// newLogger creates a slog logger backed by the pterm logger.
func newLogger(level string) *slog.Logger {
	return slog.New(pterm.NewSlogHandler(pterm.DefaultLogger.WithLevel(logLevel(level))))
}

func logLevel(level string) pterm.LogLevel {
	switch level {
	case "debug":
		return pterm.LogLevelDebug
	case "warn":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
