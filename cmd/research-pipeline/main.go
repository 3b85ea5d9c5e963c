package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nlpodyssey/research-pipeline-go/archive"
	"github.com/nlpodyssey/research-pipeline-go/config"
	"github.com/nlpodyssey/research-pipeline-go/model"
	"github.com/nlpodyssey/research-pipeline-go/pipeline"
	"github.com/nlpodyssey/research-pipeline-go/report"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	topic := flag.String("topic", "", "research topic (prompted for interactively when empty)")
	verbose := flag.Bool("v", false, "enable verbose logging")
	flag.Parse()

	if *verbose {
		pipeline.EnableVerboseStdoutLogging()
	}

	err := run(context.Background(), *configPath, *topic, os.Stdin, os.Stdout)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, configPath, topic string, r io.Reader, w io.Writer) error {
	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return err
	}
	cfg.FromEnv()

	provider := model.NewOpenAIProvider(cfg.ProviderParams())
	m, err := provider.GetModel(cfg.OpenAI.Model)
	if err != nil {
		return err
	}

	return runPipeline(ctx, cfg, cfg.RetryPolicy().Wrap(m), topic, r, w)
}

func runPipeline(ctx context.Context, cfg config.Config, m model.Model, topic string, r io.Reader, w io.Writer) error {
	bufReader := bufio.NewReader(r)

	if topic == "" {
		fmt.Fprint(w, "Enter a research topic: ")
		line, err := readLine(bufReader)
		if err != nil {
			return err
		}
		topic = line
	}

	result, err := pipeline.New(m).
		WithHooks(pipeline.NewConsoleHooksW(w)).
		Run(ctx, topic)
	if err != nil {
		return err
	}

	rule := strings.Repeat("=", 60)
	fmt.Fprintf(w, "\n%s\nFINAL SUMMARY:\n%s\n%s\n", rule, rule, result.FinalSummary)

	fmt.Fprint(w, "\nSave full report to file? (y/n): ")
	answer, err := readLine(bufReader)
	if err != nil {
		return err
	}
	if strings.ToLower(strings.TrimSpace(answer)) == "y" {
		filename := result.DefaultFilename()
		if cfg.OutputDir != "" {
			filename = filepath.Join(cfg.OutputDir, filename)
		}
		if err = result.WriteFile(filename); err != nil {
			return err
		}
		fmt.Fprintf(w, "Results saved to %s\n", filename)
	}

	if cfg.Archive.Driver != "" {
		return archiveReport(ctx, cfg.Archive, result, w)
	}
	return nil
}

// Read one line, treating EOF as an empty answer.
func readLine(r *bufio.Reader) (string, error) {
	line, _, err := r.ReadLine()
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	return string(line), nil
}

func archiveReport(ctx context.Context, cfg config.ArchiveConfig, r *report.Report, w io.Writer) (err error) {
	var store archive.Store
	var closeStore func() error

	switch cfg.Driver {
	case "sqlite":
		s, err := archive.NewSQLiteStore(ctx, archive.SQLiteStoreParams{
			DBDataSourceName: cfg.DSN,
			ReportsTable:     cfg.Table,
		})
		if err != nil {
			return err
		}
		store, closeStore = s, s.Close
	case "postgres":
		s, err := archive.NewPgStore(ctx, archive.PgStoreParams{
			ConnectionString: cfg.DSN,
			ReportsTable:     cfg.Table,
		})
		if err != nil {
			return err
		}
		store, closeStore = s, func() error { return s.Close(ctx) }
	default:
		return fmt.Errorf("unsupported archive driver %q", cfg.Driver)
	}

	defer func() {
		if e := closeStore(); e != nil {
			err = errors.Join(err, e)
		}
	}()

	stored, err := store.Save(ctx, *r)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "Report archived as %s\n", stored.ID)
	return err
}
