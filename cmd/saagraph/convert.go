package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/c360studio/semstreams/natsclient"

	"github.com/goldenagents/saagraph/config"
	"github.com/goldenagents/saagraph/convert"
	"github.com/goldenagents/saagraph/export"
	"github.com/goldenagents/saagraph/graph"
	"github.com/goldenagents/saagraph/source"
	"github.com/goldenagents/saagraph/vocabulary/tgn"
)

func convertCmd(configPath, logLevel *string) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "convert",
		Short: "Convert source CSV files into the entity graph",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup(*configPath, *logLevel)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			nc, err := connectNATS(cfg, logger)
			if err != nil {
				return err
			}
			defer closeNATS(ctx, nc)

			if err := runConvert(ctx, cfg, nc, logger); err != nil {
				return err
			}
			if !watch {
				return nil
			}
			return watchConvert(ctx, cfg, nc, logger)
		},
	}

	cmd.Flags().BoolVar(&watch, "watch", false, "Re-run conversion when source files change")
	return cmd
}

// runConvert builds one graph per configured dataset, serializes each to
// the output directory, and optionally publishes the entities.
func runConvert(ctx context.Context, cfg *config.Config, nc *natsclient.Client, logger *slog.Logger) error {
	if len(cfg.Datasets) == 0 {
		logger.Warn("No datasets configured, nothing to convert")
		return nil
	}

	format, err := export.ParseFormat(cfg.Output.Format)
	if err != nil {
		return err
	}
	info, _ := export.GetFormatInfo(format)

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	schemas := convert.Schemas()
	gaz := tgn.Default()

	for _, ds := range cfg.Datasets {
		g, err := buildDataset(ds, schemas[ds.Schema], gaz, logger)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", ds.Name, err)
		}

		out, err := export.NewExporter(g).Export(format)
		if err != nil {
			return fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
		path := filepath.Join(cfg.Output.Dir, ds.Name+info.Extension)
		if err := os.WriteFile(path, []byte(out), 0644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		logger.Info("Dataset written", "dataset", ds.Name, "path", path,
			"entities", len(g.Entities()), "triples", g.Len())

		if err := graph.Publish(ctx, nc, g); err != nil {
			return fmt.Errorf("dataset %s: %w", ds.Name, err)
		}
	}

	return nil
}

// buildDataset reads one dataset's description and contents inputs into a
// fresh graph partition.
func buildDataset(ds config.DatasetConfig, schema *convert.Schema, gaz *tgn.Gazetteer, logger *slog.Logger) (*graph.Graph, error) {
	b := convert.NewBuilder(schema, gaz, graph.New(schema.Dataset), logger)
	b.AddGazetteerLabels()

	descriptions, err := source.ResolveInputs(ds.Descriptions)
	if err != nil {
		return nil, err
	}
	for _, path := range descriptions {
		rows, err := source.ReadFile(path, logger)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			b.AddDescription(row)
		}
		logger.Debug("Descriptions read", "dataset", ds.Name, "path", path, "rows", len(rows))
	}

	contents, err := source.ResolveInputs(ds.Contents)
	if err != nil {
		return nil, err
	}
	for _, path := range contents {
		rows, err := source.ReadFile(path, logger)
		if err != nil {
			return nil, err
		}
		for _, row := range rows {
			b.AddItem(row)
		}
		logger.Debug("Contents read", "dataset", ds.Name, "path", path, "rows", len(rows))
	}

	return b.Graph(), nil
}

// watchConvert re-runs the conversion whenever a source file changes, until
// the context is cancelled.
func watchConvert(ctx context.Context, cfg *config.Config, nc *natsclient.Client, logger *slog.Logger) error {
	var patterns []string
	for _, ds := range cfg.Datasets {
		patterns = append(patterns, ds.Descriptions...)
		patterns = append(patterns, ds.Contents...)
	}
	paths, err := source.ResolveInputs(patterns)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("nothing to watch")
	}

	watcher, err := source.NewWatcher(source.WatcherConfig{Paths: paths, Logger: logger})
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	if err := watcher.Start(ctx); err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.Info("Watch stopped")
			return nil
		case changed := <-watcher.Changes():
			logger.Info("Source files changed, re-converting", "files", len(changed))
			if err := runConvert(ctx, cfg, nc, logger); err != nil {
				// Keep watching; a half-written export will fire again.
				logger.Error("Conversion failed", "error", err)
			}
		}
	}
}
