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
	"github.com/goldenagents/saagraph/export"
	"github.com/goldenagents/saagraph/linkage"
	"github.com/goldenagents/saagraph/source"
	"github.com/goldenagents/saagraph/vocabulary/saa"
)

func linkCmd(configPath, logLevel *string) *cobra.Command {
	return &cobra.Command{
		Use:   "link",
		Short: "Propose cross-dataset co-reference links from a candidate table",
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

			return runLink(ctx, cfg, nc, logger)
		},
	}
}

func runLink(ctx context.Context, cfg *config.Config, nc *natsclient.Client, logger *slog.Logger) error {
	if len(cfg.Matching.Candidates) == 0 {
		logger.Warn("No candidate inputs configured, nothing to link")
		return nil
	}

	files, err := source.ResolveInputs(cfg.Matching.Candidates)
	if err != nil {
		return err
	}

	var candidates []linkage.Candidate
	for _, path := range files {
		rows, err := linkage.ReadCandidatesFile(path, logger)
		if err != nil {
			return err
		}
		candidates = append(candidates, rows...)
		logger.Debug("Candidates read", "path", path, "rows", len(rows))
	}

	var actTypes []saa.ActType
	for _, t := range cfg.Matching.ActTypes {
		actTypes = append(actTypes, saa.ActType(t))
	}

	engine := linkage.NewEngine(cfg.Matching.Threshold, actTypes, logger)
	ls, report := engine.Run(candidates)

	logger.Info("Linkage run complete",
		"run_id", report.RunID,
		"scored", report.Scored,
		"accepted", report.Accepted,
		"duplicate", report.Duplicate,
		"below_threshold", report.BelowThreshold,
		"excluded_act_type", report.ExcludedActType,
		"skipped", report.Skipped,
		"inventories", len(ls.Inventories()))

	if err := os.MkdirAll(cfg.Output.Dir, 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	path := filepath.Join(cfg.Output.Dir, cfg.Output.Linkset)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()

	if err := export.WriteLinkset(f, ls); err != nil {
		return err
	}
	logger.Info("Linkset written", "path", path, "links", ls.Len())

	if err := linkage.PublishLinkset(ctx, nc, ls); err != nil {
		return err
	}
	return nil
}
