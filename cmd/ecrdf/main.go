// Package main provides the ecrdf binary entry point. ecrdf projects a
// class-based repository snapshot into an append-only Turtle document.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/ecgraph/ecrdf/config"
	"github.com/ecgraph/ecrdf/export"
	"github.com/ecgraph/ecrdf/mapper"
	"github.com/ecgraph/ecrdf/metric"
	"github.com/ecgraph/ecrdf/publish"
	"github.com/ecgraph/ecrdf/repofile"
	"github.com/ecgraph/ecrdf/turtle"
)

const (
	Version = "0.1.0"
	appName = "ecrdf"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:     appName,
		Short:   "Project class-based repository snapshots into RDF/Turtle",
		Version: Version,
	}
	root.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	root.AddCommand(exportCmd())
	return root
}

func exportCmd() *cobra.Command {
	var (
		configPath string
		inputPath  string
		outputPath string
		doPublish  bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export a repository snapshot as Turtle",
		RunE: func(cmd *cobra.Command, _ []string) error {
			level, _ := cmd.Flags().GetString("log-level")
			logger := newLogger(level)

			cfg := config.DefaultConfig()
			if configPath != "" {
				loaded, err := config.LoadFromFile(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if outputPath != "" {
				cfg.Output.Path = outputPath
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			return runExport(cmd.Context(), logger, cfg, inputPath, doPublish)
		},
	}

	cmd.Flags().StringVarP(&inputPath, "input", "i", "", "repository snapshot file (YAML)")
	cmd.Flags().StringVarP(&outputPath, "output", "o", "", "Turtle output path (overrides config)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "config file path")
	cmd.Flags().BoolVar(&doPublish, "publish", false, "publish the finished document to NATS")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}

func runExport(ctx context.Context, logger *slog.Logger, cfg *config.Config, inputPath string, doPublish bool) error {
	snap, err := repofile.Load(inputPath)
	if err != nil {
		return err
	}

	w, err := turtle.NewFileWriter(cfg.Output.Path)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	metrics := metric.NewMetrics()
	if err := metrics.Register(reg); err != nil {
		return err
	}

	opts := []mapper.Option{
		mapper.WithLogger(logger),
		mapper.WithMetrics(metrics),
		mapper.WithConvention(cfg.Convention()),
	}
	if cfg.Mapping.Dedupe {
		opts = append(opts, mapper.WithDedupe())
	}

	exporter := export.New(w, opts...)
	exporter.SetLogger(logger)

	if err := snap.Walk(exporter); err != nil {
		_ = w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	logger.Info("export complete",
		"output", cfg.Output.Path,
		"schemas", len(snap.Schemas),
		"triples", int(countTriples(reg)))

	if doPublish {
		if cfg.NATS.Subject == "" {
			return fmt.Errorf("publishing requested but nats.subject is not configured")
		}
		return publishDocument(ctx, logger, cfg)
	}
	return nil
}

func publishDocument(ctx context.Context, logger *slog.Logger, cfg *config.Config) error {
	data, err := os.ReadFile(cfg.Output.Path)
	if err != nil {
		return fmt.Errorf("read turtle artifact: %w", err)
	}

	p, err := publish.New(cfg.NATS.URL, cfg.NATS.Subject)
	if err != nil {
		return err
	}
	defer func() { _ = p.Close() }()

	pubCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := p.PublishDocument(pubCtx, data); err != nil {
		return err
	}

	logger.Info("published turtle document",
		"subject", cfg.NATS.Subject,
		"bytes", len(data))
	return nil
}

// countTriples sums the statement-line counter across components.
func countTriples(reg *prometheus.Registry) float64 {
	families, err := reg.Gather()
	if err != nil {
		return 0
	}
	var total float64
	for _, mf := range families {
		if mf.GetName() != "ecrdf_output_triples_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	switch strings.ToLower(level) {
	case "debug":
		l = slog.LevelDebug
	case "warn":
		l = slog.LevelWarn
	case "error":
		l = slog.LevelError
	default:
		l = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
