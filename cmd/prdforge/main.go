package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"prdforge/internal/config"
	"prdforge/internal/export"
	"prdforge/internal/generation"
	"prdforge/internal/logging"
	"prdforge/internal/prompt"
	"prdforge/internal/server"
	"prdforge/internal/session"
	"prdforge/internal/workflow"
)

var (
	// Global flags
	verbose bool
	cfgPath string
	addr    string
	refDocs string

	// Logger
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "prdforge",
	Short: "prdforge - human-in-the-loop PRD generation service",
	Long: `prdforge drives a product requirements document through a staged
write/review/update workflow, one section at a time, with a human
accepting each step. Completed sections are assembled and scored, then
exported as a .docx.

Run "prdforge serve" to start the HTTP API.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runServe(cmd, args)
	},
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the PRD workflow HTTP server",
	Long: `Starts the HTTP API:

  POST /prd/initiate-session   upload a problem statement, get a session
  POST /prd/write-prd          advance the workflow one action at a time
  GET  /prd/export-prd/{id}    download the consolidated PRD as .docx
  POST /analyze-file           extract plain text from an upload`,
	RunE: runServe,
}

var sectionsCmd = &cobra.Command{
	Use:   "sections",
	Short: "List the configured document sections",
	RunE:  runSections,
}

var exportCmd = &cobra.Command{
	Use:   "export [session-id]",
	Short: "Export a stored session's PRD to a .docx file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExport,
}

var (
	exportOut      string
	exportAssemble bool
)

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "prdforge.yaml", "Path to the config file")

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (overrides config)")
	serveCmd.Flags().StringVar(&refDocs, "refdocs", "", "Folder of historical PRD .docx files (overrides config)")

	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "PRD.docx", "Output file path")
	exportCmd.Flags().BoolVar(&exportAssemble, "assemble", false, "Assemble completed sections even if no final review ran")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(sectionsCmd)
	rootCmd.AddCommand(exportCmd)
}

// loadRegistry picks the prompt pack from config, falling back to the
// built-in section table.
func loadRegistry(cfg *config.Config) (*prompt.Registry, error) {
	if cfg.Prompts.PackPath == "" {
		return prompt.Default(), nil
	}
	if _, err := os.Stat(cfg.Prompts.PackPath); os.IsNotExist(err) {
		logger.Warn("prompt pack missing, using built-in sections", zap.String("path", cfg.Prompts.PackPath))
		return prompt.Default(), nil
	}
	return prompt.LoadPack(cfg.Prompts.PackPath)
}

func openStore(cfg *config.Config, seed session.Seed) (session.Store, error) {
	switch cfg.Store.Backend {
	case config.StoreSQLite:
		return session.NewSQLiteStore(cfg.Store.Path, seed)
	default:
		return session.NewMemoryStore(seed), nil
	}
}

func buildEngine(cfg *config.Config) (*workflow.Engine, *prompt.Holder, session.Store, error) {
	reg, err := loadRegistry(cfg)
	if err != nil {
		return nil, nil, nil, err
	}
	holder := prompt.NewHolder(reg)

	store, err := openStore(cfg, session.Seed{
		Sections:     func() []session.Section { return holder.Get().Sections() },
		SystemPrompt: prompt.SystemPrompt,
	})
	if err != nil {
		return nil, nil, nil, err
	}

	client, err := generation.NewFromConfig(cfg.LLM)
	if err != nil {
		store.Close()
		return nil, nil, nil, err
	}

	return workflow.NewEngine(store, client, holder), holder, store, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}
	if refDocs != "" {
		cfg.Server.ReferenceDir = refDocs
	}
	if verbose {
		cfg.Logging.DebugMode = true
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if err := logging.Initialize(cfg.Logging.StateDir, cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
		return err
	}
	defer logging.CloseAll()

	engine, holder, store, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	if cfg.Prompts.Watch && cfg.Prompts.PackPath != "" {
		watcher, err := prompt.NewWatcher(cfg.Prompts.PackPath, holder)
		if err != nil {
			logger.Warn("prompt pack watcher unavailable", zap.Error(err))
		} else if err := watcher.Start(); err != nil {
			logger.Warn("prompt pack watcher failed to start", zap.Error(err))
		} else {
			defer watcher.Stop()
		}
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("starting server",
		zap.String("addr", cfg.Server.Addr),
		zap.String("provider", cfg.LLM.Provider),
		zap.Int("sections", holder.Get().Count()))

	return server.New(engine, cfg.Server).Run(ctx)
}

func runSections(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	reg, err := loadRegistry(cfg)
	if err != nil {
		return err
	}

	for i := 0; i < reg.Count(); i++ {
		name, _ := reg.SectionName(i)
		fmt.Printf("%2d  %s\n", i+1, name)
	}
	return nil
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}
	if cfg.Store.Backend != config.StoreSQLite {
		return fmt.Errorf("export requires a sqlite store (set store.backend: sqlite)")
	}
	if err := logging.Initialize(cfg.Logging.StateDir, cfg.Logging.DebugMode, cfg.Logging.Level); err != nil {
		return err
	}
	defer logging.CloseAll()

	engine, _, store, err := buildEngine(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	sess, text, err := engine.ExportDocument(cmd.Context(), args[0], exportAssemble)
	if err != nil {
		return err
	}

	doc, err := export.BuildDocx("Product Requirements Document", sess.CreatedAt, text, sess.FinalReview)
	if err != nil {
		return err
	}
	if err := os.WriteFile(exportOut, doc, 0o644); err != nil {
		return err
	}

	logger.Info("exported", zap.String("session", sess.ID), zap.String("file", exportOut))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
