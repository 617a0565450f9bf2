package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/manasm11/academy/internal/certificate"
	"github.com/manasm11/academy/internal/config"
	"github.com/manasm11/academy/internal/generation"
	"github.com/manasm11/academy/internal/logger"
	"github.com/manasm11/academy/internal/preflight"
	"github.com/manasm11/academy/internal/provider"
	"github.com/manasm11/academy/internal/session"
	"github.com/manasm11/academy/internal/survey"
	"github.com/manasm11/academy/internal/tui"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	configPath   string
	providerName string
	modelName    string
	withSurvey   bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "academy",
	Short: "AI Co-Pilot Academy - a terminal course on working with AI",
	Long: `AI Co-Pilot Academy walks a student through three missions:

  1. Prompt quality quiz
  2. Co-writing a diary from 2045 with an AI partner
  3. Fact-checking statements the AI makes up

and ends with a printable AI Co-Pilot License.

Run without arguments to start the course.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runWizard(cmd)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Config file (YAML)")
	rootCmd.PersistentFlags().StringVar(&providerName, "provider", "", "AI backend: gemini or ollama")
	rootCmd.PersistentFlags().StringVar(&modelName, "model", "", "Model name for the selected backend")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.Flags().BoolVar(&withSurvey, "survey", false, "Ask the satisfaction survey before the certificate")

	rootCmd.AddCommand(coachCmd)
	rootCmd.AddCommand(certificateCmd)
	rootCmd.AddCommand(modelsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and overlays environment and flags.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	cfg.ApplyEnv(os.Getenv)

	if providerName != "" {
		pt := provider.ProviderType(providerName)
		if pt != cfg.Provider.Type && modelName == "" {
			cfg.Provider.Model = provider.DefaultModel(pt)
		}
		cfg.Provider.Type = pt
	}
	if modelName != "" {
		cfg.Provider.Model = modelName
	}
	if f := cmd.Flags().Lookup("survey"); f != nil && f.Changed {
		cfg.Survey.Enabled = withSurvey
	}
	cfg.Provider.OllamaURL = provider.NormalizeOllamaURL(cfg.Provider.OllamaURL)
	return cfg, nil
}

func validateConfig(cfg *config.Config) error {
	if errs := cfg.Validate(); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintf(os.Stderr, "  ✗ %s\n", e)
		}
		return errors.New("invalid configuration")
	}
	return nil
}

func newLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.New(logger.Options{
		File:    cfg.LogFile(),
		Level:   cfg.Logging.Level,
		Verbose: verbose,
	})
}

func newClient(ctx context.Context, cfg *config.Config, log *logger.Logger) (*generation.Client, error) {
	gen, err := generation.NewGenerator(ctx, cfg.Provider)
	if err != nil {
		return nil, err
	}
	return generation.NewClient(gen, log, generation.WithTimeout(cfg.GenerationTimeout())), nil
}

// chooseProvider asks for a backend when none was requested and Gemini has
// no key to work with.
func chooseProvider(ctx context.Context, cfg *config.Config) error {
	if providerName != "" || cfg.Provider.Type != provider.ProviderGemini || cfg.Provider.APIKey != "" {
		return nil
	}

	detectCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	status := provider.DetectOllama(detectCtx, cfg.Provider.OllamaURL)
	cancel()

	pt, err := tui.RunProviderSelection(false, status)
	if err != nil {
		return err
	}
	if pt != cfg.Provider.Type && modelName == "" {
		cfg.Provider.Model = provider.DefaultModel(pt)
	}
	cfg.Provider.Type = pt
	return nil
}

func runWizard(cmd *cobra.Command) error {
	ctx := cmd.Context()

	// 1. Load configuration
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := chooseProvider(ctx, cfg); err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}

	// 2. Run preflight checks
	results := preflight.RunAll(ctx, cfg, nil)
	for _, r := range results {
		switch {
		case r.OK:
			fmt.Printf("  ✓ %s (%s)\n", r.Name, r.Info)
		case r.Fatal:
			fmt.Printf("  ✗ %s: %s\n", r.Name, r.Error)
		default:
			fmt.Printf("  ! %s: %s\n", r.Name, r.Error)
		}
	}
	if len(preflight.Failed(results)) > 0 {
		return errors.New("preflight checks failed")
	}
	fmt.Println("  ✓ All checks passed")
	fmt.Println()

	// 3. Wire collaborators
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := newClient(ctx, cfg, log)
	if err != nil {
		return err
	}
	renderer, err := certificate.NewRenderer(cfg.Certificate.FontPath)
	if err != nil {
		return err
	}
	submitter := survey.NewSubmitter(cfg.Survey.Endpoint, cfg.SurveyTimeout(), log)

	sess := session.New(cfg.Survey.Enabled)
	log.Info("session started",
		"session", sess.ID,
		"backend", client.Backend(),
		"survey", cfg.Survey.Enabled,
	)

	app := tui.NewAppModel(sess, tui.Deps{
		Writer:    client,
		Checker:   client,
		Survey:    submitter,
		Exporter:  renderer,
		Issuer:    cfg.Certificate.Issuer,
		ExportDir: cfg.Certificate.ExportDir,
		Log:       log,
	})

	// 4. Run the wizard
	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running application: %w", err)
	}
	if !app.WaitForSurveys(cfg.SurveyTimeout()) {
		log.Warn("survey delivery still pending at exit", "timeout", cfg.SurveyTimeout())
	}
	log.Info("session ended", "session", app.Session().ID, "stage", app.Stage())
	return nil
}
