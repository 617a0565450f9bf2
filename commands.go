package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/manasm11/academy/internal/certificate"
	"github.com/manasm11/academy/internal/provider"
	"github.com/manasm11/academy/internal/session"
	"github.com/spf13/cobra"
)

var (
	certName   string
	certSchool string
	certGrade  string
	certOut    string
)

// coachCmd gives feedback on a single prompt
var coachCmd = &cobra.Command{
	Use:   "coach [prompt]",
	Short: "Get brief feedback on how to improve a prompt",
	Long: `Sends a prompt to the AI coach and prints short suggestions for making
it more specific.

Example:
  academy coach "유튜브 어떻게 해?"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCoach,
}

// certificateCmd exports a license without running the course
var certificateCmd = &cobra.Command{
	Use:   "certificate",
	Short: "Export an AI Co-Pilot License PDF directly",
	Long: `Renders the license card for the given student and writes
AI_License_<name>.pdf to the output directory.

Example:
  academy certificate --name 홍길동 --school 서울중학교 --grade "1학년 3반"`,
	RunE: runCertificate,
}

// modelsCmd lists local Ollama models
var modelsCmd = &cobra.Command{
	Use:   "models",
	Short: "List models available on the local Ollama server",
	RunE:  runModels,
}

func init() {
	certificateCmd.Flags().StringVar(&certName, "name", "", "Student name (required)")
	certificateCmd.Flags().StringVar(&certSchool, "school", "", "School (required)")
	certificateCmd.Flags().StringVar(&certGrade, "grade", "", "Grade and class (required)")
	certificateCmd.Flags().StringVar(&certOut, "out", "", "Output directory (default: certificate.export_dir)")
	_ = certificateCmd.MarkFlagRequired("name")
	_ = certificateCmd.MarkFlagRequired("school")
	_ = certificateCmd.MarkFlagRequired("grade")
}

func runCoach(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync()

	client, err := newClient(cmd.Context(), cfg, log)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), client.CoachPrompt(cmd.Context(), strings.Join(args, " ")))
	return nil
}

func runCertificate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	profile := session.UserProfile{Name: certName, School: certSchool, Grade: certGrade}
	if !profile.Valid() {
		return fmt.Errorf("name, school and grade must not be blank")
	}

	dir := certOut
	if dir == "" {
		dir = cfg.Certificate.ExportDir
	}

	renderer, err := certificate.NewRenderer(cfg.Certificate.FontPath)
	if err != nil {
		return err
	}
	path, err := renderer.Export(certificate.NewData(profile, cfg.Certificate.Issuer, time.Now()), dir)
	if err != nil {
		return fmt.Errorf("%s: %w", certificate.ExportErrorMessage, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "  ✓ Saved %s\n", path)
	return nil
}

func runModels(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	status := provider.DetectOllama(cmd.Context(), cfg.Provider.OllamaURL)
	if !status.Available {
		return fmt.Errorf("ollama not available at %s: %s", status.URL, status.Error)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "  Ollama %s at %s\n\n", status.Version, status.URL)
	if len(status.Models) == 0 {
		fmt.Fprintf(out, "  No models pulled. Try: ollama pull %s\n", provider.DefaultModel(provider.ProviderOllama))
		return nil
	}

	recommended := provider.RecommendedModels(provider.ProviderOllama)
	for _, m := range status.Models {
		mark := " "
		for _, r := range recommended {
			if provider.FormatModelName(m.Name) == provider.FormatModelName(r) {
				mark = "★"
			}
		}
		fmt.Fprintf(out, "  %s %-28s %8s  %s\n", mark, provider.FormatModelName(m.Name), provider.FormatModelSize(m.Size), m.Params)
	}
	return nil
}
