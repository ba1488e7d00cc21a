// Package main provides the CLI entrypoint for streamsync.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/streamsync/internal/config"
	"github.com/verte-zerg/streamsync/internal/report"
	"github.com/verte-zerg/streamsync/internal/seed"
	"github.com/verte-zerg/streamsync/internal/stats"
	"github.com/verte-zerg/streamsync/internal/store"
	"github.com/verte-zerg/streamsync/internal/ui"
)

const apiKeyEnv = "GEMINI_API_KEY"

var dateFlagRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

var (
	dashStart string
	dashEnd   string

	summaryStart string
	summaryEnd   string

	reportAPIKey  string
	reportModel   string
	reportBaseURL string
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "streamsync",
		Short:         "TUI dashboard for live-streaming sales operations",
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runDashboardCmd,
	}

	rootCmd.Flags().StringVar(&dashStart, "start", "", "initial range start (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&dashEnd, "end", "", "initial range end (YYYY-MM-DD)")
	rootCmd.Flags().StringVar(&reportAPIKey, "api-key", "", "API key for the analysis service")
	rootCmd.Flags().StringVar(&reportModel, "model", report.DefaultModel, "analysis model name")
	rootCmd.Flags().StringVar(&reportBaseURL, "base-url", report.DefaultBaseURL, "analysis service base URL")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newSummaryCmd())
	rootCmd.AddCommand(newReportCmd())

	return rootCmd
}

func runDashboardCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadEnvAndConfig()
	if err != nil {
		return err
	}
	applyStringConfig(cmd, "start", &dashStart, fileCfg.Dashboard.Start)
	applyStringConfig(cmd, "end", &dashEnd, fileCfg.Dashboard.End)

	if dashStart != "" && !dateFlagRe.MatchString(dashStart) {
		return fmt.Errorf("invalid --start value (expected YYYY-MM-DD)")
	}
	if dashEnd != "" && !dateFlagRe.MatchString(dashEnd) {
		return fmt.Errorf("invalid --end value (expected YYYY-MM-DD)")
	}

	st, err := openSeededStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()

	summarizer := buildSummarizer(cmd, fileCfg)
	model := ui.NewModel(st, summarizer)
	if dashStart != "" && dashEnd != "" {
		model.SetRange(dashStart, dashEnd)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Print a plain-text period summary",
		Args:  cobra.NoArgs,
		RunE:  runSummaryCmd,
	}
	cmd.Flags().StringVar(&summaryStart, "start", seed.CurrentMonthStart, "range start (YYYY-MM-DD)")
	cmd.Flags().StringVar(&summaryEnd, "end", seed.CurrentMonthEnd, "range end (YYYY-MM-DD)")
	return cmd
}

func runSummaryCmd(cmd *cobra.Command, _ []string) error {
	if !dateFlagRe.MatchString(summaryStart) {
		return fmt.Errorf("invalid --start value (expected YYYY-MM-DD)")
	}
	if !dateFlagRe.MatchString(summaryEnd) {
		return fmt.Errorf("invalid --end value (expected YYYY-MM-DD)")
	}

	st, err := openSeededStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	hosts, err := st.ListHosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load hosts: %w", err)
	}
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}
	return stats.RenderSummary(cmd.OutOrStdout(), hosts, sessions, summaryStart, summaryEnd)
}

func newReportCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Generate the AI analysis report and print it",
		Args:  cobra.NoArgs,
		RunE:  runReportCmd,
	}
	cmd.Flags().StringVar(&reportAPIKey, "api-key", "", "API key for the analysis service")
	cmd.Flags().StringVar(&reportModel, "model", report.DefaultModel, "analysis model name")
	cmd.Flags().StringVar(&reportBaseURL, "base-url", report.DefaultBaseURL, "analysis service base URL")
	return cmd
}

func runReportCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := loadEnvAndConfig()
	if err != nil {
		return err
	}

	st, err := openSeededStore()
	if err != nil {
		return err
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
	}()

	ctx := context.Background()
	hosts, err := st.ListHosts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load hosts: %w", err)
	}
	sessions, err := st.ListSessions(ctx)
	if err != nil {
		return fmt.Errorf("failed to load sessions: %w", err)
	}

	summarizer := buildSummarizer(cmd, fileCfg)
	text := report.Generate(ctx, summarizer, sessions, hosts)
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), text); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

// loadEnvAndConfig reads an optional .env file and the TOML config. A
// missing .env is not an error.
func loadEnvAndConfig() (config.FileConfig, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logErrf("failed to load .env: %v\n", err)
	}
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return config.FileConfig{}, fmt.Errorf("failed to load config: %w", err)
	}
	return fileCfg, nil
}

func openSeededStore() (*store.Store, error) {
	st, err := store.Open()
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}
	if err := st.Seed(context.Background(), seed.Hosts(), seed.Sessions()); err != nil {
		if cerr := st.Close(); cerr != nil {
			logErrf("failed to close store: %v\n", cerr)
		}
		return nil, fmt.Errorf("failed to seed store: %w", err)
	}
	return st, nil
}

// buildSummarizer resolves the API settings with flag > config file > env
// precedence and returns the HTTP client.
func buildSummarizer(cmd *cobra.Command, fileCfg config.FileConfig) report.Summarizer {
	applyStringConfig(cmd, "api-key", &reportAPIKey, fileCfg.Report.APIKey)
	applyStringConfig(cmd, "model", &reportModel, fileCfg.Report.Model)
	applyStringConfig(cmd, "base-url", &reportBaseURL, fileCfg.Report.BaseURL)
	if reportAPIKey == "" {
		reportAPIKey = os.Getenv(apiKeyEnv)
	}

	client := report.NewClient(reportAPIKey)
	client.Model = reportModel
	client.BaseURL = reportBaseURL
	return client
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# streamsync configuration
# Uncomment a value to enable it. CLI flags override config values.

[dashboard]
# start = %q    # Initial range start
# end = %q      # Initial range end

[report]
# api-key = ""                  # Analysis service API key (or %s env var)
# model = %q
# base-url = %q
`,
		seed.CurrentMonthStart,
		seed.CurrentMonthEnd,
		apiKeyEnv,
		report.DefaultModel,
		report.DefaultBaseURL,
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}
