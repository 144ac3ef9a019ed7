package cmd

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/frahmantamala/fintrack/internal"
	"github.com/frahmantamala/fintrack/internal/api"
	"github.com/frahmantamala/fintrack/internal/expense"
	"github.com/frahmantamala/fintrack/internal/session"
	"github.com/frahmantamala/fintrack/internal/storage"
	"github.com/frahmantamala/fintrack/internal/user"
	"github.com/frahmantamala/fintrack/pkg/logger"
)

var rootCmd = &cobra.Command{
	Use:           "fintrack",
	Short:         "FinTrack",
	Long:          `Personal finance companion: record expenses and track monthly spending.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(signupCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(expensesCmd)
	rootCmd.AddCommand(stubServerCmd)
}

// loadConfig reads ~/.fintrack/config.yml (or ./config.yml) when present and
// falls back to FINTRACK_* environment variables with defaults otherwise.
func loadConfig() (*internal.Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yml")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".fintrack"))
	}
	v.AddConfigPath(".")
	v.SetEnvPrefix("FINTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return nil, fmt.Errorf("error reading config: %w", err)
		}
		cfg := internal.LoadConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("error validating config from environment: %w", err)
		}
		return cfg, nil
	}

	cfg := internal.LoadConfigFromEnv()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config: %w", err)
	}
	return cfg, nil
}

// app wires the client together for a single command invocation.
type app struct {
	Config   *internal.Config
	Logger   *slog.Logger
	Store    *storage.DB
	Sessions *session.Store
	Users    *user.Service
	Expenses *expense.Service
}

func newApp() (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger.Init(cfg.Logging.Level, cfg.Logging.Format)
	lg := logger.LoggerWrapper()

	store, err := storage.Open(cfg.Storage.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open local storage: %w", err)
	}

	sessions := session.NewStore(store, lg)
	client := api.NewClient(api.Config{
		BaseURL: cfg.API.BaseURL,
		Timeout: cfg.API.Timeout,
	}, lg)

	return &app{
		Config:   cfg,
		Logger:   lg,
		Store:    store,
		Sessions: sessions,
		Users:    user.NewService(client, sessions, lg),
		Expenses: expense.NewService(client, lg),
	}, nil
}

func (a *app) Close() {
	if a.Store != nil {
		if err := a.Store.Close(); err != nil {
			a.Logger.Warn("failed to close local storage", "error", err)
		}
	}
}

// requireUser rehydrates the session and fails the command when nobody is
// logged in.
func (a *app) requireUser(ctx context.Context) (*user.User, error) {
	a.Sessions.Initialize(ctx)
	u := a.Sessions.Current()
	if u == nil {
		return nil, fmt.Errorf("%w; run 'fintrack login' first", internal.ErrNotLoggedIn)
	}
	return u, nil
}

// ----------------- prompts -----------------

func promptLine(label string) (string, error) {
	fmt.Printf("%s: ", label)
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func promptPassword(label string) (string, error) {
	fd := int(os.Stdin.Fd())
	if !term.IsTerminal(fd) {
		return promptLine(label)
	}

	fmt.Printf("%s: ", label)
	raw, err := term.ReadPassword(fd)
	fmt.Println()
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return strings.TrimSpace(string(raw)), nil
}

func promptConfirm(question string) (bool, error) {
	answer, err := promptLine(question + " [y/N]")
	if err != nil {
		return false, err
	}
	answer = strings.ToLower(answer)
	return answer == "y" || answer == "yes", nil
}
