package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"fincontrol/internal/app"
	"fincontrol/internal/config"
	"fincontrol/internal/logger"
)

// cli carries the state shared by every command.
type cli struct {
	v       *viper.Viper
	cfgFile string
}

func newRootCmd() *cobra.Command {
	c := &cli{v: viper.New()}

	root := &cobra.Command{
		Use:   "fincontrol",
		Short: "Personal finance tracker",
		Long: `fincontrol records income, expenses and investments, tracks savings goals
and exports reports. It reads and writes the same storage as the API server.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.initConfig,
	}

	root.PersistentFlags().StringVar(&c.cfgFile, "config", "", "config file (default: ./fincontrol.yaml)")
	root.PersistentFlags().String("storage", "", "storage driver (memory, sqlite, postgres, redis)")
	root.PersistentFlags().String("sqlite-path", "", "sqlite database file")
	_ = c.v.BindPFlag("storage.driver", root.PersistentFlags().Lookup("storage"))
	_ = c.v.BindPFlag("storage.sqlite_path", root.PersistentFlags().Lookup("sqlite-path"))

	root.AddCommand(summaryCmd(c))
	root.AddCommand(transactionsCmd(c))
	root.AddCommand(goalsCmd(c))
	root.AddCommand(reportCmd(c))
	root.AddCommand(backupCmd(c))
	root.AddCommand(adviseCmd(c))

	return root
}

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func (c *cli) initConfig(_ *cobra.Command, _ []string) error {
	if c.cfgFile != "" {
		c.v.SetConfigFile(c.cfgFile)
	} else {
		c.v.AddConfigPath(".")
		c.v.SetConfigName("fincontrol")
		c.v.SetConfigType("yaml")
	}

	c.v.SetEnvPrefix("FINCONTROL")
	c.v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	c.v.AutomaticEnv()

	if err := c.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

// loadConfig starts from the environment configuration shared with the
// server and applies whatever viper resolved from flags, env and file.
func (c *cli) loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if driver := c.v.GetString("storage.driver"); driver != "" {
		cfg.StorageDriver = driver
	}
	if path := c.v.GetString("storage.sqlite_path"); path != "" {
		cfg.SQLitePath = path
	}
	if key := c.v.GetString("gemini.api_key"); key != "" {
		cfg.GeminiAPIKey = key
	}
	if model := c.v.GetString("gemini.model"); model != "" {
		cfg.GeminiModel = model
	}
	return cfg, nil
}

// withApp opens the application, runs fn and flushes pending writes.
func (c *cli) withApp(cmd *cobra.Command, fn func(a *app.App) error) error {
	cfg, err := c.loadConfig()
	if err != nil {
		return err
	}
	if cfg.StorageDriver == config.DriverMemory {
		logger.Get().Warn("memory storage selected, changes will not outlive this command")
	}

	a, err := app.New(cmd.Context(), cfg, nil)
	if err != nil {
		return err
	}

	runErr := fn(a)

	closeCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.Close(closeCtx); err != nil && runErr == nil {
		return err
	}
	return runErr
}
