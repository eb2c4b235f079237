package main

import (
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/arambha/showroom/internal/app"
	"github.com/arambha/showroom/internal/config"
	"github.com/arambha/showroom/internal/errmsg"
	"github.com/arambha/showroom/internal/logging"
	"github.com/arambha/showroom/internal/media"
	"github.com/arambha/showroom/internal/store"
)

// cli carries the state shared by every command of one invocation.
type cli struct {
	verbose  bool
	dbPath   string
	mediaDir string

	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	c := &cli{}

	root := &cobra.Command{
		Use:   "showroom",
		Short: "Arambha interior studio showroom",
		Long: `Browse the Arambha furniture and interiors catalog in the terminal.

Run without arguments to open the showroom. The category and product
commands manage the catalog.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := c.loadConfig(); err != nil {
				return err
			}
			// The showroom owns the terminal and logs to a file instead.
			if cmd.Parent() == nil {
				return nil
			}
			logger, err := logging.New(logging.Stderr, c.cfg.Verbose)
			if err != nil {
				return fmt.Errorf("initialize logger: %w", err)
			}
			c.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if c.logger != nil {
				_ = c.logger.Sync()
			}
		},
		RunE: func(*cobra.Command, []string) error {
			return c.runShowroom()
		},
	}

	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable debug logging")
	root.PersistentFlags().StringVar(&c.dbPath, "db", "", "catalog database path")
	root.PersistentFlags().StringVar(&c.mediaDir, "media-dir", "", "directory for uploaded images")

	root.AddCommand(c.categoryCmd(), c.productCmd())
	return root
}

func (c *cli) loadConfig() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if c.dbPath != "" {
		cfg.DBPath = c.dbPath
	}
	if c.mediaDir != "" {
		cfg.MediaDir = c.mediaDir
	}
	cfg.Verbose = cfg.Verbose || c.verbose
	c.cfg = cfg
	return nil
}

func (c *cli) openStore() (*store.Store, error) {
	if c.cfg.DBPath == "" {
		return store.OpenDefault()
	}
	return store.Open(c.cfg.DBPath)
}

func (c *cli) media() *media.Store {
	return media.New(c.cfg.MediaDir)
}

// fail logs err and returns it formatted for the terminal.
func (c *cli) fail(op errmsg.Op, context string, err error) error {
	c.logger.Error(string(op), zap.String("target", context), zap.Error(err))
	return errors.New(errmsg.FormatWith(op, context, err))
}

func (c *cli) runShowroom() error {
	logger, err := logging.New(c.cfg.LogFile, c.cfg.Verbose)
	if err != nil {
		return fmt.Errorf("initialize logger: %w", err)
	}
	c.logger = logger

	st, err := c.openStore()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer st.Close()

	logger.Info("showroom started", zap.String("db", c.cfg.DBPath))
	p := tea.NewProgram(app.New(c.cfg, st, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run showroom: %w", err)
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
