package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/iw2rmb/quill/config"
	"github.com/iw2rmb/quill/host"
	"github.com/iw2rmb/quill/internal/logging"
)

func newRootCmd() *cobra.Command {
	v := viper.New()
	cmd := &cobra.Command{
		Use:          "quill-demo",
		Short:        "Run the quill editor inside an in-process host",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(v)
		},
	}

	cmd.PersistentFlags().String("config", "", "Config file path (optional).")
	cmd.PersistentFlags().String("log-level", "", "Logging level: debug|info|warn|error.")
	cmd.PersistentFlags().String("log-format", "", "Logging format: text|json.")
	cmd.PersistentFlags().String("log-file", "", "Log file path. Logs are dropped when unset.")

	_ = v.BindPFlag("config", cmd.PersistentFlags().Lookup("config"))
	_ = v.BindPFlag("logging.level", cmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("logging.format", cmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("logging.file", cmd.PersistentFlags().Lookup("log-file"))

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newConfigCmd(v))
	return cmd
}

func loadConfig(v *viper.Viper) (*config.Config, error) {
	if path := strings.TrimSpace(v.GetString("config")); path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config %s: %w", path, err)
		}
	}
	return config.FromViper(v)
}

func runDemo(v *viper.Viper) error {
	cfg, err := loadConfig(v)
	if err != nil {
		return err
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("quill-demo needs an interactive terminal")
	}

	logger := logging.Discard()
	if cfg.Logging.File != "" {
		l, closeLog, err := logging.New(logging.Options{
			Level:  cfg.Logging.Level,
			Format: cfg.Logging.Format,
			File:   cfg.Logging.File,
		})
		if err != nil {
			return err
		}
		defer func() { _ = closeLog() }()
		logger = l
	}

	rt := host.NewRuntime()
	rt.Seed(map[string]any{cfg.Fields.Value: sampleDocuments[0]})

	p := tea.NewProgram(newModel(rt, cfg, logger), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return err
	}
	logger.Info("demo finished", "bytes", len(readValue(rt, cfg.Fields.Value)))
	return nil
}

func readValue(rt *host.Runtime, name string) string {
	s, _ := rt.ReadString(name)
	return s
}
