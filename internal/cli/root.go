// Package cli реализует терминальное представление состава команды клуба
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/aidar/dsc-roster/internal/client"
	"github.com/aidar/dsc-roster/internal/config"
	"github.com/aidar/dsc-roster/internal/logger"
	"github.com/aidar/dsc-roster/internal/roster"
	"github.com/aidar/dsc-roster/internal/view"
)

// Version версия rosterctl, подставляется при сборке через -ldflags
var Version = "dev"

// sessionAnnotation помечает команды, которым нужен клиент API
const sessionAnnotation = "rosterctl/session"

// session зависимости одной команды: клиент, менеджер состава и состояние представления
type session struct {
	client  *client.Client
	manager *roster.Manager
	state   *view.State
	logger  *slog.Logger
	splash  time.Duration
}

// NewRootCommand создает корневую команду rosterctl
func NewRootCommand(in io.Reader, out, errOut io.Writer) *cobra.Command {
	var (
		baseURL    string
		showSplash bool
		s          session
	)

	root := &cobra.Command{
		Use:           "rosterctl",
		Short:         "Manage the Developer Students Club team roster",
		Long:          "rosterctl shows the club sections and manages team members through the roster API",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Annotations[sessionAnnotation] == "" {
				return nil
			}

			cfg, err := config.LoadClient()
			if err != nil {
				return err
			}
			if baseURL != "" {
				cfg.BaseURL = baseURL
			}
			if cfg.BaseURL == "" {
				return errors.New("base URL is required: set ROSTER_BASE_URL or --base-url")
			}

			s.logger = logger.New(cfg.Log.Level, cfg.Log.Format, errOut)
			s.client = client.New(cfg.BaseURL)
			s.manager = roster.NewManager(s.client, s.logger)
			s.state = view.New()
			s.splash = cfg.SplashDuration

			if showSplash {
				renderSplash(out)
				s.state.WaitSplash(cmd.Context(), s.splash)
			} else {
				s.state.Splash = false
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&baseURL, "base-url", "", "roster API base URL (overrides ROSTER_BASE_URL)")
	root.PersistentFlags().BoolVar(&showSplash, "splash", false, "show the club splash screen before the command")

	for _, cmd := range []*cobra.Command{
		newHomeCommand(&s),
		newAboutCommand(&s),
		newListCommand(&s),
		newAddCommand(&s),
		newEditCommand(&s),
		newRemoveCommand(&s, in),
	} {
		cmd.Annotations = map[string]string{sessionAnnotation: "true"}
		root.AddCommand(cmd)
	}
	root.AddCommand(newVersionCommand())

	return root
}

// Execute запускает rosterctl с аргументами командной строки
func Execute(ctx context.Context, in io.Reader, out, errOut io.Writer) error {
	return NewRootCommand(in, out, errOut).ExecuteContext(ctx)
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the rosterctl version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "rosterctl %s\n", Version)
		},
	}
}
