package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/yungbote/something-core/internal/app"
)

var rootCmd = &cobra.Command{
	Use:           "something",
	Short:         "Thing record service",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Thing HTTP API",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the things table",
	RunE:  runMigrate,
}

var migrateOnServe bool

func init() {
	serveCmd.Flags().BoolVar(&migrateOnServe, "migrate", true, "run migrations before serving")
	rootCmd.AddCommand(serveCmd, migrateCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()

	if migrateOnServe {
		if err := a.Migrate(); err != nil {
			return err
		}
	}
	if err := a.Wire(ctx); err != nil {
		return err
	}
	return a.Run(ctx)
}

func runMigrate(_ *cobra.Command, _ []string) error {
	a, err := openApp()
	if err != nil {
		return err
	}
	defer a.Close()
	return a.Migrate()
}

func openApp() (*app.App, error) {
	cfg, err := app.LoadConfig()
	if err != nil {
		return nil, err
	}
	return app.Open(cfg)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "something: %v\n", err)
		os.Exit(1)
	}
}
