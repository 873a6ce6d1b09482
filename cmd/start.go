package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"qa-preview/core/app"
	"qa-preview/core/config"
	"qa-preview/core/loader"
	"qa-preview/core/logger"
	"qa-preview/core/server"
	"qa-preview/feature/banner"
	"qa-preview/feature/spa"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start [profile]",
	Short: "Serve the build output",
	Long: `Validates the build output, binds the first free candidate port and serves
the site until interrupted. The optional profile selects a preset; see "profiles".`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Load Configuration
		cfg, err := config.LoadConfig(".", profileArg(args, 0))
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)
		logg = logg.With(zap.String("profile", cfg.Profile.Name))

		// 3. Check the build output exists before binding anything
		resolver, err := spa.NewResolver(cfg.Site)
		if err != nil {
			return err
		}
		if err := resolver.Validate(); err != nil {
			banner.PrintMissingBuild(cmd.ErrOrStderr(), err)
			return err
		}

		// 4. Initialize Fiber App with features
		mgr := loader.NewManager(logg)
		mgr.Register(spa.NewFeature(resolver, logg))

		application, err := app.New(app.Options{Headers: cfg.Headers, Logger: logg}, mgr)
		if err != nil {
			return err
		}

		// 5. Bind the first free port
		ln, port, err := server.Listen(cfg.Server.Host, cfg.Server.Candidates())
		if err != nil {
			return err
		}

		banner.Announce(cmd.OutOrStdout(), banner.Info{
			Profile: cfg.Profile,
			Port:    port,
			Root:    resolver.Root(),
		}, cfg.Banner, banner.SystemLauncher{}, logg)

		// 6. Start Server
		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.Int("port", port), zap.String("root", resolver.Root()))
			errCh <- application.Listener(ln)
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		defer signal.Stop(c)

		select {
		case <-c:
			logg.Info("Shutting down server...")
			return application.Shutdown()
		case err := <-errCh:
			return fmt.Errorf("server stopped: %w", err)
		}
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
