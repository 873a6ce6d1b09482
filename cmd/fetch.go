package cmd

import (
	"fmt"

	"qa-preview/core/config"
	"qa-preview/core/logger"
	"qa-preview/core/storage"
	"qa-preview/feature/bundle"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// fetchCmd downloads a published build into the site root.
var fetchCmd = &cobra.Command{
	Use:   "fetch [profile]",
	Short: "Download a published build from object storage",
	Long:  `Copies every object under STORAGE_PREFIX in STORAGE_BUCKET into the site root of the selected profile.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".", profileArg(args, 0))
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		store, err := storage.NewClient(cfg.Storage)
		if err != nil {
			return err
		}

		logg.Info("Fetching build",
			zap.String("bucket", cfg.Storage.Bucket),
			zap.String("prefix", cfg.Storage.Prefix),
			zap.String("root", cfg.Site.Root))

		n, err := bundle.NewService(store, cfg.Storage, cfg.Site.Root, logg).Download(cmd.Context())
		if err != nil {
			return err
		}

		logg.Info("Build fetched", zap.Int("files", n))
		return nil
	},
}

func init() {
	RootCmd.AddCommand(fetchCmd)
}
