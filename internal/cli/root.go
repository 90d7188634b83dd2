// Package cli implements tripctl, the admin command line for the trip
// dashboard's document store.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/AnshRaj112/tripboard-backend/internal/config"
	"github.com/AnshRaj112/tripboard-backend/internal/logger"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// HeroUploader stores the home page hero image.
type HeroUploader interface {
	UploadImage(ctx context.Context, file io.Reader, publicID string) (string, error)
}

// RootOptions holds global flags and the dependencies every command shares.
type RootOptions struct {
	Verbose bool

	// Config is loaded from the environment unless already set.
	Config *config.Config
	Log    *zap.Logger

	OpenStore    func(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, error)
	OpenUploader func(cfg *config.Config) (HeroUploader, error)
}

// NewRootCommand creates the root command for tripctl.
func NewRootCommand() *cobra.Command {
	return newRootCommand(&RootOptions{})
}

func newRootCommand(opts *RootOptions) *cobra.Command {
	if opts.OpenStore == nil {
		opts.OpenStore = store.Open
	}
	if opts.OpenUploader == nil {
		opts.OpenUploader = openCloudinary
	}

	cmd := &cobra.Command{
		Use:   "tripctl",
		Short: "tripctl - trip dashboard admin tool",
		Long:  "Inspect and seed the trip dashboard document store.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.Config == nil {
				cfg, err := config.Load()
				if err != nil {
					return err
				}
				opts.Config = cfg
			}
			if opts.Log == nil {
				if opts.Verbose {
					opts.Log = logger.New(opts.Config.Environment)
				} else {
					opts.Log = zap.NewNop()
				}
			}
			return nil
		},
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")

	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewImportCommand(opts))
	cmd.AddCommand(NewGeocodeCommand(opts))
	cmd.AddCommand(NewHashPassphraseCommand(opts))
	cmd.AddCommand(NewUploadHeroCommand(opts))

	return cmd
}

// withStore opens the configured store for the duration of fn.
func withStore(ctx context.Context, opts *RootOptions, fn func(store.Store) error) error {
	st, err := opts.OpenStore(ctx, opts.Config, opts.Log)
	if err != nil {
		return err
	}
	defer st.Close(context.Background())
	return fn(st)
}

func checkCollection(name string) error {
	if !store.IsCollection(name) {
		return fmt.Errorf("unknown collection %q: must be one of %v", name, store.Collections)
	}
	return nil
}

func openCloudinary(cfg *config.Config) (HeroUploader, error) {
	if !cfg.CloudinaryEnabled() {
		return nil, fmt.Errorf("cloudinary credentials are not configured")
	}
	return services.NewCloudinaryService(cfg.CloudinaryName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
}
