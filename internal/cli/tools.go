package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/pkg/utils"
)

// NewGeocodeCommand creates the geocode command.
func NewGeocodeCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "geocode <place>",
		Short: "Resolve a place name to coordinates",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			place := strings.Join(args, " ")
			g := services.NewGeocoder(opts.Config.GeocoderURL, opts.Config.GeocoderUserAgent, opts.Log)

			c, found, err := g.Geocode(cmd.Context(), place)
			if err != nil {
				return err
			}
			if !found {
				return fmt.Errorf("could not find coordinates for %s", place)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %.6f, %.6f\n", place, c.Lat, c.Lng)
			return nil
		},
	}
}

// NewHashPassphraseCommand creates the hash-passphrase command.
func NewHashPassphraseCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "hash-passphrase <passphrase>",
		Short: "Print a PASSPHRASE_HASH value for the dashboard gate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hash, err := utils.HashPassphrase(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			return nil
		},
	}
}

// NewUploadHeroCommand creates the upload-hero command.
func NewUploadHeroCommand(opts *RootOptions) *cobra.Command {
	var publicID string

	cmd := &cobra.Command{
		Use:   "upload-hero <image>",
		Short: "Upload the home page hero image to Cloudinary",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if publicID == "" {
				publicID = opts.Config.HeroImage
			}
			up, err := opts.OpenUploader(opts.Config)
			if err != nil {
				return err
			}

			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			url, err := up.UploadImage(cmd.Context(), fh, publicID)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&publicID, "public-id", "", "Cloudinary public id (default HERO_IMAGE)")
	return cmd
}
