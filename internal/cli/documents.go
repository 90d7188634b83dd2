package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/AnshRaj112/tripboard-backend/internal/models"
	"github.com/AnshRaj112/tripboard-backend/internal/services"
	"github.com/AnshRaj112/tripboard-backend/internal/store"
)

// NewListCommand creates the list command.
func NewListCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list <collection>",
		Short: "Print every document of a collection as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCollection(args[0]); err != nil {
				return err
			}
			return withStore(cmd.Context(), opts, func(st store.Store) error {
				docs, err := st.List(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				out, err := json.MarshalIndent(docs, "", "  ")
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(out))
				return nil
			})
		},
	}
}

// NewDeleteCommand creates the delete command. Deleting an unknown id succeeds.
func NewDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <collection> <id>",
		Short: "Delete one document",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkCollection(args[0]); err != nil {
				return err
			}
			return withStore(cmd.Context(), opts, func(st store.Store) error {
				if err := st.Delete(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Document %s deleted successfully.\n", args[1])
				return nil
			})
		},
	}
}

// NewImportCommand creates the import command.
func NewImportCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml>",
		Short: "Create documents from a YAML trip file",
		Long: `Create documents from a YAML file mapping collection names to lists of
records. Flight times use "YYYY-MM-DD HH:MM", hotel times "YYYY-MM-DD HH:MM AM/PM",
both in TRIP_TIMEZONE. Every record is validated before anything is written.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			fh, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer fh.Close()

			f, err := services.ReadTripFile(fh)
			if err != nil {
				return err
			}
			clock := models.NewTripClock(opts.Config.Location)

			return withStore(cmd.Context(), opts, func(st store.Store) error {
				result, err := services.Import(cmd.Context(), st, clock, f)
				for _, name := range store.Collections {
					if n := result[name]; n > 0 {
						fmt.Fprintf(cmd.OutOrStdout(), "%s: %d created\n", name, n)
					}
				}
				return err
			})
		},
	}
}
