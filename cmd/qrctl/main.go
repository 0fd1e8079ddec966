// Command qrctl drives the QR publishing service from the shell, using the
// same configuration as the API server.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qrdrop/service/internal/config"
	"github.com/qrdrop/service/internal/qr"
	"github.com/qrdrop/service/internal/storage"
)

func main() {
	if err := newRootCmd(newService).Execute(); err != nil {
		os.Exit(1)
	}
}

// newService wires the service from the environment exactly like cmd/api.
func newService() (*qr.Service, error) {
	cfg := config.Load()
	store, err := storage.NewMinioStorage(cfg.MinioOptions())
	if err != nil {
		return nil, fmt.Errorf("object storage init: %w", err)
	}
	return qr.NewService(storage.NewLocalStorage(config.LocalDir), store, config.RemotePrefix), nil
}

func newRootCmd(build func() (*qr.Service, error)) *cobra.Command {
	root := &cobra.Command{
		Use:          "qrctl",
		Short:        "Generate and manage published QR codes",
		SilenceUsage: true,
	}

	// --- generate command ----------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "generate [url]",
		Short: "Render url as a QR code, publish it and print the public URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := build()
			if err != nil {
				return err
			}
			res, err := svc.Generate(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), res.PublicURL)
			return nil
		},
	})

	// --- key command ---------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "key [url]",
		Short: "Print the artifact key and storage locations for url without publishing",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			key := qr.Key(args[0])
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "key:    %s\n", key)
			fmt.Fprintf(out, "local:  %s\n", filepath.Join(config.LocalDir, qr.FileName(key)))
			fmt.Fprintf(out, "object: %s\n", qr.ObjectKey(config.RemotePrefix, key))
		},
	})

	// --- purge command -------------------------------------------------------
	root.AddCommand(&cobra.Command{
		Use:   "purge [url]",
		Short: "Remove the local and remote copies of the artifact for url",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := build()
			if err != nil {
				return err
			}
			res, err := svc.Purge(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "purged %s\n", res.ObjectKey)
			return nil
		},
	})

	return root
}
