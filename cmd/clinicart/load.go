package main

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	applog "clinicart/internal/log"
	"clinicart/internal/loader"
	"clinicart/internal/store"
)

var loadCmd = &cobra.Command{
	Use:   "load",
	Short: "Load the catalog source once and print what was accepted",
	Long:  `Reads the configured source the way serve does and prints per-collection loaded, skipped and duplicate counts as JSON.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := setup()
		if err != nil {
			return err
		}
		defer applog.Sync()
		src, closeSrc, err := source(cfg)
		if err != nil {
			return err
		}
		defer closeSrc()

		rep, err := loader.Load(cmd.Context(), src, store.New(), loadOptions(cfg))
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if encErr := enc.Encode(rep); encErr != nil {
			return encErr
		}
		return err
	},
}
