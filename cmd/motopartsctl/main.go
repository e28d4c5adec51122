// motopartsctl operates on a catalog data directory without the web server:
// export and import the product list, or print catalog stats. Safe to run
// while a server is up; the server's poll picks up any change within one
// interval.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"motoparts/internal/catalog"
	"motoparts/internal/config"
	"motoparts/internal/kv"
	"motoparts/internal/store"
	"motoparts/internal/taxonomy"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "motopartsctl",
		Short:         "Catalog maintenance for a motoparts data directory",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newExportCommand())
	cmd.AddCommand(newImportCommand())
	cmd.AddCommand(newStatsCommand())
	return cmd
}

// openCatalog wires the same storage stack the server uses, driven by the
// same environment variables.
func openCatalog() (*catalog.Service, *catalog.Facade, func(), error) {
	cfg := config.Load()
	kvStore := kv.Open(cfg.KVPath(), cfg.KVQuota)
	blob := catalog.NewBlob(kvStore)

	closeFn := func() {}
	var structured catalog.RecordStore
	if cfg.UseSQLite {
		st, err := store.Open(cfg.DBDSN)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v, using blob store\n", err)
		} else {
			closeFn = func() { st.Close() }
			structured = st
		}
	}

	state := catalog.NewState()
	facade := catalog.NewFacade(structured, blob, state)
	facade.LoadIntoState()
	svc := catalog.NewService(facade, taxonomy.NewService(kvStore, state))
	return svc, facade, closeFn, nil
}

func newExportCommand() *cobra.Command {
	var outPath string
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the catalog as a JSON array",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, closeFn, err := openCatalog()
			if err != nil {
				return err
			}
			defer closeFn()

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("create %s: %w", outPath, err)
				}
				defer f.Close()
				w = f
			}
			return svc.Export(w)
		},
	}
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newImportCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file>",
		Short: "Replace the catalog with a JSON array of products",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, closeFn, err := openCatalog()
			if err != nil {
				return err
			}
			defer closeFn()

			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("open %s: %w", args[0], err)
			}
			defer f.Close()

			n, err := svc.Import(f)
			if err != nil {
				return fmt.Errorf("import %s: %w", args[0], err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "imported %d products\n", n)
			return nil
		},
	}
}

func newStatsCommand() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Print catalog stats",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, facade, closeFn, err := openCatalog()
			if err != nil {
				return err
			}
			defer closeFn()

			stats := facade.State().Stats()
			if asJSON {
				return json.NewEncoder(cmd.OutOrStdout()).Encode(stats)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "products:   %d\ncategories: %d\nbrands:     %d\n",
				stats.Products, stats.Categories, stats.Brands)
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "output as JSON")
	return cmd
}
