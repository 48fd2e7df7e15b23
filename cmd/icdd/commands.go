package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/c360studio/icddkit/config"
	"github.com/c360studio/icddkit/container"
	"github.com/c360studio/icddkit/importer"
	"github.com/c360studio/icddkit/ontology"
	els "github.com/c360studio/icddkit/vocabulary/extlinkset"
)

// loadConfig resolves the layered configuration and applies flag overrides.
func loadConfig(baseURI, publisher string) (*config.Config, error) {
	cfg, err := config.NewLoader(slog.Default()).Load()
	if err != nil {
		return nil, err
	}
	if baseURI != "" {
		cfg.Container.BaseURI = baseURI
	}
	if publisher != "" {
		cfg.Container.Publisher = publisher
	}
	return cfg, nil
}

func createCmd() *cobra.Command {
	var (
		baseURI   string
		publisher string
		pack      bool
	)

	cmd := &cobra.Command{
		Use:   "create <dir>",
		Short: "Scaffold a new ICDD container directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(baseURI, publisher)
			if err != nil {
				return err
			}

			dir := args[0]
			_, err = container.Create(dir, container.CreateOptions{
				BaseURI:           cfg.Container.BaseURI,
				Publisher:         cfg.Container.Publisher,
				OntologySourceDir: cfg.Container.OntologyDir,
			})
			if err != nil {
				return err
			}

			if pack {
				dest := dir + ".icdd"
				if err := container.Pack(dir, dest); err != nil {
					return err
				}
				fmt.Printf("Container packed: %s\n", dest)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&baseURI, "base-uri", "", "Base URI for generated entities (overrides config)")
	cmd.Flags().StringVar(&publisher, "publisher", "", "Publisher name (overrides config)")
	cmd.Flags().BoolVar(&pack, "pack", false, "Pack the container into a .icdd archive after creation")
	return cmd
}

func importCmd() *cobra.Command {
	var anchorPolicy string

	cmd := &cobra.Command{
		Use:   "import <container-dir> <csv-file>...",
		Short: "Import relationship CSV files into a container's linkset",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig("", "")
			if err != nil {
				return err
			}
			if anchorPolicy != "" {
				cfg.Import.AnchorPolicy = anchorPolicy
				if err := cfg.Validate(); err != nil {
					return err
				}
			}

			c, err := container.Open(args[0])
			if err != nil {
				return err
			}

			imp := importer.New(c, buildSemanticIndex(c), importer.Options{
				AnchorPolicy: importer.AnchorPolicy(cfg.Import.AnchorPolicy),
			})
			report := &importer.Report{}
			for _, csvPath := range args[1:] {
				if err := imp.ImportFile(csvPath, report); err != nil {
					return fmt.Errorf("%s: %w", csvPath, err)
				}
			}

			filename, err := imp.Finish()
			if err != nil {
				return err
			}
			printReport(report, filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&anchorPolicy, "anchor-policy", "", "IFC anchor policy: endpoint or first (overrides config)")
	return cmd
}

func buildCmd() *cobra.Command {
	var (
		baseURI   string
		publisher string
		cdeZip    string
		output    string
	)

	cmd := &cobra.Command{
		Use:   "build <dir>",
		Short: "Create a container from a CDE backup and auto-import its CSV links",
		Long: `Build runs the full pipeline: scaffold a container, extract the CDE
backup into the payload, register every payload document, import the
relationship CSV files found inside the backup, anchor IfcProject root
elements, and pack the result into a .icdd archive.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(baseURI, publisher)
			if err != nil {
				return err
			}
			return runBuild(args[0], cdeZip, output, cfg)
		},
	}

	cmd.Flags().StringVar(&baseURI, "base-uri", "", "Base URI for generated entities (overrides config)")
	cmd.Flags().StringVar(&publisher, "publisher", "", "Publisher name (overrides config)")
	cmd.Flags().StringVar(&cdeZip, "cde", "", "CDE backup ZIP to ingest (required)")
	cmd.Flags().StringVar(&output, "output", "", "Output .icdd path (default <dir>.icdd)")
	_ = cmd.MarkFlagRequired("cde")
	return cmd
}

func runBuild(dir, cdeZip, output string, cfg *config.Config) error {
	c, err := container.Create(dir, container.CreateOptions{
		BaseURI:           cfg.Container.BaseURI,
		Publisher:         cfg.Container.Publisher,
		OntologySourceDir: cfg.Container.OntologyDir,
	})
	if err != nil {
		return err
	}

	backupDir, err := importer.ExtractBackup(cdeZip)
	if err != nil {
		return err
	}
	defer os.RemoveAll(backupDir)

	if err := importer.CopyPayload(backupDir, c.PayloadPath()); err != nil {
		return err
	}
	if err := c.EnumeratePayload(); err != nil {
		return err
	}
	if err := c.SaveIndex(); err != nil {
		return err
	}

	csvFiles, err := importer.DiscoverCSV(backupDir)
	if err != nil {
		return err
	}

	imp := importer.New(c, buildSemanticIndex(c), importer.Options{
		AnchorPolicy: importer.AnchorPolicy(cfg.Import.AnchorPolicy),
	})
	report := &importer.Report{}
	for _, csvPath := range csvFiles {
		if err := imp.ImportFile(csvPath, report); err != nil {
			// A malformed CSV fails its own batch; the build carries on
			// with the remaining files.
			report.Warnf("skipping %s: %v", filepath.Base(csvPath), err)
		}
	}
	imp.AddProjectAnchors(report)

	filename, err := imp.Finish()
	if err != nil {
		return err
	}
	printReport(report, filename)

	if output == "" {
		output = strings.TrimRight(dir, "/\\") + ".icdd"
	}
	if err := container.Pack(dir, output); err != nil {
		return err
	}
	fmt.Printf("Container packed: %s\n", output)
	return nil
}

func extractCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "extract <file.icdd> <dir>",
		Short: "Extract a .icdd archive into a directory",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Extract(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Extracted into %s\n", args[1])
			return nil
		},
	}
}

func packCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pack <dir> <file.icdd>",
		Short: "Pack a container directory into a .icdd archive",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := container.Pack(args[0], args[1]); err != nil {
				return err
			}
			fmt.Printf("Container packed: %s\n", args[1])
			return nil
		},
	}
}

// buildSemanticIndex builds the extension vocabulary index from the
// container's own copy of the ExtendedLinkset ontology. A missing or
// broken copy degrades to alias-only handling, never fails the run.
func buildSemanticIndex(c *container.Container) *ontology.SemanticIndex {
	path := filepath.Join(c.Dir, container.OntologyDir, "ExtendedLinkset.rdf")
	idx := ontology.BuildIndexFromFile(path, els.Namespace)
	if idx.Len() == 0 {
		slog.Warn("ExtendedLinkset index is empty; unrecognized relation types fall back to generic Directed1toN links")
	}
	return idx
}

func printReport(report *importer.Report, filename string) {
	fmt.Printf("Rows processed: %d\nLinks created:  %d\nWarnings:       %d\nLinkset file:   %s\n",
		report.Rows, report.Links, len(report.Warnings), filename)
}
