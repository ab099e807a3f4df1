package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chenryang/LaTeX-merge/internal/config"
	"github.com/chenryang/LaTeX-merge/internal/pipeline"
)

var (
	deleteTex        bool
	deleteUnusedPDFs bool
	checkPDFs        bool
	verbose          bool
)

var rootCmd = &cobra.Command{
	Use:   "latex-merge INPUT OUTPUT",
	Short: "Flatten a multi-file LaTeX document into a single file",
	Long: `latex-merge reads a LaTeX document, strips comments, recursively inlines
\input and \include directives, collapses long runs of blank lines, and writes
the flattened result to OUTPUT. It can optionally delete the now-redundant
source .tex files and any PDF files the flattened document does not reference.`,
	Args:         cobra.ExactArgs(2),
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

		cfg, err := config.New(args[0], args[1])
		if err != nil {
			return err
		}
		cfg.DeleteTex = deleteTex
		cfg.DeleteUnusedPDFs = deleteUnusedPDFs
		cfg.CheckPDFs = checkPDFs

		if err := cfg.Validate(); err != nil {
			return err
		}

		res, err := pipeline.NewFlattener(cfg, log).Run()
		if err != nil {
			return err
		}

		log.Info("done",
			"output", cfg.OutputPath,
			"referenced_pdfs", res.ReferencedPDFs,
			"tex_deleted", res.TexDeleted,
			"pdfs_deleted", res.PDFsDeleted,
		)
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&deleteTex, "delete-tex", false, "Delete every .tex file except OUTPUT after writing. Use with caution")
	rootCmd.Flags().BoolVar(&deleteUnusedPDFs, "delete-unused-pdf", false, "Delete PDF files the flattened document does not reference. Use with caution")
	rootCmd.Flags().BoolVar(&checkPDFs, "check-pdfs", false, "Open each referenced PDF and report its page count")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
