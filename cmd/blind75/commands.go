package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"blind75-generator/internal/di"
	"blind75-generator/internal/domain/model"
	"blind75-generator/internal/usecase"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "blind75",
		Short:         "Generate randomized Blind 75 practice spreadsheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runServe,
	}
	root.AddCommand(newServeCmd(), newGenerateCmd(), newPreviewCmd())
	return root
}

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generator page and export API",
		Args:  cobra.NoArgs,
		RunE:  runServe,
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	application, err := di.InitializeApp()
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	return application.Run(cmd.Context())
}

func newGenerateCmd() *cobra.Command {
	var (
		size   int
		format string
		out    string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write one randomized export to disk",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Flags().Changed("size") && size <= 0 {
				return fmt.Errorf("--size: %w", model.ErrInvalidSampleSize)
			}
			req := usecase.ExportRequest{Size: size}
			if format != "" {
				f, err := model.ParseFormat(format)
				if err != nil {
					return fmt.Errorf("--format: %w", err)
				}
				req.Format = f
			}

			cli, err := di.InitializeCLI(di.OutputDir(out))
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return cli.Generate(cmd.Context(), req, cmd.OutOrStdout())
		},
	}

	cmd.Flags().IntVarP(&size, "size", "n", 0, "number of problems to sample (default SAMPLE_SIZE)")
	cmd.Flags().StringVarP(&format, "format", "f", "", "export format: xlsx or csv (default EXPORT_FORMAT)")
	cmd.Flags().StringVarP(&out, "out", "o", ".", "directory to write the export into")
	return cmd
}

func newPreviewCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Show catalog stats and the first problems",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cli, err := di.InitializeCLI(di.OutputDir("."))
			if err != nil {
				return fmt.Errorf("failed to initialize: %w", err)
			}
			return cli.Preview(cmd.OutOrStdout(), limit)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 3, "number of problems to preview")
	return cmd
}
