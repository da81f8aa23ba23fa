package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/labelcheck/backend/internal/domain"
	"github.com/labelcheck/backend/internal/infrastructure/tesseract"
	"github.com/labelcheck/backend/internal/usecase"
)

var (
	languages   []string
	pageSegMode int
	debug       bool
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	rootCmd := newRootCommand()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "labelcheck: %v\n", err)
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "labelcheck",
		Short: "LabelCheck label verification CLI",
		Long: `LabelCheck CLI runs the label verification engine from the command line:
extract text from a label image with OCR, or verify the extracted text
against submitted form fields without starting the HTTP server.`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringSliceVar(&languages, "lang", []string{"eng"}, "OCR languages passed to Tesseract")
	cmd.PersistentFlags().IntVar(&pageSegMode, "psm", 3, "Tesseract page segmentation mode (0-13)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	cmd.AddCommand(
		newVerifyCmd(),
		newExtractCmd(),
	)
	return cmd
}

func newVerifyCmd() *cobra.Command {
	var imagePath string
	var fields domain.FormFields
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a label image against submitted form fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			service := usecase.NewVerificationService(
				nil,
				newEngine(),
				usecase.VerificationServiceConfig{
					EnableDebugLogging: debug,
					Matching: usecase.MatchConfig{
						EnableDebugLogging: debug,
					},
				},
			)

			result, err := service.VerifyLabel(cmd.Context(), image, fields)
			if err != nil {
				return err
			}

			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			return encoder.Encode(result)
		},
	}
	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the label image (required)")
	cmd.Flags().StringVar(&fields.BrandName, "brand", "", "Brand name submitted on the form (required)")
	cmd.Flags().StringVar(&fields.ProductClass, "class", "", "Product class/type submitted on the form (required)")
	cmd.Flags().StringVar(&fields.AlcoholContent, "abv", "", "Alcohol content claim, e.g. \"45%\" (required)")
	cmd.Flags().StringVar(&fields.NetContents, "net", "", "Net contents claim, e.g. \"750 mL\" (optional)")
	_ = cmd.MarkFlagRequired("image")
	_ = cmd.MarkFlagRequired("brand")
	_ = cmd.MarkFlagRequired("class")
	_ = cmd.MarkFlagRequired("abv")
	return cmd
}

func newExtractCmd() *cobra.Command {
	var imagePath string
	cmd := &cobra.Command{
		Use:   "extract",
		Short: "Print the raw OCR text extracted from a label image",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := os.ReadFile(imagePath)
			if err != nil {
				return fmt.Errorf("reading image: %w", err)
			}

			text, err := newEngine().ExtractText(cmd.Context(), image)
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&imagePath, "image", "i", "", "Path to the label image (required)")
	_ = cmd.MarkFlagRequired("image")
	return cmd
}

func newEngine() *tesseract.Engine {
	engine := tesseract.NewEngine(tesseract.Config{
		Languages:   languages,
		PageSegMode: pageSegMode,
	})
	engine.SetDebug(debug)
	return engine
}
