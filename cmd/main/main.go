package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"hollywool/seogen/internal/config"
	"hollywool/seogen/internal/container"
	"hollywool/seogen/internal/domain"
	"hollywool/seogen/internal/service"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:          "seogen",
		Short:        "SEO product description generator for the Hollywool catalog",
		SilenceUsage: true,
	}

	root.AddCommand(generateCmd(), batchCmd(), findProductCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func newApp() (*container.Container, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return container.New(cfg)
}

func generateCmd() *cobra.Command {
	var (
		force     bool
		upload    bool
		productID int
	)

	cmd := &cobra.Command{
		Use:   "generate <product name>",
		Short: "Generate a description for a single product",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			result, err := app.Service.Generate(cmd.Context(), args[0], service.GenerateOptions{
				Force:        force,
				Upload:       upload,
				WooProductID: productID,
			})
			if err != nil {
				color.Red("❌ %v", err)
				return err
			}

			printResult(result)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "regenerate even if the output file exists")
	cmd.Flags().BoolVarP(&upload, "upload", "u", false, "upload the description to WooCommerce after saving")
	cmd.Flags().IntVar(&productID, "id", 0, "WooCommerce product ID, skips the name search")
	return cmd
}

func batchCmd() *cobra.Command {
	var (
		upload bool
		yes    bool
	)

	cmd := &cobra.Command{
		Use:   "batch <product list file>",
		Short: "Generate descriptions for every product in a list file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			products, err := app.Service.ReadProductList(args[0])
			if err != nil {
				return err
			}

			color.Cyan("🧶 Batch generation for %d products", len(products))
			color.Yellow("Existing descriptions will be regenerated.")

			if !yes && !confirm("Continue? [y/N] ") {
				color.Yellow("Aborted.")
				return nil
			}

			report, reportPath, err := app.Service.GenerateBatch(cmd.Context(),
				products, service.GenerateOptions{Upload: upload})
			if err != nil {
				return err
			}

			color.Green("✅ %d succeeded", report.Successful)
			if report.Failed > 0 {
				color.Red("❌ %d failed", report.Failed)
				for _, failure := range report.Failures {
					color.Red("   %s: %s", failure.ProductName, failure.Error)
				}
			}
			color.Cyan("📊 Report saved to %s", reportPath)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&upload, "upload", "u", false, "upload each description to WooCommerce")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")
	return cmd
}

func findProductCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "find-product <product name>",
		Short: "Look up a WooCommerce product ID by name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newApp()
			if err != nil {
				return err
			}

			if !app.Client.Configured() {
				return fmt.Errorf("woocommerce credentials are not configured")
			}

			product, err := app.Client.FindProductByName(cmd.Context(), args[0])
			if err != nil {
				color.Red("❌ %v", err)
				return err
			}

			color.Green("✅ Found: %s", product.Name)
			fmt.Printf("   ID:        %d\n", product.ID)
			fmt.Printf("   Slug:      %s\n", product.Slug)
			fmt.Printf("   Permalink: %s\n", product.Permalink)
			return nil
		},
	}
}

func printResult(result *domain.GenerationResult) {
	if result.Skipped {
		color.Yellow("⏭️  Skipped %q: %s", result.ProductName, result.Message)
		color.Yellow("   Existing file: %s", result.FilePath)
		return
	}

	color.Green("✅ Generated description for %q", result.ProductName)
	fmt.Printf("   Category: %s\n", result.Category)
	fmt.Printf("   File:     %s\n", result.FilePath)

	if result.Uploaded {
		color.Green("✅ Uploaded to WooCommerce")
	} else if result.Message != "" {
		color.Yellow("⚠️  %s", result.Message)
	}
}

func confirm(prompt string) bool {
	fmt.Print(prompt)
	reader := bufio.NewReader(os.Stdin)
	answer, err := reader.ReadString('\n')
	if err != nil {
		return false
	}
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}
