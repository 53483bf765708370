package main

import (
	"errors"
	"fmt"
	"text/tabwriter"

	"github.com/Kariqs/laptopzone-api/catalog"
	"github.com/Kariqs/laptopzone-api/client"
	"github.com/Kariqs/laptopzone-api/seed"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	loginEmail    string
	loginPassword string

	searchQuery string
	searchBrand string

	prefs catalog.Preferences
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print a bearer token",
	RunE: func(cmd *cobra.Command, args []string) error {
		res, err := newClient().Login(cmd.Context(), loginEmail, loginPassword)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "uid:   %s\ntoken: %s\n", res.UID, res.Token)
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Submit the launch catalog through the admin pipeline",
	Long: `Submit the embedded launch catalog. Listings whose slug already exists
are skipped, so the command can be re-run safely.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		forms, err := seed.Products()
		if err != nil {
			return err
		}
		c := newClient()
		created, skipped := 0, 0
		for _, form := range forms {
			id, err := c.SubmitProduct(cmd.Context(), form)
			switch {
			case errors.Is(err, client.ErrConflict):
				skipped++
				logger.Debug("slug exists, skipping", zap.String("slug", form.Slug))
			case err != nil:
				return fmt.Errorf("seed %s: %w", form.Slug, err)
			default:
				created++
				logger.Info("product created", zap.String("slug", form.Slug), zap.String("id", id))
			}
		}
		fmt.Fprintf(cmd.OutOrStdout(), "created %d, skipped %d\n", created, skipped)
		return nil
	},
}

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "List catalog products",
	RunE: func(cmd *cobra.Command, args []string) error {
		products, err := newClient().Products(cmd.Context(), searchQuery, searchBrand)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SLUG\tBRAND\tPRICE\tTITLE")
		for _, p := range products {
			fmt.Fprintf(w, "%s\t%s\t$%.0f\t%s\n", p.Slug, p.Brand, p.BasePriceUSD, p.Title)
		}
		return w.Flush()
	},
}

var recommendCmd = &cobra.Command{
	Use:   "recommend",
	Short: "Rank products against advisor preferences",
	RunE: func(cmd *cobra.Command, args []string) error {
		results, err := newClient().Recommend(cmd.Context(), prefs)
		if err != nil {
			return err
		}
		w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "SCORE\tPRICE\tSLUG")
		for _, r := range results {
			fmt.Fprintf(w, "%d/%d\t$%.0f\t%s\n", r.Score, catalog.MaxScore, r.Product.BasePriceUSD, r.Product.Slug)
		}
		return w.Flush()
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "account email")
	loginCmd.Flags().StringVar(&loginPassword, "password", "", "account password")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")

	productsCmd.Flags().StringVarP(&searchQuery, "search", "s", "", "search title, CPU, GPU and brand")
	productsCmd.Flags().StringVarP(&searchBrand, "brand", "b", catalog.AllBrands, "brand filter")

	recommendCmd.Flags().Float64Var(&prefs.MinBudget, "min-budget", 0, "minimum budget in USD")
	recommendCmd.Flags().Float64Var(&prefs.MaxBudget, "max-budget", 2000, "maximum budget in USD")
	recommendCmd.Flags().StringVar(&prefs.CPUPref, "cpu", "", "CPU keyword")
	recommendCmd.Flags().StringVar(&prefs.GPUPref, "gpu", "", "GPU keyword")
	recommendCmd.Flags().IntVar(&prefs.RAMMin, "ram-min", 0, "minimum RAM in GB")
	recommendCmd.Flags().IntVar(&prefs.StorageMin, "storage-min", 0, "minimum storage in GB")
}
