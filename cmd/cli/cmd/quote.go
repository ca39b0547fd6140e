// Package cmd - quote command
package cmd

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ratecard/core/calc"
	"ratecard/core/types"
	"ratecard/internal/config"
)

var (
	profilePath  string
	briefPath    string
	scorePath    string
	outputFormat string
)

// quoteCmd represents the quote command
var quoteCmd = &cobra.Command{
	Use:   "quote",
	Short: "Price a deal brief for a creator",
	Long: `Compute the valuation of one deal brief for one creator.

The profile and brief are JSON documents; the score file is optional.

Examples:
  ratecard quote --profile creator.json --brief deal.json
  ratecard quote --profile creator.json --brief deal.json --score score.json
  ratecard quote --profile creator.json --brief deal.json --format json`,
	RunE: runQuote,
}

func init() {
	quoteCmd.Flags().StringVarP(&profilePath, "profile", "p", "", "creator profile JSON file (required)")
	quoteCmd.Flags().StringVarP(&briefPath, "brief", "b", "", "parsed brief JSON file (required)")
	quoteCmd.Flags().StringVarP(&scorePath, "score", "s", "", "quality/fit score JSON file")
	quoteCmd.Flags().StringVarP(&outputFormat, "format", "f", "cli", "output format (cli, json)")
	_ = quoteCmd.MarkFlagRequired("profile")
	_ = quoteCmd.MarkFlagRequired("brief")
}

func runQuote(cmd *cobra.Command, args []string) error {
	var profile types.CreatorProfile
	if err := readJSONFile(profilePath, &profile); err != nil {
		return fmt.Errorf("reading profile: %w", err)
	}

	var brief types.ParsedBrief
	if err := readJSONFile(briefPath, &brief); err != nil {
		return fmt.Errorf("reading brief: %w", err)
	}

	var scoreIn *types.ScoreInput
	if scorePath != "" {
		scoreIn = &types.ScoreInput{}
		if err := readJSONFile(scorePath, scoreIn); err != nil {
			return fmt.Errorf("reading score: %w", err)
		}
	}

	cfg := config.Get()
	if profile.Currency == "" {
		profile.Currency = cfg.Engine.DefaultCurrency
	}

	defaults := calc.DefaultDefaults()
	defaults.SeasonalPricing = cfg.Engine.SeasonalPricing
	if cfg.Engine.DefaultWhitelisting != "" {
		defaults.Whitelisting = types.WhitelistingType(cfg.Engine.DefaultWhitelisting)
	}

	result, err := calc.CalculatePriceWithDefaults(&profile, &brief, scoreIn, defaults)
	if err != nil {
		return err
	}

	if outputFormat == "json" {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(result)
	}

	printResult(result)
	return nil
}

// printResult renders the layer-by-layer breakdown for a terminal
func printResult(r *types.PricingResult) {
	fmt.Printf("Pricing model: %s\n\n", r.PricingModel)

	for _, l := range r.Layers {
		fmt.Printf("  %-14s %-34s ×%.2f  %s%s\n",
			l.Name, l.Input, l.Multiplier, r.CurrencySymbol, l.Amount.StringFixed(2))
	}
	if len(r.Layers) > 0 {
		fmt.Println()
	}

	fmt.Printf("Per deliverable: %s%s\n", r.CurrencySymbol, r.PricePerDeliverable.StringFixed(2))
	fmt.Printf("Quantity:        %d\n", r.Quantity)
	fmt.Printf("Total:           %s%s %s\n", r.CurrencySymbol, r.TotalPrice.StringFixed(2), r.Currency)
	fmt.Printf("Quote valid for: %d days\n", r.ValidityDays)

	switch {
	case r.Affiliate != nil:
		fmt.Printf("\nEstimated commission: %s%s (%d sales × %s%s × %.1f%%)\n",
			r.CurrencySymbol, r.Affiliate.EstimatedEarnings.StringFixed(2),
			r.Affiliate.EstimatedSales,
			r.CurrencySymbol, r.Affiliate.AvgOrderValue.StringFixed(2),
			r.Affiliate.CommissionRate)
	case r.Hybrid != nil:
		fmt.Printf("\nGuaranteed fee:       %s%s\n", r.CurrencySymbol, r.Hybrid.BaseFee.StringFixed(2))
		fmt.Printf("Estimated commission: %s%s\n", r.CurrencySymbol, r.Hybrid.Affiliate.EstimatedEarnings.StringFixed(2))
		fmt.Printf("Estimated total:      %s%s\n", r.CurrencySymbol, r.Hybrid.EstimatedTotal.StringFixed(2))
	case r.Performance != nil:
		fmt.Printf("\nGuaranteed total: %s%s\n", r.CurrencySymbol, r.Performance.GuaranteedTotal.StringFixed(2))
		fmt.Printf("Bonus:            %s%s at %d %s\n",
			r.CurrencySymbol, r.Performance.BonusAmount.StringFixed(2),
			r.Performance.Threshold, r.Performance.Metric)
		fmt.Printf("Potential total:  %s%s\n", r.CurrencySymbol, r.Performance.PotentialTotal.StringFixed(2))
	case r.Retainer != nil:
		fmt.Printf("\nContract:           %s (%d months, %.0f%% volume discount)\n",
			r.Retainer.Length, r.Retainer.Months, r.Retainer.VolumeDiscount*100)
		fmt.Printf("Monthly content:    %s%s\n", r.CurrencySymbol, r.Retainer.MonthlyContentValue.StringFixed(2))
		fmt.Printf("Content value:      %s%s\n", r.CurrencySymbol, r.Retainer.TotalContentValue.StringFixed(2))
		if !r.Retainer.ExclusivityPremium.IsZero() {
			fmt.Printf("Exclusivity:        %s%s\n", r.CurrencySymbol, r.Retainer.ExclusivityPremium.StringFixed(2))
		}
		if !r.Retainer.EventValue.IsZero() {
			fmt.Printf("Event appearances:  %s%s\n", r.CurrencySymbol, r.Retainer.EventValue.StringFixed(2))
		}
		if !r.Retainer.ProductSeedingValue.IsZero() {
			fmt.Printf("Product seeding:    %s%s (informational)\n", r.CurrencySymbol, r.Retainer.ProductSeedingValue.StringFixed(2))
		}
		fmt.Printf("Contract value:     %s%s\n", r.CurrencySymbol, r.Retainer.TotalContractValue.StringFixed(2))
	}

	fmt.Printf("\nFormula: %s\n", r.Formula)
}

func readJSONFile(path string, v interface{}) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, v)
}
