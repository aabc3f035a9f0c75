package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"ev-charging-dashboard/internal/pages"
	"ev-charging-dashboard/internal/tariff"
)

var tariffOpts struct {
	variant string
	hour    int
	kwh     float64
}

var tariffCmd = &cobra.Command{
	Use:   "tariff",
	Short: "Classify an hour or print the 24 hour tariff curve",
	Long:  "With --hour, classify one hour and optionally estimate the cost of --kwh. Without it, print the curve.",
	RunE:  runTariff,
}

func init() {
	f := tariffCmd.Flags()
	f.StringVar(&tariffOpts.variant, "variant", tariff.PredictionRule.Name, "rule: prediction or alerts")
	f.IntVar(&tariffOpts.hour, "hour", -1, "hour to classify (0-23)")
	f.Float64Var(&tariffOpts.kwh, "kwh", 0, "energy for a cost estimate")
	rootCmd.AddCommand(tariffCmd)
}

func runTariff(cmd *cobra.Command, args []string) error {
	rule, ok := tariff.Lookup(tariffOpts.variant)
	if !ok {
		return fmt.Errorf("unknown variant %q", tariffOpts.variant)
	}
	out := cmd.OutOrStdout()

	if !cmd.Flags().Changed("hour") {
		tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
		fmt.Fprintf(tw, "HOUR\tLABEL\tRM/kWh\n")
		for _, c := range rule.Curve() {
			fmt.Fprintf(tw, "%d:00\t%s\t%.2f\n", c.Hour, c.Label, c.RatePerKWh)
		}
		return tw.Flush()
	}

	if tariffOpts.hour < pages.MinHour || tariffOpts.hour > pages.MaxHour {
		return fmt.Errorf("%w: hour must be between %d and %d", pages.ErrInvalidInput, pages.MinHour, pages.MaxHour)
	}
	c := rule.Classify(tariffOpts.hour)
	fmt.Fprintf(out, "%s rule %s: %d:00 is %s at RM %.2f/kWh\n", rule.Name, rule.Peak, c.Hour, c.Label, c.RatePerKWh)
	if tariffOpts.kwh > 0 {
		fmt.Fprintf(out, "estimated cost for %.2f kWh: RM %.2f\n", tariffOpts.kwh, rule.EstimateCost(c.Hour, tariffOpts.kwh))
	}
	return nil
}
