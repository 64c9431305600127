package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	"clinicart/internal/client"
	"clinicart/internal/rules"
)

var (
	baseURL     string
	browseLimit int
	browsePages int
)

var browseCmd = &cobra.Command{
	Use:   "browse",
	Short: "Page through a running catalog the way the storefront does",
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(baseURL, nil)
		pager := client.NewPager(c, browseLimit)
		shown := 0
		for pages := 0; pager.HasMore() && (browsePages <= 0 || pages < browsePages); pages++ {
			items, err := pager.Next(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range items[shown:] {
				price := p.Price.StringFixed(2)
				if p.OnOffer() {
					price = fmt.Sprintf("%s (was %s)", p.DiscountedPrice.StringFixed(2), price)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%5d  %-40s  %-28s  %s\n", p.ID, p.Name, p.Category, price)
			}
			shown = len(items)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d products, more: %t\n", shown, pager.HasMore())
		return nil
	},
}

var pincodeCmd = &cobra.Command{
	Use:   "pincode <pincode>",
	Short: "Check delivery for a pincode against a running catalog",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c := client.New(baseURL, &http.Client{Timeout: 5 * time.Second})
		d, err := c.Pincode(cmd.Context(), args[0])
		fmt.Fprintln(cmd.OutOrStdout(), client.DeliveryMessage(d, err))
		if err == nil {
			fmt.Fprintf(cmd.OutOrStdout(), "provider: %s\n", d.LogisticsProvider)
			if msg := rules.Countdown(d.ExpiryTimeForSameDayDelivery); msg != "" {
				fmt.Fprintln(cmd.OutOrStdout(), msg)
			}
		}
		return nil
	},
}

func init() {
	for _, cmd := range []*cobra.Command{browseCmd, pincodeCmd} {
		cmd.Flags().StringVar(&baseURL, "base-url", "http://localhost:3000", "catalog API root")
	}
	browseCmd.Flags().IntVar(&browseLimit, "limit", rules.DefaultLimit, "page size")
	browseCmd.Flags().IntVar(&browsePages, "pages", 0, "stop after this many pages (0 = all)")
}
