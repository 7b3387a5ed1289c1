/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/spf13/cobra"
)

// getStatusCmd creates the status command.
func getStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show a summary of the inventory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNursery(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			var total, greenhouse int
			plants := n.Plants()
			for _, v := range plants {
				total += v.Quantity
				if v.GreenhouseRequired {
					greenhouse++
				}
			}

			season := "off season"
			if n.InSeason() {
				season = "in season (October to May)"
			}
			synced := "yes"
			if !n.Synced() {
				synced = "no, last save failed"
			}

			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintf(w, "Plants:\t%s\n", humanize.Comma(int64(len(plants))))
			fmt.Fprintf(w, "Plants in stock:\t%s\n", humanize.Comma(int64(total)))
			fmt.Fprintf(w, "Need greenhouse:\t%s\n", humanize.Comma(int64(greenhouse)))
			fmt.Fprintf(w, "Suppliers:\t%s\n",
				humanize.Comma(int64(len(n.Suppliers()))))
			fmt.Fprintf(w, "Alerts:\t%s\n", humanize.Comma(int64(len(n.Alerts()))))
			fmt.Fprintf(w, "Low stock threshold:\t%d\n", n.Threshold())
			fmt.Fprintf(w, "Greenhouse season:\t%s\n", season)
			fmt.Fprintf(w, "Saved:\t%s\n", synced)
			fmt.Fprintf(w, "Backend:\t%s\n", cfg.Store.Backend)
			fmt.Fprintf(w, "Data directory:\t%s\n", cfg.StoreDir())
			return w.Flush()
		},
	}
}
