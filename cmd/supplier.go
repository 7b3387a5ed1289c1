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
	"strings"

	"github.com/gnames/gn"
	"github.com/root31/nursery/internal/ioprompt"
	app "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/inventory"
	"github.com/spf13/cobra"
)

var supplierFields = []struct {
	flag  string
	label string
}{
	{"name", "Supplier Name"},
	{"phone", "Phone Number"},
	{"address", "Address"},
}

// getSupplierCmd creates the supplier command group.
func getSupplierCmd() *cobra.Command {
	supplierCmd := &cobra.Command{
		Use:   "supplier",
		Short: "Add, update, delete and list suppliers",
	}
	supplierCmd.AddCommand(
		getSupplierAddCmd(),
		getSupplierUpdateCmd(),
		getSupplierDeleteCmd(),
		getSupplierListCmd(),
	)
	return supplierCmd
}

func addSupplierFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String("name", "", "supplier name")
	f.String("phone", "", "phone number")
	f.String("address", "", "address")
}

func getSupplierAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a supplier",
		Long: `Adds a supplier. Values not given by flags are asked for.
All of name, phone number and address are required.`,
		Example: `  nursery supplier add --name GreenCo --phone 555-0100 \
    --address "1 Main St"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNursery(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			given, _ := supplierFlags(cmd)
			s, err := supplierInput(prompter(cmd), given, false)
			if ioprompt.IsAbandoned(err) {
				fmt.Fprintln(cmd.OutOrStdout(), "All fields are required.")
				return err
			}
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			res, err := n.CreateSupplier(s)
			return finish(cmd, n, res, err)
		},
	}
	addSupplierFlags(addCmd)
	return addCmd
}

func getSupplierUpdateCmd() *cobra.Command {
	updateCmd := &cobra.Command{
		Use:   "update KEY",
		Short: "Change a supplier",
		Long: `Changes the supplier named KEY. Fields given by flags are
replaced, the rest are kept. Without flags every field is asked for
with the current value as the default.

A new name is passed on to all plants of the supplier.`,
		Example: `  nursery supplier update GreenCo --phone 555-0199
  nursery supplier update GreenCo --name "GreenCo Ltd"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			n, err := openNursery(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}

			current, ok := findSupplier(n, key)
			if !ok {
				err = inventory.SupplierNotFoundError(key)
				gn.PrintErrorMessage(err)
				return err
			}

			s := current
			given, changed := supplierFlags(cmd)
			if changed {
				s = mergeSupplier(current, given)
			} else {
				s, err = supplierInput(prompter(cmd), current, true)
				if ioprompt.IsAbandoned(err) {
					fmt.Fprintln(cmd.OutOrStdout(), "Update cancelled.")
					return err
				}
				if err != nil {
					gn.PrintErrorMessage(err)
					return err
				}
			}

			res, err := n.UpdateSupplier(key, s)
			return finish(cmd, n, res, err)
		},
	}
	addSupplierFlags(updateCmd)
	return updateCmd
}

func getSupplierDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete KEY",
		Short: "Delete a supplier",
		Long: `Deletes the supplier named KEY. Its plants keep the
supplier name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			n, err := openNursery(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			res, err := n.DeleteSupplier(args[0])
			return finish(cmd, n, res, err)
		},
	}
}

func getSupplierListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show all suppliers with the plants they serve",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := formatFlag(cmd)
			if err != nil {
				return err
			}
			n, err := openNursery(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			return renderSuppliers(cmd.OutOrStdout(), n.Suppliers(), format)
		},
	}
	addFormatFlag(listCmd)
	return listCmd
}

// supplierFlags reads supplier fields from flags. The flag is true if
// any of them was set.
func supplierFlags(cmd *cobra.Command) (inventory.Supplier, bool) {
	var res inventory.Supplier
	var changed bool
	for _, v := range supplierFields {
		if s, ok := stringFlag(cmd, v.flag); ok {
			*supplierValue(&res, v.flag) = s
			changed = true
		}
	}
	return res, changed
}

// supplierInput asks for supplier fields. With defaults every field is
// asked for and an empty answer keeps the value of s, otherwise only
// blank fields of s are asked for.
func supplierInput(
	pr *ioprompt.Prompter,
	s inventory.Supplier,
	defaults bool,
) (inventory.Supplier, error) {
	var err error
	for _, v := range supplierFields {
		val := supplierValue(&s, v.flag)
		switch {
		case defaults:
			*val, err = pr.Default(v.label, *val)
		case strings.TrimSpace(*val) == "":
			*val, err = pr.Ask(v.label, notBlank(v.label))
		}
		if err != nil {
			return s, err
		}
	}
	return s.Normalize(), nil
}

func supplierValue(s *inventory.Supplier, flag string) *string {
	switch flag {
	case "name":
		return &s.Name
	case "phone":
		return &s.PhoneNumber
	default:
		return &s.Address
	}
}

func notBlank(label string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return inventory.SupplierValidationError(
				strings.ToLower(label), "is required",
			)
		}
		return nil
	}
}

func mergeSupplier(current, given inventory.Supplier) inventory.Supplier {
	res := current
	for _, v := range []struct{ dst, src *string }{
		{&res.Name, &given.Name},
		{&res.PhoneNumber, &given.PhoneNumber},
		{&res.Address, &given.Address},
	} {
		if *v.src != "" {
			*v.dst = *v.src
		}
	}
	return res
}

// findSupplier returns the first supplier with the name.
func findSupplier(n app.Nursery, name string) (inventory.Supplier, bool) {
	for _, v := range n.Suppliers() {
		if v.Name == name {
			return v, true
		}
	}
	return inventory.Supplier{}, false
}
