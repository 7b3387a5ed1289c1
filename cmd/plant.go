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

	"github.com/gnames/gn"
	"github.com/root31/nursery/internal/ioprompt"
	app "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/inventory"
	"github.com/spf13/cobra"
)

// plantFlags maps prompted plant fields to flags of 'plant add'.
var plantFlags = []struct {
	field inventory.Field
	flag  string
}{
	{inventory.FieldID, "id"},
	{inventory.FieldName, "name"},
	{inventory.FieldDescription, "description"},
	{inventory.FieldQuantity, "quantity"},
	{inventory.FieldGreenhouse, "greenhouse"},
}

// getPlantCmd creates the plant command group.
func getPlantCmd() *cobra.Command {
	plantCmd := &cobra.Command{
		Use:   "plant",
		Short: "Add, update, delete and list plants",
	}
	plantCmd.AddCommand(
		getPlantAddCmd(),
		getPlantUpdateCmd(),
		getPlantDeleteCmd(),
		getPlantListCmd(),
	)
	return plantCmd
}

func getPlantAddCmd() *cobra.Command {
	addCmd := &cobra.Command{
		Use:   "add",
		Short: "Add a plant",
		Long: `Adds a plant to the inventory.

Values not given by flags are asked for. Invalid ID, quantity and
greenhouse answers are asked again.

Without --supplier or --no-supplier the supplier is selected from a
numbered list (empty answer selects the first one, 'q' skips). When
there are no suppliers yet, a new one can be created on the spot.
A plant without a supplier raises a MISSING_SUPPLIER alert.`,
		Example: `  nursery plant add
  nursery plant add --id 1 --name Fern --description Shade \
    --quantity 3 --greenhouse no --supplier GreenCo`,
		Args: cobra.NoArgs,
		RunE: runPlantAdd,
	}

	f := addCmd.Flags()
	f.String("id", "", "plant ID, a positive integer")
	f.String("name", "", "plant name")
	f.String("description", "", "plant description")
	f.String("quantity", "", "plants in stock")
	f.String("greenhouse", "", "greenhouse required: yes or no")
	f.String("supplier", "", "name of an existing supplier")
	f.Bool("no-supplier", false, "add the plant without a supplier")
	addCmd.MarkFlagsMutuallyExclusive("supplier", "no-supplier")
	return addCmd
}

func runPlantAdd(cmd *cobra.Command, args []string) error {
	n, err := openNursery(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	p, err := plantInput(cmd)
	if ioprompt.IsAbandoned(err) {
		fmt.Fprintln(cmd.OutOrStdout(), "All fields are required.")
		return err
	}
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	choice, err := supplierChoice(cmd, n)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	res, err := n.CreatePlant(p, choice)
	return finish(cmd, n, res, err)
}

// plantInput collects plant fields from flags, asking for missing ones.
func plantInput(cmd *cobra.Command) (inventory.Plant, error) {
	var err error
	var p inventory.Plant
	var pr *ioprompt.Prompter

	for _, v := range plantFlags {
		value, ok := stringFlag(cmd, v.flag)
		if !ok {
			if pr == nil {
				pr = prompter(cmd)
			}
			value, err = askField(pr, p, v.field)
			if err != nil {
				return p, err
			}
		}
		if p, err = p.With(v.field, value); err != nil {
			return p, err
		}
	}
	return p, nil
}

// askField repeats the question until the value is valid for the field.
func askField(
	pr *ioprompt.Prompter,
	p inventory.Plant,
	f inventory.Field,
) (string, error) {
	label := f.String()
	if f == inventory.FieldGreenhouse {
		label += " (yes/no)"
	}
	return pr.Ask(label, func(s string) error {
		_, err := p.With(f, s)
		return err
	})
}

// supplierChoice decides the supplier of a new plant from flags or by
// asking the operator.
func supplierChoice(
	cmd *cobra.Command,
	n app.Nursery,
) (app.SupplierChoice, error) {
	if name, ok := stringFlag(cmd, "supplier"); ok {
		return app.SupplierChoice{Name: name}, nil
	}
	if noSupplier, _ := cmd.Flags().GetBool("no-supplier"); noSupplier {
		return app.SupplierChoice{Abandoned: true}, nil
	}

	pr := prompter(cmd)
	abandoned := app.SupplierChoice{Abandoned: true}

	if names := supplierNames(n); len(names) > 0 {
		idx, err := pr.Choose("Supplier", names)
		if ioprompt.IsAbandoned(err) {
			return abandoned, nil
		}
		if err != nil {
			return abandoned, err
		}
		return app.SupplierChoice{Name: names[idx]}, nil
	}

	ok, err := pr.Confirm("No suppliers found. Add a new supplier?")
	if ioprompt.IsAbandoned(err) || (err == nil && !ok) {
		return abandoned, nil
	}
	if err != nil {
		return abandoned, err
	}

	s, err := supplierInput(pr, inventory.Supplier{}, false)
	if ioprompt.IsAbandoned(err) {
		return abandoned, nil
	}
	if err != nil {
		return abandoned, err
	}
	return app.SupplierChoice{Create: &s}, nil
}

func supplierNames(n app.Nursery) []string {
	suppliers := n.Suppliers()
	res := make([]string, len(suppliers))
	for i, v := range suppliers {
		res[i] = v.Name
	}
	return res
}

func getPlantUpdateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "update ID FIELD [VALUE]",
		Short: "Change one field of a plant",
		Long: `Changes one field of a plant. FIELD is one of: id, name,
description (desc), quantity (qty), greenhouse, supplier.

A missing VALUE is asked for. A supplier must exist, or be
"No Supplier Assigned".`,
		Example: `  nursery plant update 1 quantity 12
  nursery plant update 1 greenhouse yes
  nursery plant update 1 supplier "Leafy Ltd"`,
		Args: cobra.RangeArgs(2, 3),
		RunE: runPlantUpdate,
	}
}

func runPlantUpdate(cmd *cobra.Command, args []string) error {
	id, err := inventory.ParseID(args[0])
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	f := inventory.NewField(args[1])
	if f == inventory.FieldUnknown {
		return fmt.Errorf(
			"unknown field %q, use one of: "+
				"id, name, description, quantity, greenhouse, supplier",
			args[1],
		)
	}

	n, err := openNursery(cmd)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	var value string
	if len(args) == 3 {
		value = args[2]
	} else {
		value, err = askUpdate(cmd, n, id, f)
		if ioprompt.IsAbandoned(err) {
			fmt.Fprintln(cmd.OutOrStdout(), "Update cancelled.")
			return err
		}
		if err != nil {
			gn.PrintErrorMessage(err)
			return err
		}
	}

	res, err := n.UpdatePlant(id, f, value)
	return finish(cmd, n, res, err)
}

func askUpdate(
	cmd *cobra.Command,
	n app.Nursery,
	id int,
	f inventory.Field,
) (string, error) {
	var p inventory.Plant
	for _, v := range n.Plants() {
		if v.ID == id {
			p = v
			break
		}
	}
	if p.ID == 0 {
		return "", inventory.PlantNotFoundError(id)
	}

	pr := prompter(cmd)
	if f == inventory.FieldSupplier {
		options := append(supplierNames(n), inventory.NoSupplier)
		idx, err := pr.Choose("Supplier", options)
		if err != nil {
			return "", err
		}
		return options[idx], nil
	}
	return askField(pr, p, f)
}

func getPlantDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "delete ID",
		Short:   "Delete a plant",
		Example: `  nursery plant delete 1`,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := inventory.ParseID(args[0])
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			n, err := openNursery(cmd)
			if err != nil {
				gn.PrintErrorMessage(err)
				return err
			}
			res, err := n.DeletePlant(id)
			return finish(cmd, n, res, err)
		},
	}
}

func getPlantListCmd() *cobra.Command {
	listCmd := &cobra.Command{
		Use:   "list",
		Short: "Show all plants",
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
			return renderPlants(cmd.OutOrStdout(), n.Plants(), format)
		},
	}
	addFormatFlag(listCmd)
	return listCmd
}
