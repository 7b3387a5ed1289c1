package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/gnames/gnfmt"
	app "github.com/root31/nursery/pkg"
	"github.com/root31/nursery/pkg/alert"
	"github.com/root31/nursery/pkg/inventory"
)

type plantView struct {
	ID                 int    `json:"id"`
	Name               string `json:"name"`
	Description        string `json:"description"`
	Quantity           int    `json:"quantity"`
	GreenhouseRequired string `json:"greenhouse_required"`
	Supplier           string `json:"supplier"`
}

type supplierView struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	PlantsServed []int  `json:"plants_served"`
}

type alertView struct {
	ID      string `json:"id"`
	Kind    string `json:"kind"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func renderPlants(w io.Writer, plants []inventory.Plant, format string) error {
	header := make([]string, len(inventory.Fields))
	for i, f := range inventory.Fields {
		header[i] = f.String()
	}

	rows := make([][]string, len(plants))
	views := make([]plantView, len(plants))
	for i, p := range plants {
		gh := inventory.FormatGreenhouse(p.GreenhouseRequired)
		rows[i] = []string{
			strconv.Itoa(p.ID), p.Name, p.Description,
			strconv.Itoa(p.Quantity), gh, p.SupplierRef,
		}
		views[i] = plantView{
			ID:                 p.ID,
			Name:               p.Name,
			Description:        p.Description,
			Quantity:           p.Quantity,
			GreenhouseRequired: gh,
			Supplier:           p.SupplierRef,
		}
	}
	return render(w, format, header, rows, views, "No plants.")
}

func renderSuppliers(
	w io.Writer,
	suppliers []inventory.Supplier,
	format string,
) error {
	header := []string{"Name", "Phone Number", "Address", "Plants Served"}

	rows := make([][]string, len(suppliers))
	views := make([]supplierView, len(suppliers))
	for i, s := range suppliers {
		served := make([]string, len(s.PlantsServed))
		for j, id := range s.PlantsServed {
			served[j] = strconv.Itoa(id)
		}
		rows[i] = []string{
			s.Name, s.PhoneNumber, s.Address, strings.Join(served, ", "),
		}
		views[i] = supplierView{
			Name:         s.Name,
			PhoneNumber:  s.PhoneNumber,
			Address:      s.Address,
			PlantsServed: append([]int{}, s.PlantsServed...),
		}
	}
	return render(w, format, header, rows, views, "No suppliers.")
}

func renderAlerts(w io.Writer, alerts []alert.Alert, format string) error {
	if format == "table" {
		printAlerts(w, alerts)
		return nil
	}

	header := []string{"ID", "Kind", "Subject", "Text"}
	rows := make([][]string, len(alerts))
	views := make([]alertView, len(alerts))
	for i, a := range alerts {
		views[i] = alertView{
			ID:      a.ID.String(),
			Kind:    a.Kind.String(),
			Subject: a.Subject,
			Text:    a.Text,
		}
		rows[i] = []string{views[i].ID, views[i].Kind, a.Subject, a.Text}
	}
	return render(w, format, header, rows, views, "")
}

func render(
	w io.Writer,
	format string,
	header []string,
	rows [][]string,
	data any,
	empty string,
) error {
	switch format {
	case "json":
		enc := gnfmt.GNjson{Pretty: true}
		bs, err := enc.Encode(data)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, string(bs))
	case "csv", "tsv":
		sep := ','
		if format == "tsv" {
			sep = '\t'
		}
		fmt.Fprintln(w, gnfmt.ToCSV(header, sep))
		for _, v := range rows {
			fmt.Fprintln(w, gnfmt.ToCSV(v, sep))
		}
	default:
		if len(rows) == 0 {
			fmt.Fprintln(w, empty)
			return nil
		}
		tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
		fmt.Fprintln(tw, strings.Join(header, "\t"))
		for _, v := range rows {
			fmt.Fprintln(tw, strings.Join(v, "\t"))
		}
		return tw.Flush()
	}
	return nil
}

func printResult(w io.Writer, res app.Result) {
	fmt.Fprintln(w, res.Message)
	for _, v := range res.Warnings {
		fmt.Fprintf(w, "Warning: %s\n", v)
	}
}

// printAlerts shows the alert pane.
func printAlerts(w io.Writer, alerts []alert.Alert) {
	if len(alerts) == 0 {
		fmt.Fprintln(w, "Alerts: none")
		return
	}
	fmt.Fprintln(w, "Alerts:")
	for _, a := range alerts {
		fmt.Fprintf(w, "  %s\n", a.Text)
	}
}
