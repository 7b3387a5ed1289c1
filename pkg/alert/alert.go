// Package alert derives operational alerts of the nursery from plant state:
// stock shortages, greenhouse requirements during the cold season and plants
// without a supplier.
package alert

import (
	"fmt"

	"github.com/gnames/gnuuid"
	"github.com/google/uuid"
)

// Kind is the category of an alert.
type Kind int

const (
	Critical Kind = iota
	Low
	Greenhouse
	MissingSupplier
)

var kindNames = map[Kind]string{
	Critical:        "CRITICAL",
	Low:             "LOW",
	Greenhouse:      "GREENHOUSE",
	MissingSupplier: "MISSING_SUPPLIER",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "UNKNOWN"
}

// Slot groups alerts that replace each other. A plant name holds at most
// one alert per slot.
type Slot int

const (
	// SlotStock holds CRITICAL or LOW of a plant name.
	SlotStock Slot = iota
	// SlotGreenhouse holds the greenhouse transition alert of a plant name.
	SlotGreenhouse
	// SlotFleet holds the seasonal alert about all plants, its subject is
	// empty.
	SlotFleet
	SlotMissingSupplier
)

// Key identifies an alert in the alert set.
type Key struct {
	Slot    Slot
	Subject string
}

// Alert is one line of the alert pane.
type Alert struct {
	// ID is a UUIDv5 derived from the kind and the subject.
	ID   uuid.UUID
	Kind Kind
	// Subject is the plant name, empty for the fleet alert.
	Subject string
	Text    string
	key     Key
}

// Key returns the de-duplication key of the alert.
func (a Alert) Key() Key {
	return a.key
}

func newAlert(k Kind, slot Slot, subject, text string) Alert {
	return Alert{
		ID:      gnuuid.New(k.String() + "|" + subject),
		Kind:    k,
		Subject: subject,
		Text:    text,
		key:     Key{Slot: slot, Subject: subject},
	}
}

func criticalAlert(name string, qty int) Alert {
	text := fmt.Sprintf(
		"CRITICAL ALERT: Plant '%s' is out of stock (Quantity: %d)", name, qty,
	)
	return newAlert(Critical, SlotStock, name, text)
}

func lowAlert(name string, qty int) Alert {
	text := fmt.Sprintf(
		"Alert: Plant '%s' is low on stock (Quantity: %d)", name, qty,
	)
	return newAlert(Low, SlotStock, name, text)
}

func greenhouseAlert(name string) Alert {
	text := fmt.Sprintf(
		"GREENHOUSE ALERT: Plant '%s' now requires a greenhouse. "+
			"Consider moving it in.", name,
	)
	return newAlert(Greenhouse, SlotGreenhouse, name, text)
}

func fleetAlert() Alert {
	text := "GREENHOUSE ALERT: Some plants require greenhouse. " +
		"Consider moving them in."
	return newAlert(Greenhouse, SlotFleet, "", text)
}

func missingSupplierAlert(name string) Alert {
	text := fmt.Sprintf("Alert: Plant '%s' has no supplier assigned.", name)
	return newAlert(MissingSupplier, SlotMissingSupplier, name, text)
}
