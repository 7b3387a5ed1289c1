package alert

import (
	"log/slog"
	"slices"
	"time"
)

// DefaultThreshold is the quantity at which stock stops being low.
const DefaultThreshold = 5

// Engine keeps the current alert set. Every rule is idempotent: applying
// it twice to the same state leaves the set unchanged.
type Engine struct {
	alerts    map[Key]Alert
	order     []Key
	threshold int
	now       func() time.Time
}

// Option configures the Engine.
type Option func(*Engine)

// OptThreshold sets the low-stock threshold. Values below 1 are ignored.
func OptThreshold(n int) Option {
	return func(e *Engine) {
		if n < 1 {
			slog.Warn("Ignoring low stock threshold", "value", n)
			return
		}
		e.threshold = n
	}
}

// OptClock replaces the wall clock used for season checks.
func OptClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// New creates an Engine with an empty alert set.
func New(opts ...Option) *Engine {
	res := &Engine{
		alerts:    make(map[Key]Alert),
		threshold: DefaultThreshold,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Threshold returns the low-stock threshold.
func (e *Engine) Threshold() int {
	return e.threshold
}

// InSeason is true from October through May.
func InSeason(t time.Time) bool {
	m := t.Month()
	return m >= time.October || m <= time.May
}

// InSeason checks the season against the engine's clock.
func (e *Engine) InSeason() bool {
	return InSeason(e.now())
}

// List returns alerts in the order they were raised.
func (e *Engine) List() []Alert {
	res := make([]Alert, len(e.order))
	for i, k := range e.order {
		res[i] = e.alerts[k]
	}
	return res
}

// Len returns the number of current alerts.
func (e *Engine) Len() int {
	return len(e.order)
}

// Has is true if an alert of the kind exists for the subject.
func (e *Engine) Has(k Kind, subject string) bool {
	for _, a := range e.alerts {
		if a.Kind == k && a.Subject == subject {
			return true
		}
	}
	return false
}

// Reset removes all alerts.
func (e *Engine) Reset() {
	e.alerts = make(map[Key]Alert)
	e.order = nil
}

// EvaluateStock sets the stock slot of a plant name from its quantity.
func (e *Engine) EvaluateStock(name string, qty int) {
	switch {
	case qty == 0:
		e.put(criticalAlert(name, qty))
	case qty > 0 && qty < e.threshold:
		e.put(lowAlert(name, qty))
	default:
		e.remove(Key{Slot: SlotStock, Subject: name})
	}
}

// EvaluateFleet keeps the seasonal fleet alert present only while in
// season and at least one plant requires a greenhouse.
func (e *Engine) EvaluateFleet(anyGreenhouse bool) {
	if anyGreenhouse && e.InSeason() {
		e.put(fleetAlert())
		return
	}
	e.remove(Key{Slot: SlotFleet})
}

// GreenhouseTransition reacts to a change of the greenhouse requirement of
// a plant. The alert is raised only on a no to yes change in season and
// cleared when the requirement goes back to no.
func (e *Engine) GreenhouseTransition(name string, from, to bool) {
	key := Key{Slot: SlotGreenhouse, Subject: name}
	switch {
	case !from && to:
		if e.InSeason() {
			e.put(greenhouseAlert(name))
		}
	case from && !to:
		e.remove(key)
	}
}

// RaiseMissingSupplier adds a missing supplier alert for the plant name.
func (e *Engine) RaiseMissingSupplier(name string) {
	e.put(missingSupplierAlert(name))
}

// ClearMissingSupplier removes the missing supplier alert of the name.
func (e *Engine) ClearMissingSupplier(name string) {
	e.remove(Key{Slot: SlotMissingSupplier, Subject: name})
}

// Forget removes every alert keyed to the plant name. The fleet alert is
// not affected.
func (e *Engine) Forget(name string) {
	if name == "" {
		return
	}
	for _, slot := range []Slot{SlotStock, SlotGreenhouse, SlotMissingSupplier} {
		e.remove(Key{Slot: slot, Subject: name})
	}
}

// put stores an alert in its slot. An identical alert stays where it is,
// a different one in the same slot is removed and the new one appended.
func (e *Engine) put(a Alert) {
	if old, ok := e.alerts[a.key]; ok {
		if old.Kind == a.Kind && old.Text == a.Text {
			return
		}
		e.remove(a.key)
	}
	slog.Debug("Alert raised", "kind", a.Kind.String(), "subject", a.Subject)
	e.alerts[a.key] = a
	e.order = append(e.order, a.key)
}

func (e *Engine) remove(k Key) {
	if _, ok := e.alerts[k]; !ok {
		return
	}
	delete(e.alerts, k)
	e.order = slices.DeleteFunc(e.order, func(v Key) bool {
		return v == k
	})
}
