package iostore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/root31/nursery/pkg/inventory"
)

// flexInt is an integer stored either as a JSON number or as a numeric
// string. Older files kept every value as text.
type flexInt int

func (n *flexInt) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		b = []byte(strings.TrimSpace(s))
	}
	i, err := strconv.Atoi(string(b))
	if err != nil {
		return fmt.Errorf("not an integer: %s", b)
	}
	*n = flexInt(i)
	return nil
}

// served is always written as an empty array and ignored on read, the
// list of plants served is derived from plants.
type served struct{}

func (served) MarshalJSON() ([]byte, error) {
	return []byte("[]"), nil
}

func (*served) UnmarshalJSON([]byte) error {
	return nil
}

type plantRecord struct {
	ID          flexInt `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Quantity    flexInt `json:"quantity"`
	Greenhouse  string  `json:"greenhouse_required"`
	Supplier    string  `json:"supplier"`
}

func newPlantRecord(p inventory.Plant) plantRecord {
	return plantRecord{
		ID:          flexInt(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Quantity:    flexInt(p.Quantity),
		Greenhouse:  inventory.FormatGreenhouse(p.GreenhouseRequired),
		Supplier:    p.SupplierRef,
	}
}

func (r plantRecord) plant() (inventory.Plant, error) {
	gh, err := inventory.ParseGreenhouse(r.Greenhouse)
	if err != nil {
		return inventory.Plant{}, err
	}
	res := inventory.Plant{
		ID:                 int(r.ID),
		Name:               r.Name,
		Description:        r.Description,
		Quantity:           int(r.Quantity),
		GreenhouseRequired: gh,
		SupplierRef:        r.Supplier,
	}
	if err = res.Validate(); err != nil {
		return inventory.Plant{}, err
	}
	return res, nil
}

type supplierRecord struct {
	Name         string `json:"name"`
	PhoneNumber  string `json:"phone_number"`
	Address      string `json:"address"`
	PlantsServed served `json:"plants_served"`
}

func newSupplierRecord(s inventory.Supplier) supplierRecord {
	return supplierRecord{
		Name:        s.Name,
		PhoneNumber: s.PhoneNumber,
		Address:     s.Address,
	}
}

func (r supplierRecord) supplier() (inventory.Supplier, error) {
	res := inventory.Supplier{
		Name:        r.Name,
		PhoneNumber: r.PhoneNumber,
		Address:     r.Address,
	}.Normalize()
	if res.Name == "" {
		return inventory.Supplier{}, fmt.Errorf("supplier without a name")
	}
	return res, nil
}
