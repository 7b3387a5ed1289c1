package iostore

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gnames/gnfmt"
	"github.com/root31/nursery/pkg/inventory"
)

const (
	plantsCollection    = "plants"
	suppliersCollection = "suppliers"
)

var emptyCollection = []byte("[]")

// isBlank is true for content that should be replaced by an empty
// collection.
func isBlank(data []byte) bool {
	return len(bytes.TrimSpace(data)) == 0
}

// splitRecords decodes a JSON array into raw records.
func splitRecords(enc gnfmt.Encoder, data []byte) ([]json.RawMessage, error) {
	var res []json.RawMessage
	if err := enc.Decode(data, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// decodePlants returns every plant that decoded and validated. The error
// joins the reasons of skipped records.
func decodePlants(
	enc gnfmt.Encoder,
	src string,
	data []byte,
) ([]inventory.Plant, error) {
	raws, err := splitRecords(enc, data)
	if err != nil {
		return nil, StoreDecodeError(src, plantsCollection, 0, err)
	}

	var errs []error
	res := make([]inventory.Plant, 0, len(raws))
	for i, raw := range raws {
		var rec plantRecord
		if err = enc.Decode(raw, &rec); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		p, err := rec.plant()
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		res = append(res, p)
	}

	if len(errs) > 0 {
		return res, StoreDecodeError(src, plantsCollection, len(errs),
			errors.Join(errs...))
	}
	return res, nil
}

func decodeSuppliers(
	enc gnfmt.Encoder,
	src string,
	data []byte,
) ([]inventory.Supplier, error) {
	raws, err := splitRecords(enc, data)
	if err != nil {
		return nil, StoreDecodeError(src, suppliersCollection, 0, err)
	}

	var errs []error
	res := make([]inventory.Supplier, 0, len(raws))
	for i, raw := range raws {
		var rec supplierRecord
		if err = enc.Decode(raw, &rec); err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		s, err := rec.supplier()
		if err != nil {
			errs = append(errs, fmt.Errorf("record %d: %w", i+1, err))
			continue
		}
		res = append(res, s)
	}

	if len(errs) > 0 {
		return res, StoreDecodeError(src, suppliersCollection, len(errs),
			errors.Join(errs...))
	}
	return res, nil
}

func encodePlants(enc gnfmt.Encoder, plants []inventory.Plant) ([]byte, error) {
	recs := make([]plantRecord, len(plants))
	for i, p := range plants {
		recs[i] = newPlantRecord(p)
	}
	return enc.Encode(recs)
}

func encodeSuppliers(
	enc gnfmt.Encoder,
	suppliers []inventory.Supplier,
) ([]byte, error) {
	recs := make([]supplierRecord, len(suppliers))
	for i, s := range suppliers {
		recs[i] = newSupplierRecord(s)
	}
	return enc.Encode(recs)
}
