package inventory

import "strings"

// Field is an updatable plant attribute.
type Field int

const (
	FieldUnknown Field = iota
	FieldID
	FieldName
	FieldDescription
	FieldQuantity
	FieldGreenhouse
	FieldSupplier
)

var fieldNames = map[Field]string{
	FieldID:          "ID",
	FieldName:        "Name",
	FieldDescription: "Description",
	FieldQuantity:    "Quantity",
	FieldGreenhouse:  "Greenhouse Required",
	FieldSupplier:    "Supplier",
}

// Fields lists updatable fields in table column order.
var Fields = []Field{
	FieldID, FieldName, FieldDescription,
	FieldQuantity, FieldGreenhouse, FieldSupplier,
}

func (f Field) String() string {
	if s, ok := fieldNames[f]; ok {
		return s
	}
	return "Unknown"
}

// NewField recognizes a field by its column title or a short alias.
// Returns FieldUnknown for anything else.
func NewField(s string) Field {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer("_", " ", "-", " ").Replace(s)
	switch s {
	case "id":
		return FieldID
	case "name":
		return FieldName
	case "description", "desc":
		return FieldDescription
	case "quantity", "qty":
		return FieldQuantity
	case "greenhouse", "greenhouse required":
		return FieldGreenhouse
	case "supplier":
		return FieldSupplier
	}
	return FieldUnknown
}
