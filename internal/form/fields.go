package form

import "fmt"

// Kind tags how a submitted field value is coerced before it lands in
// the draft. The coercion is decided here, at schema definition, not
// inferred from whatever widget produced the value.
type Kind string

const (
	KindText    Kind = "text"
	KindNumber  Kind = "number"
	KindBoolean Kind = "boolean"
)

// Field describes one editable product field.
type Field struct {
	Name string
	Kind Kind
}

// Schema lists the editable fields of the product form, in render order.
// The secondary image list is handled separately (see Draft image ops).
var Schema = []Field{
	{Name: "title", Kind: KindText},
	{Name: "category", Kind: KindText},
	{Name: "unit", Kind: KindText},
	{Name: "origin_price", Kind: KindNumber},
	{Name: "price", Kind: KindNumber},
	{Name: "description", Kind: KindText},
	{Name: "content", Kind: KindText},
	{Name: "imageUrl", Kind: KindText},
	{Name: "is_enabled", Kind: KindBoolean},
}

var schemaByName = map[string]Kind{}

func init() {
	for _, f := range Schema {
		if _, dup := schemaByName[f.Name]; dup {
			panic(fmt.Sprintf("form: duplicate field %q in schema", f.Name))
		}
		switch f.Kind {
		case KindText, KindNumber, KindBoolean:
		default:
			panic(fmt.Sprintf("form: field %q has unknown kind %q", f.Name, f.Kind))
		}
		schemaByName[f.Name] = f.Kind
	}
}
