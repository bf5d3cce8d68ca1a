// Package form holds the in-progress edit of a product record while the
// product dialog is open: field coercion per the schema, the secondary
// image slots, and the cleanup applied on submit.
package form

import (
	"fmt"
	"strconv"
	"strings"

	"shopadmin/internal/models"
)

// Draft is the editable copy of a product. Its ImagesURL always holds
// at least one entry; a single empty string is the "no secondary
// images" state while editing.
type Draft struct {
	Product models.Product
}

// NewCreate returns a blank draft: numeric fields zero, enabled on,
// one empty image slot.
func NewCreate() *Draft {
	return &Draft{Product: models.Product{
		IsEnabled: 1,
		ImagesURL: []string{""},
	}}
}

// NewEdit returns a draft holding a copy of p. A record without
// secondary images gets the single empty placeholder slot.
func NewEdit(p models.Product) *Draft {
	d := &Draft{Product: p.Clone()}
	if len(d.Product.ImagesURL) == 0 {
		d.Product.ImagesURL = []string{""}
	}
	return d
}

// Apply stores one submitted value, coerced by the field's schema kind:
// boolean fields become 1/0, number fields become numbers (blank or
// unparseable input becomes 0, as an empty number input would), text is
// kept as given.
func (d *Draft) Apply(field, raw string) error {
	kind, ok := schemaByName[field]
	if !ok {
		return fmt.Errorf("form: unknown field %q", field)
	}

	switch kind {
	case KindBoolean:
		v := 0
		switch raw {
		case "on", "1", "true":
			v = 1
		}
		d.setBool(field, v)
	case KindNumber:
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			v = 0
		}
		d.setNumber(field, v)
	default:
		d.setText(field, raw)
	}
	return nil
}

func (d *Draft) setText(field, v string) {
	switch field {
	case "title":
		d.Product.Title = v
	case "category":
		d.Product.Category = v
	case "unit":
		d.Product.Unit = v
	case "description":
		d.Product.Description = v
	case "content":
		d.Product.Content = v
	case "imageUrl":
		d.Product.ImageURL = v
	}
}

func (d *Draft) setNumber(field string, v float64) {
	switch field {
	case "origin_price":
		d.Product.OriginPrice = v
	case "price":
		d.Product.Price = v
	}
}

func (d *Draft) setBool(field string, v int) {
	if field == "is_enabled" {
		d.Product.IsEnabled = v
	}
}

// SetImageURLAt replaces one secondary image slot. Out-of-range
// indexes are ignored.
func (d *Draft) SetImageURLAt(index int, value string) {
	if index < 0 || index >= len(d.Product.ImagesURL) {
		return
	}
	d.Product.ImagesURL[index] = value
}

// AddImageURLSlot appends an empty secondary image slot.
func (d *Draft) AddImageURLSlot() {
	d.Product.ImagesURL = append(d.Product.ImagesURL, "")
}

// RemoveImageURLAt removes one slot. Removing the last slot leaves a
// single empty placeholder rather than an empty list.
func (d *Draft) RemoveImageURLAt(index int) {
	urls := d.Product.ImagesURL
	if index < 0 || index >= len(urls) {
		return
	}
	urls = append(urls[:index], urls[index+1:]...)
	if len(urls) == 0 {
		urls = []string{""}
	}
	d.Product.ImagesURL = urls
}

// Cleaned returns the product to submit: blank secondary image entries
// are stripped, order preserved. The persisted list may legitimately
// end up empty.
func (d *Draft) Cleaned() models.Product {
	p := d.Product.Clone()
	cleaned := make([]string, 0, len(p.ImagesURL))
	for _, url := range p.ImagesURL {
		if strings.TrimSpace(url) != "" {
			cleaned = append(cleaned, url)
		}
	}
	p.ImagesURL = cleaned
	return p
}
