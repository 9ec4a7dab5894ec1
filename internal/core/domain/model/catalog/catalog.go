// Package catalog holds the vendors and the items they sell. Orders only
// reference them, so the model is kept to what validating a line item needs.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// VendorType is the category a vendor is listed under.
type VendorType string

const (
	Restaurant VendorType = "restaurant"
	Pharmacy   VendorType = "pharmacie"
	Grocery    VendorType = "epicerie"
)

// ParseVendorType validates raw input.
func ParseVendorType(raw string) (VendorType, error) {
	switch t := VendorType(raw); t {
	case Restaurant, Pharmacy, Grocery:
		return t, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("vendor type", fmt.Errorf("%q is unknown", raw))
	}
}

// Vendor is a merchant offering items.
type Vendor struct {
	ID    kernel.UUID
	Name  string
	Type  VendorType
	Image string
}

// NewVendor validates and builds a vendor.
func NewVendor(id kernel.UUID, name string, vendorType VendorType, image string) (Vendor, error) {
	var nameErr error
	if strings.TrimSpace(name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	_, typeErr := ParseVendorType(string(vendorType))
	if err := errors.Join(id.Validate(), nameErr, typeErr); err != nil {
		return Vendor{}, err
	}
	return Vendor{ID: id, Name: strings.TrimSpace(name), Type: vendorType, Image: image}, nil
}

// Item is a catalog line sold by one vendor.
type Item struct {
	ID       kernel.UUID
	VendorID kernel.UUID
	Name     string
	Price    decimal.Decimal
	Image    string
}

// NewItem validates and builds a catalog item.
func NewItem(id, vendorID kernel.UUID, name string, price decimal.Decimal, image string) (Item, error) {
	var priceErr error
	if price.IsNegative() {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%s is negative", price))
	}
	if err := errors.Join(id.Validate(), vendorID.Validate(), priceErr); err != nil {
		return Item{}, err
	}
	return Item{ID: id, VendorID: vendorID, Name: name, Price: price, Image: image}, nil
}

// BelongsTo reports whether the item is sold by vendorID.
func (i Item) BelongsTo(vendorID kernel.UUID) bool {
	return i.VendorID.IsEqual(vendorID)
}
