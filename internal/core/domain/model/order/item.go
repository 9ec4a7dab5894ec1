package order

import (
	"errors"
	"fmt"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"
)

// Item is one line of an order: a catalog item of a vendor and how many of it.
type Item struct {
	vendorID kernel.UUID
	itemID   kernel.UUID
	quantity int
}

// NewItem validates the references and requires a positive quantity.
func NewItem(vendorID, itemID kernel.UUID, quantity int) (Item, error) {
	var quantityErr error
	if quantity <= 0 {
		quantityErr = errs.NewValueIsInvalidErrorWithCause(
			"quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	if err := errors.Join(vendorID.Validate(), itemID.Validate(), quantityErr); err != nil {
		return Item{}, err
	}

	return Item{
		vendorID: vendorID,
		itemID:   itemID,
		quantity: quantity,
	}, nil
}

// VendorID returns the vendor selling the item.
func (i Item) VendorID() kernel.UUID {
	return i.vendorID
}

// ItemID returns the catalog item.
func (i Item) ItemID() kernel.UUID {
	return i.itemID
}

// Quantity returns the ordered amount.
func (i Item) Quantity() int {
	return i.quantity
}
