package commands

import (
	"errors"
	"fmt"
	"strings"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"
	"commandes/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrLocationIsRequired = errs.NewValueIsRequiredError("location")
	ErrPhoneIsRequired    = errs.NewValueIsRequiredError("phone")
	ErrLinesAreRequired   = errs.NewValueIsRequiredError("items")
)

// OrderLine is one requested catalog item.
type OrderLine struct {
	VendorID kernel.UUID
	ItemID   kernel.UUID
	Quantity int
}

// CreateOrderCommand represents a customer placing an order.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, decimal.RequireFromString("1200"),
//	    decimal.RequireFromString("100"), "Tevragh Zeina", "22233344", "",
//	    []OrderLine{{VendorID: vendorID, ItemID: itemID, Quantity: 2}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	ownerID     kernel.UUID
	price       decimal.Decimal
	deliveryFee decimal.Decimal
	location    string
	phone       string
	capture     string
	lines       []OrderLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the request shape. Catalog references and
// money rules are checked by the handler and the order aggregate.
func NewCreateOrderCommand(
	ownerID kernel.UUID,
	price, deliveryFee decimal.Decimal,
	location, phone, capture string,
	lines []OrderLine,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		price:       price,
		deliveryFee: deliveryFee,
		capture:     strings.TrimSpace(capture),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOwnerID(ownerID),
		cmd.setLocation(location),
		cmd.setPhone(phone),
		cmd.setLines(lines),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OwnerID returns the customer placing the order.
func (c CreateOrderCommand) OwnerID() kernel.UUID { return c.ownerID }

// Price returns the goods amount.
func (c CreateOrderCommand) Price() decimal.Decimal { return c.price }

// DeliveryFee returns the fee charged on top of Price.
func (c CreateOrderCommand) DeliveryFee() decimal.Decimal { return c.deliveryFee }

// Location returns the delivery address.
func (c CreateOrderCommand) Location() string { return c.location }

// Phone returns the contact phone for this order.
func (c CreateOrderCommand) Phone() string { return c.phone }

// Capture returns the payment proof reference, possibly empty.
func (c CreateOrderCommand) Capture() string { return c.capture }

// Lines returns a copy of the requested items.
func (c CreateOrderCommand) Lines() []OrderLine {
	lines := make([]OrderLine, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *CreateOrderCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *CreateOrderCommand) setLocation(location string) error {
	location = strings.TrimSpace(location)
	if location == "" {
		return ErrLocationIsRequired
	}
	c.location = location
	return nil
}

func (c *CreateOrderCommand) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setLines(lines []OrderLine) error {
	if len(lines) == 0 {
		return ErrLinesAreRequired
	}
	for i, line := range lines {
		if line.Quantity <= 0 {
			return errs.NewValueIsOutOfRangeError(fmt.Sprintf("items[%d].quantity", i), line.Quantity, 1, "unbounded")
		}
	}
	c.lines = make([]OrderLine, len(lines))
	copy(c.lines, lines)
	return nil
}
