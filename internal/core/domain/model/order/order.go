package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"commandes/internal/core/domain/model/kernel"
	"commandes/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
	// ErrItemsAreRequired is returned for an order without line items.
	ErrItemsAreRequired = errs.NewValueIsRequiredError("items")
)

// Details groups the customer supplied fields of an order.
type Details struct {
	// Price is the amount of the goods.
	Price decimal.Decimal
	// DeliveryFee is charged on top of Price.
	DeliveryFee decimal.Decimal
	// Location is the free text delivery address.
	Location string
	// Phone is the contact number given for this order, not necessarily the owner's.
	Phone string
	// Capture references the proof-of-payment image, empty when none was sent.
	Capture string
}

// Order is the aggregate root of a placed purchase request.
//
// Order follows these invariants:
//   - id, owner and code are set once and never change
//   - code matches "CM" + 8 upper-case hex digits
//   - price and delivery fee are not negative
//   - location and phone are not blank
//   - there is at least one item
//   - status only changes through ChangeStatus
type Order struct {
	id        kernel.UUID
	code      Code
	status    Status
	details   Details
	ownerID   kernel.UUID
	courierID *kernel.UUID
	items     []Item
	createdAt time.Time

	isConstructed bool
}

// NewOrder places a new order for owner. The order starts in Waiting, gets a
// fresh code and no courier.
//
// Example:
//
//	item, _ := order.NewItem(vendorID, itemID, 2)
//	o, err := order.NewOrder(kernel.NewUUID(), customerID, order.Details{
//	    Price:       decimal.RequireFromString("1200"),
//	    DeliveryFee: decimal.RequireFromString("100"),
//	    Location:    "Tevragh Zeina, near the market",
//	    Phone:       "22233344",
//	}, []order.Item{item})
func NewOrder(id, ownerID kernel.UUID, details Details, items []Item) (*Order, error) {
	o := &Order{
		code:          NewCode(),
		status:        Waiting,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(ownerID),
		o.setDetails(details),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from persistence. It applies the same
// validation as NewOrder and additionally checks code and status.
func RestoreOrder(
	id kernel.UUID,
	code Code,
	status Status,
	ownerID kernel.UUID,
	courierID *kernel.UUID,
	details Details,
	items []Item,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setStatus(status),
		o.setOwner(ownerID),
		o.setCourier(courierID),
		o.setDetails(details),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was built by one of the constructors.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the human readable order reference.
func (o *Order) Code() Code {
	return o.code
}

// Status returns the current status.
func (o *Order) Status() Status {
	return o.status
}

// Details returns the customer supplied fields.
func (o *Order) Details() Details {
	return o.details
}

// Owner returns the customer who placed the order.
func (o *Order) Owner() kernel.UUID {
	return o.ownerID
}

// Courier returns the courier who claimed the order, nil while unclaimed.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

// Items returns a copy of the line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// CreatedAt returns the creation time.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Total returns price plus delivery fee.
func (o *Order) Total() decimal.Decimal {
	return o.details.Price.Add(o.details.DeliveryFee)
}

// ChangeStatus overwrites the status with target if mode allows it.
//
// The check is a flat whitelist lookup: the current status is not
// consulted, so staff can move an order backwards or out of a terminal
// status. In Courier mode, moving to Loading records actor as the courier,
// replacing any earlier claim (last write wins). Moving to Delivered keeps
// the courier as it is, even when actor is somebody else.
//
// Returns an error wrapping ErrInvalidStatus when target is not allowed.
func (o *Order) ChangeStatus(target Status, mode TransitionMode, actor kernel.UUID) error {
	if err := mode.Validate(); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return err
	}
	if !mode.Allows(target) {
		return fmt.Errorf("%w: %q is not allowed in %s mode", ErrInvalidStatus, target, mode)
	}

	if mode == Courier && target == Loading {
		if err := actor.Validate(); err != nil {
			return err
		}
		o.courierID = &actor
	}

	o.status = target
	return nil
}

// RegenerateCode draws a new code. Only valid before the order was persisted,
// the store calls for it when the first code collided.
func (o *Order) RegenerateCode() {
	o.code = NewCode()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCode(code Code) error {
	parsed, err := ParseCode(string(code))
	if err != nil {
		return errs.NewValueIsInvalidErrorWithCause("code", err)
	}
	o.code = parsed
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setOwner(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("owner", err)
	}
	o.ownerID = ownerID
	return nil
}

func (o *Order) setCourier(courierID *kernel.UUID) error {
	if courierID == nil {
		return nil
	}
	if err := courierID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("courier", err)
	}
	id := *courierID
	o.courierID = &id
	return nil
}

func (o *Order) setDetails(details Details) error {
	var problems []error
	if details.Price.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"price", fmt.Errorf("%s is negative", details.Price)))
	}
	if details.DeliveryFee.IsNegative() {
		problems = append(problems, errs.NewValueIsInvalidErrorWithCause(
			"delivery fee", fmt.Errorf("%s is negative", details.DeliveryFee)))
	}
	if strings.TrimSpace(details.Location) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("location"))
	}
	if strings.TrimSpace(details.Phone) == "" {
		problems = append(problems, errs.NewValueIsRequiredError("phone"))
	}
	if err := errors.Join(problems...); err != nil {
		return err
	}

	details.Location = strings.TrimSpace(details.Location)
	details.Phone = strings.TrimSpace(details.Phone)
	details.Capture = strings.TrimSpace(details.Capture)
	o.details = details
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrItemsAreRequired
	}
	for i, item := range items {
		if item.quantity <= 0 {
			return errs.NewValueIsInvalidErrorWithCause(
				fmt.Sprintf("items[%d]", i), errors.New("item must be created via NewItem"))
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}
