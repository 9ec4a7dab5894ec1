package services

import (
	"errors"
	"fmt"
	"strings"

	"commandes/internal/core/domain/model/order"
	"commandes/internal/core/domain/model/user"
)

// ErrUnknownStatus is returned when asked for the text of a status outside
// the lifecycle enum. Reaching it means corrupted data or a missing table
// entry, callers must not fall back to some default text.
var ErrUnknownStatus = errors.New("unknown status")

const codePlaceholder = "{code}"

// StatusText is the localized notification for a status change.
type StatusText struct {
	Title        string
	BodyTemplate string
}

// Body renders BodyTemplate for the given order code.
func (t StatusText) Body(code order.Code) string {
	return strings.ReplaceAll(t.BodyTemplate, codePlaceholder, code.String())
}

//nolint:gochecknoglobals // read-only lookup table
var statusTitles = map[order.Status]map[user.Lang]string{
	order.Waiting:   {user.French: "en attente", user.Arabic: "قيد الانتظار"},
	order.Paid:      {user.French: "paye", user.Arabic: "مدفوع"},
	order.Loading:   {user.French: "en cours", user.Arabic: "قيد المعالجة"},
	order.Delivered: {user.French: "livre", user.Arabic: "تم التوصيل"},
	order.Rejected:  {user.French: "rejecte", user.Arabic: "مرفوض"},
}

//nolint:gochecknoglobals // read-only lookup table
var statusBodies = map[user.Lang]string{
	user.French: "Votre commande {code} a change de status",
	user.Arabic: "تم تغيير حالة طلبك {code}",
}

// ResolveStatusText returns the title and body template announcing that an
// order moved to status. Languages other than fr and ar resolve to fr.
//
//	text, err := services.ResolveStatusText(o.Status(), owner.DefaultLang())
//	if err != nil {
//	    return err
//	}
//	msg := ports.Message{Title: text.Title, Body: text.Body(o.Code())}
func ResolveStatusText(status order.Status, lang user.Lang) (StatusText, error) {
	titles, ok := statusTitles[status]
	if !ok {
		return StatusText{}, fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}

	lang = lang.OrDefault()
	return StatusText{
		Title:        titles[lang],
		BodyTemplate: statusBodies[lang],
	}, nil
}

// NewOrderMessage is the staff notification for a freshly placed order.
type NewOrderMessage struct {
	Title string
	Body  string
}

// NewOrderText composes the staff notification for o in lang. The phone
// shown is the contact phone given on the order.
func NewOrderText(o *order.Order, lang user.Lang) NewOrderMessage {
	phone := o.Details().Phone
	code := o.Code().String()

	if lang.OrDefault() == user.Arabic {
		return NewOrderMessage{
			Title: "طلب جديد",
			Body:  fmt.Sprintf("تمت إضافة طلب جديد من الرقم %s بالكود %s", phone, code),
		}
	}
	return NewOrderMessage{
		Title: "Nouvelle commande",
		Body:  fmt.Sprintf("Nouvelle commande ajoutee par %s avec le code %s", phone, code),
	}
}
