package user

import (
	"fmt"

	"commandes/internal/pkg/errs"
)

// Lang is the language notifications are written in.
type Lang string

const (
	// French is the default language.
	French Lang = "fr"
	// Arabic is the alternative language.
	Arabic Lang = "ar"
)

// ParseLang is strict: it is used where the user picks a language.
func ParseLang(raw string) (Lang, error) {
	switch l := Lang(raw); l {
	case French, Arabic:
		return l, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("default_lang", fmt.Errorf("%q is not one of fr, ar", raw))
	}
}

// OrDefault maps anything that is not a supported language to French.
func (l Lang) OrDefault() Lang {
	if l == Arabic {
		return Arabic
	}
	return French
}

func (l Lang) String() string {
	return string(l)
}
