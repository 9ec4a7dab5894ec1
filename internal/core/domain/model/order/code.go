package order

import (
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
)

const codePrefix = "CM"

var codePattern = regexp.MustCompile(`^CM[0-9A-F]{8}$`)

// Code is the customer facing order reference, e.g. "CM3FA92C01".
type Code string

// NewCode returns "CM" followed by the first 8 hex digits of a random v4 UUID.
// The code space is 32 bits wide; uniqueness is enforced by the store.
func NewCode() Code {
	id := uuid.New()
	return Code(codePrefix + strings.ToUpper(hex.EncodeToString(id[:4])))
}

// ParseCode validates a stored or user supplied code.
func ParseCode(raw string) (Code, error) {
	if !codePattern.MatchString(raw) {
		return "", fmt.Errorf("%q does not match %s", raw, codePattern.String())
	}
	return Code(raw), nil
}

func (c Code) String() string {
	return string(c)
}
