package config

import (
	"encoding"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
)

// ErrUnknownQueryOrder is returned when parsing a string that is not a known order.
var ErrUnknownQueryOrder = errors.New("unknown query order (known: asc, desc)")

// QueryOrder is the sort order of a paginated listing.
type QueryOrder int

// The following let Cobra and Viper parse an order from flags and config files.
var (
	_ pflag.Value              = (*QueryOrder)(nil)
	_ encoding.TextUnmarshaler = (*QueryOrder)(nil)
	_ encoding.TextMarshaler   = Ascending
)

const (
	// Ascending is the default order.
	Ascending QueryOrder = iota
	// Descending sorts newest first.
	Descending
)

// String returns the query string token: "asc" or "desc".
func (o QueryOrder) String() string {
	switch o {
	case Ascending:
		return "asc"
	case Descending:
		return "desc"
	default:
		return fmt.Sprintf("QueryOrder(%d)", int(o))
	}
}

// ParseQueryOrder parses "asc"/"ascending" or "desc"/"descending", ignoring case.
func ParseQueryOrder(s string) (QueryOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "asc", "ascending":
		return Ascending, nil
	case "desc", "descending":
		return Descending, nil
	default:
		return Ascending, fmt.Errorf("%w: %q", ErrUnknownQueryOrder, s)
	}
}

// Set parses s with ParseQueryOrder. The order is left unchanged on error.
func (o *QueryOrder) Set(s string) error {
	order, err := ParseQueryOrder(s)
	if err != nil {
		return err
	}
	*o = order
	return nil
}

// Type names the flag value type in help output.
func (o *QueryOrder) Type() string {
	return "QueryOrder"
}

// MarshalText renders o as "asc" or "desc"; other values are an error.
func (o QueryOrder) MarshalText() ([]byte, error) {
	if o != Ascending && o != Descending {
		return nil, fmt.Errorf("%w: %d", ErrUnknownQueryOrder, int(o))
	}
	return []byte(o.String()), nil
}

// UnmarshalText parses text with ParseQueryOrder.
func (o *QueryOrder) UnmarshalText(text []byte) error {
	return o.Set(string(text))
}
