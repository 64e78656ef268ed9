package config

import (
	"net/url"
	"strconv"
)

// Query string keys understood by the Blockfrost API.
const (
	CountKey = "count"
	PageKey  = "page"
	OrderKey = "order"
	FromKey  = "from"
	ToKey    = "to"
)

// optional is a value that is either present or absent.
type optional[T comparable] struct {
	value T
	set   bool
}

func some[T comparable](v T) optional[T] {
	return optional[T]{value: v, set: true}
}

func (o optional[T]) get() (T, bool) {
	return o.value, o.set
}

// QueryParameters is a set of independent, optional request modifiers.
// Every field may be set or unset on its own; no cross-field rules apply
// (a From bound without a To bound is fine). The zero value has nothing set.
//
// Setters and unsetters return the receiver so calls can be chained:
//
//	q.SetCount(10).SetPage(2).UnsetOrder()
type QueryParameters struct {
	count optional[uint8]
	page  optional[uint64]
	order optional[QueryOrder]
	from  optional[string]
	to    optional[string]
}

// QueryOption configures a QueryParameters built by NewQueryParameters.
type QueryOption func(*QueryParameters)

// NewQueryParameters builds QueryParameters in a single call.
//
//	q := config.NewQueryParameters(config.WithCount(50), config.WithOrder(config.Descending))
func NewQueryParameters(opts ...QueryOption) QueryParameters {
	var q QueryParameters
	for _, opt := range opts {
		opt(&q)
	}
	return q
}

// WithCount sets the page size.
func WithCount(count uint8) QueryOption {
	return func(q *QueryParameters) { q.SetCount(count) }
}

// WithPage sets the page index.
func WithPage(page uint64) QueryOption {
	return func(q *QueryParameters) { q.SetPage(page) }
}

// WithOrder sets the sort order.
func WithOrder(order QueryOrder) QueryOption {
	return func(q *QueryParameters) { q.SetOrder(order) }
}

// WithFrom sets the lower range bound.
func WithFrom(from string) QueryOption {
	return func(q *QueryParameters) { q.SetFrom(from) }
}

// WithTo sets the upper range bound.
func WithTo(to string) QueryOption {
	return func(q *QueryParameters) { q.SetTo(to) }
}

// SetCount sets the page size.
func (q *QueryParameters) SetCount(count uint8) *QueryParameters {
	q.count = some(count)
	return q
}

// SetPage sets the page index.
func (q *QueryParameters) SetPage(page uint64) *QueryParameters {
	q.page = some(page)
	return q
}

// SetOrder sets the sort order.
func (q *QueryParameters) SetOrder(order QueryOrder) *QueryParameters {
	q.order = some(order)
	return q
}

// SetFrom sets the lower range bound, e.g. a block height or "height:index".
func (q *QueryParameters) SetFrom(from string) *QueryParameters {
	q.from = some(from)
	return q
}

// SetTo sets the upper range bound.
func (q *QueryParameters) SetTo(to string) *QueryParameters {
	q.to = some(to)
	return q
}

// UnsetCount clears the page size.
func (q *QueryParameters) UnsetCount() *QueryParameters {
	q.count = optional[uint8]{}
	return q
}

// UnsetPage clears the page index.
func (q *QueryParameters) UnsetPage() *QueryParameters {
	q.page = optional[uint64]{}
	return q
}

// UnsetOrder clears the sort order.
func (q *QueryParameters) UnsetOrder() *QueryParameters {
	q.order = optional[QueryOrder]{}
	return q
}

// UnsetFrom clears the lower range bound.
func (q *QueryParameters) UnsetFrom() *QueryParameters {
	q.from = optional[string]{}
	return q
}

// UnsetTo clears the upper range bound.
func (q *QueryParameters) UnsetTo() *QueryParameters {
	q.to = optional[string]{}
	return q
}

// Count returns the page size and whether it is set.
func (q QueryParameters) Count() (uint8, bool) { return q.count.get() }

// Page returns the page index and whether it is set.
func (q QueryParameters) Page() (uint64, bool) { return q.page.get() }

// Order returns the sort order and whether it is set.
func (q QueryParameters) Order() (QueryOrder, bool) { return q.order.get() }

// From returns the lower range bound and whether it is set.
func (q QueryParameters) From() (string, bool) { return q.from.get() }

// To returns the upper range bound and whether it is set.
func (q QueryParameters) To() (string, bool) { return q.to.get() }

// IsEmpty reports whether no parameter is set.
func (q QueryParameters) IsEmpty() bool {
	return q == QueryParameters{}
}

// Values renders the set parameters as query string values. Unset
// parameters are omitted; order is rendered as "asc" or "desc".
func (q QueryParameters) Values() url.Values {
	values := url.Values{}
	if count, ok := q.Count(); ok {
		values.Set(CountKey, strconv.FormatUint(uint64(count), 10))
	}
	if page, ok := q.Page(); ok {
		values.Set(PageKey, strconv.FormatUint(page, 10))
	}
	if order, ok := q.Order(); ok {
		values.Set(OrderKey, order.String())
	}
	if from, ok := q.From(); ok {
		values.Set(FromKey, from)
	}
	if to, ok := q.To(); ok {
		values.Set(ToKey, to)
	}
	return values
}

// Encode returns the URL-encoded query string, keys sorted, without a
// leading '?'. It is empty when nothing is set.
func (q QueryParameters) Encode() string {
	return q.Values().Encode()
}
