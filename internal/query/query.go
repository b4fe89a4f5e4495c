// Package query builds the query string consumed by the catalog service and
// derives pagination info from its responses. The encoded form doubles as the
// cache key for the fetched page, so encoding is canonical: parameters are
// written in the fixed order top, skip, search, filter, count and zero values
// are omitted. Two logically identical queries always encode identically.
package query

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// DefaultPageSize is the page size used when none is specified, matching the
// storefront's catalog browse default.
const DefaultPageSize = 10

// Query holds the recognized catalog query parameters.
type Query struct {
	// Top is the page size.
	Top int
	// Skip is the zero-based offset into the result set.
	Skip int
	// Search is a free-text search term.
	Search string
	// Filter is a structured predicate string, e.g. "name contains 'Shirt'".
	Filter string
	// Count requests the total result count in the response.
	Count bool
}

// New returns a query for the first page with the default page size,
// requesting a total count.
func New() Query {
	return Query{Top: DefaultPageSize, Count: true}
}

// SetSearch sets the free-text search term. An empty term removes the
// parameter.
func (q *Query) SetSearch(term string) {
	q.Search = term
}

// SetFilters builds the filter predicate from field -> value pairs. Each
// non-empty value contributes a "<field> contains '<value>'" predicate and
// predicates are joined with " and ". Fields are processed in sorted order so
// the same inputs always produce the same predicate string. When no value is
// non-empty the filter parameter is removed entirely rather than sent empty.
func (q *Query) SetFilters(fields map[string]string) {
	names := make([]string, 0, len(fields))
	for name, value := range fields {
		if value == "" {
			continue
		}
		names = append(names, name)
	}
	if len(names) == 0 {
		q.Filter = ""
		return
	}
	sort.Strings(names)

	predicates := make([]string, 0, len(names))
	for _, name := range names {
		predicates = append(predicates, fmt.Sprintf("%s contains '%s'", name, fields[name]))
	}
	q.Filter = strings.Join(predicates, " and ")
}

// SetPage positions the query at the given 1-based page number using the
// current page size. Page numbers below 1 are clamped to 1.
func (q *Query) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	top := q.Top
	if top <= 0 {
		top = DefaultPageSize
	}
	q.Skip = (page - 1) * top
}

// Page returns the 1-based page number the query is positioned at.
func (q Query) Page() int {
	top := q.Top
	if top <= 0 {
		top = DefaultPageSize
	}
	return q.Skip/top + 1
}

// PageInfo describes the pagination state derived from a response total.
type PageInfo struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// DerivePageInfo computes the current page and total pages for totalCount
// results at the query's page size. TotalPages is never below 1.
func (q Query) DerivePageInfo(totalCount int64) PageInfo {
	top := q.Top
	if top <= 0 {
		top = DefaultPageSize
	}
	totalPages := int((totalCount + int64(top) - 1) / int64(top))
	if totalPages < 1 {
		totalPages = 1
	}
	return PageInfo{
		Page:       q.Page(),
		PageSize:   top,
		TotalItems: totalCount,
		TotalPages: totalPages,
	}
}

// Encode serializes the query to its canonical string form. The result is
// usable both as the outgoing request query and as a cache key.
func (q Query) Encode() string {
	var b strings.Builder
	write := func(key, value string) {
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(key)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(value))
	}

	if q.Top > 0 {
		write("top", strconv.Itoa(q.Top))
	}
	if q.Skip > 0 {
		write("skip", strconv.Itoa(q.Skip))
	}
	if q.Search != "" {
		write("search", q.Search)
	}
	if q.Filter != "" {
		write("filter", q.Filter)
	}
	if q.Count {
		write("count", "true")
	}
	return b.String()
}

// Parse reconstructs a query from its encoded form. Parsing the output of
// Encode yields an equivalent query.
func Parse(s string) (Query, error) {
	values, err := url.ParseQuery(s)
	if err != nil {
		return Query{}, fmt.Errorf("malformed catalog query %q: %w", s, err)
	}

	var q Query
	if v := values.Get("top"); v != "" {
		q.Top, err = strconv.Atoi(v)
		if err != nil {
			return Query{}, fmt.Errorf("invalid top value %q: %w", v, err)
		}
	}
	if v := values.Get("skip"); v != "" {
		q.Skip, err = strconv.Atoi(v)
		if err != nil {
			return Query{}, fmt.Errorf("invalid skip value %q: %w", v, err)
		}
	}
	q.Search = values.Get("search")
	q.Filter = values.Get("filter")
	if v := values.Get("count"); v != "" {
		q.Count, err = strconv.ParseBool(v)
		if err != nil {
			return Query{}, fmt.Errorf("invalid count value %q: %w", v, err)
		}
	}
	return q, nil
}
