// Package listview implements the list-screen interaction model shared by
// every collection screen: a full set fetched from the backend, a filtered
// set derived from it, and slice pagination over the filtered set.
package listview

import (
	"fmt"

	"github.com/auditdesk/backoffice-api/pkg/apperror"
	"github.com/auditdesk/backoffice-api/pkg/pagination"
)

// View holds one screen's data. The full set is only ever replaced
// wholesale by Load; the filtered set is recomputed from it, never mutated
// in place.
type View[T any] struct {
	full     []T
	filtered []T
	page     int
	perPage  int
}

// New creates an empty view with the given page size.
func New[T any](perPage int) *View[T] {
	if perPage < 1 {
		perPage = pagination.DefaultPagination().PerPage
	}
	return &View[T]{page: 1, perPage: perPage}
}

// Load replaces the full set and resets the filtered set to match it.
// Loading is idempotent: calling it again with the same data leaves the view
// in the same state.
func (v *View[T]) Load(items []T) {
	v.full = items
	v.filtered = items
	v.page = 1
}

// Apply recomputes the filtered set by running fn over the full set and
// returns pagination to the first page. fn must not mutate its input.
func (v *View[T]) Apply(fn func([]T) []T) {
	v.filtered = fn(v.full)
	v.page = 1
}

// Reset restores the filtered set to the full set and returns to page one.
func (v *View[T]) Reset() {
	v.filtered = v.full
	v.page = 1
}

// Filtered returns the current filtered set.
func (v *View[T]) Filtered() []T {
	return v.filtered
}

// PageCount returns the number of pages in the filtered set.
func (v *View[T]) PageCount() int {
	return pagination.PageCount(len(v.filtered), v.perPage)
}

// SetPage moves to the requested page. Page zero, negative pages and pages
// past the end are rejected and the view is left unchanged; page one is
// always reachable, even over an empty filtered set.
func (v *View[T]) SetPage(page int) error {
	if page == 1 {
		v.page = 1
		return nil
	}
	if page < 1 || page > v.PageCount() {
		return apperror.NewValidationMessage(fmt.Sprintf("page %d is out of range", page))
	}
	v.page = page
	return nil
}

// Page returns the visible slice for the current page.
func (v *View[T]) Page() []T {
	start := (v.page - 1) * v.perPage
	if start >= len(v.filtered) {
		return []T{}
	}
	end := start + v.perPage
	if end > len(v.filtered) {
		end = len(v.filtered)
	}
	return v.filtered[start:end]
}

// Pagination returns pagination metadata for the current page.
func (v *View[T]) Pagination() *pagination.Pagination {
	return pagination.NewPagination(v.page, v.perPage, int64(len(v.filtered)))
}

// Result returns the visible slice together with its pagination metadata.
func (v *View[T]) Result() *pagination.PaginatedResult[T] {
	return pagination.NewPaginatedResult(v.Page(), v.Pagination())
}
