// Package types holds value types shared by repository consumers: list
// navigation and sorting, page-based pagination containers, and JSON column
// helpers.
package types
