// Package query builds provider search queries from structured filters and
// turns spoken requests into tender filters.
//
// Builders are pure: identical input always yields an identical query.
package query
