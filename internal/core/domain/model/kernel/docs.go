// Package kernel holds the value objects every aggregate of the fulfillment
// core shares: UUID identifiers and Money amounts.
//
// Both are immutable. Their zero values are invalid and fail Validate, so a
// value that skipped its constructor is caught at the aggregate boundary.
package kernel
