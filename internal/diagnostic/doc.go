// Package diagnostic provides structured warnings and errors for the harness
// generator.
//
// Key capabilities:
//   - Rejected table sizes and sweep ranges
//   - Type lists that would leave an instance without a declared array
//   - Duplicate identifiers in a built plan
package diagnostic
