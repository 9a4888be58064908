// Package plan turns a generator configuration into the structured records
// consumed by code generation.
//
// Planning pipeline:
//  1. Validate the configuration → diagnostics (invalid sizes, missing arrays)
//  2. Build the breakpoint arrays for every (size, axis, memory type)
//  3. Build one table instance per (X type, Y type, size)
//  4. Build one sample statement per instance, and split the sample
//     temporaries into the shared integer printf and the per-value float prints
//  5. Verify the cross references between the three record lists
package plan
