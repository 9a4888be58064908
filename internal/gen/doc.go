// Package gen renders a plan.Plan into the source of a Map2D test harness.
//
// Generation approach uses text/template over the structured plan records,
// so every line of the harness comes from exactly one record.
//
// Harness layout:
//   - Banner and includes for the selected target
//   - One PROGMEM array declaration per breakpoint table
//   - setup()/main() with one Map2D instance per (X, Y, size)
//   - A sweep loop evaluating every instance and printing the results
//   - Target-specific footer (serial plumbing on Arduino)
package gen
