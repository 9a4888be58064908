// Package table builds the raw breakpoint arrays that the generated harness
// stores in program memory, and derives the names, lookup indexes and setter
// operations that tie a Map2D instance to those arrays.
//
// Every array spans the signed range [RangeMin, RangeMax] in steps of
// RangeSpan/size, with RangeMax forced as the final entry. Wide storage
// types are scaled by WideMultiplier so that 16-bit and float tables cover
// the sweep domain of the harness loop.
package table
