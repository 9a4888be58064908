// Package match suggests the closest known spelling for a mistyped token,
// so that configuration errors can say what was probably meant.
package match
