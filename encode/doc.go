// Package encode renders calculator results and stacks as text.
//
// Output can be colored with [EncodeColors]; see [NewColors].
package encode
