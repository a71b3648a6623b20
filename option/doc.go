// Package option provides the generic uint option value format.
//
// CoAP encodes unsigned integer option values as a variable length big
// endian sequence using the minimal number of bytes: leading zero bytes
// are never emitted and the value zero is represented by an empty
// sequence (RFC 7252, Section 3.2).
//
//  value       | bytes
//  ------------|------------------
//  0           | (empty)
//  1           | 01
//  255         | ff
//  256         | 01 00
//  65536       | 01 00 00
//  4294967295  | ff ff ff ff
//
// U32 covers options whose value fits in 32 bits, which is the widest
// integer option the base protocol defines.
package option
