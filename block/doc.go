// Package block implements the Block option value for block-wise
// transfers (RFC 7959).
//
// The option value packs a block number, a continuation flag, and a
// block size exponent into a single unsigned integer which is then
// carried as a minimal big endian option payload (package option).
//
// Scalar Layout
//
// From most significant to least significant bit:
//
//  |           0 ... 19 | 20 | 21 .. 23 ||
//  |--------------------|----|----------||-------------------------------------------|
//  | num                | m  | szx      ||                                           |
//  |--------------------|----|----------||-------------------------------------------|
//  | block number       |    |          || 2^20 = 1048576 blocks                     |
//  |                    | m  |          || more blocks follow                        |
//  |                    |    | szx      || block size = 2^(szx + 4); 16 .. 2048 bytes|
//  |--------------------|----|----------||-------------------------------------------|
//
// The szx field offsets the true size exponent by 4, so the smallest
// representable block is 16 bytes. Construction (New) validates all
// three fields. Decoding (UnmarshalBinary) deliberately does not: any
// bit pattern the scalar codec accepts is taken at face value, so a
// peer's out-of-range block number survives a decode/encode roundtrip
// unchanged.
package block
