package option

import (
	"math/big"
)

// U32 is an unsigned integer option value of at most 32 bits.
type U32 uint32

// MarshalBinary implements encoding.BinaryMarshaler.
//
// The encoding is minimal big endian: no leading zero bytes, and zero
// encodes to an empty sequence.
func (u U32) MarshalBinary() (data []byte, err error) {
	return new(big.Int).SetUint64(uint64(u)).Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Sequences longer than 4 bytes cannot fit a U32 and are rejected with
// ErrIncompatibleFormat. Leading zero bytes are tolerated on input even
// though they are never produced on output.
func (u *U32) UnmarshalBinary(data []byte) (err error) {
	if len(data) > 4 {
		return Error.Wrap(ErrIncompatibleFormat.New("length=%d", len(data)))
	}

	*u = U32(new(big.Int).SetBytes(data).Uint64())

	return nil
}
