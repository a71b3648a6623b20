package block

import (
	"fmt"
	"math"
	"math/bits"

	"github.com/coapkit/coap/option"
)

// MaxBlockNumber is the largest block number representable in the
// 20-bit num field.
const MaxBlockNumber = 1<<20 - 1

const (
	szxMask  = 0x07
	moreMask = 1 << 3
)

// Value is a Block option value.
//
// A Value is immutable once constructed and safe to copy and share.
type Value struct {
	Num          uint32
	More         bool
	SizeExponent uint8
}

// New returns a Value for block number num with continuation flag more.
//
// size is the intended block size in bytes and need not be a power of
// two: the stored exponent is derived from the largest power of two not
// exceeding it. Sizes below 16 clamp to the 16 byte minimum. A size of
// zero, or one whose exponent falls outside the szx field, fails with
// ErrSizeExponent; num beyond the wire integer fails with
// ErrTypeBounds; num beyond MaxBlockNumber fails with ErrMaxNumber.
func New(num uint, more bool, size uint) (_ Value, err error) {
	trueSizeExponent, ok := largestPowerOf2NotInExcess(size)
	if !ok {
		return Value{}, Error.Wrap(ErrSizeExponent.New("size=%d", size))
	}

	// Clamp, not subtract: exponents below 4 collapse to the 16 byte
	// minimum rather than underflowing.
	sizeExponent := uint(0)
	if trueSizeExponent > 4 {
		sizeExponent = trueSizeExponent - 4
	}
	if sizeExponent > szxMask {
		return Value{}, Error.Wrap(ErrSizeExponent.New("size=%d", size))
	}

	if uint64(num) > math.MaxUint32 {
		return Value{}, Error.Wrap(ErrTypeBounds.New("num=%d", num))
	}
	if num > MaxBlockNumber {
		return Value{}, Error.Wrap(ErrMaxNumber.New("num=%d", num))
	}

	return Value{
		Num:          uint32(num),
		More:         more,
		SizeExponent: uint8(sizeExponent),
	}, nil
}

// largestPowerOf2NotInExcess returns the exponent of the largest power
// of two that does not exceed target. It reports false for a target of
// zero. When no power of two within the platform word exceeds target
// (target is the maximum magnitude) the word width itself is the
// exponent.
func largestPowerOf2NotInExcess(target uint) (exp uint, ok bool) {
	if target == 0 {
		return 0, false
	}

	for i := uint(0); i < bits.UintSize; i++ {
		if uint(1)<<i > target {
			return i - 1, true
		}
	}

	return bits.UintSize, true
}

// Size returns the block size in bytes.
func (v Value) Size() uint {
	return 16 << v.SizeExponent
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (v Value) MarshalBinary() (data []byte, err error) {
	scalar := v.Num << 4
	if v.More {
		scalar |= moreMask
	}
	scalar |= uint32(v.SizeExponent & szxMask)

	return option.U32(scalar).MarshalBinary()
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
//
// Bounds are not re-checked: whatever num and szx the scalar carries
// are stored as-is.
func (v *Value) UnmarshalBinary(data []byte) (err error) {
	var scalar option.U32

	err = scalar.UnmarshalBinary(data)
	if err != nil {
		return err
	}

	v.Num = uint32(scalar) >> 4
	v.More = scalar&moreMask == moreMask
	v.SizeExponent = uint8(scalar & szxMask)

	return nil
}

// String returns the num/m/size presentation form from RFC 7959.
func (v Value) String() string {
	m := 0
	if v.More {
		m = 1
	}

	return fmt.Sprintf("%d/%d/%d", v.Num, m, v.Size())
}
