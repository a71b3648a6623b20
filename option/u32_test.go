package option

import (
	"fmt"
	"testing"

	"github.com/calebcase/oops"
	"github.com/stretchr/testify/require"
)

func TestU32(t *testing.T) {
	type TC struct {
		Value U32
		Data  []byte
		Mark  error
	}

	tcs := []TC{
		{
			Value: 0,
			Data:  []byte{},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: 1,
			Data:  []byte{0x01},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: 0xff,
			Data:  []byte{0xff},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: 0x100,
			Data:  []byte{0x01, 0x00},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: 0x010006,
			Data:  []byte{0x01, 0x00, 0x06},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: 0x01000000,
			Data:  []byte{0x01, 0x00, 0x00, 0x00},
			Mark:  oops.New("unexpected"),
		},
		{
			Value: 0xffffffff,
			Data:  []byte{0xff, 0xff, 0xff, 0xff},
			Mark:  oops.New("unexpected"),
		},
	}

	for _, tc := range tcs {
		t.Run(fmt.Sprintf("%d", tc.Value), func(t *testing.T) {
			t.Run("marshal", func(t *testing.T) {
				data, err := tc.Value.MarshalBinary()
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Data, data, tc.Mark)
			})
			t.Run("unmarshal", func(t *testing.T) {
				var u U32

				err := u.UnmarshalBinary(tc.Data)
				require.NoError(t, err, tc.Mark)
				require.Equal(t, tc.Value, u, tc.Mark)
			})
		})
	}
}

func TestU32LeadingZeros(t *testing.T) {
	var u U32

	err := u.UnmarshalBinary([]byte{0x00, 0x01})
	require.NoError(t, err)
	require.Equal(t, U32(1), u)
}

func TestU32TooLong(t *testing.T) {
	var u U32

	err := u.UnmarshalBinary([]byte{0x01, 0x00, 0x00, 0x00, 0x00})
	require.Error(t, err)
	require.True(t, ErrIncompatibleFormat.Has(err))
	require.True(t, Error.Has(err))
}
