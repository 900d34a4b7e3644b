package endian

import (
	"encoding/binary"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/require"

	"github.com/qoifgo/qoif/errs"
)

func TestCheckEndianness(t *testing.T) {
	require := require.New(t)

	result := CheckEndianness()

	var testValue uint16 = 0x0102
	testBytes := (*[2]byte)(unsafe.Pointer(&testValue))

	switch testBytes[0] {
	case 0x01:
		require.Equal(binary.BigEndian, result)
	case 0x02:
		require.Equal(binary.LittleEndian, result)
	default:
		require.Failf("Unexpected byte value", "got: %v", testBytes[0])
	}
}

func TestEngines(t *testing.T) {
	require.Equal(t, []byte{0, 0, 1, 2}, GetBigEndianEngine().AppendUint32(nil, 0x0102))
	require.Equal(t, []byte{2, 1, 0, 0}, GetLittleEndianEngine().AppendUint32(nil, 0x0102))
}

func TestParseEngine(t *testing.T) {
	tests := []struct {
		name    string
		want    EndianEngine
		wantErr bool
	}{
		{"big", binary.BigEndian, false},
		{"be", binary.BigEndian, false},
		{"little", binary.LittleEndian, false},
		{"le", binary.LittleEndian, false},
		{"native", CheckEndianness(), false},
		{"middle", nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEngine(tt.name)
			if tt.wantErr {
				require.ErrorIs(t, err, errs.ErrUnknownByteOrder)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}
