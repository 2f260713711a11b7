package saturn

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

var byteOrders = []struct {
	name  string
	order binary.ByteOrder
}{
	{"little endian host", binary.LittleEndian},
	{"big endian host", binary.BigEndian},
}

func testSystemID(t *testing.T) SystemID {
	t.Helper()

	var id SystemID
	for _, x := range []struct {
		field Field
		value string
	}{
		{HardwareIdentifier, "SEGA SEGASATURN "},
		{MakerID, "SEGA ENTERPRISES"},
		{ProductNumber, "GS-9001"},
		{ProductVersion, "V1.000"},
		{ReleaseDate, "19941122"},
		{DeviceInformation, "CD-1/1"},
		{AreaSymbols, "JTUE"},
		{CompatiblePeripherals, "JAE"},
		{GameTitle, "VIRTUA FIGHTER"},
	} {
		require.NoError(t, id.SetField(x.field, x.value))
	}
	id.IPSize = 0x1800

	return id
}

func sequence() (b [Size]byte) {
	for i := range b {
		b[i] = byte(i)
	}
	return
}

func TestLayout(t *testing.T) {
	offset := 0
	for i, e := range layout {
		assert.Equal(t, Field(i), e.field)
		assert.Equal(t, offset, e.offset, e.field.String())
		if e.kind == integer {
			assert.Equal(t, 4, e.width)
		}
		offset = e.end()
	}
	assert.Equal(t, Size, offset)
}

func TestDecode(t *testing.T) {
	b := sequence()
	id := Decode(b)

	assert.Equal(t, b[0x00:0x10], id.HardwareIdentifier[:])
	assert.Equal(t, b[0x10:0x20], id.MakerID[:])
	assert.Equal(t, b[0x20:0x2a], id.ProductNumber[:])
	assert.Equal(t, b[0x2a:0x30], id.ProductVersion[:])
	assert.Equal(t, b[0x30:0x38], id.ReleaseDate[:])
	assert.Equal(t, b[0x38:0x40], id.DeviceInformation[:])
	assert.Equal(t, b[0x40:0x4a], id.AreaSymbols[:])
	assert.Equal(t, b[0x50:0x60], id.CompatiblePeripherals[:])
	assert.Equal(t, b[0x60:0xd0], id.GameTitle[:])
	assert.Equal(t, int32(binary.BigEndian.Uint32(b[0xe0:])), id.IPSize)
	assert.Equal(t, int32(binary.BigEndian.Uint32(b[0xe8:])), id.MasterStack)
	assert.Equal(t, int32(binary.BigEndian.Uint32(b[0xec:])), id.SlaveStack)
	assert.Equal(t, int32(binary.BigEndian.Uint32(b[0xf0:])), id.FirstReadAddress)
	assert.Equal(t, int32(binary.BigEndian.Uint32(b[0xf4:])), id.FirstReadSize)
}

func TestDecodeKeepsPadding(t *testing.T) {
	var b [Size]byte
	copy(b[0x10:], "SEGA TP T-999  \000")

	id := Decode(b)

	assert.Equal(t, []byte("SEGA TP T-999  \000"), id.MakerID[:])
}

func TestByteOrder(t *testing.T) {
	for _, bo := range byteOrders {
		t.Run(bo.name, func(t *testing.T) {
			var b [Size]byte
			binary.BigEndian.PutUint32(b[0xe0:], 2048)
			binary.BigEndian.PutUint32(b[0xf0:], 0x06004000)
			binary.BigEndian.PutUint32(b[0xe8:], 0xfffffffe)

			id := decode(bo.order, b[:])

			assert.Equal(t, int32(2048), id.IPSize)
			assert.Equal(t, int32(0x06004000), id.FirstReadAddress)
			assert.Equal(t, int32(-2), id.MasterStack)
			assert.Equal(t, b[:], encode(bo.order, id))
		})
	}
}

func TestIsBigEndian(t *testing.T) {
	assert.False(t, isBigEndian(binary.LittleEndian))
	assert.True(t, isBigEndian(binary.BigEndian))
}

func TestMarshalBinary(t *testing.T) {
	b := sequence()

	out, err := Decode(b).MarshalBinary()
	require.NoError(t, err)
	assert.Len(t, out, Size)
	assert.Equal(t, b[:], out)
}

func TestUnmarshalBinary(t *testing.T) {
	b := sequence()

	id := new(SystemID)
	assert.Equal(t, ErrInputTooSmall, id.UnmarshalBinary(b[:Size-1]))

	require.NoError(t, id.UnmarshalBinary(append(b[:], 0xff, 0xff)))
	assert.Equal(t, Decode(b), *id)
}

func TestField(t *testing.T) {
	id := testSystemID(t)

	assert.Equal(t, []byte("CD-1/1  "), id.Field(DeviceInformation))
	assert.Equal(t, []byte{0x00, 0x00, 0x18, 0x00}, id.Field(IPSize))
	assert.Nil(t, id.Field(Field(-1)))
	assert.Nil(t, id.Field(fields))
}

func TestSetField(t *testing.T) {
	var id SystemID

	require.NoError(t, id.SetField(AreaSymbols, "JU"))
	assert.Equal(t, [10]byte{'J', 'U', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}, id.AreaSymbols)

	require.NoError(t, id.SetField(AreaSymbols, ""))
	assert.Equal(t, [10]byte{' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' ', ' '}, id.AreaSymbols)

	assert.ErrorIs(t, id.SetField(ProductVersion, "V1.0000"), errTooLong)
	assert.Equal(t, errNotCharacter, id.SetField(IPSize, "1"))
	assert.Equal(t, errNotCharacter, id.SetField(reserved3, "1"))
	assert.Equal(t, errNotCharacter, id.SetField(fields, "1"))
}

func TestSetCodes(t *testing.T) {
	var id SystemID

	require.NoError(t, id.SetAreas([]Area{Japan, PAL}))
	assert.Equal(t, "JE        ", string(id.AreaSymbols[:]))

	require.NoError(t, id.SetPeripherals([]Peripheral{ControlPad, Mouse, Multitap}))
	assert.Equal(t, "JMT             ", string(id.CompatiblePeripherals[:]))

	assert.Error(t, id.SetAreas(make([]Area, 11)))
}

func TestSystemIDString(t *testing.T) {
	assert.Equal(t, "VIRTUA FIGHTER, SEGA ENTERPRISES, GS-9001", testSystemID(t).String())
}

func TestDecodeProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOfN(rapid.Byte(), Size, Size).Draw(t, "header")

		var b [Size]byte
		copy(b[:], raw)

		first, second := Decode(b), Decode(b)
		if first != second {
			t.Fatalf("decoding is not deterministic")
		}

		for _, bo := range byteOrders {
			if out := encode(bo.order, decode(bo.order, raw)); string(out) != string(raw) {
				t.Fatalf("%s: round trip mismatch", bo.name)
			}
		}
	})
}
