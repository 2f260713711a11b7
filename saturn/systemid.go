/*
Package saturn implements decoding and validation of the System ID found at
the start of every Sega Saturn disc.
*/
package saturn

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bodgit/plumbing"
)

const (
	// Size is the size of the System ID in bytes
	Size int = 0x100
)

var (
	// ErrInputTooSmall is returned when fewer than Size bytes are available
	ErrInputTooSmall = errors.New("saturn: input smaller than System ID")

	errNotCharacter = errors.New("saturn: not a character field")
	errTooLong      = errors.New("saturn: value too long for field")
)

// SystemID represents the 256 byte header identifying a Saturn disc. The
// character fields hold the raw bytes exactly as found on the disc
type SystemID struct {
	HardwareIdentifier    [16]byte
	MakerID               [16]byte
	ProductNumber         [10]byte
	ProductVersion        [6]byte
	ReleaseDate           [8]byte
	DeviceInformation     [8]byte
	AreaSymbols           [10]byte
	areaPadding           [6]byte
	CompatiblePeripherals [16]byte
	GameTitle             [112]byte
	reserved1             [16]byte
	IPSize                int32
	reserved2             [4]byte
	MasterStack           int32
	SlaveStack            int32
	FirstReadAddress      int32
	FirstReadSize         int32
	reserved3             [8]byte
}

func (id *SystemID) bytes(f Field) []byte {
	switch f {
	case HardwareIdentifier:
		return id.HardwareIdentifier[:]
	case MakerID:
		return id.MakerID[:]
	case ProductNumber:
		return id.ProductNumber[:]
	case ProductVersion:
		return id.ProductVersion[:]
	case ReleaseDate:
		return id.ReleaseDate[:]
	case DeviceInformation:
		return id.DeviceInformation[:]
	case AreaSymbols:
		return id.AreaSymbols[:]
	case areaPadding:
		return id.areaPadding[:]
	case CompatiblePeripherals:
		return id.CompatiblePeripherals[:]
	case GameTitle:
		return id.GameTitle[:]
	case reserved1:
		return id.reserved1[:]
	case reserved2:
		return id.reserved2[:]
	case reserved3:
		return id.reserved3[:]
	default:
		return nil
	}
}

func (id *SystemID) integer(f Field) *int32 {
	switch f {
	case IPSize:
		return &id.IPSize
	case MasterStack:
		return &id.MasterStack
	case SlaveStack:
		return &id.SlaveStack
	case FirstReadAddress:
		return &id.FirstReadAddress
	case FirstReadSize:
		return &id.FirstReadSize
	default:
		return nil
	}
}

func decode(order binary.ByteOrder, b []byte) SystemID {
	var id SystemID

	for _, e := range layout {
		switch e.kind {
		case integer:
			*id.integer(e.field) = toHost(order, b[e.offset:e.end()])
		default:
			copy(id.bytes(e.field), b[e.offset:e.end()])
		}
	}

	return id
}

func encode(order binary.ByteOrder, id SystemID) []byte {
	b := make([]byte, Size)

	for _, e := range layout {
		switch e.kind {
		case integer:
			fromHost(order, b[e.offset:e.end()], *id.integer(e.field))
		default:
			copy(b[e.offset:e.end()], id.bytes(e.field))
		}
	}

	return b
}

// Decode interprets b as a System ID. Any input decodes, no validation is
// performed
func Decode(b [Size]byte) SystemID {
	return decode(hostOrder, b[:])
}

// MarshalBinary encodes the System ID into its 256 byte on-disc form
func (id SystemID) MarshalBinary() ([]byte, error) {
	return encode(hostOrder, id), nil
}

// UnmarshalBinary decodes the System ID from the first 256 bytes of b
func (id *SystemID) UnmarshalBinary(b []byte) error {
	if len(b) < Size {
		return ErrInputTooSmall
	}

	*id = decode(hostOrder, b[:Size])

	return nil
}

// Field returns a copy of the raw bytes of the field f
func (id SystemID) Field(f Field) []byte {
	if f < 0 || f >= fields {
		return nil
	}

	return append([]byte(nil), encode(hostOrder, id)[layout[f].offset:layout[f].end()]...)
}

// SetField stores s in the character field f, left-justified and padded with
// spaces to the width of the field
func (id *SystemID) SetField(f Field, s string) error {
	if f < 0 || f >= fields || layout[f].kind != character {
		return errNotCharacter
	}

	e := layout[f]
	if len(s) > e.width {
		return fmt.Errorf("%w: %s is %d bytes", errTooLong, f, e.width)
	}

	b := make([]byte, e.width)
	if _, err := io.ReadFull(plumbing.PaddedReader(strings.NewReader(s), int64(e.width), ' '), b); err != nil {
		return err
	}
	copy(id.bytes(f), b)

	return nil
}

// SetAreas replaces the area symbols with the codes in a
func (id *SystemID) SetAreas(a []Area) error {
	b := make([]byte, len(a))
	for i := range a {
		b[i] = byte(a[i])
	}
	return id.SetField(AreaSymbols, string(b))
}

// SetPeripherals replaces the compatible peripherals with the codes in p
func (id *SystemID) SetPeripherals(p []Peripheral) error {
	b := make([]byte, len(p))
	for i := range p {
		b[i] = byte(p[i])
	}
	return id.SetField(CompatiblePeripherals, string(b))
}

func (id SystemID) String() string {
	return fmt.Sprintf("%s, %s, %s", bytes.TrimRight(id.GameTitle[:], " \000"), bytes.TrimRight(id.MakerID[:], " \000"), bytes.TrimRight(id.ProductNumber[:], " \000"))
}
