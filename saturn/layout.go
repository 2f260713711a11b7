package saturn

import "strconv"

// Field identifies a field of the System ID
type Field int

// These constants map to the System ID fields in the order they appear
const (
	HardwareIdentifier Field = iota
	MakerID
	ProductNumber
	ProductVersion
	ReleaseDate
	DeviceInformation
	AreaSymbols
	areaPadding
	CompatiblePeripherals
	GameTitle
	reserved1
	IPSize
	reserved2
	MasterStack
	SlaveStack
	FirstReadAddress
	FirstReadSize
	reserved3
	fields
)

func (f Field) String() string {
	strings := map[Field]string{
		HardwareIdentifier:    "hardware identifier",
		MakerID:               "maker ID",
		ProductNumber:         "product number",
		ProductVersion:        "product version",
		ReleaseDate:           "release date",
		DeviceInformation:     "device information",
		AreaSymbols:           "area symbols",
		areaPadding:           "area padding",
		CompatiblePeripherals: "compatible peripherals",
		GameTitle:             "game title",
		reserved1:             "reserved",
		IPSize:                "IP size",
		reserved2:             "reserved",
		MasterStack:           "master stack",
		SlaveStack:            "slave stack",
		FirstReadAddress:      "first read address",
		FirstReadSize:         "first read size",
		reserved3:             "reserved",
	}

	if s, ok := strings[f]; ok {
		return s
	}

	return strconv.Itoa(int(f))
}

type kind int

const (
	character kind = iota
	integer
	reserved
)

type entry struct {
	field  Field
	offset int
	width  int
	kind   kind
}

// layout is the on-disc record, it must cover exactly Size bytes
var layout = [fields]entry{
	{HardwareIdentifier, 0x00, 16, character},
	{MakerID, 0x10, 16, character},
	{ProductNumber, 0x20, 10, character},
	{ProductVersion, 0x2a, 6, character},
	{ReleaseDate, 0x30, 8, character},
	{DeviceInformation, 0x38, 8, character},
	{AreaSymbols, 0x40, 10, character},
	{areaPadding, 0x4a, 6, reserved},
	{CompatiblePeripherals, 0x50, 16, character},
	{GameTitle, 0x60, 112, character},
	{reserved1, 0xd0, 16, reserved},
	{IPSize, 0xe0, 4, integer},
	{reserved2, 0xe4, 4, reserved},
	{MasterStack, 0xe8, 4, integer},
	{SlaveStack, 0xec, 4, integer},
	{FirstReadAddress, 0xf0, 4, integer},
	{FirstReadSize, 0xf4, 4, integer},
	{reserved3, 0xf8, 8, reserved},
}

func (e entry) end() int {
	return e.offset + e.width
}
