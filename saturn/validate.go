package saturn

import (
	"bytes"
	"fmt"
	"strings"
)

var (
	hardwareIdentifier = [16]byte{'S', 'E', 'G', 'A', ' ', 'S', 'E', 'G', 'A', 'S', 'A', 'T', 'U', 'R', 'N', ' '}
	firstParty         = [16]byte{'S', 'E', 'G', 'A', ' ', 'E', 'N', 'T', 'E', 'R', 'P', 'R', 'I', 'S', 'E', 'S'}
	thirdParty         = []byte("SEGA TP ")
	devicePrefix       = []byte("CD-")
)

// Date is the release date split into its components
type Date struct {
	Year  int
	Month int
	Day   int
}

func (d Date) String() string {
	return fmt.Sprintf("%04d/%02d/%02d", d.Year, d.Month, d.Day)
}

// MarshalText encodes the date as YYYY/MM/DD
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Disc is the position of the disc within a multi-disc set
type Disc struct {
	Number int
	Total  int
}

func (d Disc) String() string {
	return fmt.Sprintf("%d/%d", d.Number, d.Total)
}

// MarshalText encodes the disc as n/m
func (d Disc) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// Report holds the validated fields of a System ID ready for display
type Report struct {
	HardwareIdentifier    string       `json:"hardware_identifier" yaml:"hardware_identifier"`
	MakerID               string       `json:"maker_id" yaml:"maker_id"`
	ProductNumber         string       `json:"product_number" yaml:"product_number"`
	Version               string       `json:"version" yaml:"version"`
	ReleaseDate           Date         `json:"release_date" yaml:"release_date"`
	Disc                  Disc         `json:"disc" yaml:"disc"`
	Areas                 []Area       `json:"-" yaml:"-"`
	Regions               []string     `json:"regions" yaml:"regions"`
	Peripherals           []Peripheral `json:"-" yaml:"-"`
	CompatiblePeripherals []string     `json:"compatible_peripherals" yaml:"compatible_peripherals"`
	Title                 string       `json:"title" yaml:"title"`
	IPSize                *int32       `json:"ip_size,omitempty" yaml:"ip_size,omitempty"`
}

func trim(b []byte) string {
	return string(bytes.TrimRight(b, " \000"))
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func atoi(b []byte) int {
	n := 0
	for _, c := range b {
		n = n*10 + int(c-'0')
	}
	return n
}

// number consumes a run of leading digits
func number(b []byte) (int, []byte, bool) {
	i := 0
	for i < len(b) && isDigit(b[i]) {
		i++
	}
	if i == 0 {
		return 0, b, false
	}
	return atoi(b[:i]), b[i:], true
}

func checkHardwareIdentifier(id *SystemID, r *Report) error {
	if id.HardwareIdentifier != hardwareIdentifier {
		return ErrInvalidHardwareIdentifier
	}
	r.HardwareIdentifier = trim(id.HardwareIdentifier[:])
	return nil
}

func checkMakerID(id *SystemID, r *Report) error {
	if id.MakerID != firstParty && !bytes.HasPrefix(id.MakerID[:], thirdParty) {
		return ErrInvalidMakerID
	}
	r.MakerID = trim(id.MakerID[:])
	return nil
}

// The version fills all six bytes, "V1.000", so three digits follow the
// dot. A two digit minor version leaves a trailing space and is rejected.
func checkProductVersion(id *SystemID, r *Report) error {
	v := id.ProductVersion
	if v[0] != 'V' || !isDigit(v[1]) || v[2] != '.' || !isDigit(v[3]) || !isDigit(v[4]) || !isDigit(v[5]) {
		return ErrInvalidProductVersion
	}
	r.Version = string(v[:])
	return nil
}

func checkReleaseDate(id *SystemID, r *Report) error {
	d := id.ReleaseDate
	for _, c := range d {
		if !isDigit(c) {
			return ErrInvalidReleaseDate
		}
	}
	r.ReleaseDate = Date{atoi(d[0:4]), atoi(d[4:6]), atoi(d[6:8])}
	return nil
}

func checkDeviceInformation(id *SystemID, r *Report) error {
	b := id.DeviceInformation[:]
	if !bytes.HasPrefix(b, devicePrefix) {
		return ErrInvalidDeviceInformation
	}

	n, b, ok := number(b[len(devicePrefix):])
	if !ok || len(b) == 0 || b[0] != '/' {
		return ErrInvalidDeviceInformation
	}

	m, _, ok := number(b[1:])
	if !ok || m < n {
		return ErrInvalidDeviceInformation
	}

	r.Disc = Disc{n, m}
	return nil
}

func checkAreaSymbols(id *SystemID, r *Report) (err error) {
	r.Areas, r.Regions, err = expandAreas(id.AreaSymbols[:])
	return
}

func checkCompatiblePeripherals(id *SystemID, r *Report) (err error) {
	r.Peripherals, r.CompatiblePeripherals, err = expandPeripherals(id.CompatiblePeripherals[:])
	return
}

// checks run in this order, the first failure stops validation
var checks = []struct {
	field Field
	check func(*SystemID, *Report) error
}{
	{HardwareIdentifier, checkHardwareIdentifier},
	{MakerID, checkMakerID},
	{ProductVersion, checkProductVersion},
	{ReleaseDate, checkReleaseDate},
	{DeviceInformation, checkDeviceInformation},
	{AreaSymbols, checkAreaSymbols},
	{CompatiblePeripherals, checkCompatiblePeripherals},
}

// Validate checks the fields of the System ID in order and returns a Report
// or a *FieldError for the first field that is invalid. With extended set
// the byte order corrected IP size is included in the report
func Validate(id SystemID, extended bool) (*Report, error) {
	r := new(Report)

	for _, c := range checks {
		if err := c.check(&id, r); err != nil {
			return nil, &FieldError{Field: c.field, Err: err}
		}
	}

	r.ProductNumber = trim(id.ProductNumber[:])
	r.Title = trim(id.GameTitle[:])

	if extended {
		size := id.IPSize
		r.IPSize = &size
	}

	return r, nil
}

// RegionList returns the region labels joined for display
func (r *Report) RegionList() string {
	return strings.Join(r.Regions, ", ")
}

// PeripheralList returns the peripheral labels joined for display
func (r *Report) PeripheralList() string {
	return strings.Join(r.CompatiblePeripherals, ", ")
}
