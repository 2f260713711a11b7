package saturn

// Peripheral is a device code found in the compatible peripherals
type Peripheral byte

// These are the peripheral codes. The 'E' code shares its letter with the
// PAL region but the two tables are unrelated
const (
	ControlPad         Peripheral = 'J'
	AnalogController   Peripheral = 'A'
	ThreeDController   Peripheral = 'E'
	Mouse              Peripheral = 'M'
	Keyboard           Peripheral = 'K'
	SteeringController Peripheral = 'S'
	Multitap           Peripheral = 'T'
)

var peripherals = map[Peripheral]string{
	ControlPad:         "Control Pad",
	AnalogController:   "Analog Controller",
	ThreeDController:   "Analog Controller",
	Mouse:              "Mouse",
	Keyboard:           "Keyboard",
	SteeringController: "Steering Controller",
	Multitap:           "Multitap",
}

func (p Peripheral) String() string {
	return peripherals[p]
}

// ParsePeripherals converts a string of device codes such as "JAM" into
// peripherals. Spaces are skipped
func ParsePeripherals(s string) ([]Peripheral, error) {
	p, _, err := expandPeripherals([]byte(s))
	if err != nil {
		return nil, &FieldError{Field: CompatiblePeripherals, Err: err}
	}
	return p, nil
}

func expandPeripherals(b []byte) ([]Peripheral, []string, error) {
	codes, labels := []Peripheral{}, []string{}

	for i, c := range b {
		if c == ' ' {
			continue
		}

		s, ok := peripherals[Peripheral(c)]
		if !ok {
			return nil, nil, &CodeError{Err: ErrInvalidCompatiblePeripherals, Code: c, Offset: i}
		}

		codes, labels = append(codes, Peripheral(c)), append(labels, s)
	}

	return codes, labels, nil
}
