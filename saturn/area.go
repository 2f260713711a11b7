package saturn

// Area is a region code found in the area symbols
type Area byte

// These are the region codes recognised by the Saturn BIOS
const (
	Japan   Area = 'J'
	Asia    Area = 'T'
	America Area = 'U'
	PAL     Area = 'E'
)

var areas = map[Area]string{
	Japan:   "Japan",
	Asia:    "Asia",
	America: "America",
	PAL:     "PAL",
}

func (a Area) String() string {
	return areas[a]
}

// ParseAreas converts a string of region codes such as "JTUE" into areas.
// Spaces are skipped
func ParseAreas(s string) ([]Area, error) {
	a, _, err := expandAreas([]byte(s))
	if err != nil {
		return nil, &FieldError{Field: AreaSymbols, Err: err}
	}
	return a, nil
}

func expandAreas(b []byte) ([]Area, []string, error) {
	codes, labels := []Area{}, []string{}

	for i, c := range b {
		if c == ' ' {
			continue
		}

		s, ok := areas[Area(c)]
		if !ok {
			return nil, nil, &CodeError{Err: ErrInvalidAreaSymbols, Code: c, Offset: i}
		}

		codes, labels = append(codes, Area(c)), append(labels, s)
	}

	return codes, labels, nil
}
