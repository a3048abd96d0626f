package encode

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUnits parses a comma or whitespace separated list of hex UTF-16 code
// units, e.g. "d83d,de00" or "0x41 0x42". Values above 0xffff are rejected.
func ParseUnits(s string) ([]uint16, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	units := make([]uint16, 0, len(fields))
	for _, field := range fields {
		hex := strings.TrimPrefix(strings.TrimPrefix(field, "0x"), "0X")
		v, err := strconv.ParseUint(hex, 16, 16)
		if err != nil {
			return nil, fmt.Errorf("invalid code unit %q: %w", field, err)
		}
		units = append(units, uint16(v))
	}
	return units, nil
}
