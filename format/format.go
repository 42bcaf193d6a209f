package format

import (
	"errors"
	"fmt"
	"strings"
)

// Format selects what the curly tool emits: the native config text, or
// a YAML or JSON snapshot of the active settings.
type Format int

const (
	CurlyFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrBadFormat = errors.New("bad format")

var names = map[Format]string{
	CurlyFormat: "curly",
	YAMLFormat:  "yaml",
	JSONFormat:  "json",
}

// ParseFormat accepts a format name or its first letter.
func ParseFormat(v string) (Format, error) {
	for _, f := range AllFormats() {
		name := names[f]
		if v == name || v == name[:1] {
			return f, nil
		}
	}
	return 0, fmt.Errorf("%w: %q, want one of %s", ErrBadFormat, v, nameList())
}

func nameList() string {
	all := AllFormats()
	parts := make([]string, 0, len(all))
	for _, f := range all {
		parts = append(parts, f.String())
	}
	return strings.Join(parts, ", ")
}

func (f Format) String() string {
	if s, ok := names[f]; ok {
		return s
	}
	return fmt.Sprintf("<err: %d is not a format>", int(f))
}

func (f Format) MarshalText() ([]byte, error) {
	if s, ok := names[f]; ok {
		return []byte(s), nil
	}
	return nil, fmt.Errorf("%w: Format(%d)", ErrBadFormat, int(f))
}

func (f *Format) UnmarshalText(d []byte) error {
	pf, err := ParseFormat(string(d))
	if err != nil {
		return err
	}
	*f = pf
	return nil
}

func (f Format) IsJSON() bool  { return f == JSONFormat }
func (f Format) IsCurly() bool { return f == CurlyFormat }

// AllFormats returns the supported formats in preference order.
func AllFormats() []Format {
	return []Format{CurlyFormat, YAMLFormat, JSONFormat}
}
