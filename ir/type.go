package ir

import "fmt"

type Type int

const (
	ConfigType Type = iota
	BlockType
	PropertyType
	CommentedPropertyType
	CommentType
)

func (t Type) String() string {
	s, ok := map[Type]string{
		ConfigType:            "Config",
		BlockType:             "Block",
		PropertyType:          "Property",
		CommentedPropertyType: "CommentedProperty",
		CommentType:           "Comment",
	}[t]
	if ok {
		return s
	}
	return "<unknown type>"
}

func (t Type) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Type) UnmarshalText(d []byte) error {
	tt, ok := map[string]Type{
		"Config":            ConfigType,
		"Block":             BlockType,
		"Property":          PropertyType,
		"CommentedProperty": CommentedPropertyType,
		"Comment":           CommentType,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized type %q", d)
	}
	*t = tt
	return nil
}
