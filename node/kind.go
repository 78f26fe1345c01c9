package node

import "fmt"

// Kind is the discriminant of a Node. The zero value is KindNull.
type Kind int

const (
	KindNull Kind = iota
	KindBool
	KindInteger
	KindFloat
	KindString
	KindList
	KindMap
)

func (k Kind) String() string {
	s, ok := map[Kind]string{
		KindNull:    "Null",
		KindBool:    "Bool",
		KindInteger: "Integer",
		KindFloat:   "Float",
		KindString:  "String",
		KindList:    "List",
		KindMap:     "Map",
	}[k]
	if ok {
		return s
	}
	return "<unknown kind>"
}

func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(d []byte) error {
	kk, ok := map[string]Kind{
		"Null":    KindNull,
		"Bool":    KindBool,
		"Integer": KindInteger,
		"Float":   KindFloat,
		"String":  KindString,
		"List":    KindList,
		"Map":     KindMap,
	}[string(d)]
	if !ok {
		return fmt.Errorf("unrecognized kind %q", d)
	}
	*k = kk
	return nil
}

func Kinds() []Kind {
	return []Kind{
		KindNull,
		KindBool,
		KindInteger,
		KindFloat,
		KindString,
		KindList,
		KindMap,
	}
}

// IsScalar reports whether nodes of this kind have no children.
func (k Kind) IsScalar() bool {
	switch k {
	case KindList, KindMap:
		return false
	default:
		return true
	}
}
