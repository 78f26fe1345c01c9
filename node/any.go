package node

import (
	"fmt"
	"math"
)

// ToAny converts the tree to plain Go values: nil, bool, int64, float64,
// string, []any and map[string]any. Annotations are dropped.
func (n *Node) ToAny() any {
	switch n.kind {
	case KindNull:
		return nil
	case KindBool:
		return n.boolV
	case KindInteger:
		return n.intV
	case KindFloat:
		return n.floatV
	case KindString:
		return n.strV
	case KindList:
		res := make([]any, len(n.listV))
		for i, v := range n.listV {
			res[i] = v.ToAny()
		}
		return res
	case KindMap:
		res := make(map[string]any, len(n.mapV))
		for k, v := range n.mapV {
			res[k] = v.ToAny()
		}
		return res
	default:
		panic("kind")
	}
}

// FromAny builds a tree from plain Go values as produced by ToAny or by
// generic YAML/JSON unmarshaling. Integer-typed values become Integer nodes,
// floats become Float nodes.
func FromAny(v any) (*Node, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case *Node:
		return x.Clone(), nil
	case bool:
		return FromBool(x), nil
	case int:
		return FromInt(int64(x)), nil
	case int64:
		return FromInt(x), nil
	case uint64:
		if x > math.MaxInt64 {
			return nil, fmt.Errorf("%w: %d overflows int64", ErrConvert, x)
		}
		return FromInt(int64(x)), nil
	case float32:
		return FromFloat(float64(x)), nil
	case float64:
		return FromFloat(x), nil
	case string:
		return FromString(x), nil
	case []any:
		vs := make([]*Node, len(x))
		for i, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			vs[i] = n
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[k] = n
		}
		return FromMap(m), nil
	case map[any]any:
		m := make(map[string]*Node, len(x))
		for k, e := range x {
			ks, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: map key %v (%T)", ErrConvert, k, k)
			}
			n, err := FromAny(e)
			if err != nil {
				return nil, err
			}
			m[ks] = n
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("%w: %v (%T)", ErrConvert, v, v)
	}
}
