package script

import (
	"github.com/d5/tengo/v2"
)

func boolObject(v bool) tengo.Object {
	if v {
		return tengo.TrueValue
	}
	return tengo.FalseValue
}

func toMap(values map[string]any) (*tengo.Map, error) {
	m := &tengo.Map{Value: make(map[string]tengo.Object, len(values))}
	for k, v := range values {
		obj, err := tengo.FromInterface(v)
		if err != nil {
			return nil, err
		}
		m.Value[k] = obj
	}
	return m, nil
}

func asFloat(v any) float64 {
	switch n := v.(type) {
	case float64:
		return n
	case int64:
		return float64(n)
	case int:
		return float64(n)
	case bool:
		if n {
			return 1
		}
	}
	return 0
}

func asBool(v any) bool {
	switch b := v.(type) {
	case bool:
		return b
	case int64:
		return b != 0
	case float64:
		return b != 0
	}
	return false
}
