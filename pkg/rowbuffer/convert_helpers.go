package rowbuffer

import (
	"fmt"
	"math/big"
	"strconv"
)

// toInt64 coerces a loosely-typed row value to a signed integer, accepting
// the JSON/Go numeric types a caller is likely to hand in as well as
// numeric strings.
func toInt64(value interface{}) (int64, error) {
	switch v := value.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case int32:
		return int64(v), nil
	case int16:
		return int64(v), nil
	case int8:
		return int64(v), nil
	case uint64:
		return int64(v), nil
	case uint32:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case float32:
		return int64(v), nil
	case string:
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot parse %q as an integer: %w", v, err)
		}
		return n, nil
	default:
		return 0, fmt.Errorf("unsupported integer value of type %T", value)
	}
}

func bigFromInt64(n int64) *big.Int {
	return big.NewInt(n)
}

// toStringValue stringifies a loosely-typed row value for the string/text
// storage path and for decimal parsing, without relying on fmt's verbose
// default formatting for byte slices.
func toStringValue(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
