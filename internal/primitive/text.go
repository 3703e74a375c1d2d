package primitive

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/hengadev/serde/internal/serdeerr"
)

// Parse reads the decimal text form of a T. Values outside T's range fail.
func Parse[T Primitive](s string) (T, error) {
	s = strings.TrimSpace(s)
	bitSize := Size[T]() * 8

	switch kindOf[T]() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v, err := strconv.ParseInt(s, 10, bitSize)
		if err != nil {
			return 0, serdeerr.NewInvalidFormatError(s, TypeName[T](), serdeerr.Parse)
		}
		return T(v), nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(s, bitSize)
		if err != nil {
			return 0, serdeerr.NewInvalidFormatError(s, TypeName[T](), serdeerr.Parse)
		}
		return T(v), nil
	default:
		v, err := strconv.ParseUint(s, 10, bitSize)
		if err != nil {
			return 0, serdeerr.NewInvalidFormatError(s, TypeName[T](), serdeerr.Parse)
		}
		return T(v), nil
	}
}

// Format returns the decimal text form of v, the inverse of Parse.
func Format[T Primitive](v T) string {
	switch kindOf[T]() {
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(int64(v), 10)
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(float64(v), 'g', -1, Size[T]()*8)
	default:
		return strconv.FormatUint(uint64(v), 10)
	}
}
