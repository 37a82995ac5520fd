package tensor

import (
	"math"

	"github.com/pkg/errors"
)

// Element is a single tensor value: a 32-bit word tagged with the type it
// should be read as. The zero Element is an Unknown zero, which takes the
// type of whatever it is combined with.
type Element struct {
	dtype DataType
	bits  uint32
}

// Uint32Elem wraps an unsigned 32-bit integer.
func Uint32Elem(v uint32) Element { return Element{dtype: Uint32, bits: v} }

// Int32Elem wraps a signed 32-bit integer.
func Int32Elem(v int32) Element { return Element{dtype: Int32, bits: uint32(v)} }

// Float32Elem wraps a 32-bit float.
func Float32Elem(v float32) Element { return Element{dtype: Float32, bits: math.Float32bits(v)} }

// FromFloat64 converts v to an Element of type dt.
// Unknown and invalid types produce a Float32 element.
func FromFloat64(v float64, dt DataType) Element {
	switch dt {
	case Uint32:
		return Uint32Elem(uint32(int64(v)))
	case Int32:
		return Int32Elem(int32(v))
	default:
		return Float32Elem(float32(v))
	}
}

func elemFromBits(bits uint32, dt DataType) Element {
	return Element{dtype: dt, bits: bits}
}

// DType returns the element's type tag.
func (e Element) DType() DataType { return e.dtype }

// Bits returns the raw 32-bit representation.
func (e Element) Bits() uint32 { return e.bits }

// Uint32 returns the value converted to uint32.
func (e Element) Uint32() uint32 { return e.As(Uint32).bits }

// Int32 returns the value converted to int32.
func (e Element) Int32() int32 { return int32(e.As(Int32).bits) }

// Float32 returns the value converted to float32.
func (e Element) Float32() float32 { return math.Float32frombits(e.As(Float32).bits) }

// Float64 returns the value as float64. The conversion is exact for all three types.
func (e Element) Float64() float64 {
	switch e.dtype {
	case Uint32:
		return float64(e.bits)
	case Int32:
		return float64(int32(e.bits))
	default:
		return float64(math.Float32frombits(e.bits))
	}
}

// As converts the element to type dt. Integer conversions wrap; float to
// integer conversions truncate toward zero.
func (e Element) As(dt DataType) Element {
	if e.dtype == dt || dt == Unknown {
		return e
	}
	switch dt {
	case Uint32:
		switch e.dtype {
		case Int32:
			return Uint32Elem(e.bits)
		default:
			return Uint32Elem(uint32(int64(math.Float32frombits(e.bits))))
		}
	case Int32:
		switch e.dtype {
		case Uint32:
			return Int32Elem(int32(e.bits))
		default:
			return Int32Elem(int32(math.Float32frombits(e.bits)))
		}
	default:
		return Float32Elem(float32(e.Float64()))
	}
}

// Add returns e + o in the promoted type.
func (e Element) Add(o Element) Element {
	r, _ := e.binary(o, '+')
	return r
}

// Sub returns e - o in the promoted type.
func (e Element) Sub(o Element) Element {
	r, _ := e.binary(o, '-')
	return r
}

// Mul returns e * o in the promoted type.
func (e Element) Mul(o Element) Element {
	r, _ := e.binary(o, '*')
	return r
}

// Div returns e / o in the promoted type. Integer division by zero fails
// with ErrDivideByZero; float division follows IEEE 754.
func (e Element) Div(o Element) (Element, error) {
	return e.binary(o, '/')
}

// Equal reports whether both elements hold the same value after promotion.
func (e Element) Equal(o Element) bool {
	dt := Promote(e.dtype, o.dtype)
	return e.As(dt).bits == o.As(dt).bits
}

func (e Element) binary(o Element, op byte) (Element, error) {
	dt := Promote(e.dtype, o.dtype)
	x, y := e.As(dt), o.As(dt)

	switch dt {
	case Uint32:
		a, b := x.bits, y.bits
		switch op {
		case '+':
			return Uint32Elem(a + b), nil
		case '-':
			return Uint32Elem(a - b), nil
		case '*':
			return Uint32Elem(a * b), nil
		default:
			if b == 0 {
				return Element{}, errors.Wrapf(ErrDivideByZero, "%d / 0 (u32)", a)
			}
			return Uint32Elem(a / b), nil
		}
	case Int32:
		a, b := int32(x.bits), int32(y.bits)
		switch op {
		case '+':
			return Int32Elem(a + b), nil
		case '-':
			return Int32Elem(a - b), nil
		case '*':
			return Int32Elem(a * b), nil
		default:
			if b == 0 {
				return Element{}, errors.Wrapf(ErrDivideByZero, "%d / 0 (i32)", a)
			}
			return Int32Elem(a / b), nil
		}
	default:
		a, b := math.Float32frombits(x.bits), math.Float32frombits(y.bits)
		switch op {
		case '+':
			return Float32Elem(a + b), nil
		case '-':
			return Float32Elem(a - b), nil
		case '*':
			return Float32Elem(a * b), nil
		default:
			return Float32Elem(a / b), nil
		}
	}
}
