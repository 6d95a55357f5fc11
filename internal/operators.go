package internal

import "unicode/utf8"

type operator string

const (
	opAdd operator = "add"
	opSub operator = "sub"
	opDiv operator = "div"
	opMul operator = "mul"
	opNeg operator = "neg"
	opLt  operator = "lt"
	opLte operator = "lte"
	opGt  operator = "gt"
	opGte operator = "gte"
)

var binaryOperators = map[TokenType]operator{
	tkPlus:         opAdd,
	tkMinus:        opSub,
	tkSlash:        opDiv,
	tkStar:         opMul,
	tkLess:         opLt,
	tkLessEqual:    opLte,
	tkGreater:      opGt,
	tkGreaterEqual: opGte,
}

type operatorApply func(arguments ...interface{}) (interface{}, error)

// operable is implemented by the primitive values that support arithmetic
// or ordering.
type operable interface {
	getOperator(op operator) (operatorApply, error)
}

type binaryOperation func(x interface{}, y interface{}) (interface{}, error)

func makeOperatorApplier(x interface{}, apply binaryOperation) operatorApply {
	return func(arguments ...interface{}) (interface{}, error) {
		var y interface{}
		if len(arguments) > 0 {
			y = arguments[0]
		}
		return apply(x, y)
	}
}

// operandError is the error raised when op is applied to values that do
// not support it.
func operandError(op operator) error {
	switch op {
	case opAdd:
		return errOperandsAdd
	case opNeg:
		return errOperandNumber
	case opLt, opLte, opGt, opGte:
		return errOperandsCompare
	}
	return errOperandsNumbers
}

type comparison func(x, y float64) bool

var comparisons = map[operator]comparison{
	opLt:  func(x, y float64) bool { return x < y },
	opLte: func(x, y float64) bool { return x <= y },
	opGt:  func(x, y float64) bool { return x > y },
	opGte: func(x, y float64) bool { return x >= y },
}

var stringComparisons = map[operator]func(x, y string) bool{
	opLt:  func(x, y string) bool { return x < y },
	opLte: func(x, y string) bool { return x <= y },
	opGt:  func(x, y string) bool { return x > y },
	opGte: func(x, y string) bool { return x >= y },
}

// asciiSum is the numeric stand-in for a string when it meets a number in
// an equality or ordering test. Each character counts as its code point,
// a byte that is not valid UTF-8 counts as the byte value.
func asciiSum(s loxString) loxNumber {
	var sum loxNumber
	for str := string(s); len(str) > 0; {
		r, size := utf8.DecodeRuneInString(str)
		if r == utf8.RuneError && size == 1 {
			sum += loxNumber(str[0])
		} else {
			sum += loxNumber(r)
		}
		str = str[size:]
	}
	return sum
}

func isEqual(a, b interface{}) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case loxBool:
		y, ok := b.(loxBool)
		return ok && x == y
	case loxNumber:
		switch y := b.(type) {
		case loxNumber:
			return x == y
		case loxString:
			return x == asciiSum(y)
		}
		return false
	case loxString:
		switch y := b.(type) {
		case loxString:
			return x == y
		case loxNumber:
			return asciiSum(x) == y
		}
		return false
	case *loxClass, *loxInstance, *loxFunction, *nativeFn:
		return a == b
	}
	return false
}
