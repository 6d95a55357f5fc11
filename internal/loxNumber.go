package internal

import (
	"math"
	"strconv"
	"strings"
)

type loxNumber float64

func numeric(op func(x, y loxNumber) loxNumber) binaryOperation {
	return func(x, y interface{}) (interface{}, error) {
		n2, ok := y.(loxNumber)
		if !ok {
			return nil, errOperandsNumbers
		}
		return op(x.(loxNumber), n2), nil
	}
}

func compareNumber(cmp comparison) binaryOperation {
	return func(x, y interface{}) (interface{}, error) {
		n1 := x.(loxNumber)
		switch n2 := y.(type) {
		case loxNumber:
			return loxBool(cmp(float64(n1), float64(n2))), nil
		case loxString:
			return loxBool(cmp(float64(n1), float64(asciiSum(n2)))), nil
		}
		return nil, errOperandsCompare
	}
}

var numberOperations = map[operator]binaryOperation{
	opAdd: func(x, y interface{}) (interface{}, error) {
		n1 := x.(loxNumber)
		switch n2 := y.(type) {
		case loxNumber:
			return n1 + n2, nil
		case loxString:
			return loxString(n1.String()) + n2, nil
		}
		return nil, errOperandsAdd
	},
	opSub: numeric(func(x, y loxNumber) loxNumber { return x - y }),
	opMul: numeric(func(x, y loxNumber) loxNumber { return x * y }),
	opDiv: func(x, y interface{}) (interface{}, error) {
		n2, ok := y.(loxNumber)
		if !ok {
			return nil, errOperandsNumbers
		}
		if n2 == 0 {
			return nil, errDivisionByZero
		}
		return x.(loxNumber) / n2, nil
	},
	opNeg: func(x, _ interface{}) (interface{}, error) {
		return -x.(loxNumber), nil
	},
	opLt:  compareNumber(comparisons[opLt]),
	opLte: compareNumber(comparisons[opLte]),
	opGt:  compareNumber(comparisons[opGt]),
	opGte: compareNumber(comparisons[opGte]),
}

func (n loxNumber) getOperator(op operator) (operatorApply, error) {
	if apply, ok := numberOperations[op]; ok {
		return makeOperatorApplier(n, apply), nil
	}
	return nil, operandError(op)
}

// String renders n the way print does: integral values carry no
// fractional part.
func (n loxNumber) String() string {
	f := float64(n)
	switch {
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case math.IsNaN(f):
		return "NaN"
	}
	return strings.TrimSuffix(strconv.FormatFloat(f, 'f', -1, 64), ".0")
}
