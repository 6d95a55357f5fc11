package internal

type loxString string

func compareString(op operator) binaryOperation {
	return func(x, y interface{}) (interface{}, error) {
		s1 := x.(loxString)
		switch s2 := y.(type) {
		case loxString:
			return loxBool(stringComparisons[op](string(s1), string(s2))), nil
		case loxNumber:
			return loxBool(comparisons[op](float64(asciiSum(s1)), float64(s2))), nil
		}
		return nil, errOperandsCompare
	}
}

var stringOperations = map[operator]binaryOperation{
	opAdd: func(x, y interface{}) (interface{}, error) {
		s1 := x.(loxString)
		switch s2 := y.(type) {
		case loxString:
			return s1 + s2, nil
		case loxNumber:
			return s1 + loxString(s2.String()), nil
		}
		return nil, errOperandsAdd
	},
	opLt:  compareString(opLt),
	opLte: compareString(opLte),
	opGt:  compareString(opGt),
	opGte: compareString(opGte),
}

func (s loxString) getOperator(op operator) (operatorApply, error) {
	if apply, ok := stringOperations[op]; ok {
		return makeOperatorApplier(s, apply), nil
	}
	return nil, operandError(op)
}

func (s loxString) String() string {
	return string(s)
}
