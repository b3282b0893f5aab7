package object

import "fmt"

// BinaryOp applies a binary operator to two runtime values.
//
// Numbers support "+" and "-" with unsigned 64-bit wraparound. Strings
// support "+" as concatenation. Mixed number/string operands are a type
// error, as is any other combination.
func BinaryOp(operator string, left, right Object) (Object, error) {
	switch left := left.(type) {
	case *Number:
		rightNum, ok := right.(*Number)
		if !ok {
			return nil, fmt.Errorf("type error: unsupported operand types for %s: %s and %s",
				operator, NUMBER, right.Type())
		}
		switch operator {
		case "+":
			return NewNumber(left.Value() + rightNum.Value()), nil
		case "-":
			return NewNumber(left.Value() - rightNum.Value()), nil
		}
	case *String:
		rightStr, ok := right.(*String)
		if !ok {
			return nil, fmt.Errorf("type error: unsupported operand types for %s: %s and %s",
				operator, STRING, right.Type())
		}
		if operator == "+" {
			return NewString(left.Value() + rightStr.Value()), nil
		}
	}
	return nil, fmt.Errorf("type error: unsupported operation %s for %s and %s",
		operator, left.Type(), right.Type())
}
