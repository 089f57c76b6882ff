package exp

import (
	"fmt"
	"rebar/types"
)

// Op identifies an operator
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpEq
	OpNe
	OpLt
	OpLe
	OpGt
	OpGe
	OpAnd
	OpOr
	OpNot
	OpNeg
)

// String returns the C spelling of the operator
func (o Op) String() string {
	switch o {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpEq:
		return "=="
	case OpNe:
		return "!="
	case OpLt:
		return "<"
	case OpLe:
		return "<="
	case OpGt:
		return ">"
	case OpGe:
		return ">="
	case OpAnd:
		return "&&"
	case OpOr:
		return "||"
	case OpNot:
		return "!"
	case OpNeg:
		return "-"
	default:
		return "?"
	}
}

// Unop is a unary operator application
type Unop struct {
	Op Op
	X  Exp
}

// ExpType returns the result kind
func (u Unop) ExpType() types.TypeCode {
	if u.Op == OpNot {
		return types.TYPE_BOOL
	}
	return u.X.ExpType()
}

// Eval evaluates a closed unary application
func (u Unop) Eval() (types.Value, error) {
	x, err := u.X.Eval()
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case OpNot:
		return types.NewBool(!x.Truthy()), nil
	case OpNeg:
		switch n := x.(type) {
		case types.IntValue:
			return types.NewInt(n.Code, -n.Val), nil
		case types.FloatValue:
			return types.NewFloat(n.Code, -n.Val), nil
		}
		return nil, fmt.Errorf("cannot negate %s", x.Type())
	default:
		return nil, fmt.Errorf("bad unary operator %s", u.Op)
	}
}

// Compile renders the application in C syntax
func (u Unop) Compile() string {
	return fmt.Sprintf("(%s%s)", u.Op, u.X.Compile())
}

// Not builds a logical negation
func Not(x Exp) Unop {
	return Unop{Op: OpNot, X: x}
}

// Neg builds an arithmetic negation
func Neg(x Exp) Unop {
	return Unop{Op: OpNeg, X: x}
}

// Binop is a binary operator application.
// Both operands must share one kind; arithmetic yields that kind,
// comparisons and logic yield bool.
type Binop struct {
	Op   Op
	X, Y Exp
}

// ExpType returns the result kind
func (b Binop) ExpType() types.TypeCode {
	switch b.Op {
	case OpAdd, OpSub, OpMul, OpDiv:
		return b.X.ExpType()
	default:
		return types.TYPE_BOOL
	}
}

// Eval evaluates a closed binary application
func (b Binop) Eval() (types.Value, error) {
	x, err := b.X.Eval()
	if err != nil {
		return nil, err
	}
	y, err := b.Y.Eval()
	if err != nil {
		return nil, err
	}
	switch b.Op {
	case OpAnd:
		return types.NewBool(x.Truthy() && y.Truthy()), nil
	case OpOr:
		return types.NewBool(x.Truthy() || y.Truthy()), nil
	}
	switch xv := x.(type) {
	case types.IntValue:
		yv, ok := y.(types.IntValue)
		if !ok {
			return nil, fmt.Errorf("operand kind mismatch: %s vs %s", x.Type(), y.Type())
		}
		return evalInt(b.Op, xv, yv)
	case types.WordValue:
		yv, ok := y.(types.WordValue)
		if !ok {
			return nil, fmt.Errorf("operand kind mismatch: %s vs %s", x.Type(), y.Type())
		}
		return evalWord(b.Op, xv, yv)
	case types.FloatValue:
		yv, ok := y.(types.FloatValue)
		if !ok {
			return nil, fmt.Errorf("operand kind mismatch: %s vs %s", x.Type(), y.Type())
		}
		return evalFloat(b.Op, xv, yv)
	case types.BoolValue:
		yv, ok := y.(types.BoolValue)
		if !ok {
			return nil, fmt.Errorf("operand kind mismatch: %s vs %s", x.Type(), y.Type())
		}
		if b.Op == OpEq {
			return types.NewBool(xv.Val == yv.Val), nil
		}
		if b.Op == OpNe {
			return types.NewBool(xv.Val != yv.Val), nil
		}
		return nil, fmt.Errorf("operator %s not defined on bool", b.Op)
	default:
		return nil, fmt.Errorf("operator %s not defined on %s", b.Op, x.Type())
	}
}

func evalInt(op Op, x, y types.IntValue) (types.Value, error) {
	switch op {
	case OpAdd:
		return types.NewInt(x.Code, x.Val+y.Val), nil
	case OpSub:
		return types.NewInt(x.Code, x.Val-y.Val), nil
	case OpMul:
		return types.NewInt(x.Code, x.Val*y.Val), nil
	case OpDiv:
		if y.Val == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return types.NewInt(x.Code, x.Val/y.Val), nil
	case OpEq:
		return types.NewBool(x.Val == y.Val), nil
	case OpNe:
		return types.NewBool(x.Val != y.Val), nil
	case OpLt:
		return types.NewBool(x.Val < y.Val), nil
	case OpLe:
		return types.NewBool(x.Val <= y.Val), nil
	case OpGt:
		return types.NewBool(x.Val > y.Val), nil
	case OpGe:
		return types.NewBool(x.Val >= y.Val), nil
	default:
		return nil, fmt.Errorf("bad binary operator %s", op)
	}
}

func evalWord(op Op, x, y types.WordValue) (types.Value, error) {
	switch op {
	case OpAdd:
		return types.NewWord(x.Code, x.Val+y.Val), nil
	case OpSub:
		return types.NewWord(x.Code, x.Val-y.Val), nil
	case OpMul:
		return types.NewWord(x.Code, x.Val*y.Val), nil
	case OpDiv:
		if y.Val == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return types.NewWord(x.Code, x.Val/y.Val), nil
	case OpEq:
		return types.NewBool(x.Val == y.Val), nil
	case OpNe:
		return types.NewBool(x.Val != y.Val), nil
	case OpLt:
		return types.NewBool(x.Val < y.Val), nil
	case OpLe:
		return types.NewBool(x.Val <= y.Val), nil
	case OpGt:
		return types.NewBool(x.Val > y.Val), nil
	case OpGe:
		return types.NewBool(x.Val >= y.Val), nil
	default:
		return nil, fmt.Errorf("bad binary operator %s", op)
	}
}

func evalFloat(op Op, x, y types.FloatValue) (types.Value, error) {
	switch op {
	case OpAdd:
		return types.NewFloat(x.Code, x.Val+y.Val), nil
	case OpSub:
		return types.NewFloat(x.Code, x.Val-y.Val), nil
	case OpMul:
		return types.NewFloat(x.Code, x.Val*y.Val), nil
	case OpDiv:
		if y.Val == 0 {
			return nil, fmt.Errorf("division by zero")
		}
		return types.NewFloat(x.Code, x.Val/y.Val), nil
	case OpEq:
		return types.NewBool(x.Val == y.Val), nil
	case OpNe:
		return types.NewBool(x.Val != y.Val), nil
	case OpLt:
		return types.NewBool(x.Val < y.Val), nil
	case OpLe:
		return types.NewBool(x.Val <= y.Val), nil
	case OpGt:
		return types.NewBool(x.Val > y.Val), nil
	case OpGe:
		return types.NewBool(x.Val >= y.Val), nil
	default:
		return nil, fmt.Errorf("bad binary operator %s", op)
	}
}

// Compile renders the application in C syntax
func (b Binop) Compile() string {
	return fmt.Sprintf("(%s %s %s)", b.X.Compile(), b.Op, b.Y.Compile())
}

// Add builds x + y
func Add(x, y Exp) Binop { return Binop{Op: OpAdd, X: x, Y: y} }

// Sub builds x - y
func Sub(x, y Exp) Binop { return Binop{Op: OpSub, X: x, Y: y} }

// Mul builds x * y
func Mul(x, y Exp) Binop { return Binop{Op: OpMul, X: x, Y: y} }

// Div builds x / y
func Div(x, y Exp) Binop { return Binop{Op: OpDiv, X: x, Y: y} }

// Eq builds x == y
func Eq(x, y Exp) Binop { return Binop{Op: OpEq, X: x, Y: y} }

// Ne builds x != y
func Ne(x, y Exp) Binop { return Binop{Op: OpNe, X: x, Y: y} }

// Lt builds x < y
func Lt(x, y Exp) Binop { return Binop{Op: OpLt, X: x, Y: y} }

// Le builds x <= y
func Le(x, y Exp) Binop { return Binop{Op: OpLe, X: x, Y: y} }

// Gt builds x > y
func Gt(x, y Exp) Binop { return Binop{Op: OpGt, X: x, Y: y} }

// Ge builds x >= y
func Ge(x, y Exp) Binop { return Binop{Op: OpGe, X: x, Y: y} }

// And builds x && y
func And(x, y Exp) Binop { return Binop{Op: OpAnd, X: x, Y: y} }

// Or builds x || y
func Or(x, y Exp) Binop { return Binop{Op: OpOr, X: x, Y: y} }
