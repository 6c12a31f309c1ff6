package acg

import "fmt"

// typeExpr is the closed algebra of ACG types: atomic types and arrows.
// Building types structurally instead of by string concatenation lets the
// tests check inferred types without comparing rendered text.
type typeExpr interface {
	fmt.Stringer
	isTypeExpr()
}

type atomicType string

func (t atomicType) isTypeExpr() {}

func (t atomicType) String() string {
	return string(t)
}

type arrowType struct {
	left  typeExpr
	right typeExpr
}

func newArrow(left, right typeExpr) *arrowType {
	return &arrowType{
		left:  left,
		right: right,
	}
}

func (t *arrowType) isTypeExpr() {}

// String renders an arrow chain right-associatively; only a higher-order
// argument needs parentheses.
func (t *arrowType) String() string {
	left := t.left.String()
	if _, ok := t.left.(*arrowType); ok {
		left = "(" + left + ")"
	}
	return fmt.Sprintf("%v -> %v", left, t.right)
}

// arrowChain folds a sequence of argument types and a final result type into
// one right-associated arrow.
func arrowChain(types ...typeExpr) typeExpr {
	t := types[len(types)-1]
	for i := len(types) - 2; i >= 0; i-- {
		t = newArrow(types[i], t)
	}
	return t
}

func substitutionType(symbol string) typeExpr {
	return atomicType(symbol + "_S")
}

func adjunctionType(symbol string) typeExpr {
	return atomicType(symbol + "_A")
}

const treeTypeName = "tree"

// treeType returns the type of an (length-1)-ary derived-tree constructor,
// that is, length copies of tree chained by arrows.
func treeType(length int) typeExpr {
	types := make([]typeExpr, length)
	for i := range types {
		types[i] = atomicType(treeTypeName)
	}
	return arrowChain(types...)
}
