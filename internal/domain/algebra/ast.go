// Package algebra compiles selection expressions such as
// "+easy * (insert + delete)" into the list of variant combinations to test.
//
//	sum     := product ("+" product)*
//	product := primary ("*" primary)*
//	primary := "+" ident | "*" ident | ident | "(" sum ")"
package algebra

// Expr is a node of a parsed selection expression. Nodes are immutable
// values; every compilation phase returns a new tree.
type Expr interface {
	String() string
	expr()
}

// Sum selects the configurations of Left followed by those of Right.
type Sum struct {
	Left, Right Expr
}

// Product combines every configuration of Left with every one of Right.
type Product struct {
	Left, Right Expr
}

// UnarySum is "+tag": the sum of all names sharing Tag.
type UnarySum struct {
	Tag string
}

// UnaryProduct is "*tag": the product of all names sharing Tag.
type UnaryProduct struct {
	Tag string
}

// Ident names a variant or a variation.
type Ident struct {
	Name string
}

func (Sum) expr()          {}
func (Product) expr()      {}
func (UnarySum) expr()     {}
func (UnaryProduct) expr() {}
func (Ident) expr()        {}

func (e Sum) String() string {
	return "(" + e.Left.String() + " + " + e.Right.String() + ")"
}

func (e Product) String() string {
	return "(" + e.Left.String() + " * " + e.Right.String() + ")"
}

func (e UnarySum) String() string {
	return "+" + e.Tag
}

func (e UnaryProduct) String() string {
	return "*" + e.Tag
}

func (e Ident) String() string {
	return e.Name
}
