package calcamabob

import (
	"strconv"
	"strings"
)

// node is a node in the abstract syntax tree of an expression.
type node struct {
	kind nodeKind

	// num is the value of a nodeNum.
	num float64
	// name is the call lexeme of a nodeCall, including the open paren.
	name string
	// fn is the function a nodeCall applies, resolved from name.
	fn Func
	// op is the operator token of a nodeBinary.
	op Token
	// pos is the column of the token that created the node.
	pos int

	left  *node
	right *node
}

type nodeKind int8

const (
	nodeNone nodeKind = iota

	nodeNum    // num
	nodeCall   // fn(left)
	nodeGroup  // (left)
	nodeNeg    // -left
	nodeBinary // left op right
)

var nodeKindNames = [...]string{
	nodeNone:   "None",
	nodeNum:    "Num",
	nodeCall:   "Call",
	nodeGroup:  "Group",
	nodeNeg:    "Neg",
	nodeBinary: "Binary",
}

func (k nodeKind) String() string {
	if k < 0 || int(k) >= len(nodeKindNames) {
		return "nodeKind(" + strconv.Itoa(int(k)) + ")"
	}
	return nodeKindNames[k]
}

func (n *node) String() string {
	var b strings.Builder
	n.fmt(&b, false)
	return b.String()
}

// fmt writes n in fully bracketed form. Brackets alternate between round and
// square with depth so that the tree shape is easy to read.
func (n *node) fmt(b *strings.Builder, square bool) {
	var l, r byte = '(', ')'
	if square {
		l, r = '[', ']'
	}
	b.WriteByte(l)
	defer b.WriteByte(r)
	switch n.kind {
	case nodeNum:
		b.WriteString(strconv.FormatFloat(n.num, 'g', -1, 64))
	case nodeCall:
		b.WriteString(strings.TrimSuffix(n.name, "("))
		n.left.fmt(b, !square)
	case nodeGroup:
		n.left.fmt(b, !square)
	case nodeNeg:
		b.WriteByte('-')
		n.left.fmt(b, !square)
	case nodeBinary:
		n.left.fmt(b, !square)
		b.WriteByte(' ')
		b.WriteString(n.op.Text)
		b.WriteByte(' ')
		n.right.fmt(b, !square)
	default:
		// Invalid nodes use invalid characters.
		b.WriteByte('$')
		if n.left != nil {
			n.left.fmt(b, !square)
		}
		b.WriteByte('#')
		if n.right != nil {
			n.right.fmt(b, !square)
		}
		b.WriteByte('$')
	}
}
