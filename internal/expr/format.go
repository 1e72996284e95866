package expr

import (
	"fmt"
	"strconv"
	"strings"
)

// precedence levels, loosest first
const (
	precRelational = iota + 1
	precAdding
	precMultiplying
	precUnary
	precPrimary
)

// Format renders n as source text. Parentheses are emitted only where
// operator precedence requires them.
func Format(n Node) string {
	var sb strings.Builder
	writeNode(&sb, n, 0)
	return sb.String()
}

func precOf(n Node) int {
	switch n := Unwrap(n).(type) {
	case *Comparison, *In:
		return precRelational
	case *Sum:
		return precAdding
	case *Logic:
		if n.Op == Or {
			return precAdding
		}
		return precMultiplying
	case *Product:
		return precMultiplying
	case *Not:
		return precUnary
	case IntLit:
		if n < 0 {
			return precUnary
		}
	case RealLit:
		if n < 0 {
			return precUnary
		}
	}
	return precPrimary
}

func writeNode(sb *strings.Builder, n Node, outer int) {
	if p := precOf(n); p < outer {
		sb.WriteByte('(')
		defer sb.WriteByte(')')
	}
	switch n := Unwrap(n).(type) {
	case IntLit:
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	case RealLit:
		s := strconv.FormatFloat(float64(n), 'g', -1, 64)
		if !strings.ContainsAny(s, ".eEn") {
			s += ".0"
		}
		sb.WriteString(s)
	case CharLit:
		sb.WriteString(quoteChar(rune(n)))
	case BoolLit:
		sb.WriteString(strconv.FormatBool(bool(n)))
	case *In:
		// сравнения не ассоциативны
		writeBinary(sb, n.Sample, "in", n.Set, precAdding, precAdding)
	case *Comparison:
		writeBinary(sb, n.Left, n.Op.String(), n.Right, precAdding, precAdding)
	case *Sum:
		writeBinary(sb, n.Left, n.Op.String(), n.Right, precAdding, precAdding+1)
	case *Product:
		writeBinary(sb, n.Left, n.Op.String(), n.Right, precMultiplying, precMultiplying+1)
	case *Logic:
		p := precOf(n)
		writeBinary(sb, n.Left, n.Op.String(), n.Right, p, p+1)
	case *Not:
		sb.WriteString("not ")
		writeNode(sb, n.Operand, precUnary)
	case *Call:
		sb.WriteString(n.Name)
		sb.WriteByte('(')
		writeList(sb, n.Args)
		sb.WriteByte(')')
	case *VarRef:
		switch n.Kind {
		case RefField:
			writeNode(sb, n.Base, precPrimary)
			sb.WriteByte('.')
			sb.WriteString(n.Name)
		case RefIndex:
			writeNode(sb, n.Base, precPrimary)
			sb.WriteByte('[')
			writeList(sb, n.Index)
			sb.WriteByte(']')
		default:
			sb.WriteString(n.Name)
		}
	case Seq:
		sb.WriteByte('[')
		writeList(sb, n)
		sb.WriteByte(']')
	default:
		fmt.Fprintf(sb, "<%T>", n)
	}
}

// writeBinary prints left and right with the minimum precedence each
// side may have without parentheses.
func writeBinary(sb *strings.Builder, left Node, op string, right Node, leftPrec, rightPrec int) {
	writeNode(sb, left, leftPrec)
	sb.WriteByte(' ')
	sb.WriteString(op)
	sb.WriteByte(' ')
	writeNode(sb, right, rightPrec)
}

func writeList(sb *strings.Builder, nodes []Node) {
	for i, n := range nodes {
		if i > 0 {
			sb.WriteString(", ")
		}
		writeNode(sb, n, 0)
	}
}

func quoteChar(r rune) string {
	switch r {
	case '\'':
		return `'\''`
	case '\\':
		return `'\\'`
	case '\n':
		return `'\n'`
	case '\f':
		return `'\f'`
	case '\r':
		return `'\r'`
	case '\b':
		return `'\b'`
	case '\v':
		return `'\v'`
	}
	return "'" + string(r) + "'"
}
