package types

import "fmt"

// Kind enumerates the shapes a Type can take.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindInteger
	KindReal
	KindBoolean
	KindChar
	KindSet
	KindArray
	KindRecord
	KindEnum
	KindRange
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindInteger:
		return "integer"
	case KindReal:
		return "real"
	case KindBoolean:
		return "boolean"
	case KindChar:
		return "char"
	case KindSet:
		return "set"
	case KindArray:
		return "array"
	case KindRecord:
		return "record"
	case KindEnum:
		return "enum"
	case KindRange:
		return "range"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}
