package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedChar         Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexBadEscape                Code = 1005

	// Синтаксические
	SynInfo              Code = 2000
	SynInvalidToken      Code = 2001
	SynUnrecognizedToken Code = 2002
	SynUnexpectedEOF     Code = 2003
	SynExtraToken        Code = 2004

	// Семантические
	SemaInfo            Code = 3000
	SemaTypeError       Code = 3001
	SemaInvalidLimit    Code = 3002
	SemaUnresolved      Code = 3003
	SemaDivisionByZero  Code = 3004
	SemaDuplicateSymbol Code = 3005
	SemaUnknownType     Code = 3006
	SemaEmptyRange      Code = 3007

	// I/O
	IOLoadFileError Code = 4001
	IOCacheError    Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown Character",
	LexUnterminatedChar:         "Unterminated Character",
	LexUnterminatedBlockComment: "Unterminated Comment",
	LexBadNumber:                "Bad Number",
	LexBadEscape:                "Bad Escape",
	SynInfo:                     "Syntax information",
	SynInvalidToken:             "Invalid Token",
	SynUnrecognizedToken:        "Unrecognized Token",
	SynUnexpectedEOF:            "Unexpected EOF",
	SynExtraToken:               "Extra Token",
	SemaInfo:                    "Semantic information",
	SemaTypeError:               "Type Error",
	SemaInvalidLimit:            "Invalid Limit",
	SemaUnresolved:              "Unresolved Reference",
	SemaDivisionByZero:          "Division By Zero",
	SemaDuplicateSymbol:         "Duplicate Symbol",
	SemaUnknownType:             "Unknown Type",
	SemaEmptyRange:              "Empty Range",
	IOLoadFileError:             "Error",
	IOCacheError:                "Cache Error",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
