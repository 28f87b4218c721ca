package domain

// SymbolKind is the closed set of behaviours a cell can have.
type SymbolKind int

// Symbol kinds.
const (
	SymbolUnknown SymbolKind = iota
	SymbolDigit
	SymbolGoWest
	SymbolGoEast
	SymbolGoNorth
	SymbolGoSouth
	SymbolBlank
	SymbolSkip
	SymbolAdd
	SymbolSubtract
	SymbolMultiply
	SymbolDivide
	SymbolModulo
	SymbolHorizontalIf
	SymbolVerticalIf
	SymbolNot
	SymbolGreater
	SymbolRandom
	SymbolGet
	SymbolPut
	SymbolPushArg
	SymbolPeekArg
	SymbolPopArg
	SymbolOutput
	SymbolInput
)

var symbolKinds = map[int]SymbolKind{
	'<':  SymbolGoWest,
	'>':  SymbolGoEast,
	'^':  SymbolGoNorth,
	'v':  SymbolGoSouth,
	' ':  SymbolBlank,
	'#':  SymbolSkip,
	'+':  SymbolAdd,
	'-':  SymbolSubtract,
	'*':  SymbolMultiply,
	'/':  SymbolDivide,
	'%':  SymbolModulo,
	'_':  SymbolHorizontalIf,
	'|':  SymbolVerticalIf,
	'!':  SymbolNot,
	'`':  SymbolGreater,
	'?':  SymbolRandom,
	'g':  SymbolGet,
	'p':  SymbolPut,
	'\\': SymbolPushArg,
	':':  SymbolPeekArg,
	'$':  SymbolPopArg,
	',':  SymbolOutput,
	'~':  SymbolInput,
}

// Classify returns the kind of the symbol with the given code.
// The anchor '@' has no evaluation meaning and classifies as SymbolUnknown.
func Classify(code int) SymbolKind {
	if '0' <= code && code <= '9' {
		return SymbolDigit
	}
	if kind, ok := symbolKinds[code]; ok {
		return kind
	}
	return SymbolUnknown
}

// IsBinary reports whether the kind evaluates its north and south neighbours as operands.
func (k SymbolKind) IsBinary() bool {
	switch k {
	case SymbolAdd, SymbolSubtract, SymbolMultiply, SymbolDivide, SymbolModulo, SymbolGreater:
		return true
	default:
		return false
	}
}
