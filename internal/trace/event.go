package trace

import "time"

// Kind represents the type of trace event.
type Kind uint8

const (
	KindBegin Kind = iota + 1
	KindEnd
	KindPoint
)

var kindNames = [...]string{KindBegin: "begin", KindEnd: "end", KindPoint: "point"}

func (k Kind) String() string {
	if k == 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Phase is the part of a check an event belongs to.
type Phase uint8

const (
	PhaseRun   Phase = iota + 1 // one CheckFiles call
	PhaseFile                   // one source file
	PhaseLex                    // tokenizing without a parser
	PhaseParse                  // lexing and parsing a file
	PhaseSema                   // declaration checking
	PhaseDecl                   // one const, type or var declaration
)

type phaseInfo struct {
	name  string
	depth int   // text indentation
	level Level // lowest level that shows the phase
}

var phases = [...]phaseInfo{
	PhaseRun:   {"run", 0, LevelPhase},
	PhaseFile:  {"file", 1, LevelDetail},
	PhaseLex:   {"lex", 2, LevelPhase},
	PhaseParse: {"parse", 2, LevelPhase},
	PhaseSema:  {"sema", 2, LevelPhase},
	PhaseDecl:  {"decl", 3, LevelDebug},
}

func (p Phase) info() (phaseInfo, bool) {
	if p == 0 || int(p) >= len(phases) {
		return phaseInfo{name: "unknown"}, false
	}
	return phases[p], true
}

func (p Phase) String() string {
	info, _ := p.info()
	return info.name
}

// Event represents a single trace event.
type Event struct {
	Time     time.Time
	Seq      uint64 // global sequence number (monotonic)
	Kind     Kind
	Phase    Phase
	SpanID   uint64 // 0 for points
	ParentID uint64 // 0 for roots
	Name     string // file path or "const:n"; empty for passes
	Detail   string
	Extra    map[string]string
}

// Label is the phase followed by the name, if any.
func (ev *Event) Label() string {
	if ev.Name == "" {
		return ev.Phase.String()
	}
	return ev.Phase.String() + " " + ev.Name
}
