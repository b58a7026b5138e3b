package term

// Kind identifies which of the six term variants a Term is.
type Kind uint8

const (
	KindApplication Kind = iota
	KindInteger
	KindLambda
	KindString
	KindSymbol
	KindVariable
)

func (k Kind) String() string {
	switch k {
	case KindApplication:
		return "Application"
	case KindInteger:
		return "Integer"
	case KindLambda:
		return "Lambda"
	case KindString:
		return "String"
	case KindSymbol:
		return "Symbol"
	case KindVariable:
		return "Variable"
	default:
		return "Unknown"
	}
}

// maxRefcount is the saturation point of the reference counter. Reaching it
// means the same term is aliased by more handles than the counter can ever
// represent again, which can only happen through runaway cloning; it is
// treated as a fatal condition rather than silently wrapping.
const maxRefcount = ^uint32(0)

// Header is the fixed-size bookkeeping every term carries: its kind, a cache
// of its small free De Bruijn indices, and a handle count.
//
// The actual storage backing a term is reclaimed by the Go garbage
// collector, not by this counter; it exists so the reference-counting
// discipline of the original design (and its overflow behaviour) has a
// faithful, testable analogue here.
type Header struct {
	kind     Kind
	cache    Cache
	refcount uint32
}

// Kind reports which term variant this header belongs to.
func (h *Header) Kind() Kind { return h.kind }

// DeBruijnCache returns the header's free-index cache.
func (h *Header) DeBruijnCache() Cache { return h.cache }

func (h *Header) retain() {
	if h.refcount == maxRefcount {
		panic("term: refcount overflow")
	}
	h.refcount++
}

func (h *Header) release() {
	if h.refcount == 0 {
		panic("term: refcount underflow")
	}
	h.refcount--
}

// Refcount reports the current handle count, for diagnostics and tests.
func (h *Header) Refcount() uint32 { return h.refcount }
