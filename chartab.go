package pentacodec

import "sync"

// Penta code space. Pentas 1..29 are 5-bit; pentas 960..1023 (0x3C0..0x400)
// are 10-bit. Penta 0 is the empty symbol. Pentas 30 and 31 are reserved
// escapes: they never name a character and instead mark "the next 5 bits
// continue this code, making it 10-bit".
const (
	pentaEmpty    = 0
	pentaEscLow   = 30
	pentaEscHigh  = 31
	pentaTenBase  = 0x3C0 // 960
	pentaTenLimit = 0x400 // 1024, exclusive
	pentaDot      = 27
	pentaSlash    = 28
	pentaDollar   = 29

	plenIneligible = 64 // sentinel: character has no penta assignment
)

// charTable is the immutable, process-wide bidirectional mapping between
// ASCII code points and penta codes. Built once by initCharTable and never
// mutated afterward, so concurrent readers need no synchronization.
type charTable struct {
	penta  [128]uint16  // ASCII code -> penta code (0 if ineligible)
	plen   [128]uint8   // ASCII code -> bit length of penta[c] (64 if ineligible)
	charOf [1024]uint16 // penta code -> ASCII code (0 if unused)
}

var (
	tables     charTable
	tablesOnce sync.Once
)

// table returns the shared, fully-initialized character table, building it
// on first use.
func table() *charTable {
	tablesOnce.Do(func() {
		initCharTable(&tables)
	})
	return &tables
}

// initCharTable populates t following the character-table initialization
// algorithm: A-Z and '.', '/', '$' get fixed 5-bit pentas, then every
// remaining printable ASCII character except the quote characters gets the
// next available 10-bit penta starting at 0x3C0.
//
// Panics if the final 10-bit cursor does not land exactly on 0x400 -- that
// would mean the table definition itself is wrong (a printable character
// was skipped or double-assigned), which is a build-time bug, not a
// runtime condition.
func initCharTable(t *charTable) {
	for c := range t.plen {
		t.plen[c] = plenIneligible
	}

	assign := func(c byte, penta uint16) {
		t.penta[c] = penta
		t.plen[c] = 5
		t.charOf[penta] = uint16(c)
	}
	for c := byte('A'); c <= 'Z'; c++ {
		assign(c, uint16(c-'A'+1))
	}
	assign('.', pentaDot)
	assign('/', pentaSlash)
	assign('$', pentaDollar)

	next := uint16(pentaTenBase)
	for c := 32; c <= 126; c++ {
		if t.penta[c] != 0 {
			continue
		}
		if c == '\'' || c == '`' {
			continue
		}
		t.penta[c] = next
		t.plen[c] = 10
		t.charOf[next] = uint16(c)
		next++
	}
	if next != pentaTenLimit {
		panic("pentacodec: character table initialization did not fill the 10-bit penta range exactly")
	}
}
