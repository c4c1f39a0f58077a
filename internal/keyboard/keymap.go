package keyboard

// Modifier selects one of the four columns in keymap: the key pressed alone,
// with control, with shift, or with both.
type Modifier int

const (
	ModNone Modifier = iota
	ModCtrl
	ModShift
	ModCtrlShift
)

// Sym is a host keysym. Letters, digits, and punctuation use their own
// rune value, matching what a terminal reader hands back for a printable
// key; the handful of non-printable keys the Apple II keyboard actually
// has use the private-use-area constants below.
type Sym = rune

const (
	SymLeft  Sym = 0xE000 + iota // arrow keys have no fixed ASCII code
	SymRight
)

const (
	SymBackspace Sym = 0x08
	SymReturn    Sym = 0x0D
	SymEscape    Sym = 0x1B
	SymSpace     Sym = 0x20
)

// keymap ports reinette-II-plus-dot-py's keyctrl.py KEYMAP table: each entry
// is {no-mod, ctrl, shift, ctrl+shift}, and a cell of 0x00 means that
// modifier combination has no mapping for this key and should be skipped.
var keymap = map[Sym][4]byte{
	'a': {0xC1, 0x81, 0x00, 0x00},
	'b': {0xC2, 0x82, 0x00, 0x00},
	'c': {0xC3, 0x83, 0x00, 0x00},
	'd': {0xC4, 0x84, 0x00, 0x00},
	'e': {0xC5, 0x85, 0x00, 0x00},
	'f': {0xC6, 0x86, 0x00, 0x00},
	'g': {0xC7, 0x87, 0x00, 0x00},
	'h': {0xC8, 0x88, 0x00, 0x00},
	'i': {0xC9, 0x89, 0x00, 0x00},
	'j': {0xCA, 0x8A, 0x00, 0x00},
	'k': {0xCB, 0x8B, 0x00, 0x00},
	'l': {0xCC, 0x8C, 0x00, 0x00},
	'm': {0xCD, 0x8D, 0x00, 0x9D},
	'n': {0xCE, 0x8E, 0x00, 0x9E},
	'o': {0xCF, 0x8F, 0x00, 0x00},
	'p': {0xD0, 0x80, 0x00, 0x90},
	'q': {0xD1, 0x91, 0x00, 0x00},
	'r': {0xD2, 0x92, 0x00, 0x00},
	's': {0xD3, 0x93, 0x00, 0x00},
	't': {0xD4, 0x94, 0x00, 0x00},
	'u': {0xD5, 0x95, 0x00, 0x00},
	'v': {0xD6, 0x96, 0x00, 0x00},
	'w': {0xD7, 0x97, 0x00, 0x00},
	'x': {0xD8, 0x98, 0x00, 0x00},
	'y': {0xD9, 0x99, 0x00, 0x00},
	'z': {0xDA, 0x9A, 0x00, 0x00},

	'0': {0xB0, 0x00, 0xA9, 0x00},
	'1': {0xB1, 0x00, 0xA1, 0x00},
	'2': {0xB2, 0x00, 0xC0, 0x00},
	'3': {0xB3, 0x00, 0xA3, 0x00},
	'4': {0xB4, 0x00, 0xA4, 0x00},
	'5': {0xB5, 0x00, 0xA5, 0x00},
	'6': {0xB6, 0x00, 0xDE, 0x00},
	'7': {0xB7, 0x00, 0xA6, 0x00},
	'8': {0xB8, 0x00, 0xAA, 0x00},
	'9': {0xB9, 0x00, 0xA8, 0x00},

	'[':  {0xDB, 0x9B, 0x00, 0x00},
	'\\': {0xDC, 0x9C, 0x00, 0x00},
	']':  {0xDD, 0x9D, 0x00, 0x00},

	SymBackspace: {0x88, 0xDF, 0x00, 0x00},
	SymLeft:      {0x88, 0x00, 0x00, 0x00},
	SymRight:     {0x95, 0x00, 0x00, 0x00},
	SymSpace:     {0xA0, 0x00, 0x00, 0x00},
	SymEscape:    {0x9B, 0x00, 0x00, 0x00},
	SymReturn:    {0x8D, 0x00, 0x00, 0x00},

	'\'': {0xA7, 0x00, 0xA2, 0x00},
	'=':  {0xBD, 0x00, 0xAB, 0x00},
	';':  {0xBB, 0x00, 0xBA, 0x00},
	',':  {0xAC, 0x00, 0xBC, 0x00},
	'.':  {0xAE, 0x00, 0xBE, 0x00},
	'/':  {0xAF, 0x00, 0xBF, 0x00},
	'-':  {0xAD, 0x00, 0xDF, 0x00},
	'`':  {0xE0, 0x00, 0xFE, 0x00},
}
