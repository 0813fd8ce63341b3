package life

// Pattern is a named, immutable 2-D template placed onto the board at the
// top-left corner. Rows may be ragged; missing cells count as dead.
type Pattern struct {
	Name  string
	Cells [][]uint8
}

// The classic seed menu. These ship compiled in so a session works without
// any pattern file on disk.
var builtins = map[string][][]uint8{
	"Block": {
		{1, 1},
		{1, 1},
	},
	"Beehive": {
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 1, 0},
	},
	"Loaf": {
		{0, 1, 1, 0},
		{1, 0, 0, 1},
		{0, 1, 0, 1},
		{0, 0, 1, 0},
	},
	"Boat": {
		{1, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	},
	"Tub": {
		{0, 1, 0},
		{1, 0, 1},
		{0, 1, 0},
	},
	"Blinker": {
		{1, 1, 1},
	},
	"Toad": {
		{0, 1, 1, 1},
		{1, 1, 1, 0},
	},
	"Beacon": {
		{1, 1, 0, 0},
		{1, 1, 0, 0},
		{0, 0, 1, 1},
		{0, 0, 1, 1},
	},
	"Glider": {
		{0, 1, 0},
		{0, 0, 1},
		{1, 1, 1},
	},
}

// Builtin returns the compiled-in pattern with the given name.
func Builtin(name string) (Pattern, bool) {
	cells, ok := builtins[name]
	if !ok {
		return Pattern{}, false
	}
	return Pattern{Name: name, Cells: cells}, true
}
