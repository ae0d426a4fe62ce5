package symbol

// Classic fruit set used when no table file is configured.
const (
	Cherry ID = iota + 1
	Lemon
	Orange
	Plum
	Bell
	Bar
	Seven
)

var defaultSymbols = []Symbol{
	{ID: Cherry, Name: "cherry", Image: "assets/symbols/cherry.png", Blur: "assets/symbols/cherry_blur.png", Glyph: "C", Value: 5},
	{ID: Lemon, Name: "lemon", Image: "assets/symbols/lemon.png", Blur: "assets/symbols/lemon_blur.png", Glyph: "L", Value: 5},
	{ID: Orange, Name: "orange", Image: "assets/symbols/orange.png", Blur: "assets/symbols/orange_blur.png", Glyph: "O", Value: 8},
	{ID: Plum, Name: "plum", Image: "assets/symbols/plum.png", Blur: "assets/symbols/plum_blur.png", Glyph: "P", Value: 8},
	{ID: Bell, Name: "bell", Image: "assets/symbols/bell.png", Blur: "assets/symbols/bell_blur.png", Glyph: "B", Value: 15},
	{ID: Bar, Name: "bar", Image: "assets/symbols/bar.png", Blur: "assets/symbols/bar_blur.png", Glyph: "=", Value: 10},
	{ID: Seven, Name: "seven", Image: "assets/symbols/seven.png", Blur: "assets/symbols/seven_blur.png", Glyph: "7", Value: 20},
}

// Returns the built-in fruit table.
func Default() *Table {
	table, err := NewTable(defaultSymbols...)
	if err != nil {
		panic(err)
	}
	return table
}
