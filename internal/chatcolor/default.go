package chatcolor

// Default returns the in-game chat palette. Each token is the control byte
// equal to the color's ordinal; \x01 restores the default (white) color.
func Default(options ...Option) *Table {
	t, err := NewTable(defaultEntries, options...)
	if err != nil {
		panic(err)
	}
	return t
}

var defaultEntries = []Entry{
	{ID: 1, Name: "WHITE", Token: "\x01", RGB: RGB{255, 255, 255}},
	{ID: 2, Name: "DARKRED", Token: "\x02", RGB: RGB{255, 0, 0}},
	{ID: 3, Name: "TEAM", Token: "\x03", RGB: RGB{185, 128, 239}},
	{ID: 4, Name: "GREEN", Token: "\x04", RGB: RGB{64, 255, 64}},
	{ID: 5, Name: "LIGHTGREEN", Token: "\x05", RGB: RGB{191, 255, 144}},
	{ID: 6, Name: "LIME", Token: "\x06", RGB: RGB{162, 255, 71}},
	{ID: 7, Name: "RED", Token: "\x07", RGB: RGB{255, 64, 64}},
	{ID: 8, Name: "GRAY", Token: "\x08", RGB: RGB{197, 202, 208}},
	{ID: 9, Name: "YELLOW", Token: "\x09", RGB: RGB{237, 228, 122}},
	{ID: 10, Name: "LIGHTBLUE", Token: "\x0a", RGB: RGB{176, 195, 217}},
	{ID: 11, Name: "BLUE", Token: "\x0b", RGB: RGB{94, 152, 217}},
	{ID: 12, Name: "DARKBLUE", Token: "\x0c", RGB: RGB{75, 105, 255}},
	{ID: 13, Name: "PURPLE", Token: "\x0d", RGB: RGB{136, 71, 255}},
	{ID: 14, Name: "ORCHID", Token: "\x0e", RGB: RGB{211, 44, 230}},
	{ID: 15, Name: "LIGHTRED", Token: "\x0f", RGB: RGB{235, 75, 75}},
	{ID: 16, Name: "GOLD", Token: "\x10", RGB: RGB{228, 174, 57}},
}
