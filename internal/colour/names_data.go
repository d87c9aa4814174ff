package colour

// namedColors is the static reference dictionary for nearest-name lookup,
// grouped by colour family. It is read-only for the lifetime of the process.
var namedColors = []NamedColor{
	// Reds.
	{"Red", RGB{255, 0, 0}},
	{"Crimson", RGB{220, 20, 60}},
	{"Scarlet", RGB{255, 36, 0}},
	{"Ruby", RGB{224, 17, 95}},
	{"Cherry", RGB{222, 49, 99}},
	{"Brick", RGB{203, 65, 84}},
	{"Firebrick", RGB{178, 34, 34}},
	{"Cardinal", RGB{196, 30, 58}},
	{"Carmine", RGB{150, 0, 24}},
	{"Vermilion", RGB{227, 66, 52}},
	{"Tomato", RGB{255, 99, 71}},
	{"Indian Red", RGB{205, 92, 92}},
	{"Maroon", RGB{128, 0, 0}},
	{"Burgundy", RGB{128, 0, 32}},

	// Pinks.
	{"Pink", RGB{255, 192, 203}},
	{"Hot Pink", RGB{255, 105, 180}},
	{"Deep Pink", RGB{255, 20, 147}},
	{"Rose", RGB{255, 0, 127}},
	{"Salmon", RGB{250, 128, 114}},
	{"Coral Pink", RGB{248, 131, 121}},
	{"Blush", RGB{222, 93, 131}},
	{"Flamingo", RGB{252, 142, 172}},
	{"Bubblegum", RGB{255, 193, 204}},
	{"Raspberry", RGB{227, 11, 92}},
	{"Watermelon", RGB{252, 108, 133}},

	// Oranges.
	{"Orange", RGB{255, 165, 0}},
	{"Tangerine", RGB{242, 133, 0}},
	{"Coral", RGB{255, 127, 80}},
	{"Apricot", RGB{251, 206, 177}},
	{"Peach", RGB{255, 229, 180}},
	{"Amber", RGB{255, 191, 0}},
	{"Burnt Orange", RGB{204, 85, 0}},
	{"Pumpkin", RGB{255, 117, 24}},
	{"Carrot", RGB{237, 145, 33}},
	{"Persimmon", RGB{236, 88, 0}},
	{"Marigold", RGB{234, 162, 33}},

	// Yellows.
	{"Yellow", RGB{255, 255, 0}},
	{"Gold", RGB{255, 215, 0}},
	{"Lemon", RGB{255, 247, 0}},
	{"Canary", RGB{255, 239, 0}},
	{"Mustard", RGB{255, 219, 88}},
	{"Banana", RGB{255, 225, 53}},
	{"Corn", RGB{251, 236, 93}},
	{"Saffron", RGB{244, 196, 48}},
	{"Butter", RGB{255, 241, 181}},
	{"Khaki", RGB{240, 230, 140}},

	// Greens.
	{"Green", RGB{0, 128, 0}},
	{"Lime", RGB{0, 255, 0}},
	{"Forest Green", RGB{34, 139, 34}},
	{"Emerald", RGB{80, 200, 120}},
	{"Mint", RGB{152, 255, 152}},
	{"Olive", RGB{128, 128, 0}},
	{"Sage", RGB{188, 184, 138}},
	{"Jade", RGB{0, 168, 107}},
	{"Fern", RGB{113, 188, 120}},
	{"Moss", RGB{138, 154, 91}},
	{"Pine", RGB{1, 121, 111}},
	{"Hunter Green", RGB{53, 94, 59}},
	{"Chartreuse", RGB{127, 255, 0}},
	{"Sea Green", RGB{46, 139, 87}},
	{"Spring Green", RGB{0, 255, 127}},
	{"Shamrock", RGB{0, 158, 96}},
	{"Pistachio", RGB{147, 197, 114}},
	{"Avocado", RGB{86, 130, 3}},

	// Cyans and teals.
	{"Cyan", RGB{0, 255, 255}},
	{"Teal", RGB{0, 128, 128}},
	{"Turquoise", RGB{64, 224, 208}},
	{"Aquamarine", RGB{127, 255, 212}},
	{"Seafoam", RGB{159, 226, 191}},
	{"Peacock", RGB{0, 166, 147}},
	{"Cerulean", RGB{0, 123, 167}},

	// Blues.
	{"Blue", RGB{0, 0, 255}},
	{"Navy", RGB{0, 0, 128}},
	{"Royal Blue", RGB{65, 105, 225}},
	{"Azure", RGB{0, 127, 255}},
	{"Cobalt", RGB{0, 71, 171}},
	{"Sapphire", RGB{15, 82, 186}},
	{"Denim", RGB{21, 96, 189}},
	{"Steel Blue", RGB{70, 130, 180}},
	{"Powder Blue", RGB{176, 224, 230}},
	{"Baby Blue", RGB{137, 207, 240}},
	{"Sky Blue", RGB{135, 206, 235}},
	{"Periwinkle", RGB{204, 204, 255}},
	{"Midnight Blue", RGB{25, 25, 112}},
	{"Cornflower", RGB{100, 149, 237}},
	{"Prussian Blue", RGB{0, 49, 83}},
	{"Slate Blue", RGB{106, 90, 205}},

	// Purples.
	{"Purple", RGB{128, 0, 128}},
	{"Violet", RGB{143, 0, 255}},
	{"Indigo", RGB{75, 0, 130}},
	{"Lavender", RGB{230, 230, 250}},
	{"Plum", RGB{221, 160, 221}},
	{"Orchid", RGB{218, 112, 214}},
	{"Amethyst", RGB{153, 102, 204}},
	{"Mulberry", RGB{197, 75, 140}},
	{"Eggplant", RGB{97, 64, 81}},
	{"Grape", RGB{111, 45, 168}},
	{"Lilac", RGB{200, 162, 200}},
	{"Magenta", RGB{255, 0, 255}},
	{"Byzantium", RGB{112, 41, 99}},
	{"Heliotrope", RGB{223, 115, 255}},
	{"Mauve", RGB{224, 176, 255}},

	// Browns.
	{"Brown", RGB{150, 75, 0}},
	{"Chocolate", RGB{123, 63, 0}},
	{"Coffee", RGB{111, 78, 55}},
	{"Caramel", RGB{196, 132, 65}},
	{"Tan", RGB{210, 180, 140}},
	{"Beige", RGB{245, 245, 220}},
	{"Sienna", RGB{160, 82, 45}},
	{"Umber", RGB{99, 81, 71}},
	{"Chestnut", RGB{149, 69, 53}},
	{"Mahogany", RGB{192, 64, 0}},
	{"Walnut", RGB{119, 63, 26}},
	{"Sand", RGB{194, 178, 128}},
	{"Taupe", RGB{72, 60, 50}},
	{"Mocha", RGB{103, 71, 54}},

	// Whites and off-whites.
	{"White", RGB{255, 255, 255}},
	{"Snow", RGB{255, 250, 250}},
	{"Ivory", RGB{255, 255, 240}},
	{"Cream", RGB{255, 253, 208}},
	{"Linen", RGB{250, 240, 230}},
	{"Eggshell", RGB{240, 234, 214}},
	{"Vanilla", RGB{243, 229, 171}},
	{"Alabaster", RGB{237, 234, 224}},

	// Neutrals.
	{"Black", RGB{0, 0, 0}},
	{"Gray", RGB{128, 128, 128}},
	{"Charcoal", RGB{54, 69, 79}},
	{"Slate", RGB{112, 128, 144}},
	{"Ash", RGB{178, 190, 181}},
	{"Smoke", RGB{115, 130, 118}},
	{"Graphite", RGB{65, 65, 65}},
	{"Stone", RGB{133, 129, 121}},
	{"Fog", RGB{215, 215, 215}},
	{"Dove Gray", RGB{109, 109, 109}},

	// Metallics.
	{"Silver", RGB{192, 192, 192}},
	{"Bronze", RGB{205, 127, 50}},
	{"Copper", RGB{184, 115, 51}},
	{"Brass", RGB{181, 166, 66}},
	{"Platinum", RGB{229, 228, 226}},
	{"Pewter", RGB{139, 141, 142}},
	{"Rose Gold", RGB{183, 110, 121}},
	{"Gunmetal", RGB{42, 52, 57}},
	{"Steel", RGB{113, 121, 126}},
}
