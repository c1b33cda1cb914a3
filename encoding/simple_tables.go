package encoding

// simple9Selectors is ordered by descending item count, i.e. narrowest slots first.
var simple9Selectors = selectorTable{
	{Items: 28, Bits: 1, Wasted: 0},
	{Items: 14, Bits: 2, Wasted: 0},
	{Items: 9, Bits: 3, Wasted: 1},
	{Items: 7, Bits: 4, Wasted: 0},
	{Items: 5, Bits: 5, Wasted: 3},
	{Items: 4, Bits: 7, Wasted: 0},
	{Items: 3, Bits: 9, Wasted: 1},
	{Items: 2, Bits: 14, Wasted: 0},
	{Items: 1, Bits: 28, Wasted: 0},
}

// simple16Selectors interleaves heterogeneous layouts with the Simple9 entries.
var simple16Selectors = selectorTable{
	{Items: 28, Bits: 1, Wasted: 0},
	{Items: 14, Bits: 2, Wasted: 0},
	{Items: 9, Bits: 3, Wasted: 1},
	{Items: 7, Bits: 4, Wasted: 0},
	{Items: 6, Layout: []uint8{3, 5, 5, 5, 5, 5}},
	{Items: 5, Layout: []uint8{5, 5, 6, 6, 6}},
	{Items: 5, Layout: []uint8{6, 6, 6, 5, 5}},
	{Items: 5, Layout: []uint8{4, 6, 6, 6, 6}},
	{Items: 5, Layout: []uint8{6, 6, 6, 6, 4}},
	{Items: 4, Bits: 7, Wasted: 0},
	{Items: 4, Layout: []uint8{10, 6, 6, 6}},
	{Items: 3, Bits: 9, Wasted: 1},
	{Items: 3, Layout: []uint8{8, 10, 10}},
	{Items: 3, Layout: []uint8{10, 10, 8}},
	{Items: 2, Bits: 14, Wasted: 0},
	{Items: 1, Bits: 28, Wasted: 0},
}
