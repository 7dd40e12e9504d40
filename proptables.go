package unistr

// Curated property tables. Each table lists the code points whose property
// cannot be derived from the General Category, the script or the x/text
// tables. Entries are [first, last, property] and sorted by code point.

// asciiCategory holds the General Category of the ASCII range.
var asciiCategory = func() (t [0x80]int) {
	set := func(from, to rune, gc int) {
		for r := from; r <= to; r++ {
			t[r] = gc
		}
	}
	set(0x00, 0x1f, gcCc)
	set(' ', ' ', gcZs)
	set('!', '#', gcPo)
	set('$', '$', gcSc)
	set('%', '\'', gcPo)
	set('(', '(', gcPs)
	set(')', ')', gcPe)
	set('*', '*', gcPo)
	set('+', '+', gcSm)
	set(',', ',', gcPo)
	set('-', '-', gcPd)
	set('.', '/', gcPo)
	set('0', '9', gcNd)
	set(':', ';', gcPo)
	set('<', '>', gcSm)
	set('?', '@', gcPo)
	set('A', 'Z', gcLu)
	set('[', '[', gcPs)
	set('\\', '\\', gcPo)
	set(']', ']', gcPe)
	set('^', '^', gcSk)
	set('_', '_', gcPc)
	set('`', '`', gcSk)
	set('a', 'z', gcLl)
	set('{', '{', gcPs)
	set('|', '|', gcSm)
	set('}', '}', gcPe)
	set('~', '~', gcSm)
	set(0x7f, 0x7f, gcCc)
	return
}()

// asciiWordBreak holds the Word_Break property of the ASCII range.
var asciiWordBreak = func() (t [0x80]int) {
	for r := 'A'; r <= 'Z'; r++ {
		t[r] = prALetter
		t[r+'a'-'A'] = prALetter
	}
	for r := '0'; r <= '9'; r++ {
		t[r] = prNumeric
	}
	t['\n'] = prLF
	t['\r'] = prCR
	t[0x0b] = prNewline
	t[0x0c] = prNewline
	t[' '] = prWSegSpace
	t['"'] = prDoubleQuote
	t['\''] = prSingleQuote
	t[','] = prMidNum
	t[';'] = prMidNum
	t['.'] = prMidNumLet
	t[':'] = prMidLetter
	t['_'] = prExtendNumLet
	return
}()

// asciiLineBreak holds the Line_Break property of the ASCII range.
var asciiLineBreak = func() (t [0x80]int) {
	for r := range t {
		switch {
		case r < 0x20 || r == 0x7f:
			t[r] = prCM
		case r >= '0' && r <= '9':
			t[r] = prNU
		default:
			t[r] = prAL
		}
	}
	t['\t'] = prBA
	t['\n'] = prLF
	t[0x0b] = prBK
	t[0x0c] = prBK
	t['\r'] = prCR
	t[' '] = prSP
	t['!'] = prEX
	t['"'] = prQU
	t['$'] = prPR
	t['%'] = prPO
	t['\''] = prQU
	t['('] = prOP
	t[')'] = prCP
	t['+'] = prPR
	t[','] = prIS
	t['-'] = prHY
	t['.'] = prIS
	t['/'] = prSY
	t[':'] = prIS
	t[';'] = prIS
	t['?'] = prEX
	t['['] = prOP
	t['\\'] = prPR
	t[']'] = prCP
	t['{'] = prOP
	t['|'] = prBA
	t['}'] = prCL
	return
}()

// graphemeCodePoints lists Grapheme_Cluster_Break exceptions.
var graphemeCodePoints = [][3]int{
	{0x0d4e, 0x0d4e, prPrepend},
	{0x0e33, 0x0e33, prSpacingMark},
	{0x0eb3, 0x0eb3, prSpacingMark},
	{0x102b, 0x102c, prAny},
	{0x1038, 0x1038, prAny},
	{0x1062, 0x1064, prAny},
	{0x1067, 0x106d, prAny},
	{0x1083, 0x1083, prAny},
	{0x1087, 0x108c, prAny},
	{0x108f, 0x108f, prAny},
	{0x109a, 0x109c, prAny},
	{0x1100, 0x115f, prL},
	{0x1160, 0x11a7, prV},
	{0x11a8, 0x11ff, prT},
	{0x1a61, 0x1a61, prAny},
	{0x1a63, 0x1a64, prAny},
	{0x200c, 0x200c, prExtend},
	{0x200d, 0x200d, prZWJ},
	{0xa960, 0xa97c, prL},
	{0xaa7b, 0xaa7b, prAny},
	{0xaa7d, 0xaa7d, prAny},
	{0xd7b0, 0xd7c6, prV},
	{0xd7cb, 0xd7fb, prT},
	{0xff9e, 0xff9f, prExtend},
	{0x111c2, 0x111c3, prPrepend},
	{0x1193f, 0x1193f, prPrepend},
	{0x11941, 0x11941, prPrepend},
	{0x11a3a, 0x11a3a, prPrepend},
	{0x11a84, 0x11a89, prPrepend},
	{0x11d46, 0x11d46, prPrepend},
	{0x1f1e6, 0x1f1ff, prRegionalIndicator},
	{0x1f3fb, 0x1f3ff, prExtend},
	{0xe0020, 0xe007f, prExtend},
}

// wordCodePoints lists Word_Break exceptions outside ASCII.
var wordCodePoints = [][3]int{
	{0x0085, 0x0085, prNewline},
	{0x00b7, 0x00b7, prMidLetter},
	{0x02c2, 0x02c5, prALetter},
	{0x02d2, 0x02d7, prALetter},
	{0x02de, 0x02df, prALetter},
	{0x02e5, 0x02eb, prALetter},
	{0x02ed, 0x02ed, prALetter},
	{0x02ef, 0x02ff, prALetter},
	{0x037e, 0x037e, prMidNum},
	{0x0387, 0x0387, prMidLetter},
	{0x055a, 0x055c, prALetter},
	{0x055e, 0x055e, prALetter},
	{0x055f, 0x055f, prMidLetter},
	{0x0589, 0x0589, prMidNum},
	{0x058a, 0x058a, prALetter},
	{0x05f3, 0x05f3, prALetter},
	{0x05f4, 0x05f4, prMidLetter},
	{0x060c, 0x060d, prMidNum},
	{0x066b, 0x066b, prNumeric},
	{0x066c, 0x066c, prMidNum},
	{0x07f8, 0x07f8, prMidNum},
	{0x1680, 0x1680, prWSegSpace},
	{0x2000, 0x2006, prWSegSpace},
	{0x2008, 0x200a, prWSegSpace},
	{0x200b, 0x200b, prAny},
	{0x200c, 0x200c, prExtend},
	{0x200d, 0x200d, prZWJ},
	{0x2018, 0x2019, prMidNumLet},
	{0x2024, 0x2024, prMidNumLet},
	{0x2027, 0x2027, prMidLetter},
	{0x2028, 0x2029, prNewline},
	{0x202f, 0x202f, prExtendNumLet},
	{0x2044, 0x2044, prMidNum},
	{0x205f, 0x205f, prWSegSpace},
	{0x3000, 0x3000, prWSegSpace},
	{0x3031, 0x3035, prKatakana},
	{0x309b, 0x309c, prKatakana},
	{0x30a0, 0x30a0, prKatakana},
	{0x30fc, 0x30fc, prKatakana},
	{0xfe10, 0xfe10, prMidNum},
	{0xfe13, 0xfe13, prMidLetter},
	{0xfe14, 0xfe14, prMidNum},
	{0xfe50, 0xfe50, prMidNum},
	{0xfe52, 0xfe52, prMidNumLet},
	{0xfe54, 0xfe54, prMidNum},
	{0xfe55, 0xfe55, prMidLetter},
	{0xff07, 0xff07, prMidNumLet},
	{0xff0c, 0xff0c, prMidNum},
	{0xff0e, 0xff0e, prMidNumLet},
	{0xff1a, 0xff1a, prMidLetter},
	{0xff1b, 0xff1b, prMidNum},
	{0xff70, 0xff70, prKatakana},
	{0xff9e, 0xff9f, prExtend},
	{0x1f1e6, 0x1f1ff, prRegionalIndicator},
	{0x1f3fb, 0x1f3ff, prExtend},
	{0xe0020, 0xe007f, prExtend},
}

// lineBreakCodePoints lists Line_Break exceptions outside ASCII.
var lineBreakCodePoints = [][3]int{
	{0x0085, 0x0085, prNL},
	{0x00a0, 0x00a0, prGL},
	{0x00a1, 0x00a1, prOP},
	{0x00a2, 0x00a2, prPO},
	{0x00ad, 0x00ad, prBA},
	{0x00b0, 0x00b0, prPO},
	{0x00b1, 0x00b1, prPR},
	{0x00b4, 0x00b4, prBB},
	{0x00bf, 0x00bf, prOP},
	{0x02c8, 0x02c8, prBB},
	{0x02cc, 0x02cc, prBB},
	{0x02df, 0x02df, prBB},
	{0x034f, 0x034f, prGL},
	{0x037e, 0x037e, prIS},
	{0x0589, 0x0589, prIS},
	{0x058a, 0x058a, prBA},
	{0x05be, 0x05be, prBA},
	{0x05c6, 0x05c6, prEX},
	{0x060c, 0x060d, prIS},
	{0x061b, 0x061b, prEX},
	{0x061d, 0x061f, prEX},
	{0x066a, 0x066a, prPO},
	{0x06d4, 0x06d4, prEX},
	{0x07f8, 0x07f8, prIS},
	{0x07f9, 0x07f9, prEX},
	{0x0964, 0x0965, prBA},
	{0x0e5a, 0x0e5b, prBA},
	{0x0f08, 0x0f08, prGL},
	{0x0f0b, 0x0f0b, prBA},
	{0x0f0c, 0x0f0c, prGL},
	{0x0f12, 0x0f12, prGL},
	{0x1100, 0x115f, prJL},
	{0x1160, 0x11a7, prJV},
	{0x11a8, 0x11ff, prJT},
	{0x1361, 0x1361, prBA},
	{0x1680, 0x1680, prBA},
	{0x17d4, 0x17d5, prBA},
	{0x17d6, 0x17d6, prNS},
	{0x1802, 0x1803, prEX},
	{0x1804, 0x1805, prBA},
	{0x1806, 0x1806, prBB},
	{0x1808, 0x1809, prEX},
	{0x180e, 0x180e, prGL},
	{0x1ffd, 0x1ffd, prBB},
	{0x2000, 0x2006, prBA},
	{0x2007, 0x2007, prGL},
	{0x2008, 0x200a, prBA},
	{0x200b, 0x200b, prZW},
	{0x200c, 0x200c, prCM},
	{0x200d, 0x200d, prZWJ},
	{0x2010, 0x2010, prBA},
	{0x2011, 0x2011, prGL},
	{0x2012, 0x2013, prBA},
	{0x2014, 0x2014, prB2},
	{0x2024, 0x2026, prIN},
	{0x2027, 0x2027, prBA},
	{0x202f, 0x202f, prGL},
	{0x2030, 0x2037, prPO},
	{0x203c, 0x203d, prNS},
	{0x2044, 0x2044, prIS},
	{0x2047, 0x2049, prNS},
	{0x2060, 0x2060, prWJ},
	{0x20a7, 0x20a7, prPO},
	{0x20b6, 0x20b6, prPO},
	{0x20bb, 0x20bb, prPO},
	{0x20be, 0x20be, prPO},
	{0x2103, 0x2103, prPO},
	{0x2109, 0x2109, prPO},
	{0x2116, 0x2116, prPR},
	{0x2212, 0x2213, prPR},
	{0x22ef, 0x22ef, prIN},
	{0x261d, 0x261d, prEB},
	{0x26f9, 0x26f9, prEB},
	{0x270a, 0x270d, prEB},
	{0x2e3a, 0x2e3b, prB2},
	{0x3001, 0x3002, prCL},
	{0x3005, 0x3005, prNS},
	{0x301c, 0x301c, prNS},
	{0x303b, 0x303c, prNS},
	{0x3041, 0x3041, prCJ},
	{0x3043, 0x3043, prCJ},
	{0x3045, 0x3045, prCJ},
	{0x3047, 0x3047, prCJ},
	{0x3049, 0x3049, prCJ},
	{0x3063, 0x3063, prCJ},
	{0x3083, 0x3083, prCJ},
	{0x3085, 0x3085, prCJ},
	{0x3087, 0x3087, prCJ},
	{0x308e, 0x308e, prCJ},
	{0x3095, 0x3096, prCJ},
	{0x309b, 0x309e, prNS},
	{0x30a0, 0x30a0, prNS},
	{0x30a1, 0x30a1, prCJ},
	{0x30a3, 0x30a3, prCJ},
	{0x30a5, 0x30a5, prCJ},
	{0x30a7, 0x30a7, prCJ},
	{0x30a9, 0x30a9, prCJ},
	{0x30c3, 0x30c3, prCJ},
	{0x30e3, 0x30e3, prCJ},
	{0x30e5, 0x30e5, prCJ},
	{0x30e7, 0x30e7, prCJ},
	{0x30ee, 0x30ee, prCJ},
	{0x30f5, 0x30f6, prCJ},
	{0x30fb, 0x30fb, prNS},
	{0x30fc, 0x30fc, prCJ},
	{0x30fd, 0x30fe, prNS},
	{0x31f0, 0x31ff, prCJ},
	{0xa015, 0xa015, prNS},
	{0xa960, 0xa97c, prJL},
	{0xd7b0, 0xd7c6, prJV},
	{0xd7cb, 0xd7fb, prJT},
	{0xfe10, 0xfe10, prIS},
	{0xfe11, 0xfe12, prCL},
	{0xfe13, 0xfe14, prIS},
	{0xfe15, 0xfe16, prEX},
	{0xfe19, 0xfe19, prIN},
	{0xfe50, 0xfe50, prCL},
	{0xfe52, 0xfe52, prCL},
	{0xfe54, 0xfe55, prNS},
	{0xfe56, 0xfe57, prEX},
	{0xfe69, 0xfe69, prPR},
	{0xfe6a, 0xfe6a, prPO},
	{0xfeff, 0xfeff, prWJ},
	{0xff01, 0xff01, prEX},
	{0xff04, 0xff04, prPR},
	{0xff05, 0xff05, prPO},
	{0xff0c, 0xff0c, prCL},
	{0xff0e, 0xff0e, prCL},
	{0xff1a, 0xff1b, prNS},
	{0xff1f, 0xff1f, prEX},
	{0xff61, 0xff61, prCL},
	{0xff64, 0xff64, prCL},
	{0xff65, 0xff65, prNS},
	{0xff67, 0xff70, prCJ},
	{0xff9e, 0xff9f, prNS},
	{0xffe0, 0xffe0, prPO},
	{0xffe1, 0xffe1, prPR},
	{0xffe5, 0xffe6, prPR},
	{0xfffc, 0xfffc, prCB},
	{0x1f1e6, 0x1f1ff, prRI},
	{0x1f385, 0x1f385, prEB},
	{0x1f3c2, 0x1f3c4, prEB},
	{0x1f3c7, 0x1f3c7, prEB},
	{0x1f3ca, 0x1f3cc, prEB},
	{0x1f3fb, 0x1f3ff, prEM},
	{0x1f442, 0x1f443, prEB},
	{0x1f446, 0x1f450, prEB},
	{0x1f466, 0x1f478, prEB},
	{0x1f47c, 0x1f47c, prEB},
	{0x1f481, 0x1f483, prEB},
	{0x1f485, 0x1f487, prEB},
	{0x1f4aa, 0x1f4aa, prEB},
	{0x1f574, 0x1f575, prEB},
	{0x1f57a, 0x1f57a, prEB},
	{0x1f590, 0x1f590, prEB},
	{0x1f595, 0x1f596, prEB},
	{0x1f645, 0x1f647, prEB},
	{0x1f64b, 0x1f64f, prEB},
	{0x1f6a3, 0x1f6a3, prEB},
	{0x1f6b4, 0x1f6b6, prEB},
	{0x1f6c0, 0x1f6c0, prEB},
	{0x1f6cc, 0x1f6cc, prEB},
	{0x1f90c, 0x1f90c, prEB},
	{0x1f90f, 0x1f90f, prEB},
	{0x1f918, 0x1f91f, prEB},
	{0x1f926, 0x1f926, prEB},
	{0x1f930, 0x1f939, prEB},
	{0x1f93c, 0x1f93e, prEB},
	{0x1f977, 0x1f977, prEB},
	{0x1f9b5, 0x1f9b6, prEB},
	{0x1f9b8, 0x1f9b9, prEB},
	{0x1f9bb, 0x1f9bb, prEB},
	{0x1f9cd, 0x1f9cf, prEB},
	{0x1f9d1, 0x1f9dd, prEB},
	{0xe0001, 0xe0001, prCM},
	{0xe0020, 0xe007f, prCM},
}

// extendedPictographicCodePoints lists the Extended_Pictographic code points.
var extendedPictographicCodePoints = [][3]int{
	{0x00a9, 0x00a9, prExtendedPictographic},
	{0x00ae, 0x00ae, prExtendedPictographic},
	{0x203c, 0x203c, prExtendedPictographic},
	{0x2049, 0x2049, prExtendedPictographic},
	{0x2122, 0x2122, prExtendedPictographic},
	{0x2139, 0x2139, prExtendedPictographic},
	{0x2194, 0x2199, prExtendedPictographic},
	{0x21a9, 0x21aa, prExtendedPictographic},
	{0x231a, 0x231b, prExtendedPictographic},
	{0x2328, 0x2328, prExtendedPictographic},
	{0x2388, 0x2388, prExtendedPictographic},
	{0x23cf, 0x23cf, prExtendedPictographic},
	{0x23e9, 0x23f3, prExtendedPictographic},
	{0x23f8, 0x23fa, prExtendedPictographic},
	{0x24c2, 0x24c2, prExtendedPictographic},
	{0x25aa, 0x25ab, prExtendedPictographic},
	{0x25b6, 0x25b6, prExtendedPictographic},
	{0x25c0, 0x25c0, prExtendedPictographic},
	{0x25fb, 0x25fe, prExtendedPictographic},
	{0x2600, 0x2605, prExtendedPictographic},
	{0x2607, 0x2612, prExtendedPictographic},
	{0x2614, 0x2685, prExtendedPictographic},
	{0x2690, 0x2705, prExtendedPictographic},
	{0x2708, 0x2712, prExtendedPictographic},
	{0x2714, 0x2714, prExtendedPictographic},
	{0x2716, 0x2716, prExtendedPictographic},
	{0x271d, 0x271d, prExtendedPictographic},
	{0x2721, 0x2721, prExtendedPictographic},
	{0x2728, 0x2728, prExtendedPictographic},
	{0x2733, 0x2734, prExtendedPictographic},
	{0x2744, 0x2744, prExtendedPictographic},
	{0x2747, 0x2747, prExtendedPictographic},
	{0x274c, 0x274c, prExtendedPictographic},
	{0x274e, 0x274e, prExtendedPictographic},
	{0x2753, 0x2755, prExtendedPictographic},
	{0x2757, 0x2757, prExtendedPictographic},
	{0x2763, 0x2767, prExtendedPictographic},
	{0x2795, 0x2797, prExtendedPictographic},
	{0x27a1, 0x27a1, prExtendedPictographic},
	{0x27b0, 0x27b0, prExtendedPictographic},
	{0x27bf, 0x27bf, prExtendedPictographic},
	{0x2934, 0x2935, prExtendedPictographic},
	{0x2b05, 0x2b07, prExtendedPictographic},
	{0x2b1b, 0x2b1c, prExtendedPictographic},
	{0x2b50, 0x2b50, prExtendedPictographic},
	{0x2b55, 0x2b55, prExtendedPictographic},
	{0x3030, 0x3030, prExtendedPictographic},
	{0x303d, 0x303d, prExtendedPictographic},
	{0x3297, 0x3297, prExtendedPictographic},
	{0x3299, 0x3299, prExtendedPictographic},
	{0x1f000, 0x1f0ff, prExtendedPictographic},
	{0x1f10d, 0x1f10f, prExtendedPictographic},
	{0x1f12f, 0x1f12f, prExtendedPictographic},
	{0x1f16c, 0x1f171, prExtendedPictographic},
	{0x1f17e, 0x1f17f, prExtendedPictographic},
	{0x1f18e, 0x1f18e, prExtendedPictographic},
	{0x1f191, 0x1f19a, prExtendedPictographic},
	{0x1f1ad, 0x1f1e5, prExtendedPictographic},
	{0x1f201, 0x1f20f, prExtendedPictographic},
	{0x1f21a, 0x1f21a, prExtendedPictographic},
	{0x1f22f, 0x1f22f, prExtendedPictographic},
	{0x1f232, 0x1f23a, prExtendedPictographic},
	{0x1f23c, 0x1f23f, prExtendedPictographic},
	{0x1f249, 0x1f3fa, prExtendedPictographic},
	{0x1f400, 0x1f53d, prExtendedPictographic},
	{0x1f546, 0x1f64f, prExtendedPictographic},
	{0x1f680, 0x1f6ff, prExtendedPictographic},
	{0x1f774, 0x1f77f, prExtendedPictographic},
	{0x1f7d5, 0x1f7ff, prExtendedPictographic},
	{0x1f80c, 0x1f80f, prExtendedPictographic},
	{0x1f848, 0x1f84f, prExtendedPictographic},
	{0x1f85a, 0x1f85f, prExtendedPictographic},
	{0x1f888, 0x1f88f, prExtendedPictographic},
	{0x1f8ae, 0x1f8ff, prExtendedPictographic},
	{0x1f90c, 0x1f93a, prExtendedPictographic},
	{0x1f93c, 0x1f945, prExtendedPictographic},
	{0x1f947, 0x1faff, prExtendedPictographic},
	{0x1fc00, 0x1fffd, prExtendedPictographic},
}
