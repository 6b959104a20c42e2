package itemize

import "sort"

// pairedChars holds pairs of punctuation characters which enclose text, each
// opening character directly followed by its closing counterpart. The table is
// sorted, thus an even index denotes an opening character.
var pairedChars = [...]rune{
	0x0028, 0x0029, // ASCII
	0x003c, 0x003e,
	0x005b, 0x005d,
	0x007b, 0x007d,
	0x00ab, 0x00bb, // guillemets
	0x0f3a, 0x0f3b, // Tibetan
	0x0f3c, 0x0f3d,
	0x169b, 0x169c, // Ogham
	0x2018, 0x2019, // general punctuation
	0x201c, 0x201d,
	0x2039, 0x203a,
	0x2045, 0x2046,
	0x207d, 0x207e,
	0x208d, 0x208e,
	0x27e6, 0x27e7, // math
	0x27e8, 0x27e9,
	0x27ea, 0x27eb,
	0x27ec, 0x27ed,
	0x27ee, 0x27ef,
	0x2983, 0x2984,
	0x2985, 0x2986,
	0x2987, 0x2988,
	0x2989, 0x298a,
	0x298b, 0x298c,
	0x298d, 0x298e,
	0x298f, 0x2990,
	0x2991, 0x2992,
	0x2993, 0x2994,
	0x2995, 0x2996,
	0x2997, 0x2998,
	0x29fc, 0x29fd,
	0x2e02, 0x2e03, // supplemental punctuation
	0x2e04, 0x2e05,
	0x2e09, 0x2e0a,
	0x2e0c, 0x2e0d,
	0x2e1c, 0x2e1d,
	0x2e20, 0x2e21,
	0x2e22, 0x2e23,
	0x2e24, 0x2e25,
	0x2e26, 0x2e27,
	0x2e28, 0x2e29,
	0x3008, 0x3009, // CJK
	0x300a, 0x300b,
	0x300c, 0x300d,
	0x300e, 0x300f,
	0x3010, 0x3011,
	0x3014, 0x3015,
	0x3016, 0x3017,
	0x3018, 0x3019,
	0x301a, 0x301b,
	0xfe59, 0xfe5a, // small form variants
	0xfe5b, 0xfe5c,
	0xfe5d, 0xfe5e,
	0xff08, 0xff09, // fullwidth forms
	0xff3b, 0xff3d,
	0xff5b, 0xff5d,
	0xff5f, 0xff60,
	0xff62, 0xff63,
}

// pairIndex returns the index of r in the table of paired characters,
// or -1.
func pairIndex(r rune) int {
	i := sort.Search(len(pairedChars), func(i int) bool {
		return pairedChars[i] >= r
	})
	if i < len(pairedChars) && pairedChars[i] == r {
		return i
	}
	return -1
}

func isOpening(pair int) bool {
	return pair&1 == 0
}
