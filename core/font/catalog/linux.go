package catalog

import "github.com/go-text/typesetting/language"

// Tables for Linux. Families are taken from the Noto, DejaVu and Lohit
// collections most distributions install by default.
var linuxTables = Tables{
	Generic: map[string][]string{
		"serif":      {"DejaVu Serif", "Liberation Serif", "Noto Serif", "FreeSerif"},
		"sans-serif": {"DejaVu Sans", "Liberation Sans", "Noto Sans", "FreeSans"},
		"monospace":  {"DejaVu Sans Mono", "Liberation Mono", "Noto Sans Mono", "FreeMono"},
		"cursive":    {"URW Chancery L", "Z003"},
		"fantasy":    {"Impact", "URW Bookman"},
	},
	Scripts: map[language.Script][]string{
		language.Common:              {"DejaVu Sans", "Noto Sans"},
		language.Inherited:           {"DejaVu Sans", "Noto Sans"},
		language.Latin:               {"DejaVu Sans", "Noto Sans"},
		language.Cyrillic:            {"DejaVu Sans", "Noto Sans"},
		language.Greek:               {"DejaVu Sans", "Noto Sans"},
		language.Bopomofo:            {"Noto Sans CJK TC", "AR PL UMing TW"},
		language.Han:                 {"Noto Sans CJK SC", "WenQuanYi Zen Hei"},
		language.Hiragana:            {"Noto Sans CJK JP", "IPAGothic"},
		language.Katakana:            {"Noto Sans CJK JP", "IPAGothic"},
		language.Hangul:              {"Noto Sans CJK KR", "NanumGothic"},
		language.Arabic:              {"Noto Sans Arabic", "Noto Naskh Arabic", "DejaVu Sans"},
		language.Hebrew:              {"Noto Sans Hebrew", "DejaVu Sans"},
		language.Syriac:              {"Noto Sans Syriac"},
		language.Thaana:              {"Noto Sans Thaana"},
		language.Armenian:            {"Noto Sans Armenian", "DejaVu Sans"},
		language.Georgian:            {"Noto Sans Georgian", "DejaVu Sans"},
		language.Ethiopic:            {"Noto Sans Ethiopic", "Abyssinica SIL"},
		language.Cherokee:            {"Noto Sans Cherokee"},
		language.Canadian_Aboriginal: {"Noto Sans Canadian Aboriginal"},
		language.Devanagari:          {"Noto Sans Devanagari", "Lohit Devanagari"},
		language.Bengali:             {"Noto Sans Bengali", "Lohit Bengali"},
		language.Gurmukhi:            {"Noto Sans Gurmukhi", "Lohit Gurmukhi"},
		language.Gujarati:            {"Noto Sans Gujarati", "Lohit Gujarati"},
		language.Oriya:               {"Noto Sans Oriya", "Lohit Odia"},
		language.Tamil:               {"Noto Sans Tamil", "Lohit Tamil"},
		language.Telugu:              {"Noto Sans Telugu", "Lohit Telugu"},
		language.Kannada:             {"Noto Sans Kannada", "Lohit Kannada"},
		language.Malayalam:           {"Noto Sans Malayalam", "Lohit Malayalam"},
		language.Sinhala:             {"Noto Sans Sinhala", "LKLUG"},
		language.Thai:                {"Noto Sans Thai", "Loma", "Garuda"},
		language.Lao:                 {"Noto Sans Lao", "Phetsarath OT"},
		language.Tibetan:             {"Noto Serif Tibetan", "Jomolhari"},
		language.Myanmar:             {"Noto Sans Myanmar", "Padauk"},
		language.Khmer:               {"Noto Sans Khmer", "Khmer OS"},
		language.Mongolian:           {"Noto Sans Mongolian"},
		language.Yi:                  {"Noto Sans Yi"},
		language.Tifinagh:            {"Noto Sans Tifinagh"},
		language.Nko:                 {"Noto Sans NKo"},
		language.Vai:                 {"Noto Sans Vai"},
		language.Javanese:            {"Noto Sans Javanese"},
		language.Balinese:            {"Noto Sans Balinese"},
		language.Runic:               {"Noto Sans Runic"},
		language.Ogham:               {"Noto Sans Ogham"},
		language.Braille:             {"DejaVu Sans"},
	},
	Tail: []string{
		"Noto Color Emoji",
		"Noto Sans Symbols",
		"Noto Sans Symbols2",
		"Noto Sans Math",
		"DejaVu Sans",
		"Noto Sans CJK JP",
		"Unifont",
	},
}
