package catalog

import "github.com/go-text/typesetting/language"

// Tables for Windows, following the fonts shipped with Windows 10.
var windowsTables = Tables{
	Generic: map[string][]string{
		"serif":      {"Times New Roman"},
		"sans-serif": {"Arial"},
		"monospace":  {"Consolas", "Courier New"},
		"cursive":    {"Comic Sans MS"},
		"fantasy":    {"Impact"},
	},
	Scripts: map[language.Script][]string{
		language.Common:              {"Arial", "Segoe UI"},
		language.Inherited:           {"Arial", "Segoe UI"},
		language.Latin:               {"Arial", "Segoe UI"},
		language.Cyrillic:            {"Arial", "Segoe UI"},
		language.Greek:               {"Arial", "Segoe UI"},
		language.Bopomofo:            {"Microsoft JhengHei", "PMingLiU"},
		language.Han:                 {"Microsoft YaHei", "SimSun", "SimSun-ExtB"},
		language.Hiragana:            {"Yu Gothic", "Meiryo", "MS Gothic"},
		language.Katakana:            {"Yu Gothic", "Meiryo", "MS Gothic"},
		language.Hangul:              {"Malgun Gothic", "Gulim"},
		language.Arabic:              {"Segoe UI", "Arial"},
		language.Hebrew:              {"Segoe UI", "Arial"},
		language.Syriac:              {"Estrangelo Edessa"},
		language.Thaana:              {"MV Boli"},
		language.Armenian:            {"Segoe UI", "Sylfaen"},
		language.Georgian:            {"Segoe UI", "Sylfaen"},
		language.Ethiopic:            {"Nyala", "Ebrima"},
		language.Cherokee:            {"Gadugi", "Plantagenet Cherokee"},
		language.Canadian_Aboriginal: {"Gadugi", "Euphemia"},
		language.Devanagari:          {"Nirmala UI", "Mangal"},
		language.Bengali:             {"Nirmala UI", "Vrinda"},
		language.Gurmukhi:            {"Nirmala UI", "Raavi"},
		language.Gujarati:            {"Nirmala UI", "Shruti"},
		language.Oriya:               {"Nirmala UI", "Kalinga"},
		language.Tamil:               {"Nirmala UI", "Latha"},
		language.Telugu:              {"Nirmala UI", "Gautami"},
		language.Kannada:             {"Nirmala UI", "Tunga"},
		language.Malayalam:           {"Nirmala UI", "Kartika"},
		language.Sinhala:             {"Nirmala UI", "Iskoola Pota"},
		language.Thai:                {"Leelawadee UI", "Tahoma"},
		language.Lao:                 {"Leelawadee UI", "Lao UI"},
		language.Khmer:               {"Leelawadee UI", "Khmer UI"},
		language.Tibetan:             {"Microsoft Himalaya"},
		language.Myanmar:             {"Myanmar Text"},
		language.Mongolian:           {"Mongolian Baiti"},
		language.Yi:                  {"Microsoft Yi Baiti"},
		language.Tai_Le:              {"Microsoft Tai Le"},
		language.New_Tai_Lue:         {"Microsoft New Tai Lue"},
		language.Tifinagh:            {"Ebrima"},
		language.Nko:                 {"Ebrima"},
		language.Vai:                 {"Ebrima"},
		language.Javanese:            {"Javanese Text"},
		language.Braille:             {"Segoe UI Symbol"},
	},
	Tail: []string{
		"Segoe UI Emoji",
		"Segoe UI Symbol",
		"Segoe UI Historic",
		"Cambria Math",
		"Arial Unicode MS",
	},
}
