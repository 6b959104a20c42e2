package catalog

import "github.com/go-text/typesetting/language"

// Tables for macOS. Per-script fallbacks follow the choices Firefox makes
// on macOS (see gfxPlatformMac::GetCommonFallbackFonts).
var macTables = Tables{
	Generic: map[string][]string{
		"serif":      {"Times", "Times New Roman"},
		"sans-serif": {"Helvetica", "Arial"},
		"monospace":  {"Menlo"},
		"cursive":    {"Apple Chancery"},
		"fantasy":    {"Papyrus"},
	},
	Scripts: map[language.Script][]string{
		language.Common:                 {"Lucida Grande"},
		language.Inherited:              {"Lucida Grande"},
		language.Latin:                  {"Lucida Grande"},
		language.Cyrillic:               {"Lucida Grande"},
		language.Greek:                  {"Lucida Grande"},
		language.Bopomofo:               {"Songti SC", "SimSun-ExtB"},
		language.Han:                    {"Songti SC", "SimSun-ExtB"},
		language.Hiragana:               {"Hiragino Sans", "Hiragino Kaku Gothic ProN"},
		language.Katakana:               {"Hiragino Sans", "Hiragino Kaku Gothic ProN"},
		language.Hangul:                 {"Nanum Gothic", "Apple SD Gothic Neo"},
		language.Arabic:                 {"Geeza Pro"},
		language.Armenian:               {"Mshtakan"},
		language.Bengali:                {"Bangla Sangam MN"},
		language.Cherokee:               {"Plantagenet Cherokee"},
		language.Coptic:                 {"Noto Sans Coptic"},
		language.Deseret:                {"Baskerville"},
		language.Devanagari:             {"Devanagari Sangam MN"},
		language.Ethiopic:               {"Kefa"},
		language.Georgian:               {"Helvetica"},
		language.Gothic:                 {"Noto Sans Gothic"},
		language.Gujarati:               {"Gujarati Sangam MN"},
		language.Gurmukhi:               {"Gurmukhi MN"},
		language.Hebrew:                 {"Lucida Grande"},
		language.Kannada:                {"Kannada MN"},
		language.Khmer:                  {"Khmer MN"},
		language.Lao:                    {"Lao MN"},
		language.Malayalam:              {"Malayalam Sangam MN"},
		language.Mongolian:              {"Noto Sans Mongolian"},
		language.Myanmar:                {"Myanmar MN"},
		language.Ogham:                  {"Noto Sans Ogham"},
		language.Old_Italic:             {"Noto Sans Old Italic"},
		language.Oriya:                  {"Oriya Sangam MN"},
		language.Runic:                  {"Noto Sans Runic"},
		language.Sinhala:                {"Sinhala Sangam MN"},
		language.Syriac:                 {"Noto Sans Syriac"},
		language.Tamil:                  {"Tamil MN"},
		language.Telugu:                 {"Telugu MN"},
		language.Thaana:                 {"Noto Sans Thaana"},
		language.Thai:                   {"Thonburi"},
		language.Tibetan:                {"Kailasa"},
		language.Canadian_Aboriginal:    {"Euphemia UCAS"},
		language.Yi:                     {"Noto Sans Yi", "STHeiti"},
		language.Tagalog:                {"Noto Sans Tagalog"},
		language.Hanunoo:                {"Noto Sans Hanunoo"},
		language.Buhid:                  {"Noto Sans Buhid"},
		language.Tagbanwa:               {"Noto Sans Tagbanwa"},
		language.Braille:                {"Apple Braille"},
		language.Cypriot:                {"Noto Sans Cypriot"},
		language.Limbu:                  {"Noto Sans Limbu"},
		language.Linear_B:               {"Noto Sans Linear B"},
		language.Osmanya:                {"Noto Sans Osmanya"},
		language.Shavian:                {"Noto Sans Shavian"},
		language.Tai_Le:                 {"Noto Sans Tai Le"},
		language.Ugaritic:               {"Noto Sans Ugaritic"},
		language.Buginese:               {"Noto Sans Buginese"},
		language.Glagolitic:             {"Noto Sans Glagolitic"},
		language.Kharoshthi:             {"Noto Sans Kharoshthi"},
		language.Syloti_Nagri:           {"Noto Sans Syloti Nagri"},
		language.New_Tai_Lue:            {"Noto Sans New Tai Lue"},
		language.Tifinagh:               {"Noto Sans Tifinagh"},
		language.Old_Persian:            {"Noto Sans Old Persian"},
		language.Balinese:               {"Noto Sans Balinese"},
		language.Batak:                  {"Noto Sans Batak"},
		language.Brahmi:                 {"Noto Sans Brahmi"},
		language.Cham:                   {"Noto Sans Cham"},
		language.Egyptian_Hieroglyphs:   {"Noto Sans Egyptian Hieroglyphs"},
		language.Pahawh_Hmong:           {"Noto Sans Pahawh Hmong"},
		language.Old_Hungarian:          {"Noto Sans Old Hungarian"},
		language.Javanese:               {"Noto Sans Javanese"},
		language.Kayah_Li:               {"Noto Sans Kayah Li"},
		language.Lepcha:                 {"Noto Sans Lepcha"},
		language.Linear_A:               {"Noto Sans Linear A"},
		language.Mandaic:                {"Noto Sans Mandaic"},
		language.Nko:                    {"Noto Sans NKo"},
		language.Old_Turkic:             {"Noto Sans Old Turkic"},
		language.Old_Permic:             {"Noto Sans Old Permic"},
		language.Phags_Pa:               {"Noto Sans PhagsPa"},
		language.Phoenician:             {"Noto Sans Phoenician"},
		language.Miao:                   {"Noto Sans Miao"},
		language.Vai:                    {"Noto Sans Vai"},
		language.Cuneiform:              {"Noto Sans Cuneiform"},
		language.Carian:                 {"Noto Sans Carian"},
		language.Tai_Tham:               {"Noto Sans Tai Tham"},
		language.Lycian:                 {"Noto Sans Lycian"},
		language.Lydian:                 {"Noto Sans Lydian"},
		language.Ol_Chiki:               {"Noto Sans Ol Chiki"},
		language.Rejang:                 {"Noto Sans Rejang"},
		language.Saurashtra:             {"Noto Sans Saurashtra"},
		language.Sundanese:              {"Noto Sans Sundanese"},
		language.Meetei_Mayek:           {"Noto Sans Meetei Mayek"},
		language.Imperial_Aramaic:       {"Noto Sans Imperial Aramaic"},
		language.Avestan:                {"Noto Sans Avestan"},
		language.Chakma:                 {"Noto Sans Chakma"},
		language.Kaithi:                 {"Noto Sans Kaithi"},
		language.Manichaean:             {"Noto Sans Manichaean"},
		language.Inscriptional_Pahlavi:  {"Noto Sans Inscriptional Pahlavi"},
		language.Psalter_Pahlavi:        {"Noto Sans Psalter Pahlavi"},
		language.Inscriptional_Parthian: {"Noto Sans Inscriptional Parthian"},
		language.Samaritan:              {"Noto Sans Samaritan"},
		language.Tai_Viet:               {"Noto Sans Tai Viet"},
		language.Bamum:                  {"Noto Sans Bamum"},
		language.Lisu:                   {"Noto Sans Lisu"},
		language.Old_South_Arabian:      {"Noto Sans Old South Arabian"},
		language.Bassa_Vah:              {"Noto Sans Bassa Vah"},
		language.Duployan:               {"Noto Sans Duployan"},
		language.Elbasan:                {"Noto Sans Elbasan"},
		language.Grantha:                {"Noto Sans Grantha"},
		language.Mende_Kikakui:          {"Noto Sans Mende Kikakui"},
		language.Meroitic_Cursive:       {"Noto Sans Meroitic"},
		language.Meroitic_Hieroglyphs:   {"Noto Sans Meroitic"},
		language.Old_North_Arabian:      {"Noto Sans Old North Arabian"},
		language.Nabataean:              {"Noto Sans Nabataean"},
		language.Palmyrene:              {"Noto Sans Palmyrene"},
		language.Khudawadi:              {"Noto Sans Khudawadi"},
		language.Warang_Citi:            {"Noto Sans Warang Citi"},
		language.Mro:                    {"Noto Sans Mro"},
		language.Sharada:                {"Noto Sans Sharada"},
		language.Sora_Sompeng:           {"Noto Sans Sora Sompeng"},
		language.Takri:                  {"Noto Sans Takri"},
		language.Khojki:                 {"Noto Sans Khojki"},
		language.Tirhuta:                {"Noto Sans Tirhuta"},
		language.Caucasian_Albanian:     {"Noto Sans Caucasian Albanian"},
		language.Mahajani:               {"Noto Sans Mahajani"},
		language.Ahom:                   {"Noto Serif Ahom"},
		language.Hatran:                 {"Noto Sans Hatran"},
		language.Modi:                   {"Noto Sans Modi"},
		language.Multani:                {"Noto Sans Multani"},
		language.Pau_Cin_Hau:            {"Noto Sans Pau Cin Hau"},
		language.Siddham:                {"Noto Sans Siddham"},
		language.Adlam:                  {"Noto Sans Adlam"},
		language.Bhaiksuki:              {"Noto Sans Bhaiksuki"},
		language.Marchen:                {"Noto Sans Marchen"},
		language.Newa:                   {"Noto Sans Newa"},
		language.Osage:                  {"Noto Sans Osage"},
		language.Hanifi_Rohingya:        {"Noto Sans Hanifi Rohingya"},
		language.Wancho:                 {"Noto Sans Wancho"},
	},
	// Symbols and dingbats are usually of script Common, but may be resolved
	// to any surrounding script run. Japanese fonts cover a lot of
	// miscellaneous symbols. Arial Unicode MS is the last resort.
	Tail: []string{
		"Apple Color Emoji",
		"Zapf Dingbats",
		"Geneva",
		"STIXGeneral",
		"Apple Symbols",
		"Hiragino Sans",
		"Hiragino Kaku Gothic ProN",
		"Arial Unicode MS",
	},
}
