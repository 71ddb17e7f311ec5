package ebustl

import (
	"strings"

	"golang.org/x/text/language"
)

// LanguageCode is the two-character hexadecimal language code from the GSI
// block, drawn from the EBU Tech 3258 registry. The raw field value is kept
// so codes outside the registry survive a parse.
type LanguageCode string

type languageEntry struct {
	name string
	tag  string // ISO 639-1 code, empty when the registry name has none
}

// The EBU registry, including its period spellings. Codes 2C..44 are
// reserved and absent.
var languageRegistry = map[LanguageCode]languageEntry{
	"00": {"Unknown", ""},
	"01": {"Albanian", "sq"},
	"02": {"Breton", "br"},
	"03": {"Catalan", "ca"},
	"04": {"Croatian", "hr"},
	"05": {"Welsh", "cy"},
	"06": {"Czech", "cs"},
	"07": {"Danish", "da"},
	"08": {"German", "de"},
	"09": {"English", "en"},
	"0A": {"Spanish", "es"},
	"0B": {"Esperanto", "eo"},
	"0C": {"Estonian", "et"},
	"0D": {"Basque", "eu"},
	"0E": {"Faroese", "fo"},
	"0F": {"French", "fr"},
	"10": {"Frisian", "fy"},
	"11": {"Irish", "ga"},
	"12": {"Gaelic", "gd"},
	"13": {"Galician", "gl"},
	"14": {"Icelandic", "is"},
	"15": {"Italian", "it"},
	"16": {"Lappish", "se"},
	"17": {"Latin", "la"},
	"18": {"Latvian", "lv"},
	"19": {"Luxembourgian", "lb"},
	"1A": {"Lithuanian", "lt"},
	"1B": {"Hungarian", "hu"},
	"1C": {"Maltese", "mt"},
	"1D": {"Dutch", "nl"},
	"1E": {"Norwegian", "no"},
	"1F": {"Occitan", "oc"},
	"20": {"Polish", "pl"},
	"21": {"Portuguese", "pt"},
	"22": {"Romanian", "ro"},
	"23": {"Romansh", "rm"},
	"24": {"Serbian", "sr"},
	"25": {"Slovak", "sk"},
	"26": {"Slovenian", "sl"},
	"27": {"Finnish", "fi"},
	"28": {"Swedish", "sv"},
	"29": {"Turkish", "tr"},
	"2A": {"Flemish", "nl"},
	"2B": {"Wallon", "wa"},
	"45": {"Zulu", "zu"},
	"46": {"Vietnamese", "vi"},
	"47": {"Uzbek", "uz"},
	"48": {"Urdu", "ur"},
	"49": {"Ukrainian", "uk"},
	"4A": {"Thai", "th"},
	"4B": {"Telugu", "te"},
	"4C": {"Tatar", "tt"},
	"4D": {"Tamil", "ta"},
	"4E": {"Tadzhik", "tg"},
	"4F": {"Swahili", "sw"},
	"50": {"Sranan Tongo", ""},
	"51": {"Somali", "so"},
	"52": {"Sinhalese", "si"},
	"53": {"Shona", "sn"},
	"54": {"Serbo-Croat", ""},
	"55": {"Ruthenian", ""},
	"56": {"Russian", "ru"},
	"57": {"Quechua", "qu"},
	"58": {"Pushtu", "ps"},
	"59": {"Punjabi", "pa"},
	"5A": {"Persian", "fa"},
	"5B": {"Papamiento", ""},
	"5C": {"Oriya", "or"},
	"5D": {"Nepali", "ne"},
	"5E": {"Ndebele", "nd"},
	"5F": {"Marathi", "mr"},
	"60": {"Moldavian", "ro"},
	"61": {"Malaysian", "ms"},
	"62": {"Malagasay", "mg"},
	"63": {"Macedonian", "mk"},
	"64": {"Laotian", "lo"},
	"65": {"Korean", "ko"},
	"66": {"Khmer", "km"},
	"67": {"Kazakh", "kk"},
	"68": {"Kannada", "kn"},
	"69": {"Japanese", "ja"},
	"6A": {"Indonesian", "id"},
	"6B": {"Hindi", "hi"},
	"6C": {"Hebrew", "he"},
	"6D": {"Hausa", "ha"},
	"6E": {"Gurani", ""},
	"6F": {"Gujurati", "gu"},
	"70": {"Greek", "el"},
	"71": {"Georgian", "ka"},
	"72": {"Fulani", "ff"},
	"73": {"Dari", ""},
	"74": {"Churash", "cv"},
	"75": {"Chinese", "zh"},
	"76": {"Burmese", "my"},
	"77": {"Bulgarian", "bg"},
	"78": {"Bengali", "bn"},
	"79": {"Bielorussian", "be"},
	"7A": {"Bambora", "bm"},
	"7B": {"Azerbaijani", "az"},
	"7C": {"Assamese", "as"},
	"7D": {"Armenian", "hy"},
	"7E": {"Arabic", "ar"},
	"7F": {"Amharic", "am"},
}

func (l LanguageCode) lookup() (languageEntry, bool) {
	e, ok := languageRegistry[LanguageCode(strings.ToUpper(string(l)))]
	return e, ok
}

// Known reports whether the code appears in the EBU registry.
func (l LanguageCode) Known() bool {
	_, ok := l.lookup()
	return ok
}

// Name returns the registry name for the code, or the empty string for
// codes outside the registry.
func (l LanguageCode) Name() string {
	e, _ := l.lookup()
	return e.name
}

// Tag returns the BCP 47 tag closest to the registry entry. Codes without a
// modern equivalent, including "00" Unknown, map to language.Und.
func (l LanguageCode) Tag() language.Tag {
	e, ok := l.lookup()
	if !ok || e.tag == "" {
		return language.Und
	}
	return language.Make(e.tag)
}

func (l LanguageCode) String() string {
	return string(l)
}
