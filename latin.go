package ebustl

import "unicode/utf8"

// ISO 6937/2 as profiled by EBU Tech 3264. The primary set is ASCII with
// the currency sign at 0x24, the supplementary set covers 0xA0..0xFF, and
// the bytes 0xC1..0xCF are non-spacing diacritical marks that combine with
// the following letter into a single precomposed rune.

// decodeLatin decodes one ISO 6937/2 character from the start of payload
// and reports the number of bytes consumed. A diacritic prefix followed by
// anything other than a text byte consumes only itself, so control codes
// after a stray prefix stay visible to the caller.
func decodeLatin(payload []byte) (rune, int) {
	b := payload[0]
	switch {
	case b == 0x24:
		return '¤', 1
	case b < 0x7F:
		return rune(b), 1
	case b >= 0xC1 && b <= 0xCF:
		if len(payload) < 2 || !isTextByte(payload[1]) {
			return utf8.RuneError, 1
		}
		if r, ok := latinComposed[uint16(b)<<8|uint16(payload[1])]; ok {
			return r, 2
		}
		return utf8.RuneError, 2
	default:
		if r, ok := latinSupplement[b]; ok {
			return r, 1
		}
		return utf8.RuneError, 1
	}
}

// latinSupplement maps the supplementary set, 0xA0..0xFF minus the
// diacritic prefixes. Holes in the standard are simply absent.
var latinSupplement = map[byte]rune{
	0xA0: ' ', // no-break space
	0xA1: '¡',
	0xA2: '¢',
	0xA3: '£',
	0xA4: '$', // dollar and currency sign trade places with ASCII
	0xA5: '¥',
	0xA7: '§',
	0xA8: '¤',
	0xA9: '‘', // left single quote
	0xAA: '“', // left double quote
	0xAB: '«',
	0xAC: '←',
	0xAD: '↑',
	0xAE: '→',
	0xAF: '↓',
	0xB0: '°',
	0xB1: '±',
	0xB2: '²',
	0xB3: '³',
	0xB4: '×',
	0xB5: 'µ',
	0xB6: '¶',
	0xB7: '·',
	0xB8: '÷',
	0xB9: '’', // right single quote
	0xBA: '”', // right double quote
	0xBB: '»',
	0xBC: '¼',
	0xBD: '½',
	0xBE: '¾',
	0xBF: '¿',
	0xD0: '―', // horizontal bar
	0xD1: '¹',
	0xD2: '®',
	0xD3: '©',
	0xD4: '™',
	0xD5: '♪',
	0xD6: '¬',
	0xD7: '¦',
	0xDC: '⅛',
	0xDD: '⅜',
	0xDE: '⅝',
	0xDF: '⅞',
	0xE0: 'Ω', // ohm sign
	0xE1: 'Æ',
	0xE2: 'Đ',
	0xE3: 'ª',
	0xE4: 'Ħ',
	0xE6: 'Ĳ',
	0xE7: 'Ŀ',
	0xE8: 'Ł',
	0xE9: 'Ø',
	0xEA: 'Œ',
	0xEB: 'º',
	0xEC: 'Þ',
	0xED: 'Ŧ',
	0xEE: 'Ŋ',
	0xEF: 'ŉ',
	0xF0: 'ĸ',
	0xF1: 'æ',
	0xF2: 'đ',
	0xF3: 'ð',
	0xF4: 'ħ',
	0xF5: 'ı',
	0xF6: 'ĳ',
	0xF7: 'ŀ',
	0xF8: 'ł',
	0xF9: 'ø',
	0xFA: 'œ',
	0xFB: 'ß',
	0xFC: 'þ',
	0xFD: 'ŧ',
	0xFE: 'ŋ',
	0xFF: '­', // soft hyphen
}

// latinComposed maps diacritic sequences, keyed as prefix byte in the high
// eight bits and base letter in the low eight. Pairs outside the standard's
// repertoire decode to U+FFFD.
var latinComposed = map[uint16]rune{
	// 0xC1 grave
	0xC141: 'À', 0xC145: 'È', 0xC149: 'Ì', 0xC14F: 'Ò', 0xC155: 'Ù',
	0xC161: 'à', 0xC165: 'è', 0xC169: 'ì', 0xC16F: 'ò', 0xC175: 'ù',
	// 0xC2 acute
	0xC241: 'Á', 0xC243: 'Ć', 0xC245: 'É', 0xC249: 'Í', 0xC24C: 'Ĺ',
	0xC24E: 'Ń', 0xC24F: 'Ó', 0xC252: 'Ŕ', 0xC253: 'Ś', 0xC255: 'Ú',
	0xC259: 'Ý', 0xC25A: 'Ź',
	0xC261: 'á', 0xC263: 'ć', 0xC265: 'é', 0xC267: 'ǵ', 0xC269: 'í',
	0xC26C: 'ĺ', 0xC26E: 'ń', 0xC26F: 'ó', 0xC272: 'ŕ', 0xC273: 'ś',
	0xC275: 'ú', 0xC279: 'ý', 0xC27A: 'ź',
	// 0xC3 circumflex
	0xC341: 'Â', 0xC343: 'Ĉ', 0xC345: 'Ê', 0xC347: 'Ĝ', 0xC348: 'Ĥ',
	0xC349: 'Î', 0xC34A: 'Ĵ', 0xC34F: 'Ô', 0xC353: 'Ŝ', 0xC355: 'Û',
	0xC357: 'Ŵ', 0xC359: 'Ŷ',
	0xC361: 'â', 0xC363: 'ĉ', 0xC365: 'ê', 0xC367: 'ĝ', 0xC368: 'ĥ',
	0xC369: 'î', 0xC36A: 'ĵ', 0xC36F: 'ô', 0xC373: 'ŝ', 0xC375: 'û',
	0xC377: 'ŵ', 0xC379: 'ŷ',
	// 0xC4 tilde
	0xC441: 'Ã', 0xC449: 'Ĩ', 0xC44E: 'Ñ', 0xC44F: 'Õ', 0xC455: 'Ũ',
	0xC461: 'ã', 0xC469: 'ĩ', 0xC46E: 'ñ', 0xC46F: 'õ', 0xC475: 'ũ',
	// 0xC5 macron
	0xC541: 'Ā', 0xC545: 'Ē', 0xC549: 'Ī', 0xC54F: 'Ō', 0xC555: 'Ū',
	0xC561: 'ā', 0xC565: 'ē', 0xC569: 'ī', 0xC56F: 'ō', 0xC575: 'ū',
	// 0xC6 breve
	0xC641: 'Ă', 0xC647: 'Ğ', 0xC655: 'Ŭ',
	0xC661: 'ă', 0xC667: 'ğ', 0xC675: 'ŭ',
	// 0xC7 dot above
	0xC743: 'Ċ', 0xC745: 'Ė', 0xC747: 'Ġ', 0xC749: 'İ', 0xC75A: 'Ż',
	0xC763: 'ċ', 0xC765: 'ė', 0xC767: 'ġ', 0xC77A: 'ż',
	// 0xC8 diaeresis
	0xC841: 'Ä', 0xC845: 'Ë', 0xC849: 'Ï', 0xC84F: 'Ö', 0xC855: 'Ü',
	0xC859: 'Ÿ',
	0xC861: 'ä', 0xC865: 'ë', 0xC869: 'ï', 0xC86F: 'ö', 0xC875: 'ü',
	0xC879: 'ÿ',
	// 0xCA ring above
	0xCA41: 'Å', 0xCA55: 'Ů',
	0xCA61: 'å', 0xCA75: 'ů',
	// 0xCB cedilla
	0xCB43: 'Ç', 0xCB47: 'Ģ', 0xCB4B: 'Ķ', 0xCB4C: 'Ļ', 0xCB4E: 'Ņ',
	0xCB52: 'Ŗ', 0xCB53: 'Ş', 0xCB54: 'Ţ',
	0xCB63: 'ç', 0xCB67: 'ģ', 0xCB6B: 'ķ', 0xCB6C: 'ļ', 0xCB6E: 'ņ',
	0xCB72: 'ŗ', 0xCB73: 'ş', 0xCB74: 'ţ',
	// 0xCD double acute
	0xCD4F: 'Ő', 0xCD55: 'Ű',
	0xCD6F: 'ő', 0xCD75: 'ű',
	// 0xCE ogonek
	0xCE41: 'Ą', 0xCE45: 'Ę', 0xCE49: 'Į', 0xCE55: 'Ų',
	0xCE61: 'ą', 0xCE65: 'ę', 0xCE69: 'į', 0xCE75: 'ų',
	// 0xCF caron
	0xCF43: 'Č', 0xCF44: 'Ď', 0xCF45: 'Ě', 0xCF4C: 'Ľ', 0xCF4E: 'Ň',
	0xCF52: 'Ř', 0xCF53: 'Š', 0xCF54: 'Ť', 0xCF5A: 'Ž',
	0xCF63: 'č', 0xCF64: 'ď', 0xCF65: 'ě', 0xCF6C: 'ľ', 0xCF6E: 'ň',
	0xCF72: 'ř', 0xCF73: 'š', 0xCF74: 'ť', 0xCF7A: 'ž',
}
