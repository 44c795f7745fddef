package enumerate

import (
	"fmt"
	"strings"
)

// Charset identifies a character set using the Windows GDI charset codes.
type Charset byte

// Known character sets
const (
	ANSI        Charset = 0x00
	Default     Charset = 0x01
	Symbol      Charset = 0x02
	ShiftJis    Charset = 0x80
	Hangul      Charset = 0x81
	GB2312      Charset = 0x86
	ChineseBig5 Charset = 0x88
	Greek       Charset = 0xA1
	Turkish     Charset = 0xA2
	Hebrew      Charset = 0xB1
	Arabic      Charset = 0xB2
	Baltic      Charset = 0xBA
	Russian     Charset = 0xCC
	Thai        Charset = 0xDE
	EE          Charset = 0xEE
	OEM         Charset = 0xFF
)

var charsetNames = map[Charset]string{
	ANSI:        "ansi",
	Default:     "default",
	Symbol:      "symbol",
	ShiftJis:    "shiftjis",
	Hangul:      "hangul",
	GB2312:      "gb2312",
	ChineseBig5: "big5",
	Greek:       "greek",
	Turkish:     "turkish",
	Hebrew:      "hebrew",
	Arabic:      "arabic",
	Baltic:      "baltic",
	Russian:     "russian",
	Thai:        "thai",
	EE:          "ee",
	OEM:         "oem",
}

// probes are characters a face must map for it to count as supporting the
// charset. Default has none and accepts every face.
var probes = map[Charset][]rune{
	ANSI:        {'A', 'z', 'é'},
	Symbol:      {'\uf020'}, // symbol fonts map their glyphs into U+F000-U+F0FF
	ShiftJis:    {'あ', 'ア'},
	Hangul:      {'한'},
	GB2312:      {'国'},
	ChineseBig5: {'國'},
	Greek:       {'Ω', 'λ'},
	Turkish:     {'ğ', 'ş'},
	Hebrew:      {'א'},
	Arabic:      {'ع'},
	Baltic:      {'ų', 'ė'},
	Russian:     {'Ж', 'я'},
	Thai:        {'ก'},
	EE:          {'ő', 'ł'},
	OEM:         {'░', '╬'},
}

func (c Charset) String() string {
	if name, ok := charsetNames[c]; ok {
		return name
	}
	return fmt.Sprintf("charset(0x%02X)", byte(c))
}

// Probes returns the characters used to test a face for this charset
func (c Charset) Probes() []rune {
	return probes[c]
}

// ParseCharset accepts a charset name (case-insensitive) as printed by String
func ParseCharset(s string) (Charset, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default, nil
	}
	for c, name := range charsetNames {
		if name == s {
			return c, nil
		}
	}
	return Default, fmt.Errorf("unknown charset: %s", s)
}

// CharsetNames lists every known charset name
func CharsetNames() []string {
	names := make([]string, 0, len(charsetNames))
	for _, c := range []Charset{ANSI, Default, Symbol, ShiftJis, Hangul, GB2312, ChineseBig5,
		Greek, Turkish, Hebrew, Arabic, Baltic, Russian, Thai, EE, OEM} {
		names = append(names, charsetNames[c])
	}
	return names
}
