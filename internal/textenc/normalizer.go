// Package textenc repairs text that was double-encoded on its way through the
// spreadsheet and form pipeline: UTF-8 bytes reinterpreted as Windows-1252 show
// up as sequences like "Ã©" for "é" or "â€“" for "–". Normalize undoes that
// best-effort; clean text passes through untouched.
package textenc

import (
	"strings"
	"unicode/utf8"
)

// maxPasses bounds the repair loop; text double-encoded more than three times
// has never been observed and is left as-is.
const maxPasses = 3

// cp1252Punct maps the punctuation glyphs of the Windows-1252 0x80-0x9F block
// back to their single-byte value. These runes never survive a correct decode
// of human-authored Spanish text together with Ã/Â markers, so their presence
// identifies the code page the bytes were misread through.
var cp1252Punct = map[rune]byte{
	'€': 0x80, // €
	'‚': 0x82, // ‚
	'ƒ': 0x83, // ƒ
	'„': 0x84, // „
	'…': 0x85, // …
	'†': 0x86, // †
	'‡': 0x87, // ‡
	'ˆ': 0x88, // ˆ
	'‰': 0x89, // ‰
	'Š': 0x8A, // Š
	'‹': 0x8B, // ‹
	'Œ': 0x8C, // Œ
	'Ž': 0x8E, // Ž
	'‘': 0x91, // ‘
	'’': 0x92, // ’
	'“': 0x93, // “
	'”': 0x94, // ”
	'•': 0x95, // •
	'–': 0x96, // –
	'—': 0x97, // —
	'˜': 0x98, // ˜
	'™': 0x99, // ™
	'š': 0x9A, // š
	'›': 0x9B, // ›
	'œ': 0x9C, // œ
	'ž': 0x9E, // ž
	'Ÿ': 0x9F, // Ÿ
}

// hasMarkers reports whether the text still looks double-encoded. 0xC2/0xC3
// are the UTF-8 lead bytes of the Latin-1 supplement and 0xE2 leads the
// general-punctuation block, so their misdecoded forms Â/Ã/â dominate any
// mojibake sample.
func hasMarkers(s string) bool {
	return strings.ContainsRune(s, 'Ã') ||
		strings.ContainsRune(s, 'Â') ||
		strings.Contains(s, "â€")
}

// Normalize returns the repaired text, or the input unchanged when it shows no
// sign of double encoding. Each pass folds the text back to its single-byte
// form and re-decodes it as UTF-8; a pass that cannot be folded, produces
// invalid UTF-8, empties the text, or changes nothing ends the loop with the
// best text obtained so far.
func Normalize(s string) string {
	if s == "" || !hasMarkers(s) {
		return s
	}

	cur := s
	for pass := 0; pass < maxPasses && hasMarkers(cur); pass++ {
		repaired, ok := repairOnce(cur)
		if !ok || repaired == "" || repaired == cur {
			break
		}
		cur = repaired
	}
	return cur
}

// repairOnce reinterprets the text's runes as single bytes (via the cp1252
// punctuation table for runes above 0xFF) and decodes the result as UTF-8.
func repairOnce(s string) (string, bool) {
	buf := make([]byte, 0, len(s))
	for _, r := range s {
		if r <= 0xFF {
			buf = append(buf, byte(r))
			continue
		}
		b, ok := cp1252Punct[r]
		if !ok {
			// A rune outside both ranges means this was never a
			// mis-decoded byte stream.
			return "", false
		}
		buf = append(buf, b)
	}
	if !utf8.Valid(buf) {
		return "", false
	}
	return string(buf), true
}
