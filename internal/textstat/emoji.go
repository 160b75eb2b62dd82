package textstat

import (
	"strings"
	"unicode/utf8"

	"github.com/kyokomi/emoji/v2"
)

const variationSelector = "\ufe0f"

// emojiSet holds every emoji that is a single code point once its
// variation selector is removed.
var emojiSet = buildEmojiSet()

func buildEmojiSet() map[rune]struct{} {
	set := make(map[rune]struct{})
	for _, code := range emoji.CodeMap() {
		code = strings.TrimSpace(strings.ReplaceAll(code, variationSelector, ""))
		if utf8.RuneCountInString(code) != 1 {
			continue
		}
		r, _ := utf8.DecodeRuneInString(code)
		if r < utf8.RuneSelf {
			continue
		}
		set[r] = struct{}{}
	}
	return set
}

// IsEmoji reports whether r is in the recognized emoji set.
func IsEmoji(r rune) bool {
	_, ok := emojiSet[r]
	return ok
}

// ExtractEmoji returns each emoji code point in text, in scan order.
// Sequences such as flags or skin-tone modifiers are not recombined; their
// individual code points are reported when they are emoji on their own.
func ExtractEmoji(text string) []string {
	var out []string
	for _, r := range text {
		if IsEmoji(r) {
			out = append(out, string(r))
		}
	}
	return out
}
