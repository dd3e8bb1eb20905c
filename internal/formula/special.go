package formula

// Keys must be a whole token. "hnu" is scanned as a Name.
var specialCharacters = map[string]string{
	"->":  "→",
	"*":   "·",
	"<>":  "⇌",
	"hnu": "hν",
	"<->": "⇄",
}

// Substitute returns the replacement for text when text is a key of the
// special character table, and text itself otherwise. Only exact matches are
// replaced: "hnufoo" stays as it is.
func Substitute(text string) string {
	if s, ok := specialCharacters[text]; ok {
		return s
	}
	return text
}
