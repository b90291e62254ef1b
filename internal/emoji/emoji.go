package emoji

// emojiMap holds emoji and fallback mappings
var emojiMap = map[string][2]string{
	// [emoji, fallback]
	"error":     {"❌", "[ERR]"},
	"warning":   {"⚠️", "[WRN]"},
	"success":   {"✅", "[OK]"},
	"chart":     {"📊", "[CHART]"},
	"stats":     {"📈", "[STATS]"},
	"download":  {"⬇️", "[DL]"},
	"arrow":     {"➡️", "[->]"},
	"bag":       {"🛍️", "[BAG]"},
	"check":     {"✔", "[x]"},
	"unchecked": {"○", "[ ]"},
	"target":    {"🎯", "[>]"},
	"folder":    {"📁", "[DIR]"},
	"file":      {"📄", "[FILE]"},
	"watch":     {"👀", "[WATCH]"},
	"loader":    {"⏳", "[..]"},
	"wave":      {"👋", "[BYE]"},
	"help":      {"❓", "[?]"},
}

var emojiDisabled bool

// SetEmojiDisabled sets the global emoji disabled state
func SetEmojiDisabled(disabled bool) {
	emojiDisabled = disabled
}

// IsEmojiDisabled returns the current emoji disabled state
func IsEmojiDisabled() bool {
	return emojiDisabled
}

// GetEmoji returns emoji or fallback based on no-emoji setting
func GetEmoji(key string) string {
	if mapping, exists := emojiMap[key]; exists {
		if emojiDisabled {
			return mapping[1]
		}
		return mapping[0]
	}
	return "[?]"
}
