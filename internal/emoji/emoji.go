package emoji

// emojiMap holds [emoji, fallback] pairs
var emojiMap = map[string][2]string{
	"error":      {"❌", "[ERR]"},
	"warning":    {"⚠️", "[WRN]"},
	"info":       {"ℹ️", "[INF]"},
	"success":    {"✅", "[OK]"},
	"tag":        {"🏷️", "[TAG]"},
	"statistics": {"📊", "[STATS]"},
	"brain":      {"🧠", "[MDL]"},
	"magic":      {"✨", "[*]"},
	"clipboard":  {"📋", "[CPY]"},
	"check":      {"✔", "[v]"},
	"newspaper":  {"📰", "[NEWS]"},
	"gear":       {"⚙️", "[CFG]"},
	"health":     {"💓", "[HLT]"},
	"help":       {"❓", "[?]"},
	"door":       {"🚪", "[EXIT]"},
	"number":     {"🔢", "[#]"},
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
