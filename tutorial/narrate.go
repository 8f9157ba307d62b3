package tutorial

import "log"

// AudioPlaceholder is the stub reference returned until a real text-to-speech
// integration replaces Narrate.
const AudioPlaceholder = "audio_placeholder.mp3"

// Narrate is a text-to-speech placeholder. It never fails and never inspects
// the text beyond logging a short preview.
func Narrate(text string) string {
	preview := text
	if len(preview) > 48 {
		preview = preview[:48] + "..."
	}
	log.Printf("[narrate] placeholder audio for %q", preview)
	return AudioPlaceholder
}
