package service

// ToneInstruction maps a 0-100 tone slider onto a rephrase instruction.
// Three bands: formal, professional, casual.
func ToneInstruction(tone int) string {
	switch {
	case tone < 30:
		return "Rephrase this content in a formal and serious tone."
	case tone <= 70:
		return "Rephrase this content in a friendly and professional tone."
	default:
		return "Rephrase this content in a fun, creative and casual tone, with emojis."
	}
}
