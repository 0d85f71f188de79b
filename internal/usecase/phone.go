package usecase

import "strings"

// NormalizePhone converts messaging-channel addressing ("whatsapp:+55 11 9...")
// into the canonical E.164-like key used across all stores.
func NormalizePhone(phone string) string {
	cleaned := strings.ReplaceAll(phone, "whatsapp:", "")
	cleaned = strings.Join(strings.Fields(cleaned), "")
	if cleaned == "" {
		return ""
	}
	if !strings.HasPrefix(cleaned, "+") {
		cleaned = "+" + cleaned
	}
	return cleaned
}
