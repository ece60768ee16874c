package response

import "fmt"

// Canned responses for the deterministic shortcut paths and for degradation.
// These paths never touch retrieval or generation, so the strings must stand
// on their own.

// MMAHighlightLink is the canonical external link carried by the mma
// shortcut response.
const MMAHighlightLink = "https://www.youtube.com/watch?v=K0DWBRZ95ps"

// ConfessionMessage returns the fixed, privacy-preserving acknowledgment for
// the confession path.
func ConfessionMessage() string {
	return "That's sweet of you to share. Your secret is safe here. Nothing you say on this path is looked up, generated, or sent anywhere. If you'd like to actually reach out, the contact page is the way to go. Good luck!"
}

// MMAMessage returns the deterministic hobby fan-out response.
func MMAMessage() string {
	return fmt.Sprintf("Glad you asked. MMA is a big part of life outside of work. Training mostly grappling and muay thai these days. Highlight reel: %s", MMAHighlightLink)
}

// FallbackApology is returned when a collaborator fails or times out. It must
// never contain raw error text.
func FallbackApology() string {
	return "Sorry, something went wrong putting that answer together. Please try asking again in a moment."
}
