package metrics

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// BulletMarkers are the characters that introduce a bullet line.
var BulletMarkers = []rune{'•', '*', '-', '·', '○', '▪'}

// ExtractBullets returns the bullet lines of text with their markers stripped.
// A line is a bullet when, after trimming, it starts with a marker followed by whitespace.
func ExtractBullets(text string) []string {
	bullets := make([]string, 0)
	for _, line := range strings.Split(text, "\n") {
		if bullet, ok := ParseBullet(line); ok {
			bullets = append(bullets, bullet)
		}
	}
	return bullets
}

// ParseBullet strips the marker from a single bullet line.
func ParseBullet(line string) (string, bool) {
	line = strings.TrimSpace(line)
	marker, size := utf8.DecodeRuneInString(line)
	if size == 0 || !isMarker(marker) {
		return "", false
	}
	rest := line[size:]
	next, _ := utf8.DecodeRuneInString(rest)
	if rest == "" || !unicode.IsSpace(next) {
		return "", false
	}
	bullet := strings.TrimLeftFunc(rest, unicode.IsSpace)
	return bullet, bullet != ""
}

func isMarker(r rune) bool {
	for _, m := range BulletMarkers {
		if r == m {
			return true
		}
	}
	return false
}
