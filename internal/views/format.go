package views

import (
	"fmt"
	"strings"
	"time"

	model "github.com/waifuisalie/ChallengeChain/internal/models"
)

const day = 24 * time.Hour

func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

// TimeRemaining describes where now falls relative to the challenge window,
// e.g. "Starts in 3d", "2d 5h left" or "Ended 1d ago". Counts are truncated.
func TimeRemaining(start, end, now time.Time) string {
	switch {
	case now.Before(start):
		return fmt.Sprintf("Starts in %dd", int(start.Sub(now)/day))
	case now.After(end):
		return fmt.Sprintf("Ended %dd ago", int(now.Sub(end)/day))
	default:
		left := end.Sub(now)
		return fmt.Sprintf("%dd %dh left", int(left/day), int((left%day)/time.Hour))
	}
}

// ShortAddress keeps the first 6 and last 4 characters: "0x1a2b...9a0b".
func ShortAddress(address string) string {
	if len(address) <= 10 {
		return address
	}
	return address[:6] + "..." + address[len(address)-4:]
}

var placeholderInitials = []string{"JD", "AS", "BL", "CM", "DK", "EW", "FH", "GS", "HM", "IP"}

// Initials returns the avatar placeholder for the row at index.
func Initials(index int) string {
	if index < 0 {
		index = -index
	}
	return placeholderInitials[index%len(placeholderInitials)]
}

// StatusColor names the badge colour of a status.
func StatusColor(status string) string {
	switch status {
	case model.StatusActive:
		return "green"
	case model.StatusUpcoming:
		return "yellow"
	case model.StatusCompleted:
		return "red"
	}
	return "gray"
}

// CategoryStyle names the label colour of a category.
func CategoryStyle(category string) string {
	switch strings.ToLower(category) {
	case "fitness":
		return "blue"
	case "learning":
		return "green"
	case "food":
		return "red"
	case "social":
		return "purple"
	case "creative":
		return "indigo"
	}
	return "gray"
}
