package availability

import (
	"fmt"
	"strings"

	"meetplan/models"
)

// DefaultSelectionLimit caps how many slots are rendered for selection.
const DefaultSelectionLimit = 10

// NoSlotsMessage is returned when there is nothing to format.
const NoSlotsMessage = "No available slots found."

// FormatSlotsForSelection renders at most limit slots (earliest first) as a
// numbered list for the slot-selection collaborator. A negative limit is
// treated as zero.
func FormatSlotsForSelection(slots []models.CandidateSlot, limit int) string {
	if len(slots) == 0 {
		return NoSlotsMessage
	}
	if limit < 0 {
		limit = 0
	}
	if limit > len(slots) {
		limit = len(slots)
	}

	var sb strings.Builder
	sb.WriteString("Available slots:\n\n")
	for i := 0; i < limit; i++ {
		slot := slots[i]
		fmt.Fprintf(&sb, "%d. %s - %s (Score: %d)\n",
			i+1,
			slot.Interval.Start.Format("2006-01-02 15:04"),
			slot.Interval.End.Format("15:04"),
			slot.Score,
		)
	}
	return sb.String()
}
