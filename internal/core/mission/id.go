package mission

import (
	"fmt"
	"strings"
)

// GenerateMissionID generates a mission instance ID from its template and a sequence number.
// The format is <template>-XXX where XXX is a zero-padded 3-digit number.
func GenerateMissionID(templateID string, seq int) string {
	return fmt.Sprintf("%s-%03d", templateID, seq)
}

// ParseMissionSequence extracts the sequence number from a mission ID.
// Returns -1 if the ID format is invalid.
func ParseMissionSequence(id string) int {
	i := strings.LastIndex(id, "-")
	if i < 0 || i == len(id)-1 {
		return -1
	}
	var num int
	if _, err := fmt.Sscanf(id[i+1:], "%d", &num); err != nil {
		return -1
	}
	return num
}
