package initiative

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

// SortByCount stable-sorts participants in place by the numeric value of
// their count. Counts that do not parse as a number sort to the end
// regardless of direction.
func SortByCount(participants []*models.Participant, ascending bool) {
	sort.SliceStable(participants, func(i, j int) bool {
		a := parseCount(participants[i].Count)
		b := parseCount(participants[j].Count)

		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}

		if ascending {
			return a < b
		}
		return a > b
	})
}

func parseCount(count string) float64 {
	value, err := strconv.ParseFloat(strings.TrimSpace(count), 64)
	if err != nil {
		return math.NaN()
	}
	return value
}
