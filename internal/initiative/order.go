package initiative

import (
	"sort"
	"strconv"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

// Order maps a string-encoded integer position to a participant id. It is
// persisted in scene metadata and treated as an advisory ordering hint, not
// as the authoritative participant set.
type Order map[string]string

// ComputeOrder arranges live participants according to a persisted order.
// Ids in the order with no live participant are dropped, and live
// participants missing from the order are appended in their original
// relative order. Every live participant appears exactly once in the result.
func ComputeOrder(participants []*models.Participant, order Order) []*models.Participant {
	if len(order) == 0 {
		return participants
	}

	positions := make([]int, 0, len(order))
	for key := range order {
		position, err := strconv.Atoi(key)
		if err != nil {
			continue
		}
		positions = append(positions, position)
	}
	sort.Ints(positions)

	ordered := make([]*models.Participant, 0, len(participants))
	seen := make(map[string]bool, len(participants))
	for _, position := range positions {
		id := order[strconv.Itoa(position)]
		for _, participant := range participants {
			if participant.ID == id {
				if !seen[id] {
					ordered = append(ordered, participant)
					seen[id] = true
				}
				break
			}
		}
	}

	// Append any live participant the order does not know about
	for _, participant := range participants {
		if !seen[participant.ID] {
			ordered = append(ordered, participant)
			seen[participant.ID] = true
		}
	}

	return ordered
}

// RecordOrder builds a fresh position to id map from an already sorted list.
func RecordOrder(sorted []*models.Participant) Order {
	order := make(Order, len(sorted))
	for i, participant := range sorted {
		order[strconv.Itoa(i)] = participant.ID
	}
	return order
}
