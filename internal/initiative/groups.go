package initiative

import (
	"errors"
	"sort"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

// GroupDivider is the reorder target standing in for the divider rendered
// between the party and the adversaries.
const GroupDivider = "group-divider"

// groupIndexFront sorts ahead of every settled index, placing a participant
// at the start of its group when normalization runs.
const groupIndexFront = -2

// ErrUnknownParticipant is returned when a reorder references an id that is
// not in the participant list.
var ErrUnknownParticipant = errors.New("participant not found")

// NormalizeGroups reassigns dense per-group indices in place. Participants
// are ordered by group index ascending with the unresolved sentinel sorting
// last within its group, sub-ordered by group ascending, then walked to
// assign each group the exact index set {0..n-1}. Normalizing an already
// normalized list changes nothing.
func NormalizeGroups(participants []*models.Participant) {
	total := len(participants)

	sort.SliceStable(participants, func(i, j int) bool {
		return effectiveIndex(participants[i], total) < effectiveIndex(participants[j], total)
	})
	sort.SliceStable(participants, func(i, j int) bool {
		return participants[i].Group < participants[j].Group
	})

	nextIndex := make(map[int]int)
	for _, participant := range participants {
		index := nextIndex[participant.Group]
		participant.GroupIndex = index
		nextIndex[participant.Group] = index + 1
	}
}

func effectiveIndex(participant *models.Participant, total int) int {
	if participant.GroupIndex == models.GroupIndexUnresolved {
		return total
	}
	return participant.GroupIndex
}

// Reorder moves a participant to the position of a drop target, which is
// either another participant or the GroupDivider marker, recomputing group
// and group index for everything affected. The list is normalized before
// the result is returned.
func Reorder(participants []*models.Participant, movedID, targetID string) error {
	if movedID == targetID {
		return nil
	}

	moved := findByID(participants, movedID)
	if moved == nil {
		return ErrUnknownParticipant
	}

	if targetID == GroupDivider {
		if moved.Group == models.GroupParty {
			// Dropped on the divider from above: becomes the first adversary
			moved.Group = models.GroupAdversaries
			moved.GroupIndex = groupIndexFront
		} else {
			// Dropped on the divider from below: becomes the last party member
			moved.Group = models.GroupParty
			moved.GroupIndex = countGroup(participants, models.GroupParty)
		}
		NormalizeGroups(participants)
		return nil
	}

	target := findByID(participants, targetID)
	if target == nil {
		return ErrUnknownParticipant
	}

	if target.Group == moved.Group {
		reorderWithinGroup(participants, moved, target)
	} else {
		reorderAcrossGroups(participants, moved, target)
	}

	NormalizeGroups(participants)
	return nil
}

// reorderWithinGroup shifts every other member of the shared group by one
// to open a gap at the target position, then places the moved participant
// at that exact index.
func reorderWithinGroup(participants []*models.Participant, moved, target *models.Participant) {
	movedIndex := moved.GroupIndex
	targetIndex := target.GroupIndex

	if movedIndex < targetIndex {
		// Dragged toward the end of the group
		for _, participant := range participants {
			if participant.ID == moved.ID || participant.Group != target.Group {
				continue
			}
			if participant.GroupIndex > movedIndex && participant.GroupIndex <= targetIndex {
				participant.GroupIndex--
			}
		}
	} else {
		// Dragged toward the start of the group
		for _, participant := range participants {
			if participant.ID == moved.ID || participant.Group != target.Group {
				continue
			}
			if participant.GroupIndex >= targetIndex && participant.GroupIndex < movedIndex {
				participant.GroupIndex++
			}
		}
	}

	moved.GroupIndex = targetIndex
}

// reorderAcrossGroups moves the participant into the target's group. When
// dragged forward (out of the earlier-rendered group) it lands just after
// the drop target; when dragged backward it takes the target's index and
// pushes the target down by one.
func reorderAcrossGroups(participants []*models.Participant, moved, target *models.Participant) {
	targetIndex := target.GroupIndex
	draggedForward := moved.Group < target.Group

	for _, participant := range participants {
		if participant.ID == moved.ID || participant.Group != target.Group {
			continue
		}
		if participant.GroupIndex > targetIndex {
			participant.GroupIndex++
		}
	}

	moved.Group = target.Group
	if draggedForward {
		moved.GroupIndex = targetIndex + 1
	} else {
		moved.GroupIndex = targetIndex
		target.GroupIndex++
	}
}

// SplitGroups partitions participants into party and adversaries, each
// ordered by group index.
func SplitGroups(participants []*models.Participant) (party, adversaries []*models.Participant) {
	for _, participant := range participants {
		if participant.Group == models.GroupParty {
			party = append(party, participant)
		} else {
			adversaries = append(adversaries, participant)
		}
	}

	byIndex := func(group []*models.Participant) func(i, j int) bool {
		return func(i, j int) bool {
			return group[i].GroupIndex < group[j].GroupIndex
		}
	}
	sort.SliceStable(party, byIndex(party))
	sort.SliceStable(adversaries, byIndex(adversaries))

	return party, adversaries
}

func findByID(participants []*models.Participant, id string) *models.Participant {
	for _, participant := range participants {
		if participant.ID == id {
			return participant
		}
	}
	return nil
}

func countGroup(participants []*models.Participant, group int) int {
	count := 0
	for _, participant := range participants {
		if participant.Group == group {
			count++
		}
	}
	return count
}
