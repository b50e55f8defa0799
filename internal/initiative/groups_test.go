package initiative

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

type GroupsTestSuite struct {
	suite.Suite

	participants []*models.Participant
}

func (s *GroupsTestSuite) SetupTest() {
	s.participants = []*models.Participant{
		{ID: "ana", Group: models.GroupParty, GroupIndex: 0},
		{ID: "bo", Group: models.GroupParty, GroupIndex: 1},
		{ID: "cy", Group: models.GroupParty, GroupIndex: 2},
		{ID: "ghoul", Group: models.GroupAdversaries, GroupIndex: 0},
		{ID: "orc", Group: models.GroupAdversaries, GroupIndex: 1},
	}
}

func TestGroupsTestSuite(t *testing.T) {
	suite.Run(t, new(GroupsTestSuite))
}

func (s *GroupsTestSuite) ids(group int) []string {
	party, adversaries := SplitGroups(s.participants)
	selected := party
	if group == models.GroupAdversaries {
		selected = adversaries
	}

	ids := make([]string, len(selected))
	for i, participant := range selected {
		ids[i] = participant.ID
	}
	return ids
}

func (s *GroupsTestSuite) assertDense() {
	counts := make(map[int]int)
	for _, participant := range s.participants {
		counts[participant.Group]++
	}

	indices := make(map[int]map[int]bool)
	for _, participant := range s.participants {
		if indices[participant.Group] == nil {
			indices[participant.Group] = make(map[int]bool)
		}
		s.False(indices[participant.Group][participant.GroupIndex],
			"duplicate index %d in group %d", participant.GroupIndex, participant.Group)
		indices[participant.Group][participant.GroupIndex] = true

		s.GreaterOrEqual(participant.GroupIndex, 0)
		s.Less(participant.GroupIndex, counts[participant.Group])
	}
}

func (s *GroupsTestSuite) TestNormalizeAssignsDenseIndices() {
	s.participants[0].GroupIndex = 7
	s.participants[1].GroupIndex = 7
	s.participants[2].GroupIndex = models.GroupIndexUnresolved
	s.participants[4].GroupIndex = 12

	NormalizeGroups(s.participants)

	s.assertDense()
}

func (s *GroupsTestSuite) TestNormalizeSendsUnresolvedLast() {
	s.participants[0].GroupIndex = models.GroupIndexUnresolved

	NormalizeGroups(s.participants)

	s.Equal([]string{"bo", "cy", "ana"}, s.ids(models.GroupParty))
}

func (s *GroupsTestSuite) TestNormalizeIsIdempotent() {
	NormalizeGroups(s.participants)
	first := append([]string{}, s.ids(models.GroupParty)...)
	firstAdversaries := append([]string{}, s.ids(models.GroupAdversaries)...)

	NormalizeGroups(s.participants)

	s.Equal(first, s.ids(models.GroupParty))
	s.Equal(firstAdversaries, s.ids(models.GroupAdversaries))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderSameGroupForward() {
	err := Reorder(s.participants, "ana", "cy")
	s.Require().NoError(err)

	s.Equal([]string{"bo", "cy", "ana"}, s.ids(models.GroupParty))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderSameGroupBackward() {
	err := Reorder(s.participants, "cy", "ana")
	s.Require().NoError(err)

	s.Equal([]string{"cy", "ana", "bo"}, s.ids(models.GroupParty))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderAcrossGroupsForward() {
	// Dragging down out of the party lands just after the drop target
	err := Reorder(s.participants, "ana", "ghoul")
	s.Require().NoError(err)

	s.Equal([]string{"bo", "cy"}, s.ids(models.GroupParty))
	s.Equal([]string{"ghoul", "ana", "orc"}, s.ids(models.GroupAdversaries))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderAcrossGroupsBackward() {
	// Dragging up into the party takes the drop target's slot
	err := Reorder(s.participants, "orc", "bo")
	s.Require().NoError(err)

	s.Equal([]string{"ana", "orc", "bo", "cy"}, s.ids(models.GroupParty))
	s.Equal([]string{"ghoul"}, s.ids(models.GroupAdversaries))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderOntoDividerFromParty() {
	err := Reorder(s.participants, "bo", GroupDivider)
	s.Require().NoError(err)

	s.Equal([]string{"ana", "cy"}, s.ids(models.GroupParty))
	s.Equal([]string{"bo", "ghoul", "orc"}, s.ids(models.GroupAdversaries))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderOntoDividerFromAdversaries() {
	err := Reorder(s.participants, "orc", GroupDivider)
	s.Require().NoError(err)

	s.Equal([]string{"ana", "bo", "cy", "orc"}, s.ids(models.GroupParty))
	s.Equal([]string{"ghoul"}, s.ids(models.GroupAdversaries))
	s.assertDense()
}

func (s *GroupsTestSuite) TestReorderOntoSelfIsNoOp() {
	err := Reorder(s.participants, "ana", "ana")
	s.Require().NoError(err)

	s.Equal([]string{"ana", "bo", "cy"}, s.ids(models.GroupParty))
}

func (s *GroupsTestSuite) TestReorderUnknownParticipant() {
	err := Reorder(s.participants, "ghost", "ana")
	s.Require().ErrorIs(err, ErrUnknownParticipant)

	err = Reorder(s.participants, "ana", "ghost")
	s.Require().ErrorIs(err, ErrUnknownParticipant)
}
