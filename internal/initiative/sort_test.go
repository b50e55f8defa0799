package initiative

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

type SortTestSuite struct {
	suite.Suite
}

func TestSortTestSuite(t *testing.T) {
	suite.Run(t, new(SortTestSuite))
}

func (s *SortTestSuite) participantsWithCounts(counts ...string) []*models.Participant {
	participants := make([]*models.Participant, len(counts))
	for i, count := range counts {
		participants[i] = &models.Participant{
			ID:    count,
			Count: count,
		}
	}
	return participants
}

func (s *SortTestSuite) counts(participants []*models.Participant) []string {
	counts := make([]string, len(participants))
	for i, participant := range participants {
		counts[i] = participant.Count
	}
	return counts
}

func (s *SortTestSuite) TestDescending() {
	participants := s.participantsWithCounts("2", "15", "7")

	SortByCount(participants, false)

	s.Equal([]string{"15", "7", "2"}, s.counts(participants))
}

func (s *SortTestSuite) TestAscending() {
	participants := s.participantsWithCounts("2", "15", "7")

	SortByCount(participants, true)

	s.Equal([]string{"2", "7", "15"}, s.counts(participants))
}

func (s *SortTestSuite) TestUnparsableSortsLastDescending() {
	participants := s.participantsWithCounts("10", "abc", "2")

	SortByCount(participants, false)

	s.Equal([]string{"10", "2", "abc"}, s.counts(participants))
}

func (s *SortTestSuite) TestUnparsableSortsLastAscending() {
	participants := s.participantsWithCounts("10", "abc", "2")

	SortByCount(participants, true)

	s.Equal([]string{"2", "10", "abc"}, s.counts(participants))
}

func (s *SortTestSuite) TestIdempotent() {
	participants := s.participantsWithCounts("20", "12", "3", "")

	SortByCount(participants, false)
	once := s.counts(participants)

	SortByCount(participants, false)
	s.Equal(once, s.counts(participants))
}

func (s *SortTestSuite) TestTiesKeepRelativeOrder() {
	participants := []*models.Participant{
		{ID: "first", Count: "10"},
		{ID: "second", Count: "10"},
		{ID: "third", Count: "10"},
	}

	SortByCount(participants, false)

	s.Equal("first", participants[0].ID)
	s.Equal("second", participants[1].ID)
	s.Equal("third", participants[2].ID)
}

func (s *SortTestSuite) TestDecimalAndNegativeCounts() {
	participants := s.participantsWithCounts("-1", "0.5", "0.25")

	SortByCount(participants, true)

	s.Equal([]string{"-1", "0.25", "0.5"}, s.counts(participants))
}
