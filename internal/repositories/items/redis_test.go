package items

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/initiative-tracker/internal/models"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) saveParticipant(participant *models.Participant) {
	err := s.repo.SaveParticipant(context.Background(), &SaveParticipantInput{
		Participant: participant,
	})
	s.Require().NoError(err)
}

func (s *RedisRepositoryTestSuite) getParticipants(visibleOnly bool) []*models.Participant {
	output, err := s.repo.GetParticipants(context.Background(), &GetParticipantsInput{
		VisibleOnly: visibleOnly,
	})
	s.Require().NoError(err)
	return output.Participants
}

func (s *RedisRepositoryTestSuite) TestSaveParticipantAndGet() {
	s.saveParticipant(&models.Participant{
		ID:      "goblin-1",
		Name:    "Goblin",
		Visible: true,
		Count:   "14",
		Active:  true,
		Ready:   false,
		Group:   models.GroupAdversaries,
	})

	participants := s.getParticipants(false)
	s.Require().Len(participants, 1)

	got := participants[0]
	s.Equal("goblin-1", got.ID)
	s.Equal("Goblin", got.Name)
	s.Equal("14", got.Count)
	s.True(got.Active)
	s.False(got.Ready)
	s.Equal(models.GroupAdversaries, got.Group)
	s.False(got.UpdatedAt.IsZero())
}

func (s *RedisRepositoryTestSuite) TestGetParticipantsSkipsForeignItems() {
	// An item written by some other extension, with no tracker metadata
	err := s.repo.SaveItem(context.Background(), &SaveItemInput{
		Item: &Item{
			ID:      "prop-1",
			Name:    "Treasure Chest",
			Visible: true,
			Metadata: map[string]json.RawMessage{
				"com.other-extension/state": json.RawMessage(`{"open":false}`),
			},
		},
	})
	s.Require().NoError(err)

	s.saveParticipant(&models.Participant{
		ID:      "hero-1",
		Name:    "Hero",
		Visible: true,
		Count:   "10",
	})

	participants := s.getParticipants(false)
	s.Require().Len(participants, 1)
	s.Equal("hero-1", participants[0].ID)
}

func (s *RedisRepositoryTestSuite) TestInsertionOrderSurvivesResave() {
	s.saveParticipant(&models.Participant{ID: "a", Name: "A", Count: "1"})
	s.saveParticipant(&models.Participant{ID: "b", Name: "B", Count: "2"})

	// Resaving the first participant must not move it to the end
	s.saveParticipant(&models.Participant{ID: "a", Name: "A renamed", Count: "1"})

	participants := s.getParticipants(false)
	s.Require().Len(participants, 2)
	s.Equal("a", participants[0].ID)
	s.Equal("A renamed", participants[0].Name)
	s.Equal("b", participants[1].ID)
}

func (s *RedisRepositoryTestSuite) TestVisibleOnlyFilter() {
	s.saveParticipant(&models.Participant{ID: "seen", Visible: true, Count: "3"})
	s.saveParticipant(&models.Participant{ID: "hidden", Visible: false, Count: "5"})

	all := s.getParticipants(false)
	s.Require().Len(all, 2)

	visible := s.getParticipants(true)
	s.Require().Len(visible, 1)
	s.Equal("seen", visible[0].ID)
}

func (s *RedisRepositoryTestSuite) TestSaveParticipantPreservesForeignMetadata() {
	err := s.repo.SaveItem(context.Background(), &SaveItemInput{
		Item: &Item{
			ID:   "hero-1",
			Name: "Hero",
			Metadata: map[string]json.RawMessage{
				"com.other-extension/hp": json.RawMessage(`42`),
			},
		},
	})
	s.Require().NoError(err)

	s.saveParticipant(&models.Participant{ID: "hero-1", Name: "Hero", Count: "12"})

	itemJSON, err := s.client.Get(context.Background(), "item:hero-1").Result()
	s.Require().NoError(err)

	var item Item
	s.Require().NoError(json.Unmarshal([]byte(itemJSON), &item))
	s.Contains(item.Metadata, "com.other-extension/hp")
	s.Contains(item.Metadata, models.PluginKey("metadata"))
}

func (s *RedisRepositoryTestSuite) TestUpdateParticipants() {
	s.saveParticipant(&models.Participant{ID: "a", Count: "1"})
	s.saveParticipant(&models.Participant{ID: "b", Count: "2"})

	err := s.repo.UpdateParticipants(context.Background(), &UpdateParticipantsInput{
		IDs: []string{"a", "b"},
		Mutate: func(participants []*models.Participant) {
			for i, participant := range participants {
				participant.Active = i == 0
			}
		},
	})
	s.Require().NoError(err)

	participants := s.getParticipants(false)
	s.Require().Len(participants, 2)
	s.True(participants[0].Active)
	s.False(participants[1].Active)
}

func (s *RedisRepositoryTestSuite) TestUpdateParticipantsMissingID() {
	s.saveParticipant(&models.Participant{ID: "a", Count: "1"})

	err := s.repo.UpdateParticipants(context.Background(), &UpdateParticipantsInput{
		IDs:    []string{"a", "gone"},
		Mutate: func(participants []*models.Participant) {},
	})
	s.Require().ErrorIs(err, ErrItemMismatch)

	// Nothing was written
	participants := s.getParticipants(false)
	s.Require().Len(participants, 1)
	s.False(participants[0].Active)
}

func (s *RedisRepositoryTestSuite) TestUpdateParticipantsForeignItem() {
	err := s.repo.SaveItem(context.Background(), &SaveItemInput{
		Item: &Item{ID: "prop-1", Name: "Treasure Chest"},
	})
	s.Require().NoError(err)

	err = s.repo.UpdateParticipants(context.Background(), &UpdateParticipantsInput{
		IDs:    []string{"prop-1"},
		Mutate: func(participants []*models.Participant) {},
	})
	s.Require().ErrorIs(err, ErrItemMismatch)
}

func (s *RedisRepositoryTestSuite) TestDeleteItem() {
	s.saveParticipant(&models.Participant{ID: "a", Count: "1"})
	s.saveParticipant(&models.Participant{ID: "b", Count: "2"})

	err := s.repo.DeleteItem(context.Background(), &DeleteItemInput{ItemID: "a"})
	s.Require().NoError(err)

	participants := s.getParticipants(false)
	s.Require().Len(participants, 1)
	s.Equal("b", participants[0].ID)
}

func (s *RedisRepositoryTestSuite) TestOnParticipantsChanged() {
	notified := make(chan struct{}, 1)

	sub, err := s.repo.OnParticipantsChanged(context.Background(), &OnParticipantsChangedInput{
		Handler: func() {
			select {
			case notified <- struct{}{}:
			default:
			}
		},
	})
	s.Require().NoError(err)
	defer func() { _ = sub.Close() }()

	s.saveParticipant(&models.Participant{ID: "a", Count: "1"})

	select {
	case <-notified:
	case <-time.After(2 * time.Second):
		s.Fail("expected a change notification")
	}
}
