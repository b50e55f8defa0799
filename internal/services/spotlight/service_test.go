package spotlight

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type SpotlightServiceTestSuite struct {
	suite.Suite
	mr      *miniredis.Miniredis
	client  *redis.Client
	service Service
}

func (s *SpotlightServiceTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	service, err := New(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.service = service
}

func (s *SpotlightServiceTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestSpotlightServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SpotlightServiceTestSuite))
}

func (s *SpotlightServiceTestSuite) subscribe() chan *Event {
	events := make(chan *Event, 4)

	sub, err := s.service.OnEvent(context.Background(), &OnEventInput{
		Handler: func(event *Event) {
			events <- event
		},
	})
	s.Require().NoError(err)
	s.T().Cleanup(func() { _ = sub.Close() })

	return events
}

func (s *SpotlightServiceTestSuite) receive(events chan *Event) *Event {
	select {
	case event := <-events:
		return event
	case <-time.After(2 * time.Second):
		s.FailNow("expected a spotlight event")
		return nil
	}
}

func (s *SpotlightServiceTestSuite) TestSelectRoundTrip() {
	events := s.subscribe()

	err := s.service.Select(context.Background(), &SelectInput{ParticipantID: "alice"})
	s.Require().NoError(err)

	event := s.receive(events)
	s.Equal(EventSelect, event.Kind)
	s.Equal("alice", event.ParticipantID)
	s.Empty(event.Text)
}

func (s *SpotlightServiceTestSuite) TestLabelCarriesTurnText() {
	events := s.subscribe()

	err := s.service.Label(context.Background(), &LabelInput{ParticipantID: "alice"})
	s.Require().NoError(err)

	event := s.receive(events)
	s.Equal(EventLabel, event.Kind)
	s.Equal("alice", event.ParticipantID)
	s.Equal("Your Turn!", event.Text)
}

func (s *SpotlightServiceTestSuite) TestClearLabel() {
	events := s.subscribe()

	err := s.service.ClearLabel(context.Background(), &ClearLabelInput{})
	s.Require().NoError(err)

	event := s.receive(events)
	s.Equal(EventClearLabel, event.Kind)
	s.Empty(event.ParticipantID)
}

func (s *SpotlightServiceTestSuite) TestSelectRequiresParticipantID() {
	err := s.service.Select(context.Background(), &SelectInput{})
	s.Require().Error(err)
}
