package counting

import (
	"context"

	"github.com/KirkDiggler/initiative-tracker/internal/initiative"
	"github.com/KirkDiggler/initiative-tracker/internal/models"
	itemsRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/items"
	metadataRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
)

// service implements the Service interface
type service struct {
	itemRepo     itemsRepo.Repository
	metadataRepo metadataRepo.Repository
	spotlight    spotlight.Service
}

// New creates a new counting sequencer
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.ItemRepo == nil {
		return nil, ErrNilItemRepo
	}
	if cfg.MetadataRepo == nil {
		return nil, ErrNilMetadataRepo
	}
	if cfg.Spotlight == nil {
		return nil, ErrNilSpotlight
	}

	return &service{
		itemRepo:     cfg.ItemRepo,
		metadataRepo: cfg.MetadataRepo,
		spotlight:    cfg.Spotlight,
	}, nil
}

// Sort orders all participants by the numeric value of their count,
// activates the first one, and persists the new order map.
func (s *service) Sort(ctx context.Context, input *SortInput) (*SortOutput, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{})
	if err != nil {
		return nil, err
	}

	participants := participantsOut.Participants
	if len(participants) == 0 {
		return &SortOutput{}, nil
	}

	initiative.SortByCount(participants, settings.SortAscending)

	err = s.metadataRepo.Set(ctx, &metadataRepo.SetInput{
		Scope: metadataRepo.ScopeScene,
		Values: map[string]interface{}{
			models.PluginKey(models.KeyOrder): initiative.RecordOrder(participants),
		},
	})
	if err != nil {
		return nil, err
	}

	err = s.itemRepo.UpdateParticipants(ctx, &itemsRepo.UpdateParticipantsInput{
		IDs: participantIDs(participants),
		Mutate: func(stored []*models.Participant) {
			for i, participant := range stored {
				participant.Active = i == 0
			}
		},
	})
	if err != nil {
		return nil, err
	}

	activeID := participants[0].ID
	s.highlight(ctx, settings.HighlightMode, activeID)

	return &SortOutput{
		Participants: participants,
		ActiveID:     activeID,
	}, nil
}

// Advance moves the active cursor one step through the display order,
// wrapping at either end. A forward wrap increments the round count and a
// backward wrap decrements it while it is above one, both only when round
// tracking is enabled.
func (s *service) Advance(ctx context.Context, input *AdvanceInput) (*AdvanceOutput, error) {
	var delta int
	switch input.Direction {
	case DirectionNext:
		delta = 1
	case DirectionPrevious:
		delta = -1
	default:
		return nil, ErrInvalidDirection
	}

	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	sceneOut, err := s.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeScene})
	if err != nil {
		return nil, err
	}
	order := initiative.Order(models.ReadStringMap(sceneOut.Metadata, models.KeyOrder))
	roundCount := models.ReadInt(sceneOut.Metadata, models.KeyRoundCount, 1)

	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{})
	if err != nil {
		return nil, err
	}
	if len(participantsOut.Participants) == 0 {
		return &AdvanceOutput{RoundCount: roundCount}, nil
	}

	ordered := initiative.ComputeOrder(participantsOut.Participants, order)
	total := len(ordered)

	newIndex := activeIndex(ordered) + delta
	roundsEnabled := settings.AdvancedControls && settings.DisplayRound
	if newIndex < 0 {
		newIndex += total
		if newIndex < 0 {
			newIndex = 0
		}
		if roundsEnabled && roundCount > 1 {
			roundCount--
			if err := s.setRoundCount(ctx, roundCount); err != nil {
				return nil, err
			}
		}
	} else if newIndex >= total {
		newIndex = newIndex % total
		if roundsEnabled {
			roundCount++
			if err := s.setRoundCount(ctx, roundCount); err != nil {
				return nil, err
			}
		}
	}

	err = s.itemRepo.UpdateParticipants(ctx, &itemsRepo.UpdateParticipantsInput{
		IDs: participantIDs(ordered),
		Mutate: func(stored []*models.Participant) {
			for i, participant := range stored {
				participant.Active = i == newIndex
			}
		},
	})
	if err != nil {
		return nil, err
	}

	activeID := ordered[newIndex].ID
	s.highlight(ctx, settings.HighlightMode, activeID)

	return &AdvanceOutput{
		ActiveID:   activeID,
		RoundCount: roundCount,
	}, nil
}

// SetCount updates a single participant's count
func (s *service) SetCount(ctx context.Context, input *SetCountInput) (*SetCountOutput, error) {
	err := s.itemRepo.UpdateParticipants(ctx, &itemsRepo.UpdateParticipantsInput{
		IDs: []string{input.ParticipantID},
		Mutate: func(stored []*models.Participant) {
			for _, participant := range stored {
				participant.Count = input.Count
			}
		},
	})
	if err != nil {
		return nil, err
	}

	return &SetCountOutput{}, nil
}

// GetState returns the current display order and round count
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		input = &GetStateInput{}
	}

	sceneOut, err := s.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeScene})
	if err != nil {
		return nil, err
	}
	order := initiative.Order(models.ReadStringMap(sceneOut.Metadata, models.KeyOrder))
	roundCount := models.ReadInt(sceneOut.Metadata, models.KeyRoundCount, 1)

	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{
		VisibleOnly: input.VisibleOnly,
	})
	if err != nil {
		return nil, err
	}

	return &GetStateOutput{
		Participants: initiative.ComputeOrder(participantsOut.Participants, order),
		RoundCount:   roundCount,
	}, nil
}

func (s *service) getSettings(ctx context.Context) (models.Settings, error) {
	roomOut, err := s.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeRoom})
	if err != nil {
		return models.Settings{}, err
	}
	return models.SettingsFromMetadata(roomOut.Metadata), nil
}

func (s *service) setRoundCount(ctx context.Context, roundCount int) error {
	return s.metadataRepo.Set(ctx, &metadataRepo.SetInput{
		Scope: metadataRepo.ScopeScene,
		Values: map[string]interface{}{
			models.PluginKey(models.KeyRoundCount): roundCount,
		},
	})
}

// activeIndex returns the display index of the active participant, or -1
// when no participant is active
func activeIndex(participants []*models.Participant) int {
	for i, participant := range participants {
		if participant.Active {
			return i
		}
	}
	return -1
}

// highlight fires the configured side effect for a newly active
// participant. The channel is fire-and-forget, so failures are dropped.
func (s *service) highlight(ctx context.Context, mode models.HighlightMode, participantID string) {
	switch mode {
	case models.HighlightSelect:
		_ = s.spotlight.Select(ctx, &spotlight.SelectInput{ParticipantID: participantID})
	case models.HighlightLabel:
		_ = s.spotlight.Label(ctx, &spotlight.LabelInput{ParticipantID: participantID})
	}
}

func participantIDs(participants []*models.Participant) []string {
	ids := make([]string, len(participants))
	for i, participant := range participants {
		ids[i] = participant.ID
	}
	return ids
}
