package zipper

import (
	"context"
	"errors"

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

// New creates a new zipper sequencer
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

// ToggleReady is the central zipper transition. Marking a participant
// not-ready activates it and records it on the previous-turn stack.
// Marking it ready again pops the stack and restores the entry now on top
// as the active participant. At most one participant is active afterwards.
func (s *service) ToggleReady(ctx context.Context, input *ToggleReadyInput) (*ToggleReadyOutput, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	sceneOut, err := s.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeScene})
	if err != nil {
		return nil, err
	}
	stack := models.ReadStringSlice(sceneOut.Metadata, models.KeyPreviousStack)

	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{})
	if err != nil {
		return nil, err
	}
	participants := participantsOut.Participants
	if findByID(participants, input.ParticipantID) == nil {
		return nil, ErrParticipantNotFound
	}

	becameActive := !input.Ready

	var newStack []string
	previousID := ""
	if becameActive {
		newStack = append(append([]string{}, stack...), input.ParticipantID)
	} else {
		newStack = []string{}
		if len(stack) > 0 {
			newStack = append(newStack, stack[:len(stack)-1]...)
		}
		if len(newStack) > 0 {
			previousID = newStack[len(newStack)-1]
		}
	}

	err = s.metadataRepo.Set(ctx, &metadataRepo.SetInput{
		Scope: metadataRepo.ScopeScene,
		Values: map[string]interface{}{
			models.PluginKey(models.KeyPreviousStack): newStack,
		},
	})
	if err != nil {
		return nil, err
	}

	err = s.itemRepo.UpdateParticipants(ctx, &itemsRepo.UpdateParticipantsInput{
		IDs: participantIDs(participants),
		Mutate: func(stored []*models.Participant) {
			for _, participant := range stored {
				switch {
				case participant.ID == input.ParticipantID:
					participant.Ready = input.Ready
					participant.Active = becameActive
				case !becameActive && participant.ID == previousID:
					participant.Active = true
				default:
					participant.Active = false
				}
			}
		},
	})
	if err != nil {
		return nil, err
	}

	activeID := ""
	if becameActive {
		activeID = input.ParticipantID
		s.highlight(ctx, settings.HighlightMode, activeID)
	} else {
		if len(newStack) == 0 {
			_ = s.spotlight.ClearLabel(ctx, &spotlight.ClearLabelInput{})
		}
		if previousID != "" {
			activeID = previousID
			s.highlight(ctx, settings.HighlightMode, activeID)
		}
	}

	return &ToggleReadyOutput{
		ActiveID:      activeID,
		PreviousStack: newStack,
	}, nil
}

// Reset starts a fresh round. The GM may always reset; a player only once
// the round is finished.
func (s *service) Reset(ctx context.Context, input *ResetInput) (*ResetOutput, error) {
	settings, err := s.getSettings(ctx)
	if err != nil {
		return nil, err
	}

	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{})
	if err != nil {
		return nil, err
	}
	participants := participantsOut.Participants

	if input.Role != models.RoleGM && !roundFinished(participants) {
		return nil, ErrRoundNotFinished
	}

	err = s.metadataRepo.Set(ctx, &metadataRepo.SetInput{
		Scope: metadataRepo.ScopeScene,
		Values: map[string]interface{}{
			models.PluginKey(models.KeyPreviousStack): []string{},
		},
	})
	if err != nil {
		return nil, err
	}

	if len(participants) > 0 {
		err = s.itemRepo.UpdateParticipants(ctx, &itemsRepo.UpdateParticipantsInput{
			IDs: participantIDs(participants),
			Mutate: func(stored []*models.Participant) {
				for _, participant := range stored {
					participant.Ready = true
					participant.Active = false
				}
			},
		})
		if err != nil {
			return nil, err
		}
	}

	if settings.HighlightMode == models.HighlightLabel {
		_ = s.spotlight.ClearLabel(ctx, &spotlight.ClearLabelInput{})
	}

	return &ResetOutput{}, nil
}

// Reorder applies a drag move and writes the recomputed group data back to
// the store. The write aborts untouched if the participant set changed
// underneath the drag.
func (s *service) Reorder(ctx context.Context, input *ReorderInput) (*ReorderOutput, error) {
	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{})
	if err != nil {
		return nil, err
	}
	participants := participantsOut.Participants
	initiative.NormalizeGroups(participants)

	if err := initiative.Reorder(participants, input.MovedID, input.TargetID); err != nil {
		if errors.Is(err, initiative.ErrUnknownParticipant) {
			return nil, ErrParticipantNotFound
		}
		return nil, err
	}

	err = s.itemRepo.UpdateParticipants(ctx, &itemsRepo.UpdateParticipantsInput{
		IDs: participantIDs(participants),
		Mutate: func(stored []*models.Participant) {
			for i, participant := range stored {
				participant.Group = participants[i].Group
				participant.GroupIndex = participants[i].GroupIndex
			}
		},
	})
	if err != nil {
		return nil, err
	}

	party, adversaries := initiative.SplitGroups(participants)

	return &ReorderOutput{
		Party:       party,
		Adversaries: adversaries,
	}, nil
}

// GetState returns both partitions in display order along with the undo
// stack and round bookkeeping
func (s *service) GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error) {
	if input == nil {
		input = &GetStateInput{}
	}

	sceneOut, err := s.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeScene})
	if err != nil {
		return nil, err
	}

	participantsOut, err := s.itemRepo.GetParticipants(ctx, &itemsRepo.GetParticipantsInput{
		VisibleOnly: input.VisibleOnly,
	})
	if err != nil {
		return nil, err
	}
	participants := participantsOut.Participants
	initiative.NormalizeGroups(participants)

	party, adversaries := initiative.SplitGroups(participants)

	return &GetStateOutput{
		Party:         party,
		Adversaries:   adversaries,
		PreviousStack: models.ReadStringSlice(sceneOut.Metadata, models.KeyPreviousStack),
		RoundCount:    models.ReadInt(sceneOut.Metadata, models.KeyRoundCount, 1),
		RoundFinished: roundFinished(participants),
	}, nil
}

func (s *service) getSettings(ctx context.Context) (models.Settings, error) {
	roomOut, err := s.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeRoom})
	if err != nil {
		return models.Settings{}, err
	}
	return models.SettingsFromMetadata(roomOut.Metadata), nil
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

// roundFinished reports whether no participant is still ready to act
func roundFinished(participants []*models.Participant) bool {
	for _, participant := range participants {
		if participant.Ready {
			return false
		}
	}
	return true
}

func findByID(participants []*models.Participant, id string) *models.Participant {
	for _, participant := range participants {
		if participant.ID == id {
			return participant
		}
	}
	return nil
}

func participantIDs(participants []*models.Participant) []string {
	ids := make([]string, len(participants))
	for i, participant := range participants {
		ids[i] = participant.ID
	}
	return ids
}
