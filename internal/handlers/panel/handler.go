package panel

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/KirkDiggler/initiative-tracker/internal/common/uuid"
	"github.com/KirkDiggler/initiative-tracker/internal/models"
	itemsRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/items"
	metadataRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata"
	"github.com/KirkDiggler/initiative-tracker/internal/services/counting"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
	"github.com/KirkDiggler/initiative-tracker/internal/services/zipper"
)

// settingKeys are the room metadata keys a panel may patch
var settingKeys = map[string]bool{
	models.KeySortAscending:        true,
	models.KeyAdvancedControls:     true,
	models.KeyDisplayRound:         true,
	models.KeyDisableNotifications: true,
	models.KeyZipperEnabled:        true,
	models.KeyHighlightMode:        true,
}

// Config holds the configuration for the panel handler
type Config struct {
	// Sequencer services
	CountingService counting.Service
	ZipperService   zipper.Service

	// Store access for snapshots and socket relays
	ItemRepo     itemsRepo.Repository
	MetadataRepo metadataRepo.Repository
	Spotlight    spotlight.Service

	// UUIDGenerator labels socket connections in logs
	UUIDGenerator uuid.UUID
}

// Handler serves the browser panel API and its notification socket
type Handler struct {
	countingService counting.Service
	zipperService   zipper.Service
	itemRepo        itemsRepo.Repository
	metadataRepo    metadataRepo.Repository
	spotlight       spotlight.Service
	uuidGenerator   uuid.UUID
	router          *mux.Router
	upgrader        websocket.Upgrader
}

// New creates a new panel handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if cfg.CountingService == nil {
		return nil, errors.New("counting service cannot be nil")
	}
	if cfg.ZipperService == nil {
		return nil, errors.New("zipper service cannot be nil")
	}
	if cfg.ItemRepo == nil {
		return nil, errors.New("item repository cannot be nil")
	}
	if cfg.MetadataRepo == nil {
		return nil, errors.New("metadata repository cannot be nil")
	}
	if cfg.Spotlight == nil {
		return nil, errors.New("spotlight service cannot be nil")
	}

	generator := cfg.UUIDGenerator
	if generator == nil {
		generator = uuid.New()
	}

	h := &Handler{
		countingService: cfg.CountingService,
		zipperService:   cfg.ZipperService,
		itemRepo:        cfg.ItemRepo,
		metadataRepo:    cfg.MetadataRepo,
		spotlight:       cfg.Spotlight,
		uuidGenerator:   generator,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}

	r := mux.NewRouter()
	r.HandleFunc("/api/state", h.handleGetState).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", h.handleGetSettings).Methods(http.MethodGet)
	r.HandleFunc("/api/settings", h.handlePatchSettings).Methods(http.MethodPatch)
	r.HandleFunc("/api/participants", h.handleSaveParticipant).Methods(http.MethodPost)
	r.HandleFunc("/api/participants/{id}", h.handleDeleteParticipant).Methods(http.MethodDelete)
	r.HandleFunc("/api/participants/{id}/count", h.handleSetCount).Methods(http.MethodPut)
	r.HandleFunc("/api/counting/sort", h.handleSort).Methods(http.MethodPost)
	r.HandleFunc("/api/counting/advance", h.handleAdvance).Methods(http.MethodPost)
	r.HandleFunc("/api/zipper/ready", h.handleToggleReady).Methods(http.MethodPost)
	r.HandleFunc("/api/zipper/reorder", h.handleReorder).Methods(http.MethodPost)
	r.HandleFunc("/api/zipper/reset", h.handleReset).Methods(http.MethodPost)
	r.HandleFunc("/ws", h.handleSocket)
	h.router = r

	return h, nil
}

// ServeHTTP implements http.Handler
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.router.ServeHTTP(w, r)
}

func (h *Handler) handleGetState(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	roomOut, err := h.metadataRepo.Get(ctx, &metadataRepo.GetInput{Scope: metadataRepo.ScopeRoom})
	if err != nil {
		h.writeError(w, err)
		return
	}
	settings := models.SettingsFromMetadata(roomOut.Metadata)

	role := models.Role(r.URL.Query().Get("role"))
	visibleOnly := role != models.RoleGM

	response := &StateResponse{Settings: settings}
	if settings.ZipperEnabled {
		state, err := h.zipperService.GetState(ctx, &zipper.GetStateInput{VisibleOnly: visibleOnly})
		if err != nil {
			h.writeError(w, err)
			return
		}
		response.Mode = ModeZipper
		response.Zipper = state
	} else {
		state, err := h.countingService.GetState(ctx, &counting.GetStateInput{VisibleOnly: visibleOnly})
		if err != nil {
			h.writeError(w, err)
			return
		}
		response.Mode = ModeCounting
		response.Counting = state
	}

	h.writeJSON(w, http.StatusOK, response)
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	roomOut, err := h.metadataRepo.Get(r.Context(), &metadataRepo.GetInput{Scope: metadataRepo.ScopeRoom})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, models.SettingsFromMetadata(roomOut.Metadata))
}

func (h *Handler) handlePatchSettings(w http.ResponseWriter, r *http.Request) {
	var request SettingsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid settings body")
		return
	}

	values := make(map[string]interface{}, len(request))
	for key, value := range request {
		if !settingKeys[key] {
			h.writeBadRequest(w, "unknown setting: "+key)
			return
		}
		values[models.PluginKey(key)] = value
	}
	if len(values) == 0 {
		h.writeBadRequest(w, "no settings supplied")
		return
	}

	err := h.metadataRepo.Set(r.Context(), &metadataRepo.SetInput{
		Scope:  metadataRepo.ScopeRoom,
		Values: values,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) handleSaveParticipant(w http.ResponseWriter, r *http.Request) {
	var participant models.Participant
	if err := json.NewDecoder(r.Body).Decode(&participant); err != nil {
		h.writeBadRequest(w, "invalid participant body")
		return
	}
	if participant.ID == "" {
		h.writeBadRequest(w, "participant id is required")
		return
	}

	err := h.itemRepo.SaveParticipant(r.Context(), &itemsRepo.SaveParticipantInput{
		Participant: &participant,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, &participant)
}

func (h *Handler) handleDeleteParticipant(w http.ResponseWriter, r *http.Request) {
	itemID := mux.Vars(r)["id"]

	err := h.itemRepo.DeleteItem(r.Context(), &itemsRepo.DeleteItemInput{ItemID: itemID})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, struct{}{})
}

func (h *Handler) handleSetCount(w http.ResponseWriter, r *http.Request) {
	var request SetCountRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid count body")
		return
	}

	out, err := h.countingService.SetCount(r.Context(), &counting.SetCountInput{
		ParticipantID: mux.Vars(r)["id"],
		Count:         request.Count,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleSort(w http.ResponseWriter, r *http.Request) {
	out, err := h.countingService.Sort(r.Context(), &counting.SortInput{})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleAdvance(w http.ResponseWriter, r *http.Request) {
	var request AdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid advance body")
		return
	}

	out, err := h.countingService.Advance(r.Context(), &counting.AdvanceInput{
		Direction: counting.Direction(request.Direction),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleToggleReady(w http.ResponseWriter, r *http.Request) {
	var request ToggleReadyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid ready body")
		return
	}

	out, err := h.zipperService.ToggleReady(r.Context(), &zipper.ToggleReadyInput{
		ParticipantID: request.ParticipantID,
		Ready:         request.Ready,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleReorder(w http.ResponseWriter, r *http.Request) {
	var request ReorderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid reorder body")
		return
	}

	out, err := h.zipperService.Reorder(r.Context(), &zipper.ReorderInput{
		MovedID:  request.MovedID,
		TargetID: request.TargetID,
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) handleReset(w http.ResponseWriter, r *http.Request) {
	var request ResetRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		h.writeBadRequest(w, "invalid reset body")
		return
	}

	out, err := h.zipperService.Reset(r.Context(), &zipper.ResetInput{
		Role: models.Role(request.Role),
	})
	if err != nil {
		h.writeError(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.Printf("Failed to write response: %v", err)
	}
}

func (h *Handler) writeBadRequest(w http.ResponseWriter, message string) {
	h.writeJSON(w, http.StatusBadRequest, &ErrorResponse{Error: message})
}

func (h *Handler) writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, zipper.ErrParticipantNotFound):
		status = http.StatusNotFound
	case errors.Is(err, zipper.ErrRoundNotFinished):
		status = http.StatusForbidden
	case errors.Is(err, counting.ErrInvalidDirection):
		status = http.StatusBadRequest
	case errors.Is(err, itemsRepo.ErrItemMismatch):
		status = http.StatusConflict
	}

	if status == http.StatusInternalServerError {
		log.Printf("Request failed: %v", err)
	}
	h.writeJSON(w, status, &ErrorResponse{Error: err.Error()})
}
