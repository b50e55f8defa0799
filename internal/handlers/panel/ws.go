package panel

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/gorilla/websocket"

	itemsRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/items"
	metadataRepo "github.com/KirkDiggler/initiative-tracker/internal/repositories/metadata"
	"github.com/KirkDiggler/initiative-tracker/internal/services/spotlight"
)

// handleSocket upgrades the connection and relays store notifications to
// the panel until it disconnects. Panels re-read state over HTTP on every
// notification rather than patching incrementally.
func (h *Handler) handleSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("Failed to upgrade panel socket: %v", err)
		return
	}
	defer conn.Close()

	clientID := h.uuidGenerator.NewUUID()
	log.Printf("Panel connected: %s", clientID)

	send := make(chan *Notification, 16)
	notify := func(notification *Notification) {
		select {
		case send <- notification:
		default:
			log.Printf("Panel %s is slow, dropping notification", clientID)
		}
	}

	ctx := r.Context()

	itemsSub, err := h.itemRepo.OnParticipantsChanged(ctx, &itemsRepo.OnParticipantsChangedInput{
		Handler: func() {
			notify(&Notification{Type: NotificationItems})
		},
	})
	if err != nil {
		log.Printf("Failed to subscribe panel %s to item changes: %v", clientID, err)
		return
	}
	defer itemsSub.Close()

	for _, scope := range []metadataRepo.Scope{metadataRepo.ScopeRoom, metadataRepo.ScopeScene} {
		scope := scope
		metaSub, err := h.metadataRepo.OnChanged(ctx, &metadataRepo.OnChangedInput{
			Scope: scope,
			Handler: func() {
				notify(&Notification{Type: NotificationMetadata, Scope: string(scope)})
			},
		})
		if err != nil {
			log.Printf("Failed to subscribe panel %s to %s metadata: %v", clientID, scope, err)
			return
		}
		defer metaSub.Close()
	}

	spotlightSub, err := h.spotlight.OnEvent(ctx, &spotlight.OnEventInput{
		Handler: func(event *spotlight.Event) {
			notify(&Notification{Type: NotificationSpotlight, Event: event})
		},
	})
	if err != nil {
		log.Printf("Failed to subscribe panel %s to spotlight events: %v", clientID, err)
		return
	}
	defer spotlightSub.Close()

	done := make(chan struct{})

	// Writer: forward notifications until the reader sees a disconnect
	go func() {
		for {
			select {
			case notification := <-send:
				payload, err := json.Marshal(notification)
				if err != nil {
					log.Printf("Failed to marshal notification: %v", err)
					continue
				}
				if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	// Reader: panels send nothing meaningful, this just detects disconnect
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
	close(done)

	log.Printf("Panel disconnected: %s", clientID)
}
