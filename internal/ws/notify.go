package ws

import (
	"encoding/json"
	"strings"
	"sync/atomic"
	"time"
)

// ContentUpdatedEvent tells connected front-ends which collection
// changed so they can refetch it.
type ContentUpdatedEvent struct {
	Type      string `json:"type"`
	Resource  string `json:"resource"`
	Action    string `json:"action"`
	ID        string `json:"id,omitempty"`
	Timestamp string `json:"timestamp"`
}

var defaultHub atomic.Pointer[Hub]

func SetDefaultHub(h *Hub) {
	defaultHub.Store(h)
}

func NotifyContentUpdated(resource, action, id string) {
	h := defaultHub.Load()
	if h == nil {
		return
	}

	resource = strings.TrimSpace(resource)
	if resource == "" {
		return
	}

	evt := ContentUpdatedEvent{
		Type:      "content_updated",
		Resource:  resource,
		Action:    action,
		ID:        id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	h.Broadcast(b)
}
