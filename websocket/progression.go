package websocket

import (
	"log"
	"sync"

	"coinquest/models"

	"github.com/gorilla/websocket"
)

// ProgressionClient represents a client connected for progression updates
type ProgressionClient struct {
	Conn      *websocket.Conn
	UserEmail string
	writeMu   sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (pc *ProgressionClient) SafeWriteJSON(v interface{}) error {
	pc.writeMu.Lock()
	defer pc.writeMu.Unlock()
	return pc.Conn.WriteJSON(v)
}

// Global progression hub for broadcasting events to all connected clients
var (
	progressionClients = make(map[*ProgressionClient]bool)
	progressionMutex   sync.RWMutex
)

// RegisterProgressionClient registers a client for progression updates
func RegisterProgressionClient(client *ProgressionClient) {
	progressionMutex.Lock()
	defer progressionMutex.Unlock()
	progressionClients[client] = true
	log.Printf("Progression client registered. Total clients: %d", len(progressionClients))
}

// UnregisterProgressionClient removes a client from progression updates
func UnregisterProgressionClient(client *ProgressionClient) {
	progressionMutex.Lock()
	defer progressionMutex.Unlock()
	delete(progressionClients, client)
	client.Conn.Close()
	log.Printf("Progression client unregistered. Total clients: %d", len(progressionClients))
}

// BroadcastProgressionEvent broadcasts a progression event to every client
// subscribed to the event's user.
func BroadcastProgressionEvent(event models.ProgressionEvent) {
	progressionMutex.RLock()
	defer progressionMutex.RUnlock()

	for client := range progressionClients {
		if client.UserEmail != "" && client.UserEmail != event.UserEmail {
			continue
		}
		if err := client.SafeWriteJSON(event); err != nil {
			log.Printf("Error broadcasting progression event to client: %v", err)
			// Remove client if write fails
			go UnregisterProgressionClient(client)
		}
	}
}

// GetProgressionClientsCount returns the number of connected clients
func GetProgressionClientsCount() int {
	progressionMutex.RLock()
	defer progressionMutex.RUnlock()
	return len(progressionClients)
}
