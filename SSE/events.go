package SSE

import (
	"fmt"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// Broadcaster fans messages out to SSE clients. Clients subscribe to a
// topic ("refresh" for list invalidation, "chat:<patientID>" for a
// conversation) so chat chunks only reach the screen that wants them.
type Broadcaster struct {
	topics map[string]map[chan string]bool
	mu     sync.Mutex
}

func NewBroadcaster() *Broadcaster {
	return &Broadcaster{
		topics: make(map[string]map[chan string]bool),
	}
}

// Register adds a new client to a topic.
func (b *Broadcaster) Register(topic string, client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.topics[topic] == nil {
		b.topics[topic] = make(map[chan string]bool)
	}
	b.topics[topic][client] = true
}

// Unregister removes a client from a topic.
func (b *Broadcaster) Unregister(topic string, client chan string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	clients := b.topics[topic]
	if clients == nil || !clients[client] {
		return
	}
	delete(clients, client)
	close(client)
	if len(clients) == 0 {
		delete(b.topics, topic)
	}
}

// Broadcast sends a message to every client on a topic.
func (b *Broadcaster) Broadcast(topic, message string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for client := range b.topics[topic] {
		select {
		case client <- message:
		case <-time.After(1 * time.Second):
			// If the client is not responding, unregister them.
			delete(b.topics[topic], client)
			close(client)
		}
	}
}

var Events = NewBroadcaster()

// ChatTopic names the per-conversation event stream.
func ChatTopic(patientID uint) string {
	return fmt.Sprintf("chat:%d", patientID)
}

// Stream serves one client's event stream for a topic until it disconnects.
func Stream(c *gin.Context, topic string) {
	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("Access-Control-Allow-Origin", "*")

	clientChan := make(chan string)

	Events.Register(topic, clientChan)
	defer Events.Unregister(topic, clientChan)
	fmt.Fprintf(c.Writer, "data: %s\n\n", "connected")
	c.Writer.Flush()
	for {
		select {
		case message, ok := <-clientChan:
			if !ok {
				return
			}
			fmt.Fprintf(c.Writer, "data: %s\n\n", message)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			// Client disconnected
			return
		}
	}
}
