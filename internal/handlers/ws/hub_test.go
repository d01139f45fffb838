package ws

import (
	"testing"

	"github.com/stretchr/testify/suite"
)

type HubTestSuite struct {
	suite.Suite
	hub *Hub
}

func (s *HubTestSuite) SetupTest() {
	s.hub = NewHub(DefaultHubConfig())
}

func TestHubTestSuite(t *testing.T) {
	suite.Run(t, new(HubTestSuite))
}

// addConnection registers a connection without a socket or write pump so
// the queue side of the hub can be exercised directly
func (s *HubTestSuite) addConnection(connectionID string) *connection {
	c := &connection{
		id:   connectionID,
		send: make(chan []byte, s.hub.config.SendBuffer),
		hub:  s.hub,
	}

	s.hub.mu.Lock()
	s.hub.connections[connectionID] = c
	s.hub.mu.Unlock()

	return c
}

// TestSendToRemovedConnectionIsDropped covers the window where a
// broadcast snapshots its targets, a disconnect removes one of them, and
// the send runs afterwards. The frame must be dropped, not panic on the
// closed queue.
func (s *HubTestSuite) TestSendToRemovedConnectionIsDropped() {
	c := s.addConnection("conn-1")

	// Snapshot the target the way broadcast does, then lose the race
	// with the disconnect.
	s.hub.mu.RLock()
	targets := make([]*connection, 0, len(s.hub.connections))
	for _, target := range s.hub.connections {
		targets = append(targets, target)
	}
	s.hub.mu.RUnlock()

	s.hub.Remove("conn-1")

	s.Require().NotPanics(func() {
		for _, target := range targets {
			target.trySend([]byte(`{"type":"players"}`))
		}
	})

	// The queue is closed and carries nothing
	frame, open := <-c.send
	s.Nil(frame)
	s.False(open)
}

func (s *HubTestSuite) TestRemoveTwiceIsSafe() {
	s.addConnection("conn-1")

	s.hub.Remove("conn-1")
	s.Require().NotPanics(func() {
		s.hub.Remove("conn-1")
	})
	s.Equal(0, s.hub.Count())
}

func (s *HubTestSuite) TestBroadcastSkipsRemovedConnection() {
	live := s.addConnection("conn-1")
	s.addConnection("conn-2")

	s.hub.Remove("conn-2")
	s.hub.Players([]string{"Alice"})

	s.Require().Len(live.send, 1)
	s.JSONEq(`{"type":"players","data":{"names":["Alice"]}}`, string(<-live.send))
}

func (s *HubTestSuite) TestUnicastToUnknownConnectionIsDropped() {
	s.Require().NotPanics(func() {
		s.hub.JoinAck("conn-ghost", true, "")
	})
}
