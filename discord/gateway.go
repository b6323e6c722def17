package discord

import (
	"bytes"
	"fmt"

	"github.com/xyzaurora/serenity-self/wirejson"
)

// gateway.go contains the session negotiation payloads exchanged with the
// gateway.

// Gateway represents the plain gateway endpoint record.
type Gateway struct {
	URL string `json:"url"`
}

// BotGateway represents the bot gateway endpoint record, which also carries
// the recommended shard count and the session start window.
type BotGateway struct {
	URL               string            `json:"url"`
	SessionStartLimit SessionStartLimit `json:"session_start_limit"`
	Shards            int32             `json:"shards"`
}

// SessionStartLimit describes how many sessions may still be started within
// the current ratelimit window. Purely informational; enforcement is the
// connection layer's job.
type SessionStartLimit struct {
	Remaining      int32 `json:"remaining"`
	ResetAfter     int32 `json:"reset_after"`
	Total          int32 `json:"total"`
	MaxConcurrency int32 `json:"max_concurrency"`
}

// PartialApplication represents the application stub attached to the
// session bootstrap payload.
type PartialApplication struct {
	ID    ApplicationID `json:"id"`
	Flags int32         `json:"flags"`
}

// PresenceMap stores presences keyed by user ID. The gateway transmits them
// as a flat array; no ordering survives the round trip.
type PresenceMap map[UserID]Presence

func (m *PresenceMap) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*m = PresenceMap{}

		return nil
	}

	var presences []Presence
	if err := wirejson.Unmarshal(b, &presences); err != nil {
		return err
	}

	out := make(PresenceMap, len(presences))
	for _, presence := range presences {
		// A later occurrence of the same user wins.
		out[presence.User.ID] = presence
	}

	*m = out

	return nil
}

func (m PresenceMap) MarshalJSON() ([]byte, error) {
	presences := make([]Presence, 0, len(m))
	for _, presence := range m {
		presences = append(presences, presence)
	}

	return wirejson.Marshal(presences)
}

// ChannelMap stores private channels keyed by channel ID. Same wire shape
// as PresenceMap: a flat array on the wire, a mapping in memory.
type ChannelMap map[ChannelID]Channel

func (m *ChannelMap) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*m = ChannelMap{}

		return nil
	}

	var channels []Channel
	if err := wirejson.Unmarshal(b, &channels); err != nil {
		return err
	}

	out := make(ChannelMap, len(channels))
	for _, channel := range channels {
		out[channel.ID] = channel
	}

	*m = out

	return nil
}

func (m ChannelMap) MarshalJSON() ([]byte, error) {
	channels := make([]Channel, 0, len(m))
	for _, channel := range m {
		channels = append(channels, channel)
	}

	return wirejson.Marshal(channels)
}

// Ready represents the initial payload received after identifying. It is
// produced once per successful handshake and seeds the consumer's caches.
type Ready struct {
	Presences       PresenceMap          `json:"presences"`
	PrivateChannels ChannelMap           `json:"private_channels"`
	SessionID       string               `json:"session_id"`
	Trace           StringList           `json:"_trace,omitempty"`
	Shard           []int32              `json:"shard,omitempty"`
	Guilds          UnavailableGuildList `json:"guilds"`
	Application     PartialApplication   `json:"application"`
	User            CurrentUser          `json:"user"`
	Version         int32                `json:"v"`
}

// Used to avoid an unmarshal loop.
type marshalReady Ready

func (r *Ready) UnmarshalJSON(b []byte) error {
	var ready marshalReady
	if err := wirejson.Unmarshal(b, &ready); err != nil {
		return err
	}

	// The session ID is the resume token; a bootstrap without one is unusable.
	if ready.SessionID == "" {
		return fmt.Errorf("failed to unmarshal ready: session_id: %w", ErrMissingRequiredField)
	}

	*r = Ready(ready)

	return nil
}

// UpdateStatus is the payload a client sends to update its own presence.
type UpdateStatus struct {
	Activities ActivityList `json:"activities,omitempty"`
	Status     OnlineStatus `json:"status"`
	Since      int32        `json:"since,omitempty"`
	AFK        bool         `json:"afk"`
}
