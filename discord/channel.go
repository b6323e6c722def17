package discord

// channel.go contains the private channel structures delivered in the
// session bootstrap payload.

// ChannelType represents a channel's type.
type ChannelType uint16

// Channel types.
const (
	ChannelTypeGuildText ChannelType = iota
	ChannelTypeDM
	ChannelTypeGuildVoice
	ChannelTypeGroupDM
	ChannelTypeGuildCategory
)

// Channel represents a private channel.
type Channel struct {
	LastMessageID *MessageID  `json:"last_message_id,omitempty"`
	OwnerID       *UserID     `json:"owner_id,omitempty"`
	Icon          string      `json:"icon,omitempty"`
	Name          string      `json:"name,omitempty"`
	Recipients    UserList    `json:"recipients,omitempty"`
	ID            ChannelID   `json:"id"`
	Type          ChannelType `json:"type"`
}
