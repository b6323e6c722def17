package discord

// UnavailableGuild represents a guild placeholder the session will populate
// lazily after the handshake.
type UnavailableGuild struct {
	ID          GuildID `json:"id"`
	Unavailable bool    `json:"unavailable"`
}
