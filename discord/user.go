package discord

import (
	"bytes"
	"fmt"
	"strconv"
)

// user.go represents all structures for a discord user.

// UserFlags represents the flags on a user's account.
type UserFlags uint32

// User flags.
const (
	UserFlagsDiscordEmployee UserFlags = 1 << iota
	UserFlagsPartneredServerOwner
	UserFlagsHypeSquadEvents
	UserFlagsBugHunterLevel1
	_
	_
	UserFlagsHouseBravery
	UserFlagsHouseBrilliance
	UserFlagsHouseBalance
	UserFlagsEarlySupporter
	UserFlagsTeamUser
	_
	_
	_
	UserFlagsBugHunterLevel2
	_
	UserFlagsVerifiedBot
	UserFlagsVerifiedDeveloper
	UserFlagsCertifiedModerator
	UserFlagsBotHTTPInteractions
	_
	_
	UserFlagsActiveDeveloper
)

// Discriminator is transmitted as a zero-padded 4 digit string but stored
// as an integer. An absent field means the discriminator is unknown; it is
// omitted again on encode.
type Discriminator uint16

func (d *Discriminator) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*d = 0

		return nil
	}

	s := string(b)
	if b[0] == '"' && len(b) >= 2 {
		s = string(b[1 : len(b)-1])
	}

	i, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return fmt.Errorf("failed to unmarshal discriminator %q: %w", s, ErrStructuralDecode)
	}

	*d = Discriminator(i)

	return nil
}

func (d Discriminator) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

func (d Discriminator) String() string {
	return fmt.Sprintf("%04d", uint16(d))
}

// User represents the canonical, complete record of a user.
type User struct {
	Member        *GuildMember  `json:"member,omitempty"`
	Avatar        *string       `json:"avatar"`
	Banner        *string       `json:"banner,omitempty"`
	AccentColor   *int32        `json:"accent_color,omitempty"`
	PublicFlags   *UserFlags    `json:"public_flags,omitempty"`
	Username      string        `json:"username"`
	ID            UserID        `json:"id"`
	Discriminator Discriminator `json:"discriminator"`
	Bot           bool          `json:"bot"`
}

// CurrentUser represents the authenticated account as delivered in the
// session bootstrap payload.
type CurrentUser struct {
	Avatar        *string       `json:"avatar"`
	PublicFlags   *UserFlags    `json:"public_flags,omitempty"`
	Email         *string       `json:"email,omitempty"`
	Username      string        `json:"username"`
	Locale        string        `json:"locale,omitempty"`
	ID            UserID        `json:"id"`
	Discriminator Discriminator `json:"discriminator"`
	MFAEnabled    bool          `json:"mfa_enabled"`
	Verified      bool          `json:"verified"`
	Bot           bool          `json:"bot"`
}

// GuildMember represents the guild membership fields that can accompany a
// user record.
type GuildMember struct {
	Nick     string     `json:"nick,omitempty"`
	Avatar   string     `json:"avatar,omitempty"`
	JoinedAt string     `json:"joined_at,omitempty"`
	Roles    RoleIDList `json:"roles"`
	Deaf     bool       `json:"deaf"`
	Mute     bool       `json:"mute"`
}
