package discord

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/xyzaurora/serenity-self/wirejson"
)

// presence.go contains all structures for presence updates and activities.

// OnlineStatus represents a user's online status.
type OnlineStatus string

// Online statuses.
const (
	OnlineStatusOnline    OnlineStatus = "online"
	OnlineStatusIdle      OnlineStatus = "idle"
	OnlineStatusDND       OnlineStatus = "dnd"
	OnlineStatusInvisible OnlineStatus = "invisible"
	OnlineStatusOffline   OnlineStatus = "offline"
)

// ClientStatus represents the per-device online status of a user. Devices
// the user is not active on are omitted.
type ClientStatus struct {
	Desktop *OnlineStatus `json:"desktop,omitempty"`
	Mobile  *OnlineStatus `json:"mobile,omitempty"`
	Web     *OnlineStatus `json:"web,omitempty"`
}

// ActivityType represents an activity's type.
type ActivityType uint8

// Activity types. Codes follow the gateway's published table and are
// assigned by declaration order.
const (
	ActivityTypeGame ActivityType = iota
	ActivityTypeStreaming
	ActivityTypeListening
	ActivityTypeWatching
	ActivityTypeCustom
	ActivityTypeCompeting

	// ActivityTypeUnknown is the catch-all for codes the gateway introduced
	// after this table was written. Decoding never fails on them.
	ActivityTypeUnknown ActivityType = 255
)

const activityTypeMax = ActivityTypeCompeting

func (t *ActivityType) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*t = ActivityTypeGame

		return nil
	}

	i, err := strconv.ParseUint(string(b), 10, 64)
	if err != nil {
		// Negative codes are unsigned wraparound sentinels, not errors.
		if _, serr := strconv.ParseInt(string(b), 10, 64); serr == nil {
			*t = ActivityTypeUnknown

			return nil
		}

		return fmt.Errorf("failed to unmarshal activity type %s: %w", string(b), ErrStructuralDecode)
	}

	if i > uint64(activityTypeMax) {
		*t = ActivityTypeUnknown

		return nil
	}

	*t = ActivityType(i)

	return nil
}

func (t ActivityType) MarshalJSON() ([]byte, error) {
	if t > activityTypeMax {
		return nil, ErrEncodeUnknownActivityType
	}

	return []byte(strconv.FormatUint(uint64(t), 10)), nil
}

func (t ActivityType) String() string {
	switch t {
	case ActivityTypeGame:
		return "Playing"
	case ActivityTypeStreaming:
		return "Streaming"
	case ActivityTypeListening:
		return "Listening"
	case ActivityTypeWatching:
		return "Watching"
	case ActivityTypeCustom:
		return "Custom Status"
	case ActivityTypeCompeting:
		return "Competing"
	default:
		return "Unknown"
	}
}

// ActivityFlags represents an activity's capability flags. Bits outside the
// named set are retained so re-encoding reproduces the wire integer
// bit-for-bit.
type ActivityFlags uint64

// Activity flags.
const (
	ActivityFlagInstance ActivityFlags = 1 << iota
	ActivityFlagJoin
	ActivityFlagSpectate
	ActivityFlagJoinRequest
	ActivityFlagSync
	ActivityFlagPlay
	ActivityFlagPartyPrivacyFriends
	ActivityFlagPartyPrivacyVoiceChannel
	ActivityFlagEmbedded
)

// Has returns true when all bits of flag are set.
func (f ActivityFlags) Has(flag ActivityFlags) bool {
	return f&flag == flag
}

// ActivityTimestamps represents the starting and ending timestamp of an
// activity.
type ActivityTimestamps struct {
	Start int64 `json:"start,omitempty"`
	End   int64 `json:"end,omitempty"`
}

// ActivityParty represents an activity's current party information.
type ActivityParty struct {
	ID   string  `json:"id,omitempty"`
	Size []int32 `json:"size,omitempty"`
}

// ActivityAssets represents an activity's images and their hover texts.
type ActivityAssets struct {
	LargeImage string `json:"large_image,omitempty"`
	LargeText  string `json:"large_text,omitempty"`
	SmallImage string `json:"small_image,omitempty"`
	SmallText  string `json:"small_text,omitempty"`
}

// ActivitySecrets represents an activity's secrets for Rich Presence
// joining and spectating.
type ActivitySecrets struct {
	Join     string `json:"join,omitempty"`
	Match    string `json:"match,omitempty"`
	Spectate string `json:"spectate,omitempty"`
}

// ActivityEmoji represents an emoji used in a custom status.
type ActivityEmoji struct {
	ID       *EmojiID `json:"id,omitempty"`
	Animated *bool    `json:"animated,omitempty"`
	Name     string   `json:"name"`
}

// Used to avoid an unmarshal loop.
type marshalActivityEmoji ActivityEmoji

func (e *ActivityEmoji) UnmarshalJSON(b []byte) error {
	var emoji marshalActivityEmoji
	if err := wirejson.Unmarshal(b, &emoji); err != nil {
		return err
	}

	if emoji.Name == "" {
		return fmt.Errorf("failed to unmarshal activity emoji: name: %w", ErrMissingRequiredField)
	}

	*e = ActivityEmoji(emoji)

	return nil
}

// ActivityButton represents a button on an activity. The gateway never
// exposes the target URL of another user's buttons, so URL may be empty.
type ActivityButton struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// ActivityButtonList decodes the two shapes buttons arrive in: an array of
// plain label strings (legacy) or an array of {label, url} objects.
type ActivityButtonList []ActivityButton

func (l *ActivityButtonList) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, null) {
		*l = nil

		return nil
	}

	var elements []json.RawMessage
	if err := wirejson.Unmarshal(b, &elements); err != nil {
		return fmt.Errorf("failed to unmarshal buttons: %w", ErrStructuralDecode)
	}

	buttons := make(ActivityButtonList, 0, len(elements))

	for _, element := range elements {
		element = bytes.TrimSpace(element)
		if len(element) == 0 {
			return fmt.Errorf("failed to unmarshal buttons: %w", ErrStructuralDecode)
		}

		switch element[0] {
		case '"':
			var label string
			if err := wirejson.Unmarshal(element, &label); err != nil {
				return fmt.Errorf("failed to unmarshal buttons: %w", ErrStructuralDecode)
			}

			buttons = append(buttons, ActivityButton{Label: label})
		case '{':
			var button struct {
				Label *string `json:"label"`
				URL   string  `json:"url"`
			}

			if err := wirejson.Unmarshal(element, &button); err != nil {
				return fmt.Errorf("failed to unmarshal buttons: %w", ErrStructuralDecode)
			}

			if button.Label == nil {
				return fmt.Errorf("failed to unmarshal buttons: label: %w", ErrMissingRequiredField)
			}

			buttons = append(buttons, ActivityButton{Label: *button.Label, URL: button.URL})
		default:
			return fmt.Errorf("failed to unmarshal buttons: element is neither a string nor an object: %w", ErrStructuralDecode)
		}
	}

	*l = buttons

	return nil
}

func (l ActivityButtonList) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return wirejson.Marshal([]ActivityButton(l))
}

// Activity represents an activity as sent as part of presence updates.
type Activity struct {
	Timestamps    *ActivityTimestamps `json:"timestamps,omitempty"`
	ApplicationID *ApplicationID      `json:"application_id,omitempty"`
	Party         *ActivityParty      `json:"party,omitempty"`
	Assets        *ActivityAssets     `json:"assets,omitempty"`
	Secrets       *ActivitySecrets    `json:"secrets,omitempty"`
	Emoji         *ActivityEmoji      `json:"emoji,omitempty"`
	Flags         *ActivityFlags      `json:"flags,omitempty"`
	URL           *string             `json:"url,omitempty"`
	Details       *string             `json:"details,omitempty"`
	State         *string             `json:"state,omitempty"`
	Instance      *bool               `json:"instance,omitempty"`
	Name          string              `json:"name"`
	Buttons       ActivityButtonList  `json:"buttons,omitempty"`
	Type          ActivityType        `json:"type"`
}

// Used to avoid an unmarshal loop.
type marshalActivity Activity

func (a *Activity) UnmarshalJSON(b []byte) error {
	var activity marshalActivity
	if err := wirejson.Unmarshal(b, &activity); err != nil {
		return err
	}

	if activity.Name == "" {
		return fmt.Errorf("failed to unmarshal activity: name: %w", ErrMissingRequiredField)
	}

	*a = Activity(activity)

	return nil
}

func newActivity(name string, activityType ActivityType) Activity {
	return Activity{
		Name: name,
		Type: activityType,
	}
}

// NewGameActivity returns an activity shown as `Playing <name>`. The
// gateway truncates names past 128 characters.
func NewGameActivity(name string) Activity {
	return newActivity(name, ActivityTypeGame)
}

// NewStreamingActivity returns an activity shown as `Streaming <name>`.
// This is the only activity that carries a stream URL.
func NewStreamingActivity(name, url string) Activity {
	activity := newActivity(name, ActivityTypeStreaming)
	activity.URL = &url

	return activity
}

// NewListeningActivity returns an activity shown as `Listening to <name>`.
func NewListeningActivity(name string) Activity {
	return newActivity(name, ActivityTypeListening)
}

// NewWatchingActivity returns an activity shown as `Watching <name>`.
func NewWatchingActivity(name string) Activity {
	return newActivity(name, ActivityTypeWatching)
}

// NewCustomActivity returns a custom status activity.
func NewCustomActivity(name string) Activity {
	return newActivity(name, ActivityTypeCustom)
}

// NewCompetingActivity returns an activity shown as `Competing in <name>`.
func NewCompetingActivity(name string) Activity {
	return newActivity(name, ActivityTypeCompeting)
}

// PresenceUser represents the partial user attached to a presence update.
// Presence payloads only carry the fields that changed since the last full
// user record, so everything except the ID is optional.
type PresenceUser struct {
	Avatar        *string        `json:"avatar,omitempty"`
	Bot           *bool          `json:"bot,omitempty"`
	Discriminator *Discriminator `json:"discriminator,omitempty"`
	Email         *string        `json:"email,omitempty"`
	MFAEnabled    *bool          `json:"mfa_enabled,omitempty"`
	Username      *string        `json:"username,omitempty"`
	Verified      *bool          `json:"verified,omitempty"`
	PublicFlags   *UserFlags     `json:"public_flags,omitempty"`
	ID            UserID         `json:"id"`
}

// ToUser converts the partial view into a canonical User. It returns false
// when the view does not carry enough fields to build one; presence deltas
// routinely omit fields that did not change, so this is not an error.
func (u *PresenceUser) ToUser() (User, bool) {
	if u.Bot == nil || u.Discriminator == nil || u.Username == nil {
		return User{}, false
	}

	return User{
		ID:            u.ID,
		Avatar:        u.Avatar,
		Bot:           *u.Bot,
		Discriminator: *u.Discriminator,
		Username:      *u.Username,
		PublicFlags:   u.PublicFlags,
	}, true
}

// UpdateWithUser merges a fresh canonical record into the view. A nil
// avatar on the incoming record means "unchanged", not "unset".
func (u *PresenceUser) UpdateWithUser(user User) {
	u.ID = user.ID

	if user.Avatar != nil {
		u.Avatar = user.Avatar
	}

	u.Bot = &user.Bot
	u.Discriminator = &user.Discriminator
	u.Username = &user.Username

	if user.PublicFlags != nil {
		u.PublicFlags = user.PublicFlags
	}
}

// Presence represents a user's current online state and activities.
type Presence struct {
	ClientStatus *ClientStatus `json:"client_status,omitempty"`
	GuildID      *GuildID      `json:"guild_id,omitempty"`
	Status       OnlineStatus  `json:"status"`
	Activities   ActivityList  `json:"activities"`
	User         PresenceUser  `json:"user"`
}

// Used to avoid an unmarshal loop.
type marshalPresence Presence

func (p *Presence) UnmarshalJSON(b []byte) error {
	var presence marshalPresence
	if err := wirejson.Unmarshal(b, &presence); err != nil {
		return err
	}

	if presence.Status == "" {
		return fmt.Errorf("failed to unmarshal presence: status: %w", ErrMissingRequiredField)
	}

	*p = Presence(presence)

	return nil
}
