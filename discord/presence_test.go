package discord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xyzaurora/serenity-self/discord"
	"github.com/xyzaurora/serenity-self/wirejson"
)

func TestActivityTypeDecode(t *testing.T) {
	t.Parallel()

	for wire, expected := range map[string]discord.ActivityType{
		"0":                    discord.ActivityTypeGame,
		"1":                    discord.ActivityTypeStreaming,
		"2":                    discord.ActivityTypeListening,
		"3":                    discord.ActivityTypeWatching,
		"4":                    discord.ActivityTypeCustom,
		"5":                    discord.ActivityTypeCompeting,
		"6":                    discord.ActivityTypeUnknown,
		"42":                   discord.ActivityTypeUnknown,
		"-1":                   discord.ActivityTypeUnknown,
		"18446744073709551615": discord.ActivityTypeUnknown,
	} {
		var activityType discord.ActivityType

		err := wirejson.Unmarshal([]byte(wire), &activityType)
		assert.NoError(t, err, wire)
		assert.Equal(t, expected, activityType, wire)
	}
}

func TestActivityTypeDecodeNotANumber(t *testing.T) {
	t.Parallel()

	var activityType discord.ActivityType

	err := activityType.UnmarshalJSON([]byte(`"streaming"`))
	assert.ErrorIs(t, err, discord.ErrStructuralDecode)
}

func TestActivityTypeDefault(t *testing.T) {
	t.Parallel()

	var activity discord.Activity

	err := wirejson.Unmarshal([]byte(`{"name": "chess"}`), &activity)
	assert.NoError(t, err)
	assert.Equal(t, discord.ActivityTypeGame, activity.Type)
}

func TestActivityTypeEncodeUnknown(t *testing.T) {
	t.Parallel()

	_, err := discord.ActivityTypeUnknown.MarshalJSON()
	assert.ErrorIs(t, err, discord.ErrEncodeUnknownActivityType)

	out, err := discord.ActivityTypeCompeting.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "5", string(out))
}

func TestActivityFlagsRoundTrip(t *testing.T) {
	t.Parallel()

	// Bit 40 has no name; it must survive the round trip regardless.
	wire := []byte("1099511627907")

	var flags discord.ActivityFlags

	err := wirejson.Unmarshal(wire, &flags)
	assert.NoError(t, err)
	assert.True(t, flags.Has(discord.ActivityFlagInstance))
	assert.True(t, flags.Has(discord.ActivityFlagJoin))
	assert.False(t, flags.Has(discord.ActivityFlagSpectate))

	out, err := wirejson.Marshal(flags)
	assert.NoError(t, err)
	assert.Equal(t, string(wire), string(out))
}

func TestActivityButtonsDecodeEmpty(t *testing.T) {
	t.Parallel()

	var buttons discord.ActivityButtonList

	err := wirejson.Unmarshal([]byte("[]"), &buttons)
	assert.NoError(t, err)
	assert.Len(t, buttons, 0)

	err = buttons.UnmarshalJSON([]byte("null"))
	assert.NoError(t, err)
	assert.Len(t, buttons, 0)

	var activity discord.Activity

	err = wirejson.Unmarshal([]byte(`{"name": "chess"}`), &activity)
	assert.NoError(t, err)
	assert.Len(t, activity.Buttons, 0)
}

func TestActivityButtonsDecodeStrings(t *testing.T) {
	t.Parallel()

	var buttons discord.ActivityButtonList

	err := wirejson.Unmarshal([]byte(`["go", "stop"]`), &buttons)
	assert.NoError(t, err)
	assert.Equal(t, discord.ActivityButtonList{
		{Label: "go"},
		{Label: "stop"},
	}, buttons)
}

func TestActivityButtonsDecodeObjects(t *testing.T) {
	t.Parallel()

	var buttons discord.ActivityButtonList

	err := wirejson.Unmarshal([]byte(`[{"label": "go", "url": "http://x"}]`), &buttons)
	assert.NoError(t, err)
	assert.Equal(t, discord.ActivityButtonList{
		{Label: "go", URL: "http://x"},
	}, buttons)
}

func TestActivityButtonsDecodeBadElement(t *testing.T) {
	t.Parallel()

	var buttons discord.ActivityButtonList

	err := buttons.UnmarshalJSON([]byte("[42]"))
	assert.ErrorIs(t, err, discord.ErrStructuralDecode)

	err = buttons.UnmarshalJSON([]byte(`[{"url": "http://x"}]`))
	assert.ErrorIs(t, err, discord.ErrMissingRequiredField)
}

func TestActivityButtonsEncodeEmpty(t *testing.T) {
	t.Parallel()

	out, err := discord.ActivityButtonList{}.MarshalJSON()
	assert.NoError(t, err)
	assert.Equal(t, "[]", string(out))
}

func TestActivityMissingName(t *testing.T) {
	t.Parallel()

	var activity discord.Activity

	err := activity.UnmarshalJSON([]byte(`{"type": 0}`))
	assert.ErrorIs(t, err, discord.ErrMissingRequiredField)
}

func TestActivityConstructors(t *testing.T) {
	t.Parallel()

	playing := discord.NewGameActivity("chess")
	assert.Equal(t, "chess", playing.Name)
	assert.Equal(t, discord.ActivityTypeGame, playing.Type)
	assert.Nil(t, playing.URL)

	streaming := discord.NewStreamingActivity("chess", "https://stream.example")
	assert.Equal(t, discord.ActivityTypeStreaming, streaming.Type)
	if assert.NotNil(t, streaming.URL) {
		assert.Equal(t, "https://stream.example", *streaming.URL)
	}

	assert.Equal(t, discord.ActivityTypeListening, discord.NewListeningActivity("x").Type)
	assert.Equal(t, discord.ActivityTypeWatching, discord.NewWatchingActivity("x").Type)
	assert.Equal(t, discord.ActivityTypeCustom, discord.NewCustomActivity("x").Type)
	assert.Equal(t, discord.ActivityTypeCompeting, discord.NewCompetingActivity("x").Type)
}

func TestActivityEmojiMissingName(t *testing.T) {
	t.Parallel()

	var emoji discord.ActivityEmoji

	err := emoji.UnmarshalJSON([]byte(`{"id": "3"}`))
	assert.ErrorIs(t, err, discord.ErrMissingRequiredField)

	var activity discord.Activity

	err = activity.UnmarshalJSON([]byte(`{"name": "x", "type": 4, "emoji": {"id": "3"}}`))
	assert.Error(t, err)
}

func TestActivityEmojiDecode(t *testing.T) {
	t.Parallel()

	var emoji discord.ActivityEmoji

	err := wirejson.Unmarshal([]byte(`{"name": "blobwave", "id": "3", "animated": true}`), &emoji)
	assert.NoError(t, err)
	assert.Equal(t, "blobwave", emoji.Name)

	if assert.NotNil(t, emoji.ID) {
		assert.Equal(t, discord.EmojiID(3), *emoji.ID)
	}
}

func TestPresenceMissingStatus(t *testing.T) {
	t.Parallel()

	var presence discord.Presence

	err := presence.UnmarshalJSON([]byte(`{"user": {"id": "7"}, "activities": []}`))
	assert.ErrorIs(t, err, discord.ErrMissingRequiredField)
}

func TestPresenceDecode(t *testing.T) {
	t.Parallel()

	payload := []byte(`{
		"user": {"id": "80351110224678912", "username": "nelly"},
		"status": "idle",
		"client_status": {"desktop": "idle"},
		"guild_id": "197038439483310086",
		"activities": [{"name": "chess", "type": 2, "flags": 3}]
	}`)

	var presence discord.Presence

	err := wirejson.Unmarshal(payload, &presence)
	assert.NoError(t, err)
	assert.Equal(t, discord.OnlineStatusIdle, presence.Status)
	assert.Equal(t, discord.UserID(80351110224678912), presence.User.ID)

	if assert.NotNil(t, presence.ClientStatus) {
		if assert.NotNil(t, presence.ClientStatus.Desktop) {
			assert.Equal(t, discord.OnlineStatusIdle, *presence.ClientStatus.Desktop)
		}

		assert.Nil(t, presence.ClientStatus.Mobile)
	}

	if assert.Len(t, presence.Activities, 1) {
		activity := presence.Activities[0]
		assert.Equal(t, discord.ActivityTypeListening, activity.Type)

		if assert.NotNil(t, activity.Flags) {
			assert.True(t, activity.Flags.Has(discord.ActivityFlagInstance|discord.ActivityFlagJoin))
		}
	}
}
