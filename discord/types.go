package discord

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/xyzaurora/serenity-self/wirejson"
)

const DiscordCreation = 1420070400000

var null = []byte("null")

// Placeholder type for easy identification.
type Snowflake int64

func (s *Snowflake) IsNil() bool {
	return *s == 0
}

func toSnowflake(b []byte, s *Snowflake) error {
	if !bytes.Equal(b, null) {
		if b[0] == '"' && len(b) >= 2 {
			i, err := strconv.ParseInt(string(b[1:len(b)-1]), 10, 64)
			if err != nil {
				return fmt.Errorf("failed to unmarshal snowflake: %w", ErrStructuralDecode)
			}

			*s = Snowflake(i)
		} else {
			i, err := strconv.ParseInt(string(b), 10, 64)
			if err != nil {
				return fmt.Errorf("failed to unmarshal snowflake: %w", ErrStructuralDecode)
			}

			*s = Snowflake(i)
		}
	} else {
		*s = 0
	}

	return nil
}

func (s *Snowflake) UnmarshalJSON(b []byte) error {
	return toSnowflake(b, s)
}

func (s Snowflake) MarshalJSON() ([]byte, error) {
	return int64ToStringBytes(int64(s)), nil
}

func (s Snowflake) String() string {
	return strconv.FormatInt(int64(s), 10)
}

// Time returns the creation time of the Snowflake.
func (s Snowflake) Time() time.Time {
	nsec := (int64(s) >> 22) + DiscordCreation

	return time.Unix(0, nsec*1000000)
}

func int64ToStringBytes(s int64) []byte {
	buf := make([]byte, 0, 24) // maxInt64JsonLength + 2

	buf = append(buf, '"')
	buf = strconv.AppendInt(buf, s, 10)
	buf = append(buf, '"')

	return buf
}

type List[T any] []T

func (l List[T]) MarshalJSON() ([]byte, error) {
	if len(l) == 0 {
		return []byte("[]"), nil
	}

	return wirejson.Marshal([]T(l))
}

type StringList = List[string]
type ActivityList = List[Activity]
type UserList = List[User]
type UnavailableGuildList = List[UnavailableGuild]
type RoleIDList = List[RoleID]
