package main

import (
	"flag"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/xyzaurora/serenity-self/discord"
	"github.com/xyzaurora/serenity-self/wirejson"
)

// readyinspect decodes a session bootstrap payload from a file or stdin and
// logs a summary of it. Useful when diffing what the gateway actually sent
// against what a client cached.

func main() {
	reencode := flag.Bool("reencode", false, "write the re-encoded payload to stdout")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	var reader io.Reader = os.Stdin

	if flag.NArg() > 0 {
		file, err := os.Open(flag.Arg(0))
		if err != nil {
			logger.Fatal().Err(err).Str("path", flag.Arg(0)).Msg("Failed to open payload")
		}

		defer file.Close()

		reader = file
	}

	var ready discord.Ready
	if err := wirejson.UnmarshalReader(reader, &ready); err != nil {
		logger.Fatal().Err(err).Msg("Failed to decode payload")
	}

	logger.Info().
		Str("session_id", ready.SessionID).
		Int32("version", ready.Version).
		Str("username", ready.User.Username).
		Int("guilds", len(ready.Guilds)).
		Int("presences", len(ready.Presences)).
		Int("private_channels", len(ready.PrivateChannels)).
		Ints32("shard", ready.Shard).
		Msg("Decoded session bootstrap")

	for userID, presence := range ready.Presences {
		event := logger.Info().
			Str("user_id", discord.Snowflake(userID).String()).
			Str("status", string(presence.Status))

		for _, activity := range presence.Activities {
			event = event.Str("activity", activity.Type.String()+" "+activity.Name)
		}

		event.Msg("Presence")
	}

	if *reencode {
		out, err := wirejson.Marshal(ready)
		if err != nil {
			logger.Fatal().Err(err).Msg("Failed to re-encode payload")
		}

		os.Stdout.Write(out)
		os.Stdout.Write([]byte("\n"))
	}
}
