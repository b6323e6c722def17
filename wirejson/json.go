package wirejson

import (
	"io"
	"runtime"

	"github.com/bytedance/sonic"
	jsoniter "github.com/json-iterator/go"
)

// Sonic only ships optimised codegen for amd64 linux; fall back to
// json-iterator everywhere else.
const useSonic = runtime.GOARCH == "amd64" && runtime.GOOS == "linux"

func Unmarshal(data []byte, v any) error {
	if useSonic {
		return sonic.Unmarshal(data, v)
	}

	return jsoniter.Unmarshal(data, v)
}

func UnmarshalReader(reader io.Reader, v any) error {
	if useSonic {
		return sonic.ConfigDefault.NewDecoder(reader).Decode(v)
	}

	return jsoniter.NewDecoder(reader).Decode(v)
}

func Marshal(v any) ([]byte, error) {
	if useSonic {
		return sonic.Marshal(v)
	}

	return jsoniter.Marshal(v)
}
