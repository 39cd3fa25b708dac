package config

import (
	"encoding/json"
	"os"

	"github.com/mjpark-dev/boardapp/internal/flagx"
	"github.com/mjpark-dev/boardapp/internal/timex"
)

// JsonConfig is the file-format DTO. Durations can be written as strings
// like "10s"; values are copied into the runtime Config after unmarshalling.
type JsonConfig struct {
	ServerEndpointAddr string         `json:"server_endpoint_addr"`
	RequestTimeout     timex.Duration `json:"request_timeout"`
}

// parseJson overlays configuration from the JSON file named by the -c or
// -config flags. Without the flag nothing is loaded; an unreadable or
// invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.ServerEndpointAddr != "" {
		config.ServerEndpointAddr = c.ServerEndpointAddr
	}
	if c.RequestTimeout.Duration != 0 {
		config.RequestTimeout = c.RequestTimeout.Duration
	}
}
