package web

import (
	"github.com/joeshaw/envdecode"
	"github.com/pkg/errors"
)

const (
	EnvListenAddr = "BLASTOFF_LISTEN"
	EnvDevMode    = "BLASTOFF_DEV"

	DefaultListenAddr = ":8080"
)

// ServerConfig contains settings for running the HTTP server.
type ServerConfig struct {
	ListenAddr string `env:"BLASTOFF_LISTEN"`
	DevMode    bool   `env:"BLASTOFF_DEV,strict"`
}

func DefaultServerConfigFromEnv(defaultListenAddr string) (ServerConfig, error) {
	cfg := ServerConfig{ListenAddr: defaultListenAddr}
	if err := envdecode.Decode(&cfg); err != nil && err != envdecode.ErrNoTargetFieldsAreSet {
		return ServerConfig{}, errors.Wrap(err, "server config")
	}
	return cfg, nil
}

// DisplayURL turns a listen address into something a person can open.
// Wildcard hosts are shown as 127.0.0.1.
func DisplayURL(addr string) string {
	switch {
	case addr == "":
		return "http://127.0.0.1" + DefaultListenAddr
	case addr[0] == ':':
		return "http://127.0.0.1" + addr
	case len(addr) > 8 && addr[:8] == "0.0.0.0:":
		return "http://127.0.0.1" + addr[7:]
	case len(addr) > 5 && addr[:5] == "[::]:":
		return "http://127.0.0.1" + addr[4:]
	}
	return "http://" + addr
}
