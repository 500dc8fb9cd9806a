package config

import (
	"io/fs"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/rook-computer/blastoff/internal/web"
)

const (
	EnvShowQR      = "BLASTOFF_QR"
	EnvDebug       = "BLASTOFF_DEBUG"
	EnvDebugLog    = "BLASTOFF_DEBUG_LOG"
	EnvStdioLog    = "BLASTOFF_STDIO_LOG"
	EnvFramebuffer = "BLASTOFF_FRAMEBUFFER"
	EnvTraceLog    = "BLASTOFF_TRACE_LOG"

	DefaultDebugLog = "./blastoff-debug.log"
	DefaultEnvFile  = ".env"
)

// Config is everything read from the environment at startup.
// Command-line arguments are handled by the cli package and take precedence
// over Server.
type Config struct {
	Server web.ServerConfig

	ShowQR bool `env:"BLASTOFF_QR,strict"`
	Debug  bool `env:"BLASTOFF_DEBUG,strict"`

	DebugLog    string `env:"BLASTOFF_DEBUG_LOG,default=./blastoff-debug.log"`
	StdioLog    string `env:"BLASTOFF_STDIO_LOG"`
	Framebuffer string `env:"BLASTOFF_FRAMEBUFFER"`
	TraceLog    string `env:"BLASTOFF_TRACE_LOG"`
}

func FromEnv() (Config, error) {
	cfg := Config{Server: web.ServerConfig{ListenAddr: web.DefaultListenAddr}}
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, errors.Wrap(err, "read environment")
	}
	return cfg, nil
}

// LoadDotEnv adds variables from a dotenv file to the environment. Variables
// that are already set win. A missing file is not an error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = DefaultEnvFile
	}
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return errors.Wrapf(err, "load %s", path)
}
