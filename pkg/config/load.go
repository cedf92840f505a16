package config

import (
	"errors"
	"io/fs"
	"os"

	apperrors "github.com/DeBrosOfficial/mongolog/pkg/errors"
	"github.com/joho/godotenv"
)

// EnvMongoURL overrides mongo.uri when set.
const EnvMongoURL = "MONGO_URL"

// LoadOptions controls where Load looks for settings.
type LoadOptions struct {
	Path    string                  // YAML file; empty skips it
	EnvFile string                  // dotenv file; empty means ".env"
	Getenv  func(key string) string // defaults to os.Getenv
}

// Load builds a Config from defaults, the optional YAML file, the dotenv file
// and the process environment, in that order. A missing dotenv file is not an
// error. Variables already set in the environment win over the dotenv file.
func Load(opts LoadOptions) (*Config, error) {
	cfg := DefaultConfig()

	if opts.Path != "" {
		f, err := os.Open(opts.Path)
		if err != nil {
			return nil, apperrors.NewConfigError("path", "cannot open config file: "+err.Error())
		}
		defer f.Close()
		if err := DecodeStrict(f, cfg); err != nil {
			return nil, apperrors.NewConfigError(opts.Path, err.Error())
		}
	}

	envFile := opts.EnvFile
	if envFile == "" {
		envFile = ".env"
	}
	fileEnv, err := godotenv.Read(envFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, apperrors.NewConfigError("env_file", "cannot parse "+envFile+": "+err.Error())
	}

	getenv := opts.Getenv
	if getenv == nil {
		getenv = os.Getenv
	}
	uri := getenv(EnvMongoURL)
	if uri == "" {
		uri = fileEnv[EnvMongoURL]
	}
	if uri != "" {
		cfg.Mongo.URI = uri
	}
	return cfg, nil
}
