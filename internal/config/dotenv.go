package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// envFilePath returns ENV_FILE when set, otherwise ".env".
func envFilePath() string {
	if p := os.Getenv("ENV_FILE"); p != "" {
		return p
	}

	return defaultConfig().EnvFilePath
}

// loadDotEnv exports the variables of the dotenv file at path into the
// process environment. Variables that are already set keep their values.
// A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return fmt.Errorf("error loading env file %q: %w", path, err)
}
