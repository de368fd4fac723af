package configs

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

type Env struct {
	DatabaseURL    string
	AllowedOrigins string
	SecretKey      string
	OriginURL      string
	Port           string
}

// LoadEnv reads the given dotenv files (".env" when none are given) into the
// process environment. A missing file is not an error so that the service can
// run with a plain environment in containers.
func LoadEnv(filenames ...string) (Env, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Env{}, err
	}

	env := Env{
		DatabaseURL:    os.Getenv("DATABASE_URL"),
		AllowedOrigins: os.Getenv("ALLOWED_ORIGINS"),
		SecretKey:      os.Getenv("SECRET_KEY"),
		OriginURL:      os.Getenv("ORIGIN_URL"),
		Port:           os.Getenv("PORT"),
	}

	if env.Port == "" {
		env.Port = "8080"
	}

	return env, nil
}
