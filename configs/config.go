package configs

import (
	"github.com/go-playground/validator/v10"
	"github.com/mdayat/prayer-surah-service/internal/validators"
)

type Configs struct {
	Env      Env
	Db       Db
	Validate *validator.Validate
}

func NewConfigs(env Env, db Db) Configs {
	return Configs{
		Env:      env,
		Db:       db,
		Validate: NewValidate(),
	}
}

func NewValidate() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validators.Register(validate); err != nil {
		panic(err)
	}

	return validate
}
