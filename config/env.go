// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package config

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/poiesic/marquee/core"
)

// Environment variable names.
const (
	EnvDeployment        = "RAILWAY_ENVIRONMENT"
	EnvAppMode           = "APP_MODE"
	EnvCompletionToken   = "OPENAI_TOKEN"
	EnvCompletionModel   = "OPENAI_MODEL"
	EnvCompletionBaseURL = "OPENAI_BASE_URL"
	EnvGeolocationKey    = "GEOLOCATION_APIKEY"
	EnvGeolocationURL    = "GEOLOCATION_URL"
)

const (
	productionDeployment = "production"
	testingAppMode       = "testing"
)

// ResolveMode decides between mock and live. Live requires a production
// deployment whose app mode is not "testing".
func ResolveMode(production bool, appMode string) core.Mode {
	if production && appMode != testingAppMode {
		return core.ModeLive
	}
	return core.ModeMocked
}

// LookupFunc matches os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// FromEnv builds and validates a Config from the given lookup function.
// Passing something other than os.LookupEnv keeps tests free of process
// environment mutation.
func FromEnv(lookup LookupFunc) (*Config, error) {
	get := func(key string) string {
		v, _ := lookup(key)
		return v
	}

	cfg := NewConfig(
		WithMode(ResolveMode(get(EnvDeployment) == productionDeployment, get(EnvAppMode))),
		WithCompletionToken(get(EnvCompletionToken)),
		WithCompletionModel(get(EnvCompletionModel)),
		WithCompletionBaseURL(get(EnvCompletionBaseURL)),
		WithGeolocationKey(get(EnvGeolocationKey)),
		WithGeolocationURL(get(EnvGeolocationURL)),
	)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Load reads an optional .env file into the process environment and then
// builds the Config from it. A missing .env file is not an error.
func Load(filenames ...string) (*Config, error) {
	if err := godotenv.Load(filenames...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}
	return FromEnv(os.LookupEnv)
}
