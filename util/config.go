// Copyright 2016, RadiantBlue Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package util

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Environment variables
const (
	STAC_API_URL          = "STAC_API_URL"
	STAC_INGEST_USER      = "STAC_INGEST_USER"
	STAC_INGEST_PASS      = "STAC_INGEST_PASS"
	S3_ENDPOINT_URL       = "S3_ENDPOINT_URL"
	AWS_ACCESS_KEY_ID     = "AWS_ACCESS_KEY_ID"
	AWS_SECRET_ACCESS_KEY = "AWS_SECRET_ACCESS_KEY"
	AWS_REGION            = "AWS_REGION"
	CDSE_STAC_API_URL     = "CDSE_STAC_API_URL"
)

const (
	defaultRegion     = "us-east-1"
	defaultCDSEAPIURL = "https://stac.dataspace.copernicus.eu/v1"
)

// Settings carries every value the converter reads from its environment
type Settings struct {
	StacAPIURL         string `yaml:"stac_api_url"`
	StacIngestUser     string `yaml:"stac_ingest_user"`
	StacIngestPass     string `yaml:"stac_ingest_pass"`
	S3EndpointURL      string `yaml:"s3_endpoint_url"`
	AWSAccessKeyID     string `yaml:"aws_access_key_id"`
	AWSSecretAccessKey string `yaml:"aws_secret_access_key"`
	AWSRegion          string `yaml:"aws_region"`
	CDSEAPIURL         string `yaml:"cdse_stac_api_url"`
}

// LoadSettings builds Settings from an optional YAML config file, an optional
// .env file and the process environment. Environment values win over the
// config file; the .env file never overrides variables that are already set.
func LoadSettings(configFile string, envFile string) (*Settings, error) {
	settings := &Settings{}

	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	if configFile != "" {
		data, err := os.ReadFile(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
		if err = yaml.Unmarshal(data, settings); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", configFile, err)
		}
	}

	settings.overlay(Environ())

	if settings.AWSRegion == "" {
		settings.AWSRegion = defaultRegion
	}
	if settings.CDSEAPIURL == "" {
		settings.CDSEAPIURL = defaultCDSEAPIURL
	}
	return settings, nil
}

func (s *Settings) overlay(env map[string]string) {
	set := func(target *string, key string) {
		if value, ok := env[key]; ok {
			*target = value
		}
	}
	set(&s.StacAPIURL, STAC_API_URL)
	set(&s.StacIngestUser, STAC_INGEST_USER)
	set(&s.StacIngestPass, STAC_INGEST_PASS)
	set(&s.S3EndpointURL, S3_ENDPOINT_URL)
	set(&s.AWSAccessKeyID, AWS_ACCESS_KEY_ID)
	set(&s.AWSSecretAccessKey, AWS_SECRET_ACCESS_KEY)
	set(&s.AWSRegion, AWS_REGION)
	set(&s.CDSEAPIURL, CDSE_STAC_API_URL)
}

// Env returns the settings as the environment map ValidateEnv checks.
// Empty values are left out so that a value missing from both the config
// file and the environment is reported as missing.
func (s *Settings) Env() map[string]string {
	env := make(map[string]string)
	add := func(key, value string) {
		if value != "" {
			env[key] = value
		}
	}
	add(STAC_API_URL, s.StacAPIURL)
	add(STAC_INGEST_USER, s.StacIngestUser)
	add(STAC_INGEST_PASS, s.StacIngestPass)
	add(S3_ENDPOINT_URL, s.S3EndpointURL)
	add(AWS_ACCESS_KEY_ID, s.AWSAccessKeyID)
	add(AWS_SECRET_ACCESS_KEY, s.AWSSecretAccessKey)
	return env
}

// HasIngestCredentials is true when both basic-auth values are configured
func (s *Settings) HasIngestCredentials() bool {
	return s.StacIngestUser != "" && s.StacIngestPass != ""
}

// Environ returns the process environment as a map
func Environ() map[string]string {
	env := make(map[string]string)
	for _, kv := range os.Environ() {
		if i := strings.Index(kv, "="); i > 0 {
			env[kv[:i]] = kv[i+1:]
		}
	}
	return env
}

// ValidateEnv checks that the variables needed to process url are present.
// An s3:// url needs the object store endpoint and credentials; the catalog
// URL is needed whenever the item is going to be registered.
func ValidateEnv(url string, dryRun bool, env map[string]string) error {
	if strings.HasPrefix(url, "s3://") {
		var missing []string
		for _, key := range []string{S3_ENDPOINT_URL, AWS_ACCESS_KEY_ID, AWS_SECRET_ACCESS_KEY} {
			if _, ok := env[key]; !ok {
				missing = append(missing, key)
			}
		}
		if len(missing) > 0 {
			return &ConfigError{Missing: missing}
		}
	}

	if !dryRun {
		if _, ok := env[STAC_API_URL]; !ok {
			return &ConfigError{Missing: []string{STAC_API_URL}}
		}
	}
	return nil
}
