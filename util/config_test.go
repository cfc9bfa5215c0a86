// Copyright 2018, RadiantBlue Technologies, Inc.
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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateEnv_DryRunNeedsNoCatalog(t *testing.T) {
	assert.Nil(t, ValidateEnv("", true, map[string]string{}))
}

func TestValidateEnv_CatalogRequired(t *testing.T) {
	err := ValidateEnv("", false, map[string]string{})
	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, []string{STAC_API_URL}, configErr.Missing)
	assert.Contains(t, err.Error(), STAC_API_URL)
}

func TestValidateEnv_S3URLNeedsCredentials(t *testing.T) {
	env := map[string]string{STAC_API_URL: "", AWS_ACCESS_KEY_ID: "key"}
	err := ValidateEnv("s3://test", false, env)
	var configErr *ConfigError
	require.True(t, errors.As(err, &configErr))
	assert.Equal(t, []string{S3_ENDPOINT_URL, AWS_SECRET_ACCESS_KEY}, configErr.Missing)
	assert.Contains(t, err.Error(), "S3_ENDPOINT_URL, AWS_SECRET_ACCESS_KEY")
}

func TestValidateEnv_S3URLComplete(t *testing.T) {
	env := map[string]string{
		S3_ENDPOINT_URL:       "https://s3.example.com",
		AWS_ACCESS_KEY_ID:     "key",
		AWS_SECRET_ACCESS_KEY: "secret",
	}
	assert.Nil(t, ValidateEnv("s3://bucket/product.zarr", true, env))

	env[STAC_API_URL] = "https://stac.example.com"
	assert.Nil(t, ValidateEnv("s3://bucket/product.zarr", false, env))
}

func TestValidateEnv_HTTPURLNeedsNoCredentials(t *testing.T) {
	assert.Nil(t, ValidateEnv("https://objects.example.com/bucket/product.zarr", true, map[string]string{}))
}

func TestLoadSettings_ConfigFileAndEnvironment(t *testing.T) {
	// Mock
	dir := t.TempDir()
	configFile := filepath.Join(dir, "eopf-stac.yaml")
	require.Nil(t, os.WriteFile(configFile, []byte(
		"stac_api_url: https://from-file.example.com\n"+
			"s3_endpoint_url: https://s3.from-file.example.com\n"+
			"stac_ingest_user: file-user\n"), 0600))
	t.Setenv(STAC_API_URL, "https://from-env.example.com")
	t.Setenv(STAC_INGEST_PASS, "env-pass")

	// Tested code
	settings, err := LoadSettings(configFile, "")

	// Asserts
	require.Nil(t, err)
	assert.Equal(t, "https://from-env.example.com", settings.StacAPIURL)
	assert.Equal(t, "https://s3.from-file.example.com", settings.S3EndpointURL)
	assert.True(t, settings.HasIngestCredentials())
	assert.Equal(t, "file-user", settings.StacIngestUser)
	assert.NotEmpty(t, settings.AWSRegion)
	assert.Equal(t, defaultCDSEAPIURL, settings.CDSEAPIURL)
}

func TestLoadSettings_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.Nil(t, os.WriteFile(envFile, []byte("CDSE_STAC_API_URL=https://cdse.example.com\n"), 0600))
	os.Unsetenv(CDSE_STAC_API_URL)
	defer os.Unsetenv(CDSE_STAC_API_URL)

	settings, err := LoadSettings("", envFile)
	require.Nil(t, err)
	assert.Equal(t, "https://cdse.example.com", settings.CDSEAPIURL)
}

func TestLoadSettings_MissingConfigFile(t *testing.T) {
	_, err := LoadSettings(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.NotNil(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestSettingsEnv_SkipsEmptyValues(t *testing.T) {
	settings := Settings{StacAPIURL: "https://stac.example.com", StacIngestUser: ""}
	env := settings.Env()
	assert.Equal(t, "https://stac.example.com", env[STAC_API_URL])
	_, ok := env[STAC_INGEST_USER]
	assert.False(t, ok)
	assert.False(t, settings.HasIngestCredentials())
}
