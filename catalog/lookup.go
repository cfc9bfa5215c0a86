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

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/util"
)

// SourceLookup searches a public STAC API, the Copernicus Data Space
// Ecosystem by default, for the item of a source scene
type SourceLookup struct {
	APIURL string
	HTTP   *http.Client
}

// NewSourceLookup creates a lookup against the configured CDSE STAC API
func NewSourceLookup(settings *util.Settings) *SourceLookup {
	return &SourceLookup{APIURL: settings.CDSEAPIURL, HTTP: util.HTTPClient()}
}

type searchResult struct {
	Features []struct {
		Links []model.Link `json:"links"`
	} `json:"features"`
}

// ItemURL returns the self href of the first item matching the scene id
func (l *SourceLookup) ItemURL(ctx context.Context, sceneID string) (string, error) {
	searchURL := strings.TrimSuffix(l.APIURL, "/") + "/search?" + url.Values{"ids": {sceneID}}.Encode()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return "", err
	}
	request.Header.Set("Accept", model.MediaTypeGeoJSON)

	client := l.HTTP
	if client == nil {
		client = util.HTTPClient()
	}
	response, err := client.Do(request)
	if err != nil {
		return "", fmt.Errorf("failed to search for scene id %s: %w", sceneID, err)
	}
	defer response.Body.Close()
	body, _ := io.ReadAll(response.Body)
	if response.StatusCode < 200 || response.StatusCode >= 300 {
		return "", util.HTTPErr{Status: response.StatusCode, Message: fmt.Sprintf("Failed to search for scene id %s: %v", sceneID, response.Status)}
	}

	var result searchResult
	if err = json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("unexpected search response for scene id %s: %w", sceneID, err)
	}
	if len(result.Features) > 0 {
		for _, link := range result.Features[0].Links {
			if link.Rel == model.RelSelf && link.Href != "" {
				return link.Href, nil
			}
		}
	}
	return "", fmt.Errorf("Failed to find STAC item for scene id %s at CDSE", sceneID)
}
