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
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/clausmichele/eopf-stac/util"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sceneID = "S2B_MSIL1C_20240428T102559_N0510_R108_T32UPC_20240428T123125"

func fakeCDSE(t *testing.T, status int, body string) *httptest.Server {
	router := mux.NewRouter()
	router.HandleFunc("/v1/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("ids") != sceneID {
			w.Write([]byte(`{"type": "FeatureCollection", "features": []}`))
			return
		}
		w.WriteHeader(status)
		w.Write([]byte(body))
	}).Methods(http.MethodGet)
	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return server
}

func TestItemURL(t *testing.T) {
	// Mock
	server := fakeCDSE(t, http.StatusOK, `{
		"type": "FeatureCollection",
		"features": [{
			"id": "`+sceneID+`",
			"links": [
				{"rel": "collection", "href": "https://stac.example.com/v1/collections/sentinel-2-l1c"},
				{"rel": "self", "href": "https://stac.example.com/v1/collections/sentinel-2-l1c/items/`+sceneID+`"}
			]
		}]
	}`)
	lookup := &SourceLookup{APIURL: server.URL + "/v1", HTTP: server.Client()}

	// Tested code
	href, err := lookup.ItemURL(context.Background(), sceneID)

	// Asserts
	require.Nil(t, err)
	assert.Equal(t, "https://stac.example.com/v1/collections/sentinel-2-l1c/items/"+sceneID, href)
}

func TestItemURL_NotFound(t *testing.T) {
	server := fakeCDSE(t, http.StatusOK, "")
	lookup := &SourceLookup{APIURL: server.URL + "/v1", HTTP: server.Client()}

	href, err := lookup.ItemURL(context.Background(), "S2A_UNKNOWN")

	assert.Equal(t, "", href)
	assert.EqualError(t, err, "Failed to find STAC item for scene id S2A_UNKNOWN at CDSE")
}

func TestItemURL_NoSelfLink(t *testing.T) {
	server := fakeCDSE(t, http.StatusOK, `{"features": [{"links": [{"rel": "self", "href": ""}]}]}`)
	lookup := &SourceLookup{APIURL: server.URL + "/v1", HTTP: server.Client()}

	_, err := lookup.ItemURL(context.Background(), sceneID)

	assert.NotNil(t, err)
}

func TestItemURL_HTTPError(t *testing.T) {
	// Mock
	server := fakeCDSE(t, http.StatusServiceUnavailable, "")
	lookup := &SourceLookup{APIURL: server.URL + "/v1", HTTP: server.Client()}

	// Tested code
	_, err := lookup.ItemURL(context.Background(), sceneID)

	// Asserts
	var httpErr util.HTTPErr
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Status)
}

func TestItemURL_MalformedResponse(t *testing.T) {
	server := fakeCDSE(t, http.StatusOK, "<html></html>")
	lookup := &SourceLookup{APIURL: server.URL + "/v1", HTTP: server.Client()}

	_, err := lookup.ItemURL(context.Background(), sceneID)

	assert.NotNil(t, err)
}

func TestNewSourceLookup(t *testing.T) {
	lookup := NewSourceLookup(&util.Settings{CDSEAPIURL: "https://stac.dataspace.copernicus.eu/v1"})

	assert.Equal(t, "https://stac.dataspace.copernicus.eu/v1", lookup.APIURL)
}
