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
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/util"
)

// Register actions
const (
	ActionInserted = "inserted"
	ActionUpdated  = "updated"
)

// Client registers items with a STAC API that supports the transaction
// extension
type Client struct {
	APIURL string
	User   string
	Pass   string
	HTTP   *http.Client
	// Now is used for the updated timestamp, time.Now if nil
	Now func() time.Time
}

// NewClient creates a client for the configured STAC API. Basic auth is only
// used when both the ingest user and password are set.
func NewClient(settings *util.Settings) *Client {
	client := &Client{
		APIURL: settings.StacAPIURL,
		HTTP:   util.HTTPClient(),
	}
	if settings.HasIngestCredentials() {
		client.User, client.Pass = settings.StacIngestUser, settings.StacIngestPass
	}
	return client
}

// Register inserts the item into the collection of its product type. If the
// item already exists it is updated instead. It returns the action taken.
func (c *Client) Register(ctx context.Context, logCtx util.LogContext, item *model.Item) (string, error) {
	util.LogInfo(logCtx, fmt.Sprintf("Inserting STAC item into catalog %s ...", c.APIURL))

	collection, err := eopf.CollectionFor(item.ProductType())
	if err != nil {
		return "", err
	}
	item.Collection = collection
	item.RemoveLinks(model.RelSelf)

	itemsURL := fmt.Sprintf("%s/collections/%s/items", strings.TrimSuffix(c.APIURL, "/"), collection)
	action := ActionInserted
	response, err := c.send(ctx, http.MethodPost, itemsURL, item)
	if err != nil {
		return "", util.LogSimpleErr(logCtx, fmt.Sprintf("Failed to insert STAC item %s", item.IDStr()), err)
	}
	if response.StatusCode == http.StatusConflict {
		util.LogDebug(logCtx, fmt.Sprintf("STAC item %s already exists in collection %s", item.IDStr(), collection))
		item.SetUpdated(c.now())
		action = ActionUpdated
		if response, err = c.send(ctx, http.MethodPut, itemsURL+"/"+url.PathEscape(item.IDStr()), item); err != nil {
			return "", util.LogSimpleErr(logCtx, fmt.Sprintf("Failed to update STAC item %s", item.IDStr()), err)
		}
	}

	switch {
	case response.StatusCode >= 400 && response.StatusCode < 500:
		message := fmt.Sprintf("Failed to register STAC item %s in collection %s: %v. %s", item.IDStr(), collection, response.Status, response.body)
		util.LogAlert(logCtx, message)
		return "", util.HTTPErr{Status: response.StatusCode, Message: message}
	case response.StatusCode >= 500:
		message := fmt.Sprintf("Failed to register STAC item %s in collection %s", item.IDStr(), collection)
		err = util.LogSimpleErr(logCtx, message, errors.New(response.Status))
		return "", util.HTTPErr{Status: response.StatusCode, Message: err.Error()}
	default:
		//no op
	}

	util.LogAudit(logCtx, util.LogAuditInput{
		Actor:   logCtx.AppName(),
		Action:  action,
		Actee:   collection + "/" + item.IDStr(),
		Message: fmt.Sprintf("Successfully %s STAC item %s in collection %s", action, item.IDStr(), collection),
	})
	return action, nil
}

func (c *Client) now() time.Time {
	if c.Now != nil {
		return c.Now().UTC()
	}
	return time.Now().UTC()
}

type apiResponse struct {
	StatusCode int
	Status     string
	body       string
}

func (c *Client) send(ctx context.Context, method, target string, item *model.Item) (*apiResponse, error) {
	body, err := json.Marshal(item)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize item %s: %w", item.IDStr(), err)
	}
	request, err := http.NewRequestWithContext(ctx, method, target, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	request.Header.Set("Content-Type", model.MediaTypeGeoJSON)
	if c.User != "" && c.Pass != "" {
		request.SetBasicAuth(c.User, c.Pass)
	}

	client := c.HTTP
	if client == nil {
		client = util.HTTPClient()
	}
	response, err := client.Do(request)
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBody, _ := io.ReadAll(response.Body)
	return &apiResponse{StatusCode: response.StatusCode, Status: response.Status, body: string(responseBody)}, nil
}
