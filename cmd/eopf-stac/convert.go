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

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/clausmichele/eopf-stac/catalog"
	"github.com/clausmichele/eopf-stac/converter"
	"github.com/clausmichele/eopf-stac/eopf"
	"github.com/clausmichele/eopf-stac/model"
	"github.com/clausmichele/eopf-stac/util"
	cli "gopkg.in/urfave/cli.v1"
)

func loadSettings(c *cli.Context) (*util.Settings, error) {
	return util.LoadSettings(c.GlobalString("config"), c.GlobalString("env-file"))
}

func exitError(logCtx util.LogContext, err error) error {
	logger := util.Logger(logCtx)
	logger.Error().Err(err).Msg("Exit on error")
	return cli.NewExitError(err.Error(), 1)
}

func convertAction(c *cli.Context) error {
	logCtx := &(util.BasicLogContext{})
	if c.NArg() != 1 {
		return exitError(logCtx, fmt.Errorf("Expected exactly one URL argument, got %d", c.NArg()))
	}
	if err := convert(context.Background(), logCtx, c, c.Args().First()); err != nil {
		return exitError(logCtx, err)
	}
	return nil
}

func convert(ctx context.Context, logCtx util.LogContext, c *cli.Context, url string) error {
	settings, err := loadSettings(c)
	if err != nil {
		return err
	}
	dryRun := c.GlobalBool("dry-run")
	output := c.GlobalString("output")
	register := !dryRun && output == ""

	if err = util.ValidateEnv(url, !register, settings.Env()); err != nil {
		return err
	}

	util.LogDebug(logCtx, "Opening metadata file ...")
	metadata, err := eopf.NewReader(settings).ReadMetadata(ctx, url)
	if err != nil {
		return err
	}

	util.LogInfo(logCtx, fmt.Sprintf("Creating STAC item for %s ...", url))
	input := converter.Input{Href: url, SourceURI: c.GlobalString("source")}
	item, err := converter.CreateItem(ctx, logCtx, metadata, input, catalog.NewSourceLookup(settings))
	if err != nil {
		return err
	}

	if dryRun {
		data, _ := json.MarshalIndent(item, "", "    ")
		util.LogDebug(logCtx, string(data))
	}
	if output != "" {
		if err = writeItem(output, item); err != nil {
			return err
		}
		util.LogInfo(logCtx, fmt.Sprintf("Wrote STAC item %s to %s", item.IDStr(), output))
	}
	if register {
		if _, err = catalog.NewClient(settings).Register(ctx, logCtx, item); err != nil {
			return err
		}
	}
	return nil
}

func writeItem(path string, item *model.Item) error {
	data, err := json.MarshalIndent(item, "", "    ")
	if err != nil {
		return fmt.Errorf("failed to serialize item %s: %w", item.IDStr(), err)
	}
	if err = os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write item to %s: %w", path, err)
	}
	return nil
}

func versionAction(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, version)
	return nil
}

func validateEnvAction(c *cli.Context) error {
	logCtx := &(util.BasicLogContext{})
	if c.NArg() != 1 {
		return exitError(logCtx, fmt.Errorf("Expected exactly one URL argument, got %d", c.NArg()))
	}
	settings, err := loadSettings(c)
	if err != nil {
		return exitError(logCtx, err)
	}
	dryRun := c.GlobalBool("dry-run") || c.GlobalString("output") != ""
	if err = util.ValidateEnv(c.Args().First(), dryRun, settings.Env()); err != nil {
		return exitError(logCtx, err)
	}
	fmt.Fprintln(c.App.Writer, "OK")
	return nil
}

func collectionAction(c *cli.Context) error {
	logCtx := &(util.BasicLogContext{})
	if c.NArg() != 1 {
		return exitError(logCtx, fmt.Errorf("Expected one of the product types %v", eopf.SupportedProductTypes()))
	}
	collection, err := catalog.CollectionOf(c.Args().First())
	if err != nil {
		return exitError(logCtx, err)
	}
	data, err := json.MarshalIndent(collection, "", "    ")
	if err != nil {
		return exitError(logCtx, err)
	}
	fmt.Fprintln(c.App.Writer, string(data))
	return nil
}
