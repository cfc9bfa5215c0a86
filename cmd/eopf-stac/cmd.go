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
	"github.com/clausmichele/eopf-stac/util"
	cli "gopkg.in/urfave/cli.v1"
)

// version is set at build time with -ldflags "-X main.version=..."
var version = "dev"

var flags = []cli.Flag{
	cli.BoolFlag{
		Name:  "dry-run",
		Usage: "Create the STAC item without inserting it into the catalog",
	},
	cli.BoolFlag{
		Name:  "debug",
		Usage: "Enable verbose output",
	},
	cli.BoolFlag{
		Name:  "pretty-log",
		Usage: "Write human readable log lines instead of JSON",
	},
	cli.StringFlag{
		Name:  "output, o",
		Usage: "Write the STAC item to `FILE` instead of inserting it into the catalog",
	},
	cli.StringFlag{
		Name:  "source, s",
		Usage: "Reference to the source product the EOPF product was converted from",
	},
	cli.StringFlag{
		Name:  "config",
		Usage: "Load settings from a YAML `FILE`",
	},
	cli.StringFlag{
		Name:  "env-file",
		Usage: "Load environment variables from `FILE`",
	},
}

var commands = cli.Commands{
	cli.Command{
		Name:    "version",
		Aliases: []string{"v"},
		Usage:   "Print the version number of the converter",
		Action:  versionAction,
	},
	cli.Command{
		Name:      "validate-env",
		Usage:     "Check that the environment holds what converting URL needs",
		ArgsUsage: "URL",
		Action:    validateEnvAction,
	},
	cli.Command{
		Name:      "collection",
		Aliases:   []string{"c"},
		Usage:     "Print the STAC collection items of a product type are registered in",
		ArgsUsage: "PRODUCT_TYPE",
		Action:    collectionAction,
	},
}

func createCliApp() (app *cli.App) {
	app = cli.NewApp()
	app.Name = "eopf-stac"
	app.Usage = "Create a STAC item for an EOPF product and register it in a STAC API"
	app.ArgsUsage = "URL"
	app.Version = version
	app.Flags = flags
	app.Commands = commands
	app.Before = initLogging
	app.Action = convertAction
	return
}

func initLogging(c *cli.Context) error {
	util.InitLogger(util.LogConfig{
		Debug:  c.GlobalBool("debug"),
		Pretty: c.GlobalBool("pretty-log"),
	})
	return nil
}
