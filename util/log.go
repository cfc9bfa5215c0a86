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
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const appName = "eopf-stac"

// LogContext is the information attached to every log entry of an operation
type LogContext interface {
	AppName() string
	SessionID() string
}

// BasicLogContext is a LogContext for code that runs outside of a conversion
type BasicLogContext struct {
	sessionID string
}

// AppName returns the application name
func (c *BasicLogContext) AppName() string {
	return appName
}

// SessionID returns a Session ID, creating one if needed
func (c *BasicLogContext) SessionID() string {
	if c.sessionID == "" {
		c.sessionID, _ = PsuUUID()
	}
	return c.sessionID
}

// PsuUUID returns a new random UUID string
func PsuUUID() (string, error) {
	id, err := uuid.NewRandom()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// LogConfig configures the global logger
type LogConfig struct {
	Debug  bool
	Pretty bool
	Output io.Writer
}

// InitLogger configures the global zerolog logger
func InitLogger(cfg LogConfig) {
	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	zerolog.SetGlobalLevel(level)

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Logger returns the global logger annotated with the context's fields
func Logger(ctx LogContext) zerolog.Logger {
	return log.Logger.With().
		Str("app", ctx.AppName()).
		Str("session", ctx.SessionID()).
		Logger()
}

// Severity is the level of an audit entry
type Severity string

// Audit severities
const (
	DEBUG   Severity = "debug"
	INFO    Severity = "info"
	WARNING Severity = "warning"
	ERROR   Severity = "error"
)

// LogAuditInput describes one auditable action against a remote resource
type LogAuditInput struct {
	Actor    string
	Action   string
	Actee    string
	Message  string
	Severity Severity
}

// LogAudit logs an action taken by the converter against a remote resource
func LogAudit(ctx LogContext, input LogAuditInput) {
	logger := Logger(ctx)
	var event *zerolog.Event
	switch input.Severity {
	case DEBUG:
		event = logger.Debug()
	case WARNING:
		event = logger.Warn()
	case ERROR:
		event = logger.Error()
	default:
		event = logger.Info()
	}
	event.Str("actor", input.Actor).
		Str("action", input.Action).
		Str("actee", input.Actee).
		Msg(input.Message)
}

// LogDebug logs a debug message
func LogDebug(ctx LogContext, message string) {
	logger := Logger(ctx)
	logger.Debug().Msg(message)
}

// LogInfo logs an info message
func LogInfo(ctx LogContext, message string) {
	logger := Logger(ctx)
	logger.Info().Msg(message)
}

// LogAlert logs a warning: something is off but the operation continues
func LogAlert(ctx LogContext, message string) {
	logger := Logger(ctx)
	logger.Warn().Msg(message)
}

// LogSimpleErr logs an error and returns it wrapped with the given message
func LogSimpleErr(ctx LogContext, message string, err error) error {
	logger := Logger(ctx)
	logger.Error().Err(err).Msg(message)
	return fmt.Errorf("%s: %w", message, err)
}
