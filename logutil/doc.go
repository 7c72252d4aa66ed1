// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the structured logging used by weburl, built on
// slog.
//
// # Basic Usage
//
//	// Initialize logging (typically in main.go)
//	logutil.SetupLogger(debug, structured)
//
//	log := logutil.NewLogger("weburl").WithOperation("parse").WithInput(raw)
//	log.Debug("validation error", "code", "invalid-URL-unit", "offset", 4)
//
// # Debug Mode
//
// Debug logging can be enabled in two ways:
//   - Pass debug=true to SetupLogger
//   - Set WEBURL_DEBUG=true (or 1)
//
// The parser only emits records while debug logging is enabled, so the
// default configuration costs nothing per parse.
//
// # Structured Logging
//
// When structured=true is passed to SetupLogger, logs are output as JSON:
//
//	{"time":"2026-01-15T10:30:00Z","level":"DEBUG","msg":"parse failed","component":"weburl","error":"..."}
//
// Otherwise, logs use the slog text format.
package logutil
