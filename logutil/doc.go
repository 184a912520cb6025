// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package logutil provides the process-wide structured logger for urlkit,
// built on log/slog.
//
//	logutil.SetupLogger(debug, structured)
//	if level, err := logutil.ParseLevel(flagValue); err == nil {
//	    logutil.SetLevel(level)
//	}
//
//	logutil.Debug("configured output", "format", format)
//
// Commands scope their output with a component logger:
//
//	log := logutil.NewLogger("filter").WithInput(path)
//	log.Debug("compiled term", "term", term)
//
// Debug logging is enabled by passing debug=true to SetupLogger or by
// setting URLKIT_DEBUG=true. Structured (JSON) output is selected by
// passing structured=true, or URLKIT_LOG_FORMAT=json for callers that use
// StructuredFromEnv. Logs go to stderr so they never mix with command output.
package logutil
