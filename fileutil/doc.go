// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package fileutil writes urlkit results to disk.
//
// AtomicWriteFile and AtomicWriteJSON never leave a partial file behind:
// data goes to a uniquely named temporary file in the target directory,
// is synced, and is then renamed over the target. The rename is retried a
// few times with a short backoff to ride out transient failures on
// platforms where another process may briefly hold the target open.
//
// Output paths are checked with security.ValidateOutputPath before anything
// is written.
package fileutil
