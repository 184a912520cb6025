// Copyright (c) Microsoft Corporation. All rights reserved.
// Licensed under the MIT License.

// Package security validates untrusted input before urlkit reads it.
//
// Documents handed to the CLI are untrusted: the path may try to escape the
// working tree with ".." segments or symbolic links, and the content may be
// arbitrarily large. ValidateInputPath rejects the former, and MaxInputBytes
// bounds the latter for readers such as yamlutil.DecodeReader.
//
//	if err := security.ValidateInputPath(path); err != nil {
//	    return fmt.Errorf("invalid path: %w", err)
//	}
//
// ValidateOutputPath applies the same traversal rules to files urlkit
// writes, and requires the target directory to exist already.
package security
