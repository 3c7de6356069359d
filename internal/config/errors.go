// SPDX-License-Identifier: MIT

package config

import "errors"

var (
	// ErrSectionMissing classifies settings files without the [arxiv-sanity] section.
	// Use errors.Is(err, ErrSectionMissing) instead of string matching.
	ErrSectionMissing = errors.New("config section missing")

	// ErrKeyMissing classifies settings files lacking one of the required keys.
	// Use errors.Is(err, ErrKeyMissing) instead of string matching.
	ErrKeyMissing = errors.New("config key missing")
)
