// SPDX-License-Identifier: MIT

// Package config loads the arxiv-sanity settings file.
//
// The file is INI-style with a single [arxiv-sanity] section holding
// fifteen required string keys, mostly paths into the data directory.
// Values are carried verbatim; nothing is defaulted, coerced or
// validated beyond presence.
package config
