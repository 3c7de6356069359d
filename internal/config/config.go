// SPDX-License-Identifier: MIT

package config

import (
	"fmt"

	"github.com/openpapers/arxiv-sanity/internal/log"
	"gopkg.in/ini.v1"
)

const (
	// Section is the single INI section every settings file must carry.
	Section = "arxiv-sanity"

	// DefaultPath is where the loader looks when no path is given,
	// relative to the process working directory.
	DefaultPath = "arxiv-sanity.cfg"
)

// Config carries every setting of the application. All values are
// verbatim strings from the file; callers interpret them.
type Config struct {
	DataRoot           string `ini:"data_root"`
	DBPath             string `ini:"db_path"`
	PDFDir             string `ini:"pdf_dir"`
	TxtDir             string `ini:"txt_dir"`
	ThumbsDir          string `ini:"thumbs_dir"`
	TFIDFPath          string `ini:"tfidf_path"`
	MetaPath           string `ini:"meta_path"`
	SimPath            string `ini:"sim_path"`
	UserSimPath        string `ini:"user_sim_path"`
	DBServePath        string `ini:"db_serve_path"`
	DatabasePath       string `ini:"database_path"`
	ServeCachePath     string `ini:"serve_cache_path"`
	BegForHostingMoney string `ini:"beg_for_hosting_money"`
	BannedPath         string `ini:"banned_path"`
	TmpDir             string `ini:"tmp_dir"`
}

// requiredKeys lists every key the [arxiv-sanity] section must define.
// Must stay in sync with the ini tags on Config.
var requiredKeys = []string{
	"data_root",
	"db_path",
	"pdf_dir",
	"txt_dir",
	"thumbs_dir",
	"tfidf_path",
	"meta_path",
	"sim_path",
	"user_sim_path",
	"db_serve_path",
	"database_path",
	"serve_cache_path",
	"beg_for_hosting_money",
	"banned_path",
	"tmp_dir",
}

// Load reads the settings file at path and returns the populated
// Config. The returned value is complete: a missing section or any
// missing key is an error, classified via ErrSectionMissing and
// ErrKeyMissing.
func Load(path string) (*Config, error) {
	// IgnoreInlineComment keeps values verbatim even when they contain
	// "#" or ";" characters.
	source, err := ini.LoadSources(ini.LoadOptions{IgnoreInlineComment: true}, path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	section, err := source.GetSection(Section)
	if err != nil {
		return nil, fmt.Errorf("config file %s: %w: [%s]", path, ErrSectionMissing, Section)
	}

	for _, key := range requiredKeys {
		if _, err := section.GetKey(key); err != nil {
			return nil, fmt.Errorf("config file %s: %w: %s", path, ErrKeyMissing, key)
		}
	}

	var cfg Config
	if err := section.MapTo(&cfg); err != nil {
		return nil, fmt.Errorf("map config file %s: %w", path, err)
	}

	logger := log.WithComponent("config")
	logger.Debug().Str("path", path).Msg("configuration loaded")
	return &cfg, nil
}

// LoadDefault loads DefaultPath from the current working directory.
func LoadDefault() (*Config, error) {
	return Load(DefaultPath)
}
