// SPDX-License-Identifier: MIT

package config

import (
	"bytes"
	"fmt"
	"path/filepath"

	"gopkg.in/ini.v1"
)

// templatePairs returns the starter key/value pairs in file order,
// following the stock arxiv-sanity layout seeded under dataRoot.
func templatePairs(dataRoot string) [][2]string {
	return [][2]string{
		{"data_root", dataRoot},
		{"db_path", filepath.Join(dataRoot, "db.p")},
		{"pdf_dir", filepath.Join(dataRoot, "pdf")},
		{"txt_dir", filepath.Join(dataRoot, "txt")},
		{"thumbs_dir", filepath.Join("static", "thumbs")},
		{"tfidf_path", filepath.Join(dataRoot, "tfidf.p")},
		{"meta_path", filepath.Join(dataRoot, "tfidf_meta.p")},
		{"sim_path", filepath.Join(dataRoot, "sim_dict.p")},
		{"user_sim_path", filepath.Join(dataRoot, "user_sim.p")},
		{"db_serve_path", filepath.Join(dataRoot, "db2.p")},
		{"database_path", filepath.Join(dataRoot, "as.db")},
		{"serve_cache_path", filepath.Join(dataRoot, "serve_cache.p")},
		{"beg_for_hosting_money", "1"},
		{"banned_path", filepath.Join(dataRoot, "banned.txt")},
		{"tmp_dir", filepath.Join(dataRoot, "tmp")},
	}
}

// Template renders a complete starter settings file with every required
// key present. Path values are seeded under dataRoot; the result loads
// cleanly through Load.
func Template(dataRoot string) ([]byte, error) {
	f := ini.Empty()
	section, err := f.NewSection(Section)
	if err != nil {
		return nil, fmt.Errorf("build template section: %w", err)
	}
	for _, pair := range templatePairs(dataRoot) {
		if _, err := section.NewKey(pair[0], pair[1]); err != nil {
			return nil, fmt.Errorf("build template key %s: %w", pair[0], err)
		}
	}

	var buf bytes.Buffer
	if _, err := f.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("render template: %w", err)
	}
	return buf.Bytes(), nil
}
