// Package toml loads docset build settings from TOML files using
// BurntSushi/toml.
package toml

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/BurntSushi/toml"
	docset "github.com/cypheon/ocaml-docset"
)

// file mirrors the layout of a configuration file.
//
//	concurrency = 8
//
//	[docset]
//	name = "OCaml"
//	identifier = "ocaml"
//	platform = "ocaml"
//	index_page = "index.html"
//
//	[naming]
//	fragment_prefixes = ["type_"]
//	index_prefixes = ["index"]
type file struct {
	Concurrency int `toml:"concurrency"`
	Docset      struct {
		Name       string `toml:"name"`
		Identifier string `toml:"identifier"`
		Platform   string `toml:"platform"`
		IndexPage  string `toml:"index_page"`
	} `toml:"docset"`
	Naming struct {
		FragmentPrefixes []string `toml:"fragment_prefixes"`
		IndexPrefixes    []string `toml:"index_prefixes"`
	} `toml:"naming"`
}

// LoadConfig reads the configuration file at path. Keys missing from the
// file keep their value from docset.DefaultConfig.
func LoadConfig(path string) (docset.Config, error) {
	f, err := os.Open(path)
	if errors.Is(err, os.ErrNotExist) {
		return docset.Config{}, docset.Errorf(docset.ENOTFOUND, "config file not found: %s", path)
	} else if err != nil {
		return docset.Config{}, fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	cfg, err := ParseConfig(f)
	if err != nil {
		return docset.Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes a configuration from r on top of the defaults.
// Unknown keys are rejected so that typos do not go unnoticed.
func ParseConfig(r io.Reader) (docset.Config, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return docset.Config{}, docset.Errorf(docset.EINVALID, "invalid config: %v", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return docset.Config{}, docset.Errorf(docset.EINVALID, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	cfg := docset.DefaultConfig()
	if md.IsDefined("concurrency") {
		if f.Concurrency < 0 {
			return docset.Config{}, docset.Errorf(docset.EINVALID, "concurrency must not be negative")
		}
		cfg.Concurrency = f.Concurrency
	}

	setString(md, &cfg.Bundle.Name, f.Docset.Name, "docset", "name")
	setString(md, &cfg.Bundle.Identifier, f.Docset.Identifier, "docset", "identifier")
	setString(md, &cfg.Bundle.Platform, f.Docset.Platform, "docset", "platform")
	setString(md, &cfg.Bundle.IndexPage, f.Docset.IndexPage, "docset", "index_page")

	// An explicitly empty list disables the corresponding suppression.
	if md.IsDefined("naming", "fragment_prefixes") {
		cfg.Naming.FragmentPrefixes = f.Naming.FragmentPrefixes
	}
	if md.IsDefined("naming", "index_prefixes") {
		cfg.Naming.IndexPrefixes = f.Naming.IndexPrefixes
	}

	return cfg, nil
}

func setString(md toml.MetaData, dst *string, value string, key ...string) {
	if md.IsDefined(key...) {
		*dst = value
	}
}
