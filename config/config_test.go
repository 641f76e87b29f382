package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/midbel/xquery/version"
	"github.com/midbel/xquery/xquery"
)

func TestLoadXML(t *testing.T) {
	tests := []struct {
		Input   string
		Product version.Version
		Dialect xquery.Dialect
		Err     error
	}{
		{
			Input:   `<xqlint><product name="saxon" version="10.0"/></xqlint>`,
			Product: version.Saxon100,
			Dialect: xquery.Saxon | xquery.UpdateFacility,
		},
		{
			Input:   `<xqlint><product name="saxon" version="10"/><extension name="update" enabled="false"/></xqlint>`,
			Product: version.Saxon100,
			Dialect: xquery.Saxon,
		},
		{
			Input:   `<xqlint><product name="w3c" version="3.1"/><extension name="full-text" enabled="false"/></xqlint>`,
			Product: version.W3C31,
			Dialect: xquery.UpdateFacility | xquery.Scripting,
		},
		{
			Input:   `<xqlint/>`,
			Product: version.W3C31,
			Dialect: xquery.FullText | xquery.UpdateFacility | xquery.Scripting,
		},
		{
			Input:   `<xqlint><product name="marklogic"/></xqlint>`,
			Product: version.MarkLogic90,
			Dialect: xquery.MarkLogic,
		},
		{
			Input: `<config/>`,
			Err:   ErrFormat,
		},
		{
			Input: `<xqlint><product name="oracle" version="1.0"/></xqlint>`,
			Err:   version.ErrProduct,
		},
		{
			Input: `<xqlint><product name="saxon" version="1.0"/></xqlint>`,
			Err:   version.ErrVersion,
		},
		{
			Input: `<xqlint><product name="xquery" version="3.1"/></xqlint>`,
			Err:   version.ErrProduct,
		},
		{
			Input: `<xqlint><extension name="graphics" enabled="false"/></xqlint>`,
			Err:   ErrFormat,
		},
		{
			Input: `<xqlint><extension name="update" enabled="maybe"/></xqlint>`,
			Err:   ErrFormat,
		},
	}
	for _, c := range tests {
		cfg, err := LoadXML(strings.NewReader(c.Input))
		checkConfig(t, c.Input, cfg, err, c.Product, c.Dialect, c.Err)
	}
}

func TestLoadJSON(t *testing.T) {
	tests := []struct {
		Input   string
		Product version.Version
		Dialect xquery.Dialect
		Err     error
	}{
		{
			Input:   `{"product": {"name": "saxon", "version": "9.8"}}`,
			Product: version.Saxon98,
			Dialect: xquery.Saxon | xquery.UpdateFacility,
		},
		{
			Input:   `{"product": {"name": "basex", "version": 9.4}, "extensions": {"full-text": false}}`,
			Product: version.BaseX94,
			Dialect: xquery.BaseX | xquery.UpdateFacility,
		},
		{
			Input:   `{"product": {"name": "exist-db", "version": 5}}`,
			Product: version.ExistDB50,
			Dialect: xquery.ExistDB,
		},
		{
			Input:   `{"extensions": {"scripting": false, "update": true}}`,
			Product: version.W3C31,
			Dialect: xquery.FullText | xquery.UpdateFacility,
		},
		{
			Input: `{"product": `,
			Err:   ErrFormat,
		},
		{
			Input: `{"extensions": ["full-text"]}`,
			Err:   ErrFormat,
		},
		{
			Input: `{"extensions": {"full-text": "no"}}`,
			Err:   ErrFormat,
		},
		{
			Input: `{"product": {"name": "basex", "version": "1.0"}}`,
			Err:   version.ErrVersion,
		},
	}
	for _, c := range tests {
		cfg, err := LoadJSON(strings.NewReader(c.Input))
		checkConfig(t, c.Input, cfg, err, c.Product, c.Dialect, c.Err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"config.xml":  `<xqlint><product name="marklogic" version="8.0"/></xqlint>`,
		"config.json": `{"product": {"name": "marklogic", "version": "8.0"}}`,
		"config.yml":  `product: marklogic`,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("fail to write %s: %s", name, err)
		}
	}
	for _, name := range []string{"config.xml", "config.json"} {
		cfg, err := Load(filepath.Join(dir, name))
		checkConfig(t, name, cfg, err, version.MarkLogic80, xquery.MarkLogic, nil)
	}
	if _, err := Load(filepath.Join(dir, "config.yml")); !errors.Is(err, ErrFormat) {
		t.Errorf("config.yml: expected %s, got %v", ErrFormat, err)
	}
	if _, err := Load(filepath.Join(dir, "missing.xml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("missing.xml: expected %s, got %v", os.ErrNotExist, err)
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if !cfg.Target.Product.Equal(version.W3C31) {
		t.Errorf("product mismatched! want %s, got %s", version.W3C31, cfg.Target.Product)
	}
	if cfg.Dialect != xquery.FullText|xquery.UpdateFacility|xquery.Scripting {
		t.Errorf("dialect mismatched! got %s", cfg.Dialect)
	}
}

func checkConfig(t *testing.T, input string, cfg Config, err error, product version.Version, dialect xquery.Dialect, want error) {
	t.Helper()
	if want != nil {
		if !errors.Is(err, want) {
			t.Errorf("%s: expected error %s, got %v", input, want, err)
		}
		return
	}
	if err != nil {
		t.Errorf("%s: unexpected error: %s", input, err)
		return
	}
	if !cfg.Target.Product.Equal(product) {
		t.Errorf("%s: product mismatched! want %s, got %s", input, product, cfg.Target.Product)
	}
	if cfg.Dialect != dialect {
		t.Errorf("%s: dialect mismatched! want %s, got %s", input, dialect, cfg.Dialect)
	}
}
