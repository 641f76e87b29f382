package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/midbel/xquery/version"
	"github.com/midbel/xquery/xquery"
	"github.com/tidwall/gjson"
)

var ErrFormat = errors.New("invalid configuration")

// extensions that can be switched off in a configuration file.
var extensions = []string{
	version.FamilyFullText,
	version.FamilyUpdate,
	version.FamilyScript,
}

// Config is the implementation queries are parsed and checked against.
type Config struct {
	Target  version.Target
	Dialect xquery.Dialect
}

// Default targets the latest W3C recommendation with every extension
// enabled.
func Default() Config {
	return create(version.W3C31, nil)
}

func create(product version.Version, disabled []string) Config {
	target := version.NewTarget(product, disabled...)
	return Config{
		Target:  target,
		Dialect: xquery.DialectFor(target),
	}
}

// Load reads a configuration file. The format is selected from the file
// extension.
func Load(file string) (Config, error) {
	r, err := os.Open(file)
	if err != nil {
		return Config{}, err
	}
	defer r.Close()

	switch ext := strings.ToLower(filepath.Ext(file)); ext {
	case ".xml":
		return LoadXML(r)
	case ".json":
		return LoadJSON(r)
	default:
		return Config{}, fmt.Errorf("%s: unsupported extension %q: %w", file, ext, ErrFormat)
	}
}

func LoadXML(r io.Reader) (Config, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return Config{}, fmt.Errorf("%w: %s", ErrFormat, err)
	}
	root := doc.SelectElement("xqlint")
	if root == nil {
		return Config{}, fmt.Errorf("%w: xqlint element expected", ErrFormat)
	}
	var b builder
	if el := root.SelectElement("product"); el != nil {
		b.name = el.SelectAttrValue("name", "")
		b.version = el.SelectAttrValue("version", "")
	}
	for _, el := range root.SelectElements("extension") {
		enabled, err := strconv.ParseBool(el.SelectAttrValue("enabled", "true"))
		if err != nil {
			return Config{}, fmt.Errorf("%w: extension: %s", ErrFormat, err)
		}
		if err := b.toggle(el.SelectAttrValue("name", ""), enabled); err != nil {
			return Config{}, err
		}
	}
	return b.build()
}

func LoadJSON(r io.Reader) (Config, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return Config{}, err
	}
	if !gjson.ValidBytes(buf) {
		return Config{}, fmt.Errorf("%w: malformed json", ErrFormat)
	}
	var (
		doc = gjson.ParseBytes(buf)
		b   builder
	)
	b.name = doc.Get("product.name").String()
	b.version = doc.Get("product.version").String()

	exts := doc.Get("extensions")
	if exts.Exists() && !exts.IsObject() {
		return Config{}, fmt.Errorf("%w: extensions should be an object", ErrFormat)
	}
	exts.ForEach(func(key, value gjson.Result) bool {
		if !value.IsBool() {
			err = fmt.Errorf("%w: %s: boolean expected", ErrFormat, key.String())
		} else {
			err = b.toggle(key.String(), value.Bool())
		}
		return err == nil
	})
	if err != nil {
		return Config{}, err
	}
	return b.build()
}

type builder struct {
	name     string
	version  string
	disabled []string
}

func (b *builder) toggle(name string, enabled bool) error {
	name = strings.ToLower(strings.TrimSpace(name))
	if !slices.Contains(extensions, name) {
		return fmt.Errorf("%w: %s: unknown extension", ErrFormat, name)
	}
	b.disabled = slices.DeleteFunc(b.disabled, func(n string) bool {
		return n == name
	})
	if !enabled {
		b.disabled = append(b.disabled, name)
	}
	return nil
}

func (b *builder) build() (Config, error) {
	if b.name == "" && b.version == "" {
		return create(version.W3C31, b.disabled), nil
	}
	if b.name == "" {
		b.name = version.FamilyW3C
	}
	if b.version == "" {
		list := version.Versions(strings.ToLower(b.name))
		if len(list) == 0 {
			return Config{}, fmt.Errorf("%s: %w", b.name, version.ErrProduct)
		}
		return b.check(list[len(list)-1])
	}
	product, err := version.Lookup(b.name, b.version)
	if err != nil {
		return Config{}, err
	}
	return b.check(product)
}

func (b *builder) check(product version.Version) (Config, error) {
	if product.Kind != version.KindProduct {
		return Config{}, fmt.Errorf("%s: not a product: %w", product.Family, version.ErrProduct)
	}
	return create(product, b.disabled), nil
}
