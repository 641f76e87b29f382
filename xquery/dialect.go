package xquery

import (
	"fmt"
	"strings"

	"github.com/midbel/xquery/version"
)

// Dialect is the set of extensions whose syntax the parser recognizes. The
// standard XQuery and XPath grammars are always recognized.
type Dialect uint16

const (
	FullText Dialect = 1 << iota
	UpdateFacility
	Scripting
	MarkLogic
	Saxon
	BaseX
	ExistDB

	DialectW3C Dialect = 0
	DialectAll         = FullText | UpdateFacility | Scripting | MarkLogic | Saxon | BaseX | ExistDB
)

var dialectNames = []struct {
	Dialect
	Name string
}{
	{FullText, version.FamilyFullText},
	{UpdateFacility, version.FamilyUpdate},
	{Scripting, version.FamilyScript},
	{MarkLogic, version.FamilyMarkLogic},
	{Saxon, version.FamilySaxon},
	{BaseX, version.FamilyBaseX},
	{ExistDB, version.FamilyExistDB},
}

func ParseDialect(name string) (Dialect, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	switch name {
	case "all":
		return DialectAll, nil
	case "", version.FamilyW3C, version.FamilyXQuery:
		return DialectW3C, nil
	}
	for _, d := range dialectNames {
		if d.Name == name {
			return d.Dialect, nil
		}
	}
	return 0, fmt.Errorf("%s: unknown dialect", name)
}

// DialectFor returns the dialect matching a target: the extensions it
// implements and the syntax of its product.
func DialectFor(target version.Target) Dialect {
	var d Dialect
	for _, n := range dialectNames {
		if target.Product.Family == n.Name || target.Supports(n.Name) {
			d |= n.Dialect
		}
	}
	return d
}

func (d Dialect) Has(other Dialect) bool {
	return d&other == other
}

func (d Dialect) Families() []string {
	var list []string
	for _, n := range dialectNames {
		if d.Has(n.Dialect) {
			list = append(list, n.Name)
		}
	}
	return list
}

func (d Dialect) String() string {
	if d == DialectW3C {
		return version.FamilyW3C
	}
	return strings.Join(d.Families(), "|")
}

type Option func(*Parser)

func WithDialect(d Dialect) Option {
	return func(p *Parser) {
		p.dialect = d
	}
}

func WithTracer(t Tracer) Option {
	return func(p *Parser) {
		if t == nil {
			t = discardTracer{}
		}
		p.Tracer = t
	}
}

func WithFile(file string) Option {
	return func(p *Parser) {
		p.file = file
	}
}
