package version

import (
	"slices"
)

// Target is the implementation a module is checked against: one product
// release and the specifications it implements, minus the extensions that
// have been disabled.
type Target struct {
	Product Version
	Specs   []Version
}

func NewTarget(release Version, disabled ...string) Target {
	t := Target{
		Product: release,
	}
	for _, s := range Implements(release) {
		if slices.Contains(disabled, s.Family) {
			continue
		}
		t.Specs = append(t.Specs, s)
	}
	return t
}

// Satisfies reports whether the target accepts the syntax guarded by r.
func (t Target) Satisfies(r Requirement) bool {
	if r.Until {
		return r.Family == t.Product.Family && t.Product.Value < r.Value
	}
	if r.Kind == KindProduct {
		return r.Family == t.Product.Family && t.Product.Value >= r.Value
	}
	return slices.ContainsFunc(t.Specs, func(s Version) bool {
		return s.Family == r.Family && s.Value >= r.Value
	})
}

// SatisfiesAny reports whether at least one of the requirements holds. An
// empty list is always satisfied.
func (t Target) SatisfiesAny(list []Requirement) bool {
	if len(list) == 0 {
		return true
	}
	return slices.ContainsFunc(list, t.Satisfies)
}

func (t Target) Supports(family string) bool {
	return slices.ContainsFunc(t.Specs, func(s Version) bool {
		return s.Family == family
	})
}

func (t Target) String() string {
	return t.Product.String()
}

// Implements lists the specification versions a product release supports.
func Implements(release Version) []Version {
	list := implementations[release.ID()]
	return slices.Clone(list)
}

var implementations = map[string][]Version{
	W3C10.ID(): {XQuery10, FullText10, Update10, Scripting10},
	W3C30.ID(): {XQuery10, XQuery30, FullText30, Update30, Scripting10},
	W3C31.ID(): {XQuery10, XQuery30, XQuery31, FullText30, Update30, Scripting10},
	W3C40.ID(): {XQuery10, XQuery30, XQuery31, XQuery40, FullText30, Update30, Scripting10},

	MarkLogic09.ID(): {XQueryWD20030502},
	MarkLogic10.ID(): {XQueryWD20030502, XQuery10},
	MarkLogic50.ID(): {XQueryWD20030502, XQuery10},
	MarkLogic60.ID(): {XQueryWD20030502, XQuery10},
	MarkLogic70.ID(): {XQueryWD20030502, XQuery10},
	MarkLogic80.ID(): {XQueryWD20030502, XQuery10},
	MarkLogic90.ID(): {XQueryWD20030502, XQuery10},

	Saxon94.ID():  {XQuery10, XQuery30},
	Saxon96.ID():  {XQuery10, XQuery30},
	Saxon97.ID():  {XQuery10, XQuery30, XQuery31},
	Saxon98.ID():  {XQuery10, XQuery30, XQuery31, Update10},
	Saxon99.ID():  {XQuery10, XQuery30, XQuery31, Update10},
	Saxon100.ID(): {XQuery10, XQuery30, XQuery31, Update10},
	Saxon110.ID(): {XQuery10, XQuery30, XQuery31, XQuery40, Update10},

	BaseX78.ID(): {XQuery10, XQuery30, FullText10, Update10},
	BaseX84.ID(): {XQuery10, XQuery30, XQuery31, FullText30, Update30},
	BaseX85.ID(): {XQuery10, XQuery30, XQuery31, FullText30, Update30},
	BaseX91.ID(): {XQuery10, XQuery30, XQuery31, FullText30, Update30},
	BaseX94.ID(): {XQuery10, XQuery30, XQuery31, FullText30, Update30},

	ExistDB30.ID(): {XQueryWD20030502, XQuery10, XQuery30},
	ExistDB40.ID(): {XQuery10, XQuery30, XQuery31},
	ExistDB43.ID(): {XQuery10, XQuery30, XQuery31},
	ExistDB50.ID(): {XQuery10, XQuery30, XQuery31},
}

// Namespaces returns the prefixes a product binds implicitly in addition to
// the statically known namespaces of the language.
func Namespaces(family string) map[string]string {
	ns := make(map[string]string)
	for p, u := range vendorNamespaces[family] {
		ns[p] = u
	}
	return ns
}

var vendorNamespaces = map[string]map[string]string{
	FamilyMarkLogic: {
		"cts":      "http://marklogic.com/cts",
		"dav":      "DAV:",
		"dbg":      "http://marklogic.com/xdmp/debug",
		"dir":      "http://marklogic.com/xdmp/directory",
		"error":    "http://marklogic.com/xdmp/error",
		"json":     "http://marklogic.com/xdmp/json",
		"prof":     "http://marklogic.com/xdmp/profile",
		"prop":     "http://marklogic.com/xdmp/property",
		"sec":      "http://marklogic.com/xdmp/security",
		"sem":      "http://marklogic.com/semantics",
		"spell":    "http://marklogic.com/xdmp/spell",
		"xdmp":     "http://marklogic.com/xdmp",
		"xqe":      "http://marklogic.com/xqe",
		"xqterr":   "http://www.w3.org/2005/xqt-errors",
		"lock":     "http://marklogic.com/xdmp/lock",
		"math":     "http://marklogic.com/xdmp/math",
		"map":      "http://marklogic.com/xdmp/map",
		"temporal": "http://marklogic.com/xdmp/temporal",
	},
	FamilySaxon: {
		"saxon": "http://saxon.sf.net/",
	},
	FamilyBaseX: {
		"admin":   "http://basex.org/modules/admin",
		"archive": "http://basex.org/modules/archive",
		"client":  "http://basex.org/modules/client",
		"db":      "http://basex.org/modules/db",
		"file":    "http://expath.org/ns/file",
		"ft":      "http://basex.org/modules/ft",
		"hof":     "http://basex.org/modules/hof",
		"index":   "http://basex.org/modules/index",
		"json":    "http://basex.org/modules/json",
		"prof":    "http://basex.org/modules/prof",
		"proc":    "http://basex.org/modules/proc",
		"random":  "http://basex.org/modules/random",
		"sql":     "http://basex.org/modules/sql",
		"strings": "http://basex.org/modules/strings",
		"update":  "http://basex.org/modules/update",
		"user":    "http://basex.org/modules/user",
		"web":     "http://basex.org/modules/web",
		"xslt":    "http://basex.org/modules/xslt",
	},
	FamilyExistDB: {
		"exist":     "http://exist.sourceforge.net/NS/exist",
		"request":   "http://exist-db.org/xquery/request",
		"response":  "http://exist-db.org/xquery/response",
		"session":   "http://exist-db.org/xquery/session",
		"system":    "http://exist-db.org/xquery/system",
		"transform": "http://exist-db.org/xquery/transform",
		"util":      "http://exist-db.org/xquery/util",
		"xmldb":     "http://exist-db.org/xquery/xmldb",
	},
}
