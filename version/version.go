package version

import (
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

var (
	ErrProduct = errors.New("unknown product")
	ErrVersion = errors.New("unknown version")
)

type Kind int8

const (
	KindSpec Kind = iota
	KindProduct
)

func (k Kind) String() string {
	switch k {
	case KindSpec:
		return "specification"
	case KindProduct:
		return "product"
	default:
		return "<unknown>"
	}
}

const (
	FamilyXQuery   = "xquery"
	FamilyDraft    = "xquery-wd"
	FamilyFullText = "full-text"
	FamilyUpdate   = "update"
	FamilyScript   = "scripting"

	FamilyW3C       = "w3c"
	FamilyMarkLogic = "marklogic"
	FamilySaxon     = "saxon"
	FamilyBaseX     = "basex"
	FamilyExistDB   = "exist-db"
)

var familyNames = map[string]string{
	FamilyXQuery:    "XQuery",
	FamilyDraft:     "XQuery WD",
	FamilyFullText:  "XQuery Full Text",
	FamilyUpdate:    "XQuery Update Facility",
	FamilyScript:    "XQuery Scripting Extension",
	FamilyW3C:       "W3C",
	FamilyMarkLogic: "MarkLogic",
	FamilySaxon:     "Saxon",
	FamilyBaseX:     "BaseX",
	FamilyExistDB:   "eXist-db",
}

// Version identifies one release of a specification or of a product.
type Version struct {
	Family string
	Label  string
	Value  float64
	Kind   Kind
}

func spec(family, label string, value float64) Version {
	return Version{
		Family: family,
		Label:  label,
		Value:  value,
		Kind:   KindSpec,
	}
}

func product(family, label string, value float64) Version {
	return Version{
		Family: family,
		Label:  label,
		Value:  value,
		Kind:   KindProduct,
	}
}

func (v Version) Zero() bool {
	return v.Family == ""
}

func (v Version) ID() string {
	return v.Family + "/" + v.Label
}

func (v Version) Name() string {
	if n, ok := familyNames[v.Family]; ok {
		return n
	}
	return v.Family
}

func (v Version) String() string {
	return fmt.Sprintf("%s %s", v.Name(), v.Label)
}

func (v Version) Equal(other Version) bool {
	return v.Family == other.Family && v.Label == other.Label
}

func (v Version) Before(other Version) bool {
	return v.Family == other.Family && v.Value < other.Value
}

var (
	XQueryWD20030502 = spec(FamilyDraft, "1.0-20030502", 1.0)
	XQuery10         = spec(FamilyXQuery, "1.0", 1.0)
	XQuery30         = spec(FamilyXQuery, "3.0", 3.0)
	XQuery31         = spec(FamilyXQuery, "3.1", 3.1)
	XQuery40         = spec(FamilyXQuery, "4.0", 4.0)

	FullText10  = spec(FamilyFullText, "1.0", 1.0)
	FullText30  = spec(FamilyFullText, "3.0", 3.0)
	Update10    = spec(FamilyUpdate, "1.0", 1.0)
	Update30    = spec(FamilyUpdate, "3.0", 3.0)
	Scripting10 = spec(FamilyScript, "1.0", 1.0)

	W3C10 = product(FamilyW3C, "1.0", 1.0)
	W3C30 = product(FamilyW3C, "3.0", 3.0)
	W3C31 = product(FamilyW3C, "3.1", 3.1)
	W3C40 = product(FamilyW3C, "4.0", 4.0)

	MarkLogic09 = product(FamilyMarkLogic, "0.9", 0.9)
	MarkLogic10 = product(FamilyMarkLogic, "1.0", 1.0)
	MarkLogic50 = product(FamilyMarkLogic, "5.0", 5.0)
	MarkLogic60 = product(FamilyMarkLogic, "6.0", 6.0)
	MarkLogic70 = product(FamilyMarkLogic, "7.0", 7.0)
	MarkLogic80 = product(FamilyMarkLogic, "8.0", 8.0)
	MarkLogic90 = product(FamilyMarkLogic, "9.0", 9.0)

	Saxon94  = product(FamilySaxon, "9.4", 9.4)
	Saxon96  = product(FamilySaxon, "9.6", 9.6)
	Saxon97  = product(FamilySaxon, "9.7", 9.7)
	Saxon98  = product(FamilySaxon, "9.8", 9.8)
	Saxon99  = product(FamilySaxon, "9.9", 9.9)
	Saxon100 = product(FamilySaxon, "10.0", 10.0)
	Saxon110 = product(FamilySaxon, "11.0", 11.0)

	BaseX78 = product(FamilyBaseX, "7.8", 7.8)
	BaseX84 = product(FamilyBaseX, "8.4", 8.4)
	BaseX85 = product(FamilyBaseX, "8.5", 8.5)
	BaseX91 = product(FamilyBaseX, "9.1", 9.1)
	BaseX94 = product(FamilyBaseX, "9.4", 9.4)

	ExistDB30 = product(FamilyExistDB, "3.0", 3.0)
	ExistDB40 = product(FamilyExistDB, "4.0", 4.0)
	ExistDB43 = product(FamilyExistDB, "4.3", 4.3)
	ExistDB50 = product(FamilyExistDB, "5.0", 5.0)
)

// Requirement is one entry of a conformance fact. When Until is set the
// entry holds for releases of the same product strictly before Version.
type Requirement struct {
	Version
	Until bool
}

func Since(v Version) Requirement {
	return Requirement{Version: v}
}

func Until(v Version) Requirement {
	return Requirement{
		Version: v,
		Until:   true,
	}
}

func (r Requirement) String() string {
	if r.Until {
		return fmt.Sprintf("until(%s)", r.Version)
	}
	return r.Version.String()
}

// Parse finds a registered version from its identifier, either "family/label"
// or "family label".
func Parse(id string) (Version, error) {
	family, label, ok := strings.Cut(id, "/")
	if !ok {
		family, label, ok = strings.Cut(id, " ")
	}
	if !ok {
		return Version{}, fmt.Errorf("%s: %w", id, ErrVersion)
	}
	return Lookup(family, label)
}

// Lookup searches the registry for the given family and label. A label
// without fractional part matches its ".0" form.
func Lookup(family, label string) (Version, error) {
	family = strings.ToLower(strings.TrimSpace(family))
	label = strings.TrimSpace(label)
	if family == "" {
		return Version{}, fmt.Errorf("empty family: %w", ErrProduct)
	}
	if _, ok := familyNames[family]; !ok {
		return Version{}, fmt.Errorf("%s: %w", family, ErrProduct)
	}
	if !strings.Contains(label, ".") {
		if _, err := strconv.Atoi(label); err == nil {
			label += ".0"
		}
	}
	label = strings.TrimSuffix(label, "-ml")
	ix := slices.IndexFunc(registry, func(v Version) bool {
		return v.Family == family && v.Label == label
	})
	if ix < 0 {
		return Version{}, fmt.Errorf("%s %s: %w", family, label, ErrVersion)
	}
	return registry[ix], nil
}

// Versions returns every registered release of the given family ordered
// from the oldest to the newest.
func Versions(family string) []Version {
	var list []Version
	for _, v := range registry {
		if v.Family == family {
			list = append(list, v)
		}
	}
	slices.SortFunc(list, func(a, b Version) int {
		switch {
		case a.Value < b.Value:
			return -1
		case a.Value > b.Value:
			return 1
		default:
			return 0
		}
	})
	return list
}

var registry = []Version{
	XQueryWD20030502,
	XQuery10,
	XQuery30,
	XQuery31,
	XQuery40,
	FullText10,
	FullText30,
	Update10,
	Update30,
	Scripting10,
	W3C10,
	W3C30,
	W3C31,
	W3C40,
	MarkLogic09,
	MarkLogic10,
	MarkLogic50,
	MarkLogic60,
	MarkLogic70,
	MarkLogic80,
	MarkLogic90,
	Saxon94,
	Saxon96,
	Saxon97,
	Saxon98,
	Saxon99,
	Saxon100,
	Saxon110,
	BaseX78,
	BaseX84,
	BaseX85,
	BaseX91,
	BaseX94,
	ExistDB30,
	ExistDB40,
	ExistDB43,
	ExistDB50,
}
