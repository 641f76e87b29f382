package xquery

import (
	"testing"

	"github.com/midbel/xquery/xdm"
)

func TestItemType(t *testing.T) {
	tests := []struct {
		Input string
		Kind  Kind
		Name  string
		Class xdm.TypeClass
		Lower int
		Upper int
	}{
		{
			Input: "$a instance of xs:string+",
			Kind:  KindSequenceType,
			Name:  "xs:string+",
			Class: xdm.ClassAtomic,
			Lower: 1,
			Upper: xdm.Unbounded,
		},
		{
			Input: "$a instance of element(a, xs:int)?",
			Kind:  KindSequenceType,
			Name:  "element(a, xs:int)?",
			Class: xdm.ClassElement,
			Lower: 0,
			Upper: 1,
		},
		{
			Input: "$a instance of empty-sequence()",
			Kind:  KindSequenceType,
			Name:  "empty-sequence()",
			Class: xdm.ClassEmpty,
		},
		{
			Input: "$a instance of item()*",
			Kind:  KindSequenceType,
			Name:  "item()*",
			Class: xdm.ClassItem,
			Lower: 0,
			Upper: xdm.Unbounded,
		},
		{
			Input: "$a instance of map(xs:string, item())",
			Kind:  KindSequenceType,
			Name:  "map(xs:string, item())",
			Class: xdm.ClassMap,
			Lower: 1,
			Upper: 1,
		},
		{
			Input: "$a instance of function(xs:int) as xs:string",
			Kind:  KindSequenceType,
			Name:  "function(xs:int) as xs:string",
			Class: xdm.ClassFunction,
			Lower: 1,
			Upper: 1,
		},
		{
			Input: "$a instance of tuple(a: xs:string, b?: xs:int)",
			Kind:  KindSequenceType,
			Name:  "tuple(a as xs:string, b? as xs:int)",
			Class: xdm.ClassRecord,
			Lower: 1,
			Upper: 1,
		},
		{
			Input: "$a instance of (xs:string | xs:int)",
			Kind:  KindSequenceType,
			Name:  "(xs:string | xs:int)",
			Class: xdm.ClassUnion,
			Lower: 1,
			Upper: 1,
		},
		{
			Input: "$a cast as xs:integer?",
			Kind:  KindSingleType,
			Name:  "xs:integer?",
			Class: xdm.ClassAtomic,
			Lower: 0,
			Upper: 1,
		},
		{
			Input: "declare variable $v as node()* := (); $v",
			Kind:  KindTypeDeclaration,
			Name:  "node()*",
			Class: xdm.ClassNode,
			Lower: 0,
			Upper: xdm.Unbounded,
		},
	}
	for _, c := range tests {
		mod := Parse(c.Input)
		n := findKind(&mod.Node, c.Kind)
		if n == nil {
			t.Errorf("%s: no %s found", c.Input, c.Kind)
			continue
		}
		got, ok := n.ItemType()
		if !ok {
			t.Errorf("%s: no item type", c.Input)
			continue
		}
		if got.Name != c.Name {
			t.Errorf("%s: name mismatched: want %q, got %q", c.Input, c.Name, got.Name)
		}
		if got.Class != c.Class {
			t.Errorf("%s: class mismatched: want %s, got %s", c.Input, c.Class, got.Class)
		}
		if got.Lower != c.Lower || got.Upper != c.Upper {
			t.Errorf("%s: occurrence mismatched: want %d..%d, got %d..%d", c.Input, c.Lower, c.Upper, got.Lower, got.Upper)
		}
	}
}
