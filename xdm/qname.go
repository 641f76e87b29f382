package xdm

import (
	"fmt"
	"strings"
)

const (
	NamespaceXML    = "http://www.w3.org/XML/1998/namespace"
	NamespaceXMLNS  = "http://www.w3.org/2000/xmlns/"
	NamespaceXS     = "http://www.w3.org/2001/XMLSchema"
	NamespaceXSI    = "http://www.w3.org/2001/XMLSchema-instance"
	NamespaceFn     = "http://www.w3.org/2005/xpath-functions"
	NamespaceLocal  = "http://www.w3.org/2005/xquery-local-functions"
	NamespaceMath   = "http://www.w3.org/2005/xpath-functions/math"
	NamespaceMap    = "http://www.w3.org/2005/xpath-functions/map"
	NamespaceArray  = "http://www.w3.org/2005/xpath-functions/array"
	NamespaceErr    = "http://www.w3.org/2005/xqt-errors"
	NamespaceOutput = "http://www.w3.org/2010/xslt-xquery-serialization"
	NamespaceXQuery = "http://www.w3.org/2012/xquery"
	NamespaceOption = "http://www.w3.org/2011/xquery-options"
)

// Known lists the statically known namespaces of every XQuery module.
func Known() map[string]string {
	return map[string]string{
		"xml":    NamespaceXML,
		"xs":     NamespaceXS,
		"xsi":    NamespaceXSI,
		"fn":     NamespaceFn,
		"local":  NamespaceLocal,
		"math":   NamespaceMath,
		"map":    NamespaceMap,
		"array":  NamespaceArray,
		"err":    NamespaceErr,
		"output": NamespaceOutput,
	}
}

// QName is either a lexical name (prefix and local part waiting to be
// expanded) or an expanded name with its namespace resolved.
type QName struct {
	Prefix    string
	Namespace string
	Local     string
	Lexical   bool
}

func ParseName(name string) (QName, error) {
	var (
		qn QName
		ok bool
	)
	if rest, found := strings.CutPrefix(name, "Q{"); found {
		uri, local, ok := strings.Cut(rest, "}")
		if !ok {
			return qn, fmt.Errorf("%s: unterminated braced uri", name)
		}
		return ExpandedName(local, "", uri), nil
	}
	qn.Prefix, qn.Local, ok = strings.Cut(name, ":")
	if !ok {
		qn.Local, qn.Prefix = qn.Prefix, ""
	}
	if ok && qn.Prefix == "" {
		return qn, fmt.Errorf("invalid namespace")
	}
	qn.Lexical = true
	return qn, nil
}

func LexicalName(local, prefix string) QName {
	return QName{
		Prefix:  prefix,
		Local:   local,
		Lexical: true,
	}
}

func ExpandedName(local, prefix, uri string) QName {
	return QName{
		Prefix:    prefix,
		Namespace: uri,
		Local:     local,
	}
}

func (q QName) Zero() bool {
	return q.Local == ""
}

func (q QName) Equal(other QName) bool {
	if q.Lexical || other.Lexical {
		return q.Prefix == other.Prefix && q.Local == other.Local
	}
	return q.Namespace == other.Namespace && q.Local == other.Local
}

func (q QName) Expand(uri string) QName {
	return ExpandedName(q.Local, q.Prefix, uri)
}

func (q QName) LocalName() string {
	return q.Local
}

func (q QName) QualifiedName() string {
	if q.Prefix == "" {
		return q.Local
	}
	return fmt.Sprintf("%s:%s", q.Prefix, q.Local)
}

func (q QName) ExpandedName() string {
	if q.Lexical {
		return q.QualifiedName()
	}
	return fmt.Sprintf("Q{%s}%s", q.Namespace, q.Local)
}

func (q QName) String() string {
	return q.ExpandedName()
}
