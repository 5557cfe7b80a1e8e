// Package goquery provides goquery-based implementations of the
// scinews listing and article extractors, together with the strict
// exactly-one accessors they are built on.
package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/scinews"
)

// attrLookup collects every value a parsed node carries for key. The
// permissive attribute model collapses to one of three shapes: absent
// (nil), a single value, or multiple values for the same key. The HTML5
// parser normally dedupes keys, but the contract is enforced here so a
// surprising document fails loudly instead of an arbitrary value being
// picked.
func attrLookup(sel *goquery.Selection, key string) []string {
	var values []string
	for _, a := range sel.Nodes[0].Attr {
		if a.Key == key {
			values = append(values, a.Val)
		}
	}
	return values
}

// RequireAttr returns the single value of the attribute on the
// selection's node. Returns ENOTFOUND if the attribute is absent and
// EAMBIGUOUS if the node carries more than one value for the key.
func RequireAttr(sel *goquery.Selection, key string) (string, error) {
	values := attrLookup(sel, key)
	switch len(values) {
	case 0:
		return "", scinews.Errorf(scinews.ENOTFOUND, "attribute %q absent", key)
	case 1:
		return values[0], nil
	default:
		return "", scinews.Errorf(scinews.EAMBIGUOUS, "attribute %q has %d values, want one", key, len(values))
	}
}

// OptionalAttr is like RequireAttr but reports absence as ok=false
// instead of an error. Multiple values still fail with EAMBIGUOUS.
func OptionalAttr(sel *goquery.Selection, key string) (value string, ok bool, err error) {
	values := attrLookup(sel, key)
	switch len(values) {
	case 0:
		return "", false, nil
	case 1:
		return values[0], true, nil
	default:
		return "", false, scinews.Errorf(scinews.EAMBIGUOUS, "attribute %q has %d values, want one", key, len(values))
	}
}

// RequireOne finds the selector within scope and requires exactly one
// match. Zero matches is ENOTFOUND, more than one is EAMBIGUOUS.
func RequireOne(scope *goquery.Selection, selector string) (*goquery.Selection, error) {
	sel := scope.Find(selector)
	switch n := sel.Length(); {
	case n == 0:
		return nil, scinews.Errorf(scinews.ENOTFOUND, "no match for %q", selector)
	case n > 1:
		return nil, scinews.Errorf(scinews.EAMBIGUOUS, "%d matches for %q, want exactly one", n, selector)
	}
	return sel, nil
}
