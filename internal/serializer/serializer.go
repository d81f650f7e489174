package serializer

import (
	"reflect"
	"strings"
)

const tagName = "szlr"

// Scopes a viewer may hold relative to a record.
const (
	ScopeAlways = "always"
	ScopeOwner  = "owner"
	ScopeSelf   = "self"
	ScopeAdmin  = "admin"
)

// ParseScopes extracts the scope portion from the tag. Example: "scope:admin,self" -> ["admin", "self"]
func ParseScopes(tag string) []string {
	prefix := "scope:"
	idx := strings.Index(tag, prefix)
	if idx == -1 {
		if tag == ScopeAlways {
			return []string{ScopeAlways}
		}
		return nil
	}

	scopes := strings.TrimSpace(strings.TrimPrefix(tag[idx:], prefix))
	out := make([]string, 0, 2)
	for _, s := range strings.Split(scopes, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CanViewField examines a `szlr` tag and decides if a viewer holding scopes
// can see the field. Untagged fields are always visible.
func CanViewField(szlrTag string, scopes []string) bool {
	if szlrTag == "" {
		return true
	}

	for _, required := range ParseScopes(szlrTag) {
		if required == ScopeAlways {
			return true
		}
		for _, held := range scopes {
			if held == required {
				return true
			}
		}
	}
	return false
}

// Redact zeroes, in place, every field reachable from v whose `szlr` tag is
// not satisfied by scopes. v must be a pointer or a slice of pointers.
func Redact(v any, scopes ...string) {
	redact(reflect.ValueOf(v), scopes)
}

func redact(rv reflect.Value, scopes []string) {
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if !rv.IsNil() {
			redact(rv.Elem(), scopes)
		}
	case reflect.Slice:
		for i := 0; i < rv.Len(); i++ {
			redact(rv.Index(i), scopes)
		}
	case reflect.Struct:
		t := rv.Type()
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			fv := rv.Field(i)
			if tag, ok := f.Tag.Lookup(tagName); ok && !CanViewField(tag, scopes) {
				if fv.CanSet() {
					fv.Set(reflect.Zero(f.Type))
				}
				continue
			}
			switch fv.Kind() {
			case reflect.Pointer, reflect.Slice, reflect.Struct, reflect.Interface:
				redact(fv, scopes)
			}
		}
	}
}
