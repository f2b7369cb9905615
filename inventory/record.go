package inventory

import (
	"fmt"
	"github.com/francoispqt/gojay"
	"github.com/viant/scopology"
	"reflect"
)

// Record represents an inventory line describing one registry entity
type Record struct {
	Scope string
	Depth int
	Index int
	Type  string
	Value string
}

// MarshalJSONObject implements gojay.MarshalerJSONObject
func (r *Record) MarshalJSONObject(enc *gojay.Encoder) {
	enc.StringKey("scope", r.Scope)
	enc.IntKey("depth", r.Depth)
	enc.IntKey("index", r.Index)
	enc.StringKey("type", r.Type)
	enc.StringKeyOmitEmpty("value", r.Value)
}

// IsNil implements gojay.MarshalerJSONObject
func (r *Record) IsNil() bool {
	return r == nil
}

// UnmarshalJSONObject implements gojay.UnmarshalerJSONObject
func (r *Record) UnmarshalJSONObject(dec *gojay.Decoder, key string) error {
	switch key {
	case "scope":
		return dec.String(&r.Scope)
	case "depth":
		return dec.Int(&r.Depth)
	case "index":
		return dec.Int(&r.Index)
	case "type":
		return dec.String(&r.Type)
	case "value":
		return dec.String(&r.Value)
	}
	return nil
}

// NKeys implements gojay.UnmarshalerJSONObject
func (r *Record) NKeys() int {
	return 0
}

// NewRecord creates a record for supplied entry
func NewRecord(entry *scopology.Entry) *Record {
	ret := &Record{Scope: entry.ScopeID, Depth: entry.Depth, Index: entry.Index, Type: "nil"}
	if entry.Entity == nil {
		return ret
	}
	ret.Type = reflect.TypeOf(entry.Entity).String()
	switch actual := entry.Entity.(type) {
	case reflect.Type:
		ret.Value = actual.String()
	case string:
		ret.Value = actual
	case fmt.Stringer:
		ret.Value = actual.String()
	default:
		ret.Value = fmt.Sprintf("%v", actual)
	}
	return ret
}
