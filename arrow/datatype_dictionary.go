// Licensed to the Apache Software Foundation (ASF) under one
// or more contributor license agreements.  See the NOTICE file
// distributed with this work for additional information
// regarding copyright ownership.  The ASF licenses this file
// to you under the Apache License, Version 2.0 (the
// "License"); you may not use this file except in compliance
// with the License.  You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package arrow

import (
	"fmt"
	"strings"
)

// DictionaryType represents categorical or dictionary-encoded in-memory data.
// It contains a dictionary-encoded value type (any type) along with the
// integer type of the indices and the dictionary values themselves.
//
// The dictionary is shared by reference: every array of this type, and
// every slice of those arrays, resolves its codes against the same values.
type DictionaryType struct {
	IndexType  DataType
	Dictionary Array
	Ordered    bool
}

// DictionaryOf returns a dictionary type with the given index type and
// dictionary values. The dictionary is retained and must be released with
// Release once the type is no longer needed.
//
// The index type is not checked here; see the Validate method of the
// dictionary array.
func DictionaryOf(index DataType, dict Array) *DictionaryType {
	dict.Retain()
	return &DictionaryType{IndexType: index, Dictionary: dict}
}

// Release drops the reference on the dictionary values held by this type.
func (d *DictionaryType) Release() {
	if d.Dictionary != nil {
		d.Dictionary.Release()
	}
}

func (*DictionaryType) ID() Type     { return DICTIONARY }
func (*DictionaryType) Name() string { return "dictionary" }

// ValueType is the type of the values stored in the dictionary.
func (d *DictionaryType) ValueType() DataType {
	if d.Dictionary == nil {
		return nil
	}
	return d.Dictionary.DataType()
}

func (d *DictionaryType) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s<values=%s, indices=%s", d.Name(), d.ValueType(), d.IndexType)
	if d.Ordered {
		b.WriteString(", ordered")
	}
	b.WriteByte('>')
	return b.String()
}

// Fingerprint covers the index and value types only, not the dictionary
// contents.
func (d *DictionaryType) Fingerprint() string {
	var indexFingerprint, valueFingerprint string
	if d.IndexType != nil {
		indexFingerprint = d.IndexType.Fingerprint()
	}
	if vt := d.ValueType(); vt != nil {
		valueFingerprint = vt.Fingerprint()
	}
	ordered := "1"
	if !d.Ordered {
		ordered = "0"
	}

	if len(valueFingerprint) > 0 {
		return typeFingerprint(d) + indexFingerprint + valueFingerprint + ordered
	}
	return ordered
}
