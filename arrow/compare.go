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

// TypeEqual checks if two DataType are the same. Dictionary types are equal
// when their index types match and their dictionaries hold equal values.
func TypeEqual(left, right DataType) bool {
	switch {
	case left == nil || right == nil:
		return left == nil && right == nil
	case left == right:
		return true
	case left.ID() != right.ID():
		return false
	}

	switch l := left.(type) {
	case *DictionaryType:
		r := right.(*DictionaryType)
		if !TypeEqual(l.IndexType, r.IndexType) || l.Ordered != r.Ordered {
			return false
		}
		if l.Dictionary == nil || r.Dictionary == nil {
			return l.Dictionary == nil && r.Dictionary == nil
		}
		return l.Dictionary.Equals(r.Dictionary)
	default:
		// every other type is fully described by its id
		return true
	}
}
