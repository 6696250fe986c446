/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

// splitQueryPairs implements §4.6's query(s) parse rule: split on '&',
// then split each piece at the first '='. A piece without '=' yields a
// pair with an absent value. An empty string yields one pair ("", nil).
func splitQueryPairs(raw string) []queryPair {
	if raw == "" {
		return []queryPair{{name: ""}}
	}
	pieces := strings.Split(raw, "&")
	pairs := make([]queryPair, len(pieces))
	for i, p := range pieces {
		if eq := strings.IndexByte(p, '='); eq >= 0 {
			v := p[eq+1:]
			pairs[i] = queryPair{name: p[:eq], value: &v}
		} else {
			pairs[i] = queryPair{name: p}
		}
	}
	return pairs
}

// joinQueryPairs renders pairs back to the raw "&"-joined query string.
func joinQueryPairs(pairs []queryPair) string {
	var out strings.Builder
	for i, p := range pairs {
		if i > 0 {
			out.WriteByte('&')
		}
		out.WriteString(p.name)
		if p.value != nil {
			out.WriteByte('=')
			out.WriteString(*p.value)
		}
	}
	return out.String()
}

// decodeQueryComponent decodes a raw (percent-encoded) query name or
// value using the query decode rule: '+' decodes to space (§4.6's
// "decoded '+' equals decoded space" lookup rule).
func decodeQueryComponent(s string) string { return decodeComponent(s, true) }

// encodeQueryName encodes a decoded query parameter name with the
// query-component encode set.
func encodeQueryName(s string, alreadyEncoded bool) string {
	return encodeComponent(s, codecOptions{mode: encodeQueryComponent, alreadyEncoded: alreadyEncoded, plusIsSpace: true, asciiOnly: true})
}

// encodeQueryValue encodes a decoded query parameter value with the
// query-component encode set.
func encodeQueryValue(s string, alreadyEncoded bool) string {
	return encodeComponent(s, codecOptions{mode: encodeQueryComponent, alreadyEncoded: alreadyEncoded, plusIsSpace: true, asciiOnly: true})
}

// queryPairNameEquals reports whether encoded pair name p decodes to the
// same string as decodedName, per §4.6's lookup-by-decoded-name rule.
func queryPairNameEquals(encodedName, decodedName string) bool {
	return decodeQueryComponent(encodedName) == decodedName
}
