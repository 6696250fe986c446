/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import "strings"

const asciiWhitespace = "\t\n\f\r "

// rawParts is the result of tokenizing an input string per §4.4 steps
// 1-7, before any component is validated or canonicalized. Both Parse
// (C4) and Resolve (C7) share this tokenizer; they differ only in how
// they combine the result with a base URL.
type rawParts struct {
	hasScheme bool
	schemeRaw string // original case, for error messages
	scheme    string // lowercased

	slashes      int // count of '/' or '\' immediately following the scheme colon
	hasAuthority bool
	authority    string // unparsed authority text

	hasUserinfo bool
	rawUser     string
	hasPass     bool
	rawPass     string
	rawHost     string // bracket-inclusive for IPv6
	hasPort     bool
	rawPort     string

	rawPath string // '\' already normalized to '/'; empty means none given

	hasQuery bool
	rawQuery string

	hasFragment bool
	rawFragment string
}

func isSchemeChar(c byte) bool {
	return c == '+' || c == '-' || c == '.' ||
		('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

func isASCIILetter(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z')
}

// scanScheme recognizes the leading `scheme ":"` prefix of s, per RFC
// 3986's ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ) grammar.
func scanScheme(s string) (prefix, rest string, ok bool) {
	i := 0
	for i < len(s) && isSchemeChar(s[i]) {
		i++
	}
	if i > 0 && i < len(s) && s[i] == ':' && isASCIILetter(s[0]) {
		return s[:i], s[i+1:], true
	}
	return "", s, false
}

// tokenize implements §4.4 steps 1-7 without validating or canonicalizing
// any component. It is shared by Parse/ParseLenient (where the absence of
// an authority with no base is a hard error) and Resolve (where the
// reference's own authority-slash tolerance and scheme-inheritance rules
// of §4.7 decide what to do with a missing piece).
func tokenize(s string) rawParts {
	s = strings.Trim(s, asciiWhitespace)

	var rp rawParts
	rest := s
	if prefix, after, ok := scanScheme(rest); ok {
		rp.hasScheme = true
		rp.schemeRaw = prefix
		rp.scheme = strings.ToLower(prefix)
		rest = after
	}

	slashes := 0
	for slashes < len(rest) && (rest[slashes] == '/' || rest[slashes] == '\\') {
		slashes++
	}
	rp.slashes = slashes
	rest2 := rest[slashes:]

	authorityEnd := strings.IndexAny(rest2, "/\\?#")
	if authorityEnd < 0 {
		authorityEnd = len(rest2)
	}
	authority := rest2[:authorityEnd]

	var pathAndBeyond string
	if slashes >= 2 || (rp.hasScheme && authority != "") {
		rp.hasAuthority = true
		rp.authority = authority
		pathAndBeyond = rest2[authorityEnd:]
	} else {
		pathAndBeyond = rest
	}

	if rp.hasAuthority {
		parseAuthority(&rp, rp.authority)
	}

	path := pathAndBeyond
	if i := strings.IndexAny(path, "?#"); i >= 0 {
		tail := path[i:]
		path = path[:i]
		if tail[0] == '?' {
			tail = tail[1:]
			if j := strings.IndexByte(tail, '#'); j >= 0 {
				rp.hasQuery = true
				rp.rawQuery = tail[:j]
				rp.hasFragment = true
				rp.rawFragment = tail[j+1:]
			} else {
				rp.hasQuery = true
				rp.rawQuery = tail
			}
		} else {
			rp.hasFragment = true
			rp.rawFragment = tail[1:]
		}
	}
	rp.rawPath = strings.ReplaceAll(path, `\`, "/")

	return rp
}

// parseAuthority splits authority into userinfo/host/port per §4.4 step
// 4: the last '@' delimits userinfo from host:port; userinfo splits at
// its first ':'.
func parseAuthority(rp *rawParts, authority string) {
	hostport := authority
	if at := strings.LastIndexByte(authority, '@'); at >= 0 {
		rp.hasUserinfo = true
		userinfo := authority[:at]
		hostport = authority[at+1:]
		if c := strings.IndexByte(userinfo, ':'); c >= 0 {
			rp.rawUser = userinfo[:c]
			rp.hasPass = true
			rp.rawPass = userinfo[c+1:]
		} else {
			rp.rawUser = userinfo
		}
	}

	if strings.HasPrefix(hostport, "[") {
		end := strings.IndexByte(hostport, ']')
		if end < 0 {
			rp.rawHost = hostport // malformed; caught by host canonicalization
			return
		}
		rp.rawHost = hostport[:end+1]
		remainder := hostport[end+1:]
		if strings.HasPrefix(remainder, ":") {
			rp.hasPort = true
			rp.rawPort = remainder[1:]
		} else {
			rp.rawHost = hostport // force host canonicalizer to reject trailing garbage
		}
		return
	}

	if c := strings.IndexByte(hostport, ':'); c >= 0 {
		rp.rawHost = hostport[:c]
		rp.hasPort = true
		rp.rawPort = hostport[c+1:]
	} else {
		rp.rawHost = hostport
	}
	if rp.hasPort && rp.rawPort == "" {
		rp.hasPort = false
	}
}

func validPortDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
		if n > 65535 {
			return 0, false
		}
	}
	if n == 0 {
		return 0, false
	}
	return n, true
}

// parseStrict implements the top-level C4 parser used by Parse: a
// missing scheme, missing authority, bad host, or bad port is a hard
// *Error.
func parseStrict(raw string) (*URL, error) {
	rp := tokenize(raw)
	if !rp.hasScheme {
		return nil, &Error{Op: "parse", URL: raw, Err: ErrMissingColon}
	}
	if rp.scheme != HTTP && rp.scheme != HTTPS {
		return nil, &Error{Op: "parse", URL: raw, Err: badSchemeError(rp.schemeRaw)}
	}
	if !rp.hasAuthority {
		return nil, &Error{Op: "parse", URL: raw, Err: ErrNoAuthority}
	}

	u := &URL{scheme: rp.scheme}
	if err := fillAuthority(u, &rp, raw); err != nil {
		return nil, err
	}
	fillPathQueryFragment(u, &rp)
	return u, nil
}

// parseLenient is ParseLenient's entry point: every failure mode of
// parseStrict collapses to (nil, false).
func parseLenient(raw string) (*URL, bool) {
	u, err := parseStrict(raw)
	if err != nil {
		return nil, false
	}
	return u, true
}

// fillAuthority canonicalizes the host, validates the port, and stores
// the encoded userinfo on u, returning a strict *Error on failure.
func fillAuthority(u *URL, rp *rawParts, raw string) error {
	host, isIPv6, err := canonicalizeHost(rp.rawHost)
	if err != nil {
		return &Error{Op: "parse", URL: raw, Err: err}
	}
	u.host = host
	u.isIPv6 = isIPv6

	if rp.hasPort {
		n, ok := validPortDigits(rp.rawPort)
		if !ok {
			return &Error{Op: "parse", URL: raw, Err: badPortError(rp.rawPort)}
		}
		if n == defaultPort(u.scheme) {
			u.portSet = false
		} else {
			u.portSet = true
			u.port = n
		}
	}
	if !u.portSet {
		u.port = defaultPort(u.scheme)
	}

	if rp.hasUserinfo {
		u.username = encodeComponent(rp.rawUser, codecOptions{mode: encodeUsername, alreadyEncoded: true, asciiOnly: true})
		if rp.hasPass {
			u.password = encodeComponent(rp.rawPass, codecOptions{mode: encodePassword, alreadyEncoded: true, asciiOnly: true})
		}
	}
	return nil
}

// fillPathQueryFragment normalizes and stores the path, query, and
// fragment components of rp onto u.
func fillPathQueryFragment(u *URL, rp *rawParts) {
	segs := encodePathSegments(splitPathSegments(rp.rawPath))
	u.segments = removeDotSegments(segs)

	if rp.hasQuery {
		u.hasQuery = true
		u.query = encodeComponent(rp.rawQuery, codecOptions{mode: encodeQuery, alreadyEncoded: true, asciiOnly: true})
	}
	if rp.hasFragment {
		u.hasFragment = true
		u.fragment = encodeComponent(rp.rawFragment, codecOptions{mode: encodeFragment, alreadyEncoded: true})
	}
}
