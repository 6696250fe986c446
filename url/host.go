/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

package url

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
)

// idnaProfile performs ToASCII with nontransitional processing, per §4.2
// step 3. Grounded on the IdnaASCII/cleanHost idiom of the HTTP code this
// module was derived from (which used golang.org/x/net/idna's
// predefined idna.Lookup profile directly) and on the nontransitional,
// lookup-mapping profile construction used by WHATWG-style URL parsers in
// the wild.
var idnaProfile = idna.New(
	idna.MapForLookup(),
	idna.Transitional(false),
	idna.VerifyDNSLength(false),
)

// forbiddenHostByte holds the ASCII bytes that §4.2 step 3 forbids in a
// canonicalized, non-IP host, beyond the controls and DEL already excluded
// by being outside printable ASCII.
var forbiddenHostByte = [128]bool{
	' ': true, '#': true, '%': true, '/': true, ':': true,
	'?': true, '@': true, '[': true, '\\': true, ']': true,
}

// canonicalizeHost implements §4.2: percent-decode, then dispatch to the
// IPv6, IPv4, or IDN branch. raw is the host slice taken from the
// authority, still bracketed for an IPv6 literal; a leading '[' selects
// the IPv6 branch and the brackets are removed here.
func canonicalizeHost(raw string) (host string, isIPv6 bool, err error) {
	bracketed := strings.HasPrefix(raw, "[")
	decoded := percentDecodeStrict(raw)

	if bracketed {
		if !strings.HasSuffix(decoded, "]") {
			return "", false, badHostError(raw)
		}
		addr, perr := parseIPv6(decoded[1 : len(decoded)-1])
		if perr != nil {
			return "", false, badHostError(raw)
		}
		if v4 , ok := ipv4MappedSuffix(addr); ok {
			return v4, false, nil
		}
		return formatIPv6(addr), true, nil
	}

	if strings.ContainsRune(decoded, ':') {
		// An unbracketed host containing ':' is only ever valid as an IPv6
		// literal reached through the bracketed branch above; reject it.
		return "", false, badHostError(raw)
	}

	if looksLikeIPv4(decoded) {
		v4, ok := parseIPv4(decoded)
		if !ok {
			return "", false, badHostError(raw)
		}
		return v4, false, nil
	}

	ascii, aerr := idnaProfile.ToASCII(decoded)
	if aerr != nil {
		return "", false, badHostError(raw)
	}
	ascii = strings.ToLower(ascii)
	if ascii == "" || !validCanonicalHostByte(ascii) {
		return "", false, badHostError(raw)
	}
	return ascii, false, nil
}

func validCanonicalHostByte(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c <= 0x1f || c >= 0x7f {
			return false
		}
		if c < 0x80 && forbiddenHostByte[c] {
			return false
		}
	}
	return true
}

func looksLikeIPv4(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '.' && (c < '0' || c > '9') {
			return false
		}
	}
	return true
}

// parseIPv4 implements the strict dotted-quad rule of §4.2 step 4: exactly
// four decimal octets 0..255, no leading zeros (other than the literal
// single digit "0"), separated by '.'.
func parseIPv4(s string) (string, bool) {
	parts := strings.Split(s, ".")
	if len(parts) != 4 {
		return "", false
	}
	var out strings.Builder
	for i, p := range parts {
		if p == "" || len(p) > 3 {
			return "", false
		}
		if len(p) > 1 && p[0] == '0' {
			return "", false
		}
		for j := 0; j < len(p); j++ {
			if p[j] < '0' || p[j] > '9' {
				return "", false
			}
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return "", false
		}
		if i > 0 {
			out.WriteByte('.')
		}
		out.WriteString(strconv.Itoa(n))
	}
	return out.String(), true
}

// ipv6Addr is the 16-byte binary form of an IPv6 address, stored as 8
// big-endian 16-bit groups.
type ipv6Addr [8]uint16

// parseIPv6 implements §4.2 step 2: 1-8 groups of 1-4 hex digits
// separated by ':', at most one "::" compression, and an optional
// trailing dotted-quad IPv4 suffix contributing the final 4 bytes.
// Grounded on the WHATWG host-parsing algorithm (see
// nlnwa/whatwg-url's parseIPv6) adapted to operate on a pre-decoded
// string rather than a code-point cursor, and restricted to reject scope
// ids per this package's Non-goals.
func parseIPv6(s string) (ipv6Addr, error) {
	var addr ipv6Addr
	if strings.Contains(s, "%") {
		return addr, errBadIPv6 // zone identifiers are out of scope
	}

	pieceIdx := 0
	compress := -1
	i := 0

	if strings.HasPrefix(s, "::") {
		i = 2
		pieceIdx = 1
		compress = 1
	} else if strings.HasPrefix(s, ":") {
		return addr, errBadIPv6
	}

	for i < len(s) {
		if pieceIdx == 8 {
			return addr, errBadIPv6
		}
		if s[i] == ':' {
			if compress >= 0 {
				return addr, errBadIPv6
			}
			i++
			pieceIdx++
			compress = pieceIdx
			if i >= len(s) {
				break
			}
			continue
		}

		start := i
		for i < len(s) && i-start < 4 && ishex(s[i]) {
			i++
		}
		if i == start {
			return addr, errBadIPv6
		}
		hexPart := s[start:i]

		if i < len(s) && s[i] == '.' {
			// Trailing embedded IPv4 suffix.
			if pieceIdx > 6 {
				return addr, errBadIPv6
			}
			v4, ok := parseIPv4(s[start:])
			if !ok {
				return addr, errBadIPv6
			}
			octets := strings.Split(v4, ".")
			var b [4]byte
			for k, o := range octets {
				n, _ := strconv.Atoi(o)
				b[k] = byte(n)
			}
			addr[pieceIdx] = uint16(b[0])<<8 | uint16(b[1])
			addr[pieceIdx+1] = uint16(b[2])<<8 | uint16(b[3])
			pieceIdx += 2
			i = len(s)
			break
		}

		v, err := strconv.ParseUint(hexPart, 16, 16)
		if err != nil {
			return addr, errBadIPv6
		}
		addr[pieceIdx] = uint16(v)
		pieceIdx++

		if i < len(s) {
			if s[i] != ':' {
				return addr, errBadIPv6
			}
			i++
			if i == len(s) {
				// Trailing lone ':' with no compression started here.
				if compress < 0 {
					return addr, errBadIPv6
				}
			}
		}
	}

	if compress >= 0 {
		if pieceIdx == 8 {
			return addr, errBadIPv6
		}
		shift := 8 - pieceIdx
		for k := pieceIdx - 1; k >= compress; k-- {
			addr[k+shift] = addr[k]
			addr[k] = 0
		}
	} else if pieceIdx != 8 {
		return addr, errBadIPv6
	}

	return addr, nil
}

var errBadIPv6 = strconv.ErrSyntax

// ipv4MappedSuffix reports whether addr is an IPv4-mapped IPv6 address
// (::ffff:0:0/96) and, if so, returns its dotted-quad form.
func ipv4MappedSuffix(addr ipv6Addr) (string, bool) {
	for i := 0; i < 4; i++ {
		if addr[i] != 0 {
			return "", false
		}
	}
	if addr[4] != 0 || addr[5] != 0xffff {
		return "", false
	}
	b0 := byte(addr[6] >> 8)
	b1 := byte(addr[6])
	b2 := byte(addr[7] >> 8)
	b3 := byte(addr[7])
	return strconv.Itoa(int(b0)) + "." + strconv.Itoa(int(b1)) + "." +
		strconv.Itoa(int(b2)) + "." + strconv.Itoa(int(b3)), true
}

// formatIPv6 renders addr in RFC 5952 canonical form: lowercase hex
// groups, and the longest run of two or more zero groups collapsed to
// "::" (ties broken in favor of the first, i.e. leftmost, run).
func formatIPv6(addr ipv6Addr) string {
	bestStart, bestLen := -1, 0
	curStart, curLen := -1, 0
	for i := 0; i < 8; i++ {
		if addr[i] == 0 {
			if curStart < 0 {
				curStart = i
			}
			curLen++
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
		} else {
			curStart, curLen = -1, 0
		}
	}
	if bestLen < 2 {
		bestStart = -1
	}

	var out strings.Builder
	i := 0
	for i < 8 {
		if i == bestStart {
			out.WriteString("::")
			i += bestLen
			continue
		}
		if i > 0 && i != bestStart+bestLen {
			out.WriteByte(':')
		}
		out.WriteString(strconv.FormatUint(uint64(addr[i]), 16))
		i++
	}
	return out.String()
}

// quoteHostForError returns raw unchanged when it is printable ASCII and
// strconv.Quote(raw) otherwise. The strict-parse host error message does
// not call it; hostError always quotes with strconv.Quote.
func quoteHostForError(raw string) string { return quoteASCII(raw) }
