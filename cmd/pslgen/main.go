/*
 * Copyright (c) 2018 The Go Authors. All rights reserved.
 * Use of this source code is governed by a BSD-style license that can be found in the LICENSE file.
 */

// Command pslgen fetches the public suffix list from its canonical URL
// and writes a gzip-compressed, newline-delimited blob in the format
// publicsuffix.LoadFixture reads. It is the one component of this module
// allowed network and disk I/O (§5, §10.6): the url and publicsuffix
// packages never import it, only consume the file it produces.
package main

import (
	"bufio"
	"compress/gzip"
	"flag"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"
)

const defaultSourceURL = "https://publicsuffix.org/list/public_suffix_list.dat"

func main() {
	src := flag.String("url", defaultSourceURL, "source URL of the public suffix list")
	out := flag.String("out", "public_suffix_list.dat.gz", "output gzip path")
	timeout := flag.Duration("timeout", 30*time.Second, "HTTP client timeout")
	flag.Parse()

	client := &http.Client{Timeout: *timeout}
	resp, err := client.Get(*src)
	if err != nil {
		log.Fatalf("pslgen: fetching %s: %v", *src, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		log.Fatalf("pslgen: fetching %s: unexpected status %s", *src, resp.Status)
	}

	suffixes, err := parseSuffixes(resp.Body)
	if err != nil {
		log.Fatalf("pslgen: parsing list: %v", err)
	}
	log.Printf("pslgen: parsed %d suffixes", len(suffixes))

	f, err := os.Create(*out)
	if err != nil {
		log.Fatalf("pslgen: creating %s: %v", *out, err)
	}
	defer f.Close()

	gz := gzip.NewWriter(f)
	for _, s := range suffixes {
		if _, err := io.WriteString(gz, s+"\n"); err != nil {
			log.Fatalf("pslgen: writing %s: %v", *out, err)
		}
	}
	if err := gz.Close(); err != nil {
		log.Fatalf("pslgen: closing gzip writer: %v", err)
	}
	log.Printf("pslgen: wrote %s", *out)
}

// parseSuffixes extracts the ICANN and PRIVATE domain sections of the
// public_suffix_list.dat format: one rule per line, comments starting
// with "//", wildcard rules kept verbatim ("*.example.com"), exception
// rules (leading "!") dropped since this module's PublicSuffixList
// contract has no use for exceptions.
func parseSuffixes(r io.Reader) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "//") || strings.HasPrefix(line, "!") {
			continue
		}
		out = append(out, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
