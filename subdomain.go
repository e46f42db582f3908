package main

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

// a subdomainFunc derives the subdomain portion of a
// host for the %d directive; e.g. www for www.example.com
type subdomainFunc func(host string) string

// labelSubdomain treats the last two labels of a host as
// the domain and TLD and returns whatever comes before
// them. There's no public suffix awareness here, so
// a.b.co.uk gives a.b; use suffixSubdomain for that.
func labelSubdomain(host string) string {
	labels := strings.Split(host, ".")
	if len(labels) <= 2 {
		return ""
	}
	return strings.Join(labels[:len(labels)-2], ".")
}

// suffixSubdomain strips the registrable domain (the public
// suffix plus one label) from a host using the suffix list
// compiled into x/net; e.g. www.example.co.uk gives www and
// a.b.co.uk gives a
func suffixSubdomain(host string) string {
	// IP literals don't have subdomains
	if strings.HasPrefix(host, "[") || net.ParseIP(host) != nil {
		return ""
	}

	lower := strings.ToLower(host)
	domain, err := publicsuffix.EffectiveTLDPlusOne(lower)
	if err != nil || len(lower) != len(host) || !strings.HasSuffix(lower, "."+domain) {
		return ""
	}

	return host[:len(host)-len(domain)-1]
}
