package main

import (
	"net/url"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// placeholderScheme is prefixed to authority-relative input
// (e.g. //example.com/path) so that it parses as an absolute
// URL. It must never show up in formatted output.
const placeholderScheme = "none"

// specialSchemes are the schemes whose URLs get a / path
// when none is written; e.g. https://example.com has path /
var specialSchemes = map[string]bool{
	"http":  true,
	"https": true,
	"ws":    true,
	"wss":   true,
	"ftp":   true,
	"file":  true,
}

// urlParts is the decomposed view of a URL that the format
// directives read from. Optional components are pointers so
// that absent and empty stay distinct; e.g. http://host? has
// an empty query while http://host has none at all.
type urlParts struct {
	scheme   string
	username string
	password *string
	host     *string
	port     *uint16

	// path is always present. For opaque URLs (e.g. mailto:x@y)
	// it holds the opaque text and the URL has no path segments.
	path   string
	opaque bool

	query    *string
	fragment *string
}

// parseURL decomposes a raw URL string. Input starting with //
// gets the placeholder scheme; anything else must carry its own
// scheme. Errors name the URL exactly as the user supplied it.
func parseURL(raw string) (*urlParts, error) {
	toParse := raw
	if strings.HasPrefix(raw, "//") {
		toParse = placeholderScheme + ":" + raw
	}

	u, err := url.Parse(toParse)
	if err != nil {
		// the *url.Error quotes toParse, which may carry the
		// placeholder scheme; only its cause is worth keeping
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return nil, errors.Wrapf(err, "failed to parse URL: %s", raw)
	}

	if u.Scheme == "" {
		return nil, errors.Errorf("failed to parse URL: %s: relative URL without a base", raw)
	}

	p := &urlParts{
		scheme: u.Scheme,
	}

	// the scheme is a prefix of toParse (modulo case), so
	// whatever follows "scheme:" tells us about the authority
	rest := toParse[len(u.Scheme)+1:]
	hasAuthority := strings.HasPrefix(rest, "//")
	if hasAuthority {
		host := stripPort(u.Host)
		p.host = &host
	}

	// net/url hands back decoded credentials, so they're
	// taken from the raw text instead; e.g. us%40er stays
	// as it is rather than turning into us@er
	if u.User != nil && hasAuthority {
		user, pass, hasPass := strings.Cut(rawUserinfo(rest[2:]), ":")
		p.username = user
		if hasPass {
			p.password = &pass
		}
	}

	if port := u.Port(); port != "" {
		n, err := strconv.ParseUint(port, 10, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse URL: %s", raw)
		}
		port16 := uint16(n)
		p.port = &port16
	}

	if u.Opaque != "" {
		p.path = u.Opaque
		p.opaque = true
	} else {
		p.path = u.EscapedPath()
	}

	// hierarchical schemes always have at least a root path
	if hasAuthority && p.path == "" && specialSchemes[p.scheme] {
		p.path = "/"
	}

	if u.RawQuery != "" || u.ForceQuery {
		query := u.RawQuery
		p.query = &query
	}

	// net/url doesn't remember a bare trailing #, but it always
	// splits on the first one, so its presence is the signal
	if strings.Contains(toParse, "#") {
		fragment := u.EscapedFragment()
		p.fragment = &fragment
	}

	return p, nil
}

// rawUserinfo returns the still-escaped userinfo from an
// authority and whatever follows it; e.g. for
// user:p%3Ass@example.com/path it returns user:p%3Ass
func rawUserinfo(authority string) string {
	if end := strings.IndexAny(authority, "/?#"); end != -1 {
		authority = authority[:end]
	}

	at := strings.LastIndexByte(authority, '@')
	if at == -1 {
		return ""
	}
	return authority[:at]
}

// stripPort removes a trailing :port (or a bare trailing colon)
// from a host, leaving the brackets of IPv6 literals intact.
// e.g. [::1]:8080 becomes [::1]
func stripPort(hostport string) string {
	colon := strings.LastIndexByte(hostport, ':')
	if colon > strings.LastIndexByte(hostport, ']') {
		return hostport[:colon]
	}
	return hostport
}
