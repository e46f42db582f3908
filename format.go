package main

import (
	"bytes"
	"strconv"
	"strings"
)

// format is a little bit like a special sprintf for
// URLs; it will return a single formatted string
// based on the URL and the format string. e.g. for
// https://example.com:8080/path and format string
// "%S%D%p" it will return https://example.com/path
//
// It never fails: a directive it doesn't know about,
// or a lone % at the very end, is output untouched.
func format(u *urlParts, f string, subdomain subdomainFunc) string {
	out := &bytes.Buffer{}

	// directive letters are all ASCII, so the format is
	// walked byte by byte; anything else (including bytes
	// that aren't valid UTF-8) is copied through untouched
	inFormat := false
	for i := 0; i < len(f); i++ {
		c := f[i]

		if c == '%' && !inFormat {
			inFormat = true
			continue
		}

		if !inFormat {
			out.WriteByte(c)
			continue
		}

		switch c {

		// the scheme; e.g. https
		case 's':
			if u.scheme != placeholderScheme {
				out.WriteString(u.scheme)
			}

		// the scheme with delimiter; e.g. https://
		case 'S':
			if u.scheme != "" && u.scheme != placeholderScheme {
				out.WriteString(u.scheme)
				out.WriteString("://")
			}

		// the auth; e.g. user:pass
		case 'a':
			out.WriteString(u.auth())

		// the auth with delimiter; e.g. user:pass@
		case 'A':
			if auth := u.auth(); auth != "" {
				out.WriteString(auth)
				out.WriteRune('@')
			}

		// the username; e.g. user
		case 'u':
			out.WriteString(u.username)

		// the password; e.g. pass
		case 'U':
			if u.password != nil {
				out.WriteString(*u.password)
			}

		// the host and port; e.g. www.example.com:8080
		case 'H':
			if u.host != nil {
				out.WriteString(*u.host)
				if u.port != nil {
					out.WriteRune(':')
					out.WriteString(strconv.Itoa(int(*u.port)))
				}
			}

		// the domain; e.g. www.example.com
		case 'D':
			if u.host != nil {
				out.WriteString(*u.host)
			}

		// the subdomain; e.g. www
		case 'd':
			if u.host != nil {
				out.WriteString(subdomain(*u.host))
			}

		// the port; e.g. 8080
		case 'P':
			if u.port != nil {
				out.WriteString(strconv.Itoa(int(*u.port)))
			}

		// the path; e.g. /path/to/file.txt
		case 'p':
			out.WriteString(u.path)

		// the base of the path; e.g. file.txt
		case 'b':
			out.WriteString(u.base())

		// the query string; e.g. a=1&b=2
		case 'q':
			if u.query != nil {
				out.WriteString(*u.query)
			}

		// the query string with delimiter; e.g. ?a=1&b=2
		case 'Q':
			if u.query != nil {
				out.WriteRune('?')
				out.WriteString(*u.query)
			}

		// the fragment; e.g. section1
		case 'f':
			if u.fragment != nil {
				out.WriteString(*u.fragment)
			}

		// the fragment with delimiter; e.g. #section1
		case 'F':
			if u.fragment != nil {
				out.WriteRune('#')
				out.WriteString(*u.fragment)
			}

		// default to literal
		default:
			// output untouched
			out.WriteByte('%')
			out.WriteByte(c)
		}

		inFormat = false
	}

	// a trailing % has nothing to direct
	if inFormat {
		out.WriteByte('%')
	}

	return out.String()
}

// auth returns username[:password], or an empty string
// when there's neither a username nor a password.
func (u *urlParts) auth() string {
	if u.username == "" && u.password == nil {
		return ""
	}
	if u.password == nil {
		return u.username
	}
	return u.username + ":" + *u.password
}

// base returns the last segment of the path like basename
// does; e.g. for /foo/bar/ it returns bar rather than an
// empty string. URLs without path segments return "".
func (u *urlParts) base() string {
	if u.opaque {
		return ""
	}

	segments := strings.Split(u.path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}
