package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelSubdomain(t *testing.T) {
	cases := []struct {
		host     string
		expected string
	}{
		{"www.example.com", "www"},
		{"a.b.example.com", "a.b"},
		{"a.b.co.uk", "a.b"},
		{"example.co.uk", "example"},
		{"example.com", ""},
		{"localhost", ""},
		{"", ""},
		{"192.168.0.1", "192.168"},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, labelSubdomain(c.host), c.host)
	}
}

func TestSuffixSubdomain(t *testing.T) {
	cases := []struct {
		host     string
		expected string
	}{
		{"sub.example.com", "sub"},
		{"www.example.co.uk", "www"},
		{"a.b.co.uk", "a"},
		{"x.y.example.co.uk", "x.y"},
		{"WWW.Example.CO.UK", "WWW"},
		{"example.co.uk", ""},
		{"example.com", ""},
		{"co.uk", ""},
		{"", ""},
		{"192.168.0.1", ""},
		{"[::1]", ""},
	}

	for _, c := range cases {
		assert.Equal(t, c.expected, suffixSubdomain(c.host), c.host)
	}
}
