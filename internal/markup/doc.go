// Package markup holds the small HTML helpers shared by filters: an XSS
// filter for configuration values that end up inside markup, and an
// attribute serializer that renders escaped name="value" pairs.
package markup
