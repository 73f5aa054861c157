// Package iframe implements the responsive iframe filter. It wraps every
// <iframe>...</iframe> occurrence in a configurable container element, by
// default <figure class="media-wrapper">, so themes can size embeds with CSS.
//
// Matching is a single regular expression pass over the text, not an HTML
// parse. Nested or malformed markup is not understood: an <iframe> without a
// closing tag is left alone, and running the filter over its own output wraps
// the iframes a second time.
package iframe
