// Package strutil collects small string helpers: validation, URL form
// encoding in UTF-8 and ISO-8859-1, hex digests, HTML entity resolution and
// line/comma handling.
//
// Every function is stateless and safe for concurrent use.
package strutil
