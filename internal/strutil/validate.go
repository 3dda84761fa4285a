package strutil

import "regexp"

var (
	emailPattern = regexp.MustCompile(`^([a-zA-Z0-9_\-.]+)@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.)|(([a-zA-Z0-9\-]+\.)+))([a-zA-Z]{2,4}|[0-9]{1,3})(\]?)$`)

	ipv4Octet   = `([01]?\d\d?|2[0-4]\d|25[0-5])`
	ipv4Pattern = regexp.MustCompile(`^` + ipv4Octet + `\.` + ipv4Octet + `\.` + ipv4Octet + `\.` + ipv4Octet + `$`)
)

// IsEmpty reports whether s has no characters.
func IsEmpty(s string) bool {
	return len(s) == 0
}

// IsIPv4Address reports whether s is a dotted-quad IPv4 address with every
// octet in 0-255. Leading zeros are accepted ("010.0.0.1").
func IsIPv4Address(s string) bool {
	if IsEmpty(s) {
		return false
	}
	return ipv4Pattern.MatchString(s)
}

// IsEmail reports whether s looks like an email address. The domain part may
// be a dotted host name or a bracketed IPv4 literal.
func IsEmail(s string) bool {
	if IsEmpty(s) {
		return false
	}
	return emailPattern.MatchString(s)
}
