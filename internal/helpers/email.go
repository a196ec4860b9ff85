package helpers

import "regexp"

// The local part is limited to the ASCII characters RFC 5322 allows unquoted; the domain
// is one or more dot separated labels, so a missing top level domain is accepted.
var emailPattern = regexp.MustCompile("^[A-Za-z0-9!#$%&'*+/=?^_`{|}~.-]+@[A-Za-z0-9-]+(\\.[A-Za-z0-9-]+)*$")

// IsValidEmail reports whether candidate looks like an email address.
func IsValidEmail(candidate string) bool {
	return emailPattern.MatchString(candidate)
}
