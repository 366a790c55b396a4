package util

import "strings"

const demoDomainSuffix = "@example.com"
const demoMarker = "demo"

// IsDemoUser reports whether an email identifies a demo account: the demo
// domain suffix or the demo marker anywhere in the address.
func IsDemoUser(email string) bool {
	if email == "" {
		return false
	}
	return strings.HasSuffix(email, demoDomainSuffix) || strings.Contains(email, demoMarker)
}
