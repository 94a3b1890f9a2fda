package dohdns

import "github.com/miekg/dns"

// RCode is the DNS response code carried in the Status field of a JSON DoH
// response. Zero means the query succeeded; nonzero values are DNS-level
// failures such as NXDOMAIN, reported by the server that answered.
type RCode uint32

// RCodeNoError is the only RCode on which answers are returned.
const RCodeNoError = RCode(dns.RcodeSuccess)

// Known reports whether the code is a recognized DNS response code.
func (rc RCode) Known() bool {
	_, ok := dns.RcodeToString[int(rc)]
	return ok
}

// String returns the standard name of the response code (e.g. "NXDOMAIN"),
// or "UNKNOWN" for codes not in the registry.
func (rc RCode) String() string {
	if s, ok := dns.RcodeToString[int(rc)]; ok {
		return s
	}
	return "UNKNOWN"
}
