package dohdns

import (
	"sort"
	"strconv"
	"strings"
)

// DnsAnswer is a single record returned by a DoH server.
type DnsAnswer struct {
	// Name is the record owner name.
	Name string `json:"name"`
	// Type is the numeric record type. Use TypeToName for the symbolic name.
	Type uint32 `json:"type"`
	// TTL is the time to live in seconds.
	TTL uint32 `json:"TTL"`
	// Data is the record payload. For answers returned by ResolveMXSorted
	// the leading priority has been stripped.
	Data string `json:"data"`
}

// dnsResponse is the JSON envelope returned by the dns-json API. It only
// lives for the duration of one decode; callers receive []DnsAnswer.
// Status is a pointer so that an envelope missing it is detectable as a
// decode failure instead of reading as NOERROR.
type dnsResponse struct {
	Status  *uint32     `json:"Status"`
	Answer  []DnsAnswer `json:"Answer"`
	Comment string      `json:"Comment"`
}

// rcode returns the DNS response code of the envelope. Only valid after the
// decoder has verified Status is present.
func (r *dnsResponse) rcode() RCode {
	return RCode(*r.Status)
}

// filterAnswers retains the answers matching the requested type, preserving
// their decoded order. ANY (code 0) matches every type.
func filterAnswers(answers []DnsAnswer, rt RecordType) []DnsAnswer {
	filtered := make([]DnsAnswer, 0, len(answers))
	for _, a := range answers {
		if a.Type == rt.Code || rt.Code == TypeANY.Code {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// sortMXAnswers extracts MX answers and orders them by ascending priority.
//
// MX data arrives as "priority hostname". Answers whose first token is not an
// unsigned integer, or that have no hostname after it, are dropped. The
// priority is removed from the data of the surviving answers. The sort is
// stable, so answers sharing a priority keep their decoded order.
func sortMXAnswers(answers []DnsAnswer) []DnsAnswer {
	type prioritized struct {
		answer   DnsAnswer
		priority uint64
	}

	mxs := make([]prioritized, 0, len(answers))
	for _, a := range answers {
		if a.Type != TypeMX.Code {
			continue
		}
		fields := strings.Fields(a.Data)
		if len(fields) < 2 {
			continue
		}
		priority, err := strconv.ParseUint(fields[0], 10, 32)
		if err != nil {
			continue
		}
		a.Data = strings.Join(fields[1:], " ")
		mxs = append(mxs, prioritized{answer: a, priority: priority})
	}

	sort.SliceStable(mxs, func(i, j int) bool {
		return mxs[i].priority < mxs[j].priority
	})

	sorted := make([]DnsAnswer, 0, len(mxs))
	for _, mx := range mxs {
		sorted = append(sorted, mx.answer)
	}
	return sorted
}
