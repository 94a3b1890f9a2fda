// Copyright 2025 Bruno Schaatsbergen. All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package dohdns

import "strings"

// RecordType pairs an IANA record-type code with its symbolic name as used
// in the DoH query string.
type RecordType struct {
	Code uint32
	Name string
}

// String returns the symbolic name of the record type.
func (rt RecordType) String() string { return rt.Name }

// Supported record types. Codes are taken from the IANA DNS parameters
// registry:
// https://www.iana.org/assignments/dns-parameters/dns-parameters.xhtml#dns-parameters-4
var (
	TypeA          = RecordType{1, "A"}
	TypeAAAA       = RecordType{28, "AAAA"}
	TypeANY        = RecordType{0, "ANY"}
	TypeCAA        = RecordType{257, "CAA"}
	TypeCDS        = RecordType{59, "CDS"}
	TypeCERT       = RecordType{37, "CERT"}
	TypeCNAME      = RecordType{5, "CNAME"}
	TypeDNAME      = RecordType{39, "DNAME"}
	TypeDNSKEY     = RecordType{48, "DNSKEY"}
	TypeDS         = RecordType{43, "DS"}
	TypeHINFO      = RecordType{13, "HINFO"}
	TypeIPSECKEY   = RecordType{45, "IPSECKEY"}
	TypeMX         = RecordType{15, "MX"}
	TypeNAPTR      = RecordType{35, "NAPTR"}
	TypeNS         = RecordType{2, "NS"}
	TypeNSEC       = RecordType{47, "NSEC"}
	TypeNSEC3      = RecordType{50, "NSEC3"}
	TypeNSEC3PARAM = RecordType{51, "NSEC3PARAM"}
	TypePTR        = RecordType{12, "PTR"}
	TypeRP         = RecordType{17, "RP"}
	TypeRRSIG      = RecordType{46, "RRSIG"}
	TypeSOA        = RecordType{6, "SOA"}
	TypeSPF        = RecordType{99, "SPF"}
	TypeSRV        = RecordType{33, "SRV"}
	TypeSSHFP      = RecordType{44, "SSHFP"}
	TypeTLSA       = RecordType{52, "TLSA"}
	TypeTXT        = RecordType{16, "TXT"}
	TypeWKS        = RecordType{11, "WKS"}
)

// recordTypes is the single source of truth for the registry; the lookup
// maps below are derived from it and never mutated after init.
var recordTypes = []RecordType{
	TypeA, TypeAAAA, TypeANY, TypeCAA, TypeCDS, TypeCERT, TypeCNAME,
	TypeDNAME, TypeDNSKEY, TypeDS, TypeHINFO, TypeIPSECKEY, TypeMX,
	TypeNAPTR, TypeNS, TypeNSEC, TypeNSEC3, TypeNSEC3PARAM, TypePTR,
	TypeRP, TypeRRSIG, TypeSOA, TypeSPF, TypeSRV, TypeSSHFP, TypeTLSA,
	TypeTXT, TypeWKS,
}

var (
	typesByName = make(map[string]RecordType, len(recordTypes))
	typeNames   = make(map[uint32]string, len(recordTypes))
)

func init() {
	for _, rt := range recordTypes {
		typesByName[strings.ToLower(rt.Name)] = rt
		typeNames[rt.Code] = rt.Name
	}
}

// TypeByName returns the record type for a symbolic name, matched
// case-insensitively. The second return value reports whether the name is
// known.
func TypeByName(name string) (RecordType, bool) {
	rt, ok := typesByName[strings.ToLower(name)]
	return rt, ok
}

// TypeToName converts a record-type code to its uppercase symbolic name, or
// "UNKNOWN" for codes outside the registry.
func TypeToName(code uint32) string {
	if name, ok := typeNames[code]; ok {
		return name
	}
	return "UNKNOWN"
}
