package dohdns

import "context"

// resolve is the single query path behind every typed resolve method: run
// the failover engine, interpret the DNS status of the answering server, and
// filter the answers down to the requested type.
func (d *Dns) resolve(ctx context.Context, name string, rt RecordType) ([]DnsAnswer, error) {
	res, err := d.query(ctx, name, rt)
	if err != nil {
		return nil, err
	}
	if res.rcode() != RCodeNoError {
		return nil, &StatusError{Code: res.rcode()}
	}
	return filterAnswers(res.Answer, rt), nil
}

// ResolveType resolves records of the type named by rtype (matched
// case-insensitively, e.g. "aaaa" or "MX"). It fails with
// ErrInvalidRecordType for names outside the registry.
func (d *Dns) ResolveType(ctx context.Context, name, rtype string) ([]DnsAnswer, error) {
	rt, ok := TypeByName(rtype)
	if !ok {
		return nil, ErrInvalidRecordType
	}
	return d.resolve(ctx, name, rt)
}

// ResolveMXSorted returns MX records for the given name in ascending order
// of priority, with the priority stripped from the data. Records without a
// parseable priority are dropped; records sharing a priority keep the order
// the server returned them in.
func (d *Dns) ResolveMXSorted(ctx context.Context, name string) ([]DnsAnswer, error) {
	res, err := d.query(ctx, name, TypeMX)
	if err != nil {
		return nil, err
	}
	if res.rcode() != RCodeNoError {
		return nil, &StatusError{Code: res.rcode()}
	}
	return sortMXAnswers(res.Answer), nil
}

// ResolveA queries host address records for the given name.
func (d *Dns) ResolveA(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeA)
}

// ResolveAAAA queries IP6 address records for the given name.
func (d *Dns) ResolveAAAA(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeAAAA)
}

// ResolveANY queries all record types for the given name. Not every provider
// supports ANY queries; the Google endpoint does.
func (d *Dns) ResolveANY(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeANY)
}

// ResolveCAA queries certification authority restriction records for the given name.
func (d *Dns) ResolveCAA(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeCAA)
}

// ResolveCDS queries child DS records for the given name.
func (d *Dns) ResolveCDS(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeCDS)
}

// ResolveCERT queries CERT records for the given name.
func (d *Dns) ResolveCERT(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeCERT)
}

// ResolveCNAME queries the canonical name for an alias for the given name.
func (d *Dns) ResolveCNAME(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeCNAME)
}

// ResolveDNAME queries DNAME records for the given name.
func (d *Dns) ResolveDNAME(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeDNAME)
}

// ResolveDNSKEY queries DNSKEY records for the given name.
func (d *Dns) ResolveDNSKEY(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeDNSKEY)
}

// ResolveDS queries delegation signer records for the given name.
func (d *Dns) ResolveDS(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeDS)
}

// ResolveHINFO queries host information records for the given name.
func (d *Dns) ResolveHINFO(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeHINFO)
}

// ResolveIPSECKEY queries IPSECKEY records for the given name.
func (d *Dns) ResolveIPSECKEY(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeIPSECKEY)
}

// ResolveMX queries mail exchange records for the given name. The data keeps
// its "priority hostname" form; use ResolveMXSorted for priority ordering.
func (d *Dns) ResolveMX(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeMX)
}

// ResolveNAPTR queries naming authority pointer records for the given name.
func (d *Dns) ResolveNAPTR(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeNAPTR)
}

// ResolveNS queries authoritative name server records for the given name.
func (d *Dns) ResolveNS(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeNS)
}

// ResolveNSEC queries NSEC records for the given name.
func (d *Dns) ResolveNSEC(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeNSEC)
}

// ResolveNSEC3 queries NSEC3 records for the given name.
func (d *Dns) ResolveNSEC3(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeNSEC3)
}

// ResolveNSEC3PARAM queries NSEC3PARAM records for the given name.
func (d *Dns) ResolveNSEC3PARAM(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeNSEC3PARAM)
}

// ResolvePTR queries domain name pointer records for the given name.
func (d *Dns) ResolvePTR(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypePTR)
}

// ResolveRP queries responsible person records for the given name.
func (d *Dns) ResolveRP(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeRP)
}

// ResolveRRSIG queries RRSIG records for the given name.
func (d *Dns) ResolveRRSIG(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeRRSIG)
}

// ResolveSOA queries start of a zone of authority records for the given name.
func (d *Dns) ResolveSOA(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeSOA)
}

// ResolveSPF queries SPF records for the given name. See RFC 7208.
func (d *Dns) ResolveSPF(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeSPF)
}

// ResolveSRV queries server selection records for the given name.
func (d *Dns) ResolveSRV(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeSRV)
}

// ResolveSSHFP queries SSH key fingerprint records for the given name.
func (d *Dns) ResolveSSHFP(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeSSHFP)
}

// ResolveTLSA queries TLSA records for the given name.
func (d *Dns) ResolveTLSA(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeTLSA)
}

// ResolveTXT queries text strings records for the given name.
func (d *Dns) ResolveTXT(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeTXT)
}

// ResolveWKS queries well known service description records for the given name.
func (d *Dns) ResolveWKS(ctx context.Context, name string) ([]DnsAnswer, error) {
	return d.resolve(ctx, name, TypeWKS)
}
