package route53

// The record type.
type RecordType string

const (
	RecordType_A     RecordType = "A"
	RecordType_AAAA  RecordType = "AAAA"
	RecordType_CAA   RecordType = "CAA"
	RecordType_CNAME RecordType = "CNAME"
	RecordType_DS    RecordType = "DS"
	RecordType_HTTPS RecordType = "HTTPS"
	RecordType_MX    RecordType = "MX"
	RecordType_NAPTR RecordType = "NAPTR"
	RecordType_NS    RecordType = "NS"
	RecordType_PTR   RecordType = "PTR"
	RecordType_SOA   RecordType = "SOA"
	RecordType_SPF   RecordType = "SPF"
	RecordType_SRV   RecordType = "SRV"
	RecordType_SSHFP RecordType = "SSHFP"
	RecordType_SVCB  RecordType = "SVCB"
	RecordType_TLSA  RecordType = "TLSA"
	RecordType_TXT   RecordType = "TXT"
)

func (r RecordType) String() string {
	return "RecordType." + string(r)
}
