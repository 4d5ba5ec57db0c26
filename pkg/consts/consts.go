package consts

// DefaultBasePath is the path at which a spec-compliant DRS instance serves its API.
const DefaultBasePath = "ga4gh/drs/v1"

const (
	SchemeDRS   = "drs"
	SchemeHTTP  = "http"
	SchemeHTTPS = "https"
)

const (
	DefaultHTTPPort  = 80
	DefaultHTTPSPort = 443
)

// MaxHostLength is the RFC-1035 bound on a full domain name.
const MaxHostLength = 253

type AccessType string

const (
	AccessTypeHTTPS AccessType = "https"
	AccessTypeHTTP  AccessType = "http"
	AccessTypeS3    AccessType = "s3"
	AccessTypeFTP   AccessType = "ftp"
	AccessTypeFile  AccessType = "file"
)

const CheckerTypeMD5 = "md5"

const DefaultFileMode = 0777

const S3Prefix = "s3://"

const (
	DefaultRetryCount = 5
	DefaultPartSize   = 64 * 1024 * 1024 // 64MiB
)

const (
	DefaultMinBandwidth = 1024 * 1024       // 1MB/s
	DefaultMaxBandwidth = 128 * 1024 * 1024 // 128MB/s = 1Gbps, consider this as no limit
)
