package constants

type (
	APIStatus   string
	CachePrefix string
)

const (
	APIStatusOk    APIStatus = "ok"
	APIStatusError APIStatus = "error"

	CachePrefixSeatTypes CachePrefix = "SEAT_TYPES"
)

const (
	HeaderRequestID    = "X-Request-ID"
	HeaderResponseTime = "X-Response-Time"
)
