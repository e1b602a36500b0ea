package constant

// Context key types to avoid collisions
type contextKey string

const (
	ContextKeyRequestID contextKey = "request_id"
)

const (
	RequestParamID      = "id"
	RequestParamConfirm = "confirm"
)

const (
	DateFormat = "2006-01-02"
)

const (
	OtelServiceScopeName  = "service"
	OtelStoreScopeName    = "store"
	OtelHandlerScopeName  = "handler"
	OtelUpstreamScopeName = "upstream"

	OtelPathAttributeKey   = "upstream.path"
	OtelMethodAttributeKey = "upstream.method"
	OtelShapeAttributeKey  = "upstream.shape"
)

const (
	RequestHeaderUserAgent   = "User-Agent"
	RequestHeaderContentType = "Content-Type"
	RequestHeaderRequestID   = "X-Request-ID"
)

const (
	ContentTypeJSON = "application/json"
)

const (
	ResponseErrorPrepareShutdown = "SERVER PREPARING TO SHUT DOWN"
	ResponseErrorUnhealthy       = "SERVER UNHEALTHY"
)

const (
	ServerEnvDevelopment = "development"
	ServerEnvProduction  = "production"
)

// Sentinel display values substituted when a booking reference cannot be
// resolved against the current collections.
const (
	UnknownGuestName  = "Unknown Guest"
	UnknownRoomNumber = "Unknown Room"
	UnknownRoomType   = "N/A"
)

const (
	Empty = ""
)
