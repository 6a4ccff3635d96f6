package apierror

// Error type URIs following the urn:skanos:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:skanos:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:skanos:error:not_found"

	// TypeInvalidPayload indicates an event payload failed its schema (422)
	TypeInvalidPayload = "urn:skanos:error:invalid_payload"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:skanos:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:skanos:error:unauthorized"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:skanos:error:internal"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:skanos:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation     = "Validation Error"
	TitleNotFound       = "Resource Not Found"
	TitleInvalidPayload = "Invalid Event Payload"
	TitleRateLimit      = "Rate Limit Exceeded"
	TitleUnauthorized   = "Authentication Required"
	TitleInternal       = "Internal Server Error"
	TitleBadRequest     = "Bad Request"
)
