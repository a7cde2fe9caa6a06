package apierror

// Error type URIs following the urn:moodmeal:error:* pattern.
// These are used as the "type" field in RFC 9457 Problem Details.
const (
	// TypeValidation indicates request validation failed (400)
	TypeValidation = "urn:moodmeal:error:validation"

	// TypeNotFound indicates the requested resource was not found (404)
	TypeNotFound = "urn:moodmeal:error:not_found"

	// TypeConflict indicates a resource conflict (409)
	TypeConflict = "urn:moodmeal:error:conflict"

	// TypeRateLimit indicates too many requests (429)
	TypeRateLimit = "urn:moodmeal:error:rate_limit"

	// TypeUnauthorized indicates missing or invalid authentication (401)
	TypeUnauthorized = "urn:moodmeal:error:unauthorized"

	// TypeForbidden indicates insufficient permissions (403)
	TypeForbidden = "urn:moodmeal:error:forbidden"

	// TypeInternal indicates an unexpected server error (500)
	TypeInternal = "urn:moodmeal:error:internal"

	// TypeInvalidPeriod indicates an unrecognized summary period label (400)
	TypeInvalidPeriod = "urn:moodmeal:error:invalid_period"

	// TypeBadRequest indicates a malformed or invalid request (400)
	TypeBadRequest = "urn:moodmeal:error:bad_request"
)

// Titles for each error type - human-readable summaries
const (
	TitleValidation    = "Validation Error"
	TitleNotFound      = "Resource Not Found"
	TitleConflict      = "Resource Conflict"
	TitleRateLimit     = "Rate Limit Exceeded"
	TitleUnauthorized  = "Authentication Required"
	TitleForbidden     = "Permission Denied"
	TitleInternal      = "Internal Server Error"
	TitleInvalidPeriod = "Invalid Period"
	TitleBadRequest    = "Bad Request"
)
