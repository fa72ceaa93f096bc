package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"numeric":  "must be a number",
	"oneof":    "must be one of [%s]",
	"gt":       "must be greater than %s",
	"gte":      "must be greater than or equal to %s",
	"lt":       "must be less than %s",
	"lte":      "must be less than or equal to %s",
	"url":      "must be a valid URL",
	"uuid":     "must be a valid UUID",
	"base64":   "must be a valid base64 string",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gt":    true,
	"gte":   true,
	"lt":    true,
	"lte":   true,
}

const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientTemplateNotFound              = "template not found"
	ErrClientTemplateNotPublished          = "this template is not published yet"
	ErrClientTemplateImmutable             = "this template already has responses and can no longer be changed"
	ErrClientSessionNotFound               = "session not found or expired"
	ErrClientMissingMandatoryAnswers       = "some mandatory questions are not answered: %s"
	ErrClientTooManySubmissions            = "too many submissions, please try again later"
	ErrClientInvalidImageFormat            = "the image you uploaded does not meet the specified standards"
)

const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevValidationFailed         = "request validation failed"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevBuildRequest             = "encountering error while building request DTO"
	ErrDevURLParamIDValidation     = "failed to validate URL param %s"
	ErrDevTemplateNotExists        = "template not exists in our system"
	ErrDevTemplateNotPublished     = "template status is not published"
	ErrDevTemplateHasResponses     = "template is referenced by stored responses"
	ErrDevTemplateRuleInvalid      = "template contains malformed logic rules or questions"
	ErrDevSessionNotExists         = "survey session not exists or already expired"
	ErrDevMissingMandatoryAnswers  = "submission rejected, mandatory questions unanswered"
	ErrDevSubmissionQuotaExceeded  = "submission quota exceeded for the current window"
	ErrDevImageValidationFailed    = "image validation failed"
	ErrDevCannotDecodeBase64Image  = "cannot decode base64 image payload"
	ErrDevDBFailedToFindDocument   = "failed to find document on mongoDB"
	ErrDevDBFailedToInsertDocument = "failed to insert document on mongoDB"
	ErrDevDBFailedToUpdateDocument = "failed to update document on mongoDB"
	ErrDevDBFailedToDeleteDocument = "failed to delete document on mongoDB"
	ErrDevDBFailedToIterateDocs    = "failed to iterate documents fetched from mongoDB"
	ErrDevDBStringNotObjectID      = "given string cannot be converted to mongoDB ObjectID"
	ErrDevRedisGetData             = "failed to get data from redis"
	ErrDevRedisSetData             = "failed to set data to redis"
	ErrDevRedisDeleteData          = "failed to delete data from redis"
	ErrDevRedisIncrementValue      = "failed to increment value on redis"
	ErrDevMinioFailedToPutObject   = "failed to create object on minio bucket %s"
	ErrDevRabbitMQPublishMessage   = "failed to publish message to rabbitMQ queue %s"
)
