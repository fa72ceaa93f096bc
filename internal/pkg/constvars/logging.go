package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingTemplateIDKey = "template_id"
	LoggingSessionIDKey  = "session_id"
	LoggingResponseIDKey = "response_id"
	LoggingQuestionKey   = "question_key"

	LoggingMissingQuestionsKey = "missing_questions"
)
