package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		Logger   Logger
		RabbitMQ RabbitMQ
		Minio    Minio
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}
	Redis struct {
		Host     string
		Port     string
		Password string
	}
	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
	RabbitMQ struct {
		Port     string
		Host     string
		Username string
		Password string
	}
	Minio struct {
		Port     string
		Host     string
		Username string
		Password string
		UseSSL   bool
	}
)

type (
	InternalConfig struct {
		App      App
		Minio    AppMinio
		RabbitMQ AppRabbitMQ
		Session  AppSession
	}

	App struct {
		Env                        string
		Port                       string
		Version                    string
		Address                    string
		Timezone                   string
		EndpointPrefix             string
		MaxRequests                int
		ShutdownTimeout            int
		MaxTimeRequestsPerSeconds  int
		RequestBodyLimitInMegabyte int
		SubmissionRateLimit        int
		SubmissionRateWindowInSecs int
	}

	AppMinio struct {
		BucketName                  string
		AttachmentMaxUploadSizeInMB int64
	}

	AppRabbitMQ struct {
		SubmissionExchange string
		SubmissionQueue    string
	}

	AppSession struct {
		ExpiredTimeInHours int
	}
)
