package config

type (
	DriverConfig struct {
		MongoDB  MongoDB
		Redis    Redis
		RabbitMQ RabbitMQ
		Minio    Minio
		SMTP     SMTP
		Logger   Logger
	}

	MongoDB struct {
		Host     string
		Port     string
		DbName   string
		Username string
		Password string
	}

	Redis struct {
		Host     string
		Port     string
		Password string
	}

	RabbitMQ struct {
		Host     string
		Port     string
		Username string
		Password string
	}

	Minio struct {
		Host       string
		Port       string
		Username   string
		Password   string
		BucketName string
		UseSSL     bool
	}

	SMTP struct {
		Host        string
		Port        int
		Username    string
		Password    string
		EmailSender string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}
)

type (
	InternalConfig struct {
		App App
		JWT JWT
	}

	App struct {
		Env                             string
		Port                            string
		Timezone                        string
		EndpointPrefix                  string
		Version                         string
		MaxRequests                     int
		ShutdownTimeoutInSeconds        int
		AuthMaxRequestsPerMinute        int
		AuthBlockTimeInMinutes          int
		SessionExpiredTimeInHours       int
		ResetTokenExpiredTimeInMinutes  int
		MailerQueue                     string
		ResetPasswordURL                string
		ReportMaxUploadSizeInMB         int
		ReportPresignedURLExpiryInHours int
	}

	JWT struct {
		Secret        string
		ExpTimeInHour int
	}
)
