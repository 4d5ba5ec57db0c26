package s3

type Config struct {
	Endpoint           string `env:"S3_ENDPOINT"`
	Region             string `env:"S3_REGION"`
	CredentialFilePath string `env:"S3_CREDENTIAL_FILE"`
	PartSize           int64  `env:"S3_PART_SIZE"`
	MaxBandwidth       int64  `env:"S3_MAX_BANDWIDTH"`
	MaxRetryCount      int64  `env:"S3_MAX_RETRY_COUNT"`
}

type SecretConfig struct {
	AccessKey string `json:"aws_access_key_id" mapstructure:"aws_access_key_id"`
	SecretKey string `json:"aws_secret_access_key" mapstructure:"aws_secret_access_key"`
	CreToken  string `json:"aws_session_token" mapstructure:"aws_session_token"`
}
