package ftp

type Config struct {
	AccessKey string `env:"FTP_ACCESS_KEY"`
	SecretKey string `env:"FTP_SECRET_KEY"`
}

const anonymousUser = "anonymous"
