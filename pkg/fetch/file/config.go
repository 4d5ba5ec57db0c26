package file

type Config struct {
	// BasePath, when set, confines file:// access URLs to one directory.
	BasePath string `env:"FILE_BASE_PATH"`
}
