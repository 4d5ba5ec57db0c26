package http

// Config carries the headers attached to every download request, typically
// the headers of the access URL returned by the DRS instance.
type Config struct {
	Headers map[string]string
}
