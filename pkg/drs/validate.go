package drs

import (
	"errors"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Validate checks a DrsObject against the API schema. Responses are checked
// even when the HTTP layer reported success.
func (o DrsObject) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.ID, validation.Required),
		validation.Field(&o.SelfURI, validation.Required),
		validation.Field(&o.CreatedTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&o.UpdatedTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&o.Version, validation.Required),
		validation.Field(&o.Checksums, validation.Required),
		validation.Field(&o.AccessMethods, validation.Required),
	)
}

// Validate checks an outgoing registration payload before any network I/O.
func (o PostDrsObject) Validate() error {
	return validation.ValidateStruct(&o,
		validation.Field(&o.CreatedTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&o.UpdatedTime, validation.Required, validation.Date(time.RFC3339)),
		validation.Field(&o.Version, validation.Required),
		validation.Field(&o.Checksums, validation.Required),
		validation.Field(&o.AccessMethods, validation.Required),
	)
}

// Validate ...
func (c Checksum) Validate() error {
	return validation.ValidateStruct(&c,
		validation.Field(&c.Checksum, validation.Required),
		validation.Field(&c.Type, validation.Required),
	)
}

// Validate requires at least one of access_url and access_id, per the DRS
// schema.
func (m AccessMethod) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Type, validation.Required),
		validation.Field(&m.AccessID, validation.By(func(interface{}) error {
			if m.AccessURL.URL == "" && m.AccessID == "" {
				return errors.New("either access_url or access_id must be set")
			}
			return nil
		})),
	)
}

// Validate ...
func (u AccessURL) Validate() error {
	return validation.ValidateStruct(&u,
		validation.Field(&u.URL, validation.Required),
	)
}

// Validate ...
func (e Error) Validate() error {
	return validation.ValidateStruct(&e,
		validation.Field(&e.Msg, validation.Required),
		validation.Field(&e.StatusCode, validation.Required),
	)
}
