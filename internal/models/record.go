// Package models defines the content records exchanged with the Content API
// and the account profile kept in the console session.
package models

// Record is any content item managed by a list-edit screen.
type Record interface {
	GetID() int64
	// SearchFields returns the values matched by the screen filter.
	SearchFields() []string
	// Validate runs the local checks performed before a save.
	Validate() error
}

// Field is one multipart form value.
type Field struct {
	Name  string
	Value string
}

// FormRecord is a Record sent as multipart/form-data together with an
// optional image.
type FormRecord interface {
	Record
	FormFields() []Field
	// GetImageURL is the stored image, or "" when there is none.
	GetImageURL() string
}

// BodyRecord is a Record whose JSON request body leaves out the
// server-assigned id.
type BodyRecord interface {
	Record
	RequestBody() any
}

// User is the account profile returned by login.
type User struct {
	ID    int64  `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}
