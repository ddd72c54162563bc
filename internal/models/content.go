package models

import (
	"github.com/fundunity/cmsdash/internal/validation"
)

type AboutUs struct {
	ID          int64  `json:"id"`
	Nama        string `json:"nama"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (a AboutUs) GetID() int64           { return a.ID }
func (a AboutUs) GetImageURL() string    { return a.ImageURL }
func (a AboutUs) SearchFields() []string { return []string{a.Nama, a.Description} }

// Validate accepts any About-Us block; the API stores partial entries.
func (a AboutUs) Validate() error { return nil }

func (a AboutUs) FormFields() []Field {
	return []Field{{"nama", a.Nama}, {"description", a.Description}}
}

type SliderImage struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (s SliderImage) GetID() int64           { return s.ID }
func (s SliderImage) GetImageURL() string    { return s.ImageURL }
func (s SliderImage) SearchFields() []string { return []string{s.Title, s.Description} }

func (s SliderImage) Validate() error { return nil }

func (s SliderImage) FormFields() []Field {
	return []Field{{"title", s.Title}, {"description", s.Description}}
}

type Program struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

func (p Program) GetID() int64           { return p.ID }
func (p Program) GetImageURL() string    { return p.ImageURL }
func (p Program) SearchFields() []string { return []string{p.Title, p.Description} }

func (p Program) Validate() error {
	return validation.New().
		Required("title", p.Title).
		Required("description", p.Description).
		Err()
}

func (p Program) FormFields() []Field {
	return []Field{{"title", p.Title}, {"description", p.Description}}
}

type Partner struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"imageUrl,omitempty"`
}

func (p Partner) GetID() int64           { return p.ID }
func (p Partner) GetImageURL() string    { return p.ImageURL }
func (p Partner) SearchFields() []string { return []string{p.Name} }

func (p Partner) Validate() error {
	return validation.New().Required("name", p.Name).Err()
}

func (p Partner) FormFields() []Field {
	return []Field{{"name", p.Name}}
}
