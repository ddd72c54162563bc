package content

import (
	"github.com/fundunity/cmsdash/internal/models"
)

// Scanner is satisfied by *sql.Row and *sql.Rows.
type Scanner interface {
	Scan(dest ...any) error
}

// Schema maps a record type onto a table. Columns excludes the id column,
// and Values must return one value per column in the same order.
type Schema[T models.Record] struct {
	Table   string
	Columns []string
	Values  func(rec T) []any
	Scan    func(s Scanner) (T, error)
	WithID  func(rec T, id int64) T
}

var AboutUsSchema = Schema[models.AboutUs]{
	Table:   "about_us",
	Columns: []string{"nama", "description", "image_url"},
	Values: func(r models.AboutUs) []any {
		return []any{r.Nama, r.Description, r.ImageURL}
	},
	Scan: func(s Scanner) (models.AboutUs, error) {
		var r models.AboutUs
		err := s.Scan(&r.ID, &r.Nama, &r.Description, &r.ImageURL)
		return r, err
	},
	WithID: func(r models.AboutUs, id int64) models.AboutUs { r.ID = id; return r },
}

var SliderSchema = Schema[models.SliderImage]{
	Table:   "image_sliders",
	Columns: []string{"title", "description", "image_url"},
	Values: func(r models.SliderImage) []any {
		return []any{r.Title, r.Description, r.ImageURL}
	},
	Scan: func(s Scanner) (models.SliderImage, error) {
		var r models.SliderImage
		err := s.Scan(&r.ID, &r.Title, &r.Description, &r.ImageURL)
		return r, err
	},
	WithID: func(r models.SliderImage, id int64) models.SliderImage { r.ID = id; return r },
}

var ProgramSchema = Schema[models.Program]{
	Table:   "programs",
	Columns: []string{"title", "description", "image_url"},
	Values: func(r models.Program) []any {
		return []any{r.Title, r.Description, r.ImageURL}
	},
	Scan: func(s Scanner) (models.Program, error) {
		var r models.Program
		err := s.Scan(&r.ID, &r.Title, &r.Description, &r.ImageURL)
		return r, err
	},
	WithID: func(r models.Program, id int64) models.Program { r.ID = id; return r },
}

var PartnerSchema = Schema[models.Partner]{
	Table:   "partners",
	Columns: []string{"name", "image_url"},
	Values: func(r models.Partner) []any {
		return []any{r.Name, r.ImageURL}
	},
	Scan: func(s Scanner) (models.Partner, error) {
		var r models.Partner
		err := s.Scan(&r.ID, &r.Name, &r.ImageURL)
		return r, err
	},
	WithID: func(r models.Partner, id int64) models.Partner { r.ID = id; return r },
}

var TransactionSchema = Schema[models.Transaction]{
	Table:   "transactions",
	Columns: []string{"nama", "email", "notes", "amount", "status"},
	Values: func(r models.Transaction) []any {
		return []any{r.Nama, r.Email, r.Notes, r.Amount, string(r.Status)}
	},
	Scan: func(s Scanner) (models.Transaction, error) {
		var (
			r      models.Transaction
			status string
		)
		err := s.Scan(&r.ID, &r.Nama, &r.Email, &r.Notes, &r.Amount, &status)
		r.Status = models.TransactionStatus(status)
		return r, err
	},
	WithID: func(r models.Transaction, id int64) models.Transaction { r.ID = id; return r },
}
