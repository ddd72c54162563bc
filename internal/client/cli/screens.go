package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/fundunity/cmsdash/internal/client/screen"
	"github.com/fundunity/cmsdash/internal/models"
)

// contentScreen erases the record type of a screen so the App can keep all
// of them in one map.
type contentScreen interface {
	Name() string
	Mount(ctx context.Context) error
	Search(query string)
	Query() string
	State() screen.State
	Render(w io.Writer)
	Add(ctx context.Context, p *prompter) error
	Edit(ctx context.Context, id int64, p *prompter) error
	Save(ctx context.Context) error
	Cancel()
	Delete(ctx context.Context, id int64, confirm bool) error
}

// prompter bundles the input and output of interactive forms.
type prompter struct {
	reader *bufio.Reader
	out    io.Writer
}

func (p *prompter) text(label, current string) (string, error) {
	return GetField(p.reader, label, current, p.out)
}

// form describes how one record type is shown and edited. Records with an
// image get it as the last column, after the cells returned by row.
type form[T models.Record] struct {
	columns []string
	row     func(T) []string
	// fill prompts for every editable field of rec.
	fill func(p *prompter, rec *T) error
	// withImage enables the image prompt.
	withImage bool
}

type typedScreen[T models.Record] struct {
	*screen.Screen[T]
	form form[T]
}

func newTypedScreen[T models.Record](s *screen.Screen[T], f form[T]) *typedScreen[T] {
	return &typedScreen[T]{Screen: s, form: f}
}

const maxCell = 40

func cell(s string) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= maxCell {
		return s
	}
	r := []rune(s)
	return string(r[:maxCell-3]) + "..."
}

// Render prints the visible records as a table.
func (t *typedScreen[T]) Render(w io.Writer) {
	items := t.Visible()
	if len(items) == 0 {
		fmt.Fprintln(w, "No records found.")
		return
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.form.columns, "\t"))
	for _, it := range items {
		cols := t.form.row(it)
		if fr, ok := any(it).(models.FormRecord); ok {
			cols = append(cols, imageCell(fr.GetImageURL()))
		}
		for i := range cols {
			cols[i] = cell(cols[i])
		}
		fmt.Fprintln(tw, strings.Join(cols, "\t"))
	}
	_ = tw.Flush()
	fmt.Fprintf(w, "%d record(s)\n", len(items))
}

func (t *typedScreen[T]) Add(ctx context.Context, p *prompter) error {
	t.OpenAdd()
	if err := t.fillDraft(p); err != nil {
		return err
	}
	return t.Save(ctx)
}

func (t *typedScreen[T]) Edit(ctx context.Context, id int64, p *prompter) error {
	if err := t.OpenEdit(id); err != nil {
		return err
	}
	if err := t.fillDraft(p); err != nil {
		return err
	}
	return t.Save(ctx)
}

func (t *typedScreen[T]) fillDraft(p *prompter) error {
	d, ok := t.Draft()
	if !ok {
		return errors.New("no open record")
	}

	rec := d.Record
	if err := t.form.fill(p, &rec); err != nil {
		return err
	}
	if err := t.Screen.Edit(func(r *T) { *r = rec }); err != nil {
		return err
	}

	if !t.form.withImage {
		return nil
	}
	img, err := promptImage(p)
	if err != nil {
		return err
	}
	return t.StageImage(img)
}

// promptImage asks for an image path until a valid one or an empty answer
// is given. Empty means no new image.
func promptImage(p *prompter) (*models.StagedFile, error) {
	for {
		path, err := GetSimpleText(p.reader, "Image file path (empty to keep current)", p.out)
		if err != nil {
			return nil, err
		}
		if path == "" {
			return nil, nil
		}
		f, err := models.StageFile(path)
		if err == nil {
			return f, nil
		}
		fmt.Fprintln(p.out, "Image rejected:", err)
	}
}

func idCell(id int64) string { return strconv.FormatInt(id, 10) }

func imageCell(url string) string {
	if url == "" {
		return "-"
	}
	return url
}
