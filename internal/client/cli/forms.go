package cli

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/fundunity/cmsdash/internal/models"
)

var aboutUsForm = form[models.AboutUs]{
	columns: []string{"ID", "NAMA", "DESCRIPTION", "IMAGE"},
	row: func(a models.AboutUs) []string {
		return []string{idCell(a.ID), a.Nama, a.Description}
	},
	fill: func(p *prompter, a *models.AboutUs) (err error) {
		if a.Nama, err = p.text("Nama", a.Nama); err != nil {
			return err
		}
		a.Description, err = p.text("Description", a.Description)
		return err
	},
	withImage: true,
}

var sliderForm = form[models.SliderImage]{
	columns: []string{"ID", "TITLE", "DESCRIPTION", "IMAGE"},
	row: func(s models.SliderImage) []string {
		return []string{idCell(s.ID), s.Title, s.Description}
	},
	fill: func(p *prompter, s *models.SliderImage) (err error) {
		if s.Title, err = p.text("Title", s.Title); err != nil {
			return err
		}
		s.Description, err = p.text("Description", s.Description)
		return err
	},
	withImage: true,
}

var programForm = form[models.Program]{
	columns: []string{"ID", "TITLE", "DESCRIPTION", "IMAGE"},
	row: func(pr models.Program) []string {
		return []string{idCell(pr.ID), pr.Title, pr.Description}
	},
	fill: func(p *prompter, pr *models.Program) (err error) {
		if pr.Title, err = p.text("Title", pr.Title); err != nil {
			return err
		}
		pr.Description, err = p.text("Description", pr.Description)
		return err
	},
	withImage: true,
}

var partnerForm = form[models.Partner]{
	columns: []string{"ID", "NAME", "LOGO"},
	row: func(pa models.Partner) []string {
		return []string{idCell(pa.ID), pa.Name}
	},
	fill: func(p *prompter, pa *models.Partner) (err error) {
		name, err := p.text("Partner name", pa.Name)
		pa.Name = strings.TrimSpace(name)
		return err
	},
	withImage: true,
}

var transactionForm = form[models.Transaction]{
	columns: []string{"ID", "NAMA", "EMAIL", "AMOUNT", "STATUS", "NOTES"},
	row: func(t models.Transaction) []string {
		return []string{idCell(t.ID), t.Nama, t.Email, formatAmount(t.Amount), string(t.Status), t.Notes}
	},
	fill: fillTransaction,
}

func fillTransaction(p *prompter, t *models.Transaction) (err error) {
	if t.Nama, err = p.text("Nama", t.Nama); err != nil {
		return err
	}
	if t.Email, err = p.text("Email", t.Email); err != nil {
		return err
	}
	if t.Notes, err = p.text("Notes", t.Notes); err != nil {
		return err
	}

	for {
		raw, err := p.text("Amount", formatAmount(t.Amount))
		if err != nil {
			return err
		}
		amount, perr := strconv.ParseFloat(strings.ReplaceAll(raw, ",", ""), 64)
		if perr == nil && !math.IsNaN(amount) && !math.IsInf(amount, 0) {
			t.Amount = amount
			break
		}
		fmt.Fprintln(p.out, "Amount must be a number")
	}

	for {
		raw, err := p.text("Status (pending, berhasil, gagal)", string(t.Status))
		if err != nil {
			return err
		}
		st, perr := models.ParseTransactionStatus(raw)
		if perr == nil {
			t.Status = st
			return nil
		}
		fmt.Fprintln(p.out, perr)
	}
}

func formatAmount(v float64) string {
	if v == 0 {
		return ""
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
