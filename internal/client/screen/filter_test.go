package screen

import (
	"testing"

	"github.com/fundunity/cmsdash/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestFilter(t *testing.T) {
	txs := []models.Transaction{
		{ID: 1, Nama: "Budi", Email: "budi@mail.id", Notes: "Zakat", Status: models.StatusPending},
		{ID: 2, Nama: "Sari", Email: "sari@mail.id", Notes: "", Status: models.StatusSuccess},
		{ID: 3, Nama: "Andi", Email: "andi@kantor.id", Notes: "infaq", Status: models.StatusFailed},
	}

	ids := func(in []models.Transaction) []int64 {
		out := []int64{}
		for _, t := range in {
			out = append(out, t.ID)
		}
		return out
	}

	tests := []struct {
		query string
		want  []int64
	}{
		{query: "", want: []int64{1, 2, 3}},
		{query: "BUDI", want: []int64{1}},
		{query: "mail.id", want: []int64{1, 2}},
		{query: "zak", want: []int64{1}},
		{query: "berhasil", want: []int64{2}},
		{query: "gagal", want: []int64{3}},
		{query: "xyz", want: []int64{}},
		{query: " ", want: []int64{}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, ids(Filter(txs, tt.query)))
		})
	}
}

func TestFilter_PerTypeFields(t *testing.T) {
	about := []models.AboutUs{{ID: 1, Nama: "Visi", Description: "Membantu"}, {ID: 2, Nama: "Misi", ImageURL: "visi.png"}}
	assert.Len(t, Filter(about, "visi"), 1, "image url is not searchable")
	assert.Len(t, Filter(about, "bantu"), 1)

	partners := []models.Partner{{ID: 1, Name: "Bank Syariah"}, {ID: 2, Name: "Telko"}}
	assert.Equal(t, []models.Partner{{ID: 1, Name: "Bank Syariah"}}, Filter(partners, "syariah"))

	sliders := []models.SliderImage{{ID: 1, Title: "Ramadan", Description: "Banner"}}
	assert.Len(t, Filter(sliders, "banner"), 1)
}
