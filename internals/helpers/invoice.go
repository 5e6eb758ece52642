// file: internals/helpers/invoice.go
package helper

import (
	"fmt"
	"math/rand"
	"time"
)

// InvoiceGenerator menghasilkan nomor invoice format INV/{tahun}/{bulan 2 digit}/{3 digit acak}.
// Tidak ada pengecekan tabrakan di sini; unique index di tabel dues yang jadi penjaga utama,
// pemanggil tinggal regenerate kalau kena duplicate.
type InvoiceGenerator struct {
	Now  func() time.Time // nil → time.Now
	Intn func(int) int    // nil → math/rand global
}

func (g InvoiceGenerator) Generate() string {
	now := time.Now()
	if g.Now != nil {
		now = g.Now()
	}
	intn := rand.Intn
	if g.Intn != nil {
		intn = g.Intn
	}
	return fmt.Sprintf("INV/%d/%02d/%03d", now.Year(), int(now.Month()), intn(1000))
}
