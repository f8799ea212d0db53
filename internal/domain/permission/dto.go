package permission

import (
	"github.com/cmlabs-hris/attendance-backend-go/internal/domain/report"
)

type SummaryRequest struct {
	Period report.PeriodRequest
}

// Summary counts the caller's permissions per category. Every key is always set.
type Summary struct {
	Izin   int `json:"izin"`
	Cuti   int `json:"cuti"`
	Lembur int `json:"lembur"`
}

// NewSummary builds a Summary from per-type counts; missing types count as zero.
func NewSummary(counts map[Type]int) Summary {
	return Summary{
		Izin:   counts[TypeIzin],
		Cuti:   counts[TypeCuti],
		Lembur: counts[TypeLembur],
	}
}
