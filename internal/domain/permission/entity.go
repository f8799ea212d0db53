package permission

import "time"

// Type is a permission category, distinct from authorization permissions.
type Type string

const (
	TypeIzin   Type = "izin"   // personal leave
	TypeCuti   Type = "cuti"   // annual leave
	TypeLembur Type = "lembur" // overtime
)

// Types lists every permission category.
var Types = []Type{TypeIzin, TypeCuti, TypeLembur}

func (t Type) IsValid() bool {
	for _, known := range Types {
		if t == known {
			return true
		}
	}
	return false
}

type Permission struct {
	ID         int64
	UserID     int64
	Type       Type
	Tanggal    time.Time
	Keterangan *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
