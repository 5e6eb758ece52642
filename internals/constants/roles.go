package constants

import "fmt"

// Role slug yang dipakai di token & middleware
const (
	RoleAnggota = "anggota" // anggota biasa: lihat tagihan sendiri + ajukan klaim bayar
	RoleBPH     = "bph"     // pengurus harian: approve/reject/settle tagihan
)

// Template pesan error role
const (
	ErrOnlyBPHCanAccess     = "❌ Hanya BPH yang boleh mengakses fitur %s."
	ErrOnlyMembersCanAccess = "❌ Hanya anggota terdaftar yang boleh mengakses fitur %s."
)

func RoleErrorBPH(feature string) string {
	return fmt.Sprintf(ErrOnlyBPHCanAccess, feature)
}

func RoleErrorMember(feature string) string {
	return fmt.Sprintf(ErrOnlyMembersCanAccess, feature)
}

// ==========================
// ✅ Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleAnggota,
		RoleBPH,
	}

	// Role yang boleh memicu transisi status tagihan (approve/reject/mark paid/edit)
	ElevatedRoles = []string{
		RoleBPH,
	}
)

// IsElevated: true kalau role boleh mengubah status tagihan.
func IsElevated(role string) bool {
	for _, r := range ElevatedRoles {
		if role == r {
			return true
		}
	}
	return false
}
