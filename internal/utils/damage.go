package utils

import (
	"vrms-backend/internal/domain"
)

// DamageCosts sets the per-damage repair prices used when a return
// inspection finds damage that was not on the pickup baseline.
type DamageCosts struct {
	ScratchCents int32
	DentCents    int32
	RustCents    int32
}

// DamageDiff lists which damage kinds are new relative to the baseline.
type DamageDiff struct {
	NewScratches bool
	NewDents     bool
	NewRust      bool
}

// Any reports whether the return inspection found any new damage.
func (d DamageDiff) Any() bool {
	return d.NewScratches || d.NewDents || d.NewRust
}

// DiffDamage compares the return inspection against the pickup baseline.
// Damage already present at pickup is never billed again, so only flags
// that flipped false -> true count.
func DiffDamage(pre, post domain.DamageReport) DamageDiff {
	return DamageDiff{
		NewScratches: post.HasScratches && !pre.HasScratches,
		NewDents:     post.HasDents && !pre.HasDents,
		NewRust:      post.HasRust && !pre.HasRust,
	}
}

// DamageCost prices a diff with the configured per-damage costs.
func DamageCost(diff DamageDiff, costs DamageCosts) int32 {
	var total int32
	if diff.NewScratches {
		total += costs.ScratchCents
	}
	if diff.NewDents {
		total += costs.DentCents
	}
	if diff.NewRust {
		total += costs.RustCents
	}
	return total
}
