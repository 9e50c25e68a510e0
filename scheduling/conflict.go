package scheduling

// HasConflict decides whether a candidate time may join the existing
// non-cancelled reservations of one date. An exact duplicate of an existing
// slot is always a conflict, checked before the gap rule. Otherwise any
// existing time strictly closer than minGapMinutes is a conflict; a gap of
// exactly minGapMinutes is allowed. Callers scope existing to a single date,
// so different days never interact here.
func HasConflict(candidate TimeOfDay, existing []TimeOfDay, minGapMinutes int) bool {
	for _, e := range existing {
		if e == candidate {
			return true
		}
	}
	for _, e := range existing {
		if candidate.GapMinutes(e) < minGapMinutes {
			return true
		}
	}
	return false
}
