package domain

// virtualIDStride spaces derived occurrence IDs far above real store IDs so
// they cannot collide within a single response. Derived IDs are display-only
// and must never be written back to the store.
const virtualIDStride = 1_000_000

// VirtualOccurrence is one concrete calendar instant implied by a template.
// Index 0 is the template's own occurrence; higher indexes are derived and
// never persisted.
type VirtualOccurrence struct {
	ActivityTemplate

	IsVirtual          bool
	OriginalActivityID int64
	VirtualIndex       int
}

// TemplateOccurrence wraps the template itself as occurrence zero.
func TemplateOccurrence(t ActivityTemplate) VirtualOccurrence {
	return VirtualOccurrence{
		ActivityTemplate: t,
		IsVirtual:        false,
		VirtualIndex:     0,
	}
}

// SourceTemplateID returns the persisted template id behind an occurrence,
// virtual or not.
func (o VirtualOccurrence) SourceTemplateID() int64 {
	if o.IsVirtual {
		return o.OriginalActivityID
	}
	return o.ID
}

// DerivedOccurrence builds the index-th generated occurrence of a template,
// with its date/time fields replaced by the occurrence's own instant.
func DerivedOccurrence(t ActivityTemplate, index int, localDateTime string) VirtualOccurrence {
	occ := VirtualOccurrence{
		ActivityTemplate:   t,
		IsVirtual:          true,
		OriginalActivityID: t.ID,
		VirtualIndex:       index,
	}
	occ.ActivityTemplate.ID = t.ID + int64(index)*virtualIDStride
	occ.ActivityTemplate.Date = localDateTime
	occ.ActivityTemplate.Time = localDateTime
	return occ
}
