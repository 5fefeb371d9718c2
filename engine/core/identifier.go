package core

// InvalidListenerID is returned when a registration is refused.
const InvalidListenerID ListenerID = 0

// identifiers hands out small integer ids, reusing released slots first.
// Id 0 is never handed out.
type identifiers struct {
	owners []bool
}

func (ids *identifiers) acquire() uint32 {
	if len(ids.owners) == 0 {
		ids.owners = make([]bool, 1, 16)
		ids.owners[0] = true
	}
	for i := 1; i < len(ids.owners); i++ {
		// Existing free spot. Take it.
		if !ids.owners[i] {
			ids.owners[i] = true
			return uint32(i)
		}
	}
	// No free slot, push a new one.
	ids.owners = append(ids.owners, true)
	return uint32(len(ids.owners) - 1)
}

func (ids *identifiers) release(id uint32) {
	if id == 0 || int(id) >= len(ids.owners) {
		LogWarn("identifier release: id '%d' out of range (max=%d). Nothing was done", id, len(ids.owners))
		return
	}
	ids.owners[id] = false
}
