package member

// transitions lists the allowed lifecycle edges. dropped_out has no outgoing
// edge: coming back requires a fresh invite.
var transitions = map[Status][]Status{
	StatusActive:   {StatusInactive, StatusDroppedOut},
	StatusInactive: {StatusActive, StatusDroppedOut},
}

// CanTransition reports whether a member may move from one status to another.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}
