package clutch

// Action is one play-by-play entry as far as clutch classification cares.
type Action struct {
	Number      int
	Period      int
	Clock       string
	PersonID    int
	ActionType  string
	Description string
}

// Context holds the clutch event ids of a game and the players who acted in them.
type Context struct {
	EventIDs map[int]struct{}
	// Participants lists distinct actors in first-seen order.
	Participants []int
}

// Empty returns a context with no clutch data.
func Empty() Context {
	return Context{EventIDs: map[int]struct{}{}}
}

// Contains reports whether the event id occurred in clutch time.
func (c Context) Contains(eventID int) bool {
	_, ok := c.EventIDs[eventID]
	return ok
}

// Size returns the number of clutch event ids.
func (c Context) Size() int {
	return len(c.EventIDs)
}

// Capped returns at most n participants. Players past the cap are those
// who first appeared latest in the log.
func (c Context) Capped(n int) []int {
	if n < 0 || len(c.Participants) <= n {
		return c.Participants
	}
	return c.Participants[:n]
}

// Build classifies every action and collects clutch ids and participants.
// The excluded player (already covered by the full-game fetch) and
// person-less actions (id 0) are left out of the participant list.
func Build(actions []Action, excludePlayerID int) Context {
	ctx := Empty()
	seen := make(map[int]struct{})
	for _, a := range actions {
		if !IsClutchClock(a.Period, a.Clock) {
			continue
		}
		ctx.EventIDs[a.Number] = struct{}{}

		if a.PersonID == 0 || a.PersonID == excludePlayerID {
			continue
		}
		if _, ok := seen[a.PersonID]; ok {
			continue
		}
		seen[a.PersonID] = struct{}{}
		ctx.Participants = append(ctx.Participants, a.PersonID)
	}
	return ctx
}
