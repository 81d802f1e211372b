package services

var _events struct {
	rt *RealtimeHub
}

// InitEventDeps wires the realtime hub into the package so the intake
// service can emit updates without holding a reference itself.
func InitEventDeps(rt *RealtimeHub) {
	_events.rt = rt
}

// EmitIntakeUpdate pushes the day's new total to the user's live clients.
// Safe to call before InitEventDeps (tests, startup).
func EmitIntakeUpdate(userID uint, date string, totalMl float64, goalMl int) {
	if _events.rt == nil {
		return
	}
	_events.rt.BroadcastIntakeUpdate(userID, IntakeUpdate{
		Kind:          "intake.updated",
		Date:          date,
		TotalIntakeMl: totalMl,
		GoalMl:        goalMl,
	})
}
