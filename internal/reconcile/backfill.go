package reconcile

// ApplyBackfill fills unmatched slots after raw matching. Locator
// backfill runs per slot; fix-log backfill only runs on days where no
// slot was locator-filled, so the two provenances never mix within one
// day. Slots holding a raw punch are never replaced.
func ApplyBackfill(slots *SlotSet, resolved ResolvedSchedule, exc *DayExceptions) {
	locatorFilled := false

	for _, sl := range allSlots {
		w := resolved.Windows[sl]
		if !w.Active || slots.get(sl).Filled() {
			continue
		}
		for _, lw := range exc.LocatorWindows {
			if lw.Contains(w.Nominal) {
				slots.set(sl, SlotValue{Time: MinutesToTime(w.Nominal), Provenance: ProvenanceLocator})
				locatorFilled = true
				break
			}
		}
	}

	if locatorFilled || exc.ApprovedFixLog == nil {
		return
	}

	for _, sl := range allSlots {
		if !resolved.Windows[sl].Active || slots.get(sl).Filled() {
			continue
		}
		t := ExtractTime(exc.ApprovedFixLog.override(sl))
		if _, ok := TimeToMinutes(t); !ok {
			continue
		}
		slots.set(sl, SlotValue{Time: t, Provenance: ProvenanceFixLog})
	}
}
