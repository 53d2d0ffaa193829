package entity

// SyncOutcome records which ids of a batch were synced and which failed.
// Both lists keep insertion order, hold unique ids and never share an id.
type SyncOutcome struct {
	SyncedIDs []int64 `json:"synced_ids"`
	FailedIDs []int64 `json:"failed_ids"`

	seen map[int64]struct{}
}

// NewSyncOutcome returns an empty outcome.
func NewSyncOutcome() *SyncOutcome {
	return &SyncOutcome{
		SyncedIDs: []int64{},
		FailedIDs: []int64{},
		seen:      make(map[int64]struct{}),
	}
}

// MarkSynced appends id to SyncedIDs unless it is already accounted for.
func (o *SyncOutcome) MarkSynced(id int64) {
	if o.track(id) {
		o.SyncedIDs = append(o.SyncedIDs, id)
	}
}

// MarkFailed appends id to FailedIDs unless it is already accounted for.
func (o *SyncOutcome) MarkFailed(id int64) {
	if o.track(id) {
		o.FailedIDs = append(o.FailedIDs, id)
	}
}

func (o *SyncOutcome) track(id int64) bool {
	if o.seen == nil {
		o.seen = make(map[int64]struct{}, len(o.SyncedIDs)+len(o.FailedIDs))
		for _, existing := range o.SyncedIDs {
			o.seen[existing] = struct{}{}
		}
		for _, existing := range o.FailedIDs {
			o.seen[existing] = struct{}{}
		}
	}

	if _, ok := o.seen[id]; ok {
		return false
	}
	o.seen[id] = struct{}{}

	return true
}

// HasFailures reports whether any id failed.
func (o *SyncOutcome) HasFailures() bool {
	return len(o.FailedIDs) > 0
}

// SuccessCount is the number of synced ids.
func (o *SyncOutcome) SuccessCount() int {
	return len(o.SyncedIDs)
}

// FailureCount is the number of failed ids.
func (o *SyncOutcome) FailureCount() int {
	return len(o.FailedIDs)
}
