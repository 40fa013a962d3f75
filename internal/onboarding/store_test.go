package onboarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStoreUpdateIsLeftFoldMerge(t *testing.T) {
	store := NewFormStateStore()

	store.Update(Record{FieldOwnerName: "Ayesha", FieldCity: "Karachi"})
	store.Update(Record{FieldOwnerName: "Sana"})
	store.Update(Record{FieldArea: "Clifton"})

	record := store.Get()
	assert.Equal(t, "Sana", record.StringField(FieldOwnerName))
	assert.Equal(t, "Karachi", record.StringField(FieldCity))
	assert.Equal(t, "Clifton", record.StringField(FieldArea))
}

func TestStoreUpdateNeverRemovesKeys(t *testing.T) {
	store := NewFormStateStore()

	store.Update(Record{FieldGuestCapacity: "500", FieldVenueType: "Banquet"})
	store.Update(Record{FieldCuisineTypes: []string{"BBQ", "Desi"}})

	record := store.Get()
	assert.Equal(t, "500", record.StringField(FieldGuestCapacity))
	assert.Equal(t, []string{"BBQ", "Desi"}, record.ListField(FieldCuisineTypes))
}

func TestStoreSwitchingBusinessTypeKeepsFields(t *testing.T) {
	store := NewFormStateStore()

	store.SetBusinessType(BusinessTypeVenue)
	store.Update(Record{FieldGuestCapacity: "500"})
	store.SetBusinessType(BusinessTypeCatering)

	record := store.Get()
	assert.Equal(t, BusinessTypeCatering, store.BusinessType())
	assert.Equal(t, "500", record.StringField(FieldGuestCapacity))
}

func TestStoreGetReturnsSnapshot(t *testing.T) {
	store := NewFormStateStore()
	store.Update(Record{FieldOwnerName: "Ayesha"})

	snapshot := store.Get()
	snapshot[FieldOwnerName] = "mutated"

	assert.Equal(t, "Ayesha", store.Get().StringField(FieldOwnerName))
}

func TestStoreReset(t *testing.T) {
	store := NewFormStateStore()
	store.SetBusinessType(BusinessTypeDecor)
	store.Update(Record{FieldOwnerName: "Ayesha"})

	store.Reset()

	assert.Empty(t, store.Get())
	assert.Equal(t, BusinessType(""), store.BusinessType())
}

func TestDebouncerCoalescesWrites(t *testing.T) {
	store := NewFormStateStore()
	debouncer := NewDebouncer(store, 20*time.Millisecond)

	debouncer.Queue(Record{FieldOwnerName: "A"})
	debouncer.Queue(Record{FieldOwnerName: "Ay"})
	debouncer.Queue(Record{FieldOwnerName: "Ayesha"})

	// Nothing lands before the idle window elapses.
	assert.Empty(t, store.Get())

	assert.Eventually(t, func() bool {
		return store.Get().StringField(FieldOwnerName) == "Ayesha"
	}, time.Second, 5*time.Millisecond)
}

func TestDebouncerFlushBeforeTimer(t *testing.T) {
	store := NewFormStateStore()
	debouncer := NewDebouncer(store, time.Hour)

	debouncer.Queue(Record{FieldOwnerEmail: "a@x.com"})
	debouncer.Flush()

	assert.Equal(t, "a@x.com", store.Get().StringField(FieldOwnerEmail))
}

func TestDebouncerStopDiscardsPending(t *testing.T) {
	store := NewFormStateStore()
	debouncer := NewDebouncer(store, 10*time.Millisecond)

	debouncer.Queue(Record{FieldOwnerEmail: "stale@x.com"})
	debouncer.Stop()

	time.Sleep(50 * time.Millisecond)
	assert.Empty(t, store.Get())
}
