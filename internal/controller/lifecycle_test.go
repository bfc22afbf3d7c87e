package controller

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"historycar/internal/gateway"
	"historycar/internal/models"
)

func vehicleLifecycle(items []models.Vehicle) *Lifecycle[models.Vehicle] {
	return NewLifecycle(LifecycleConfig[models.Vehicle]{
		Fetch: func(ctx context.Context) gateway.Envelope[[]models.Vehicle] {
			return gateway.Envelope[[]models.Vehicle]{Success: true, Data: items}
		},
		IDOf:      func(v models.Vehicle) string { return v.ID },
		Reconcile: ReconcileRemoveLocal,
	})
}

func someVehicles() []models.Vehicle {
	return []models.Vehicle{
		{ID: "v1", Modelo: "Corolla", Placa: "ABC1234"},
		{ID: "v2", Modelo: "Civic", Placa: "DEF5678"},
	}
}

func TestLifecycle_StartsIdle(t *testing.T) {
	l := vehicleLifecycle(nil)
	require.Equal(t, PhaseIdle, l.Snapshot().Phase)
}

func TestLifecycle_FetchInit_SetsLoading(t *testing.T) {
	l := vehicleLifecycle(nil)

	_, ok := l.FetchInit()
	require.True(t, ok)
	require.Equal(t, PhaseLoading, l.Snapshot().Phase)
}

func TestLifecycle_FetchInit_ClearsPriorError(t *testing.T) {
	l := vehicleLifecycle(nil)

	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: false, Message: "boom"})
	require.Equal(t, PhaseFailed, l.Snapshot().Phase)
	require.Equal(t, "boom", l.Snapshot().Error)

	l.FetchInit()
	snap := l.Snapshot()
	require.Equal(t, PhaseLoading, snap.Phase)
	require.Empty(t, snap.Error, "FETCH_INIT must clear the previous error")
}

func TestLifecycle_FetchSuccess(t *testing.T) {
	l := vehicleLifecycle(nil)

	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})

	snap := l.Snapshot()
	require.Equal(t, PhaseReady, snap.Phase)
	require.Len(t, snap.Items, 2)
	require.Empty(t, snap.Error)
}

func TestLifecycle_EmptyListIsReadyNotError(t *testing.T) {
	l := vehicleLifecycle(nil)

	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true})

	snap := l.Snapshot()
	require.Equal(t, PhaseReady, snap.Phase)
	require.NotNil(t, snap.Items)
	require.Empty(t, snap.Items)
	require.Empty(t, snap.Error)
}

func TestLifecycle_StaleGenerationDiscarded(t *testing.T) {
	l := vehicleLifecycle(nil)

	gen1, _ := l.FetchInit()
	gen2, _ := l.FetchInit()
	require.NotEqual(t, gen1, gen2)

	l.ResolveFetch(gen2, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})
	require.Equal(t, PhaseReady, l.Snapshot().Phase)

	// The slow earlier fetch loses even though it resolves later.
	l.ResolveFetch(gen1, gateway.Envelope[[]models.Vehicle]{Success: false, Message: "slow failure"})
	snap := l.Snapshot()
	require.Equal(t, PhaseReady, snap.Phase)
	require.Len(t, snap.Items, 2)
	require.Empty(t, snap.Error)
}

func TestLifecycle_ResolveAfterClose_IsNoOp(t *testing.T) {
	l := vehicleLifecycle(nil)

	gen, _ := l.FetchInit()
	l.Close()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})

	require.Empty(t, l.Snapshot().Items)

	_, ok := l.FetchInit()
	require.False(t, ok)
	require.False(t, l.DeleteInit("v1"))
	require.False(t, l.CreateInit())
}

func TestLifecycle_DeleteInit_SingleSlot(t *testing.T) {
	l := vehicleLifecycle(nil)

	require.True(t, l.DeleteInit("v1"))
	require.Equal(t, "v1", l.Snapshot().DeletingID)
	require.False(t, l.DeleteInit("v2"), "only one delete may be in flight")

	l.ResolveDelete("v1", gateway.Envelope[struct{}]{Success: true}, "removed")
	require.Empty(t, l.Snapshot().DeletingID)
	require.True(t, l.DeleteInit("v2"))
}

func TestLifecycle_ResolveDelete_RemoveLocal(t *testing.T) {
	l := vehicleLifecycle(nil)
	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})

	l.DeleteInit("v1")
	needRefetch := l.ResolveDelete("v1", gateway.Envelope[struct{}]{Success: true}, "removed")

	require.False(t, needRefetch)
	snap := l.Snapshot()
	require.Len(t, snap.Items, 1)
	require.Equal(t, "v2", snap.Items[0].ID)
}

func TestLifecycle_ResolveDelete_AbsentID_LeavesStateUnchanged(t *testing.T) {
	l := vehicleLifecycle(nil)
	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})

	l.DeleteInit("v9")
	l.ResolveDelete("v9", gateway.Envelope[struct{}]{Success: true}, "removed")

	snap := l.Snapshot()
	require.Len(t, snap.Items, 2)
	require.Empty(t, snap.DeletingID)
}

func TestLifecycle_ResolveDelete_Failure(t *testing.T) {
	l := vehicleLifecycle(nil)
	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})

	l.DeleteInit("v1")
	l.ResolveDelete("v1", gateway.Envelope[struct{}]{Success: false, Message: "acesso negado"}, "removed")

	snap := l.Snapshot()
	require.Len(t, snap.Items, 2, "failed delete must leave the list untouched")
	require.Empty(t, snap.DeletingID)

	notes := l.DrainNotifications()
	require.Len(t, notes, 1)
	require.Equal(t, NoticeError, notes[0].Kind)
	require.Equal(t, "acesso negado", notes[0].Text)
}

func TestLifecycle_ResolveDelete_RefetchStrategy(t *testing.T) {
	l := NewLifecycle(LifecycleConfig[models.Vehicle]{
		IDOf:      func(v models.Vehicle) string { return v.ID },
		Reconcile: ReconcileRefetch,
	})
	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true, Data: someVehicles()})

	l.DeleteInit("v1")
	needRefetch := l.ResolveDelete("v1", gateway.Envelope[struct{}]{Success: true}, "removed")

	require.True(t, needRefetch)
	require.Len(t, l.Snapshot().Items, 2, "refetch strategy does not touch local state")
}

func TestLifecycle_Create_SuccessClosesForm(t *testing.T) {
	l := vehicleLifecycle(nil)

	l.OpenForm()
	require.True(t, l.Snapshot().FormOpen)
	require.True(t, l.CreateInit())
	require.True(t, l.Snapshot().Creating)
	require.False(t, l.CreateInit(), "create flag is single-slot too")

	needRefetch := l.ResolveCreate(true, "criado")
	require.True(t, needRefetch)

	snap := l.Snapshot()
	require.False(t, snap.Creating)
	require.False(t, snap.FormOpen)
}

func TestLifecycle_Create_FailureKeepsFormOpen(t *testing.T) {
	l := vehicleLifecycle(nil)

	l.OpenForm()
	l.CreateInit()
	needRefetch := l.ResolveCreate(false, "placa duplicada")
	require.False(t, needRefetch)

	snap := l.Snapshot()
	require.False(t, snap.Creating)
	require.True(t, snap.FormOpen, "failed create keeps the form open")

	notes := l.DrainNotifications()
	require.Len(t, notes, 1)
	require.Equal(t, NoticeError, notes[0].Kind)
	require.Equal(t, "placa duplicada", notes[0].Text)
}

func TestLifecycle_Notifications_DrainOnce(t *testing.T) {
	l := vehicleLifecycle(nil)

	l.PushNotification(NoticeSuccess, "um")
	l.PushNotification(NoticeError, "dois")

	notes := l.DrainNotifications()
	require.Len(t, notes, 2)
	require.NotEmpty(t, notes[0].ID)
	require.NotEqual(t, notes[0].ID, notes[1].ID)
	require.Empty(t, l.DrainNotifications())
}

func TestLifecycle_OnChangeFires(t *testing.T) {
	var events []Phase
	l := NewLifecycle(LifecycleConfig[models.Vehicle]{
		IDOf: func(v models.Vehicle) string { return v.ID },
		OnChange: func(s Snapshot[models.Vehicle]) {
			events = append(events, s.Phase)
		},
	})

	gen, _ := l.FetchInit()
	l.ResolveFetch(gen, gateway.Envelope[[]models.Vehicle]{Success: true})

	require.Equal(t, []Phase{PhaseLoading, PhaseReady}, events)
}
