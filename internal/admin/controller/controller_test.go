package controller

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type widget struct {
	ID    string
	Title string
	Tag   string
}

type widgetDraft struct {
	Title string
	Tag   string
}

type fakeGateway struct {
	items     []widget
	listErr   error
	insertErr error
	updateErr error
	deleteErr error

	inserted []map[string]any
	updated  map[string]map[string]any
	deleted  []string
	// inflight позволяет тесту заглянуть в состояние контроллера,
	// пока запрос ещё "выполняется".
	inflight func()
}

func (g *fakeGateway) List(ctx context.Context) ([]widget, error) {
	if g.listErr != nil {
		return nil, g.listErr
	}
	return g.items, nil
}

func (g *fakeGateway) Insert(ctx context.Context, payload map[string]any) error {
	if g.inflight != nil {
		g.inflight()
	}
	if g.insertErr != nil {
		return g.insertErr
	}
	g.inserted = append(g.inserted, payload)
	g.items = append(g.items, widget{ID: "new", Title: payload["title"].(string)})
	return nil
}

func (g *fakeGateway) Update(ctx context.Context, id string, payload map[string]any) error {
	if g.updateErr != nil {
		return g.updateErr
	}
	if g.updated == nil {
		g.updated = map[string]map[string]any{}
	}
	g.updated[id] = payload
	return nil
}

func (g *fakeGateway) Delete(ctx context.Context, id string) error {
	if g.deleteErr != nil {
		return g.deleteErr
	}
	g.deleted = append(g.deleted, id)
	rest := g.items[:0]
	for _, it := range g.items {
		if it.ID != id {
			rest = append(rest, it)
		}
	}
	g.items = rest
	return nil
}

type note struct {
	Title    string
	Desc     string
	Severity Severity
}

type recordingNotifier struct{ notes []note }

func (r *recordingNotifier) Notify(title, desc string, sev Severity) {
	r.notes = append(r.notes, note{title, desc, sev})
}

func (r *recordingNotifier) errors() []note {
	var out []note
	for _, n := range r.notes {
		if n.Severity == SeverityError {
			out = append(out, n)
		}
	}
	return out
}

type scriptedConfirmer struct {
	answer bool
	asked  int
}

func (s *scriptedConfirmer) Confirm(string) bool {
	s.asked++
	return s.answer
}

func widgetDescriptor() Descriptor[widget, widgetDraft] {
	return Descriptor[widget, widgetDraft]{
		Table: "widgets",
		Title: "widget",
		ID:    func(e widget) string { return e.ID },
		SearchFields: func(e widget) []string {
			return []string{e.Title, e.Tag}
		},
		NewDraft: func() widgetDraft { return widgetDraft{} },
		Seed: func(e widget) widgetDraft {
			return widgetDraft{Title: e.Title, Tag: e.Tag}
		},
		Transform: func(d widgetDraft) (map[string]any, error) {
			if err := Require(map[string]string{"title": d.Title}, "title"); err != nil {
				return nil, err
			}
			return map[string]any{"title": d.Title, "tag": d.Tag}, nil
		},
	}
}

func newTestController(gw *fakeGateway, opts ...Option[widget, widgetDraft]) (*Controller[widget, widgetDraft], *recordingNotifier, *scriptedConfirmer) {
	n := &recordingNotifier{}
	cf := &scriptedConfirmer{answer: true}
	c := New(widgetDescriptor(), gw, n, cf, opts...)
	return c, n, cf
}

func TestRefresh_ReplacesCacheWholesale(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1", Title: "one"}}}
	c, _, _ := newTestController(gw)

	assert.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, c.Items(), 1)

	gw.items = []widget{{ID: "2", Title: "two"}, {ID: "3", Title: "three"}}
	assert.NoError(t, c.Refresh(context.Background()))
	assert.Len(t, c.Items(), 2)
	assert.Equal(t, "2", c.Items()[0].ID)
}

func TestRefresh_ErrorKeepsOldCache(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1", Title: "one"}}}
	c, n, _ := newTestController(gw)
	assert.NoError(t, c.Refresh(context.Background()))

	gw.listErr = errors.New("boom")
	assert.Error(t, c.Refresh(context.Background()))
	assert.Len(t, c.Items(), 1, "старый кеш должен пережить неудачный Refresh")
	assert.Len(t, n.errors(), 1)
}

func TestSubmit_CreateLifecycle(t *testing.T) {
	gw := &fakeGateway{}
	mutations := 0
	c, n, _ := newTestController(gw, WithOnMutate[widget, widgetDraft](func() { mutations++ }))

	assert.NoError(t, c.BeginCreate())
	assert.Equal(t, PhaseCreating, c.State().Phase)
	c.Draft().Title = "fresh"

	assert.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, PhaseClosed, c.State().Phase)
	assert.Empty(t, c.Draft().Title, "черновик сбрасывается после успеха")
	assert.Len(t, gw.inserted, 1)
	assert.Len(t, c.Items(), 1, "после мутации список перечитан")
	assert.Equal(t, 1, mutations)
	assert.Equal(t, SeveritySuccess, n.notes[len(n.notes)-1].Severity)
}

func TestSubmit_EditUsesUpdateWithID(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "7", Title: "old", Tag: "x"}}}
	c, _, _ := newTestController(gw)
	assert.NoError(t, c.Refresh(context.Background()))

	assert.NoError(t, c.BeginEdit("7"))
	assert.Equal(t, PhaseEditing, c.State().Phase)
	assert.Equal(t, "7", c.State().EditingID)
	assert.Equal(t, "old", c.Draft().Title, "черновик засеян из записи")

	c.Draft().Title = "renamed"
	assert.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, "renamed", gw.updated["7"]["title"])
	assert.Empty(t, gw.inserted)
	assert.Equal(t, PhaseClosed, c.State().Phase)
}

func TestSubmit_ServerErrorReopensFormWithDraft(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "7", Title: "old"}}}
	c, n, _ := newTestController(gw)
	assert.NoError(t, c.Refresh(context.Background()))
	assert.NoError(t, c.BeginEdit("7"))
	c.Draft().Title = "attempt"

	gw.updateErr = errors.New("db down")
	assert.Error(t, c.Submit(context.Background()))
	assert.Equal(t, PhaseEditing, c.State().Phase, "ошибка возвращает форму в исходную фазу")
	assert.Equal(t, "7", c.State().EditingID)
	assert.Equal(t, "attempt", c.Draft().Title, "черновик не потерян")
	assert.Len(t, n.errors(), 1)
}

func TestSubmit_ValidationErrorKeepsFormOpen(t *testing.T) {
	gw := &fakeGateway{}
	c, n, _ := newTestController(gw)
	assert.NoError(t, c.BeginCreate())

	err := c.Submit(context.Background())
	assert.Error(t, err)
	assert.Equal(t, PhaseCreating, c.State().Phase)
	assert.Empty(t, gw.inserted, "невалидный черновик не уходит на сервер")
	assert.Len(t, n.errors(), 1)
}

func TestSubmit_RejectsReentry(t *testing.T) {
	gw := &fakeGateway{}
	c, _, _ := newTestController(gw)
	assert.NoError(t, c.BeginCreate())
	c.Draft().Title = "once"

	var inner error
	var seen Phase
	gw.inflight = func() {
		seen = c.State().Phase
		inner = c.Submit(context.Background())
	}
	assert.NoError(t, c.Submit(context.Background()))
	assert.Equal(t, PhaseSubmitting, seen)
	assert.ErrorIs(t, inner, ErrBusy)
	assert.Len(t, gw.inserted, 1, "повторный Submit не породил второй запрос")
}

func TestSubmit_ClosedFormRejected(t *testing.T) {
	c, _, _ := newTestController(&fakeGateway{})
	assert.ErrorIs(t, c.Submit(context.Background()), ErrFormClosed)
}

func TestBeginEdit_UnknownID(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1"}}}
	c, _, _ := newTestController(gw)
	assert.NoError(t, c.Refresh(context.Background()))
	assert.Error(t, c.BeginEdit("nope"))
	assert.Equal(t, PhaseClosed, c.State().Phase)
}

func TestCancel_DiscardsDraft(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1", Title: "one"}}}
	c, _, _ := newTestController(gw)
	assert.NoError(t, c.Refresh(context.Background()))
	assert.NoError(t, c.BeginEdit("1"))
	c.Draft().Title = "changed"

	c.Cancel()
	assert.Equal(t, PhaseClosed, c.State().Phase)
	assert.Empty(t, c.Draft().Title)
}

func TestDelete_DeclinedConfirmationMakesNoCall(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1"}}}
	c, _, cf := newTestController(gw)
	cf.answer = false

	err := c.Delete(context.Background(), "1")
	assert.ErrorIs(t, err, ErrCancelled)
	assert.Equal(t, 1, cf.asked)
	assert.Empty(t, gw.deleted, "отказ от подтверждения не трогает сервер")
}

func TestDelete_ConfirmedRefreshesAndNotifies(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1"}, {ID: "2"}}}
	mutations := 0
	c, n, _ := newTestController(gw, WithOnMutate[widget, widgetDraft](func() { mutations++ }))
	assert.NoError(t, c.Refresh(context.Background()))

	assert.NoError(t, c.Delete(context.Background(), "1"))
	assert.Equal(t, []string{"1"}, gw.deleted)
	assert.Len(t, c.Items(), 1)
	assert.Equal(t, 1, mutations)
	assert.Equal(t, SeveritySuccess, n.notes[len(n.notes)-1].Severity)
}

func TestDelete_ServerError(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "1"}}, deleteErr: errors.New("denied")}
	c, n, _ := newTestController(gw)
	assert.Error(t, c.Delete(context.Background(), "1"))
	assert.Len(t, n.errors(), 1)
}

func TestApply_PatchesWithoutForm(t *testing.T) {
	gw := &fakeGateway{items: []widget{{ID: "m1"}}}
	mutations := 0
	c, _, _ := newTestController(gw, WithOnMutate[widget, widgetDraft](func() { mutations++ }))

	assert.NoError(t, c.Apply(context.Background(), "m1", map[string]any{"read": true}, "mark read"))
	assert.Equal(t, true, gw.updated["m1"]["read"])
	assert.Equal(t, PhaseClosed, c.State().Phase)
	assert.Equal(t, 1, mutations)
}
