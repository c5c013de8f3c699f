package router_test

import (
	"fmt"
	"testing"

	"github.com/BrandonKowalski/waypoint/pkg/waypoint/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder collects completion calls in order.
type recorder struct {
	calls []string
}

func (rec *recorder) completion(name string) router.CompletionFunc {
	return func(result any) {
		rec.calls = append(rec.calls, fmt.Sprintf("%s:%v", name, result))
	}
}

func TestPushGrowsStackInOrder(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	tags := []string{"a", "b", "c", "b"}

	for i, tag := range tags {
		r.Push(router.Push{Tag: tag}, nil)
		require.Len(t, r.Stack(), i+1)
	}

	var got []string
	for _, p := range r.Stack() {
		got = append(got, p.Tag)
	}
	assert.Equal(t, tags, got)
}

func TestPopFiresCompletionOnce(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}

	r.Push(router.Push{Tag: "first"}, nil)
	r.Push(router.Push{Tag: "formView"}, rec.completion("form"))
	r.Pop("done")

	assert.Equal(t, []string{"form:done"}, rec.calls)
	require.Len(t, r.Stack(), 1)
	assert.Equal(t, "first", r.Stack()[0].Tag)

	r.Pop(nil)
	r.Pop(nil)
	assert.Equal(t, []string{"form:done"}, rec.calls)
	assert.Empty(t, r.Stack())
}

func TestPopToRootFiresTopToBottom(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}
	for i := range 4 {
		r.Push(router.Push{Tag: fmt.Sprintf("s%d", i)}, rec.completion(fmt.Sprintf("s%d", i)))
	}

	r.PopToRoot("x")

	assert.Equal(t, []string{"s3:x", "s2:x", "s1:x", "s0:x"}, rec.calls)
	assert.Empty(t, r.Stack())
}

func TestPopUntil(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		target    router.Push
		wantStack []string
		wantCalls []string
	}{
		{
			name:      "stops at matching tag",
			target:    router.Push{Tag: "form"},
			wantStack: []string{"country", "form"},
			wantCalls: []string{"review:r", "upload:r"},
		},
		{
			name:      "matches tag regardless of payload",
			target:    router.Push{Tag: "form", Payload: "other"},
			wantStack: []string{"country", "form"},
			wantCalls: []string{"review:r", "upload:r"},
		},
		{
			name:      "top already matches",
			target:    router.Push{Tag: "review"},
			wantStack: []string{"country", "form", "upload", "review"},
		},
		{
			name:      "missing target empties the stack",
			target:    router.Push{Tag: "missing"},
			wantStack: nil,
			wantCalls: []string{"review:r", "upload:r", "form:r", "country:r"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r := router.NewTree(router.Config{}).Root()
			rec := &recorder{}
			for _, tag := range []string{"country", "form", "upload", "review"} {
				r.Push(router.Push{Tag: tag, Payload: tag + "-payload"}, rec.completion(tag))
			}

			r.PopUntil(tc.target, "r")

			var got []string
			for _, p := range r.Stack() {
				got = append(got, p.Tag)
			}
			assert.Equal(t, tc.wantStack, got)
			assert.Equal(t, tc.wantCalls, rec.calls)
		})
	}
}

func TestPopUntilEntryDistinguishesInstances(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}
	r.Push(router.Push{Tag: "form", Instance: "step-1"}, rec.completion("step-1"))
	r.Push(router.Push{Tag: "form", Instance: "step-2"}, rec.completion("step-2"))
	r.Push(router.Push{Tag: "form", Instance: "step-3"}, rec.completion("step-3"))

	// Tag-only matching stops immediately.
	r.PopUntil(router.Push{Tag: "form", Instance: "step-1"}, nil)
	assert.Len(t, r.Stack(), 3)

	r.PopUntilEntry(router.Push{Tag: "form", Instance: "step-1"}, "back")
	require.Len(t, r.Stack(), 1)
	assert.Equal(t, "step-1", r.Stack()[0].Instance)
	assert.Equal(t, []string{"step-3:back", "step-2:back"}, rec.calls)
}

func TestPushEqualityIgnoresPayload(t *testing.T) {
	t.Parallel()

	a := router.Push{Tag: "formView", Payload: []string{"firstName"}}
	b := router.Push{Tag: "formView", Payload: []string{"passport", "dob"}}
	c := router.Push{Tag: "summaryReview", Payload: []string{"firstName"}}

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.True(t, a.SameEntry(b))
	assert.False(t, a.SameEntry(router.Push{Tag: "formView", Instance: "2"}))
}

func TestPresentSheetReplacementDropsFirstCompletion(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}

	r.PresentSheet(router.HalfSheet{ID: "d1"}, rec.completion("c1"))
	r.PresentSheet(router.HalfSheet{ID: "d2"}, rec.completion("c2"))

	sheet, ok := r.Sheet()
	require.True(t, ok)
	assert.Equal(t, "d2", sheet.ID)

	r.Dismiss("ok")
	r.Dismiss("again")

	assert.Equal(t, []string{"c2:ok"}, rec.calls)
	_, ok = r.Sheet()
	assert.False(t, ok)
}

func TestAlertReplacementDropsPreviousCompletion(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}

	r.PresentAlert(router.NewAlert("first", nil, nil), rec.completion("first"))
	r.PresentAlert(router.NewAlert("second", nil, nil), rec.completion("second"))
	r.Dismiss(nil)

	assert.Equal(t, []string{"second:<nil>"}, rec.calls)
}

func TestDismissClearsAllSlotsInOrder(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}

	r.PresentAlert(router.NewAlert("a", nil, nil), rec.completion("alert"))
	r.PresentFullScreen(router.FullScreen{ID: "f"}, rec.completion("full"))
	r.PresentSheet(router.HalfSheet{ID: "s"}, rec.completion("sheet"))

	r.Dismiss(1)

	assert.Equal(t, []string{"sheet:1", "full:1", "alert:1"}, rec.calls)
	snap := r.Snapshot()
	assert.Nil(t, snap.Sheet)
	assert.Nil(t, snap.FullScreen)
	assert.Nil(t, snap.Alert)
}

func TestDismissCompletionMayPresentAgain(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	r.PresentSheet(router.HalfSheet{ID: "form"}, func(any) {
		r.PresentAlert(router.NewAlert("Saved", nil, nil), nil)
	})

	r.Dismiss(nil)

	alert, ok := r.PresentedAlert()
	require.True(t, ok)
	assert.Equal(t, "Saved", alert.Message)
}

func TestEmptyOperationsAreNoOps(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	assert.NotPanics(t, func() {
		r.Pop(nil)
		r.PopToRoot(nil)
		r.PopUntil(router.Push{Tag: "x"}, nil)
		r.Dismiss(nil)
		r.Navigate(nil)
	})
	assert.Empty(t, r.Stack())
}

func TestNavigateDispatchesByVariant(t *testing.T) {
	t.Parallel()

	tree := router.NewTree(router.Config{})
	r := tree.Root()

	r.Navigate(router.Tab("home"))
	r.Navigate(router.Push{Tag: "form"})
	r.Navigate(router.HalfSheet{ID: "sheet"})
	r.Navigate(router.FullScreen{ID: "cover"})
	r.Navigate(router.NewAlert("hello", nil, nil))

	snap := r.Snapshot()
	assert.Equal(t, router.Tab("home"), snap.SelectedTab)
	require.Len(t, snap.Stack, 1)
	assert.Equal(t, "form", snap.Stack[0].Tag)
	require.NotNil(t, snap.Sheet)
	assert.Equal(t, "sheet", snap.Sheet.ID)
	require.NotNil(t, snap.FullScreen)
	assert.Equal(t, "cover", snap.FullScreen.ID)
	require.NotNil(t, snap.Alert)
	assert.Equal(t, "hello", snap.Alert.Message)
}

func TestSetStackPathPopsRemovedEntries(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}
	r.Push(router.Push{Tag: "country"}, rec.completion("country"))
	r.Push(router.Push{Tag: "form"}, rec.completion("form"))
	r.Push(router.Push{Tag: "review"}, rec.completion("review"))

	// Back gesture removed the top two screens.
	r.SetStackPath([]router.Push{{Tag: "country"}})
	assert.Equal(t, []string{"review:<nil>", "form:<nil>"}, rec.calls)
	require.Len(t, r.Stack(), 1)

	r.SetStackPath([]router.Push{{Tag: "country"}, {Tag: "help"}})
	require.Len(t, r.Stack(), 2)
	assert.Equal(t, "help", r.Stack()[1].Tag)

	r.Pop(nil)
	assert.Len(t, rec.calls, 2)
}

func TestClearSlotDropsCompletion(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}
	r.PresentSheet(router.HalfSheet{ID: "s"}, rec.completion("sheet"))
	r.PresentFullScreen(router.FullScreen{ID: "f"}, rec.completion("full"))

	r.ClearSheet()
	r.ClearFullScreen()
	r.Dismiss(nil)

	assert.Empty(t, rec.calls)
}

func TestClearAlertFiresCompletion(t *testing.T) {
	t.Parallel()

	r := router.NewTree(router.Config{}).Root()
	rec := &recorder{}
	r.PresentSheet(router.HalfSheet{ID: "s"}, rec.completion("sheet"))
	r.PresentAlert(router.NewAlert("a", nil, nil), rec.completion("alert"))

	r.ClearAlert()
	r.ClearAlert()

	_, presented := r.PresentedAlert()
	assert.False(t, presented)
	_, sheet := r.Sheet()
	assert.True(t, sheet)
	assert.Equal(t, []string{"alert:<nil>"}, rec.calls)
}

func TestAlertActions(t *testing.T) {
	t.Parallel()

	retry := &router.AlertAction{Title: "Retry"}
	cancel := &router.AlertAction{Title: "Cancel"}

	assert.Equal(t, []router.AlertAction{{Default: true}}, router.NewAlert("x", nil, nil).Actions())

	actions := router.NewAlert("x", retry, cancel).Actions()
	require.Len(t, actions, 2)
	assert.Equal(t, "Retry", actions[0].Title)
	assert.Equal(t, "Cancel", actions[1].Title)

	actions = router.NewAlert("x", nil, cancel).Actions()
	require.Len(t, actions, 1)
	assert.False(t, actions[0].Default)
}

func TestNewAlertAssignsDistinctIDs(t *testing.T) {
	t.Parallel()

	a := router.NewAlert("x", nil, nil)
	b := router.NewAlert("x", nil, nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRouterString(t *testing.T) {
	t.Parallel()

	tree := router.NewTree(router.Config{})
	child := tree.Root().ChildRouter("home")

	assert.Contains(t, tree.Root().String(), "No Tab - Level: 0]")
	assert.Contains(t, child.String(), "home - Level: 1]")
	assert.Equal(t, child.ID().String()[:8], child.String()[len("Router["):len("Router[")+8])
}
