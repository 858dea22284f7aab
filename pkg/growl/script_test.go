package growl_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/growlkit/pkg/growl"
)

func TestScript_DeclaresPluginOptions(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{ID: "w0"})
	require.NoError(t, err)
	assert.Regexp(t, `^growl_[0-9a-f]{8}$`, w.PluginVar())
	assert.True(t, strings.HasPrefix(w.Script(), "var "+w.PluginVar()+" = {"))
	// templates are JSON encoded, so markup never closes the surrounding script element
	assert.NotContains(t, w.Script(), "</")

	same, err := growl.New(growl.Config{ID: "w0"})
	require.NoError(t, err)
	assert.Equal(t, w.PluginVar(), same.PluginVar())
}

func TestScript_Immediate(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{ID: "w0", Title: "T", Body: "B"})
	require.NoError(t, err)
	assert.Equal(t, growl.ModeImmediate, w.Mode())
	assert.Empty(t, w.TimerVar())
	assert.Nil(t, w.Polling())

	expected := `$.notify({"message":"B","icon":"","title":"T","url":"","target":"_blank"}, ` + w.PluginVar() + `);`
	assert.True(t, strings.HasSuffix(w.Script(), "\n"+expected), w.Script())
	assert.NotContains(t, w.Script(), "setTimeout")
	assert.NotContains(t, w.Script(), "$.ajax")
}

func TestScript_ImmediateWithDelay(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{ID: "w0", Body: "B", Delay: 2000})
	require.NoError(t, err)

	expected := `setTimeout(function () {$.notify({"message":"B","icon":"","title":"","url":"","target":"_blank"}, ` +
		w.PluginVar() + `);}, 2000);`
	assert.True(t, strings.HasSuffix(w.Script(), "\n"+expected), w.Script())
	assert.Equal(t, 1, strings.Count(w.Script(), "$.notify("))
}

func TestScript_OneShot(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{
		ID:   "w0",
		Body: "fallback",
		Polling: &growl.Polling{
			URL:             "/notifications?user=1",
			Method:          "post",
			Data:            map[string]any{"page": 1},
			SuccessCallback: "app.onPoll",
			FailCallback:    "app.onFail",
		},
		Delay: 3000,
	})
	require.NoError(t, err)
	assert.Equal(t, growl.ModeOneShot, w.Mode())
	require.NotNil(t, w.Polling())
	assert.Equal(t, "POST", w.Polling().Method)

	js := w.Script()
	assert.Equal(t, 1, strings.Count(js, "$.ajax("))
	assert.Contains(t, js, `url: "/notifications?user=1",`)
	assert.Contains(t, js, `method: "POST",`)
	assert.Contains(t, js, `data: {"page":1}`)
	assert.Contains(t, js, `var base = {"message":"fallback",`)
	assert.Contains(t, js, "app.onPoll.call(this, data, base);")
	assert.Contains(t, js, "if (!entry.show) {\ncontinue;\n}")
	assert.Contains(t, js, "var settings = $.extend({}, base, {message: entry.body, title: entry.title});")
	assert.Contains(t, js, "$.notify(settings, "+w.PluginVar()+");")
	assert.True(t, strings.HasSuffix(js, ".fail(app.onFail);"))
	assert.NotContains(t, js, "setInterval")
	assert.NotContains(t, js, "setTimeout")
}

func TestScript_OneShotMinimal(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{Polling: &growl.Polling{URL: "/poll"}})
	require.NoError(t, err)

	js := w.Script()
	assert.Contains(t, js, `method: "GET"`)
	assert.NotContains(t, js, "data: ")
	assert.NotContains(t, js, ".call(this")
	assert.NotContains(t, js, ".fail(")
}

func TestScript_Repeating(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{Polling: &growl.Polling{URL: "/poll", Interval: 5000}})
	require.NoError(t, err)
	assert.Equal(t, growl.ModeRepeating, w.Mode())
	assert.Equal(t, w.PluginVar()+"_timer", w.TimerVar())

	js := w.Script()
	assert.Equal(t, 1, strings.Count(js, "$.ajax("))
	setup := strings.Index(js, "poll();")
	interval := strings.Index(js, "window."+w.TimerVar()+" = setInterval(poll, 5000);")
	require.NotEqual(t, -1, setup)
	require.NotEqual(t, -1, interval)
	assert.Less(t, setup, interval)
}

func TestScript_PollingCarriesBaseSettings(t *testing.T) {
	t.Parallel()

	w, err := growl.New(growl.Config{
		Icon:    "fa fa-bell",
		LinkURL: "/inbox",
		Polling: &growl.Polling{URL: "/poll"},
	})
	require.NoError(t, err)
	assert.Contains(t, w.Script(), `var base = {"message":"","icon":"fa fa-bell","title":"","url":"/inbox","target":"_blank"};`)
}

func TestMode_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "immediate", growl.ModeImmediate.String())
	assert.Equal(t, "one-shot", growl.ModeOneShot.String())
	assert.Equal(t, "repeating", growl.ModeRepeating.String())
	assert.Equal(t, "mode(9)", growl.Mode(9).String())
}

func TestPollEntry_Apply(t *testing.T) {
	t.Parallel()

	base := growl.Settings{Message: "m", Title: "t", Icon: "i"}
	got := growl.PollEntry{Body: "A", Title: "T1"}.Apply(base)
	assert.Equal(t, growl.Settings{Message: "A", Title: "T1", Icon: "i"}, got)
	assert.Equal(t, "m", base.Message)
}
