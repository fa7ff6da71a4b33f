package htmldom

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gowade/tinyui/dom"
)

const (
	Src = `<html><head></head><body><div id="app"><span id="count">0</span></div></body></html>`
)

func TestEverything(t *testing.T) {
	d := MustNewDocument(Src)

	app, ok := d.ElementByID("app")
	require.True(t, ok)
	require.Equal(t, "div", app.TagName())

	count, ok := d.ElementByID("count")
	require.True(t, ok)
	require.Equal(t, "0", count.Text())

	count.SetText("12")
	require.Equal(t, `<span id="count">12</span>`, count.(Element).OuterHTML())

	p, err := d.CreateElement("P")
	require.NoError(t, err)
	require.Equal(t, "p", p.TagName())
	p.SetText(":D")
	require.NoError(t, app.AppendChild(p))
	require.Equal(t, `<span id="count">12</span><p>:D</p>`, app.(Element).InnerHTML())

	p.Remove()
	require.Equal(t, `<span id="count">12</span>`, app.(Element).InnerHTML())
	require.False(t, p.(Element).Attached())

	_, ok = d.ElementByID("missing")
	require.False(t, ok)
}

func TestCreateElementRejectsBadTags(t *testing.T) {
	d := MustNewDocument("")
	for _, tag := range []string{"", "1div", "di v", "<b>"} {
		_, err := d.CreateElement(tag)
		require.True(t, errors.Is(err, dom.ErrInvalidTag), tag)
	}

	el, err := d.CreateElement("todo-item")
	require.NoError(t, err)
	require.Equal(t, "todo-item", el.TagName())
}

func TestAttributes(t *testing.T) {
	d := MustNewDocument("")
	el, _ := d.CreateElement("input")

	require.NoError(t, el.SetAttr("Type", "text"))
	require.NoError(t, el.SetAttr("type", "checkbox"))
	v, ok := el.Attr("type")
	require.True(t, ok)
	require.Equal(t, "checkbox", v)

	require.True(t, errors.Is(el.SetAttr("a b", "x"), dom.ErrInvalidAttr))
	require.True(t, errors.Is(el.SetAttr("", "x"), dom.ErrInvalidAttr))

	el.SetChecked(true)
	require.True(t, el.Checked())
	el.SetChecked(false)
	require.False(t, el.Checked())

	el.SetValue("buy milk")
	require.Equal(t, "buy milk", el.Value())

	el.RemoveAttr("type")
	_, ok = el.Attr("type")
	require.False(t, ok)
}

func TestStyle(t *testing.T) {
	d := MustNewDocument("")
	el, _ := d.CreateElement("div")
	el.SetAttr("style", "color: red")

	el.SetStyle("display", "none")
	require.Equal(t, "none", el.Style("display"))
	require.Equal(t, "red", el.Style("color"))

	el.SetStyle("display", "block")
	require.Equal(t, "color: red; display: block;", el.(Element).Node().Attr[0].Val)
	require.Equal(t, "", el.Style("margin"))
}

func TestAppendChildHierarchy(t *testing.T) {
	d := MustNewDocument("")
	outer, _ := d.CreateElement("div")
	inner, _ := d.CreateElement("div")
	require.NoError(t, outer.AppendChild(inner))
	require.True(t, errors.Is(inner.AppendChild(outer), dom.ErrHierarchy))
	require.True(t, errors.Is(outer.AppendChild(outer), dom.ErrHierarchy))

	other, _ := d.CreateElement("section")
	require.NoError(t, other.AppendChild(inner))
	require.Len(t, outer.Children(), 0)
	require.Len(t, other.Children(), 1)
}

func TestDispatchBubblesAndReleases(t *testing.T) {
	d := MustNewDocument(Src)
	app, _ := d.ElementByID("app")
	count, _ := d.ElementByID("count")

	var calls []string
	l1 := count.AddEventListener("click", func(e dom.Event) {
		calls = append(calls, "count:"+e.Target().ID())
	})
	app.AddEventListener("click", func(e dom.Event) {
		calls = append(calls, "app")
	})
	app.AddEventListener("keydown", func(e dom.Event) {
		calls = append(calls, "key:"+e.Key())
	})
	require.Equal(t, 3, d.ListenerCount())

	d.Click(count)
	require.Equal(t, []string{"count:count", "app"}, calls)

	l1.Release()
	l1.Release()
	require.Equal(t, 2, d.ListenerCount())

	calls = nil
	d.Click(count)
	d.KeyDown(count, "Enter")
	require.Equal(t, []string{"app", "key:Enter"}, calls)
}

func TestStopPropagation(t *testing.T) {
	d := MustNewDocument(Src)
	app, _ := d.ElementByID("app")
	count, _ := d.ElementByID("count")

	reached := false
	count.AddEventListener("click", func(e dom.Event) { e.StopPropagation() })
	app.AddEventListener("click", func(e dom.Event) { reached = true })

	d.Click(count)
	require.False(t, reached)
}

func TestListenerReleasedInFlight(t *testing.T) {
	d := MustNewDocument(Src)
	count, _ := d.ElementByID("count")

	var second dom.Listener
	called := false
	count.AddEventListener("click", func(e dom.Event) { second.Release() })
	second = count.AddEventListener("click", func(e dom.Event) { called = true })

	d.Click(count)
	require.False(t, called)
	require.Equal(t, 1, d.ListenerCount())
}

func TestClickTogglesCheckbox(t *testing.T) {
	d := MustNewDocument("")
	box, _ := d.CreateElement("input")
	box.SetAttr("type", "checkbox")
	d.Body().AppendChild(box)

	d.Click(box)
	require.True(t, box.Checked())
	d.Click(box)
	require.False(t, box.Checked())
}

func TestFind(t *testing.T) {
	d := MustNewDocument(`<body><ul><li class="a">1</li><li class="a">2</li><li>3</li></ul></body>`)
	require.Len(t, d.Find("li.a"), 2)

	ul := d.Find("ul")[0]
	require.Len(t, ul.(Element).Find("li"), 3)
	require.Equal(t, "123", ul.Text())
}
