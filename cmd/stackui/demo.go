package main

import (
	"fmt"

	"stackui/internal/button"
	"stackui/internal/ui"
	"stackui/internal/view"
)

// demo builds the sample views and the actions that move between them.
type demo struct {
	app  *ui.App
	tree *view.Tree
}

func newDemo(app *ui.App) *demo {
	return &demo{app: app, tree: app.Tree()}
}

func (d *demo) start() {
	d.app.PushView(d.menu(), view.Fade)
}

func (d *demo) menu() *view.Node {
	menu := d.tree.New("stackui", view.WithLayout(view.NewBox(view.Vertical)),
		view.WithText("Push views, move focus, pop them again."))

	d.item(menu, "Settings", "Open the settings page", func() {
		d.app.PushView(d.settings(), view.SlideLeft)
	})
	d.item(menu, "Confirm", "Open a dialog over this page", func() {
		d.app.PushView(d.dialog(), view.Fade)
	})
	d.item(menu, "Crash", "Show the fatal error screen", func() {
		d.app.Crash("The demo crashed on purpose.")
	})
	d.item(menu, "Quit", "Leave the demo", d.app.RequestQuit)
	return menu
}

func (d *demo) settings() *view.Node {
	page := d.tree.New("Settings", view.WithLayout(view.NewBox(view.Vertical)))
	for _, group := range []struct {
		name    string
		options []string
	}{
		{"Theme", []string{"Light", "Dark", "System"}},
		{"Frame rate", []string{"30", "60", "Unlimited"}},
	} {
		row := d.tree.New(group.name, view.WithLayout(view.NewBox(view.Horizontal)))
		for _, opt := range group.options {
			d.item(row, opt, "", nil)
		}
		page.AddChild(row)
	}
	d.back(page, view.SlideRight)
	return page
}

func (d *demo) dialog() *view.Node {
	dlg := d.tree.New("Are you sure?", view.Translucent(),
		view.WithLayout(view.NewBox(view.Horizontal)))
	d.item(dlg, "Yes", "", func() { d.app.PopView(view.Fade, nil) })
	d.item(dlg, "No", "", func() { d.app.PopView(view.Fade, nil) })
	d.back(dlg, view.Fade)
	return dlg
}

// item adds a focusable child to parent; A runs onSelect when set.
func (d *demo) item(parent *view.Node, name, text string, onSelect func()) *view.Node {
	n := d.tree.New(name, view.Focusable(), view.WithText(text))
	if onSelect != nil {
		n.RegisterAction("OK", button.A, func() bool {
			onSelect()
			return true
		}, false)
	}
	parent.AddChild(n)
	return n
}

func (d *demo) back(n *view.Node, anim view.Animation) {
	n.RegisterAction("Back", button.B, func() bool {
		d.app.PopView(anim, nil)
		return true
	}, false)
}

func stackNames(app *ui.App) []string {
	views := app.Views()
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.Name
	}
	return names
}

func describeStack(app *ui.App) string {
	return fmt.Sprintf("%d views, focus %s", len(app.Views()), app.Focus().Describe())
}
