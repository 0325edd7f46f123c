package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/ytget/emptystate"
	"github.com/ytget/emptystate/preset"
)

const (
	AppID   = "com.ytget.emptystate-demo"
	AppName = "Empty State Demo"

	WindowWidth  = 480
	WindowHeight = 540

	FadeDuration = 250 * time.Millisecond
)

// row is one demo list entry
type row struct {
	ID    string
	Label string
}

func main() {
	myApp := app.NewWithID(AppID)
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	var rows []row

	list := widget.NewList(
		func() int { return len(rows) },
		func() fyne.CanvasObject { return widget.NewLabel("") },
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			obj.(*widget.Label).SetText(rows[id].Label)
		},
	)

	var wrapped *emptystate.Wrapper

	addRow := func() {
		id := uuid.NewString()
		rows = append(rows, row{ID: id, Label: fmt.Sprintf("Item %d (%s)", len(rows)+1, id[:8])})
		wrapped.Reload()
	}

	source := &emptystate.Source{
		Image:      func() fyne.Resource { return theme.InfoIcon() },
		ImageTint:  func() fyne.ThemeColorName { return theme.ColorNameDisabled },
		Title:      func() []widget.RichTextSegment { return emptystate.BoldText("Nothing here yet") },
		Detail:     func() []widget.RichTextSegment { return emptystate.Text("Add a few items to fill the list.") },
		ButtonText: func() string { return "Add item" },
		ConfigureButton: func(b *widget.Button) {
			b.Importance = widget.HighImportance
		},
		FadeDuration: func() time.Duration { return FadeDuration },
	}

	wrapped = emptystate.WrapList(list, source)
	wrapped.SetDelegate(&emptystate.Delegate{
		Tapped: func(obj fyne.CanvasObject) {
			// The button adds an item; a tap on the rest of the content just logs.
			if _, ok := obj.(*widget.Button); ok {
				addRow()
				return
			}
			log.Printf("placeholder tapped")
		},
	})

	// An optional preset file replaces the inline source and follows the
	// wrapper's load status instead.
	if len(os.Args) > 1 {
		cfg, err := preset.Load(os.Args[1])
		if err != nil {
			log.Fatalf("load preset: %v", err)
		}
		preset.Attach(wrapped, cfg)
		wrapped.SetStatus(emptystate.StatusNoData)
	}

	controls := container.NewHBox(
		widget.NewButton("Add", addRow),
		widget.NewButton("Clear", func() {
			rows = nil
			wrapped.Reload()
		}),
		widget.NewButton("Loading", func() { wrapped.SetStatus(emptystate.StatusLoading) }),
		widget.NewButton("Error", func() { wrapped.SetStatus(emptystate.StatusError) }),
		widget.NewButton("Done", func() { wrapped.SetStatus(emptystate.StatusNoData) }),
	)

	myWindow.SetContent(container.NewBorder(controls, nil, nil, nil, wrapped))
	myWindow.ShowAndRun()
}
