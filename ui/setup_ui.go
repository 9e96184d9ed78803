package ui

import (
	"bytes"
	"fmt"
	"image/color"

	cfg "github.com/automoto/pong/config"
	"github.com/automoto/pong/systems"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/goregular"
)

// SetupUI holds the ebitenui interface for the match setup screen
type SetupUI struct {
	UI       *ebitenui.UI
	Settings *systems.SavedSettings

	// Callbacks
	OnStartMatch func()

	// Widget references for updates
	sideButtons      [2]*widget.Button
	nameLabels       [2]*widget.Label
	difficultyLabel  *widget.Label
	targetLabel      *widget.Label
	resolutionLabel  *widget.Label
	difficultyButton *widget.Button

	// Fonts (stored as interface for ebitenui compatibility)
	titleFace  text.Face
	normalFace text.Face
	smallFace  text.Face

	// Initialization tracking
	initialized bool
}

// NewSetupUI creates a new setup UI editing settings in place
func NewSetupUI(settings *systems.SavedSettings, onStartMatch func()) *SetupUI {
	sui := &SetupUI{
		Settings:     settings,
		OnStartMatch: onStartMatch,
	}

	sui.loadFonts()
	sui.buildUI()

	return sui
}

func (sui *SetupUI) loadFonts() {
	fontSource, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}

	sui.titleFace = &text.GoTextFace{
		Source: fontSource,
		Size:   32,
	}
	sui.normalFace = &text.GoTextFace{
		Source: fontSource,
		Size:   16,
	}
	sui.smallFace = &text.GoTextFace{
		Source: fontSource,
		Size:   12,
	}
}

func (sui *SetupUI) buildUI() {
	// Root container with AnchorLayout to fill the screen
	rootContainer := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(cfg.Host.BackgroundColor)),
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	contentContainer := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(8)),
			widget.RowLayoutOpts.Spacing(8),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)

	titleLabel := widget.NewLabel(
		widget.LabelOpts.Text("PONG", &sui.titleFace, &widget.LabelColor{
			Idle: cfg.Host.ForegroundColor,
		}),
	)
	contentContainer.AddChild(titleLabel)

	contentContainer.AddChild(sui.buildPlayersContainer())
	contentContainer.AddChild(sui.buildSettingsContainer())
	contentContainer.AddChild(sui.buildStartButton())

	hint := widget.NewLabel(
		widget.LabelOpts.Text("W/S and Up/Down move, Space serves, P pauses, F3 debug", &sui.smallFace, &widget.LabelColor{
			Idle: cfg.Host.NetColor,
		}),
	)
	contentContainer.AddChild(hint)

	rootContainer.AddChild(contentContainer)

	sui.UI = &ebitenui.UI{
		Container: rootContainer,
	}
	// Note: Don't call UpdateUI() here - widgets aren't validated yet
}

func (sui *SetupUI) buildPlayersContainer() *widget.Container {
	container := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(12),
		)),
	)

	for i, side := range []cfg.Side{cfg.SideLeft, cfg.SideRight} {
		padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
		slot := widget.NewContainer(
			widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{40, 40, 50, 255})),
			widget.ContainerOpts.Layout(widget.NewRowLayout(
				widget.RowLayoutOpts.Direction(widget.DirectionVertical),
				widget.RowLayoutOpts.Padding(&padding),
				widget.RowLayoutOpts.Spacing(4),
			)),
		)

		sui.nameLabels[i] = widget.NewLabel(
			widget.LabelOpts.Text(sui.slotName(side), &sui.normalFace, &widget.LabelColor{
				Idle: cfg.Host.ForegroundColor,
			}),
		)
		slot.AddChild(sui.nameLabels[i])

		sui.sideButtons[i] = widget.NewButton(
			widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 24)),
			widget.ButtonOpts.Image(sui.buttonImage()),
			widget.ButtonOpts.Text(systems.ControllerName(*sui.Settings, side), &sui.smallFace, &widget.ButtonTextColor{
				Idle:    color.RGBA{255, 255, 255, 255},
				Hover:   color.RGBA{255, 255, 200, 255},
				Pressed: color.RGBA{200, 200, 200, 255},
			}),
			widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
				systems.ToggleAI(sui.Settings, side)
				sui.UpdateUI()
			}),
		)
		slot.AddChild(sui.sideButtons[i])

		container.AddChild(slot)
	}

	return container
}

func (sui *SetupUI) slotName(side cfg.Side) string {
	name := sui.Settings.Player1Name
	if side == cfg.SideRight {
		name = sui.Settings.Player2Name
	}
	return fmt.Sprintf("%s (%s)", name, side)
}

func (sui *SetupUI) buildSettingsContainer() *widget.Container {
	padding := widget.Insets{Top: 4, Bottom: 4, Left: 6, Right: 6}
	container := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(color.RGBA{30, 30, 40, 255})),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(&padding),
			widget.RowLayoutOpts.Spacing(3),
		)),
	)

	var row *widget.Container
	row, sui.difficultyLabel, sui.difficultyButton = sui.settingRow("Difficulty:", sui.Settings.Difficulty, "Change", func() {
		systems.CycleDifficulty(sui.Settings)
	})
	container.AddChild(row)

	row, sui.targetLabel, _ = sui.settingRow("Play to:", fmt.Sprint(sui.Settings.TargetScore), "+", func() {
		systems.ChangeTargetScore(sui.Settings, 1)
	})
	row.AddChild(sui.smallButton("-", func() {
		systems.ChangeTargetScore(sui.Settings, -1)
	}))
	container.AddChild(row)

	res := cfg.Host.Resolutions[sui.Settings.ResolutionIndex]
	row, sui.resolutionLabel, _ = sui.settingRow("Window:", res.Label, "Change", func() {
		res := systems.CycleResolution(sui.Settings)
		ebiten.SetWindowSize(res.Width, res.Height)
	})
	container.AddChild(row)

	return container
}

// settingRow builds "title value [button]" and returns the row, the value
// label and the button.
func (sui *SetupUI) settingRow(title, value, buttonText string, onClick func()) (*widget.Container, *widget.Label, *widget.Button) {
	row := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionHorizontal),
			widget.RowLayoutOpts.Spacing(6),
		)),
	)

	row.AddChild(widget.NewLabel(
		widget.LabelOpts.Text(title, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 255, 255},
		}),
	))

	valueLabel := widget.NewLabel(
		widget.LabelOpts.Text(value, &sui.smallFace, &widget.LabelColor{
			Idle: color.RGBA{255, 255, 100, 255},
		}),
	)
	row.AddChild(valueLabel)

	button := sui.smallButton(buttonText, onClick)
	row.AddChild(button)

	return row, valueLabel, button
}

func (sui *SetupUI) smallButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(50, 18)),
		widget.ButtonOpts.Image(sui.buttonImage()),
		widget.ButtonOpts.Text(label, &sui.smallFace, &widget.ButtonTextColor{
			Idle:     color.RGBA{200, 200, 200, 255},
			Hover:    color.RGBA{255, 255, 255, 255},
			Pressed:  color.RGBA{150, 150, 150, 255},
			Disabled: color.RGBA{100, 100, 100, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			onClick()
			sui.UpdateUI()
		}),
	)
}

func (sui *SetupUI) buildStartButton() *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(widget.WidgetOpts.MinSize(120, 32)),
		widget.ButtonOpts.Image(sui.startButtonImage()),
		widget.ButtonOpts.Text("START", &sui.normalFace, &widget.ButtonTextColor{
			Idle:    color.RGBA{255, 255, 255, 255},
			Hover:   color.RGBA{200, 255, 200, 255},
			Pressed: color.RGBA{150, 200, 150, 255},
		}),
		widget.ButtonOpts.ClickedHandler(func(args *widget.ButtonClickedEventArgs) {
			if sui.OnStartMatch != nil {
				sui.OnStartMatch()
			}
		}),
	)
}

func (sui *SetupUI) buttonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{60, 60, 80, 255})
	hover := image.NewNineSliceColor(color.RGBA{80, 80, 100, 255})
	pressed := image.NewNineSliceColor(color.RGBA{40, 40, 60, 255})
	disabled := image.NewNineSliceColor(color.RGBA{40, 40, 40, 255})

	return &widget.ButtonImage{
		Idle:     idle,
		Hover:    hover,
		Pressed:  pressed,
		Disabled: disabled,
	}
}

func (sui *SetupUI) startButtonImage() *widget.ButtonImage {
	idle := image.NewNineSliceColor(color.RGBA{40, 100, 40, 255})
	hover := image.NewNineSliceColor(color.RGBA{60, 140, 60, 255})
	pressed := image.NewNineSliceColor(color.RGBA{30, 80, 30, 255})

	return &widget.ButtonImage{
		Idle:    idle,
		Hover:   hover,
		Pressed: pressed,
	}
}

// UpdateUI updates all UI elements to reflect the current settings
func (sui *SetupUI) UpdateUI() {
	s := sui.Settings

	for i, side := range []cfg.Side{cfg.SideLeft, cfg.SideRight} {
		if sui.nameLabels[i] != nil {
			sui.nameLabels[i].Label = sui.slotName(side)
		}
		if sui.sideButtons[i] == nil {
			continue
		}
		if textWidget := sui.sideButtons[i].Text(); textWidget != nil {
			textWidget.Label = systems.ControllerName(*s, side)
		}
	}

	if sui.difficultyLabel != nil {
		sui.difficultyLabel.Label = s.Difficulty
	}
	// Difficulty only matters with a computer player
	if sui.difficultyButton != nil {
		sui.difficultyButton.GetWidget().Disabled = !s.Player1IsAI && !s.Player2IsAI
	}
	if sui.targetLabel != nil {
		sui.targetLabel.Label = fmt.Sprint(s.TargetScore)
	}
	if sui.resolutionLabel != nil {
		sui.resolutionLabel.Label = cfg.Host.Resolutions[s.ResolutionIndex].Label
	}
}

// Update calls the UI's Update method
func (sui *SetupUI) Update() {
	sui.UI.Update()
	// Update UI state on first frame after widgets are validated
	if !sui.initialized {
		sui.initialized = true
		sui.UpdateUI()
	}
}
