// Package ui is the interactive fyne shell around the render engine. It
// keeps a single background render worker fed through a one-slot mailbox,
// so rapid parameter changes collapse into the latest requested render.
package ui

import (
	"fmt"
	"image"
	"io"
	"log"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/google/uuid"

	"github.com/brady131313/rtiow/internal/engine"
	"github.com/brady131313/rtiow/internal/scene"
)

// logFilter drops the noisy GLFW "Invalid scancode" messages that fyne
// emits for non-standard keys on some platforms.
type logFilter struct {
	original io.Writer
}

func (f *logFilter) Write(p []byte) (n int, err error) {
	if strings.Contains(string(p), "Invalid scancode") {
		return len(p), nil
	}
	return f.original.Write(p)
}

const renderDebounce = 300 * time.Millisecond

// Run opens the preview window. With an empty scenePath a built-in
// demonstration scene is rendered instead of a loaded document.
func Run(scenePath string) error {
	log.Printf("ui: starting, scene=%q", scenePath)

	originalLogWriter := log.Writer()
	log.SetOutput(&logFilter{original: originalLogWriter})
	defer log.SetOutput(originalLogWriter)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	var world engine.Hittable
	if scenePath != "" {
		doc, err := scene.Load(scenePath)
		if err != nil {
			return err
		}
		list, err := engine.BuildWorld(doc, rng)
		if err != nil {
			return err
		}
		world = list
	} else {
		world = demoWorld()
	}

	a := app.New()
	w := a.NewWindow("rtiow")

	cfg := engine.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 50,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        engine.NewVec3(0, 0, 0),
		LookAt:          engine.NewVec3(0, 0, -1),
		VUp:             engine.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}

	blank := image.NewRGBA(image.Rect(0, 0, cfg.ImageWidth, int(float64(cfg.ImageWidth)/cfg.AspectRatio)))
	imgCanvas := canvas.NewImageFromImage(blank)
	imgCanvas.FillMode = canvas.ImageFillContain
	imgCanvas.SetMinSize(fyne.NewSize(640, 360))

	status := widget.NewLabel("Idle")
	progress := widget.NewProgressBar()

	mailbox := newJobMailbox()
	gauge := &progressGauge{}

	// currentJob and renderTimer are only touched from the fyne event
	// loop; results arriving for any other job id are stale and dropped.
	var currentJob uuid.UUID
	var renderTimer *time.Timer

	go func() {
		for {
			job := mailbox.Next()
			start := time.Now()
			camera := engine.NewCamera(job.config)
			fb := camera.Render(world, gauge)
			elapsed := time.Since(start)
			fyne.Do(func() {
				if job.id != currentJob {
					return
				}
				imgCanvas.Image = fb.Image()
				imgCanvas.Refresh()
				progress.SetValue(1)
				status.SetText(fmt.Sprintf("Rendered %dx%d at %d spp in %.1fs",
					fb.Width(), fb.Height(), job.config.SamplesPerPixel, elapsed.Seconds()))
			})
		}
	}()

	ticker := time.NewTicker(100 * time.Millisecond)
	defer ticker.Stop()
	go func() {
		for range ticker.C {
			frac := gauge.Fraction()
			fyne.Do(func() {
				progress.SetValue(frac)
			})
		}
	}()

	submit := func() {
		job := renderJob{id: uuid.New(), config: cfg}
		currentJob = job.id
		status.SetText("Rendering...")
		mailbox.Submit(job)
	}

	// Parameter edits fire per keystroke, so renders are debounced until
	// the panel settles.
	scheduleRender := func() {
		if renderTimer != nil {
			renderTimer.Stop()
		}
		renderTimer = time.AfterFunc(renderDebounce, func() {
			fyne.Do(submit)
		})
	}

	parseF := func(e *widget.Entry, def float64) float64 {
		v, err := strconv.ParseFloat(e.Text, 64)
		if err != nil {
			return def
		}
		return v
	}
	parsePosF := func(e *widget.Entry, def float64) float64 {
		v := parseF(e, def)
		if v <= 0 {
			return def
		}
		return v
	}
	parsePosI := func(e *widget.Entry, def int) int {
		v, err := strconv.Atoi(e.Text)
		if err != nil || v <= 0 {
			return def
		}
		return v
	}

	aspectEntry := widget.NewEntry()
	aspectEntry.SetText(fmt.Sprintf("%.2f", cfg.AspectRatio))
	aspectEntry.OnChanged = func(string) {
		cfg.AspectRatio = parsePosF(aspectEntry, cfg.AspectRatio)
		scheduleRender()
	}

	widthEntry := widget.NewEntry()
	widthEntry.SetText(strconv.Itoa(cfg.ImageWidth))
	widthEntry.OnChanged = func(string) {
		cfg.ImageWidth = parsePosI(widthEntry, cfg.ImageWidth)
		scheduleRender()
	}

	samplesEntry := widget.NewEntry()
	samplesEntry.SetText(strconv.Itoa(cfg.SamplesPerPixel))
	samplesEntry.OnChanged = func(string) {
		cfg.SamplesPerPixel = parsePosI(samplesEntry, cfg.SamplesPerPixel)
		scheduleRender()
	}

	depthEntry := widget.NewEntry()
	depthEntry.SetText(strconv.Itoa(cfg.MaxDepth))
	depthEntry.OnChanged = func(string) {
		cfg.MaxDepth = parsePosI(depthEntry, cfg.MaxDepth)
		scheduleRender()
	}

	focusEntry := widget.NewEntry()
	focusEntry.SetText(fmt.Sprintf("%.2f", cfg.FocusDist))
	focusEntry.OnChanged = func(string) {
		cfg.FocusDist = parsePosF(focusEntry, cfg.FocusDist)
		scheduleRender()
	}

	vfovLabel := widget.NewLabel(fmt.Sprintf("Vertical FOV: %.0f", cfg.VFov))
	vfovSlider := widget.NewSlider(1, 179)
	vfovSlider.Value = cfg.VFov
	vfovSlider.OnChanged = func(v float64) {
		cfg.VFov = v
		vfovLabel.SetText(fmt.Sprintf("Vertical FOV: %.0f", v))
		scheduleRender()
	}

	defocusLabel := widget.NewLabel(fmt.Sprintf("Defocus angle: %.1f", cfg.DefocusAngle))
	defocusSlider := widget.NewSlider(0, 10)
	defocusSlider.Step = 0.1
	defocusSlider.Value = cfg.DefocusAngle
	defocusSlider.OnChanged = func(v float64) {
		cfg.DefocusAngle = v
		defocusLabel.SetText(fmt.Sprintf("Defocus angle: %.1f", v))
		scheduleRender()
	}

	vecRow := func(v *engine.Vec3) fyne.CanvasObject {
		x := widget.NewEntry()
		y := widget.NewEntry()
		z := widget.NewEntry()
		x.SetText(fmt.Sprintf("%.2f", v.X))
		y.SetText(fmt.Sprintf("%.2f", v.Y))
		z.SetText(fmt.Sprintf("%.2f", v.Z))
		x.OnChanged = func(string) {
			v.X = parseF(x, v.X)
			scheduleRender()
		}
		y.OnChanged = func(string) {
			v.Y = parseF(y, v.Y)
			scheduleRender()
		}
		z.OnChanged = func(string) {
			v.Z = parseF(z, v.Z)
			scheduleRender()
		}
		return container.NewGridWithColumns(3, x, y, z)
	}

	renderBtn := widget.NewButton("Render", func() {
		if renderTimer != nil {
			renderTimer.Stop()
		}
		submit()
	})

	controls := container.NewVBox(
		widget.NewLabel("Ray tracing in one weekend"),
		container.NewGridWithColumns(2,
			widget.NewLabel("Aspect ratio"), aspectEntry,
			widget.NewLabel("Image width"), widthEntry,
			widget.NewLabel("Samples"), samplesEntry,
			widget.NewLabel("Max depth"), depthEntry,
			widget.NewLabel("Focus dist"), focusEntry,
		),
		vfovLabel,
		vfovSlider,
		defocusLabel,
		defocusSlider,
		widget.NewLabel("Look from"),
		vecRow(&cfg.LookFrom),
		widget.NewLabel("Look at"),
		vecRow(&cfg.LookAt),
		widget.NewLabel("Up"),
		vecRow(&cfg.VUp),
		renderBtn,
		progress,
		status,
	)

	content := container.NewHSplit(
		container.NewVScroll(controls),
		container.NewStack(imgCanvas),
	)
	content.SetOffset(0.3)

	w.SetContent(content)
	w.Resize(fyne.NewSize(1280, 800))

	// First preview kicks off once the event loop is up.
	scheduleRender()

	w.ShowAndRun()
	return nil
}

// demoWorld is the glass/metal/diffuse three-sphere arrangement rendered
// when no scene document is supplied.
func demoWorld() *engine.HittableList {
	ground := engine.NewLambertian("ground", engine.NewVec3(0.8, 0.8, 0.0))
	center := engine.NewLambertian("center", engine.NewVec3(0.1, 0.2, 0.5))
	left := engine.NewDielectric("left", 1.5)
	bubble := engine.NewDielectric("bubble", 1.0/1.5)
	right := engine.NewMetal("right", engine.NewVec3(0.8, 0.6, 0.2), 1.0)

	return engine.NewHittableList(
		engine.NewSphere(engine.NewVec3(0, -100.5, -1), 100, ground),
		engine.NewSphere(engine.NewVec3(0, 0, -1.2), 0.5, center),
		engine.NewSphere(engine.NewVec3(-1, 0, -1), 0.5, left),
		engine.NewSphere(engine.NewVec3(-1, 0, -1), 0.4, bubble),
		engine.NewSphere(engine.NewVec3(1, 0, -1), 0.5, right),
	)
}
