// Command rtiow renders JSON scene documents to PPM or PNG images and
// dumps the built-in demonstration scenes as documents.
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/schollz/progressbar/v3"

	"github.com/brady131313/rtiow/internal/engine"
	"github.com/brady131313/rtiow/internal/scene"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("rtiow: ")

	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "render":
		err = runRender(os.Args[2:])
	case "dump":
		err = runDump(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		log.Fatal(err)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: rtiow render [flags] <scene.json>")
	fmt.Fprintln(os.Stderr, "       rtiow dump [flags] <scene id>")
}

// vec3Value adapts a camera vector parameter to the flag package, parsed
// from "x,y,z".
type vec3Value struct {
	v *engine.Vec3
}

func (f vec3Value) String() string {
	if f.v == nil {
		return ""
	}
	return fmt.Sprintf("%g,%g,%g", f.v.X, f.v.Y, f.v.Z)
}

func (f vec3Value) Set(s string) error {
	v, err := engine.ParseVec3(s)
	if err != nil {
		return err
	}
	*f.v = v
	return nil
}

func runRender(args []string) error {
	cfg := engine.CameraConfig{
		AspectRatio:     16.0 / 9.0,
		ImageWidth:      400,
		SamplesPerPixel: 100,
		MaxDepth:        10,
		VFov:            90,
		LookFrom:        engine.NewVec3(0, 0, 0),
		LookAt:          engine.NewVec3(0, 0, -1),
		VUp:             engine.NewVec3(0, 1, 0),
		DefocusAngle:    0,
		FocusDist:       10,
	}

	fs := flag.NewFlagSet("render", flag.ExitOnError)
	fs.Float64Var(&cfg.AspectRatio, "aspect-ratio", cfg.AspectRatio, "image aspect ratio")
	fs.IntVar(&cfg.ImageWidth, "width", cfg.ImageWidth, "image width in pixels")
	fs.IntVar(&cfg.SamplesPerPixel, "samples", cfg.SamplesPerPixel, "samples per pixel for antialiasing")
	fs.IntVar(&cfg.MaxDepth, "depth", cfg.MaxDepth, "max number of ray bounces into the scene")
	fs.Float64Var(&cfg.VFov, "vfov", cfg.VFov, "vertical field of view in degrees")
	fs.Var(vec3Value{&cfg.LookFrom}, "lookfrom", "point the camera is looking from, as x,y,z")
	fs.Var(vec3Value{&cfg.LookAt}, "lookat", "point the camera is looking at, as x,y,z")
	fs.Var(vec3Value{&cfg.VUp}, "vup", "camera relative up direction, as x,y,z")
	fs.Float64Var(&cfg.DefocusAngle, "defocus-angle", cfg.DefocusAngle, "variation angle of rays through each pixel")
	fs.Float64Var(&cfg.FocusDist, "focus-dist", cfg.FocusDist, "distance from lookfrom to the plane of perfect focus")
	fs.Int64Var(&cfg.Seed, "seed", 0, "render seed, 0 picks one from the clock")
	output := fs.String("o", "image.ppm", "output file, a .png path writes PNG instead of PPM")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("render: expected one scene file argument")
	}
	scenePath := fs.Arg(0)

	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(cfg.Seed))

	doc, err := scene.Load(scenePath)
	if err != nil {
		return err
	}
	world, err := engine.BuildWorld(doc, rng)
	if err != nil {
		return fmt.Errorf("load scene %s: %w", scenePath, err)
	}

	camera := engine.NewCamera(cfg)
	fb := camera.Render(world, &barTracker{})

	if strings.EqualFold(filepath.Ext(*output), ".png") {
		err = engine.SavePNG(*output, fb)
	} else {
		err = engine.SavePPM(*output, fb)
	}
	if err != nil {
		return err
	}

	log.Printf("wrote %s (%dx%d, %d samples, seed %d)",
		*output, fb.Width(), fb.Height(), cfg.SamplesPerPixel, cfg.Seed)
	return nil
}

func runDump(args []string) error {
	fs := flag.NewFlagSet("dump", flag.ExitOnError)
	seed := fs.Int64("seed", 0, "scene generation seed, 0 picks one from the clock")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if fs.NArg() != 1 {
		return fmt.Errorf("dump: expected one scene id argument")
	}

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(*seed))

	world, err := buildScene(fs.Arg(0), rng)
	if err != nil {
		return err
	}

	return scene.Write(os.Stdout, engine.DumpWorld(world))
}

// barTracker reports render progress on the terminal. Render calls Init
// once before the row workers start; Tick arrives from worker goroutines
// and the bar serializes updates internally.
type barTracker struct {
	bar *progressbar.ProgressBar
}

func (t *barTracker) Init(total int) {
	t.bar = progressbar.Default(int64(total), "rendering")
}

func (t *barTracker) Tick(int) {
	_ = t.bar.Add(1)
}
