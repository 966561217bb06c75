// Command mini3d is a terminal demo of the mini3d software rasterizer:
// a spinning, lit cube rendered with the trapezoid/scanline pipeline
// in pkg/render, driven over a terminal Platform from pkg/platform.
package main

import (
	"flag"
	"fmt"
	"math"
	"os"
	"time"

	"github.com/charmbracelet/harmonica"

	"github.com/swraster/mini3d/pkg/math3d"
	"github.com/swraster/mini3d/pkg/platform"
	"github.com/swraster/mini3d/pkg/render"
	"github.com/swraster/mini3d/pkg/scene"
)

const (
	screenWidth  = 160
	screenHeight = 100

	minCameraDist = 1.5
	maxCameraDist = 20
	spinImpulse   = 0.01
	dollyStep     = 0.01
)

// spinAxis tracks a rotation angle whose velocity decays back to
// zero through a critically damped spring, grounded on the teacher's
// RotationAxis/RotationState (cmd/trophy/main.go): a key press gives
// the angle an impulse of velocity, and the spring bleeds it off over
// the following frames instead of stopping dead on key-up.
type spinAxis struct {
	Angle    float32
	velocity float32
	velAccel float32
	spring   harmonica.Spring
}

func newSpinAxis(fps int) *spinAxis {
	return &spinAxis{
		spring: harmonica.NewSpring(harmonica.FPS(fps), 4.0, 1.0),
	}
}

func (s *spinAxis) Impulse(delta float32) {
	s.velocity += delta
}

func (s *spinAxis) Update() {
	s.Angle += s.velocity
	newVel, newAccel := s.spring.Update(float64(s.velocity), float64(s.velAccel), 0)
	s.velocity = float32(newVel)
	s.velAccel = float32(newAccel)
}

func main() {
	texture := flag.String("texture", "", "path to a PNG/JPEG texture, instead of the built-in checkerboard")
	model := flag.String("model", "", "path to a glTF/GLB mesh, instead of the built-in cube")
	fps := flag.Int("fps", 60, "target frames per second")
	bg := flag.String("bg", "30,30,40", "background color as R,G,B (0-255 each)")
	flag.Parse()

	bgColor, err := parseColor(*bg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mini3d: %v\n", err)
		os.Exit(1)
	}

	if err := run(*model, *texture, *fps, bgColor); err != nil {
		fmt.Fprintf(os.Stderr, "mini3d: %v\n", err)
		os.Exit(1)
	}
}

func parseColor(s string) (render.Color, error) {
	var r, g, b int
	if _, err := fmt.Sscanf(s, "%d,%d,%d", &r, &g, &b); err != nil {
		return render.Color{}, fmt.Errorf("invalid -bg %q (want R,G,B): %w", s, err)
	}
	return render.RGB(float32(r)/255, float32(g)/255, float32(b)/255), nil
}

func run(modelPath, texturePath string, fps int, bg render.Color) error {
	plat := platform.NewTerminal()
	if err := plat.Init(screenWidth, screenHeight, "mini3d"); err != nil {
		return fmt.Errorf("init platform: %w", err)
	}
	defer plat.Close()

	content, err := scene.Load(modelPath, texturePath)
	if err != nil {
		return fmt.Errorf("load scene: %w", err)
	}

	dev := render.NewDevice(screenWidth, screenHeight)
	dev.SetBackground(bg)
	dev.SetTexture(content.Texture)
	dev.SetLight(&content.Light)

	dev.Transform.Projection = math3d.SetPerspective(
		float32(math.Pi)/3, float32(screenWidth)/float32(screenHeight*2), 0.5, 100)

	// render_state cycles TEXTURE -> COLOR -> WIREFRAME on Space,
	// per spec.md's demo platform interface (§6).
	states := []render.RenderState{render.RenderTexture, render.RenderColor, render.RenderWireframe}
	stateIdx := 0
	dev.SetRenderState(states[stateIdx])
	spaceHeld := false

	yaw := newSpinAxis(fps)
	cameraDist := float32(4)

	frameDur := time.Second / time.Duration(fps)
	for !plat.ShouldExit() {
		frameStart := time.Now()
		plat.Dispatch()

		if plat.KeyDown(platform.KeyEscape) {
			plat.Exit()
			break
		}
		if plat.KeyDown(platform.KeyLeft) {
			yaw.Impulse(-spinImpulse)
		}
		if plat.KeyDown(platform.KeyRight) {
			yaw.Impulse(spinImpulse)
		}
		if plat.KeyDown(platform.KeyUp) {
			cameraDist -= dollyStep
		}
		if plat.KeyDown(platform.KeyDown) {
			cameraDist += dollyStep
		}
		if cameraDist < minCameraDist {
			cameraDist = minCameraDist
		}
		if cameraDist > maxCameraDist {
			cameraDist = maxCameraDist
		}

		if plat.KeyDown(platform.KeySpace) {
			if !spaceHeld {
				stateIdx = (stateIdx + 1) % len(states)
				dev.SetRenderState(states[stateIdx])
			}
			spaceHeld = true
		} else {
			spaceHeld = false
		}

		yaw.Update()

		// Up/Down dolly the camera on the +X axis toward the origin,
		// per spec.md §6.
		dev.CameraPosition = math3d.Point(cameraDist, 0, 0)
		dev.Transform.View = math3d.SetLookAt(
			dev.CameraPosition, math3d.Point(0, 0, 0), math3d.Direction(0, 1, 0))
		dev.Transform.World = math3d.SetRotate(math3d.Direction(0, 1, 0), yaw.Angle)
		dev.Transform.Update()

		dev.Clear()
		content.Mesh.Draw(dev)

		if err := plat.Update(dev.Framebuffer()); err != nil {
			return fmt.Errorf("present frame: %w", err)
		}

		if elapsed := time.Since(frameStart); elapsed < frameDur {
			time.Sleep(frameDur - elapsed)
		}
	}
	return nil
}
