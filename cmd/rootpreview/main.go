// Root system preview tool - interactive visualization with sliders.
//
// Usage: go run ./cmd/rootpreview
package main

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/pthm-cable/rootgen/config"
	"github.com/pthm-cable/rootgen/geom"
	"github.com/pthm-cable/rootgen/rootgen"
)

const (
	windowWidth  = 1280
	windowHeight = 760
	viewWidth    = 900
	panelWidth   = windowWidth - viewWidth - 30

	// Wireframe cap so huge systems stay interactive.
	maxWireTriangles = 60000
)

func main() {
	rl.InitWindow(windowWidth, windowHeight, "Root System Preview")
	defer rl.CloseWindow()
	rl.SetTargetFPS(30)

	params := config.Default()
	seed := int64(12345)

	camera := rl.Camera3D{
		Position:   rl.Vector3{X: 14, Y: 10, Z: 14},
		Target:     rl.Vector3{X: 0, Y: -4, Z: 0},
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       45,
		Projection: rl.CameraPerspective,
	}

	var mesh geom.Mesh
	var stats rootgen.Stats
	var genErr error
	needsRegen := true

	for !rl.WindowShouldClose() {
		rl.UpdateCamera(&camera, rl.CameraOrbital)

		if needsRegen {
			mesh, stats, genErr = rootgen.GenerateWithStats(params, seed)
			needsRegen = false
		}

		rl.BeginDrawing()
		rl.ClearBackground(rl.RayWhite)

		rl.BeginMode3D(camera)
		rl.DrawGrid(12, 1.0)
		if genErr == nil {
			drawWireframe(&mesh)
		}
		rl.EndMode3D()

		rl.DrawRectangleLines(10, 10, viewWidth, windowHeight-20, rl.DarkGray)

		// Stats line
		if genErr != nil {
			rl.DrawText(fmt.Sprintf("error: %v", genErr), 15, windowHeight-55, 16, rl.Red)
		} else {
			rl.DrawText(
				fmt.Sprintf("Seed: %d  Verts: %d  Tris: %d  Secondary: %d/%d  Tertiary: %d/%d",
					seed, stats.Vertices, stats.Triangles,
					levelAccepted(stats, 2), levelCandidates(stats, 2),
					levelAccepted(stats, 3), levelCandidates(stats, 3)),
				15, windowHeight-55, 16, rl.DarkGray,
			)
		}
		rl.DrawText("Drag disabled - camera orbits automatically. R: random seed", 15, windowHeight-32, 14, rl.Gray)

		// Control panel
		panelX := float32(viewWidth + 20)
		panelY := float32(10)

		rl.DrawText("Root System Parameters", int32(panelX), int32(panelY), 20, rl.DarkGray)
		panelY += 35

		countF := slider(&panelY, panelX, "Root count", float32(params.Roots.Count), 1, 13, "%.0f", &needsRegen)
		params.Roots.Count = int(countF + 0.5)

		params.Roots.Length = float64(slider(&panelY, panelX, "Main length", float32(params.Roots.Length), 0.1, 20, "%.1f", &needsRegen))
		params.Roots.BaseWidth = float64(slider(&panelY, panelX, "Base width", float32(params.Roots.BaseWidth), 0.01, 1, "%.2f", &needsRegen))
		params.Roots.SpreadAngle = float64(slider(&panelY, panelX, "Spread angle (deg)", float32(params.Roots.SpreadAngle), 0, 90, "%.0f", &needsRegen))

		dirF := slider(&panelY, panelX, "Direction ("+params.Roots.Direction.String()+")", float32(params.Roots.Direction), 0, 5, "%.0f", &needsRegen)
		params.Roots.Direction = config.Direction(int(dirF + 0.5))

		params.Fibonacci.GoldenAngle = float64(slider(&panelY, panelX, "Golden angle (deg)", float32(params.Fibonacci.GoldenAngle), 90, 180, "%.1f", &needsRegen))
		params.Fibonacci.Separation = float64(slider(&panelY, panelX, "Separation", float32(params.Fibonacci.Separation), 0, 2, "%.2f", &needsRegen))

		params.Noise.Scale = float64(slider(&panelY, panelX, "Noise scale", float32(params.Noise.Scale), 0.1, 20, "%.1f", &needsRegen))
		params.Noise.Roughness = float64(slider(&panelY, panelX, "Roughness", float32(params.Noise.Roughness), 0, 2, "%.2f", &needsRegen))

		densityF := slider(&panelY, panelX, "Secondary density", float32(params.Secondary.Density), 1, 50, "%.0f", &needsRegen)
		params.Secondary.Density = float64(int(densityF + 0.5))

		depthF := slider(&panelY, panelX, "Branch depth", float32(params.Branching.Depth), 1, 6, "%.0f", &needsRegen)
		params.Branching.Depth = int(depthF + 0.5)

		// Separator
		rl.DrawLine(int32(panelX), int32(panelY), int32(panelX)+int32(panelWidth)-20, int32(panelY), rl.LightGray)
		panelY += 15

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.Secondary.Enable, "Secondary: on", "Secondary: off")) {
			params.Secondary.Enable = !params.Secondary.Enable
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.Tertiary.Enable, "Tertiary: on", "Tertiary: off")) {
			params.Tertiary.Enable = !params.Tertiary.Enable
			needsRegen = true
		}
		panelY += 40

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, toggleText(params.Leaves.Enable, "Leaves: on", "Leaves: off")) {
			params.Leaves.Enable = !params.Leaves.Enable
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, toggleText(params.Growth.Individual, "Growth: indiv", "Growth: uniform")) {
			params.Growth.Individual = !params.Growth.Individual
			needsRegen = true
		}
		panelY += 45

		if gui.Button(rl.Rectangle{X: panelX, Y: panelY, Width: 120, Height: 30}, "Random Seed") {
			seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}
		if gui.Button(rl.Rectangle{X: panelX + 130, Y: panelY, Width: 120, Height: 30}, "Reset All") {
			params = config.Default()
			needsRegen = true
		}

		if rl.IsKeyPressed(rl.KeyR) {
			seed = int64(rl.GetRandomValue(0, 99999))
			needsRegen = true
		}

		rl.EndDrawing()
	}
}

// slider draws one labeled SliderBar row and advances the panel cursor.
// Sets *regen when the value moved.
func slider(panelY *float32, panelX float32, label string, value, min, max float32, format string, regen *bool) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: float32(panelWidth - 80), Height: 20},
		fmt.Sprintf("%g", min), fmt.Sprintf("%g", max),
		value, min, max,
	)
	rl.DrawText(fmt.Sprintf(format, value), int32(panelX+float32(panelWidth-70)), int32(*panelY+2), 16, rl.DarkGray)
	*panelY += 32
	if v != value {
		*regen = true
	}
	return v
}

// drawWireframe renders the mesh as triangle edges. Generation space is
// Z-up; raylib view space is Y-up, so coordinates are swizzled here.
func drawWireframe(m *geom.Mesh) {
	tris := m.TriangleCount()
	if tris > maxWireTriangles {
		tris = maxWireTriangles
	}
	for t := 0; t < tris; t++ {
		a := toView(m.Positions[m.Indices[t*3]])
		b := toView(m.Positions[m.Indices[t*3+1]])
		c := toView(m.Positions[m.Indices[t*3+2]])
		rl.DrawLine3D(a, b, rl.DarkBrown)
		rl.DrawLine3D(b, c, rl.DarkBrown)
		rl.DrawLine3D(c, a, rl.DarkBrown)
	}
}

func toView(p r3.Vec) rl.Vector3 {
	return rl.Vector3{X: float32(p.X), Y: float32(p.Z), Z: float32(p.Y)}
}

func toggleText(on bool, ifOn, ifOff string) string {
	if on {
		return ifOn
	}
	return ifOff
}

func levelCandidates(s rootgen.Stats, level int) int {
	for _, lv := range s.Levels {
		if lv.Level == level {
			return lv.Candidates
		}
	}
	return 0
}

func levelAccepted(s rootgen.Stats, level int) int {
	for _, lv := range s.Levels {
		if lv.Level == level {
			return lv.Accepted
		}
	}
	return 0
}
