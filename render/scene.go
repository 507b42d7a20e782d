// Package render draws the scene, HUD and menu onto a tcell screen
package render

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orf-cloud/core"
	"github.com/lixenwraith/orf-cloud/engine"
	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/vmath"
)

// drawItem is one projected rod
type drawItem struct {
	entity core.Entity
	a, b   vmath.Vec3F
	depth  float64
	style  tcell.Style
	glyph  rune
}

// SceneRenderer projects world rods through the camera into the terminal
type SceneRenderer struct {
	screen tcell.Screen
	camera *Camera
	items  []drawItem
}

// NewSceneRenderer creates a renderer for screen
func NewSceneRenderer(screen tcell.Screen, camera *Camera) *SceneRenderer {
	return &SceneRenderer{
		screen: screen,
		camera: camera,
		items:  make([]drawItem, 0, 256),
	}
}

// Camera returns the projection camera
func (r *SceneRenderer) Camera() *Camera {
	return r.camera
}

// SyncView writes the drawable area into the world's view resource
func (r *SceneRenderer) SyncView(world *engine.World) {
	w, h := r.screen.Size()
	world.Resource.View.Width = w
	world.Resource.View.Height = max(0, h-parameter.HUDHeight)
}

// Draw renders every visible rod, far to near, below the HUD row
func (r *SceneRenderer) Draw(world *engine.World) {
	width, height := r.screen.Size()
	height -= parameter.HUDHeight
	if width <= 0 || height <= 0 {
		return
	}

	r.items = r.items[:0]
	for _, e := range world.Components.Visual.All() {
		vis, ok := world.Components.Visual.Get(e)
		if !ok {
			continue
		}
		tr, ok := world.Components.Transform.Get(e)
		if !ok {
			continue
		}
		if v, ok := world.Components.Visibility.Get(e); ok && !v.Visible {
			continue
		}
		a, b := AxisSegment(tr.Position, vis.Length)
		_, _, depth, _ := r.camera.NDC(vmath.V3FScale(vmath.V3FAdd(a, b), 0.5), width, height)
		r.items = append(r.items, drawItem{
			entity: e,
			a:      a,
			b:      b,
			depth:  depth,
			style:  tcell.StyleDefault.Foreground(vis.Color),
			glyph:  vis.Glyph,
		})
	}

	sort.Slice(r.items, func(i, j int) bool {
		if r.items[i].depth != r.items[j].depth {
			return r.items[i].depth > r.items[j].depth
		}
		return r.items[i].entity < r.items[j].entity
	})

	for _, it := range r.items {
		r.drawSegment(it, width, height)
	}
}

// drawSegment rasterizes a rod by sampling at roughly one point per cell
func (r *SceneRenderer) drawSegment(it drawItem, width, height int) {
	c0, r0, _, ok0 := r.camera.Project(it.a, width, height)
	c1, r1, _, ok1 := r.camera.Project(it.b, width, height)

	var steps int
	if ok0 && ok1 {
		steps = max(abs(c1-c0), abs(r1-r0), 1)
	} else {
		// One end off-screen: sample densely and let Project clip
		steps = width
	}
	steps = min(steps, width*2)

	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := vmath.V3FAdd(it.a, vmath.V3FScale(vmath.V3FSub(it.b, it.a), t))
		col, row, _, ok := r.camera.Project(p, width, height)
		if !ok {
			continue
		}
		r.screen.SetContent(col, row+parameter.HUDHeight, it.glyph, nil, it.style)
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
