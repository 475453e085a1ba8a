package renderer

import (
	stdmath "math"
	"runtime"
	"sync"
	"sync/atomic"

	"github.com/timothyhahn/raytracer-go/pkg/math"
)

// Camera maps pixels to world-space rays through a field-of-view derived
// viewport one unit in front of the camera, oriented by its transform.
type Camera struct {
	HSize       int
	VSize       int
	FieldOfView float64
	Transform   math.Matrix
	PixelSize   float64

	halfWidth  float64
	halfHeight float64
}

// NewCamera creates a camera with an identity view transform
func NewCamera(hsize, vsize int, fieldOfView float64) *Camera {
	halfView := stdmath.Tan(fieldOfView / 2)
	aspect := float64(hsize) / float64(vsize)

	halfWidth, halfHeight := halfView*aspect, halfView
	if aspect > 1 {
		halfWidth, halfHeight = halfView, halfView/aspect
	}

	return &Camera{
		HSize:       hsize,
		VSize:       vsize,
		FieldOfView: fieldOfView,
		Transform:   math.Identity(),
		PixelSize:   (halfWidth * 2) / float64(hsize),
		halfWidth:   halfWidth,
		halfHeight:  halfHeight,
	}
}

// RayForPixel returns the world-space ray through the center of the pixel
func (c *Camera) RayForPixel(px, py int) math.Ray {
	xOffset := (float64(px) + 0.5) * c.PixelSize
	yOffset := (float64(py) + 0.5) * c.PixelSize

	worldX := c.halfWidth - xOffset
	worldY := c.halfHeight - yOffset

	inverse := math.Inverse(c.Transform)
	pixel := math.TransformPoint(inverse, math.NewVec3(worldX, worldY, -1))
	origin := math.TransformPoint(inverse, math.NewVec3(0, 0, 0))
	direction := pixel.Subtract(origin).Normalize()

	return math.NewRay(origin, direction)
}

// Render produces the image for a world, splitting rows across NumCPU
// workers.
func (c *Camera) Render(world *World) *Canvas {
	return c.RenderParallel(world, 0, nil)
}

// RenderParallel renders with an explicit worker count (<= 0 means NumCPU)
// and an optional progress callback invoked after each finished row. Each
// pixel's color is a pure function of the immutable world, so workers share
// nothing but the row queue and their own slice of the canvas; the world
// must not be mutated while a render is in flight. The callback may be
// invoked from multiple goroutines.
func (c *Camera) RenderParallel(world *World, numWorkers int, onRowDone func(completed, total int)) *Canvas {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}

	image := NewCanvas(c.HSize, c.VSize)
	rows := make(chan int, c.VSize)
	for y := 0; y < c.VSize; y++ {
		rows <- y
	}
	close(rows)

	var completed atomic.Int64
	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				for x := 0; x < c.HSize; x++ {
					ray := c.RayForPixel(x, y)
					image.WritePixel(x, y, world.ColorAt(ray, MaxRecursionDepth))
				}
				if onRowDone != nil {
					onRowDone(int(completed.Add(1)), c.VSize)
				}
			}
		}()
	}
	wg.Wait()

	return image
}
