package renderer

import (
	"fmt"
	"math"

	"github.com/df07/go-stochastic-raytracer/pkg/core"
)

// worldUp is the reference direction used to orient the viewport
var worldUp = core.NewVec3(0, 1, 0)

// CameraConfig contains the user-facing camera parameters
type CameraConfig struct {
	Origin        core.Vec3 // Position of the lens center
	Target        core.Vec3 // Point the camera looks at
	AspectRatio   float64   // Viewport width / height
	Fov           float64   // Angle between the left and right edges of the view, in degrees
	Roll          float64   // Clockwise rotation of the viewport around the view direction, in degrees
	Aperture      float64   // Lens diameter; 0 disables depth of field
	FocusDistance float64   // Distance from the camera at which objects are in focus
	ShutterOpen   float64   // Time the shutter opens
	ShutterClose  float64   // Time the shutter closes; equal to ShutterOpen disables motion blur
}

// Validate checks that the configuration describes a non-degenerate camera
func (c CameraConfig) Validate() error {
	for name, value := range map[string]float64{
		"aspect ratio":   c.AspectRatio,
		"field of view":  c.Fov,
		"roll":           c.Roll,
		"aperture":       c.Aperture,
		"focus distance": c.FocusDistance,
		"shutter open":   c.ShutterOpen,
		"shutter close":  c.ShutterClose,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) {
			return fmt.Errorf("%w: %s must be finite", ErrInvalidCamera, name)
		}
	}
	if !c.Origin.IsFinite() || !c.Target.IsFinite() {
		return fmt.Errorf("%w: origin and target must be finite", ErrInvalidCamera)
	}
	if c.Origin.Equals(c.Target) {
		return fmt.Errorf("%w: origin and target must differ", ErrInvalidCamera)
	}
	if c.AspectRatio <= 0 {
		return fmt.Errorf("%w: aspect ratio %f must be positive", ErrInvalidCamera, c.AspectRatio)
	}
	if c.Fov <= 0 || c.Fov >= 180 {
		return fmt.Errorf("%w: field of view %f must be between 0 and 180 degrees", ErrInvalidCamera, c.Fov)
	}
	if c.Aperture < 0 {
		return fmt.Errorf("%w: aperture %f must not be negative", ErrInvalidCamera, c.Aperture)
	}
	if c.FocusDistance <= 0 {
		return fmt.Errorf("%w: focus distance %f must be positive", ErrInvalidCamera, c.FocusDistance)
	}
	if c.ShutterClose < c.ShutterOpen {
		return fmt.Errorf("%w: shutter closes (%f) before it opens (%f)", ErrInvalidCamera, c.ShutterClose, c.ShutterOpen)
	}
	if c.Target.Subtract(c.Origin).Normalize().Cross(worldUp).Length() < 1e-9 {
		return fmt.Errorf("%w: view direction is parallel to world up", ErrInvalidCamera)
	}
	return nil
}

// Camera generates rays for rendering
type Camera struct {
	origin         core.Vec3
	upperLeft      core.Vec3 // Viewport corner relative to origin
	horizontalUnit core.Vec3
	horizontal     core.Vec3
	verticalUnit   core.Vec3
	vertical       core.Vec3
	lensRadius     float64
	shutterOpen    float64
	shutterClose   float64
}

// NewCamera creates a camera from config. An invalid config panics; callers that
// take user input should call Validate first.
func NewCamera(config CameraConfig) *Camera {
	if err := config.Validate(); err != nil {
		panic(err)
	}

	direction := config.Target.Subtract(config.Origin).Normalize()
	roll := degreesToRadians(config.Roll)

	width := math.Tan(degreesToRadians(config.Fov)/2) * 2
	height := width / config.AspectRatio

	// Perpendicular to the view direction and up, then rolled clockwise
	horizontalUnit := direction.Cross(worldUp).Normalize().Multiply(math.Cos(roll)).
		Subtract(worldUp.Multiply(math.Sin(roll)))

	// Points down the viewport, so v grows from the top row
	verticalUnit := direction.Cross(horizontalUnit)

	horizontal := horizontalUnit.Multiply(width * config.FocusDistance)
	vertical := verticalUnit.Multiply(height * config.FocusDistance)

	upperLeft := direction.Multiply(config.FocusDistance).
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5))

	return &Camera{
		origin:         config.Origin,
		upperLeft:      upperLeft,
		horizontalUnit: horizontalUnit,
		horizontal:     horizontal,
		verticalUnit:   verticalUnit,
		vertical:       vertical,
		lensRadius:     config.Aperture / 2,
		shutterOpen:    config.ShutterOpen,
		shutterClose:   config.ShutterClose,
	}
}

// GetRay generates a ray through viewport coordinates (u, v) in [0,1), where (0,0)
// is the upper-left corner. Randomness for the lens and shutter comes from sampler.
func (c *Camera) GetRay(u, v float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		lens := core.RandomInUnitDisk(sampler).Multiply(c.lensRadius)
		offset = c.horizontalUnit.Multiply(lens.X).Add(c.verticalUnit.Multiply(lens.Y))
	}

	direction := c.upperLeft.
		Add(c.horizontal.Multiply(u)).
		Add(c.vertical.Multiply(v)).
		Subtract(offset).
		Normalize()

	time := c.shutterOpen
	if c.shutterClose > c.shutterOpen {
		time += (c.shutterClose - c.shutterOpen) * sampler.Get1D()
	}

	return core.NewRayAt(c.origin.Add(offset), direction, time)
}

func degreesToRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
