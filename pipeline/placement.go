package pipeline

import (
	"math"

	"github.com/lixenwraith/orf-cloud/parameter"
	"github.com/lixenwraith/orf-cloud/vmath"
)

// LaunchAngle returns the launch angle in radians for the n-th spawned object
func LaunchAngle(spawnOrder uint64) float64 {
	return float64(spawnOrder) * parameter.AngularStep
}

// LaunchVelocity fans objects around the x axis in the y-z plane
func LaunchVelocity(spawnOrder uint64) vmath.Vec3F {
	a := LaunchAngle(spawnOrder)
	return vmath.V3FScale(vmath.Vec3F{X: 0, Y: math.Cos(a), Z: math.Sin(a)}, parameter.LaunchSpeed)
}

// VisualSize maps a feature length to cylinder length
// A non-positive maxLen yields the minimum visible size
func VisualSize(length, maxLen uint64) float64 {
	if maxLen == 0 {
		return parameter.MinVisualSize
	}
	return float64(length)/float64(maxLen)*parameter.SizeScale + parameter.MinVisualSize
}

// ChromosomeX maps a sequence coordinate to world x, centering the chromosome on the origin
func ChromosomeX(start, chromosomeLength uint64) float64 {
	return (float64(start) - float64(chromosomeLength)/2) / parameter.ChromosomeScale
}

// Place computes where and how a feature object appears
func Place(f Feature, spawnOrder, chromosomeLength, maxLen uint64) VisualSpec {
	size := VisualSize(f.Length(), maxLen)
	r := parameter.FeatureColliderRadius
	return VisualSpec{
		Feature:    f,
		SpawnOrder: spawnOrder,
		Position:   vmath.Vec3F{X: ChromosomeX(f.Start, chromosomeLength)},
		Velocity:   LaunchVelocity(spawnOrder),
		Length:     size,
		Radius:     parameter.FeatureRadius,
		Mass:       parameter.FeatureDensity * math.Pi * r * r * size,
	}
}
