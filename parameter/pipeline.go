package parameter

import "time"

// Spawn timing
const (
	// SpawnInterval is the delay before the first batch fires
	SpawnInterval = 2 * time.Second
)

// Placement constants for newly spawned feature objects
const (
	// AngularStep is the emission angle increment per spawned entity (radians)
	AngularStep = 0.1

	// LaunchSpeed scales the unit emission direction
	LaunchSpeed = 6.0

	// ChromosomeScale converts bases to world units (1 unit per megabase)
	ChromosomeScale = 1_000_000.0

	// SizeScale multiplies the normalized feature length
	SizeScale = 2.0

	// MinVisualSize is added to every feature length so short ORFs stay visible
	MinVisualSize = 0.1

	// FeatureRadius is the cylinder radius of a feature object
	FeatureRadius = 0.15

	// FeatureColliderRadius is the radius used for mass computation
	FeatureColliderRadius = 0.1

	// FeatureDensity is the mass density applied to feature colliders
	FeatureDensity = 2.5

	// ChromosomeRadius is the radius of the backbone cylinder
	ChromosomeRadius = 0.1
)
