package parameter

// Camera placement, matches the classic view: above and in front of the backbone
const (
	CameraEyeX    = 0.0
	CameraEyeY    = 6.0
	CameraEyeZ    = 26.0
	CameraTargetX = 0.0
	CameraTargetY = 1.0
	CameraTargetZ = 0.0

	// CameraFovY is the vertical field of view in radians (45 degrees)
	CameraFovY = 0.7853981633974483

	CameraNear = 0.1
	CameraFar  = 1000.0

	// CellAspect is terminal cell height divided by width
	CellAspect = 2.0
)

// Fallback viewport used when no screen size is known yet (headless runs)
const (
	DefaultViewWidth  = 120
	DefaultViewHeight = 40
)
