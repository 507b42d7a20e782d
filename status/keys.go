package status

// Metric keys shared by systems, HUD and the prometheus bridge
const (
	KeyFrames      = "engine.frames"
	KeyFrameMillis = "engine.frame_ms"
	KeyQueue       = "pipeline.queue"
	KeyLive        = "pipeline.live"
	KeySpawned     = "pipeline.spawned"
	KeyCulled      = "pipeline.culled"
	KeyEvicted     = "pipeline.evicted"
	KeyCatalog     = "pipeline.catalog"
	KeyCapacity    = "pipeline.capacity"
)
