// Package pipeline streams a sorted catalog of genomic features into a scene
// as transient objects while keeping the live population bounded.
//
// One StreamingPipeline owns one run: the catalog, the drain queue, the spawn
// timer and the live registry. Per frame the caller invokes, in order:
//
//	Tick  - advance the spawn timer and release a batch when it fires
//	Cull  - destroy live objects the scene reports as not visible
//	Evict - destroy the oldest live objects while over the capacity cap
//
// No operation blocks and none can fail; queue exhaustion, an empty scene and
// capacity saturation are ordinary steady states.
package pipeline
