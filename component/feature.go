package component

// FeatureComponent marks a live ORF object in the scene
// Every entity carrying it is tracked by exactly one pipeline registry record
type FeatureComponent struct {
	Start      uint64
	End        uint64
	SpawnOrder uint64
}
