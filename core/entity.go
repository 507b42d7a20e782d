package core

// Entity is a unique identifier for a world object
// Zero is never issued and marks "no entity"
type Entity uint64
