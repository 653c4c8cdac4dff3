package domain

// DeviceTypeRef is a device type reference derived from a recommendation
// result, labeled from the static device-type table.
type DeviceTypeRef struct {
	ID    string `json:"id"`
	Label string `json:"label"`
}

// RecommendationResult is the derived output of one recommendation run.
// It is recomputed each time the requirements step is submitted and never
// persisted.
//
// HasMatches is false when no product met the requirements and Products
// holds the fallback list instead of true matches.
type RecommendationResult struct {
	SuitableDeviceTypes []DeviceTypeRef `json:"suitable_device_types"`
	Products            []Product       `json:"products"`
	HasMatches          bool            `json:"has_matches"`
}

// RecommendCriteria is the input of a recommendation run: the chosen
// category plus the requirement maps accumulated so far.
//
// Select-typed requirements are carried but not consumed by the filtering
// predicate; only slider thresholds narrow the product set.
type RecommendCriteria struct {
	CategoryID string       `json:"category_id"`
	Filters    Requirements `json:"filters"`
}
