package directory

// Config holds configuration for the directory hierarchy.
type Config struct {
	// RootID is the id of the pre-existing top-level directory node.
	RootID string `mapstructure:"root_id" default:"dir-root"`
	// Prefix is prepended to every derived region and city id.
	Prefix string `mapstructure:"prefix" default:"dir-"`
	// RegionType is the entity type used when creating region nodes.
	RegionType string `mapstructure:"region_type" default:"ce_region"`
	// CityType is the entity type used when creating city nodes.
	CityType string `mapstructure:"city_type" default:"ce_city"`
}
