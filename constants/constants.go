package constants

import "os"

// NamespaceSoundEvent is the only annotation namespace the analysis
// functions support.
const NamespaceSoundEvent = "sound_event"

// Event roles within a soundscape. Polyphony only counts foreground events;
// everything else treats roles as opaque tags.
const (
	RoleForeground = "foreground"
	RoleBackground = "background"
)

// MetadataBatchSize is the most filenames a single metadata lookup accepts.
const MetadataBatchSize = 10

func GetServeAddr() string {
	addr := os.Getenv("ANNOSCAPE_ADDR")
	if addr != "" {
		return addr
	}
	return ":8080"
}

func GetMetadataEndpoint() string {
	endpoint := os.Getenv("ANNOSCAPE_METADATA_ENDPOINT")
	if endpoint != "" {
		return endpoint
	}
	return "http://localhost:8000"
}

func GetMetadataRegion() string {
	region := os.Getenv("ANNOSCAPE_METADATA_REGION")
	if region != "" {
		return region
	}
	return "localhost"
}

func GetMetadataTable() string {
	table := os.Getenv("ANNOSCAPE_METADATA_TABLE")
	if table != "" {
		return table
	}
	return "annoscape-metadata"
}
