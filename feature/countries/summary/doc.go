// Package summary builds, renders and stores the catalog summary image.
//
// Build turns the refresh outcome into a Record (total count plus the top five
// countries by estimated GDP). Render draws the Record as an 800x600 PNG. A Sink
// persists the PNG either on a local filesystem (LocalSink) or in an S3/MinIO
// bucket (StorageSink); ArtifactCache fronts either one for reads.
package summary
