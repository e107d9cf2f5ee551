// Package title builds job titles and their metadata from an agency
// configuration and the contextual flags passed by the pipeline.
package title
