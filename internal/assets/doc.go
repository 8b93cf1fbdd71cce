// Package assets answers "do we already have a local image for this slug"
// and downloads opponent logos discovered during extraction. Stadium photos
// follow the <slug>.jpg naming convention the Pages site expects.
package assets
