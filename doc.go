// Package pointer provides pointer-input tracking for canvas-style
// editors and other interactive Go surfaces.
//
// Users import this single package for the complete public API:
// targets and trackers, event routing with enter/leave synthesis,
// and the terminal and desktop event sources.
package pointer
