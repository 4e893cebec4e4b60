package app

// Package app wires the processing pipeline: URL classification, playlist
// enumeration, and the sequential fetch → normalize → download → convert
// loop with catch-and-continue error handling per track.
