package platform

// Package platform contains OS and external tooling glue: filesystem helpers,
// URL validation, the ffmpeg presence check, and flat playlist enumeration.
