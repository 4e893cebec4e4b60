package fetch

// Package fetch retrieves video metadata and audio streams from YouTube.
// It selects the best audio-only format and writes the raw stream to disk;
// transcoding to MP3 is the convert package's job.
