package model

// TrackStatus represents the processing status of a single track
type TrackStatus string

const (
	// TrackStatusPending means the track is queued but not started
	TrackStatusPending TrackStatus = "Pending"

	// TrackStatusFetching means video metadata is being retrieved
	TrackStatusFetching TrackStatus = "Fetching"

	// TrackStatusDownloading means the audio stream download is in progress
	TrackStatusDownloading TrackStatus = "Downloading"

	// TrackStatusConverting means ffmpeg transcoding is in progress
	TrackStatusConverting TrackStatus = "Converting"

	// TrackStatusCompleted means the MP3 file was written successfully
	TrackStatusCompleted TrackStatus = "Completed"

	// TrackStatusSkipped means the output file already existed
	TrackStatusSkipped TrackStatus = "Skipped"

	// TrackStatusError means processing failed
	TrackStatusError TrackStatus = "Error"
)

// String returns the string representation of TrackStatus
func (ts TrackStatus) String() string {
	return string(ts)
}

// IsActive returns true if the track is in an active state
func (ts TrackStatus) IsActive() bool {
	return ts == TrackStatusFetching || ts == TrackStatusDownloading || ts == TrackStatusConverting
}

// IsFinished returns true if the track is in a finished state (completed, skipped, or error)
func (ts TrackStatus) IsFinished() bool {
	return ts == TrackStatusCompleted || ts == TrackStatusSkipped || ts == TrackStatusError
}
