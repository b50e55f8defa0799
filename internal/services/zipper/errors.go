package zipper

// ZipperError is a custom error type for zipper sequencer errors
type ZipperError string

// Error implements the error interface
func (e ZipperError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig           ZipperError = "config cannot be nil"
	ErrNilItemRepo         ZipperError = "item repository cannot be nil"
	ErrNilMetadataRepo     ZipperError = "metadata repository cannot be nil"
	ErrNilSpotlight        ZipperError = "spotlight service cannot be nil"
	ErrParticipantNotFound ZipperError = "participant not found"
	ErrRoundNotFinished    ZipperError = "round is not finished yet"
)
