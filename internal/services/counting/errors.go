package counting

// CountingError is a custom error type for counting sequencer errors
type CountingError string

// Error implements the error interface
func (e CountingError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrNilConfig        CountingError = "config cannot be nil"
	ErrNilItemRepo      CountingError = "item repository cannot be nil"
	ErrNilMetadataRepo  CountingError = "metadata repository cannot be nil"
	ErrNilSpotlight     CountingError = "spotlight service cannot be nil"
	ErrInvalidDirection CountingError = "direction must be next or previous"
)
