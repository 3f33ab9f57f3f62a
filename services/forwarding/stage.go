package forwarding

// Stage is how far a single Forward call got. It lives only for the duration of
// the call; a failed call reports the last stage it reached.
type Stage string

const (
	StageReceived         Stage = "received"
	StageAuthenticated    Stage = "authenticated"
	StagePrimaryWritten   Stage = "primaryWritten"
	StageSecondaryWritten Stage = "secondaryWritten"
	StageCompleted        Stage = "completed"
)
