package chat

// Vote is a thumbs up/down rating against a single bot turn.
type Vote string

const (
	VoteLike    Vote = "like"
	VoteDislike Vote = "dislike"
)

// Valid reports whether the vote is one of the known values.
func (v Vote) Valid() bool {
	return v == VoteLike || v == VoteDislike
}
