package models

import (
	"encoding/json"
)

// ParsePoll decodes a stored poll_json value. A missing or malformed value
// yields nil.
func ParsePoll(raw *string) *Poll {
	if raw == nil || *raw == "" {
		return nil
	}

	var poll Poll
	if err := json.Unmarshal([]byte(*raw), &poll); err != nil {
		return nil
	}
	if poll.Options == nil {
		poll.Options = []PollOption{}
	}
	return &poll
}

// EncodePoll serializes a poll with every counter reset to zero; counts
// are always derived from post_votes.
func EncodePoll(poll *Poll) (string, error) {
	clean := Poll{Question: poll.Question, Options: make([]PollOption, len(poll.Options))}
	for i, opt := range poll.Options {
		clean.Options[i] = PollOption{Text: opt.Text}
	}

	data, err := json.Marshal(clean)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// ApplyCounts overwrites option counters with tallied votes.
func (p *Poll) ApplyCounts(counts map[int]int) {
	for i := range p.Options {
		p.Options[i].Votes = counts[i]
	}
}
