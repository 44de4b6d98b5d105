// Copyright (c) 2026 Marquee. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package reaction records likes and dislikes on comments and keeps each
comment's cached counters in step with them.

# State Machine

For one (comment, user) pair the ledger is in one of three states: absent,
liked or disliked. Applying a reaction moves it as follows:

	absent   + like    -> liked     (applied)
	liked    + like    -> absent    (toggled_off)
	liked    + dislike -> disliked  (switched)

and symmetrically for dislike. There is no recorded neutral state.

# Aggregation

[Service.React] applies the transition, recounts the comment's reactions from
the ledger and writes the counts back to the comment, all in one
serializable transaction. Counters are never incremented in place.
*/
package reaction

import (
	"time"

	"github.com/taibuivan/marquee/internal/platform/validate"
)

// Kind is the reaction a user holds on a comment.
type Kind string

const (
	Like    Kind = "like"
	Dislike Kind = "dislike"
)

// Valid reports whether k is a known reaction.
func (k Kind) Valid() bool {
	return k == Like || k == Dislike
}

// ParseKind converts client input into a [Kind].
func ParseKind(raw string) (Kind, error) {
	kind := Kind(raw)
	switch {
	case raw == "":
		return "", validate.RequiredError(FieldReaction, "This field is required")
	case !kind.Valid():
		return "", validate.OneOfError(FieldReaction, string(Like), string(Dislike))
	}
	return kind, nil
}

// Outcome names the transition a call to apply performed.
type Outcome string

const (
	Applied    Outcome = "applied"
	ToggledOff Outcome = "toggled_off"
	Switched   Outcome = "switched"
)

// Record is one row of the ledger.
type Record struct {
	CommentID string
	UserID    string
	Reaction  Kind
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Counts is a fresh tally of a comment's reactions.
type Counts struct {
	Like    int `json:"like"`
	Dislike int `json:"dislike"`
}

// Result is what the caller sees after reacting.
type Result struct {
	CommentID string  `json:"comment_id"`
	Outcome   Outcome `json:"outcome"`

	// Reaction is the caller's reaction after the call; nil once toggled off.
	Reaction     *Kind `json:"reaction"`
	LikeCount    int   `json:"like_count"`
	DislikeCount int   `json:"dislike_count"`
}

// FieldReaction is the request field carrying the reaction.
const FieldReaction = "reaction"
