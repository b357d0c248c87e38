// Package reviews implements review collection and pipe-delimited bulk
// import over the reviews slot.
package reviews

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dukaforge/storekeep/pkg/store"
	"github.com/dukaforge/storekeep/pkg/types"
)

// Repository manages the ordered review collection, most-recent-first.
type Repository struct {
	reviews *store.Value[[]types.Review]
	now     func() time.Time
}

// New binds a repository to the reviews slot of the given store.
func New(slots types.SlotStore) *Repository {
	return &Repository{
		reviews: store.Bind(slots, types.SlotReviews, []types.Review{}),
		now:     time.Now,
	}
}

// List returns the current ordered review collection.
func (r *Repository) List() []types.Review {
	return r.reviews.Get()
}

// Add records a review with a generated ID and today's date, prepending it
// to the collection. An empty author becomes AnonymousAuthor.
func (r *Repository) Add(author, body string) types.Review {
	rev := r.newReview(author, body)
	r.reviews.Update(func(list []types.Review) []types.Review {
		return append([]types.Review{rev}, list...)
	})
	return rev
}

// BulkIngest parses text as newline-separated review records and prepends
// the parsed batch ahead of existing reviews, preserving the batch's own
// order. Returns the reviews that were ingested.
//
// Record format: `author | body`. The pipe and the body are optional; a line
// with no pipe becomes a review whose body equals its author text. No line
// is ever rejected; empty lines are skipped.
func (r *Repository) BulkIngest(text string) []types.Review {
	var batch []types.Review
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		author, body := parseLine(line)
		batch = append(batch, r.newReview(author, body))
	}
	if len(batch) == 0 {
		return nil
	}

	r.reviews.Update(func(list []types.Review) []types.Review {
		return append(append([]types.Review{}, batch...), list...)
	})
	return batch
}

// parseLine splits a record on the first pipe into at most two trimmed
// fields. A missing second field means the body repeats the first field.
func parseLine(line string) (author, body string) {
	fields := strings.SplitN(line, "|", 2)
	author = strings.TrimSpace(fields[0])
	if len(fields) == 2 {
		body = strings.TrimSpace(fields[1])
	} else {
		body = author
	}
	return author, body
}

func (r *Repository) newReview(author, body string) types.Review {
	if author == "" {
		author = types.AnonymousAuthor
	}
	return types.Review{
		ID:     newUUID(),
		Author: author,
		Body:   body,
		Date:   r.now(),
	}
}

// newUUID generates a UUID v7 string, falling back to v4 if v7 fails.
func newUUID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
