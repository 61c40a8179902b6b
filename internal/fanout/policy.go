// Package fanout turns a nearby-candidate result into notification jobs and delivers them
// best-effort through a NotificationSink.
package fanout

import (
	"context"
	"fmt"
	"sync"
	"time"

	"lostfound/internal/domain/entity"
	"lostfound/internal/domain/service"
	"lostfound/internal/errors"
	"lostfound/internal/proximity"

	"golang.org/x/sync/errgroup"
)

const (
	DefaultConcurrency = 50
	MaxConcurrency     = 100
	DefaultTimeout     = 3 * time.Second
	DefaultLinkPrefix  = "/posts/"
)

// Config tunes dispatch. Zero values fall back to the defaults above.
type Config struct {
	Concurrency int
	Timeout     time.Duration
	LinkPrefix  string
}

// Policy builds and dispatches nearby-post notifications.
type Policy struct {
	concurrency int
	timeout     time.Duration
	linkPrefix  string
}

// NewPolicy creates a policy, clamping concurrency to [1, MaxConcurrency].
func NewPolicy(cfg Config) *Policy {
	concurrency := cfg.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	concurrency = min(concurrency, MaxConcurrency)

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	linkPrefix := cfg.LinkPrefix
	if linkPrefix == "" {
		linkPrefix = DefaultLinkPrefix
	}

	return &Policy{
		concurrency: concurrency,
		timeout:     timeout,
		linkPrefix:  linkPrefix,
	}
}

// Report summarises one dispatch.
type Report struct {
	Attempted int      `json:"attempted"` // Jobs handed to the sink.
	Succeeded int      `json:"succeeded"` // Jobs the sink accepted before the deadline.
	FailedIDs []string `json:"failedIds"` // Recipients whose job returned an error, in job order.
	Abandoned int      `json:"abandoned"` // Jobs not finished when the deadline passed.
	TimedOut  bool     `json:"timedOut"`
}

// Link returns the client path of a post.
func (p *Policy) Link(postID string) string {
	return p.linkPrefix + postID
}

// BuildJob creates the notification for one recipient of a new post.
func (p *Policy) BuildJob(post *entity.Post, recipientID string, distanceKm float64) *entity.NotificationJob {
	location := post.District
	if location == "" {
		location = "your area"
	}

	job := &entity.NotificationJob{
		RecipientID: recipientID,
		Link:        p.Link(post.ID),
		Priority:    entity.PriorityMedium,
		Data: map[string]string{
			"postId":   post.ID,
			"category": post.Category,
			"location": post.District,
			"distance": FormatDistance(distanceKm),
		},
	}

	if post.Kind == entity.PostKindFound {
		job.Type = entity.NotificationTypeItemFound
		job.Title = fmt.Sprintf("Found item nearby: %s", post.Title)
		job.Message = fmt.Sprintf("Someone found a %s (%s) near %s. Is it yours?", post.Title, post.Category, location)
	} else {
		job.Type = entity.NotificationTypeItemLost
		job.Title = fmt.Sprintf("Lost item nearby: %s", post.Title)
		job.Message = fmt.Sprintf("Someone lost a %s (%s) near %s. Keep an eye out.", post.Title, post.Category, location)
	}

	return job
}

// FormatDistance renders a distance for display, e.g. "2.4 km away".
func FormatDistance(km float64) string {
	return fmt.Sprintf("%.1f km away", km)
}

// BuildJobs creates one job per nearby candidate, skipping the author.
func BuildJobs[T proximity.Candidate](p *Policy, post *entity.Post, author entity.Author, nearby []proximity.Result[T]) []*entity.NotificationJob {
	recipients := proximity.ExcludeSelf(nearby, author.ID)

	jobs := make([]*entity.NotificationJob, 0, len(recipients))
	for _, result := range recipients {
		jobs = append(jobs, p.BuildJob(post, result.CandidateID(), result.DistanceKm))
	}

	return jobs
}

// BuildAndDispatch builds the jobs for a new post and delivers them. It never fails:
// delivery problems are reported, not returned.
func BuildAndDispatch[T proximity.Candidate](ctx context.Context, p *Policy, post *entity.Post, author entity.Author, nearby []proximity.Result[T], sink service.NotificationSink) Report {
	return p.Dispatch(ctx, BuildJobs(p, post, author, nearby), sink)
}

type jobState int

const (
	jobPending jobState = iota
	jobRunning
	jobSucceeded
	jobFailed
)

// Dispatch delivers jobs concurrently, at most p.concurrency at a time, and waits at most p.timeout.
// Each job is independent; errors and panics from the sink are captured per job.
// Cancelling ctx does not abort delivery; only the timeout does.
func (p *Policy) Dispatch(ctx context.Context, jobs []*entity.NotificationJob, sink service.NotificationSink) Report {
	if len(jobs) == 0 {
		return Report{FailedIDs: []string{}}
	}

	dispatchCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.timeout)
	defer cancel()

	var mu sync.Mutex
	states := make([]jobState, len(jobs))
	setState := func(idx int, state jobState) {
		mu.Lock()
		states[idx] = state
		mu.Unlock()
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		group := new(errgroup.Group)
		group.SetLimit(p.concurrency)
		for idx, job := range jobs {
			if dispatchCtx.Err() != nil {
				break
			}

			group.Go(func() error {
				if dispatchCtx.Err() != nil {
					return nil
				}

				setState(idx, jobRunning)
				if err := deliver(dispatchCtx, sink, job); err != nil {
					setState(idx, jobFailed)
				} else {
					setState(idx, jobSucceeded)
				}

				return nil
			})
		}
		_ = group.Wait()
	}()

	timedOut := false
	select {
	case <-done:
	case <-dispatchCtx.Done():
		select {
		case <-done:
		default:
			timedOut = true
		}
	}

	mu.Lock()
	defer mu.Unlock()

	report := Report{FailedIDs: []string{}, TimedOut: timedOut}
	for idx, state := range states {
		switch state {
		case jobSucceeded:
			report.Attempted++
			report.Succeeded++
		case jobFailed:
			report.Attempted++
			report.FailedIDs = append(report.FailedIDs, jobs[idx].RecipientID)
		case jobRunning:
			report.Attempted++
			report.Abandoned++
		case jobPending:
			report.Abandoned++
		}
	}

	return report
}

func deliver(ctx context.Context, sink service.NotificationSink, job *entity.NotificationJob) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("notification sink panicked: %v", r)
		}
	}()

	return sink.Deliver(ctx, job)
}
