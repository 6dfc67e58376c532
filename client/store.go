package client

import (
	"context"
	"errors"
	"sync"

	"golang.org/x/sync/errgroup"
)

// ErrLoadFailed is the single error exposed for a failed aggregate
// fetch. Callers cannot tell which resource failed.
var ErrLoadFailed = errors.New("failed to load portfolio data")

// ErrRefetchSuperseded is returned by a Refetch whose result was
// discarded because a newer Refetch started before it settled. The
// snapshot reflects the newer call only.
var ErrRefetchSuperseded = errors.New("refetch superseded by a newer refetch")

// Data is the merged snapshot of the seven portfolio resources.
type Data struct {
	PersonalInfo   *PersonalInfo
	Education      []Education
	Skills         []SkillCategory
	Projects       []Project
	Experience     []Experience
	Certifications []Certification
	Testimonials   []Testimonial
}

func emptyData() Data {
	return Data{
		Education:      []Education{},
		Skills:         []SkillCategory{},
		Projects:       []Project{},
		Experience:     []Experience{},
		Certifications: []Certification{},
		Testimonials:   []Testimonial{},
	}
}

type Snapshot struct {
	Data    Data
	Loading bool
	Err     error
}

// Store aggregates the seven portfolio resources into one snapshot.
// A refetch fails as a whole when any single resource fails; on failure
// Data keeps its previous value. Concurrent refetches are resolved by
// generation: a refetch that was superseded discards its result instead
// of applying stale data.
type Store struct {
	client   *Client
	notifier Notifier

	mu         sync.Mutex
	generation uint64
	data       Data
	loading    bool
	err        error
}

func NewStore(c *Client, notifier Notifier) *Store {
	if notifier == nil {
		notifier = NopNotifier()
	}
	return &Store{
		client:   c,
		notifier: notifier,
		data:     emptyData(),
		loading:  true,
	}
}

func (s *Store) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Snapshot{Data: s.data, Loading: s.loading, Err: s.err}
}

// Refetch fetches all seven resources concurrently and applies the
// merged result only when every fetch succeeded. The join waits for
// every request to settle; a failing resource never cancels the rest.
// A call superseded by a newer Refetch discards its result, leaves the
// snapshot untouched and returns ErrRefetchSuperseded.
func (s *Store) Refetch(ctx context.Context) error {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.loading = true
	s.err = nil
	s.mu.Unlock()

	var (
		personalInfo   PersonalInfo
		education      []Education
		skills         []SkillCategory
		projects       []Project
		experience     []Experience
		certifications []Certification
		testimonials   []Testimonial
	)

	var g errgroup.Group
	g.Go(func() error {
		var err error
		personalInfo, err = s.client.GetPersonalInfo(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		education, err = s.client.GetEducation(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		skills, err = s.client.GetSkills(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		projects, err = s.client.GetProjects(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		experience, err = s.client.GetExperience(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		certifications, err = s.client.GetCertifications(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		testimonials, err = s.client.GetTestimonials(ctx)
		return err
	})

	fetchErr := g.Wait()

	s.mu.Lock()
	if s.generation != gen {
		s.mu.Unlock()
		return ErrRefetchSuperseded
	}
	s.loading = false
	if fetchErr != nil {
		s.err = ErrLoadFailed
		s.mu.Unlock()
		s.notifier.Notify(Notification{
			Title:       "Error",
			Description: "Failed to load portfolio data. Please try again.",
			Destructive: true,
		})
		return ErrLoadFailed
	}
	s.data = Data{
		PersonalInfo:   &personalInfo,
		Education:      education,
		Skills:         skills,
		Projects:       projects,
		Experience:     experience,
		Certifications: certifications,
		Testimonials:   testimonials,
	}
	s.mu.Unlock()
	return nil
}

// SubmitContactMessage sends the message and reports success as a
// boolean. It never returns an error and always emits exactly one
// notification.
func (s *Store) SubmitContactMessage(ctx context.Context, msg ContactMessageInput) bool {
	if err := s.client.CreateContactMessage(ctx, msg); err != nil {
		s.notifier.Notify(Notification{
			Title:       "Erreur",
			Description: "Une erreur s'est produite lors de l'envoi du message. Veuillez réessayer.",
			Destructive: true,
		})
		return false
	}
	s.notifier.Notify(Notification{
		Title:       "Message envoyé !",
		Description: "Votre message a été envoyé avec succès. Je vous répondrai bientôt.",
	})
	return true
}
