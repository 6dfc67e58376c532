package client

import (
	"context"
	"strings"
	"sync"
)

// Confirmer asks the user a blocking yes/no question before a
// destructive action.
type Confirmer interface {
	Confirm(prompt string) bool
}

type ConfirmerFunc func(prompt string) bool

func (f ConfirmerFunc) Confirm(prompt string) bool { return f(prompt) }

const deleteProcedurePrompt = "Êtes-vous sûr de vouloir supprimer cette procédure ?"

// ProcedureBrowser drives the procedure list: load, filter, create,
// view and delete. Mutations are serialized under one mutex so a
// create or delete always observes a consistent list before its
// refetch.
type ProcedureBrowser struct {
	client    *Client
	notifier  Notifier
	confirmer Confirmer

	mu         sync.Mutex
	procedures []Procedure
	searchTerm string
	category   string
}

func NewProcedureBrowser(c *Client, notifier Notifier, confirmer Confirmer) *ProcedureBrowser {
	if notifier == nil {
		notifier = NopNotifier()
	}
	if confirmer == nil {
		confirmer = ConfirmerFunc(func(string) bool { return true })
	}
	return &ProcedureBrowser{
		client:     c,
		notifier:   notifier,
		confirmer:  confirmer,
		procedures: []Procedure{},
		category:   "all",
	}
}

// Load fetches the full collection into local state.
func (b *ProcedureBrowser) Load(ctx context.Context) error {
	items, err := b.client.GetProcedures(ctx)
	if err != nil {
		b.notifier.Notify(Notification{
			Title:       "Erreur",
			Description: "Impossible de charger les procédures.",
			Destructive: true,
		})
		return err
	}

	b.mu.Lock()
	b.procedures = items
	b.mu.Unlock()
	return nil
}

func (b *ProcedureBrowser) SetSearchTerm(term string) {
	b.mu.Lock()
	b.searchTerm = term
	b.mu.Unlock()
}

// SetCategory selects the category filter; "all" disables it.
func (b *ProcedureBrowser) SetCategory(category string) {
	b.mu.Lock()
	b.category = category
	b.mu.Unlock()
}

// Filtered recomputes the visible list from the current search term and
// category. Both filters compose with AND.
func (b *ProcedureBrowser) Filtered() []Procedure {
	b.mu.Lock()
	defer b.mu.Unlock()
	return FilterProcedures(b.procedures, b.searchTerm, b.category)
}

// FilterProcedures keeps items where term is a case-insensitive
// substring of title, description or any tag, and category matches
// exactly ("all" keeps everything).
func FilterProcedures(items []Procedure, term, category string) []Procedure {
	term = strings.ToLower(strings.TrimSpace(term))

	out := make([]Procedure, 0, len(items))
	for _, p := range items {
		if term != "" && !matchesTerm(p, term) {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		out = append(out, p)
	}
	return out
}

func matchesTerm(p Procedure, term string) bool {
	if strings.Contains(strings.ToLower(p.Title), term) {
		return true
	}
	if strings.Contains(strings.ToLower(p.Description), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// ParseTags splits a comma-separated input, trimming fragments and
// discarding empties. Never returns nil.
func ParseTags(input string) []string {
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, p)
	}
	return out
}

// Create validates the draft, sends it and refetches the collection on
// success. Validation failures never reach the network.
func (b *ProcedureBrowser) Create(ctx context.Context, draft ProcedureDraft) bool {
	if field, ok := missingProcedureField(draft); ok {
		b.notifier.Notify(Notification{
			Title:       "Champs requis",
			Description: "Le champ " + field + " est obligatoire.",
			Destructive: true,
		})
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if _, err := b.client.CreateProcedure(ctx, draft); err != nil {
		b.notifier.Notify(Notification{
			Title:       "Erreur",
			Description: "Impossible de créer la procédure.",
			Destructive: true,
		})
		return false
	}

	b.notifier.Notify(Notification{
		Title:       "Procédure créée",
		Description: "La procédure a été ajoutée avec succès.",
	})
	b.refetchLocked(ctx)
	return true
}

// refetchLocked reloads the collection after a mutation. The mutation
// already succeeded, so a failed reload keeps the stale list and warns
// instead of reporting the mutation as failed. Caller holds b.mu.
func (b *ProcedureBrowser) refetchLocked(ctx context.Context) {
	items, err := b.client.GetProcedures(ctx)
	if err != nil {
		b.notifier.Notify(Notification{
			Title:       "Erreur",
			Description: "Impossible de charger les procédures.",
			Destructive: true,
		})
		return
	}
	b.procedures = items
}

func missingProcedureField(draft ProcedureDraft) (string, bool) {
	switch {
	case strings.TrimSpace(draft.Title) == "":
		return "titre", true
	case strings.TrimSpace(draft.Description) == "":
		return "description", true
	case strings.TrimSpace(draft.Content) == "":
		return "contenu", true
	case strings.TrimSpace(draft.Category) == "":
		return "catégorie", true
	}
	return "", false
}

// Delete asks for confirmation, deletes the record and refetches the
// collection so the list reflects the backend's authoritative state.
// A cancelled confirmation is a no-op, not an error.
func (b *ProcedureBrowser) Delete(ctx context.Context, id string) bool {
	if !b.confirmer.Confirm(deleteProcedurePrompt) {
		return false
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if err := b.client.DeleteProcedure(ctx, id); err != nil {
		b.notifier.Notify(Notification{
			Title:       "Erreur",
			Description: "Impossible de supprimer la procédure.",
			Destructive: true,
		})
		return false
	}

	b.notifier.Notify(Notification{
		Title:       "Procédure supprimée",
		Description: "La procédure a été supprimée avec succès.",
	})
	b.refetchLocked(ctx)
	return true
}

// View resolves a record from the already fetched list; no network
// call.
func (b *ProcedureBrowser) View(id string) (Procedure, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, p := range b.procedures {
		if p.ID == id {
			return p, true
		}
	}
	return Procedure{}, false
}
