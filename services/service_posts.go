package services

import (
	"context"
	"strings"

	"go.mongodb.org/mongo-driver/v2/bson"

	"prayershare/internal/repository"
	"prayershare/model"
)

// Posts owns post create/edit/delete across the per-kind collections.
type Posts struct {
	repos map[model.Kind]*repository.PostRepository
}

func NewPosts(repos []*repository.PostRepository) *Posts {
	m := make(map[model.Kind]*repository.PostRepository, len(repos))
	for _, r := range repos {
		m[r.Kind()] = r
	}
	return &Posts{repos: m}
}

func validateBody(body string) error {
	if strings.TrimSpace(body) == "" {
		return ValidationError("post body is required")
	}
	if len([]rune(body)) > model.MaxPostBodyLen {
		return ValidationError("post body exceeds 1000 characters")
	}
	return nil
}

func (s *Posts) Create(ctx context.Context, kind model.Kind, authorID, body string, anonymous bool) (model.Post, error) {
	if err := validateBody(body); err != nil {
		return model.Post{}, err
	}
	return s.repos[kind].Create(ctx, model.Post{
		AuthorID:  authorID,
		Body:      body,
		Anonymous: anonymous,
	})
}

func (s *Posts) Get(ctx context.Context, kind model.Kind, id bson.ObjectID) (model.Post, error) {
	return s.repos[kind].Get(ctx, id)
}

// Update edits an owned post. A kind change moves the document to the
// target collection, keeping id, timestamps and reactions.
func (s *Posts) Update(ctx context.Context, kind model.Kind, id bson.ObjectID, ownerID, body string, anonymous bool, newKind model.Kind) (model.Post, error) {
	if err := validateBody(body); err != nil {
		return model.Post{}, err
	}

	p, err := s.repos[kind].Update(ctx, id, ownerID, body, anonymous)
	if err != nil {
		return model.Post{}, err
	}

	if newKind == "" || newKind == kind {
		return p, nil
	}

	if err := s.repos[newKind].Insert(ctx, p); err != nil {
		return model.Post{}, err
	}
	if err := s.repos[kind].Delete(ctx, id, ownerID); err != nil {
		return model.Post{}, err
	}
	p.Kind = newKind
	return p, nil
}

func (s *Posts) Delete(ctx context.Context, kind model.Kind, id bson.ObjectID, ownerID string) error {
	return s.repos[kind].Delete(ctx, id, ownerID)
}
