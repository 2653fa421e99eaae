package memstore

import (
	"context"
	"fmt"
	"slices"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type teamMemberStore struct {
	*Store
}

func cloneMember(m entity.TeamMember) *entity.TeamMember {
	m.Permissions = slices.Clone(m.Permissions)
	return &m
}

func (s *teamMemberStore) emailTaken(email string, except primitive.ObjectID) bool {
	for id, m := range s.members {
		if m.Email == email && id != except {
			return true
		}
	}
	return false
}

func (s *teamMemberStore) Create(_ context.Context, member *entity.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignID(&member.Base)
	if _, ok := s.members[member.ID]; ok {
		return fmt.Errorf("team member _id %s: %w", member.ID.Hex(), repository.ErrDuplicateKey)
	}
	if s.emailTaken(member.Email, member.ID) {
		return fmt.Errorf("team member email %s: %w", member.Email, repository.ErrDuplicateKey)
	}
	s.members[member.ID] = *cloneMember(*member)
	return nil
}

func (s *teamMemberStore) FindByID(_ context.Context, id primitive.ObjectID) (*entity.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	m, ok := s.members[id]
	if !ok {
		return nil, nil
	}
	return cloneMember(m), nil
}

func (s *teamMemberStore) FindByEmail(_ context.Context, email string) (*entity.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, m := range s.members {
		if m.Email == email {
			return cloneMember(m), nil
		}
	}
	return nil, nil
}

func (s *teamMemberStore) FindAll(_ context.Context) ([]*entity.TeamMember, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.TeamMember, 0, len(s.members))
	for _, m := range s.members {
		out = append(out, cloneMember(m))
	}
	sortNewestFirst(out, func(m *entity.TeamMember) entity.Base { return m.Base })
	return out, nil
}

func (s *teamMemberStore) Update(_ context.Context, member *entity.TeamMember) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[member.ID]; !ok {
		return fmt.Errorf("update team member %s: %w", member.ID.Hex(), repository.ErrNotFound)
	}
	if s.emailTaken(member.Email, member.ID) {
		return fmt.Errorf("team member email %s: %w", member.Email, repository.ErrDuplicateKey)
	}
	s.members[member.ID] = *cloneMember(*member)
	return nil
}

func (s *teamMemberStore) Delete(_ context.Context, id primitive.ObjectID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.members[id]; !ok {
		return fmt.Errorf("delete team member %s: %w", id.Hex(), repository.ErrNotFound)
	}
	delete(s.members, id)
	return nil
}
