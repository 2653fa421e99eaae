package usecase

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/dto/response"

	"go.uber.org/zap"
)

type TeamMemberService interface {
	CreateTeamMember(ctx context.Context, req *request.TeamMemberRequest) (*response.TeamMemberResponse, error)
	GetTeamMembers(ctx context.Context) ([]response.TeamMemberResponse, error)
	GetTeamMemberByID(ctx context.Context, memberID string) (*response.TeamMemberResponse, error)
	UpdateTeamMember(ctx context.Context, memberID string, req *request.TeamMemberUpdateRequest) (*response.TeamMemberResponse, error)
	DeleteTeamMember(ctx context.Context, memberID string) error
}

type teamMemberService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewTeamMemberService(repo *repository.Repository, log *zap.Logger) TeamMemberService {
	return &teamMemberService{
		repo: repo,
		log:  log.With(zap.String("service", "team_member")),
	}
}

func (s *teamMemberService) CreateTeamMember(ctx context.Context, req *request.TeamMemberRequest) (*response.TeamMemberResponse, error) {
	normalizeTeamMemberRequest(req)
	if err := validate(req); err != nil {
		s.log.Warn("Create team member validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.TeamMember.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("check team member email: %w", err)
	}
	if existing != nil {
		return nil, conflictError("A team member with this email already exists.", nil)
	}

	member := &entity.TeamMember{Base: entity.NewBase(time.Now().UTC())}
	applyTeamMemberRequest(member, req)

	if err := s.repo.TeamMember.Create(ctx, member); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, conflictError("Duplicate email. This email is already in use.", err)
		}
		return nil, fmt.Errorf("create team member: %w", err)
	}

	s.log.Info("Team member created",
		zap.String("member_id", member.ID.Hex()),
		zap.String("role", member.Role),
	)

	resp := response.TeamMemberToResponse(member)
	return &resp, nil
}

func (s *teamMemberService) GetTeamMembers(ctx context.Context) ([]response.TeamMemberResponse, error) {
	members, err := s.repo.TeamMember.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("get team members: %w", err)
	}

	resp := make([]response.TeamMemberResponse, len(members))
	for i, m := range members {
		resp[i] = response.TeamMemberToResponse(m)
	}
	return resp, nil
}

func (s *teamMemberService) GetTeamMemberByID(ctx context.Context, memberID string) (*response.TeamMemberResponse, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	resp := response.TeamMemberToResponse(member)
	return &resp, nil
}

func (s *teamMemberService) UpdateTeamMember(ctx context.Context, memberID string, req *request.TeamMemberUpdateRequest) (*response.TeamMemberResponse, error) {
	member, err := s.findMember(ctx, memberID)
	if err != nil {
		return nil, err
	}

	merged := request.TeamMemberRequest{
		Name:        member.Name,
		Email:       member.Email,
		Phone:       member.Phone,
		Role:        member.Role,
		Permissions: slices.Clone(member.Permissions),
		Status:      string(member.Status),
	}
	req.ApplyTo(&merged)
	normalizeTeamMemberRequest(&merged)
	if err := validate(&merged); err != nil {
		s.log.Warn("Update team member validation failed",
			zap.Error(err),
			zap.String("member_id", memberID),
		)
		return nil, err
	}

	applyTeamMemberRequest(member, &merged)
	member.UpdatedAt = time.Now().UTC()

	if err := s.repo.TeamMember.Update(ctx, member); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, conflictError("Duplicate email. This email is already in use by another team member.", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFoundError("Team member not found.")
		}
		return nil, fmt.Errorf("update team member: %w", err)
	}

	s.log.Info("Team member updated", zap.String("member_id", memberID))

	resp := response.TeamMemberToResponse(member)
	return &resp, nil
}

func (s *teamMemberService) DeleteTeamMember(ctx context.Context, memberID string) error {
	id, err := parseID(memberID, "team member")
	if err != nil {
		return err
	}

	if err := s.repo.TeamMember.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Team member not found.")
		}
		return fmt.Errorf("delete team member: %w", err)
	}

	return nil
}

func (s *teamMemberService) findMember(ctx context.Context, memberID string) (*entity.TeamMember, error) {
	id, err := parseID(memberID, "team member")
	if err != nil {
		return nil, err
	}

	member, err := s.repo.TeamMember.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get team member by id: %w", err)
	}
	if member == nil {
		return nil, notFoundError("Team member not found.")
	}

	return member, nil
}

func normalizeTeamMemberRequest(req *request.TeamMemberRequest) {
	req.Name = strings.TrimSpace(req.Name)
	req.Email = strings.TrimSpace(req.Email)
	req.Role = strings.TrimSpace(req.Role)
	if req.Permissions == nil {
		req.Permissions = []string{}
	}
	if req.Status == "" {
		req.Status = string(entity.TeamMemberStatusActive)
	}
}

func applyTeamMemberRequest(m *entity.TeamMember, req *request.TeamMemberRequest) {
	m.Name = req.Name
	m.Email = req.Email
	m.Phone = req.Phone
	m.Role = req.Role
	m.Permissions = req.Permissions
	m.Status = entity.TeamMemberStatus(req.Status)
}
