package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"fleet-booking/internal/data/entity"
	"fleet-booking/internal/data/repository"
	"fleet-booking/internal/dto/request"
	"fleet-booking/internal/dto/response"
	"fleet-booking/pkg/utils"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// Skip reasons reported by bulk create
const (
	SkipMissingNumber     = "missing number"
	SkipExistsInDatabase  = "exists in database"
	SkipDuplicateInBatch  = "duplicate in request"
	skipValidationFailure = "validation failed: %s"
)

const DefaultComplianceDays = 30

// MaxComplianceDays bounds the look-ahead window to a century
const MaxComplianceDays = 36500

type VehicleService interface {
	CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error)
	CreateVehicles(ctx context.Context, entries []json.RawMessage) (*response.BulkCreateVehiclesResponse, error)
	GetVehicles(ctx context.Context, req *request.VehicleListRequest) (*response.VehicleListResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
	GetVehicleByNumber(ctx context.Context, number string) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, identifier string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, vehicleID string) error

	// Reporting
	GetComplianceNearingExpiry(ctx context.Context, days int) ([]response.ComplianceExpiryResponse, error)
	GetFleetStats(ctx context.Context) (*response.FleetStatsResponse, error)
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, req *request.VehicleRequest) (*response.VehicleResponse, error) {
	req.Number = entity.CanonicalNumber(req.Number)
	if err := validate(req); err != nil {
		s.log.Warn("Create vehicle validation failed", zap.Error(err))
		return nil, err
	}

	existing, err := s.repo.Vehicle.FindByNumber(ctx, req.Number)
	if err != nil {
		return nil, fmt.Errorf("check vehicle number: %w", err)
	}
	if existing != nil {
		return nil, conflictError("A vehicle with this number already exists.", nil)
	}

	vehicle := &entity.Vehicle{Base: entity.NewBase(time.Now().UTC())}
	applyVehicleRequest(vehicle, req)

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, conflictError("A vehicle with this number already exists.", err)
		}
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle created",
		zap.String("vehicle_id", vehicle.ID.Hex()),
		zap.String("number", vehicle.Number),
	)

	resp := response.VehicleToResponse(vehicle)
	return &resp, nil
}

// CreateVehicles inserts every acceptable entry in one batch and reports the
// rest with a reason. Entries are judged in order, so the first of two equal
// numbers wins.
func (s *vehicleService) CreateVehicles(ctx context.Context, entries []json.RawMessage) (*response.BulkCreateVehiclesResponse, error) {
	if len(entries) == 0 {
		return nil, validationError("Request body must be a non-empty array of vehicle objects.", nil)
	}

	requests := make([]*request.VehicleRequest, len(entries))
	decodeErrs := make([]error, len(entries))
	numbers := make([]string, 0, len(entries))
	for i, raw := range entries {
		var req request.VehicleRequest
		if err := json.Unmarshal(raw, &req); err != nil {
			decodeErrs[i] = err
			continue
		}
		req.Number = entity.CanonicalNumber(req.Number)
		requests[i] = &req
		if req.Number != "" {
			numbers = append(numbers, req.Number)
		}
	}

	existingNumbers, err := s.repo.Vehicle.FindExistingNumbers(ctx, numbers)
	if err != nil {
		return nil, fmt.Errorf("check existing vehicle numbers: %w", err)
	}
	existing := make(map[string]bool, len(existingNumbers))
	for _, n := range existingNumbers {
		existing[n] = true
	}

	now := time.Now().UTC()
	processed := make(map[string]bool, len(entries))
	toCreate := make([]*entity.Vehicle, 0, len(entries))
	skipped := make([]response.SkippedVehicle, 0)

	for i, req := range requests {
		switch {
		case decodeErrs[i] != nil:
			skipped = append(skipped, response.SkippedVehicle{
				Data:   entries[i],
				Reason: fmt.Sprintf(skipValidationFailure, "invalid vehicle object"),
			})
		case req.Number == "":
			skipped = append(skipped, response.SkippedVehicle{Data: entries[i], Reason: SkipMissingNumber})
		case existing[req.Number]:
			skipped = append(skipped, response.SkippedVehicle{Number: req.Number, Reason: SkipExistsInDatabase})
		case processed[req.Number]:
			skipped = append(skipped, response.SkippedVehicle{Number: req.Number, Reason: SkipDuplicateInBatch})
		default:
			if errs := utils.ValidateStruct(req); len(errs) > 0 {
				skipped = append(skipped, response.SkippedVehicle{
					Number: req.Number,
					Reason: fmt.Sprintf(skipValidationFailure, utils.FormatValidationErrors(errs)),
				})
				continue
			}

			vehicle := &entity.Vehicle{Base: entity.NewBase(now)}
			applyVehicleRequest(vehicle, req)
			toCreate = append(toCreate, vehicle)
			processed[req.Number] = true
		}
	}

	if len(toCreate) == 0 {
		s.log.Info("Bulk vehicle create skipped every entry", zap.Int("skipped", len(skipped)))
		return &response.BulkCreateVehiclesResponse{
			Message:         "No new vehicles were created.",
			CreatedCount:    0,
			SkippedCount:    len(skipped),
			SkippedVehicles: skipped,
		}, nil
	}

	if err := s.repo.Vehicle.CreateMany(ctx, toCreate); err != nil {
		if errors.Is(err, repository.ErrDuplicateKey) {
			return nil, conflictError("A vehicle number in the batch was registered concurrently.", err)
		}
		return nil, fmt.Errorf("create vehicles: %w", err)
	}

	created := make([]response.VehicleResponse, len(toCreate))
	for i, v := range toCreate {
		created[i] = response.VehicleToResponse(v)
	}

	s.log.Info("Vehicles created in bulk",
		zap.Int("created", len(created)),
		zap.Int("skipped", len(skipped)),
	)

	return &response.BulkCreateVehiclesResponse{
		Message:         fmt.Sprintf("Operation complete. Successfully created %d vehicles.", len(created)),
		CreatedCount:    len(created),
		SkippedCount:    len(skipped),
		CreatedVehicles: created,
		SkippedVehicles: skipped,
	}, nil
}

func (s *vehicleService) GetVehicles(ctx context.Context, req *request.VehicleListRequest) (*response.VehicleListResponse, error) {
	req.Normalize()
	if err := validate(req); err != nil {
		return nil, err
	}

	filter := entity.VehicleFilter{
		Type:      req.Type,
		Status:    req.Status,
		Ownership: req.Ownership,
	}

	vehicles, err := s.repo.Vehicle.FindAll(ctx, filter, req.PerPage(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get vehicles",
			zap.Error(err),
			zap.Int("page", req.Page),
			zap.Int("limit", req.PerPage()),
		)
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	total, err := s.repo.Vehicle.CountAll(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("count vehicles: %w", err)
	}

	resp, err := s.expandAll(ctx, vehicles)
	if err != nil {
		return nil, err
	}

	return response.NewVehicleListResponse(resp, req.Page, req.PerPage(), total), nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	id, err := parseID(vehicleID, "vehicle")
	if err != nil {
		return nil, err
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get vehicle by id: %w", err)
	}
	if vehicle == nil {
		return nil, notFoundError("Vehicle not found")
	}

	return s.expand(ctx, vehicle)
}

func (s *vehicleService) GetVehicleByNumber(ctx context.Context, number string) (*response.VehicleResponse, error) {
	canonical := entity.CanonicalNumber(number)

	vehicle, err := s.repo.Vehicle.FindByNumber(ctx, canonical)
	if err != nil {
		return nil, fmt.Errorf("get vehicle by number: %w", err)
	}
	if vehicle == nil {
		return nil, notFoundError(fmt.Sprintf("Vehicle with number %s not found", canonical))
	}

	return s.expand(ctx, vehicle)
}

// UpdateVehicle targets a vehicle by id when identifier is a valid ObjectID,
// else by registration number.
func (s *vehicleService) UpdateVehicle(ctx context.Context, identifier string, req *request.VehicleUpdateRequest) (*response.VehicleResponse, error) {
	vehicle, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}
	if vehicle == nil {
		return nil, notFoundError("Vehicle not found to update.")
	}

	if req.Number != nil {
		number := entity.CanonicalNumber(*req.Number)
		req.Number = &number

		taken, err := s.repo.Vehicle.ExistsNumberExcept(ctx, number, vehicle.ID)
		if err != nil {
			return nil, fmt.Errorf("check vehicle number: %w", err)
		}
		if taken {
			s.log.Warn("Vehicle number already in use",
				zap.String("vehicle_id", vehicle.ID.Hex()),
				zap.String("number", number),
			)
			return nil, validationError("Another vehicle with this number already exists.", nil)
		}
	}

	merged := request.VehicleRequestFromEntity(vehicle)
	req.ApplyTo(&merged)
	if err := validate(&merged); err != nil {
		s.log.Warn("Update vehicle validation failed",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.Hex()),
		)
		return nil, err
	}

	applyVehicleRequest(vehicle, &merged)
	vehicle.UpdatedAt = time.Now().UTC()

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		switch {
		case errors.Is(err, repository.ErrDuplicateKey):
			return nil, conflictError("Another vehicle with this number already exists.", err)
		case errors.Is(err, repository.ErrNotFound):
			return nil, notFoundError("Vehicle not found to update.")
		}
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	s.log.Info("Vehicle updated",
		zap.String("vehicle_id", vehicle.ID.Hex()),
		zap.String("number", vehicle.Number),
	)

	return s.expand(ctx, vehicle)
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, vehicleID string) error {
	id, err := parseID(vehicleID, "vehicle")
	if err != nil {
		return err
	}

	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return notFoundError("Vehicle not found to delete.")
		}
		return fmt.Errorf("delete vehicle: %w", err)
	}

	return nil
}

func (s *vehicleService) GetComplianceNearingExpiry(ctx context.Context, days int) ([]response.ComplianceExpiryResponse, error) {
	if days < 0 {
		return nil, validationError("days must be a non-negative integer", nil)
	}
	if days > MaxComplianceDays {
		return nil, validationError(fmt.Sprintf("days must not exceed %d", MaxComplianceDays), nil)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, days)
	vehicles, err := s.repo.Vehicle.FindComplianceExpiring(ctx, cutoff)
	if err != nil {
		return nil, fmt.Errorf("get compliance nearing expiry: %w", err)
	}

	resp := make([]response.ComplianceExpiryResponse, len(vehicles))
	for i, v := range vehicles {
		resp[i] = response.ComplianceExpiryToResponse(v)
	}
	return resp, nil
}

func (s *vehicleService) GetFleetStats(ctx context.Context) (*response.FleetStatsResponse, error) {
	summary, err := s.repo.Vehicle.FleetSummary(ctx)
	if err != nil {
		return nil, fmt.Errorf("get fleet summary: %w", err)
	}

	breakdown, err := s.repo.Vehicle.StatusBreakdown(ctx)
	if err != nil {
		return nil, fmt.Errorf("get status breakdown: %w", err)
	}

	return response.NewFleetStatsResponse(summary, breakdown), nil
}

func (s *vehicleService) findByIdentifier(ctx context.Context, identifier string) (*entity.Vehicle, error) {
	if id, err := primitive.ObjectIDFromHex(identifier); err == nil {
		vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
		if err != nil {
			return nil, fmt.Errorf("get vehicle by id: %w", err)
		}
		return vehicle, nil
	}

	vehicle, err := s.repo.Vehicle.FindByNumber(ctx, entity.CanonicalNumber(identifier))
	if err != nil {
		return nil, fmt.Errorf("get vehicle by number: %w", err)
	}
	return vehicle, nil
}

func (s *vehicleService) expand(ctx context.Context, vehicle *entity.Vehicle) (*response.VehicleResponse, error) {
	resp, err := s.expandAll(ctx, []*entity.Vehicle{vehicle})
	if err != nil {
		return nil, err
	}
	return &resp[0], nil
}

// expandAll resolves every vendor reference with one batched lookup
func (s *vehicleService) expandAll(ctx context.Context, vehicles []*entity.Vehicle) ([]response.VehicleResponse, error) {
	var vendorIDs []primitive.ObjectID
	for _, v := range vehicles {
		if v.Vendor.VendorID != nil {
			vendorIDs = append(vendorIDs, *v.Vendor.VendorID)
		}
	}

	vendorByID := make(map[primitive.ObjectID]*entity.Vendor)
	if len(vendorIDs) > 0 {
		vendors, err := s.repo.Vendor.FindByIDs(ctx, vendorIDs)
		if err != nil {
			return nil, fmt.Errorf("expand vehicle vendors: %w", err)
		}
		for _, vendor := range vendors {
			vendorByID[vendor.ID] = vendor
		}
	}

	resp := make([]response.VehicleResponse, len(vehicles))
	for i, v := range vehicles {
		var vendor *entity.Vendor
		if v.Vendor.VendorID != nil {
			vendor = vendorByID[*v.Vendor.VendorID]
		}
		resp[i] = response.ExpandedVehicleToResponse(v, vendor)
	}
	return resp, nil
}

// applyVehicleRequest copies a validated request onto v, filling defaults
func applyVehicleRequest(v *entity.Vehicle, req *request.VehicleRequest) {
	v.Number = entity.CanonicalNumber(req.Number)
	v.Type = entity.VehicleType(req.Type)
	v.Model = req.Model
	v.Capacity = req.Capacity
	v.Status = entity.VehicleStatusAvailable
	if req.Status != "" {
		v.Status = entity.VehicleStatus(req.Status)
	}
	v.Ownership = entity.OwnershipOwn
	if req.Ownership != "" {
		v.Ownership = entity.Ownership(req.Ownership)
	}
	v.Image = req.Image

	v.Driver = entity.Driver{
		Name:    req.Driver.Name,
		Phone:   req.Driver.Phone,
		License: req.Driver.License,
		Address: req.Driver.Address,
	}
	v.Compliance = entity.Compliance{
		RCExpiry:      req.Compliance.RCExpiry.Ptr(),
		Insurance:     entity.NumberedExpiry{Number: req.Compliance.Insurance.Number, Expiry: req.Compliance.Insurance.Expiry.Ptr()},
		FitnessExpiry: req.Compliance.FitnessExpiry.Ptr(),
		Permit:        entity.NumberedExpiry{Number: req.Compliance.Permit.Number, Expiry: req.Compliance.Permit.Expiry.Ptr()},
		PUCExpiry:     req.Compliance.PUCExpiry.Ptr(),
	}

	v.Vendor = entity.VendorLink{
		Rate:  req.Vendor.Rate,
		Notes: req.Vendor.Notes,
	}
	if vendorID, err := primitive.ObjectIDFromHex(req.Vendor.VendorID); err == nil {
		v.Vendor.VendorID = &vendorID
	}

	v.Stats = entity.VehicleStats{
		TotalTrips: req.Stats.TotalTrips,
		TotalKms:   req.Stats.TotalKms,
		Revenue:    req.Stats.Revenue,
	}
}
