package usecase

import (
	"context"
	"errors"
	sortlib "sort"
	"strings"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
)

// Limit defaults and caps for the two list variants.
const (
	entityListDefaultLimit = 50
	entityListMaxLimit     = 200
	entityAllDefaultLimit  = 100
	entityAllMaxLimit      = 500
)

type entityUsecase struct {
	entityRepo  domain.EntityRepository
	jobRepo     domain.JobRepository
	profileRepo domain.ProfileRepository
}

func NewEntityUsecase(
	entityRepo domain.EntityRepository,
	jobRepo domain.JobRepository,
	profileRepo domain.ProfileRepository,
) domain.EntityUsecase {
	return &entityUsecase{
		entityRepo:  entityRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
	}
}

// List returns the caller-scoped view of an entity. Without an explicit
// user_id filter the ownership filter is applied automatically; applications
// branch on the caller's role instead (companies see applications to their
// own postings, candidates their own submissions).
func (u *entityUsecase) List(ctx context.Context, actor domain.Actor, entity string, filters map[string]interface{}, sort string, limit int) ([]domain.EntityRow, error) {
	desc, ok := domain.LookupEntity(entity)
	if !ok {
		return nil, apperror.UnsupportedEntity(entity)
	}

	plan, err := buildPlan(desc, filters, sort, limit, entityListDefaultLimit, entityListMaxLimit)
	if err != nil {
		return nil, err
	}

	if _, hasOwner := filters["user_id"]; !hasOwner {
		if entity == domain.EntityApplications {
			ownerFilter, empty, err := u.applicationScope(ctx, actor)
			if err != nil {
				return nil, err
			}
			if empty {
				// Company with no postings: nothing to query
				return []domain.EntityRow{}, nil
			}
			plan.Filters = append(plan.Filters, ownerFilter)
		} else {
			plan.Filters = append(plan.Filters, domain.EntityFilter{
				Column: desc.OwnerColumn,
				Value:  actor.UserID,
			})
		}
	}

	items, err := u.entityRepo.List(ctx, desc, plan)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

// ListAll is the cross-user browse variant (published résumés, active jobs).
// No ownership filter; callers narrow with explicit filters.
func (u *entityUsecase) ListAll(ctx context.Context, entity string, filters map[string]interface{}, sort string, limit int) ([]domain.EntityRow, error) {
	desc, ok := domain.LookupEntity(entity)
	if !ok {
		return nil, apperror.UnsupportedEntity(entity)
	}

	plan, err := buildPlan(desc, filters, sort, limit, entityAllDefaultLimit, entityAllMaxLimit)
	if err != nil {
		return nil, err
	}

	items, err := u.entityRepo.List(ctx, desc, plan)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return items, nil
}

// applicationScope decides the ownership condition for listing applications.
func (u *entityUsecase) applicationScope(ctx context.Context, actor domain.Actor) (domain.EntityFilter, bool, error) {
	userType := actor.UserType
	if userType == "" {
		profile, err := u.profileRepo.GetByUserID(ctx, actor.UserID)
		if err == nil {
			userType = profile.UserType
		}
	}

	if userType == domain.UserTypeCompany {
		jobIDs, err := u.jobRepo.GetIDsByUserID(ctx, actor.UserID)
		if err != nil {
			return domain.EntityFilter{}, false, apperror.Internal(err)
		}
		if len(jobIDs) == 0 {
			return domain.EntityFilter{}, true, nil
		}
		values := make([]interface{}, len(jobIDs))
		for i, id := range jobIDs {
			values[i] = id
		}
		return domain.EntityFilter{Column: "job_id", Value: values}, false, nil
	}

	return domain.EntityFilter{Column: "user_id", Value: actor.UserID}, false, nil
}

// Get fetches by id with the ownership filter for every entity except job
// postings. A non-owner's fetch reads as absent.
func (u *entityUsecase) Get(ctx context.Context, actor domain.Actor, entity string, id int64) (domain.EntityRow, error) {
	desc, ok := domain.LookupEntity(entity)
	if !ok {
		return nil, apperror.UnsupportedEntity(entity)
	}

	ownerID := actor.UserID
	if entity == domain.EntityJobPostings {
		ownerID = ""
	}

	row, err := u.entityRepo.Get(ctx, desc, id, ownerID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Registro não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	return row, nil
}

// Create stamps the caller as owner and inserts the whitelisted payload keys.
func (u *entityUsecase) Create(ctx context.Context, actor domain.Actor, entity string, payload map[string]interface{}) (domain.EntityRow, error) {
	desc, ok := domain.LookupEntity(entity)
	if !ok {
		return nil, apperror.UnsupportedEntity(entity)
	}

	row, err := sanitizePayload(desc, payload)
	if err != nil {
		return nil, err
	}
	row[desc.OwnerColumn] = actor.UserID

	created, err := u.entityRepo.Create(ctx, desc, row)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, apperror.Conflict("Registro duplicado")
		}
		return nil, apperror.Internal(err)
	}
	return created, nil
}

func (u *entityUsecase) Update(ctx context.Context, actor domain.Actor, entity string, id int64, payload map[string]interface{}) (domain.EntityRow, error) {
	desc, ok := domain.LookupEntity(entity)
	if !ok {
		return nil, apperror.UnsupportedEntity(entity)
	}

	changes, err := sanitizePayload(desc, payload)
	if err != nil {
		return nil, err
	}
	delete(changes, desc.OwnerColumn)
	if len(changes) == 0 {
		return nil, apperror.BadRequest("Nenhum campo para atualizar")
	}

	updated, err := u.entityRepo.Update(ctx, desc, id, actor.UserID, changes)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Registro não encontrado")
		}
		return nil, apperror.Internal(err)
	}
	return updated, nil
}

// Delete is ownership-scoped and idempotent.
func (u *entityUsecase) Delete(ctx context.Context, actor domain.Actor, entity string, id int64) error {
	desc, ok := domain.LookupEntity(entity)
	if !ok {
		return apperror.UnsupportedEntity(entity)
	}

	if err := u.entityRepo.Delete(ctx, desc, id, actor.UserID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

// buildPlan validates filters, sort and limit against the descriptor and
// produces a storage-ready plan.
func buildPlan(desc *domain.EntityDescriptor, filters map[string]interface{}, sort string, limit, defaultLimit, maxLimit int) (domain.EntityListPlan, error) {
	var plan domain.EntityListPlan

	for key, value := range filters {
		if value == nil || value == "" {
			continue
		}
		if !desc.HasColumn(key) {
			return plan, apperror.BadRequest("Filtro inválido: " + key)
		}
		plan.Filters = append(plan.Filters, domain.EntityFilter{Column: key, Value: value})
	}
	// Map iteration order is random; keep the rendered SQL stable
	sortlib.Slice(plan.Filters, func(i, j int) bool {
		return plan.Filters[i].Column < plan.Filters[j].Column
	})

	if sort != "" {
		col := sort
		if strings.HasPrefix(sort, "-") {
			plan.SortDesc = true
			col = sort[1:]
		}
		if col != "" {
			if !desc.HasColumn(col) {
				return plan, apperror.BadRequest("Ordenação inválida: " + col)
			}
			plan.SortCol = col
		}
	}

	if limit <= 0 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	plan.Limit = limit

	return plan, nil
}

// sanitizePayload keeps only known columns and strips server-assigned fields.
func sanitizePayload(desc *domain.EntityDescriptor, payload map[string]interface{}) (domain.EntityRow, error) {
	row := make(domain.EntityRow, len(payload))
	for key, value := range payload {
		if key == "id" || key == "created_at" || key == "updated_at" {
			continue
		}
		if !desc.HasColumn(key) {
			continue
		}
		row[key] = value
	}
	return row, nil
}
