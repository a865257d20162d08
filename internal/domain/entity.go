package domain

import "context"

// EntityDescriptor maps a logical entity name to its backing table, ownership
// column and column whitelist. The registry is closed at compile time; filter
// keys, sort columns and payload keys are all validated against Columns before
// any SQL is built.
type EntityDescriptor struct {
	Name        string
	Table       string
	OwnerColumn string
	Columns     map[string]bool
}

// HasColumn reports whether col is a known column of the entity.
func (d *EntityDescriptor) HasColumn(col string) bool {
	return d.Columns[col]
}

const (
	EntityUserProfiles  = "user_profiles"
	EntityResumes       = "resumes"
	EntityJobPostings   = "job_postings"
	EntityApplications  = "applications"
	EntityNotifications = "notifications"
)

var entityRegistry = map[string]*EntityDescriptor{
	EntityUserProfiles: {
		Name:        EntityUserProfiles,
		Table:       "user_profiles",
		OwnerColumn: "user_id",
		Columns: columnSet(
			"id", "user_id", "user_type", "full_name", "email", "phone", "created_at",
		),
	},
	EntityResumes: {
		Name:        EntityResumes,
		Table:       "resumes",
		OwnerColumn: "user_id",
		Columns: columnSet(
			"id", "user_id", "full_name", "age", "objective", "education",
			"experience", "skills", "contact_email", "contact_phone",
			"is_published", "created_at", "updated_at",
		),
	},
	EntityJobPostings: {
		Name:        EntityJobPostings,
		Table:       "job_postings",
		OwnerColumn: "user_id",
		Columns: columnSet(
			"id", "user_id", "title", "description", "requirements",
			"skills_required", "location", "contact_info", "is_active",
			"created_at", "updated_at",
		),
	},
	EntityApplications: {
		Name:        EntityApplications,
		Table:       "applications",
		OwnerColumn: "user_id",
		Columns: columnSet(
			"id", "user_id", "job_id", "resume_id", "status", "applied_at", "updated_at",
		),
	},
	EntityNotifications: {
		Name:        EntityNotifications,
		Table:       "notifications",
		OwnerColumn: "user_id",
		Columns: columnSet(
			"id", "user_id", "message", "type", "is_read", "created_at",
		),
	},
}

func columnSet(cols ...string) map[string]bool {
	set := make(map[string]bool, len(cols))
	for _, c := range cols {
		set[c] = true
	}
	return set
}

// LookupEntity resolves a logical entity name. Unknown names are a client
// error at the usecase layer.
func LookupEntity(name string) (*EntityDescriptor, bool) {
	desc, ok := entityRegistry[name]
	return desc, ok
}

// EntityRow is a raw storage row keyed by column name.
type EntityRow = map[string]interface{}

// EntityFilter is a single equality (or set-membership) condition.
type EntityFilter struct {
	Column string
	Value  interface{} // slice value means "is one of"
}

// EntityListPlan is a validated, storage-ready list query. Columns referenced
// here have already been checked against the descriptor's whitelist.
type EntityListPlan struct {
	Filters  []EntityFilter
	SortCol  string
	SortDesc bool
	Limit    int
}

type EntityRepository interface {
	List(ctx context.Context, desc *EntityDescriptor, plan EntityListPlan) ([]EntityRow, error)
	// Get fetches by id. A non-empty ownerID adds the ownership condition.
	Get(ctx context.Context, desc *EntityDescriptor, id int64, ownerID string) (EntityRow, error)
	Create(ctx context.Context, desc *EntityDescriptor, row EntityRow) (EntityRow, error)
	Update(ctx context.Context, desc *EntityDescriptor, id int64, ownerID string, changes EntityRow) (EntityRow, error)
	Delete(ctx context.Context, desc *EntityDescriptor, id int64, ownerID string) error
}

type EntityUsecase interface {
	List(ctx context.Context, actor Actor, entity string, filters map[string]interface{}, sort string, limit int) ([]EntityRow, error)
	ListAll(ctx context.Context, entity string, filters map[string]interface{}, sort string, limit int) ([]EntityRow, error)
	Get(ctx context.Context, actor Actor, entity string, id int64) (EntityRow, error)
	Create(ctx context.Context, actor Actor, entity string, payload map[string]interface{}) (EntityRow, error)
	Update(ctx context.Context, actor Actor, entity string, id int64, payload map[string]interface{}) (EntityRow, error)
	Delete(ctx context.Context, actor Actor, entity string, id int64) error
}
