package postgres

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"go-jobboard-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// entityRepo executes validated entity plans. Column and table identifiers
// are interpolated directly because the usecase layer has already matched them
// against the descriptor's closed whitelist; values always go through
// placeholders.
type entityRepo struct {
	db *pgxpool.Pool
}

func NewEntityRepository(db *pgxpool.Pool) domain.EntityRepository {
	return &entityRepo{db: db}
}

// BuildListQuery renders a list plan into SQL and arguments. Pure function,
// exercised directly by tests.
func BuildListQuery(desc *domain.EntityDescriptor, plan domain.EntityListPlan) (string, []interface{}) {
	var sb strings.Builder
	var args []interface{}

	sb.WriteString("SELECT * FROM ")
	sb.WriteString(desc.Table)

	for i, f := range plan.Filters {
		if i == 0 {
			sb.WriteString(" WHERE ")
		} else {
			sb.WriteString(" AND ")
		}
		args = appendCondition(&sb, args, f)
	}

	if plan.SortCol != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(plan.SortCol)
		if plan.SortDesc {
			sb.WriteString(" DESC")
		}
	}

	if plan.Limit > 0 {
		args = append(args, plan.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	return sb.String(), args
}

// appendCondition writes one filter condition. Slice values expand to an IN
// list so no array encoding is needed on the wire.
func appendCondition(sb *strings.Builder, args []interface{}, f domain.EntityFilter) []interface{} {
	if values, ok := f.Value.([]interface{}); ok {
		placeholders := make([]string, len(values))
		for i, v := range values {
			args = append(args, v)
			placeholders[i] = fmt.Sprintf("$%d", len(args))
		}
		fmt.Fprintf(sb, "%s IN (%s)", f.Column, strings.Join(placeholders, ", "))
		return args
	}
	args = append(args, f.Value)
	fmt.Fprintf(sb, "%s = $%d", f.Column, len(args))
	return args
}

// BuildInsertQuery renders an insert for the given row. Column order is
// sorted so output is deterministic.
func BuildInsertQuery(desc *domain.EntityDescriptor, row domain.EntityRow) (string, []interface{}) {
	cols := sortedColumns(row)

	placeholders := make([]string, len(cols))
	args := make([]interface{}, len(cols))
	for i, col := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = row[col]
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING *",
		desc.Table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	return query, args
}

// BuildUpdateQuery renders an ownership-scoped update.
func BuildUpdateQuery(desc *domain.EntityDescriptor, id int64, ownerID string, changes domain.EntityRow) (string, []interface{}) {
	cols := sortedColumns(changes)

	sets := make([]string, len(cols))
	args := make([]interface{}, 0, len(cols)+2)
	for i, col := range cols {
		args = append(args, changes[col])
		sets[i] = fmt.Sprintf("%s = $%d", col, len(args))
	}

	args = append(args, id)
	where := fmt.Sprintf("id = $%d", len(args))
	args = append(args, ownerID)
	where += fmt.Sprintf(" AND %s = $%d", desc.OwnerColumn, len(args))

	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s RETURNING *",
		desc.Table, strings.Join(sets, ", "), where)
	return query, args
}

func sortedColumns(row domain.EntityRow) []string {
	cols := make([]string, 0, len(row))
	for col := range row {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

func (r *entityRepo) List(ctx context.Context, desc *domain.EntityDescriptor, plan domain.EntityListPlan) ([]domain.EntityRow, error) {
	query, args := BuildListQuery(desc, plan)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectRows(rows)
}

func (r *entityRepo) Get(ctx context.Context, desc *domain.EntityDescriptor, id int64, ownerID string) (domain.EntityRow, error) {
	query := fmt.Sprintf("SELECT * FROM %s WHERE id = $1", desc.Table)
	args := []interface{}{id}
	if ownerID != "" {
		query += fmt.Sprintf(" AND %s = $2", desc.OwnerColumn)
		args = append(args, ownerID)
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return oneRow(rows)
}

func (r *entityRepo) Create(ctx context.Context, desc *domain.EntityDescriptor, row domain.EntityRow) (domain.EntityRow, error) {
	query, args := BuildInsertQuery(desc, row)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	defer rows.Close()

	created, err := oneRow(rows)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicate
		}
		return nil, err
	}
	return created, nil
}

func (r *entityRepo) Update(ctx context.Context, desc *domain.EntityDescriptor, id int64, ownerID string, changes domain.EntityRow) (domain.EntityRow, error) {
	query, args := BuildUpdateQuery(desc, id, ownerID, changes)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return oneRow(rows)
}

// Delete is ownership-scoped and idempotent.
func (r *entityRepo) Delete(ctx context.Context, desc *domain.EntityDescriptor, id int64, ownerID string) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1 AND %s = $2", desc.Table, desc.OwnerColumn)
	_, err := r.db.Exec(ctx, query, id, ownerID)
	return err
}

func collectRows(rows pgx.Rows) ([]domain.EntityRow, error) {
	fields := rows.FieldDescriptions()

	items := make([]domain.EntityRow, 0)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, err
		}
		row := make(domain.EntityRow, len(fields))
		for i, fd := range fields {
			row[fd.Name] = values[i]
		}
		items = append(items, row)
	}
	return items, rows.Err()
}

// oneRow returns the single row of a query, or domain.ErrNotFound. Updates
// whose ownership filter matched nothing land here.
func oneRow(rows pgx.Rows) (domain.EntityRow, error) {
	fields := rows.FieldDescriptions()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, err
		}
		return nil, domain.ErrNotFound
	}

	values, err := rows.Values()
	if err != nil {
		return nil, err
	}
	row := make(domain.EntityRow, len(fields))
	for i, fd := range fields {
		row[fd.Name] = values[i]
	}
	return row, nil
}
