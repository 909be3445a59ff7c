package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/fwojciec/rulepick"
	"github.com/google/uuid"
)

var _ rulepick.BindingService = (*BindingService)(nil)

// BindingService implements rulepick.BindingService using SQLite.
type BindingService struct {
	db *DB
}

// NewBindingService creates a new BindingService.
func NewBindingService(db *DB) *BindingService {
	return &BindingService{db: db}
}

const bindingColumns = "id, field_name, selector, context_selector, multiple, attribute, type, source_url, created_at"

// CreateBinding stores binding, replacing an existing binding for the same
// field. It assigns a new ID and creation time.
func (s *BindingService) CreateBinding(ctx context.Context, binding *rulepick.Binding) error {
	if err := binding.Validate(); err != nil {
		return err
	}
	if binding.Type == "" {
		binding.Type = rulepick.AttributeTypeString
	}
	if binding.ContextSelector == "" {
		binding.ContextSelector = rulepick.DefaultContextSelector
	}
	binding.ID = uuid.New().String()
	binding.CreatedAt = time.Now().UTC()
	rule, _ := rulepick.SplitFieldName(binding.FieldName)

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO bindings (id, field_name, rule, selector, context_selector, multiple, attribute, type, source_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(field_name) DO UPDATE SET
			id = excluded.id,
			rule = excluded.rule,
			selector = excluded.selector,
			context_selector = excluded.context_selector,
			multiple = excluded.multiple,
			attribute = excluded.attribute,
			type = excluded.type,
			source_url = excluded.source_url,
			created_at = excluded.created_at
	`, binding.ID, binding.FieldName, rule, binding.Selector, binding.ContextSelector, binding.Multiple,
		binding.Attribute, string(binding.Type), binding.SourceURL, formatTime(binding.CreatedAt))
	return err
}

// FindBindingByField retrieves the binding for fieldName.
func (s *BindingService) FindBindingByField(ctx context.Context, fieldName string) (*rulepick.Binding, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+bindingColumns+" FROM bindings WHERE field_name = ?", fieldName)
	b, err := scanBinding(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, rulepick.Errorf(rulepick.ENOTFOUND, "field %q is not bound", fieldName)
	}
	return b, err
}

// FindBindings retrieves bindings ordered by field name.
func (s *BindingService) FindBindings(ctx context.Context, filter rulepick.BindingFilter) ([]*rulepick.Binding, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + bindingColumns + " FROM bindings WHERE 1=1")
	if filter.Rule != nil {
		query.WriteString(" AND rule = ?")
		args = append(args, *filter.Rule)
	}
	query.WriteString(" ORDER BY field_name")
	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bindings := []*rulepick.Binding{}
	for rows.Next() {
		b, err := scanBinding(rows)
		if err != nil {
			return nil, err
		}
		bindings = append(bindings, b)
	}
	return bindings, rows.Err()
}

// DeleteBinding removes the binding for fieldName.
func (s *BindingService) DeleteBinding(ctx context.Context, fieldName string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM bindings WHERE field_name = ?", fieldName)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return rulepick.Errorf(rulepick.ENOTFOUND, "field %q is not bound", fieldName)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanBinding(row scanner) (*rulepick.Binding, error) {
	var b rulepick.Binding
	var typ, createdAt string
	if err := row.Scan(&b.ID, &b.FieldName, &b.Selector, &b.ContextSelector, &b.Multiple,
		&b.Attribute, &typ, &b.SourceURL, &createdAt); err != nil {
		return nil, err
	}
	b.Type = rulepick.AttributeType(typ)

	var err error
	if b.CreatedAt, err = parseTime(createdAt, "created_at"); err != nil {
		return nil, err
	}
	return &b, nil
}
