package store

import "gorm.io/gorm"

// Descriptor is the per-entity configuration of a Gateway: which column
// identifies a row and how listings are ordered.
type Descriptor struct {
	KeyColumn string
	OrderBy   string
}

// Gateway translates create/read/update/delete on one entity into a
// single parameterized statement and a classified outcome. It holds no
// state between calls; every operation round-trips to the store.
type Gateway[T any] struct {
	db   *gorm.DB
	desc Descriptor
}

func NewGateway[T any](db *gorm.DB, desc Descriptor) *Gateway[T] {
	if desc.KeyColumn == "" {
		desc.KeyColumn = "id"
	}
	return &Gateway[T]{db: db, desc: desc}
}

func (g *Gateway[T]) Create(rec *T) error {
	if err := g.db.Create(rec).Error; err != nil {
		return classify(err)
	}
	return nil
}

func (g *Gateway[T]) List() ([]T, error) {
	rows := []T{}
	q := g.db
	if g.desc.OrderBy != "" {
		q = q.Order(g.desc.OrderBy)
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, classify(err)
	}
	return rows, nil
}

func (g *Gateway[T]) Get(id string) (*T, error) {
	var row T
	if err := g.db.Where(g.desc.KeyColumn+" = ?", id).First(&row).Error; err != nil {
		return nil, classify(err)
	}
	return &row, nil
}

// Update reports success even when no row matched the identifier;
// callers cannot distinguish an update from a no-op.
func (g *Gateway[T]) Update(id string, fields map[string]any) error {
	var model T
	if err := g.db.Model(&model).Where(g.desc.KeyColumn+" = ?", id).Updates(fields).Error; err != nil {
		return classify(err)
	}
	return nil
}

// Delete is an idempotent no-op for identifiers that do not exist.
func (g *Gateway[T]) Delete(id string) error {
	var model T
	if err := g.db.Where(g.desc.KeyColumn+" = ?", id).Delete(&model).Error; err != nil {
		return classify(err)
	}
	return nil
}
