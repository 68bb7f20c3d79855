package rop

// Metadata describes a page of items.
type Metadata struct {
	Count     int  `json:"count"`
	Total     *int `json:"total,omitempty"`
	PageSize  *int `json:"pageSize,omitempty"`
	PageIndex *int `json:"pageIndex,omitempty"`
}

func (m Metadata) clone() *Metadata {
	return &Metadata{
		Count:     m.Count,
		Total:     cloneInt(m.Total),
		PageSize:  cloneInt(m.PageSize),
		PageIndex: cloneInt(m.PageIndex),
	}
}

func cloneInt(v *int) *int {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}

// Items is a Result over a slice that also carries paging metadata.
type Items[T any] struct {
	Result[[]T]
	metadata *Metadata
}

type PageOption func(m *Metadata)

func WithPageSize(size int) PageOption {
	return func(m *Metadata) {
		m.PageSize = &size
	}
}

func WithPageIndex(index int) PageOption {
	return func(m *Metadata) {
		m.PageIndex = &index
	}
}

// WithCount overrides the default count of len(items).
func WithCount(count int) PageOption {
	return func(m *Metadata) {
		m.Count = count
	}
}

// WithoutTotal leaves the total absent, for sources that cannot count it.
func WithoutTotal() PageOption {
	return func(m *Metadata) {
		m.Total = nil
	}
}

// CreateItems returns a successful Items with Count = len(items) and the given total.
func CreateItems[T any](items []T, total int, opts ...PageOption) Items[T] {
	meta := Metadata{Count: len(items), Total: &total}
	for _, opt := range opts {
		opt(&meta)
	}
	return Items[T]{
		Result:   Create(items),
		metadata: &meta,
	}
}

// NewItems builds Items from its parts. A nil meta means no paging information.
func NewItems[T any](items []T, status Status, messages []string, meta *Metadata) Items[T] {
	res := Items[T]{Result: New(items, status, messages)}
	if meta != nil {
		res.metadata = meta.clone()
	}
	return res
}

// ItemsFrom carries the status and messages of from into Items without data or metadata.
func ItemsFrom[In, T any](from Result[In]) Items[T] {
	return Items[T]{Result: FailFrom[In, []T](from)}
}

// Metadata returns a copy of the paging metadata, nil when absent.
func (r Items[T]) Metadata() *Metadata {
	if r.metadata == nil {
		return nil
	}
	return r.metadata.clone()
}
