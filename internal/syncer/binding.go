package syncer

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/diewo77/go-interventions/internal/models"
	"github.com/diewo77/go-interventions/internal/remote"
	"github.com/diewo77/go-interventions/internal/repository"
	"github.com/diewo77/go-interventions/internal/session"
)

var errMissingID = errors.New("missing id")

// Binding ties one local collection to its remote table.
type Binding interface {
	Table() string
	snapshot() ([]stampedRow, error)
	stamp(payload json.RawMessage) (stampedRow, error)
	merge(payloads []json.RawMessage) mergeStats
}

type stampedRow struct {
	remote.Row
	UpdatedAt string
}

type mergeStats struct {
	Adopted int
	Kept    int
	Invalid int
	Demoted int
}

// validator is implemented by records whose identity needs more than a
// non-empty RecordID.
type validator interface {
	Valid() bool
}

type collectionBinding[T repository.Record[T]] struct {
	table string
	coll  *repository.Collection[T]
	// settle repairs the merged items and reports how many it changed.
	settle func(items []T, ts string) ([]T, int)
}

// Bind exposes coll as the local side of table.
func Bind[T repository.Record[T]](table string, coll *repository.Collection[T]) Binding {
	return &collectionBinding[T]{table: table, coll: coll}
}

// BindSessions binds work sessions and, after every merge that adopted rows,
// leaves at most one OPEN session per client.
func BindSessions(table string, coll *repository.Collection[models.WorkSession]) Binding {
	return &collectionBinding[models.WorkSession]{table: table, coll: coll, settle: session.SettleOpen}
}

func (b *collectionBinding[T]) Table() string { return b.table }

// snapshot reads the collection as it is now.
func (b *collectionBinding[T]) snapshot() ([]stampedRow, error) {
	items := b.coll.All()
	rows := make([]stampedRow, 0, len(items))
	for _, it := range items {
		content, err := json.Marshal(it)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", b.table, it.RecordID(), err)
		}
		rows = append(rows, stampedRow{
			Row:       remote.Row{ID: it.RecordID(), Content: content},
			UpdatedAt: it.RecordUpdatedAt(),
		})
	}
	return rows, nil
}

func (b *collectionBinding[T]) stamp(payload json.RawMessage) (stampedRow, error) {
	v, err := b.decode(payload)
	if err != nil {
		return stampedRow{}, err
	}
	return stampedRow{Row: remote.Row{ID: v.RecordID(), Content: payload}, UpdatedAt: v.RecordUpdatedAt()}, nil
}

func (b *collectionBinding[T]) decode(payload json.RawMessage) (T, error) {
	var v T
	if err := json.Unmarshal(payload, &v); err != nil {
		return v, err
	}
	if v.RecordID() == "" {
		return v, errMissingID
	}
	if vv, ok := any(v).(validator); ok && !vv.Valid() {
		return v, errMissingID
	}
	return v, nil
}

// merge applies last-write-wins: unknown ids are appended, known ids are
// overwritten only by a strictly newer updatedAt, and local-only items stay.
func (b *collectionBinding[T]) merge(payloads []json.RawMessage) mergeStats {
	var st mergeStats
	incoming := make([]T, 0, len(payloads))
	for _, p := range payloads {
		v, err := b.decode(p)
		if err != nil {
			st.Invalid++
			continue
		}
		incoming = append(incoming, v)
	}

	b.coll.Mutate(func(items []T) ([]T, bool) {
		for _, r := range incoming {
			i := indexOf(items, r.RecordID())
			switch {
			case i < 0:
				items = append(items, r)
				st.Adopted++
			case newer(r.RecordUpdatedAt(), items[i].RecordUpdatedAt()):
				items[i] = r
				st.Adopted++
			default:
				st.Kept++
			}
		}
		if st.Adopted > 0 && b.settle != nil {
			items, st.Demoted = b.settle(items, b.coll.Now())
		}
		return items, st.Adopted > 0
	})
	return st
}

// newer reports whether a is strictly later than b. Missing or malformed
// timestamps count as the oldest possible value.
func newer(a, b string) bool {
	return models.ParseTimestamp(a).After(models.ParseTimestamp(b))
}

func indexOf[T repository.Record[T]](items []T, id string) int {
	for i, it := range items {
		if it.RecordID() == id {
			return i
		}
	}
	return -1
}
