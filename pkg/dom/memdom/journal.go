package memdom

// Op names a DOM mutation.
type Op string

const (
	OpCreateElement       Op = "createElement"
	OpCreateText          Op = "createText"
	OpAppendChild         Op = "appendChild"
	OpReplaceChild        Op = "replaceChild"
	OpRemoveChild         Op = "removeChild"
	OpSetAttribute        Op = "setAttribute"
	OpRemoveAttribute     Op = "removeAttribute"
	OpAddEventListener    Op = "addEventListener"
	OpRemoveEventListener Op = "removeEventListener"
	OpSetClassName        Op = "setClassName"
	OpSetStyle            Op = "setStyle"
	OpSetText             Op = "setText"
)

// Mutation is one recorded DOM operation.
type Mutation struct {
	Op    Op     `json:"op"`
	Node  string `json:"node"`            // target node id
	Child string `json:"child,omitempty"` // appended, inserted or removed node id
	Old   string `json:"old,omitempty"`   // replaced node id
	Name  string `json:"name,omitempty"`  // tag, attribute, event or style property
	Value string `json:"value,omitempty"` // attribute, style or text value
}

// Journal records mutations in order.
type Journal struct {
	records []Mutation
	total   int
}

func (j *Journal) add(m Mutation) {
	j.records = append(j.records, m)
	j.total++
}

// Records returns the mutations recorded since the last Drain or Reset.
func (j *Journal) Records() []Mutation {
	out := make([]Mutation, len(j.records))
	copy(out, j.records)
	return out
}

// Len returns the number of pending records.
func (j *Journal) Len() int {
	return len(j.records)
}

// Total returns the number of mutations recorded over the journal's life.
func (j *Journal) Total() int {
	return j.total
}

// Drain returns the pending records and clears them.
func (j *Journal) Drain() []Mutation {
	out := j.records
	j.records = nil
	return out
}

// Reset discards pending records.
func (j *Journal) Reset() {
	j.records = nil
}

// Count returns how many pending records have op.
func (j *Journal) Count(op Op) int {
	n := 0
	for _, m := range j.records {
		if m.Op == op {
			n++
		}
	}
	return n
}
