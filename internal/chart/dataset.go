package chart

// Dataset is an immutable, ordered collection of records.
type Dataset struct {
	records []Record
}

// NewDataset copies records into a new dataset.
func NewDataset(records []Record) Dataset {
	owned := make([]Record, len(records))
	copy(owned, records)
	return Dataset{records: owned}
}

// Len returns the number of records.
func (d Dataset) Len() int {
	return len(d.records)
}

// At returns the record at index i.
func (d Dataset) At(i int) Record {
	return d.records[i]
}

// Records returns a copy of every record in order.
func (d Dataset) Records() []Record {
	out := make([]Record, len(d.records))
	copy(out, d.records)
	return out
}

// Max returns the highest value, or 0 for an empty dataset.
func (d Dataset) Max() float64 {
	var highest float64
	for _, r := range d.records {
		if r.Value > highest {
			highest = r.Value
		}
	}
	return highest
}

// SampleDataset returns the embodied carbon intensities shown on the landing page.
func SampleDataset() Dataset {
	const (
		refurb = CategoryRefurbishment
		nb     = CategoryNewBuild
		done   = StatusComplete
	)
	return NewDataset([]Record{
		{Value: 548, Category: refurb, Status: done},
		{Value: 278, Category: refurb, Status: done},
		{Value: 875, Category: nb, Status: done},
		{Value: 617, Category: nb, Status: done},
		{Value: 506, Category: nb, Status: done},
		{Value: 36, Category: refurb, Status: done},
		{Value: 185, Category: refurb, Status: done},
		{Value: 191, Category: refurb, Status: done},
		{Value: 122, Category: refurb, Status: done},
		{Value: 558, Category: refurb, Status: done},
		{Value: 881, Category: nb, Status: done},
		{Value: 539, Category: refurb, Status: done},
		{Value: 269, Category: refurb, Status: done},
		{Value: 29, Category: refurb, Status: done},
		{Value: 82, Category: refurb, Status: done},
		{Value: 44, Category: refurb, Status: done},
		{Value: 109, Category: refurb, Status: done},
		{Value: 106, Category: refurb, Status: done},
		{Value: 607, Category: nb, Status: done},
		{Value: 528, Category: nb, Status: done},
	})
}
