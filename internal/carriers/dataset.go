package carriers

import (
	"sort"

	"github.com/go-gota/gota/dataframe"
)

// Column names used by the carrier traffic files
const (
	ColumnYear          = "YEAR"
	ColumnMonth         = "MONTH"
	ColumnDomestic      = "DOMESTIC"
	ColumnInternational = "INTERNATIONAL"
	ColumnTotal         = "TOTAL"
)

// DesignatedColumns are the traffic count columns subject to comma stripping
// and integer coercion.
var DesignatedColumns = []string{ColumnDomestic, ColumnInternational, ColumnTotal}

// IsDesignatedColumn reports whether name is one of the traffic count columns
func IsDesignatedColumn(name string) bool {
	for _, c := range DesignatedColumns {
		if c == name {
			return true
		}
	}
	return false
}

// Dataset is one parsed tabular file
type Dataset struct {
	Name  string
	Path  string
	Frame dataframe.DataFrame
}

func (d *Dataset) Rows() int {
	return d.Frame.Nrow()
}

func (d *Dataset) Columns() []string {
	return d.Frame.Names()
}

func (d *Dataset) HasColumn(name string) bool {
	for _, n := range d.Frame.Names() {
		if n == name {
			return true
		}
	}
	return false
}

// Collection maps file names to datasets. It is owned by a loader while it is
// being populated and handed by reference to the presentation layer afterwards.
type Collection struct {
	datasets map[string]*Dataset
}

// NewCollection creates an empty collection
func NewCollection() *Collection {
	return &Collection{datasets: make(map[string]*Dataset)}
}

// Put inserts or replaces the dataset stored under d.Name
func (c *Collection) Put(d *Dataset) {
	c.datasets[d.Name] = d
}

// Get returns the dataset stored under name
func (c *Collection) Get(name string) (*Dataset, bool) {
	d, ok := c.datasets[name]
	return d, ok
}

// Remove deletes the dataset stored under name, if any
func (c *Collection) Remove(name string) {
	delete(c.datasets, name)
}

// Names returns the dataset names in ascending order
func (c *Collection) Names() []string {
	names := make([]string, 0, len(c.datasets))
	for name := range c.datasets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (c *Collection) Len() int {
	return len(c.datasets)
}
