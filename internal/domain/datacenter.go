package domain

// Datacenter is a physical site that tickets are grouped by.
type Datacenter struct {
	DcID     string
	Region   string
	AreaSqft int
	Manager  string
}
