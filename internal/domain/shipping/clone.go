package shipping

// Clone returns a deep copy of the company, including its zones and
// cities. Pending domain events are not carried over.
func (c *Company) Clone() *Company {
	copied := *c
	copied.ClearDomainEvents()
	copied.Zones = make([]Zone, len(c.Zones))
	for i, zone := range c.Zones {
		z := zone
		z.Cities = append([]City(nil), zone.Cities...)
		copied.Zones[i] = z
	}
	return &copied
}
