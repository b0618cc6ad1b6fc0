package geography

import "strings"

// Governorate is an immutable reference record: a governorate and the
// ordered list of its cities. The catalog is compiled in and never
// modified at runtime.
type Governorate struct {
	Name   string
	Cities []string
}

// Catalog returns the full governorate list in canonical order.
// Callers must treat the returned data as read-only.
func Catalog() []Governorate {
	return governorates
}

// FindByName returns the governorate whose name matches exactly.
func FindByName(name string) (Governorate, bool) {
	for _, g := range governorates {
		if g.Name == name {
			return g, true
		}
	}
	return Governorate{}, false
}

// FindByCity returns the governorate containing the given city name.
func FindByCity(city string) (Governorate, bool) {
	for _, g := range governorates {
		for _, c := range g.Cities {
			if c == city {
				return g, true
			}
		}
	}
	return Governorate{}, false
}

// FilterCities returns the governorate's cities whose names contain the
// query, case-insensitively. An empty query returns all cities.
func FilterCities(g Governorate, query string) []string {
	if query == "" {
		return g.Cities
	}
	q := strings.ToLower(query)
	matched := make([]string, 0, len(g.Cities))
	for _, c := range g.Cities {
		if strings.Contains(strings.ToLower(c), q) {
			matched = append(matched, c)
		}
	}
	return matched
}

// CityCount returns the total number of cities in the catalog.
func CityCount() int {
	n := 0
	for _, g := range governorates {
		n += len(g.Cities)
	}
	return n
}
