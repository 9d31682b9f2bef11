package catalog

import "strings"

// Mapping pins catalog columns to roles by exact (case-insensitive) header
// name. Empty fields fall back to the substring heuristics, which are
// best-effort: first match wins and the code role defaults to the first
// column when nothing matches.
type Mapping struct {
	Code     string
	Name     string
	Supplier string
	Price    string
	Weight   string
	Image    string
}

type columns struct {
	code     int
	name     int
	supplier int
	price    int
	weight   int
	image    int
}

func resolveColumns(header []string, m Mapping) columns {
	c := columns{code: -1, name: -1, supplier: -1, price: -1, weight: -1, image: -1}

	find := func(name string) int {
		if name == "" {
			return -1
		}
		for i, h := range header {
			if strings.EqualFold(strings.TrimSpace(h), name) {
				return i
			}
		}
		return -1
	}
	c.code = find(m.Code)
	c.name = find(m.Name)
	c.supplier = find(m.Supplier)
	c.price = find(m.Price)
	c.weight = find(m.Weight)
	c.image = find(m.Image)

	for i, h := range header {
		lh := strings.ToLower(strings.TrimSpace(h))
		switch {
		case c.code == -1 && strings.Contains(lh, "product") && strings.Contains(lh, "list"):
			c.code = i
		case c.name == -1 && (strings.Contains(lh, "name") || lh == "product"):
			c.name = i
		case c.supplier == -1 && strings.Contains(lh, "supplier"):
			c.supplier = i
		case c.price == -1 && strings.Contains(lh, "price"):
			c.price = i
		case c.weight == -1 && strings.Contains(lh, "weight"):
			c.weight = i
		case c.image == -1 && strings.Contains(lh, "image"):
			c.image = i
		}
	}

	if c.code == -1 && len(header) > 0 {
		c.code = 0
	}
	return c
}
