package scale

// Category10 is the ten-colour categorical scheme used for category fills.
var Category10 = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728", "#9467bd",
	"#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// Palette assigns a stable colour to each category, cycling through the
// scheme in domain order.
type Palette struct {
	scheme []string
	colors map[string]string
	order  []string
}

// NewPalette binds domain to scheme. A nil scheme means Category10.
func NewPalette(domain []string, scheme []string) *Palette {
	if len(scheme) == 0 {
		scheme = Category10
	}
	p := &Palette{scheme: scheme, colors: make(map[string]string, len(domain))}
	for _, d := range domain {
		p.Color(d)
	}
	return p
}

// Color returns the colour of category. Unknown categories are appended to
// the domain, as an ordinal scale would do.
func (p *Palette) Color(category string) string {
	if c, ok := p.colors[category]; ok {
		return c
	}
	c := p.scheme[len(p.order)%len(p.scheme)]
	p.colors[category] = c
	p.order = append(p.order, category)
	return c
}
