package encode

type EncodeOption func(*EncState)

type EncState struct {
	Color     func(ColorAttr, string) string
	none      string
	precision int
	sep       string
}

func newEncState(opts []EncodeOption) *EncState {
	es := &EncState{
		none:      "none",
		precision: -1,
		sep:       " ",
	}
	for _, opt := range opts {
		opt(es)
	}
	return es
}

func (es *EncState) color(a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(a, s)
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// EncodeNone sets the text shown for an absent result.
func EncodeNone(s string) EncodeOption {
	return func(es *EncState) { es.none = s }
}

// EncodePrecision sets the number of digits after the decimal point, -1
// for the shortest exact representation.
func EncodePrecision(p int) EncodeOption {
	return func(es *EncState) { es.precision = p }
}

func EncodeSep(s string) EncodeOption {
	return func(es *EncState) { es.sep = s }
}
