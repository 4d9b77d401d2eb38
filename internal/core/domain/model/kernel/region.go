package kernel

// Region is a state code offered by the address steps of the order wizard.
type Region string

const (
	CDMX    Region = "CDMX"
	EdoMex  Region = "EdoMex"
	Puebla  Region = "Puebla"
	Morelos Region = "Morelos"
	Hidalgo Region = "Hidalgo"
)

// RegionPlaceholderLabel is shown for the empty selector option.
const RegionPlaceholderLabel = "Selecciona un estado"

// regionSet is the fixed region set in selector order. It also drives the
// delivery-cost notice.
var regionSet = [...]RegionOption{
	{Code: CDMX, Label: "Ciudad de México"},
	{Code: EdoMex, Label: "Estado de México"},
	{Code: Puebla, Label: "Puebla"},
	{Code: Morelos, Label: "Morelos"},
	{Code: Hidalgo, Label: "Hidalgo"},
}

// RegionOption pairs a region code with its display label.
type RegionOption struct {
	Code  Region `json:"code"`
	Label string `json:"label"`
}

// Regions returns the five region codes in selector order.
// The returned slice is a fresh copy.
func Regions() []Region {
	out := make([]Region, 0, len(regionSet))
	for _, opt := range regionSet {
		out = append(out, opt.Code)
	}
	return out
}

// RegionOptions returns the selector options: the empty placeholder first,
// followed by every region.
func RegionOptions() []RegionOption {
	out := make([]RegionOption, 0, len(regionSet)+1)
	out = append(out, RegionOption{Code: "", Label: RegionPlaceholderLabel})
	return append(out, regionSet[:]...)
}

// IsRegion reports whether code is one of the fixed region codes.
// Matching is exact: "cdmx" is not CDMX.
func IsRegion(code string) bool {
	for _, opt := range regionSet {
		if string(opt.Code) == code {
			return true
		}
	}
	return false
}

// Label returns the display label of r, or the raw code when r is unknown.
func (r Region) Label() string {
	for _, opt := range regionSet {
		if opt.Code == r {
			return opt.Label
		}
	}
	return string(r)
}
